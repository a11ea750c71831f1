package domain

import "time"

// User is an account holder. Role is free text with a default, not an enum;
// admin, hr and employee are the values the front end knows about.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Employee is the HR record behind a user. EmployeeID is the business code
// (e.g. "EMP-100"), distinct from the synthetic ID. Manager points at another
// employee.
type Employee struct {
	ID               int       `json:"id"`
	UserID           int       `json:"userId"`
	EmployeeID       string    `json:"employeeId"`
	DateOfBirth      *string   `json:"dateOfBirth"`
	HireDate         string    `json:"hireDate"`
	Department       string    `json:"department"`
	Position         string    `json:"position"`
	EmploymentType   string    `json:"employmentType"`
	Manager          *int      `json:"manager"`
	Phone            *string   `json:"phone"`
	Address          *string   `json:"address"`
	EmergencyContact *string   `json:"emergencyContact"`
	Salary           *float64  `json:"salary"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Document metadata is an opaque string; uploads themselves live elsewhere.
type Document struct {
	ID         int       `json:"id"`
	EmployeeID int       `json:"employeeId"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Path       string    `json:"path"`
	Metadata   *string   `json:"metadata"`
	UploadDate time.Time `json:"uploadDate"`
}

// Attendance records one day for one employee. One record per (employee, date)
// is a data-entry convention, not enforced.
type Attendance struct {
	ID         int        `json:"id"`
	EmployeeID int        `json:"employeeId"`
	Date       string     `json:"date"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes"`
}

type Leave struct {
	ID         int       `json:"id"`
	EmployeeID int       `json:"employeeId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Type       string    `json:"type"`
	Reason     *string   `json:"reason"`
	Status     string    `json:"status"`
	ApprovedBy *int      `json:"approvedBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Payroll struct {
	ID          int     `json:"id"`
	EmployeeID  int     `json:"employeeId"`
	Period      string  `json:"period"`
	BaseSalary  float64 `json:"baseSalary"`
	Bonus       float64 `json:"bonus"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"netSalary"`
	PaymentDate string  `json:"paymentDate"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
}

type Performance struct {
	ID         int       `json:"id"`
	EmployeeID int       `json:"employeeId"`
	ReviewerID int       `json:"reviewerId"`
	Period     string    `json:"period"`
	Rating     *float64  `json:"rating"`
	Comments   *string   `json:"comments"`
	Goals      *string   `json:"goals"`
	ReviewDate string    `json:"reviewDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Activity is a feed entry on an employee timeline. Date is server-set at
// creation and immutable afterwards.
type Activity struct {
	ID          int       `json:"id"`
	EmployeeID  int       `json:"employeeId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
}

type Task struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"dueDate"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Announcement struct {
	ID        int       `json:"id"`
	CreatedBy int       `json:"createdBy"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	PostDate  time.Time `json:"postDate"`
}

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Location    *string   `json:"location"`
	CreatedBy   int       `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
