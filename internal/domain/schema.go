package domain

// Field kinds as they appear on the wire. Dates travel as YYYY-MM-DD strings,
// timestamps as RFC3339 (a bare date is accepted and widened to midnight UTC).
type Kind int

const (
	Text Kind = iota
	Int
	Number
	Bool
	Date
	Timestamp
	Enum
)

// Field describes one insertable attribute: its wire name, semantic kind,
// whether the client must supply it, the closed value set for Enum kinds, and
// the value applied when an insert omits it.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Enum     []string
	Default  any
}

// Schema is the insert contract of one entity: the full record shape minus the
// identifier and any server-stamped timestamp fields.
type Schema struct {
	Entity string
	Fields []Field
}

var UserSchema = Schema{Entity: "user", Fields: []Field{
	{Name: "username", Kind: Text, Required: true},
	{Name: "password", Kind: Text, Required: true},
	{Name: "email", Kind: Text, Required: true},
	{Name: "firstName", Kind: Text, Required: true},
	{Name: "lastName", Kind: Text, Required: true},
	{Name: "role", Kind: Text, Default: "employee"},
}}

var EmployeeSchema = Schema{Entity: "employee", Fields: []Field{
	{Name: "userId", Kind: Int, Required: true},
	{Name: "employeeId", Kind: Text, Required: true},
	{Name: "dateOfBirth", Kind: Date},
	{Name: "hireDate", Kind: Date, Required: true},
	{Name: "department", Kind: Enum, Required: true, Enum: Departments},
	{Name: "position", Kind: Text, Required: true},
	{Name: "employmentType", Kind: Enum, Required: true, Enum: EmploymentTypes},
	{Name: "manager", Kind: Int},
	{Name: "phone", Kind: Text},
	{Name: "address", Kind: Text},
	{Name: "emergencyContact", Kind: Text},
	{Name: "salary", Kind: Number},
}}

var DocumentSchema = Schema{Entity: "document", Fields: []Field{
	{Name: "employeeId", Kind: Int, Required: true},
	{Name: "name", Kind: Text, Required: true},
	{Name: "type", Kind: Text, Required: true},
	{Name: "path", Kind: Text, Required: true},
	{Name: "metadata", Kind: Text},
}}

var AttendanceSchema = Schema{Entity: "attendance", Fields: []Field{
	{Name: "employeeId", Kind: Int, Required: true},
	{Name: "date", Kind: Date, Required: true},
	{Name: "checkIn", Kind: Timestamp},
	{Name: "checkOut", Kind: Timestamp},
	{Name: "status", Kind: Text, Default: "present"},
	{Name: "notes", Kind: Text},
}}

var LeaveSchema = Schema{Entity: "leave", Fields: []Field{
	{Name: "employeeId", Kind: Int, Required: true},
	{Name: "startDate", Kind: Date, Required: true},
	{Name: "endDate", Kind: Date, Required: true},
	{Name: "type", Kind: Enum, Required: true, Enum: LeaveTypes},
	{Name: "reason", Kind: Text},
	{Name: "status", Kind: Enum, Enum: LeaveStatuses, Default: LeaveStatusPending},
	{Name: "approvedBy", Kind: Int},
}}

var PayrollSchema = Schema{Entity: "payroll", Fields: []Field{
	{Name: "employeeId", Kind: Int, Required: true},
	{Name: "period", Kind: Text, Required: true},
	{Name: "baseSalary", Kind: Number, Required: true},
	{Name: "bonus", Kind: Number, Default: float64(0)},
	{Name: "deductions", Kind: Number, Default: float64(0)},
	{Name: "netSalary", Kind: Number, Required: true},
	{Name: "paymentDate", Kind: Date, Required: true},
	{Name: "status", Kind: Text, Default: "pending"},
	{Name: "notes", Kind: Text},
}}

var PerformanceSchema = Schema{Entity: "performance review", Fields: []Field{
	{Name: "employeeId", Kind: Int, Required: true},
	{Name: "reviewerId", Kind: Int, Required: true},
	{Name: "period", Kind: Text, Required: true},
	{Name: "rating", Kind: Number},
	{Name: "comments", Kind: Text},
	{Name: "goals", Kind: Text},
	{Name: "reviewDate", Kind: Date, Required: true},
}}

var ActivitySchema = Schema{Entity: "activity", Fields: []Field{
	{Name: "employeeId", Kind: Int, Required: true},
	{Name: "type", Kind: Enum, Required: true, Enum: ActivityTypes},
	{Name: "description", Kind: Text, Required: true},
	{Name: "status", Kind: Enum, Enum: ActivityStatuses, Default: ActivityStatusPending},
}}

var TaskSchema = Schema{Entity: "task", Fields: []Field{
	{Name: "userId", Kind: Int, Required: true},
	{Name: "title", Kind: Text, Required: true},
	{Name: "description", Kind: Text},
	{Name: "dueDate", Kind: Date},
	{Name: "priority", Kind: Enum, Enum: TaskPriorities, Default: TaskPriorityNormal},
	{Name: "completed", Kind: Bool, Default: false},
}}

var AnnouncementSchema = Schema{Entity: "announcement", Fields: []Field{
	{Name: "createdBy", Kind: Int, Required: true},
	{Name: "title", Kind: Text, Required: true},
	{Name: "content", Kind: Text, Required: true},
}}

var EventSchema = Schema{Entity: "event", Fields: []Field{
	{Name: "title", Kind: Text, Required: true},
	{Name: "description", Kind: Text},
	{Name: "startDate", Kind: Timestamp, Required: true},
	{Name: "endDate", Kind: Timestamp, Required: true},
	{Name: "location", Kind: Text},
	{Name: "createdBy", Kind: Int, Required: true},
}}
