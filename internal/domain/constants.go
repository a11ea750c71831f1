package domain

const (
	EmploymentFullTime = "full_time"
	EmploymentPartTime = "part_time"
	EmploymentContract = "contract"
	EmploymentIntern   = "intern"

	DepartmentEngineering = "engineering"
	DepartmentMarketing   = "marketing"
	DepartmentSales       = "sales"
	DepartmentHR          = "hr"
	DepartmentFinance     = "finance"
	DepartmentOperations  = "operations"
	DepartmentOther       = "other"

	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"

	LeaveTypeAnnual      = "annual"
	LeaveTypeSick        = "sick"
	LeaveTypeUnpaid      = "unpaid"
	LeaveTypeMaternity   = "maternity"
	LeaveTypePaternity   = "paternity"
	LeaveTypeBereavement = "bereavement"
	LeaveTypeOther       = "other"

	ActivityTypeLeaveRequest      = "leave_request"
	ActivityTypeDocumentUpdate    = "document_update"
	ActivityTypeTraining          = "training"
	ActivityTypePerformanceReview = "performance_review"
	ActivityTypeOnboarding        = "onboarding"
	ActivityTypeOther             = "other"

	ActivityStatusPending    = "pending"
	ActivityStatusInProgress = "in_progress"
	ActivityStatusCompleted  = "completed"
	ActivityStatusRejected   = "rejected"

	TaskPriorityUrgent = "urgent"
	TaskPriorityHigh   = "high"
	TaskPriorityMedium = "medium"
	TaskPriorityNormal = "normal"
	TaskPriorityLow    = "low"
)

var (
	EmploymentTypes = []string{EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentIntern}

	Departments = []string{
		DepartmentEngineering, DepartmentMarketing, DepartmentSales,
		DepartmentHR, DepartmentFinance, DepartmentOperations, DepartmentOther,
	}

	LeaveStatuses = []string{LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected}

	LeaveTypes = []string{
		LeaveTypeAnnual, LeaveTypeSick, LeaveTypeUnpaid,
		LeaveTypeMaternity, LeaveTypePaternity, LeaveTypeBereavement, LeaveTypeOther,
	}

	ActivityTypes = []string{
		ActivityTypeLeaveRequest, ActivityTypeDocumentUpdate, ActivityTypeTraining,
		ActivityTypePerformanceReview, ActivityTypeOnboarding, ActivityTypeOther,
	}

	ActivityStatuses = []string{ActivityStatusPending, ActivityStatusInProgress, ActivityStatusCompleted, ActivityStatusRejected}

	TaskPriorities = []string{TaskPriorityUrgent, TaskPriorityHigh, TaskPriorityMedium, TaskPriorityNormal, TaskPriorityLow}
)
