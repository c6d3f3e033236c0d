package leaveallocation

// Allocation is a grant of N leave days to one employee for one leave type in
// one calendar year. The backend keeps at most one allocation per
// (employee, leaveType, year).
type Allocation struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName,omitempty"`
	LeaveTypeID   string `json:"leaveTypeId"`
	LeaveTypeName string `json:"leaveTypeName,omitempty"`
	LeaveTypeCode string `json:"leaveTypeCode,omitempty"`
	AllocatedDays int    `json:"allocatedDays"`
	UsedDays      int    `json:"usedDays,omitempty"`
	RemainingDays int    `json:"remainingDays,omitempty"`
	Year          int    `json:"year"`
	IsActive      bool   `json:"isActive"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

type CreateAllocationRequest struct {
	EmployeeID    string `json:"employeeId" validate:"required"`
	LeaveTypeID   string `json:"leaveTypeId" validate:"required"`
	AllocatedDays int    `json:"allocatedDays" validate:"min=0"`
	Year          int    `json:"year" validate:"required"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	Notes         string `json:"notes,omitempty" validate:"max=500"`
}

type UpdateAllocationRequest struct {
	AllocatedDays int    `json:"allocatedDays" validate:"min=0"`
	IsActive      *bool  `json:"isActive,omitempty"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	Notes         string `json:"notes,omitempty" validate:"max=500"`
}

// BalanceSummary is the backend-computed per-type balance report for one
// employee and year.
type BalanceSummary struct {
	EmployeeID     string    `json:"employeeId"`
	EmployeeName   string    `json:"employeeName"`
	EmployeeNumber string    `json:"employeeNumber"`
	Year           int       `json:"year"`
	LeaveBalances  []Balance `json:"leaveBalances"`
	GeneratedAt    string    `json:"generatedAt"`
}

type Balance struct {
	LeaveTypeID   string `json:"leaveTypeId"`
	LeaveTypeName string `json:"leaveTypeName"`
	LeaveTypeCode string `json:"leaveTypeCode"`
	AllocatedDays int    `json:"allocatedDays"`
	UsedDays      int    `json:"usedDays"`
	RemainingDays int    `json:"remainingDays"`
	PendingDays   int    `json:"pendingDays"`
	IsActive      bool   `json:"isActive"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
}
