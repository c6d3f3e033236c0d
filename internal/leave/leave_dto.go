package leave

type Leave struct {
	ID                 string `json:"id"`
	EmployeeID         string `json:"employeeId"`
	EmployeeName       string `json:"employeeName,omitempty"`
	LeaveTypeID        string `json:"leaveTypeId"`
	LeaveTypeName      string `json:"leaveTypeName,omitempty"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	TotalDays          int    `json:"totalDays"`
	Reason             string `json:"reason"`
	Status             string `json:"status"`
	ApprovedBy         string `json:"approvedBy,omitempty"`
	ApproverName       string `json:"approverName,omitempty"`
	ApprovedAt         string `json:"approvedAt,omitempty"`
	ApproverComments   string `json:"approverComments,omitempty"`
	RejectionReason    string `json:"rejectionReason,omitempty"`
	CancelledAt        string `json:"cancelledAt,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty"`
	CreatedAt          string `json:"createdAt,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

type CreateLeaveRequest struct {
	EmployeeID  string `json:"employeeId" validate:"required"`
	LeaveTypeID string `json:"leaveTypeId" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
	TotalDays   int    `json:"totalDays"`
	Reason      string `json:"reason" validate:"required,max=500"`
}

type UpdateLeaveRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	TotalDays int    `json:"totalDays"`
	Reason    string `json:"reason" validate:"required,max=500"`
}

// ApprovalRequest carries an HR decision. RejectionReason is required when
// the decision is Rejected.
type ApprovalRequest struct {
	Status          string `json:"Status" validate:"required,oneof=Approved Rejected"`
	Comments        string `json:"Comments,omitempty" validate:"max=500"`
	RejectionReason string `json:"RejectionReason,omitempty" validate:"max=500"`
}
