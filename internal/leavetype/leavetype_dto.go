package leavetype

type LeaveType struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Code               string `json:"code"`
	Description        string `json:"description,omitempty"`
	DefaultDays        int    `json:"defaultDays"`
	IsPaid             bool   `json:"isPaid"`
	RequiresApproval   bool   `json:"requiresApproval"`
	MaxConsecutiveDays *int   `json:"maxConsecutiveDays,omitempty"`
	MinNoticeDays      *int   `json:"minNoticeDays,omitempty"`
	IsActive           bool   `json:"isActive"`
	CreatedAt          string `json:"createdAt,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

type CreateLeaveTypeRequest struct {
	Name               string `json:"name" validate:"required,max=200"`
	Code               string `json:"code" validate:"required,max=50"`
	Description        string `json:"description,omitempty" validate:"max=500"`
	DefaultDays        int    `json:"defaultDays" validate:"min=0"`
	IsPaid             bool   `json:"isPaid"`
	RequiresApproval   bool   `json:"requiresApproval"`
	MaxConsecutiveDays *int   `json:"maxConsecutiveDays,omitempty" validate:"omitempty,min=0"`
	MinNoticeDays      *int   `json:"minNoticeDays,omitempty" validate:"omitempty,min=0"`
}

type UpdateLeaveTypeRequest struct {
	Name               string `json:"name" validate:"required,max=200"`
	Code               string `json:"code" validate:"required,max=50"`
	Description        string `json:"description,omitempty" validate:"max=500"`
	DefaultDays        int    `json:"defaultDays" validate:"min=0"`
	IsPaid             bool   `json:"isPaid"`
	RequiresApproval   bool   `json:"requiresApproval"`
	MaxConsecutiveDays *int   `json:"maxConsecutiveDays,omitempty" validate:"omitempty,min=0"`
	MinNoticeDays      *int   `json:"minNoticeDays,omitempty" validate:"omitempty,min=0"`
	IsActive           *bool  `json:"isActive,omitempty"`
}
