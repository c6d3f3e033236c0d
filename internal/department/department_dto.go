package department

type Department struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Code          string `json:"code"`
	Description   string `json:"description,omitempty"`
	ManagerID     string `json:"managerId,omitempty"`
	ManagerName   string `json:"managerName,omitempty"`
	IsActive      bool   `json:"isActive"`
	EmployeeCount int    `json:"employeeCount,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Code        string `json:"code" validate:"required,max=50"`
	Description string `json:"description,omitempty" validate:"max=500"`
	ManagerID   string `json:"managerId,omitempty"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Code        string `json:"code" validate:"required,max=50"`
	Description string `json:"description,omitempty" validate:"max=500"`
	ManagerID   string `json:"managerId,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}
