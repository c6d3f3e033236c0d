package employee

import "github.com/shopspring/decimal"

const (
	StatusActive     = "Active"
	StatusInactive   = "Inactive"
	StatusOnLeave    = "OnLeave"
	StatusTerminated = "Terminated"
)

type Employee struct {
	ID               string          `json:"id"`
	EmployeeNumber   string          `json:"employeeNumber"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone,omitempty"`
	Position         string          `json:"position"`
	Salary           decimal.Decimal `json:"salary"`
	HireDate         string          `json:"hireDate"`
	EmploymentStatus string          `json:"employmentStatus"`
	DepartmentID     string          `json:"departmentId"`
	DepartmentName   string          `json:"departmentName,omitempty"`
	CreatedAt        string          `json:"createdAt,omitempty"`
	UpdatedAt        string          `json:"updatedAt,omitempty"`
}

type CreateEmployeeRequest struct {
	EmployeeNumber   string          `json:"employeeNumber" validate:"required,max=50"`
	FirstName        string          `json:"firstName" validate:"required,max=100"`
	LastName         string          `json:"lastName" validate:"required,max=100"`
	Name             string          `json:"name"`
	Email            string          `json:"email" validate:"required,email,max=255"`
	Phone            string          `json:"phone,omitempty" validate:"max=20"`
	Position         string          `json:"position" validate:"required,max=100"`
	Salary           decimal.Decimal `json:"salary"`
	HireDate         string          `json:"hireDate" validate:"required"`
	DepartmentID     string          `json:"departmentId" validate:"required"`
	EmploymentStatus string          `json:"employmentStatus,omitempty" validate:"omitempty,oneof=Active Inactive OnLeave Terminated"`
}

type UpdateEmployeeRequest struct {
	FirstName        string          `json:"firstName" validate:"required,max=100"`
	LastName         string          `json:"lastName" validate:"required,max=100"`
	Name             string          `json:"name"`
	Email            string          `json:"email" validate:"required,email,max=255"`
	Phone            string          `json:"phone,omitempty" validate:"max=20"`
	Position         string          `json:"position" validate:"required,max=100"`
	Salary           decimal.Decimal `json:"salary"`
	HireDate         string          `json:"hireDate" validate:"required"`
	DepartmentID     string          `json:"departmentId" validate:"required"`
	EmploymentStatus string          `json:"employmentStatus,omitempty" validate:"omitempty,oneof=Active Inactive OnLeave Terminated"`
}
