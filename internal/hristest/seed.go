package hristest

import (
	"time"

	"github.com/shopspring/decimal"

	"go-hris-cli/internal/department"
	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/leavetype"
)

// Seed loads a small, deterministic data set so the stub is usable
// immediately: three departments, two leave types and four employees.
func Seed(s *Store) error {
	eng, err := s.CreateDepartment(department.CreateDepartmentRequest{
		Name: "Engineering", Code: "ENG", Description: "Product engineering",
	})
	if err != nil {
		return err
	}
	hr, err := s.CreateDepartment(department.CreateDepartmentRequest{
		Name: "Human Resources", Code: "HR", Description: "People operations",
	})
	if err != nil {
		return err
	}
	fin, err := s.CreateDepartment(department.CreateDepartmentRequest{
		Name: "Finance", Code: "FIN", Description: "Finance and accounting",
	})
	if err != nil {
		return err
	}

	if _, err := s.CreateLeaveType(leavetype.CreateLeaveTypeRequest{
		Name: "Annual Leave", Code: "ANNUAL", DefaultDays: 20, IsPaid: true, RequiresApproval: true,
	}); err != nil {
		return err
	}
	if _, err := s.CreateLeaveType(leavetype.CreateLeaveTypeRequest{
		Name: "Sick Leave", Code: "SICK", DefaultDays: 10, IsPaid: true, RequiresApproval: true,
	}); err != nil {
		return err
	}

	salary := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	hireDate := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	seedEmployees := []employee.CreateEmployeeRequest{
		{EmployeeNumber: "EMP-0001", FirstName: "Andi", LastName: "Wijaya", Email: "andi.wijaya@example.com", Position: "Backend Engineer", DepartmentID: eng.ID, EmploymentStatus: employee.StatusActive, Salary: salary(12_000_000), HireDate: hireDate},
		{EmployeeNumber: "EMP-0002", FirstName: "Siti", LastName: "Rahma", Email: "siti.rahma@example.com", Position: "HR Generalist", DepartmentID: hr.ID, EmploymentStatus: employee.StatusActive, Salary: salary(9_500_000), HireDate: hireDate},
		{EmployeeNumber: "EMP-0003", FirstName: "Budi", LastName: "Santoso", Email: "budi.santoso@example.com", Position: "Accountant", DepartmentID: fin.ID, EmploymentStatus: employee.StatusActive, Salary: salary(10_000_000), HireDate: hireDate},
		{EmployeeNumber: "EMP-0004", FirstName: "Dewi", LastName: "Lestari", Email: "dewi.lestari@example.com", Position: "Frontend Engineer", DepartmentID: eng.ID, EmploymentStatus: employee.StatusInactive, Salary: salary(11_000_000), HireDate: hireDate},
	}
	for _, req := range seedEmployees {
		if _, err := s.CreateEmployee(req); err != nil {
			return err
		}
	}
	return nil
}
