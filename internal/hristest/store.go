package hristest

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-hris-cli/internal/department"
	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/employeeinfo"
	"go-hris-cli/internal/leave"
	"go-hris-cli/internal/leaveallocation"
	"go-hris-cli/internal/leavetype"
	"go-hris-cli/internal/shared/apperror"
)

var (
	errEmployeeNotFound   = apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)
	errDepartmentNotFound = apperror.New(apperror.CodeNotFound, "Department not found", http.StatusNotFound)
	errLeaveTypeNotFound  = apperror.New(apperror.CodeNotFound, "Leave type not found", http.StatusNotFound)
	errAllocationNotFound = apperror.New(apperror.CodeNotFound, "Leave allocation not found", http.StatusNotFound)
	errLeaveNotFound      = apperror.New(apperror.CodeNotFound, "Leave request not found", http.StatusNotFound)

	errDuplicateNumber     = apperror.New(apperror.CodeConflict, "Employee number already exists", http.StatusConflict)
	errDuplicateDeptCode   = apperror.New(apperror.CodeConflict, "Department code already exists", http.StatusConflict)
	errDuplicateTypeCode   = apperror.New(apperror.CodeConflict, "Leave type code already exists", http.StatusConflict)
	errDuplicateAllocation = apperror.New(apperror.CodeConflict, "Allocation already exists for this employee, leave type and year", http.StatusConflict)

	errBadTransition = apperror.New(apperror.CodeInvalidState, "invalid leave status transition", http.StatusBadRequest)
)

// Store is the in-memory backing of the stub backend. Everything lives behind
// one mutex; the stub exists for tests and local development, not throughput.
type Store struct {
	mu          sync.RWMutex
	employees   []employee.Employee
	departments []department.Department
	leaveTypes  []leavetype.LeaveType
	allocations []leaveallocation.Allocation
	leaves      []leave.Leave
	information []employeeinfo.Information
}

func NewStore() *Store { return &Store{} }

func now() string { return time.Now().UTC().Format(time.RFC3339) }

// --- employees ---

func (s *Store) Employees() []employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]employee.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *Store) Employee(id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, errEmployeeNotFound
}

func (s *Store) SearchEmployees(term string) []employee.Employee {
	term = strings.ToLower(term)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []employee.Employee
	for _, e := range s.employees {
		if strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(strings.ToLower(e.Email), term) ||
			strings.Contains(strings.ToLower(e.EmployeeNumber), term) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) CreateEmployee(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.employees {
		if e.EmployeeNumber == req.EmployeeNumber {
			return employee.Employee{}, errDuplicateNumber
		}
	}

	name := req.Name
	if name == "" {
		name = strings.TrimSpace(req.FirstName + " " + req.LastName)
	}
	status := req.EmploymentStatus
	if status == "" {
		status = employee.StatusActive
	}

	emp := employee.Employee{
		ID:               uuid.NewString(),
		EmployeeNumber:   req.EmployeeNumber,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Name:             name,
		Email:            req.Email,
		Phone:            req.Phone,
		Position:         req.Position,
		Salary:           req.Salary,
		HireDate:         req.HireDate,
		EmploymentStatus: status,
		DepartmentID:     req.DepartmentID,
		DepartmentName:   s.departmentNameLocked(req.DepartmentID),
		CreatedAt:        now(),
		UpdatedAt:        now(),
	}
	s.employees = append(s.employees, emp)
	return emp, nil
}

func (s *Store) UpdateEmployee(id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		e := &s.employees[i]
		e.FirstName = req.FirstName
		e.LastName = req.LastName
		e.Name = req.Name
		if e.Name == "" {
			e.Name = strings.TrimSpace(req.FirstName + " " + req.LastName)
		}
		e.Email = req.Email
		e.Phone = req.Phone
		e.Position = req.Position
		e.Salary = req.Salary
		e.HireDate = req.HireDate
		if req.EmploymentStatus != "" {
			e.EmploymentStatus = req.EmploymentStatus
		}
		e.DepartmentID = req.DepartmentID
		e.DepartmentName = s.departmentNameLocked(req.DepartmentID)
		e.UpdatedAt = now()
		return *e, nil
	}
	return employee.Employee{}, errEmployeeNotFound
}

func (s *Store) DeleteEmployee(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return errEmployeeNotFound
}

func (s *Store) departmentNameLocked(id string) string {
	for _, d := range s.departments {
		if d.ID == id {
			return d.Name
		}
	}
	return ""
}

// --- departments ---

func (s *Store) Departments() []department.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]department.Department, len(s.departments))
	copy(out, s.departments)
	return out
}

func (s *Store) Department(id string) (department.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return department.Department{}, errDepartmentNotFound
}

func (s *Store) DepartmentEmployees(id string) ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := false
	for _, d := range s.departments {
		if d.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, errDepartmentNotFound
	}
	var out []employee.Employee
	for _, e := range s.employees {
		if e.DepartmentID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) CreateDepartment(req department.CreateDepartmentRequest) (department.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.departments {
		if d.Code == req.Code {
			return department.Department{}, errDuplicateDeptCode
		}
	}
	dept := department.Department{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		IsActive:    true,
		CreatedAt:   now(),
	}
	s.departments = append(s.departments, dept)
	return dept, nil
}

func (s *Store) UpdateDepartment(id string, req department.UpdateDepartmentRequest) (department.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.departments {
		if s.departments[i].ID != id {
			continue
		}
		d := &s.departments[i]
		d.Name = req.Name
		d.Code = req.Code
		d.Description = req.Description
		d.ManagerID = req.ManagerID
		if req.IsActive != nil {
			d.IsActive = *req.IsActive
		}
		d.UpdatedAt = now()
		return *d, nil
	}
	return department.Department{}, errDepartmentNotFound
}

func (s *Store) DeleteDepartment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.departments {
		if s.departments[i].ID == id {
			s.departments = append(s.departments[:i], s.departments[i+1:]...)
			return nil
		}
	}
	return errDepartmentNotFound
}

// --- leave types ---

func (s *Store) LeaveTypes(activeOnly bool) []leavetype.LeaveType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []leavetype.LeaveType
	for _, lt := range s.leaveTypes {
		if activeOnly && !lt.IsActive {
			continue
		}
		out = append(out, lt)
	}
	return out
}

func (s *Store) LeaveType(id string) (leavetype.LeaveType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lt := range s.leaveTypes {
		if lt.ID == id {
			return lt, nil
		}
	}
	return leavetype.LeaveType{}, errLeaveTypeNotFound
}

func (s *Store) CreateLeaveType(req leavetype.CreateLeaveTypeRequest) (leavetype.LeaveType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, lt := range s.leaveTypes {
		if lt.Code == req.Code {
			return leavetype.LeaveType{}, errDuplicateTypeCode
		}
	}
	lt := leavetype.LeaveType{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Code:               req.Code,
		Description:        req.Description,
		DefaultDays:        req.DefaultDays,
		IsPaid:             req.IsPaid,
		RequiresApproval:   req.RequiresApproval,
		MaxConsecutiveDays: req.MaxConsecutiveDays,
		MinNoticeDays:      req.MinNoticeDays,
		IsActive:           true,
		CreatedAt:          now(),
	}
	s.leaveTypes = append(s.leaveTypes, lt)
	return lt, nil
}

func (s *Store) UpdateLeaveType(id string, req leavetype.UpdateLeaveTypeRequest) (leavetype.LeaveType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leaveTypes {
		if s.leaveTypes[i].ID != id {
			continue
		}
		lt := &s.leaveTypes[i]
		lt.Name = req.Name
		lt.Code = req.Code
		lt.Description = req.Description
		lt.DefaultDays = req.DefaultDays
		lt.IsPaid = req.IsPaid
		lt.RequiresApproval = req.RequiresApproval
		lt.MaxConsecutiveDays = req.MaxConsecutiveDays
		lt.MinNoticeDays = req.MinNoticeDays
		if req.IsActive != nil {
			lt.IsActive = *req.IsActive
		}
		lt.UpdatedAt = now()
		return *lt, nil
	}
	return leavetype.LeaveType{}, errLeaveTypeNotFound
}

func (s *Store) DeleteLeaveType(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leaveTypes {
		if s.leaveTypes[i].ID == id {
			s.leaveTypes = append(s.leaveTypes[:i], s.leaveTypes[i+1:]...)
			return nil
		}
	}
	return errLeaveTypeNotFound
}

// --- allocations ---

func (s *Store) Allocations() []leaveallocation.Allocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]leaveallocation.Allocation, len(s.allocations))
	copy(out, s.allocations)
	return out
}

func (s *Store) Allocation(id string) (leaveallocation.Allocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.allocations {
		if a.ID == id {
			return a, nil
		}
	}
	return leaveallocation.Allocation{}, errAllocationNotFound
}

// EmployeeAllocations lists one employee's allocations; year <= 0 means all.
func (s *Store) EmployeeAllocations(employeeID string, year int) []leaveallocation.Allocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []leaveallocation.Allocation
	for _, a := range s.allocations {
		if a.EmployeeID != employeeID {
			continue
		}
		if year > 0 && a.Year != year {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (s *Store) CreateAllocation(req leaveallocation.CreateAllocationRequest) (leaveallocation.Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createAllocationLocked(req)
}

func (s *Store) createAllocationLocked(req leaveallocation.CreateAllocationRequest) (leaveallocation.Allocation, error) {
	for _, a := range s.allocations {
		if a.EmployeeID == req.EmployeeID && a.LeaveTypeID == req.LeaveTypeID && a.Year == req.Year {
			return leaveallocation.Allocation{}, errDuplicateAllocation
		}
	}

	var empName string
	for _, e := range s.employees {
		if e.ID == req.EmployeeID {
			empName = e.Name
		}
	}
	var typeName, typeCode string
	for _, lt := range s.leaveTypes {
		if lt.ID == req.LeaveTypeID {
			typeName, typeCode = lt.Name, lt.Code
		}
	}

	alloc := leaveallocation.Allocation{
		ID:            uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		EmployeeName:  empName,
		LeaveTypeID:   req.LeaveTypeID,
		LeaveTypeName: typeName,
		LeaveTypeCode: typeCode,
		AllocatedDays: req.AllocatedDays,
		RemainingDays: req.AllocatedDays,
		Year:          req.Year,
		IsActive:      true,
		ExpiryDate:    req.ExpiryDate,
		Notes:         req.Notes,
		CreatedAt:     now(),
	}
	s.allocations = append(s.allocations, alloc)
	return alloc, nil
}

func (s *Store) UpdateAllocation(id string, req leaveallocation.UpdateAllocationRequest) (leaveallocation.Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.allocations {
		if s.allocations[i].ID != id {
			continue
		}
		a := &s.allocations[i]
		a.AllocatedDays = req.AllocatedDays
		a.RemainingDays = remaining(a.AllocatedDays, a.UsedDays)
		if req.IsActive != nil {
			a.IsActive = *req.IsActive
		}
		a.ExpiryDate = req.ExpiryDate
		a.Notes = req.Notes
		a.UpdatedAt = now()
		return *a, nil
	}
	return leaveallocation.Allocation{}, errAllocationNotFound
}

func (s *Store) DeleteAllocation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.allocations {
		if s.allocations[i].ID == id {
			s.allocations = append(s.allocations[:i], s.allocations[i+1:]...)
			return nil
		}
	}
	return errAllocationNotFound
}

// AutoAllocate grants the default allocation of every active leave type to
// one employee for one year. Existing allocations are left untouched, so the
// operation is idempotent.
func (s *Store) AutoAllocate(employeeID string, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, e := range s.employees {
		if e.ID == employeeID {
			found = true
			break
		}
	}
	if !found {
		return 0, errEmployeeNotFound
	}

	created := 0
	for _, lt := range s.leaveTypes {
		if !lt.IsActive {
			continue
		}
		if _, err := s.createAllocationLocked(leaveallocation.CreateAllocationRequest{
			EmployeeID:    employeeID,
			LeaveTypeID:   lt.ID,
			AllocatedDays: lt.DefaultDays,
			Year:          year,
		}); err == nil {
			created++
		}
	}
	return created, nil
}

// BalanceSummary builds the per-type balance report for one employee/year.
func (s *Store) BalanceSummary(employeeID string, year int) (leaveallocation.BalanceSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var emp *employee.Employee
	for i := range s.employees {
		if s.employees[i].ID == employeeID {
			emp = &s.employees[i]
			break
		}
	}
	if emp == nil {
		return leaveallocation.BalanceSummary{}, errEmployeeNotFound
	}

	summary := leaveallocation.BalanceSummary{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.Name,
		EmployeeNumber: emp.EmployeeNumber,
		Year:           year,
		GeneratedAt:    now(),
	}
	for _, a := range s.allocations {
		if a.EmployeeID != employeeID || a.Year != year {
			continue
		}
		summary.LeaveBalances = append(summary.LeaveBalances, leaveallocation.Balance{
			LeaveTypeID:   a.LeaveTypeID,
			LeaveTypeName: a.LeaveTypeName,
			LeaveTypeCode: a.LeaveTypeCode,
			AllocatedDays: a.AllocatedDays,
			UsedDays:      a.UsedDays,
			RemainingDays: a.RemainingDays,
			PendingDays:   s.pendingDaysLocked(employeeID, a.LeaveTypeID, year),
			IsActive:      a.IsActive,
			ExpiryDate:    a.ExpiryDate,
		})
	}
	return summary, nil
}

func (s *Store) pendingDaysLocked(employeeID, leaveTypeID string, year int) int {
	total := 0
	for _, lv := range s.leaves {
		if lv.EmployeeID != employeeID || lv.LeaveTypeID != leaveTypeID || lv.Status != leave.StatusPending {
			continue
		}
		if start, err := leave.ParseDate(lv.StartDate); err == nil && start.Year() == year {
			total += lv.TotalDays
		}
	}
	return total
}

func remaining(allocated, used int) int {
	r := allocated - used
	if r < 0 {
		return 0
	}
	return r
}
