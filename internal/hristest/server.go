package hristest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hris-cli/internal/department"
	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/employeeinfo"
	"go-hris-cli/internal/gateway"
	"go-hris-cli/internal/leave"
	"go-hris-cli/internal/leaveallocation"
	"go-hris-cli/internal/leavetype"
	"go-hris-cli/internal/shared/apperror"
	"go-hris-cli/internal/shared/response"
)

// Server is an in-memory stand-in for the HRIS backend: same routes, same
// envelope, same invariants. It backs the client's integration tests and the
// hris-stub development server. Not a production backend.
type Server struct {
	store  *Store
	logger *zap.Logger
}

func NewServer(store *Store, logger ...*zap.Logger) *Server {
	l := zap.L().Named("hristest")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hristest")
	}
	return &Server{store: store, logger: l}
}

func (s *Server) Store() *Store { return s.store }

// Router builds the gin engine implementing the /api contract.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	api.GET("/employees", s.listEmployees)
	api.GET("/employees/search", s.searchEmployees)
	api.GET("/employees/:id", s.getEmployee)
	api.POST("/employees", s.createEmployee)
	api.PUT("/employees/:id", s.updateEmployee)
	api.DELETE("/employees/:id", s.deleteEmployee)

	api.GET("/departments", s.listDepartments)
	api.GET("/departments/:id", s.getDepartment)
	api.GET("/departments/:id/employees", s.departmentEmployees)
	api.POST("/departments", s.createDepartment)
	api.PUT("/departments/:id", s.updateDepartment)
	api.DELETE("/departments/:id", s.deleteDepartment)

	api.GET("/leavetypes", s.listLeaveTypes)
	api.GET("/leavetypes/active", s.listActiveLeaveTypes)
	api.GET("/leavetypes/:id", s.getLeaveType)
	api.POST("/leavetypes", s.createLeaveType)
	api.PUT("/leavetypes/:id", s.updateLeaveType)
	api.DELETE("/leavetypes/:id", s.deleteLeaveType)

	api.GET("/leaves", s.listLeaves)
	api.GET("/leaves/:id", s.getLeave)
	api.GET("/leaves/employee/:id", s.employeeLeaves)
	api.GET("/leaves/status/:status", s.leavesByStatus)
	api.POST("/leaves", s.createLeave)
	api.PUT("/leaves/:id", s.updateLeave)
	api.DELETE("/leaves/:id", s.deleteLeave)
	api.POST("/leaves/:id/approval", s.decideLeave)
	api.POST("/leaves/:id/cancel", s.cancelLeave)

	api.GET("/leaveallocations", s.listAllocations)
	api.GET("/leaveallocations/:id", s.getAllocation)
	api.GET("/leaveallocations/employee/:id", s.employeeAllocations)
	api.GET("/leaveallocations/employee/:id/balance/:year", s.balanceSummary)
	api.POST("/leaveallocations", s.createAllocation)
	api.PUT("/leaveallocations/:id", s.updateAllocation)
	api.DELETE("/leaveallocations/:id", s.deleteAllocation)
	api.POST("/leaveallocations/employee/:id/auto-allocate/:year", s.autoAllocate)

	api.GET("/employeeinformation", s.listInformation)
	api.GET("/employeeinformation/:id", s.getInformation)
	api.GET("/employeeinformation/employee/:id", s.informationByEmployee)
	api.POST("/employeeinformation", s.createInformation)
	api.PUT("/employeeinformation/:id", s.updateInformation)
	api.DELETE("/employeeinformation/:id", s.deleteInformation)

	return r
}

func (s *Server) writeError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.Status, appErr.Message, appErr.Errors)
		return
	}
	response.Error(c, http.StatusInternalServerError, "An unexpected error occurred", nil)
}

// --- employees ---

func (s *Server) listEmployees(c *gin.Context) {
	response.Success(c, http.StatusOK, "", s.store.Employees())
}

func (s *Server) searchEmployees(c *gin.Context) {
	response.Success(c, http.StatusOK, "", s.store.SearchEmployees(c.Query("term")))
}

func (s *Server) getEmployee(c *gin.Context) {
	emp, err := s.store.Employee(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", emp)
}

func (s *Server) createEmployee(c *gin.Context) {
	var req employee.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	emp, err := s.store.CreateEmployee(req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Employee created", emp)
}

func (s *Server) updateEmployee(c *gin.Context) {
	var req employee.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	emp, err := s.store.UpdateEmployee(c.Param("id"), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employee updated", emp)
}

func (s *Server) deleteEmployee(c *gin.Context) {
	if err := s.store.DeleteEmployee(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employee deleted", nil)
}

// --- departments ---

func (s *Server) listDepartments(c *gin.Context) {
	response.Success(c, http.StatusOK, "", s.store.Departments())
}

func (s *Server) getDepartment(c *gin.Context) {
	dept, err := s.store.Department(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", dept)
}

func (s *Server) departmentEmployees(c *gin.Context) {
	emps, err := s.store.DepartmentEmployees(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", emps)
}

func (s *Server) createDepartment(c *gin.Context) {
	var req department.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	dept, err := s.store.CreateDepartment(req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Department created", dept)
}

func (s *Server) updateDepartment(c *gin.Context) {
	var req department.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	dept, err := s.store.UpdateDepartment(c.Param("id"), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Department updated", dept)
}

func (s *Server) deleteDepartment(c *gin.Context) {
	if err := s.store.DeleteDepartment(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Department deleted", nil)
}

// --- leave types ---

func (s *Server) listLeaveTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "", s.store.LeaveTypes(false))
}

func (s *Server) listActiveLeaveTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "", s.store.LeaveTypes(true))
}

func (s *Server) getLeaveType(c *gin.Context) {
	lt, err := s.store.LeaveType(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", lt)
}

func (s *Server) createLeaveType(c *gin.Context) {
	var req leavetype.CreateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	lt, err := s.store.CreateLeaveType(req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Leave type created", lt)
}

func (s *Server) updateLeaveType(c *gin.Context) {
	var req leavetype.UpdateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	lt, err := s.store.UpdateLeaveType(c.Param("id"), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave type updated", lt)
}

func (s *Server) deleteLeaveType(c *gin.Context) {
	if err := s.store.DeleteLeaveType(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave type deleted", nil)
}

// --- leaves ---

func (s *Server) listLeaves(c *gin.Context) {
	response.Success(c, http.StatusOK, "", s.store.Leaves())
}

func (s *Server) getLeave(c *gin.Context) {
	lv, err := s.store.Leave(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", lv)
}

func (s *Server) employeeLeaves(c *gin.Context) {
	response.Success(c, http.StatusOK, "", s.store.EmployeeLeaves(c.Param("id")))
}

func (s *Server) leavesByStatus(c *gin.Context) {
	response.Success(c, http.StatusOK, "", s.store.LeavesByStatus(c.Param("status")))
}

func (s *Server) createLeave(c *gin.Context) {
	var req leave.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	lv, err := s.store.CreateLeave(req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Leave request submitted", lv)
}

func (s *Server) updateLeave(c *gin.Context) {
	var req leave.UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	lv, err := s.store.UpdateLeave(c.Param("id"), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave request updated", lv)
}

func (s *Server) deleteLeave(c *gin.Context) {
	if err := s.store.DeleteLeave(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave request deleted", nil)
}

// decideLeave enforces the role header: approval decisions are HR-only here,
// matching the authority the client treats as advisory.
func (s *Server) decideLeave(c *gin.Context) {
	if c.GetHeader(gateway.HeaderRole) != gateway.RoleHR {
		response.Error(c, http.StatusForbidden, "Only HR can decide leave requests", nil)
		return
	}
	var req leave.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Status == leave.StatusRejected && req.RejectionReason == "" {
		response.Error(c, http.StatusBadRequest, "RejectionReason is required when status is Rejected", map[string][]string{
			"RejectionReason": {"required"},
		})
		return
	}
	lv, err := s.store.DecideLeave(c.Param("id"), req, "HR")
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave "+lv.Status, lv)
}

func (s *Server) cancelLeave(c *gin.Context) {
	lv, err := s.store.Leave(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	role := c.GetHeader(gateway.HeaderRole)
	if role != gateway.RoleHR && c.GetHeader(gateway.HeaderUser) != lv.EmployeeID {
		response.Error(c, http.StatusForbidden, "Only HR or the owning employee can cancel a leave", nil)
		return
	}

	// Body dikirim sebagai JSON string polos
	raw, _ := io.ReadAll(c.Request.Body)
	var reason string
	if err := json.Unmarshal(raw, &reason); err != nil {
		reason = string(raw)
	}

	cancelled, err := s.store.CancelLeave(lv.ID, reason)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave cancelled", cancelled)
}

// --- allocations ---

func (s *Server) listAllocations(c *gin.Context) {
	response.Success(c, http.StatusOK, "", s.store.Allocations())
}

func (s *Server) getAllocation(c *gin.Context) {
	alloc, err := s.store.Allocation(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", alloc)
}

func (s *Server) employeeAllocations(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	response.Success(c, http.StatusOK, "", s.store.EmployeeAllocations(c.Param("id"), year))
}

func (s *Server) balanceSummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid year", nil)
		return
	}
	summary, err := s.store.BalanceSummary(c.Param("id"), year)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", summary)
}

func (s *Server) createAllocation(c *gin.Context) {
	var req leaveallocation.CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	alloc, err := s.store.CreateAllocation(req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Allocation created", alloc)
}

func (s *Server) updateAllocation(c *gin.Context) {
	var req leaveallocation.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	alloc, err := s.store.UpdateAllocation(c.Param("id"), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Allocation updated", alloc)
}

func (s *Server) deleteAllocation(c *gin.Context) {
	if err := s.store.DeleteAllocation(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Allocation deleted", nil)
}

func (s *Server) autoAllocate(c *gin.Context) {
	if c.GetHeader(gateway.HeaderRole) != gateway.RoleHR {
		response.Error(c, http.StatusForbidden, "Only HR can auto-allocate leave", nil)
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid year", nil)
		return
	}
	created, err := s.store.AutoAllocate(c.Param("id"), year)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Auto-allocation complete", gin.H{
		"message": "Auto-allocation complete",
		"created": created,
	})
}

// --- employee information ---

func (s *Server) listInformation(c *gin.Context) {
	response.Success(c, http.StatusOK, "", s.store.InformationRecords())
}

func (s *Server) getInformation(c *gin.Context) {
	info, err := s.store.Information(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", info)
}

func (s *Server) informationByEmployee(c *gin.Context) {
	info, err := s.store.InformationByEmployee(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", info)
}

func (s *Server) createInformation(c *gin.Context) {
	var req employeeinfo.CreateInformationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	info, err := s.store.CreateInformation(req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Employee information created", info)
}

func (s *Server) updateInformation(c *gin.Context) {
	var req employeeinfo.UpdateInformationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	info, err := s.store.UpdateInformation(c.Param("id"), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employee information updated", info)
}

func (s *Server) deleteInformation(c *gin.Context) {
	if err := s.store.DeleteInformation(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employee information deleted", nil)
}
