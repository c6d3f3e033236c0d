package export_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/export"
	"go-hris-cli/internal/leave"
	"go-hris-cli/internal/leaveallocation"
)

func TestWorkbookExport(t *testing.T) {
	wb := export.NewWorkbook()
	defer wb.Close()

	require.NoError(t, wb.AddEmployees([]employee.Employee{
		{
			EmployeeNumber:   "EMP-0001",
			Name:             "Andi Wijaya",
			Email:            "andi@example.com",
			Position:         "Engineer",
			DepartmentName:   "Engineering",
			Salary:           decimal.NewFromInt(12_000_000),
			HireDate:         "2022-03-01",
			EmploymentStatus: employee.StatusActive,
		},
	}))
	require.NoError(t, wb.AddAllocations([]leaveallocation.Allocation{
		{EmployeeName: "Andi Wijaya", LeaveTypeName: "Annual Leave", Year: 2026, AllocatedDays: 20, UsedDays: 5, RemainingDays: 15},
	}))
	require.NoError(t, wb.AddLeaves([]leave.Leave{
		{EmployeeName: "Andi Wijaya", LeaveTypeName: "Annual Leave", StartDate: "2026-03-10", EndDate: "2026-03-14", TotalDays: 5, Status: leave.StatusApproved, Reason: "Family trip"},
	}))

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, wb.Save(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Employees", "Leave Allocations", "Leave Requests"}, f.GetSheetList())

	name, err := f.GetCellValue("Employees", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Andi Wijaya", name)

	days, err := f.GetCellValue("Leave Requests", "E2")
	require.NoError(t, err)
	assert.Equal(t, "5", days)

	remaining, err := f.GetCellValue("Leave Allocations", "F2")
	require.NoError(t, err)
	assert.Equal(t, "15", remaining)
}
