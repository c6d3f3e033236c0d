package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/leave"
	"go-hris-cli/internal/leaveallocation"
)

// Workbook assembles an xlsx snapshot of the dashboard lists.
type Workbook struct {
	file   *excelize.File
	logger *zap.Logger
}

func NewWorkbook(logger ...*zap.Logger) *Workbook {
	l := zap.L().Named("export")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export")
	}
	return &Workbook{file: excelize.NewFile(), logger: l}
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// AddEmployees writes an "Employees" sheet.
func (w *Workbook) AddEmployees(employees []employee.Employee) error {
	const sheet = "Employees"
	if err := w.newSheet(sheet, []string{
		"Employee Number", "Name", "Email", "Position", "Department", "Salary", "Hire Date", "Status",
	}); err != nil {
		return err
	}
	for i, emp := range employees {
		row := i + 2
		w.setRow(sheet, row,
			emp.EmployeeNumber,
			emp.Name,
			emp.Email,
			emp.Position,
			emp.DepartmentName,
			emp.Salary.String(),
			emp.HireDate,
			emp.EmploymentStatus,
		)
	}
	return nil
}

// AddAllocations writes a "Leave Allocations" sheet.
func (w *Workbook) AddAllocations(allocations []leaveallocation.Allocation) error {
	const sheet = "Leave Allocations"
	if err := w.newSheet(sheet, []string{
		"Employee", "Leave Type", "Year", "Allocated", "Used", "Remaining",
	}); err != nil {
		return err
	}
	for i, alloc := range allocations {
		row := i + 2
		w.setRow(sheet, row,
			alloc.EmployeeName,
			alloc.LeaveTypeName,
			alloc.Year,
			alloc.AllocatedDays,
			alloc.UsedDays,
			alloc.RemainingDays,
		)
	}
	return nil
}

// AddLeaves writes a "Leave Requests" sheet.
func (w *Workbook) AddLeaves(leaves []leave.Leave) error {
	const sheet = "Leave Requests"
	if err := w.newSheet(sheet, []string{
		"Employee", "Leave Type", "Start Date", "End Date", "Days", "Status", "Reason",
	}); err != nil {
		return err
	}
	for i, lv := range leaves {
		row := i + 2
		w.setRow(sheet, row,
			lv.EmployeeName,
			lv.LeaveTypeName,
			lv.StartDate,
			lv.EndDate,
			lv.TotalDays,
			lv.Status,
			lv.Reason,
		)
	}
	return nil
}

// Save writes the workbook and drops the default empty sheet.
func (w *Workbook) Save(path string) error {
	w.file.DeleteSheet("Sheet1")
	if err := w.file.SaveAs(path); err != nil {
		return err
	}
	w.logger.Info("workbook saved", zap.String("path", path))
	return nil
}

func (w *Workbook) newSheet(name string, headers []string) error {
	index, err := w.file.NewSheet(name)
	if err != nil {
		return err
	}
	w.file.SetActiveSheet(index)

	headerStyle, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(name, cell, h); err != nil {
			return err
		}
		if err := w.file.SetCellStyle(name, cell, cell, headerStyle); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workbook) setRow(sheet string, row int, values ...any) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		if err := w.file.SetCellValue(sheet, cell, v); err != nil {
			w.logger.Warn("set cell failed",
				zap.String("cell", fmt.Sprintf("%s!%s", sheet, cell)),
				zap.Error(err),
			)
		}
	}
}
