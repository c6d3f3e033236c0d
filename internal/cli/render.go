package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"go-hris-cli/internal/department"
	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/employeeinfo"
	"go-hris-cli/internal/leave"
	"go-hris-cli/internal/leaveallocation"
	"go-hris-cli/internal/leavetype"
	"go-hris-cli/internal/shared/apperror"
)

// FormatError renders any error as the single notification line the console
// prints. Validation details are appended after the message.
func FormatError(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if len(appErr.Errors) == 0 {
			return appErr.Message
		}
		fields := make([]string, 0, len(appErr.Errors))
		for field := range appErr.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, field+": "+strings.Join(appErr.Errors[field], ", "))
		}
		return appErr.Message + " (" + strings.Join(parts, "; ") + ")"
	}
	return err.Error()
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func renderEmployees(w io.Writer, employees []employee.Employee) {
	if len(employees) == 0 {
		fmt.Fprintln(w, "No employees found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNUMBER\tNAME\tPOSITION\tDEPARTMENT\tSTATUS")
	for _, e := range employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.EmployeeNumber, e.Name, e.Position, e.DepartmentName, e.EmploymentStatus)
	}
	tw.Flush()
}

func renderEmployee(w io.Writer, e employee.Employee) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%s\n", e.ID)
	fmt.Fprintf(tw, "Number\t%s\n", e.EmployeeNumber)
	fmt.Fprintf(tw, "Name\t%s\n", e.Name)
	fmt.Fprintf(tw, "Email\t%s\n", e.Email)
	if e.Phone != "" {
		fmt.Fprintf(tw, "Phone\t%s\n", e.Phone)
	}
	fmt.Fprintf(tw, "Position\t%s\n", e.Position)
	fmt.Fprintf(tw, "Department\t%s\n", e.DepartmentName)
	fmt.Fprintf(tw, "Status\t%s\n", e.EmploymentStatus)
	fmt.Fprintf(tw, "Salary\t%s\n", e.Salary.String())
	fmt.Fprintf(tw, "Hired\t%s\n", e.HireDate)
	tw.Flush()
}

func renderDepartments(w io.Writer, departments []department.Department) {
	if len(departments) == 0 {
		fmt.Fprintln(w, "No departments found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCODE\tNAME\tMANAGER\tACTIVE")
	for _, d := range departments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", d.ID, d.Code, d.Name, d.ManagerName, d.IsActive)
	}
	tw.Flush()
}

func renderDepartment(w io.Writer, d department.Department) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%s\n", d.ID)
	fmt.Fprintf(tw, "Code\t%s\n", d.Code)
	fmt.Fprintf(tw, "Name\t%s\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(tw, "Description\t%s\n", d.Description)
	}
	if d.ManagerName != "" {
		fmt.Fprintf(tw, "Manager\t%s\n", d.ManagerName)
	}
	fmt.Fprintf(tw, "Active\t%t\n", d.IsActive)
	tw.Flush()
}

func renderLeaveTypes(w io.Writer, types []leavetype.LeaveType) {
	if len(types) == 0 {
		fmt.Fprintln(w, "No leave types found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCODE\tNAME\tDEFAULT DAYS\tPAID\tACTIVE")
	for _, lt := range types {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%t\t%t\n",
			lt.ID, lt.Code, lt.Name, lt.DefaultDays, lt.IsPaid, lt.IsActive)
	}
	tw.Flush()
}

func renderLeaves(w io.Writer, leaves []leave.Leave) {
	if len(leaves) == 0 {
		fmt.Fprintln(w, "No leave requests found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tEMPLOYEE\tTYPE\tFROM\tTO\tDAYS\tSTATUS")
	for _, lv := range leaves {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			lv.ID, lv.EmployeeName, lv.LeaveTypeName, lv.StartDate, lv.EndDate, lv.TotalDays, lv.Status)
	}
	tw.Flush()
}

func renderLeave(w io.Writer, lv leave.Leave) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%s\n", lv.ID)
	fmt.Fprintf(tw, "Employee\t%s\n", lv.EmployeeName)
	fmt.Fprintf(tw, "Type\t%s\n", lv.LeaveTypeName)
	fmt.Fprintf(tw, "From\t%s\n", lv.StartDate)
	fmt.Fprintf(tw, "To\t%s\n", lv.EndDate)
	fmt.Fprintf(tw, "Days\t%d\n", lv.TotalDays)
	fmt.Fprintf(tw, "Reason\t%s\n", lv.Reason)
	fmt.Fprintf(tw, "Status\t%s\n", lv.Status)
	if lv.ApproverComments != "" {
		fmt.Fprintf(tw, "Comments\t%s\n", lv.ApproverComments)
	}
	if lv.RejectionReason != "" {
		fmt.Fprintf(tw, "Rejection reason\t%s\n", lv.RejectionReason)
	}
	if lv.CancellationReason != "" {
		fmt.Fprintf(tw, "Cancellation reason\t%s\n", lv.CancellationReason)
	}
	tw.Flush()
}

func renderAllocations(w io.Writer, allocations []leaveallocation.Allocation) {
	if len(allocations) == 0 {
		fmt.Fprintln(w, "No allocations found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tEMPLOYEE\tTYPE\tYEAR\tALLOCATED\tUSED\tREMAINING")
	for _, a := range allocations {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			a.ID, a.EmployeeName, a.LeaveTypeName, a.Year, a.AllocatedDays, a.UsedDays, a.RemainingDays)
	}
	tw.Flush()
}

func renderBalanceSummary(w io.Writer, summary leaveallocation.BalanceSummary) {
	fmt.Fprintf(w, "Leave balance for %s (%s), %d\n\n",
		summary.EmployeeName, summary.EmployeeNumber, summary.Year)
	if len(summary.LeaveBalances) == 0 {
		fmt.Fprintln(w, "No allocations for this year")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "TYPE\tALLOCATED\tUSED\tPENDING\tREMAINING")
	for _, b := range summary.LeaveBalances {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n",
			b.LeaveTypeName, b.AllocatedDays, b.UsedDays, b.PendingDays, b.RemainingDays)
	}
	tw.Flush()
}

func renderInformation(w io.Writer, info employeeinfo.Information) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID\t%s\n", info.ID)
	fmt.Fprintf(tw, "Employee\t%s\n", info.EmployeeID)
	if info.Address != "" {
		fmt.Fprintf(tw, "Address\t%s\n", info.Address)
	}
	if info.City != "" {
		fmt.Fprintf(tw, "City\t%s\n", info.City)
	}
	if info.Country != "" {
		fmt.Fprintf(tw, "Country\t%s\n", info.Country)
	}
	fmt.Fprintf(tw, "Phone\t%s\n", info.PhoneNumber)
	fmt.Fprintf(tw, "Date of birth\t%s\n", info.DateOfBirth)
	fmt.Fprintf(tw, "Emergency contact\t%s (%s) %s\n",
		info.EmergencyContactName, info.EmergencyContactRelationship, info.EmergencyContactPhone)
	if info.BankName != "" {
		fmt.Fprintf(tw, "Bank\t%s %s\n", info.BankName, info.BankAccountNumber)
	}
	tw.Flush()
}
