package leave

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	leaveerrors "go-hris-cli/internal/leave/errors"
	"go-hris-cli/internal/leaveallocation"
	"go-hris-cli/internal/shared/validate"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=planner.go -destination=mock/planner_mock.go -package=mock

// AllocationFinder is the slice of the allocation client the planner needs.
type AllocationFinder interface {
	GetByEmployee(ctx context.Context, employeeID string, year int) ([]leaveallocation.Allocation, error)
}

// ParseDate parses a calendar date in the backend's YYYY-MM-DD format.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// TotalDays is the inclusive day count between two calendar dates: the same
// day counts as 1, swapping start and end yields the same result. Weekends
// and holidays are not excluded. Zero when either date is missing.
func TotalDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// Planner owns the interactive leave-request flow: compute the requested
// duration, check it against the employee's remaining balance, and only then
// submit to the backend.
type Planner struct {
	leaves      Client
	allocations AllocationFinder
	logger      *zap.Logger
}

func NewPlanner(leaves Client, allocations AllocationFinder, logger ...*zap.Logger) *Planner {
	l := zap.L().Named("leave.planner")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.planner")
	}
	return &Planner{leaves: leaves, allocations: allocations, logger: l}
}

// FindBalance looks up the allocation backing one (employee, leaveType) pair,
// scoped to a single year so multi-year allocation lists can never make the
// match order-dependent.
func (p *Planner) FindBalance(ctx context.Context, employeeID, leaveTypeID string, year int) (leaveallocation.Allocation, bool, error) {
	allocs, err := p.allocations.GetByEmployee(ctx, employeeID, year)
	if err != nil {
		return leaveallocation.Allocation{}, false, err
	}
	for _, alloc := range allocs {
		if alloc.LeaveTypeID == leaveTypeID {
			return alloc, true, nil
		}
	}
	return leaveallocation.Allocation{}, false, nil
}

// Submit validates the form, fills in the computed total days and runs the
// balance precheck before calling the create operation. The balance year is
// the year of the leave's start date. When no allocation record exists, or
// the balance fetch itself fails, submission proceeds and the backend stays
// the final authority.
func (p *Planner) Submit(ctx context.Context, req CreateLeaveRequest) (Leave, error) {
	if err := validate.Struct(req); err != nil {
		return Leave{}, err
	}

	start, err := ParseDate(req.StartDate)
	if err != nil {
		return Leave{}, err
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return Leave{}, err
	}
	req.TotalDays = TotalDays(start, end)

	alloc, found, err := p.FindBalance(ctx, req.EmployeeID, req.LeaveTypeID, start.Year())
	if err != nil {
		// Precheck gagal diambil: lanjut submit, backend yang memutuskan
		p.logger.Warn("balance lookup failed, skipping precheck",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
	}
	if found && req.TotalDays > alloc.RemainingDays {
		p.logger.Info("leave request rejected locally",
			zap.String("employee_id", req.EmployeeID),
			zap.Int("requested_days", req.TotalDays),
			zap.Int("remaining_days", alloc.RemainingDays),
		)
		return Leave{}, leaveerrors.ErrInsufficientBalance(alloc.RemainingDays)
	}

	return p.leaves.Create(ctx, req)
}
