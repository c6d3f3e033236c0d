package leaveallocation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"go-hris-cli/internal/employee"
	allocationerrors "go-hris-cli/internal/leaveallocation/errors"
)

//go:generate mockgen -source=allocator.go -destination=mock/allocator_mock.go -package=mock

// EmployeeSource is the slice of the employee client the allocator needs.
type EmployeeSource interface {
	GetAll(ctx context.Context) ([]employee.Employee, error)
}

// AutoAllocateClient is the slice of the allocation client the allocator needs.
type AutoAllocateClient interface {
	AutoAllocate(ctx context.Context, employeeID string, year int) error
}

// Progress is reported after every processed employee.
type Progress struct {
	Current int
	Total   int
}

// Result is the aggregate outcome of one bulk run.
type Result struct {
	Year      int
	Total     int
	Succeeded int
	Failed    int
}

// Summary renders the user-facing completion message.
func (r Result) Summary() string {
	if r.Failed == 0 {
		return fmt.Sprintf("Successfully allocated leave for %d employees", r.Succeeded)
	}
	return fmt.Sprintf("Allocated leave for %d employees, %d failed", r.Succeeded, r.Failed)
}

// Allocator drives the HR bulk "auto-allocate leave to all active employees"
// workflow for one target year.
type Allocator struct {
	employees   EmployeeSource
	allocations AutoAllocateClient
	logger      *zap.Logger
}

func NewAllocator(employees EmployeeSource, allocations AutoAllocateClient, logger ...*zap.Logger) *Allocator {
	l := zap.L().Named("leaveallocation.allocator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveallocation.allocator")
	}
	return &Allocator{employees: employees, allocations: allocations, logger: l}
}

// Run fetches all employees, keeps the active ones and invokes the backend's
// auto-allocate operation for each of them, one at a time in list order. The
// sequencing is deliberate: it bounds load on the backend and keeps the
// progress counter monotonic. Individual failures are counted, not retried,
// and never abort the loop. onProgress, when non-nil, is called synchronously
// after every employee.
func (a *Allocator) Run(ctx context.Context, year int, onProgress func(Progress)) (Result, error) {
	if year <= 0 {
		return Result{}, allocationerrors.ErrInvalidYear
	}

	a.logger.Debug("bulk auto-allocate requested", zap.Int("year", year))

	all, err := a.employees.GetAll(ctx)
	if err != nil {
		a.logger.Error("bulk auto-allocate employee fetch failed", zap.Error(err))
		return Result{}, err
	}

	active := make([]employee.Employee, 0, len(all))
	for _, emp := range all {
		if emp.EmploymentStatus == employee.StatusActive {
			active = append(active, emp)
		}
	}
	if len(active) == 0 {
		return Result{}, allocationerrors.ErrNoActiveEmployees
	}

	result := Result{Year: year, Total: len(active)}
	for i, emp := range active {
		if err := ctx.Err(); err != nil {
			a.logger.Warn("bulk auto-allocate interrupted",
				zap.Int("processed", i),
				zap.Int("total", result.Total),
			)
			return result, err
		}

		if err := a.allocations.AutoAllocate(ctx, emp.ID, year); err != nil {
			result.Failed++
			a.logger.Warn("auto-allocate failed for employee",
				zap.String("employee_id", emp.ID),
				zap.Int("year", year),
				zap.Error(err),
			)
		} else {
			result.Succeeded++
		}

		if onProgress != nil {
			onProgress(Progress{Current: i + 1, Total: result.Total})
		}
	}

	a.logger.Info("bulk auto-allocate finished",
		zap.Int("year", year),
		zap.Int("total", result.Total),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
