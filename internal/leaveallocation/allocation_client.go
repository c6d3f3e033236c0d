package leaveallocation

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"go-hris-cli/internal/gateway"
)

//go:generate mockgen -source=allocation_client.go -destination=mock/allocation_client_mock.go -package=mock
type Client interface {
	GetAll(ctx context.Context) ([]Allocation, error)
	GetByID(ctx context.Context, id string) (Allocation, error)
	GetByEmployee(ctx context.Context, employeeID string, year int) ([]Allocation, error)
	GetBalanceSummary(ctx context.Context, employeeID string, year int) (BalanceSummary, error)
	Create(ctx context.Context, req CreateAllocationRequest) (Allocation, error)
	Update(ctx context.Context, id string, req UpdateAllocationRequest) (Allocation, error)
	Delete(ctx context.Context, id string) error
	AutoAllocate(ctx context.Context, employeeID string, year int) error
}

type client struct {
	api    gateway.Caller
	logger *zap.Logger
}

func NewClient(api gateway.Caller, logger ...*zap.Logger) Client {
	l := zap.L().Named("leaveallocation.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveallocation.client")
	}
	return &client{api: api, logger: l}
}

func (c *client) GetAll(ctx context.Context) ([]Allocation, error) {
	var list gateway.List[Allocation]
	if err := c.api.Get(ctx, "/leaveallocations", nil, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) GetByID(ctx context.Context, id string) (Allocation, error) {
	var alloc Allocation
	if err := c.api.Get(ctx, "/leaveallocations/"+id, nil, &alloc); err != nil {
		return Allocation{}, err
	}
	return alloc, nil
}

// GetByEmployee lists one employee's allocations. year <= 0 means all years.
func (c *client) GetByEmployee(ctx context.Context, employeeID string, year int) ([]Allocation, error) {
	q := url.Values{}
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	var list gateway.List[Allocation]
	if err := c.api.Get(ctx, "/leaveallocations/employee/"+employeeID, q, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) GetBalanceSummary(ctx context.Context, employeeID string, year int) (BalanceSummary, error) {
	path := fmt.Sprintf("/leaveallocations/employee/%s/balance/%d", employeeID, year)
	var summary BalanceSummary
	if err := c.api.Get(ctx, path, nil, &summary); err != nil {
		return BalanceSummary{}, err
	}
	return summary, nil
}

func (c *client) Create(ctx context.Context, req CreateAllocationRequest) (Allocation, error) {
	c.logger.Debug("create allocation requested",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
	)
	var alloc Allocation
	if err := c.api.Post(ctx, "/leaveallocations", req, &alloc); err != nil {
		return Allocation{}, err
	}
	return alloc, nil
}

func (c *client) Update(ctx context.Context, id string, req UpdateAllocationRequest) (Allocation, error) {
	c.logger.Debug("update allocation requested", zap.String("allocation_id", id))
	var alloc Allocation
	if err := c.api.Put(ctx, "/leaveallocations/"+id, req, &alloc); err != nil {
		return Allocation{}, err
	}
	return alloc, nil
}

func (c *client) Delete(ctx context.Context, id string) error {
	c.logger.Debug("delete allocation requested", zap.String("allocation_id", id))
	return c.api.Delete(ctx, "/leaveallocations/"+id, nil)
}

// AutoAllocate asks the backend to grant the default allocation of every
// active leave type to one employee for one year. Idempotent on the backend.
func (c *client) AutoAllocate(ctx context.Context, employeeID string, year int) error {
	path := fmt.Sprintf("/leaveallocations/employee/%s/auto-allocate/%d", employeeID, year)
	return c.api.Post(ctx, path, struct{}{}, nil)
}
