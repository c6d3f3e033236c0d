package leave

import (
	"context"

	"go.uber.org/zap"

	"go-hris-cli/internal/gateway"
	leaveerrors "go-hris-cli/internal/leave/errors"
)

//go:generate mockgen -source=leave_client.go -destination=mock/leave_client_mock.go -package=mock
type Client interface {
	GetAll(ctx context.Context) ([]Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	GetByStatus(ctx context.Context, status string) ([]Leave, error)
	Create(ctx context.Context, req CreateLeaveRequest) (Leave, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (Leave, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string, req ApprovalRequest) (Leave, error)
	Cancel(ctx context.Context, id, cancellationReason string) (Leave, error)
}

type client struct {
	api    gateway.Caller
	logger *zap.Logger
}

func NewClient(api gateway.Caller, logger ...*zap.Logger) Client {
	l := zap.L().Named("leave.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.client")
	}
	return &client{api: api, logger: l}
}

func (c *client) GetAll(ctx context.Context) ([]Leave, error) {
	var list gateway.List[Leave]
	if err := c.api.Get(ctx, "/leaves", nil, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) GetByID(ctx context.Context, id string) (Leave, error) {
	var lv Leave
	if err := c.api.Get(ctx, "/leaves/"+id, nil, &lv); err != nil {
		return Leave{}, err
	}
	return lv, nil
}

func (c *client) GetByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var list gateway.List[Leave]
	if err := c.api.Get(ctx, "/leaves/employee/"+employeeID, nil, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) GetByStatus(ctx context.Context, status string) ([]Leave, error) {
	var list gateway.List[Leave]
	if err := c.api.Get(ctx, "/leaves/status/"+status, nil, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) Create(ctx context.Context, req CreateLeaveRequest) (Leave, error) {
	c.logger.Debug("create leave requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)
	var lv Leave
	if err := c.api.Post(ctx, "/leaves", req, &lv); err != nil {
		return Leave{}, err
	}
	return lv, nil
}

func (c *client) Update(ctx context.Context, id string, req UpdateLeaveRequest) (Leave, error) {
	c.logger.Debug("update leave requested", zap.String("leave_id", id))
	var lv Leave
	if err := c.api.Put(ctx, "/leaves/"+id, req, &lv); err != nil {
		return Leave{}, err
	}
	return lv, nil
}

func (c *client) Delete(ctx context.Context, id string) error {
	c.logger.Debug("delete leave requested", zap.String("leave_id", id))
	return c.api.Delete(ctx, "/leaves/"+id, nil)
}

// Approve submits an HR decision. The role gate here is advisory; the
// backend enforces it authoritatively.
func (c *client) Approve(ctx context.Context, id string, req ApprovalRequest) (Leave, error) {
	if req.Status == StatusRejected && req.RejectionReason == "" {
		return Leave{}, leaveerrors.ErrRejectionReasonRequired
	}
	c.logger.Debug("leave approval requested",
		zap.String("leave_id", id),
		zap.String("decision", req.Status),
	)
	var lv Leave
	if err := c.api.Post(ctx, "/leaves/"+id+"/approval", req, &lv); err != nil {
		return Leave{}, err
	}
	return lv, nil
}

func (c *client) Cancel(ctx context.Context, id, cancellationReason string) (Leave, error) {
	if cancellationReason == "" {
		return Leave{}, leaveerrors.ErrCancellationReasonRequired
	}
	c.logger.Debug("leave cancellation requested", zap.String("leave_id", id))
	var lv Leave
	if err := c.api.Post(ctx, "/leaves/"+id+"/cancel", cancellationReason, &lv); err != nil {
		return Leave{}, err
	}
	return lv, nil
}
