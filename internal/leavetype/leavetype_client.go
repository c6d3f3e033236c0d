package leavetype

import (
	"context"

	"go.uber.org/zap"

	"go-hris-cli/internal/gateway"
)

//go:generate mockgen -source=leavetype_client.go -destination=mock/leavetype_client_mock.go -package=mock
type Client interface {
	GetAll(ctx context.Context) ([]LeaveType, error)
	GetActive(ctx context.Context) ([]LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveType, error)
	Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveType, error)
	Delete(ctx context.Context, id string) error
}

type client struct {
	api    gateway.Caller
	logger *zap.Logger
}

func NewClient(api gateway.Caller, logger ...*zap.Logger) Client {
	l := zap.L().Named("leavetype.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.client")
	}
	return &client{api: api, logger: l}
}

func (c *client) GetAll(ctx context.Context) ([]LeaveType, error) {
	var list gateway.List[LeaveType]
	if err := c.api.Get(ctx, "/leavetypes", nil, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) GetActive(ctx context.Context) ([]LeaveType, error) {
	var list gateway.List[LeaveType]
	if err := c.api.Get(ctx, "/leavetypes/active", nil, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) GetByID(ctx context.Context, id string) (LeaveType, error) {
	var lt LeaveType
	if err := c.api.Get(ctx, "/leavetypes/"+id, nil, &lt); err != nil {
		return LeaveType{}, err
	}
	return lt, nil
}

func (c *client) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveType, error) {
	c.logger.Debug("create leave type requested", zap.String("code", req.Code))
	var lt LeaveType
	if err := c.api.Post(ctx, "/leavetypes", req, &lt); err != nil {
		return LeaveType{}, err
	}
	return lt, nil
}

func (c *client) Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveType, error) {
	c.logger.Debug("update leave type requested", zap.String("leave_type_id", id))
	var lt LeaveType
	if err := c.api.Put(ctx, "/leavetypes/"+id, req, &lt); err != nil {
		return LeaveType{}, err
	}
	return lt, nil
}

func (c *client) Delete(ctx context.Context, id string) error {
	c.logger.Debug("delete leave type requested", zap.String("leave_type_id", id))
	return c.api.Delete(ctx, "/leavetypes/"+id, nil)
}
