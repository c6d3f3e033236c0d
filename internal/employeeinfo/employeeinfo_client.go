package employeeinfo

import (
	"context"

	"go.uber.org/zap"

	"go-hris-cli/internal/gateway"
)

//go:generate mockgen -source=employeeinfo_client.go -destination=mock/employeeinfo_client_mock.go -package=mock
type Client interface {
	GetAll(ctx context.Context) ([]Information, error)
	GetByID(ctx context.Context, id string) (Information, error)
	GetByEmployee(ctx context.Context, employeeID string) (Information, error)
	Create(ctx context.Context, req CreateInformationRequest) (Information, error)
	Update(ctx context.Context, id string, req UpdateInformationRequest) (Information, error)
	Delete(ctx context.Context, id string) error
}

type client struct {
	api    gateway.Caller
	logger *zap.Logger
}

func NewClient(api gateway.Caller, logger ...*zap.Logger) Client {
	l := zap.L().Named("employeeinfo.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeeinfo.client")
	}
	return &client{api: api, logger: l}
}

func (c *client) GetAll(ctx context.Context) ([]Information, error) {
	var list gateway.List[Information]
	if err := c.api.Get(ctx, "/employeeinformation", nil, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) GetByID(ctx context.Context, id string) (Information, error) {
	var info Information
	if err := c.api.Get(ctx, "/employeeinformation/"+id, nil, &info); err != nil {
		return Information{}, err
	}
	return info, nil
}

func (c *client) GetByEmployee(ctx context.Context, employeeID string) (Information, error) {
	var info Information
	if err := c.api.Get(ctx, "/employeeinformation/employee/"+employeeID, nil, &info); err != nil {
		return Information{}, err
	}
	return info, nil
}

func (c *client) Create(ctx context.Context, req CreateInformationRequest) (Information, error) {
	c.logger.Debug("create employee information requested", zap.String("employee_id", req.EmployeeID))
	var info Information
	if err := c.api.Post(ctx, "/employeeinformation", req, &info); err != nil {
		return Information{}, err
	}
	return info, nil
}

func (c *client) Update(ctx context.Context, id string, req UpdateInformationRequest) (Information, error) {
	c.logger.Debug("update employee information requested", zap.String("information_id", id))
	var info Information
	if err := c.api.Put(ctx, "/employeeinformation/"+id, req, &info); err != nil {
		return Information{}, err
	}
	return info, nil
}

func (c *client) Delete(ctx context.Context, id string) error {
	c.logger.Debug("delete employee information requested", zap.String("information_id", id))
	return c.api.Delete(ctx, "/employeeinformation/"+id, nil)
}
