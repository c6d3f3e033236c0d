package department

import (
	"context"

	"go.uber.org/zap"

	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/gateway"
)

//go:generate mockgen -source=department_client.go -destination=mock/department_client_mock.go -package=mock
type Client interface {
	GetAll(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	GetEmployees(ctx context.Context, id string) ([]employee.Employee, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (Department, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (Department, error)
	Delete(ctx context.Context, id string) error
}

type client struct {
	api    gateway.Caller
	logger *zap.Logger
}

func NewClient(api gateway.Caller, logger ...*zap.Logger) Client {
	l := zap.L().Named("department.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.client")
	}
	return &client{api: api, logger: l}
}

func (c *client) GetAll(ctx context.Context) ([]Department, error) {
	var list gateway.List[Department]
	if err := c.api.Get(ctx, "/departments", nil, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) GetByID(ctx context.Context, id string) (Department, error) {
	var dept Department
	if err := c.api.Get(ctx, "/departments/"+id, nil, &dept); err != nil {
		return Department{}, err
	}
	return dept, nil
}

func (c *client) GetEmployees(ctx context.Context, id string) ([]employee.Employee, error) {
	var list gateway.List[employee.Employee]
	if err := c.api.Get(ctx, "/departments/"+id+"/employees", nil, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) Create(ctx context.Context, req CreateDepartmentRequest) (Department, error) {
	c.logger.Debug("create department requested", zap.String("code", req.Code))
	var dept Department
	if err := c.api.Post(ctx, "/departments", req, &dept); err != nil {
		return Department{}, err
	}
	return dept, nil
}

func (c *client) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (Department, error) {
	c.logger.Debug("update department requested", zap.String("department_id", id))
	var dept Department
	if err := c.api.Put(ctx, "/departments/"+id, req, &dept); err != nil {
		return Department{}, err
	}
	return dept, nil
}

func (c *client) Delete(ctx context.Context, id string) error {
	c.logger.Debug("delete department requested", zap.String("department_id", id))
	return c.api.Delete(ctx, "/departments/"+id, nil)
}
