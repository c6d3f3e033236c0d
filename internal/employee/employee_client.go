package employee

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"go-hris-cli/internal/gateway"
)

//go:generate mockgen -source=employee_client.go -destination=mock/employee_client_mock.go -package=mock
type Client interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Search(ctx context.Context, term string) ([]Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}

type client struct {
	api    gateway.Caller
	logger *zap.Logger
}

func NewClient(api gateway.Caller, logger ...*zap.Logger) Client {
	l := zap.L().Named("employee.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.client")
	}
	return &client{api: api, logger: l}
}

func (c *client) GetAll(ctx context.Context) ([]Employee, error) {
	var list gateway.List[Employee]
	if err := c.api.Get(ctx, "/employees", nil, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) GetByID(ctx context.Context, id string) (Employee, error) {
	var emp Employee
	if err := c.api.Get(ctx, "/employees/"+id, nil, &emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (c *client) Search(ctx context.Context, term string) ([]Employee, error) {
	var list gateway.List[Employee]
	q := url.Values{"term": []string{term}}
	if err := c.api.Get(ctx, "/employees/search", q, &list); err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (c *client) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	c.logger.Debug("create employee requested", zap.String("employee_number", req.EmployeeNumber))
	var emp Employee
	if err := c.api.Post(ctx, "/employees", req, &emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (c *client) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error) {
	c.logger.Debug("update employee requested", zap.String("employee_id", id))
	var emp Employee
	if err := c.api.Put(ctx, "/employees/"+id, req, &emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (c *client) Delete(ctx context.Context, id string) error {
	c.logger.Debug("delete employee requested", zap.String("employee_id", id))
	return c.api.Delete(ctx, "/employees/"+id, nil)
}
