package app

import (
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-hris-cli/internal/department"
	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/employeeinfo"
	"go-hris-cli/internal/gateway"
	"go-hris-cli/internal/leave"
	"go-hris-cli/internal/leaveallocation"
	"go-hris-cli/internal/leavetype"
	"go-hris-cli/internal/session"
)

// App wires the whole client together: session manager first (it is the
// gateway's identity provider), then the gateway, then the resource clients
// and the two workflows on top of them.
type App struct {
	Config  Config
	Session *session.Manager
	Gateway *gateway.Client

	Employees    employee.Client
	Departments  department.Client
	LeaveTypes   leavetype.Client
	Leaves       leave.Client
	Allocations  leaveallocation.Client
	EmployeeInfo employeeinfo.Client

	Planner   *leave.Planner
	Allocator *leaveallocation.Allocator
}

func New(cfg Config, logger ...*zap.Logger) (*App, error) {
	var l *zap.Logger
	if len(logger) > 0 {
		l = logger[0]
	}

	statePath := cfg.StatePath
	if statePath == "" {
		p, err := session.DefaultStatePath()
		if err != nil {
			return nil, err
		}
		statePath = p
	}

	mgr := session.NewManager(session.NewFileStore(statePath), l)

	opts := []gateway.Option{gateway.WithIdentityProvider(mgr)}
	if l != nil {
		opts = append(opts, gateway.WithLogger(l))
	}
	if cfg.RequestsPerSecond > 0 {
		opts = append(opts, gateway.WithLimiter(rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)))
	}
	gw := gateway.NewClient(cfg.BaseURL, opts...)

	a := &App{
		Config:       cfg,
		Session:      mgr,
		Gateway:      gw,
		Employees:    employee.NewClient(gw, l),
		Departments:  department.NewClient(gw, l),
		LeaveTypes:   leavetype.NewClient(gw, l),
		Leaves:       leave.NewClient(gw, l),
		Allocations:  leaveallocation.NewClient(gw, l),
		EmployeeInfo: employeeinfo.NewClient(gw, l),
	}
	mgr.AttachEmployeeSource(a.Employees)

	a.Planner = leave.NewPlanner(a.Leaves, a.Allocations, l)
	a.Allocator = leaveallocation.NewAllocator(a.Employees, a.Allocations, l)
	return a, nil
}
