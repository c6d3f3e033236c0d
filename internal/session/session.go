package session

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/gateway"
	"go-hris-cli/internal/shared/apperror"
)

type Role string

const (
	RoleHR       Role = "HR"
	RoleEmployee Role = "Employee"
)

func (r Role) Valid() bool {
	return r == RoleHR || r == RoleEmployee
}

var ErrInvalidRole = apperror.New(
	apperror.CodeInvalidInput,
	"role must be HR or Employee",
	http.StatusBadRequest,
)

// EmployeeSource is the slice of the employee client the manager needs for
// the employee picker.
type EmployeeSource interface {
	GetAll(ctx context.Context) ([]employee.Employee, error)
}

// Manager is the role context: the client-held notion of who is acting. It
// restores itself from the store at construction, persists every change
// immediately, and implements gateway.IdentityProvider so the gateway never
// reads ambient global state.
type Manager struct {
	store  Store
	source EmployeeSource
	logger *zap.Logger

	sf singleflight.Group

	mu         sync.RWMutex
	role       Role
	employeeID string
	employees  []employee.Employee
	loading    bool
}

func NewManager(store Store, logger ...*zap.Logger) *Manager {
	l := zap.L().Named("session")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session")
	}

	m := &Manager{store: store, logger: l, role: RoleHR}

	state, found, err := store.Load()
	if err != nil {
		l.Warn("session restore failed", zap.Error(err))
		return m
	}
	if found && state.Role.Valid() {
		m.role = state.Role
		if state.Role == RoleEmployee {
			m.employeeID = state.EmployeeID
		}
	}
	return m
}

// AttachEmployeeSource wires the employee client in after construction; the
// manager is built before the gateway because the gateway needs it as its
// identity provider.
func (m *Manager) AttachEmployeeSource(src EmployeeSource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.source = src
}

// Identity implements gateway.IdentityProvider.
func (m *Manager) Identity() gateway.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return gateway.Identity{Role: string(m.role), EmployeeID: m.employeeID}
}

func (m *Manager) Role() Role {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.role
}

func (m *Manager) EmployeeID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.employeeID
}

// Employees returns the cached employee picker list. Empty means "no data",
// not confirmed absence.
func (m *Manager) Employees() []employee.Employee {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.employees
}

func (m *Manager) LoadingEmployees() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// SetRole switches the acting role. HR to Employee loads the employee list
// and auto-selects the first employee when none was previously chosen;
// Employee to HR clears both the selected id and the cached list.
func (m *Manager) SetRole(ctx context.Context, role Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	m.mu.Lock()
	if m.role == role {
		m.mu.Unlock()
		return nil
	}
	m.role = role
	if role == RoleHR {
		m.employeeID = ""
		m.employees = nil
	}
	m.mu.Unlock()

	m.persist()
	m.logger.Info("role switched", zap.String("role", string(role)))

	if role == RoleEmployee {
		m.loadEmployees(ctx)
	}
	return nil
}

// SetEmployee selects the acting employee identity.
func (m *Manager) SetEmployee(id string) {
	m.mu.Lock()
	m.employeeID = id
	m.mu.Unlock()
	m.persist()
}

// Refresh reloads the employee picker list; a no-op outside the Employee role.
func (m *Manager) Refresh(ctx context.Context) {
	if m.Role() == RoleEmployee {
		m.loadEmployees(ctx)
	}
}

// loadEmployees fetches the picker list exactly once even under concurrent
// calls. A failed fetch leaves the list empty and surfaces no error; callers
// see loading=false and an empty slice.
func (m *Manager) loadEmployees(ctx context.Context) {
	m.mu.Lock()
	src := m.source
	m.loading = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	if src == nil {
		m.logger.Warn("employee source not attached")
		return
	}

	emps, err, _ := m.sf.Do("employees", func() (any, error) {
		return src.GetAll(ctx)
	})
	if err != nil {
		m.logger.Warn("employee list load failed", zap.Error(err))
		m.mu.Lock()
		m.employees = nil
		m.mu.Unlock()
		return
	}

	list, _ := emps.([]employee.Employee)

	m.mu.Lock()
	m.employees = list
	selected := false
	if m.employeeID == "" && len(list) > 0 {
		m.employeeID = list[0].ID
		selected = true
	}
	m.mu.Unlock()

	if selected {
		m.persist()
	}
}

func (m *Manager) persist() {
	m.mu.RLock()
	state := State{Role: m.role}
	if m.role == RoleEmployee {
		state.EmployeeID = m.employeeID
	}
	m.mu.RUnlock()

	if err := m.store.Save(state); err != nil {
		m.logger.Warn("session persist failed", zap.Error(err))
	}
}

var _ gateway.IdentityProvider = (*Manager)(nil)
