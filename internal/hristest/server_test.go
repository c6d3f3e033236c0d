package hristest_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/employeeinfo"
	"go-hris-cli/internal/gateway"
	"go-hris-cli/internal/hristest"
	"go-hris-cli/internal/leave"
	"go-hris-cli/internal/leaveallocation"
	"go-hris-cli/internal/shared/apperror"
)

// fixture spins up the stub backend and a gateway pointing at it, so the real
// resource clients get exercised over the wire.
type fixture struct {
	store *hristest.Store
	srv   *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := hristest.NewStore()
	require.NoError(t, hristest.Seed(store))

	srv := httptest.NewServer(hristest.NewServer(store).Router())
	t.Cleanup(srv.Close)

	return &fixture{store: store, srv: srv}
}

func (f *fixture) gateway(opts ...gateway.Option) *gateway.Client {
	return gateway.NewClient(f.srv.URL+"/api", opts...)
}

func TestEmployeeClientAgainstStub(t *testing.T) {
	f := newFixture(t)
	client := employee.NewClient(f.gateway())
	ctx := context.Background()

	t.Run("GetAll mengembalikan seed", func(t *testing.T) {
		employees, err := client.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, employees, 4)
	})

	t.Run("Search", func(t *testing.T) {
		employees, err := client.Search(ctx, "siti")
		require.NoError(t, err)
		require.Len(t, employees, 1)
		assert.Equal(t, "EMP-0002", employees[0].EmployeeNumber)
	})

	t.Run("GetByID tidak ada", func(t *testing.T) {
		_, err := client.GetByID(ctx, "missing")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
		assert.Equal(t, "Employee not found", appErr.Message)
	})

	t.Run("Create lalu Delete", func(t *testing.T) {
		created, err := client.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeNumber: "EMP-0200",
			FirstName:      "Rudi",
			LastName:       "Hartono",
			Email:          "rudi@example.com",
			Position:       "Designer",
			HireDate:       "2024-01-15",
		})
		require.NoError(t, err)
		assert.Equal(t, "Rudi Hartono", created.Name)

		require.NoError(t, client.Delete(ctx, created.ID))

		_, err = client.GetByID(ctx, created.ID)
		assert.Error(t, err)
	})
}

func TestLeaveFlowAgainstStub(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hrGateway := f.gateway(gateway.WithIdentityProvider(gateway.StaticIdentity{Role: gateway.RoleHR}))
	allocations := leaveallocation.NewClient(hrGateway)
	leaves := leave.NewClient(hrGateway)
	employees := employee.NewClient(hrGateway)

	all, err := employees.GetAll(ctx)
	require.NoError(t, err)
	emp := all[0]

	require.NoError(t, allocations.AutoAllocate(ctx, emp.ID, 2026))

	allocs, err := allocations.GetByEmployee(ctx, emp.ID, 2026)
	require.NoError(t, err)
	require.Len(t, allocs, 2)

	planner := leave.NewPlanner(leaves, allocations)

	t.Run("Submit dalam saldo lolos", func(t *testing.T) {
		lv, err := planner.Submit(ctx, leave.CreateLeaveRequest{
			EmployeeID:  emp.ID,
			LeaveTypeID: allocs[0].LeaveTypeID,
			StartDate:   "2026-06-01",
			EndDate:     "2026-06-05",
			Reason:      "Holiday",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, lv.TotalDays)
		assert.Equal(t, leave.StatusPending, lv.Status)

		t.Run("Approve oleh HR membukukan hari", func(t *testing.T) {
			approved, err := leaves.Approve(ctx, lv.ID, leave.ApprovalRequest{
				Status:   leave.StatusApproved,
				Comments: "Enjoy",
			})
			require.NoError(t, err)
			assert.Equal(t, leave.StatusApproved, approved.Status)

			balance, err := allocations.GetBalanceSummary(ctx, emp.ID, 2026)
			require.NoError(t, err)
			for _, b := range balance.LeaveBalances {
				if b.LeaveTypeID == allocs[0].LeaveTypeID {
					assert.Equal(t, 5, b.UsedDays)
				}
			}
		})

		t.Run("Cancel mengembalikan hari", func(t *testing.T) {
			cancelled, err := leaves.Cancel(ctx, lv.ID, "Plans changed")
			require.NoError(t, err)
			assert.Equal(t, leave.StatusCancelled, cancelled.Status)
		})
	})

	t.Run("Submit melebihi saldo ditolak lokal", func(t *testing.T) {
		_, err := planner.Submit(ctx, leave.CreateLeaveRequest{
			EmployeeID:  emp.ID,
			LeaveTypeID: allocs[1].LeaveTypeID,
			StartDate:   "2026-06-01",
			EndDate:     "2026-07-30",
			Reason:      "Too long",
		})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Message, "Insufficient leave balance")
	})

	t.Run("Approval oleh Employee ditolak server", func(t *testing.T) {
		empGateway := f.gateway(gateway.WithIdentityProvider(gateway.StaticIdentity{
			Role:       gateway.RoleEmployee,
			EmployeeID: emp.ID,
		}))
		empLeaves := leave.NewClient(empGateway)

		lv, err := empLeaves.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID:  emp.ID,
			LeaveTypeID: allocs[0].LeaveTypeID,
			StartDate:   "2026-08-03",
			EndDate:     "2026-08-04",
			TotalDays:   2,
			Reason:      "Errand",
		})
		require.NoError(t, err)

		_, err = empLeaves.Approve(ctx, lv.ID, leave.ApprovalRequest{
			Status: leave.StatusApproved,
		})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	})

	t.Run("Reject tanpa alasan ditolak di klien", func(t *testing.T) {
		lv, err := leaves.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID:  emp.ID,
			LeaveTypeID: allocs[0].LeaveTypeID,
			StartDate:   "2026-09-01",
			EndDate:     "2026-09-02",
			TotalDays:   2,
			Reason:      "Errand",
		})
		require.NoError(t, err)

		_, err = leaves.Approve(ctx, lv.ID, leave.ApprovalRequest{
			Status: leave.StatusRejected,
		})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})
}

func TestEmployeeInfoAgainstStub(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	client := employeeinfo.NewClient(f.gateway())
	employees := employee.NewClient(f.gateway())

	all, err := employees.GetAll(ctx)
	require.NoError(t, err)
	emp := all[0]

	created, err := client.Create(ctx, employeeinfo.CreateInformationRequest{
		EmployeeID:                   emp.ID,
		PhoneNumber:                  "+62-811-000-111",
		DateOfBirth:                  "1992-05-14",
		EmergencyContactName:         "Rina Wijaya",
		EmergencyContactRelationship: "Spouse",
		EmergencyContactPhone:        "+62-811-000-222",
	})
	require.NoError(t, err)

	got, err := client.GetByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Rina Wijaya", got.EmergencyContactName)

	t.Run("Satu record per karyawan", func(t *testing.T) {
		_, err := client.Create(ctx, employeeinfo.CreateInformationRequest{
			EmployeeID:                   emp.ID,
			PhoneNumber:                  "x",
			DateOfBirth:                  "1992-05-14",
			EmergencyContactName:         "x",
			EmergencyContactRelationship: "x",
			EmergencyContactPhone:        "x",
		})
		assert.Error(t, err)
	})
}
