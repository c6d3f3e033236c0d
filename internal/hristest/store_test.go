package hristest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hris-cli/internal/department"
	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/hristest"
	"go-hris-cli/internal/leave"
	"go-hris-cli/internal/leaveallocation"
	"go-hris-cli/internal/leavetype"
	"go-hris-cli/internal/shared/apperror"
)

func seededStore(t *testing.T) *hristest.Store {
	t.Helper()
	store := hristest.NewStore()
	require.NoError(t, hristest.Seed(store))
	return store
}

func firstActive(t *testing.T, store *hristest.Store) employee.Employee {
	t.Helper()
	for _, e := range store.Employees() {
		if e.EmploymentStatus == employee.StatusActive {
			return e
		}
	}
	t.Fatal("seed has no active employee")
	return employee.Employee{}
}

func annualType(t *testing.T, store *hristest.Store) leavetype.LeaveType {
	t.Helper()
	for _, lt := range store.LeaveTypes(false) {
		if lt.Code == "ANNUAL" {
			return lt
		}
	}
	t.Fatal("seed has no annual leave type")
	return leavetype.LeaveType{}
}

func TestStoreEmployees(t *testing.T) {
	store := seededStore(t)

	t.Run("Nomor karyawan harus unik", func(t *testing.T) {
		_, err := store.CreateEmployee(employee.CreateEmployeeRequest{
			EmployeeNumber: "EMP-0001",
			FirstName:      "Lina",
			LastName:       "Sari",
		})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConflict, appErr.Code)
	})

	t.Run("Nama dan departemen terisi otomatis", func(t *testing.T) {
		dept, err := store.CreateDepartment(department.CreateDepartmentRequest{
			Name: "Sales", Code: "SLS",
		})
		require.NoError(t, err)

		emp, err := store.CreateEmployee(employee.CreateEmployeeRequest{
			EmployeeNumber: "EMP-0100",
			FirstName:      "Lina",
			LastName:       "Sari",
			DepartmentID:   dept.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Lina Sari", emp.Name)
		assert.Equal(t, "Sales", emp.DepartmentName)
		assert.Equal(t, employee.StatusActive, emp.EmploymentStatus)
	})

	t.Run("Pencarian tidak case sensitive", func(t *testing.T) {
		found := store.SearchEmployees("andi")
		require.Len(t, found, 1)
		assert.Equal(t, "EMP-0001", found[0].EmployeeNumber)
	})
}

func TestStoreAllocations(t *testing.T) {
	store := seededStore(t)
	emp := firstActive(t, store)
	annual := annualType(t, store)

	t.Run("Satu alokasi per karyawan-tipe-tahun", func(t *testing.T) {
		_, err := store.CreateAllocation(leaveallocation.CreateAllocationRequest{
			EmployeeID: emp.ID, LeaveTypeID: annual.ID, AllocatedDays: 20, Year: 2026,
		})
		require.NoError(t, err)

		_, err = store.CreateAllocation(leaveallocation.CreateAllocationRequest{
			EmployeeID: emp.ID, LeaveTypeID: annual.ID, AllocatedDays: 15, Year: 2026,
		})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConflict, appErr.Code)
	})

	t.Run("Filter tahun pada daftar per karyawan", func(t *testing.T) {
		_, err := store.CreateAllocation(leaveallocation.CreateAllocationRequest{
			EmployeeID: emp.ID, LeaveTypeID: annual.ID, AllocatedDays: 20, Year: 2027,
		})
		require.NoError(t, err)

		assert.Len(t, store.EmployeeAllocations(emp.ID, 2026), 1)
		assert.Len(t, store.EmployeeAllocations(emp.ID, 0), 2)
	})
}

func TestStoreAutoAllocate(t *testing.T) {
	store := seededStore(t)
	emp := firstActive(t, store)

	created, err := store.AutoAllocate(emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2, created) // Annual + Sick

	allocs := store.EmployeeAllocations(emp.ID, 2026)
	require.Len(t, allocs, 2)
	for _, a := range allocs {
		assert.Equal(t, a.AllocatedDays, a.RemainingDays)
	}

	t.Run("Idempoten: panggilan kedua tidak menambah", func(t *testing.T) {
		created, err := store.AutoAllocate(emp.ID, 2026)
		require.NoError(t, err)
		assert.Zero(t, created)
		assert.Len(t, store.EmployeeAllocations(emp.ID, 2026), 2)
	})

	t.Run("Karyawan tidak dikenal", func(t *testing.T) {
		_, err := store.AutoAllocate("nope", 2026)
		assert.Error(t, err)
	})
}

func TestStoreLeaveLifecycle(t *testing.T) {
	store := seededStore(t)
	emp := firstActive(t, store)
	annual := annualType(t, store)

	_, err := store.AutoAllocate(emp.ID, 2026)
	require.NoError(t, err)

	newLeave := func(t *testing.T) leave.Leave {
		t.Helper()
		lv, err := store.CreateLeave(leave.CreateLeaveRequest{
			EmployeeID:  emp.ID,
			LeaveTypeID: annual.ID,
			StartDate:   "2026-03-10",
			EndDate:     "2026-03-14",
			Reason:      "Family trip",
		})
		require.NoError(t, err)
		return lv
	}

	t.Run("Create menghitung total days dan status Pending", func(t *testing.T) {
		lv := newLeave(t)
		assert.Equal(t, 5, lv.TotalDays)
		assert.Equal(t, leave.StatusPending, lv.Status)
		assert.Equal(t, emp.Name, lv.EmployeeName)
	})

	t.Run("Approve membukukan hari ke alokasi", func(t *testing.T) {
		lv := newLeave(t)

		approved, err := store.DecideLeave(lv.ID, leave.ApprovalRequest{
			Status: leave.StatusApproved,
		}, "HR")
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, approved.Status)

		allocs := store.EmployeeAllocations(emp.ID, 2026)
		for _, a := range allocs {
			if a.LeaveTypeID == annual.ID {
				assert.Equal(t, 5, a.UsedDays)
				assert.Equal(t, a.AllocatedDays-5, a.RemainingDays)
			}
		}

		t.Run("Cancel mengembalikan hari", func(t *testing.T) {
			cancelled, err := store.CancelLeave(lv.ID, "Change of plans")
			require.NoError(t, err)
			assert.Equal(t, leave.StatusCancelled, cancelled.Status)
			assert.Equal(t, "Change of plans", cancelled.CancellationReason)

			for _, a := range store.EmployeeAllocations(emp.ID, 2026) {
				if a.LeaveTypeID == annual.ID {
					assert.Zero(t, a.UsedDays)
					assert.Equal(t, a.AllocatedDays, a.RemainingDays)
				}
			}
		})
	})

	t.Run("Reject menyimpan alasan", func(t *testing.T) {
		lv := newLeave(t)

		rejected, err := store.DecideLeave(lv.ID, leave.ApprovalRequest{
			Status:          leave.StatusRejected,
			RejectionReason: "Peak season",
		}, "HR")
		require.NoError(t, err)
		assert.Equal(t, "Peak season", rejected.RejectionReason)

		t.Run("Rejected terminal", func(t *testing.T) {
			_, err := store.DecideLeave(lv.ID, leave.ApprovalRequest{
				Status: leave.StatusApproved,
			}, "HR")
			assert.Error(t, err)
		})
	})

	t.Run("Cancel leave Pending ditolak", func(t *testing.T) {
		lv := newLeave(t)

		_, err := store.CancelLeave(lv.ID, "nope")
		assert.Error(t, err)
	})

	t.Run("Update hanya untuk Pending", func(t *testing.T) {
		lv := newLeave(t)

		_, err := store.DecideLeave(lv.ID, leave.ApprovalRequest{Status: leave.StatusApproved}, "HR")
		require.NoError(t, err)

		_, err = store.UpdateLeave(lv.ID, leave.UpdateLeaveRequest{
			StartDate: "2026-04-01", EndDate: "2026-04-02", TotalDays: 2, Reason: "x",
		})
		assert.Error(t, err)
	})

	t.Run("Pending days masuk balance summary", func(t *testing.T) {
		newLeave(t)

		summary, err := store.BalanceSummary(emp.ID, 2026)
		require.NoError(t, err)
		require.NotEmpty(t, summary.LeaveBalances)
		for _, b := range summary.LeaveBalances {
			if b.LeaveTypeID == annual.ID {
				assert.GreaterOrEqual(t, b.PendingDays, 5)
			}
		}
	})
}
