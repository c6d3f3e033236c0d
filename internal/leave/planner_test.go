package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-hris-cli/internal/leave"
	leaveMock "go-hris-cli/internal/leave/mock"
	"go-hris-cli/internal/leaveallocation"
	"go-hris-cli/internal/shared/apperror"
)

func date(v string) time.Time {
	t, err := leave.ParseDate(v)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTotalDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"Hari yang sama dihitung 1", "2026-03-10", "2026-03-10", 1},
		{"Rentang inklusif", "2026-03-10", "2026-03-14", 5},
		{"Terbalik tetap sama", "2026-03-14", "2026-03-10", 5},
		{"Lintas bulan", "2026-01-30", "2026-02-02", 4},
		{"Lintas tahun", "2026-12-30", "2027-01-02", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, leave.TotalDays(date(tc.start), date(tc.end)))
		})
	}

	t.Run("Tanggal kosong menghasilkan 0", func(t *testing.T) {
		assert.Equal(t, 0, leave.TotalDays(time.Time{}, date("2026-03-10")))
		assert.Equal(t, 0, leave.TotalDays(date("2026-03-10"), time.Time{}))
	})
}

func TestParseDate(t *testing.T) {
	_, err := leave.ParseDate("10-03-2026")

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}

func validRequest() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "lt-1",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-14",
		Reason:      "Family trip",
	}
}

func TestPlannerSubmit(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*leaveMock.MockClient, *leaveMock.MockAllocationFinder, *leave.Planner) {
		ctrl := gomock.NewController(t)
		leaves := leaveMock.NewMockClient(ctrl)
		allocations := leaveMock.NewMockAllocationFinder(ctrl)
		return leaves, allocations, leave.NewPlanner(leaves, allocations)
	}

	t.Run("Saldo cukup: total days terisi dan request terkirim", func(t *testing.T) {
		leaves, allocations, planner := setup(t)

		allocations.EXPECT().
			GetByEmployee(gomock.Any(), "emp-1", 2026).
			Return([]leaveallocation.Allocation{
				{LeaveTypeID: "lt-1", Year: 2026, RemainingDays: 10},
			}, nil)

		leaves.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req leave.CreateLeaveRequest) (leave.Leave, error) {
				assert.Equal(t, 5, req.TotalDays)
				return leave.Leave{ID: "lv-1", TotalDays: req.TotalDays, Status: leave.StatusPending}, nil
			})

		lv, err := planner.Submit(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, leave.StatusPending, lv.Status)
		assert.Equal(t, 5, lv.TotalDays)
	})

	t.Run("Saldo kurang: ditolak lokal tanpa memanggil create", func(t *testing.T) {
		_, allocations, planner := setup(t)

		allocations.EXPECT().
			GetByEmployee(gomock.Any(), "emp-1", 2026).
			Return([]leaveallocation.Allocation{
				{LeaveTypeID: "lt-1", Year: 2026, RemainingDays: 3},
			}, nil)

		_, err := planner.Submit(ctx, validRequest())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Insufficient leave balance. You have 3 days available.", appErr.Message)
	})

	t.Run("Saldo nol juga ditolak", func(t *testing.T) {
		_, allocations, planner := setup(t)

		allocations.EXPECT().
			GetByEmployee(gomock.Any(), "emp-1", 2026).
			Return([]leaveallocation.Allocation{
				{LeaveTypeID: "lt-1", Year: 2026, RemainingDays: 0},
			}, nil)

		_, err := planner.Submit(ctx, validRequest())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Message, "0 days available")
	})

	t.Run("Tanpa alokasi: lolos precheck, backend yang memutuskan", func(t *testing.T) {
		leaves, allocations, planner := setup(t)

		allocations.EXPECT().
			GetByEmployee(gomock.Any(), "emp-1", 2026).
			Return(nil, nil)

		leaves.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(leave.Leave{ID: "lv-1"}, nil)

		_, err := planner.Submit(ctx, validRequest())

		require.NoError(t, err)
	})

	t.Run("Lookup saldo gagal: tetap submit", func(t *testing.T) {
		leaves, allocations, planner := setup(t)

		allocations.EXPECT().
			GetByEmployee(gomock.Any(), "emp-1", 2026).
			Return(nil, errors.New("backend down"))

		leaves.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(leave.Leave{ID: "lv-1"}, nil)

		_, err := planner.Submit(ctx, validRequest())

		require.NoError(t, err)
	})

	t.Run("Alokasi tipe lain diabaikan", func(t *testing.T) {
		leaves, allocations, planner := setup(t)

		allocations.EXPECT().
			GetByEmployee(gomock.Any(), "emp-1", 2026).
			Return([]leaveallocation.Allocation{
				{LeaveTypeID: "lt-other", Year: 2026, RemainingDays: 0},
			}, nil)

		leaves.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(leave.Leave{ID: "lv-1"}, nil)

		_, err := planner.Submit(ctx, validRequest())

		require.NoError(t, err)
	})

	t.Run("Form tidak valid ditolak sebelum ada call", func(t *testing.T) {
		_, _, planner := setup(t)

		req := validRequest()
		req.Reason = ""

		_, err := planner.Submit(ctx, req)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	})

	t.Run("Format tanggal salah ditolak", func(t *testing.T) {
		_, _, planner := setup(t)

		req := validRequest()
		req.StartDate = "March 10"

		_, err := planner.Submit(ctx, req)

		assert.Error(t, err)
	})
}
