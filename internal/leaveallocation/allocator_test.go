package leaveallocation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-hris-cli/internal/employee"
	"go-hris-cli/internal/leaveallocation"
	allocationerrors "go-hris-cli/internal/leaveallocation/errors"
	allocationMock "go-hris-cli/internal/leaveallocation/mock"
	"go-hris-cli/internal/shared/apperror"
)

func activeEmployees(n int) []employee.Employee {
	employees := make([]employee.Employee, 0, n)
	for i := 0; i < n; i++ {
		employees = append(employees, employee.Employee{
			ID:               "emp-" + string(rune('a'+i)),
			EmploymentStatus: employee.StatusActive,
		})
	}
	return employees
}

func TestAllocatorRun(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*allocationMock.MockEmployeeSource, *allocationMock.MockAutoAllocateClient, *leaveallocation.Allocator) {
		ctrl := gomock.NewController(t)
		employees := allocationMock.NewMockEmployeeSource(ctrl)
		allocations := allocationMock.NewMockAutoAllocateClient(ctrl)
		return employees, allocations, leaveallocation.NewAllocator(employees, allocations)
	}

	t.Run("Semua sukses", func(t *testing.T) {
		employees, allocations, allocator := setup(t)

		employees.EXPECT().GetAll(gomock.Any()).Return(activeEmployees(3), nil)
		allocations.EXPECT().AutoAllocate(gomock.Any(), gomock.Any(), 2026).Return(nil).Times(3)

		result, err := allocator.Run(ctx, 2026, nil)

		require.NoError(t, err)
		assert.Equal(t, leaveallocation.Result{Year: 2026, Total: 3, Succeeded: 3, Failed: 0}, result)
		assert.Equal(t, "Successfully allocated leave for 3 employees", result.Summary())
	})

	t.Run("Kegagalan per karyawan dihitung tanpa menghentikan loop", func(t *testing.T) {
		employees, allocations, allocator := setup(t)

		list := activeEmployees(5)
		employees.EXPECT().GetAll(gomock.Any()).Return(list, nil)

		boom := errors.New("backend error")
		gomock.InOrder(
			allocations.EXPECT().AutoAllocate(gomock.Any(), list[0].ID, 2026).Return(nil),
			allocations.EXPECT().AutoAllocate(gomock.Any(), list[1].ID, 2026).Return(boom),
			allocations.EXPECT().AutoAllocate(gomock.Any(), list[2].ID, 2026).Return(nil),
			allocations.EXPECT().AutoAllocate(gomock.Any(), list[3].ID, 2026).Return(boom),
			allocations.EXPECT().AutoAllocate(gomock.Any(), list[4].ID, 2026).Return(nil),
		)

		var progress []leaveallocation.Progress
		result, err := allocator.Run(ctx, 2026, func(p leaveallocation.Progress) {
			progress = append(progress, p)
		})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Succeeded)
		assert.Equal(t, 2, result.Failed)
		assert.Equal(t, "Allocated leave for 3 employees, 2 failed", result.Summary())

		// Progress harus monoton dan berakhir di total
		require.Len(t, progress, 5)
		for i, p := range progress {
			assert.Equal(t, i+1, p.Current)
			assert.Equal(t, 5, p.Total)
		}
	})

	t.Run("Karyawan non-aktif dilewati", func(t *testing.T) {
		employees, allocations, allocator := setup(t)

		list := []employee.Employee{
			{ID: "emp-1", EmploymentStatus: employee.StatusActive},
			{ID: "emp-2", EmploymentStatus: employee.StatusInactive},
			{ID: "emp-3", EmploymentStatus: employee.StatusTerminated},
			{ID: "emp-4", EmploymentStatus: employee.StatusActive},
		}
		employees.EXPECT().GetAll(gomock.Any()).Return(list, nil)
		allocations.EXPECT().AutoAllocate(gomock.Any(), "emp-1", 2026).Return(nil)
		allocations.EXPECT().AutoAllocate(gomock.Any(), "emp-4", 2026).Return(nil)

		result, err := allocator.Run(ctx, 2026, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("Tidak ada karyawan aktif", func(t *testing.T) {
		employees, _, allocator := setup(t)

		employees.EXPECT().GetAll(gomock.Any()).Return([]employee.Employee{
			{ID: "emp-1", EmploymentStatus: employee.StatusInactive},
		}, nil)

		_, err := allocator.Run(ctx, 2026, nil)

		assert.ErrorIs(t, err, allocationerrors.ErrNoActiveEmployees)
	})

	t.Run("Gagal ambil daftar karyawan", func(t *testing.T) {
		employees, _, allocator := setup(t)

		employees.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("down"))

		_, err := allocator.Run(ctx, 2026, nil)

		assert.Error(t, err)
	})

	t.Run("Tahun tidak valid", func(t *testing.T) {
		_, _, allocator := setup(t)

		_, err := allocator.Run(ctx, 0, nil)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, allocationerrors.ErrInvalidYear, appErr)
	})

	t.Run("Context batal mengembalikan hasil parsial", func(t *testing.T) {
		employees, allocations, allocator := setup(t)

		runCtx, cancel := context.WithCancel(context.Background())

		list := activeEmployees(4)
		employees.EXPECT().GetAll(gomock.Any()).Return(list, nil)
		allocations.EXPECT().
			AutoAllocate(gomock.Any(), list[0].ID, 2026).
			DoAndReturn(func(context.Context, string, int) error {
				cancel()
				return nil
			})

		result, err := allocator.Run(runCtx, 2026, nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 4, result.Total)
	})
}
