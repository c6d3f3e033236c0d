package session_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-hris-cli/internal/employee"
	employeeMock "go-hris-cli/internal/employee/mock"
	"go-hris-cli/internal/session"
)

func pickerList() []employee.Employee {
	return []employee.Employee{
		{ID: "emp-1", Name: "Andi Wijaya", EmployeeNumber: "EMP-0001"},
		{ID: "emp-2", Name: "Siti Rahma", EmployeeNumber: "EMP-0002"},
	}
}

func TestManagerDefaultsToHR(t *testing.T) {
	m := session.NewManager(session.NewMemoryStore())

	assert.Equal(t, session.RoleHR, m.Role())
	assert.Empty(t, m.EmployeeID())
}

func TestManagerRestoresFromStore(t *testing.T) {
	t.Run("Role Employee dengan pilihan tersimpan", func(t *testing.T) {
		store := session.NewMemoryStore()
		require.NoError(t, store.Save(session.State{Role: session.RoleEmployee, EmployeeID: "emp-2"}))

		m := session.NewManager(store)

		assert.Equal(t, session.RoleEmployee, m.Role())
		assert.Equal(t, "emp-2", m.EmployeeID())
	})

	t.Run("Role tidak dikenal diabaikan", func(t *testing.T) {
		store := session.NewMemoryStore()
		require.NoError(t, store.Save(session.State{Role: "Admin"}))

		m := session.NewManager(store)

		assert.Equal(t, session.RoleHR, m.Role())
	})
}

func TestManagerSetRole(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*session.MemoryStore, *employeeMock.MockClient, *session.Manager) {
		ctrl := gomock.NewController(t)
		store := session.NewMemoryStore()
		source := employeeMock.NewMockClient(ctrl)
		m := session.NewManager(store)
		m.AttachEmployeeSource(source)
		return store, source, m
	}

	t.Run("HR ke Employee: daftar dimuat dan karyawan pertama terpilih", func(t *testing.T) {
		store, source, m := setup(t)

		source.EXPECT().GetAll(gomock.Any()).Return(pickerList(), nil)

		require.NoError(t, m.SetRole(ctx, session.RoleEmployee))

		assert.Equal(t, session.RoleEmployee, m.Role())
		assert.Equal(t, "emp-1", m.EmployeeID())
		assert.Len(t, m.Employees(), 2)

		state, saved := store.Saved()
		require.True(t, saved)
		assert.Equal(t, session.RoleEmployee, state.Role)
		assert.Equal(t, "emp-1", state.EmployeeID)
	})

	t.Run("Pilihan lama dipertahankan saat daftar dimuat ulang", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := session.NewMemoryStore()
		require.NoError(t, store.Save(session.State{Role: session.RoleEmployee, EmployeeID: "emp-2"}))

		source := employeeMock.NewMockClient(ctrl)
		source.EXPECT().GetAll(gomock.Any()).Return(pickerList(), nil)

		m := session.NewManager(store)
		m.AttachEmployeeSource(source)
		m.Refresh(ctx)

		assert.Equal(t, "emp-2", m.EmployeeID())
	})

	t.Run("Employee ke HR: pilihan dan daftar dibersihkan", func(t *testing.T) {
		store, source, m := setup(t)

		source.EXPECT().GetAll(gomock.Any()).Return(pickerList(), nil)
		require.NoError(t, m.SetRole(ctx, session.RoleEmployee))

		require.NoError(t, m.SetRole(ctx, session.RoleHR))

		assert.Equal(t, session.RoleHR, m.Role())
		assert.Empty(t, m.EmployeeID())
		assert.Empty(t, m.Employees())

		state, _ := store.Saved()
		assert.Equal(t, session.RoleHR, state.Role)
		assert.Empty(t, state.EmployeeID)
	})

	t.Run("Role sama adalah no-op", func(t *testing.T) {
		_, _, m := setup(t)

		require.NoError(t, m.SetRole(ctx, session.RoleHR))
	})

	t.Run("Role tidak valid ditolak", func(t *testing.T) {
		_, _, m := setup(t)

		err := m.SetRole(ctx, "Admin")

		assert.ErrorIs(t, err, session.ErrInvalidRole)
	})

	t.Run("Fetch gagal: daftar kosong tanpa error", func(t *testing.T) {
		_, source, m := setup(t)

		source.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("down"))

		require.NoError(t, m.SetRole(ctx, session.RoleEmployee))

		assert.Equal(t, session.RoleEmployee, m.Role())
		assert.Empty(t, m.Employees())
		assert.Empty(t, m.EmployeeID())
		assert.False(t, m.LoadingEmployees())
	})
}

func TestManagerIdentity(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store := session.NewMemoryStore()
	source := employeeMock.NewMockClient(ctrl)
	m := session.NewManager(store)
	m.AttachEmployeeSource(source)

	id := m.Identity()
	assert.Equal(t, "HR", id.Role)
	assert.Empty(t, id.EmployeeID)

	source.EXPECT().GetAll(gomock.Any()).Return(pickerList(), nil)
	require.NoError(t, m.SetRole(ctx, session.RoleEmployee))
	m.SetEmployee("emp-2")

	id = m.Identity()
	assert.Equal(t, "Employee", id.Role)
	assert.Equal(t, "emp-2", id.EmployeeID)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := t.TempDir() + "/session.json"
	store := session.NewFileStore(path)

	t.Run("File belum ada", func(t *testing.T) {
		_, found, err := store.Load()
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Simpan lalu muat", func(t *testing.T) {
		require.NoError(t, store.Save(session.State{Role: session.RoleEmployee, EmployeeID: "emp-1"}))

		state, found, err := store.Load()
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, session.RoleEmployee, state.Role)
		assert.Equal(t, "emp-1", state.EmployeeID)
	})

	t.Run("File rusak dianggap tidak ada", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, found, err := store.Load()
		require.NoError(t, err)
		assert.False(t, found)
	})
}
