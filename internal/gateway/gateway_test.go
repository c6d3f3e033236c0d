package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-hris-cli/internal/gateway"
	"go-hris-cli/internal/shared/apperror"
)

func TestClientIdentityHeaders(t *testing.T) {
	var gotRole, gotUser string
	var userHeaderSet bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = r.Header.Get(gateway.HeaderRole)
		gotUser = r.Header.Get(gateway.HeaderUser)
		_, userHeaderSet = r.Header[gateway.HeaderUser]
		w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer srv.Close()

	ctx := context.Background()

	t.Run("Tanpa provider: default HR tanpa user id", func(t *testing.T) {
		client := gateway.NewClient(srv.URL)

		err := client.Get(ctx, "/employees", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, gateway.RoleHR, gotRole)
		assert.False(t, userHeaderSet)
	})

	t.Run("Role Employee dengan employee terpilih", func(t *testing.T) {
		client := gateway.NewClient(srv.URL, gateway.WithIdentityProvider(gateway.StaticIdentity{
			Role:       gateway.RoleEmployee,
			EmployeeID: "emp-1",
		}))

		err := client.Get(ctx, "/employees", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, gateway.RoleEmployee, gotRole)
		assert.Equal(t, "emp-1", gotUser)
	})

	t.Run("Role Employee tanpa employee terpilih", func(t *testing.T) {
		client := gateway.NewClient(srv.URL, gateway.WithIdentityProvider(gateway.StaticIdentity{
			Role: gateway.RoleEmployee,
		}))

		err := client.Get(ctx, "/employees", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, gateway.RoleEmployee, gotRole)
		assert.False(t, userHeaderSet)
	})

	t.Run("Role HR tidak pernah mengirim user id", func(t *testing.T) {
		client := gateway.NewClient(srv.URL, gateway.WithIdentityProvider(gateway.StaticIdentity{
			Role:       gateway.RoleHR,
			EmployeeID: "emp-1",
		}))

		err := client.Get(ctx, "/employees", nil, nil)

		require.NoError(t, err)
		assert.False(t, userHeaderSet)
	})
}

func TestClientErrorMapping(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		status   int
		body     string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "404 jadi not found dengan pesan backend",
			status:   http.StatusNotFound,
			body:     `{"success":false,"message":"Employee not found"}`,
			wantCode: apperror.CodeNotFound,
			wantMsg:  "Employee not found",
		},
		{
			name:     "400 jadi invalid input",
			status:   http.StatusBadRequest,
			body:     `{"success":false,"message":"Validation failed"}`,
			wantCode: apperror.CodeInvalidInput,
			wantMsg:  "Validation failed",
		},
		{
			name:     "403 jadi forbidden",
			status:   http.StatusForbidden,
			body:     `{"message":"Only HR can decide leave requests"}`,
			wantCode: apperror.CodeForbidden,
			wantMsg:  "Only HR can decide leave requests",
		},
		{
			name:     "500 tanpa pesan pakai fallback",
			status:   http.StatusInternalServerError,
			body:     `{}`,
			wantCode: apperror.CodeBackendError,
			wantMsg:  "An error occurred",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := gateway.NewClient(srv.URL)
			err := client.Get(ctx, "/x", nil, nil)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tc.wantCode, appErr.Code)
			assert.Equal(t, tc.wantMsg, appErr.Message)
			assert.Equal(t, tc.status, appErr.Status)
		})
	}

	t.Run("Success false pada status 200 tetap error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"message":"Something went wrong"}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL)
		err := client.Get(ctx, "/x", nil, nil)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Something went wrong", appErr.Message)
	})

	t.Run("Server mati jadi transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := gateway.NewClient(srv.URL)
		err := client.Get(ctx, "/x", nil, nil)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeTransportError, appErr.Code)
	})
}

func TestClientDecodesData(t *testing.T) {
	ctx := context.Background()

	t.Run("Envelope data masuk ke out", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"id":"e-1","name":"Andi"}}`))
		}))
		defer srv.Close()

		var out struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		client := gateway.NewClient(srv.URL)

		require.NoError(t, client.Get(ctx, "/employees/e-1", nil, &out))
		assert.Equal(t, "e-1", out.ID)
		assert.Equal(t, "Andi", out.Name)
	})

	t.Run("Payload telanjang juga masuk ke out", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":"e-1"},{"id":"e-2"}]`))
		}))
		defer srv.Close()

		var out []map[string]any
		client := gateway.NewClient(srv.URL)

		require.NoError(t, client.Get(ctx, "/employees", nil, &out))
		assert.Len(t, out, 2)
	})

	t.Run("Body request terkirim sebagai JSON", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true}`))
		}))
		defer srv.Close()

		client := gateway.NewClient(srv.URL)
		err := client.Post(ctx, "/employees", map[string]string{"firstName": "Andi"}, nil)

		require.NoError(t, err)
		assert.Equal(t, "Andi", got["firstName"])
	})

	t.Run("Context batal dihormati", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := gateway.NewClient(srv.URL)
		err := client.Get(ctx, "/x", nil, nil)

		require.Error(t, err)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
	})
}
