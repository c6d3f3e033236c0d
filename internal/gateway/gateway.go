package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-hris-cli/internal/shared/apperror"
)

const (
	HeaderRole = "X-User-Role"
	HeaderUser = "X-User-Id"

	RoleHR       = "HR"
	RoleEmployee = "Employee"
)

// Identity is the advisory "who is acting" pair sent with every request.
type Identity struct {
	Role       string
	EmployeeID string
}

// IdentityProvider supplies the identity for each outgoing request so that
// request construction stays a pure function of (operation, identity).
type IdentityProvider interface {
	Identity() Identity
}

// StaticIdentity is an IdentityProvider that always answers the same pair.
type StaticIdentity Identity

func (s StaticIdentity) Identity() Identity { return Identity(s) }

// Client is the single point of outbound HTTP traffic. It injects identity
// headers, normalizes every response into an Envelope, and maps transport
// failures to *apperror.AppError. It does not retry and does not cache.
type Client struct {
	baseURL  string
	http     *http.Client
	identity IdentityProvider
	limiter  *rate.Limiter
	logger   *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithIdentityProvider sets the source of the role/employee headers.
func WithIdentityProvider(p IdentityProvider) Option {
	return func(c *Client) { c.identity = p }
}

// WithLimiter throttles outbound requests. Batch callers stay sequential by
// design; the limiter bounds everything else the console fires at the
// backend.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithLogger overrides the default named logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l.Named("gateway")
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  zap.L().Named("gateway"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apperror.Wrap(err, apperror.CodeTransportError, "request canceled", 0)
		}
	}

	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInvalidInput, "failed to encode request body", 0)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeTransportError, "failed to build request", 0)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setIdentityHeaders(req)

	c.logger.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", u),
		zap.String("role", req.Header.Get(HeaderRole)),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("transport failure",
			zap.String("method", method),
			zap.String("url", u),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.CodeTransportError, "An error occurred", 0)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeTransportError, "failed to read response", resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		appErr := mapBackendError(resp.StatusCode, raw)
		c.logger.Warn("backend error",
			zap.String("method", method),
			zap.String("url", u),
			zap.Int("status", resp.StatusCode),
			zap.String("message", appErr.Message),
		)
		return appErr
	}

	env := Normalize(raw)
	if !env.Success {
		return (&apperror.AppError{
			Code:    apperror.CodeBackendError,
			Message: messageOrDefault(env.Message),
			Status:  resp.StatusCode,
		}).WithErrors(env.Errors)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperror.Wrap(err, apperror.CodeBackendError, "failed to decode response payload", resp.StatusCode)
		}
	}
	return nil
}

// Header rule: role selalu dikirim (default HR saat context kosong),
// X-User-Id hanya saat role Employee dan ada employee terpilih.
func (c *Client) setIdentityHeaders(req *http.Request) {
	id := Identity{}
	if c.identity != nil {
		id = c.identity.Identity()
	}
	role := id.Role
	if role == "" {
		role = RoleHR
	}
	req.Header.Set(HeaderRole, role)
	if role == RoleEmployee && id.EmployeeID != "" {
		req.Header.Set(HeaderUser, id.EmployeeID)
	}
}

func mapBackendError(status int, raw []byte) *apperror.AppError {
	env := Normalize(raw)

	code := apperror.CodeBackendError
	switch status {
	case http.StatusBadRequest:
		code = apperror.CodeInvalidInput
	case http.StatusUnauthorized:
		code = apperror.CodeUnauthorized
	case http.StatusForbidden:
		code = apperror.CodeForbidden
	case http.StatusNotFound:
		code = apperror.CodeNotFound
	case http.StatusConflict:
		code = apperror.CodeConflict
	case http.StatusServiceUnavailable:
		code = apperror.CodeServiceUnavailable
	}

	return (&apperror.AppError{
		Code:    code,
		Message: messageOrDefault(env.Message),
		Status:  status,
	}).WithErrors(env.Errors)
}

func messageOrDefault(msg string) string {
	if msg == "" {
		return "An error occurred"
	}
	return msg
}
