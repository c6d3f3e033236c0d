package gateway

import (
	"context"
	"net/url"
)

// Caller is the surface resource clients consume. *Client satisfies it; tests
// substitute their own.
type Caller interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

var _ Caller = (*Client)(nil)
