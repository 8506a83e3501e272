package routerhandlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitalvas/arbor/router"
)

// requestIDHeader is the default propagation header.
const requestIDHeader = "X-Request-ID"

type ridContextKey struct{}

// RequestIDOption adjusts the RequestID middleware, mirroring the option
// style of router.New.
type RequestIDOption func(*requestIDOptions)

type requestIDOptions struct {
	header    string
	newID     func() string
	trustPeer bool
}

// WithIDHeader changes the header the ID is read from and written to.
func WithIDHeader(name string) RequestIDOption {
	return func(o *requestIDOptions) { o.header = name }
}

// WithIDGenerator replaces the ID source.
func WithIDGenerator(f func() string) RequestIDOption {
	return func(o *requestIDOptions) { o.newID = f }
}

// TrustPeerID accepts an ID already present on the incoming request instead
// of minting a fresh one. Only enable this behind a proxy that sets or
// strips the header itself.
func TrustPeerID() RequestIDOption {
	return func(o *requestIDOptions) { o.trustPeer = true }
}

// RequestID returns middleware that tags each request passing through its
// node with a unique ID. The ID travels three ways: on the request context
// for code that only sees a context.Context, on the response header for the
// caller, and via RequestIDOf for handlers holding the router context.
func RequestID(opts ...RequestIDOption) router.Handler {
	o := requestIDOptions{header: requestIDHeader, newID: NewID}
	for _, opt := range opts {
		opt(&o)
	}

	return func(c *router.Context, next func()) {
		id := ""
		if o.trustPeer {
			id = c.Request.Header.Get(o.header)
		}
		if id == "" {
			id = o.newID()
		}

		ctx := context.WithValue(c.Request.Context(), ridContextKey{}, id)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(o.header, id)

		next()
	}
}

// RequestIDOf returns the ID tagged onto the dispatch by RequestID, or an
// empty string when the middleware did not run. The companion for code that
// holds only a context.Context is RequestIDFromContext.
func RequestIDOf(c *router.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	return RequestIDFromContext(c.Request.Context())
}

// RequestIDFromContext extracts the request ID from a request context.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ridContextKey{}).(string)
	return id
}

// NewID is the default ID generator: a time-ordered UUID (version 7), so
// concurrent IDs sort roughly by arrival. It degrades to a random version 4
// value when generating the version 7 value fails.
func NewID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
