// Package routerhandlers provides stock middleware for the router package.
//
// Every constructor returns a router.Handler suitable for registration in a
// path-middleware bucket (SecurityHeaders also returns a configuration
// error). One registration near the root covers the whole
// pipeline below it, parameter sub-trees included:
//
//	r := router.New()
//	r.Use("/", routerhandlers.Recovery(nil))
//	r.Use("/", routerhandlers.RequestID())
//
// # Request ID Middleware
//
// RequestID tags each request with a unique ID — a time-ordered UUID by
// default — and propagates it on the response header, the request context,
// and through RequestIDOf for handlers holding the router context:
//
//	id := routerhandlers.RequestIDOf(c)
//
// Options follow the router.New style: WithIDHeader, WithIDGenerator, and
// TrustPeerID for deployments behind a proxy that manages the header.
//
// # Recovery Middleware
//
// Recovery converts a panic anywhere later in the pipeline into an error
// response. The router core deliberately adds no recovery layer of its own;
// install this middleware where that behaviour is wanted. A RecoverFunc
// callback receives the panic value with its captured stack and may take
// over the response entirely; http.ErrAbortHandler passes through.
//
// # Logging Middleware
//
// Logging writes one structured log line per request via log/slog, with the
// method, path, response status and duration.
//
// # Security Headers Middleware
//
// SecurityHeaders compiles its configuration into a fixed header set once
// and stamps it onto every response before the rest of the pipeline runs.
package routerhandlers
