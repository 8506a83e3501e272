// Package router implements a radix-tree request router with staged,
// onion-style handler pipelines.
//
// Routes are stored in a compact radix tree keyed on the characters of the
// registered patterns. Shared prefixes are split automatically, so lookup
// cost is proportional to the request path, not to the number of routes.
// Parameters are stored as branches beside the tree: each parametric edge
// owns its own sub-tree for whatever follows the parameter.
//
// # Handlers, middleware and terminators
//
// Every handler has the same shape:
//
//	func(c *router.Context, next func())
//
// Calling next hands control to the rest of the pipeline; returning without
// calling it short-circuits the request. Handlers are registered in one of
// two buckets per method key:
//
//   - middleware: runs before the request's final handlers.
//   - terminators: marks the node as a match target and runs last.
//
// The method key is either a named request method or one of two reserved
// buckets. PathMiddleware handlers run for every request passing through
// their node regardless of method; AllMethods handlers participate for any
// request method, after the request's own method bucket.
//
//	r := router.New()
//	r.Use("/api", logRequest)
//	r.Get("/api/user/:id(\\d+)", showUser)
//
// # Pattern syntax
//
//	Construct            Example              Meaning
//	Literal              /about/us            matches this exact substring
//	Escape               /\:x                 a '\' escapes the next character
//	Parameter            /:id                 matches one path segment (no '/')
//	Parameter w/ regex   /:id(\d+)            regex anchored at the segment start
//	Stage                /:id$-10             priority stage for this parameter
//	Multi                /:rest*              spans '/'; without a regex it must end the pattern
//	Regex + multi        /:p([\w/]{1,3})*     spans '/', consumes only what the regex matches
//	Adjacent parameters  /:a(\w+):b           allowed when the left one carries a regex
//
// Parameter values are captured on the Context for the duration of the
// parameter's sub-tree and restored on the way out, so a non-matching
// branch never leaks bindings.
//
// # Stages
//
// Every registration carries an integer stage. Lower stages run earlier;
// ties within a bucket break by registration order, and when buckets of
// different kinds collide on a stage, the bucket order listed under
// "Ordering at the final node" decides.
// The verb helpers (Get, Post, Use, ...) register at stage 0.
//
// # Ordering at the final node
//
// When a request reaches a node carrying terminators for its method (or for
// AllMethods), the pipeline is the stage-merge of, in tie-break order: the
// node's path middleware, the buckets gathered from ancestor nodes on the
// walk, the node's path terminators, the method middleware, and the
// AllMethods middleware; then the method terminators and the AllMethods
// terminators in their own order.
//
// A HEAD request that finds no HEAD terminators falls back to the GET
// buckets; HEAD middleware registered on the node still runs, immediately
// before GET's.
//
// # Dispatch outside net/http
//
// Router implements http.Handler, but the core entry point is Dispatch,
// which takes an explicit method, path and continuation:
//
//	r.Dispatch(c, "GET", "/api/user/42", func() {
//	    // nothing matched
//	})
//
// The continuation runs exactly once when no route terminates the request.
//
// # Concurrency
//
// Registration mutates the tree and must complete before dispatching
// begins. A built Router is read-only at dispatch time and may serve
// concurrent requests, each with its own Context.
package router
