package router

import (
	"errors"
	"net/http"
)

// Handler is one step of the request pipeline. Calling next continues with
// the remaining handlers; returning without calling it short-circuits.
type Handler func(c *Context, next func())

// ErrNoHandlers is returned when a verb helper (Get, Post, ..., All, Use) is
// called with zero handlers. AddMiddleware and AddTerminator accept zero
// handlers and return no error.
var ErrNoHandlers = errors.New("router: no handlers provided")

// Router matches request paths against registered patterns and composes the
// matched handlers into a single pipeline per request.
//
// Registration mutates the tree and must not run concurrently with dispatch.
// Once built, a Router may serve any number of dispatches in parallel as
// long as each uses its own Context.
type Router struct {
	// NotFoundHandler is called by ServeHTTP when no route matches.
	// If nil, http.NotFoundHandler() is used.
	NotFoundHandler http.Handler

	tree          *tree
	strictSlashes bool
}

// Option configures a Router at construction.
type Option func(*Router)

// WithStrictSlashes controls trailing-slash matching. When strict, a request
// path ending in "/" only matches patterns that also end in "/". Defaults to
// false: a trailing "/" on the request is tolerated. Either way, a pattern
// ending in "/" requires the request path to end in "/" as well.
func WithStrictSlashes(strict bool) Option {
	return func(r *Router) { r.strictSlashes = strict }
}

// New returns an empty Router.
func New(opts ...Option) *Router {
	r := &Router{tree: newTree(newPayload)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddMiddleware registers handlers in the middleware bucket of key, at the
// node the pattern resolves to, under the given stage.
func (r *Router) AddMiddleware(key MethodKey, pattern string, stage int, handlers ...Handler) error {
	n, err := r.resolve(pattern)
	if err != nil {
		return err
	}
	n.payload.bucket(key).middleware.Append(stage, handlers...)
	return nil
}

// AddTerminator registers handlers in the terminator bucket of key, at the
// node the pattern resolves to, under the given stage. Terminators mark the
// node as a match target for that key.
func (r *Router) AddTerminator(key MethodKey, pattern string, stage int, handlers ...Handler) error {
	n, err := r.resolve(pattern)
	if err != nil {
		return err
	}
	n.payload.bucket(key).terminators.Append(stage, handlers...)
	return nil
}

// resolve walks (and creates) the node a pattern addresses, descending into
// parameter sub-trees as parameter segments are encountered.
func (r *Router) resolve(pattern string) (*node, error) {
	segs, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}

	t := r.tree
	n := t.root

	for _, s := range segs {
		if s.kind == segLiteral {
			n = t.findOrCreate(n, s.text)
			continue
		}

		var branch *paramBranch
		for _, b := range n.payload.branches.Ordered() {
			if b.matches(s) {
				branch = b
				break
			}
		}
		if branch == nil {
			branch = &paramBranch{
				name:  s.name,
				re:    s.re,
				reSrc: s.reSrc,
				multi: s.multi,
				sub:   newTree(newPayload),
			}
			n.payload.branches.Append(s.stage, branch)
		}

		t = branch.sub
		n = t.root
	}

	return n, nil
}

// terminate is the verb-helper backend: a stage-0 terminator registration
// that rejects empty handler lists.
func (r *Router) terminate(key MethodKey, pattern string, handlers []Handler) error {
	if len(handlers) == 0 {
		return ErrNoHandlers
	}
	return r.AddTerminator(key, pattern, 0, handlers...)
}

// Get registers terminators for GET requests on the pattern.
func (r *Router) Get(pattern string, handlers ...Handler) error {
	return r.terminate(Method(http.MethodGet), pattern, handlers)
}

// Post registers terminators for POST requests on the pattern.
func (r *Router) Post(pattern string, handlers ...Handler) error {
	return r.terminate(Method(http.MethodPost), pattern, handlers)
}

// Put registers terminators for PUT requests on the pattern.
func (r *Router) Put(pattern string, handlers ...Handler) error {
	return r.terminate(Method(http.MethodPut), pattern, handlers)
}

// Delete registers terminators for DELETE requests on the pattern.
func (r *Router) Delete(pattern string, handlers ...Handler) error {
	return r.terminate(Method(http.MethodDelete), pattern, handlers)
}

// Patch registers terminators for PATCH requests on the pattern.
func (r *Router) Patch(pattern string, handlers ...Handler) error {
	return r.terminate(Method(http.MethodPatch), pattern, handlers)
}

// Head registers terminators for HEAD requests on the pattern.
func (r *Router) Head(pattern string, handlers ...Handler) error {
	return r.terminate(Method(http.MethodHead), pattern, handlers)
}

// Options registers terminators for OPTIONS requests on the pattern.
func (r *Router) Options(pattern string, handlers ...Handler) error {
	return r.terminate(Method(http.MethodOptions), pattern, handlers)
}

// All registers terminators in the AllMethods bucket: they match any request
// method, after the request's own method bucket.
func (r *Router) All(pattern string, handlers ...Handler) error {
	return r.terminate(AllMethods, pattern, handlers)
}

// Use registers path middleware on the pattern: the handlers run for every
// request whose walk passes through the pattern's node, whatever the method.
func (r *Router) Use(pattern string, handlers ...Handler) error {
	if len(handlers) == 0 {
		return ErrNoHandlers
	}
	return r.AddMiddleware(PathMiddleware, pattern, 0, handlers...)
}

// ServeHTTP dispatches the request through the router. When nothing matches,
// NotFoundHandler (or http.NotFoundHandler) writes the response. The handler
// receives the context's current writer and request, so middleware that
// swapped them observes the not-found response too.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	c := NewContext(w, req)
	r.Dispatch(c, req.Method, req.URL.Path, func() {
		nf := r.NotFoundHandler
		if nf == nil {
			nf = http.NotFoundHandler()
		}
		nf.ServeHTTP(c.Writer, c.Request)
	})
}
