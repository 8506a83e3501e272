package router

import "net/http"

// Context carries one request through a dispatch. Handlers read captured
// path parameters from it and may use Writer and Request freely; the router
// itself touches only the parameter map.
type Context struct {
	Writer  http.ResponseWriter
	Request *http.Request

	params map[string]string
}

// NewContext returns a Context for the given response writer and request.
// Either may be nil when the router is driven outside net/http.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{Writer: w, Request: r}
}

// Param returns the captured value of a path parameter and whether it is
// bound in the current dispatch scope.
func (c *Context) Param(name string) (string, bool) {
	v, ok := c.params[name]
	return v, ok
}

// Params returns a copy of the parameters bound in the current dispatch
// scope. Bindings change as the dispatch enters and leaves parameter
// sub-trees, so the copy reflects the caller's position only.
func (c *Context) Params() map[string]string {
	out := make(map[string]string, len(c.params))
	for k, v := range c.params {
		out[k] = v
	}
	return out
}

// SetParam binds a path parameter on the context. Intended for testing
// handlers outside a dispatch.
func (c *Context) SetParam(name, value string) {
	c.bindParam(name, value)
}

// bindParam sets a parameter and returns the previous binding so the caller
// can restore it when its scope ends.
func (c *Context) bindParam(name, value string) (prev string, had bool) {
	if c.params == nil {
		c.params = make(map[string]string)
	}
	prev, had = c.params[name]
	c.params[name] = value
	return prev, had
}

// restoreParam reinstates the binding captured by bindParam.
func (c *Context) restoreParam(name, prev string, had bool) {
	if had {
		c.params[name] = prev
		return
	}
	delete(c.params, name)
}
