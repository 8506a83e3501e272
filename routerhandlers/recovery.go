package routerhandlers

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/vitalvas/arbor/router"
)

// PanicError carries a recovered panic value together with the stack of the
// goroutine that raised it, captured at the recovery point.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// RecoverFunc writes the response for a recovered panic. The rest of the
// pipeline is already dead at this point; the function owns the response and
// must not call further handlers.
type RecoverFunc func(c *router.Context, err *PanicError)

// Recovery returns middleware that converts a panic anywhere later in the
// pipeline into an error response instead of letting it unwind past the
// dispatch. Because the whole pipeline runs inside this handler's next, a
// single registration near the root covers every terminator, path
// middleware and parameter sub-tree below it.
//
// When onRecover is nil a plain 500 is written. A non-nil onRecover takes
// over the response and receives the panic value with its stack.
//
// http.ErrAbortHandler is re-raised untouched: aborting a handler that way
// is a supported net/http idiom, not a failure.
func Recovery(onRecover RecoverFunc) router.Handler {
	return func(c *router.Context, next func()) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && err == http.ErrAbortHandler {
				panic(v)
			}

			perr := &PanicError{Value: v, Stack: debug.Stack()}
			if onRecover != nil {
				onRecover(c, perr)
				return
			}

			http.Error(c.Writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}()

		next()
	}
}
