package router

import (
	"net/http"
	"strings"
)

// accEntry is one handler list gathered on the walk, waiting to join the
// stage-merge at the request's final node. Terminator entries only fire at a
// matched terminal node; middleware entries also run when the dispatch gives
// up (see Dispatch).
type accEntry struct {
	list       *StagedList[Handler]
	terminator bool
}

// dispatchState carries one request through the tree.
type dispatchState struct {
	router *Router
	ctx    *Context
	method string
}

// Dispatch walks the tree for the request path and drives the matched
// handlers as an onion pipeline. When no terminal node with terminators is
// reached, the path middleware gathered along the primary walk still runs,
// and next is then called exactly once. Handlers that never call their next
// stop the pipeline; next is not called in that case either.
func (r *Router) Dispatch(c *Context, method, path string, next func()) {
	d := &dispatchState{router: r, ctx: c, method: method}
	d.walk(r.tree.root, path, nil, func(acc []accEntry) {
		lists := make([]*StagedList[Handler], 0, len(acc))
		for _, e := range acc {
			if !e.terminator {
				lists = append(lists, e.list)
			}
		}
		runChain(c, MergeStaged(lists...), next)
	})
}

// walk drives the dispatch against one radix (sub-)tree. giveUp receives the
// accumulator as gathered along this walk; it fires when the walk exhausts
// without a terminal match.
func (d *dispatchState) walk(root *node, path string, acc []accEntry, giveUp func([]accEntry)) {
	d.step(newWalker(root, path), acc, giveUp)
}

func (d *dispatchState) step(w *walker, acc []accEntry, giveUp func([]accEntry)) {
	for {
		n, remaining, ok := w.Next()
		if !ok {
			giveUp(acc)
			return
		}

		terminal := !w.HasNext()
		boundary := terminal ||
			strings.HasSuffix(n.label, "/") ||
			strings.HasPrefix(remaining, "/")

		if terminal && d.isMatch(remaining) && d.finish(n, acc) {
			return
		}

		if boundary {
			if b := n.payload.lookup(PathMiddleware); b != nil {
				if !b.terminators.Empty() {
					acc = append(acc, accEntry{list: &b.terminators, terminator: true})
				}
				if !b.middleware.Empty() {
					acc = append(acc, accEntry{list: &b.middleware})
				}
			}
		}

		if !n.payload.branches.Empty() {
			resume := func(acc []accEntry) {
				d.step(w, acc, giveUp)
			}
			if d.tryBranches(n, remaining, acc, resume) {
				return
			}
		}
	}
}

// isMatch reports whether a terminal node's remainder counts as a path
// match under the trailing-slash policy.
func (d *dispatchState) isMatch(remaining string) bool {
	return remaining == "" || (!d.router.strictSlashes && remaining == "/")
}

// finish assembles and drives the pipeline at a matched terminal node. It
// returns false when neither the request method nor the AllMethods bucket
// carries terminators there, in which case the walk continues.
func (d *dispatchState) finish(n *node, acc []accEntry) bool {
	p := n.payload

	methodData := p.lookup(Method(d.method))

	// A HEAD request without HEAD terminators falls back to the GET
	// buckets; any HEAD middleware still runs, just before GET's.
	var headData *buckets
	if d.method == http.MethodHead && terminatorsOf(methodData).Empty() {
		headData = methodData
		methodData = p.lookup(Method(http.MethodGet))
	}

	allData := p.lookup(AllMethods)

	if terminatorsOf(methodData).Empty() && terminatorsOf(allData).Empty() {
		return false
	}

	pathData := p.lookup(PathMiddleware)

	lists := make([]*StagedList[Handler], 0, len(acc)+5)
	lists = append(lists, middlewareOf(pathData))
	for _, e := range acc {
		lists = append(lists, e.list)
	}
	lists = append(lists, terminatorsOf(pathData))
	if headData != nil {
		lists = append(lists, &headData.middleware)
	}
	lists = append(lists, middlewareOf(methodData), middlewareOf(allData))

	chain := MergeStaged(lists...)
	chain = append(chain, terminatorsOf(methodData).Ordered()...)
	chain = append(chain, terminatorsOf(allData).Ordered()...)

	runChain(d.ctx, chain, func() {})
	return true
}

// tryBranches attempts the node's parameter branches in priority order. The
// first branch whose candidate value passes wins; the dispatch recurses into
// its sub-tree and no further branch is tried. resume continues the outer
// walk and is reached only through the sub-dispatch's wrapped next, so the
// parameter binding is never visible outside the sub-tree.
func (d *dispatchState) tryBranches(n *node, remaining string, acc []accEntry, resume func([]accEntry)) bool {
	segVal := remaining
	if cut := strings.IndexByte(remaining, '/'); cut >= 0 {
		segVal = remaining[:cut]
	}

	for _, b := range n.payload.branches.Ordered() {
		candidate := segVal
		if b.multi {
			candidate = remaining
		}

		if b.re != nil {
			loc := b.re.FindStringIndex(candidate)
			if loc == nil {
				continue
			}
			candidate = candidate[:loc[1]]
		} else if candidate == "" {
			continue
		}

		prev, had := d.ctx.bindParam(b.name, candidate)

		d.walk(b.sub.root, remaining[len(candidate):], acc, func(_ []accEntry) {
			// The sub-tree found nothing: restore the binding, hand
			// control back to the outer walk, and re-bind on the way
			// back up so the deferred restore below stays balanced.
			d.ctx.restoreParam(b.name, prev, had)
			resume(acc)
			d.ctx.bindParam(b.name, candidate)
		})

		d.ctx.restoreParam(b.name, prev, had)
		return true
	}

	return false
}

// middlewareOf and terminatorsOf lift possibly-nil buckets into merge inputs.
func middlewareOf(b *buckets) *StagedList[Handler] {
	if b == nil {
		return nil
	}
	return &b.middleware
}

func terminatorsOf(b *buckets) *StagedList[Handler] {
	if b == nil {
		return nil
	}
	return &b.terminators
}

// runChain composes handlers onion-style: handler i receives a next that
// invokes handler i+1, with done as the continuation past the end.
func runChain(c *Context, handlers []Handler, done func()) {
	var call func(i int)
	call = func(i int) {
		if i >= len(handlers) {
			done()
			return
		}
		handlers[i](c, func() { call(i + 1) })
	}
	call(0)
}
