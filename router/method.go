package router

// methodKind separates named HTTP methods from the reserved buckets.
type methodKind uint8

const (
	methodNamed methodKind = iota
	methodPath
	methodAll
)

// MethodKey identifies the handler bucket a registration targets: a named
// request method, or one of the two reserved buckets PathMiddleware and
// AllMethods. The kind tag keeps the reserved keys disjoint from every
// caller-supplied method name.
type MethodKey struct {
	kind methodKind
	name string
}

// Method returns the key for a named request method. Real HTTP methods are
// uppercase by convention (RFC 9110 Section 9.1); the name is used as given.
func Method(name string) MethodKey {
	return MethodKey{kind: methodNamed, name: name}
}

// PathMiddleware is the reserved bucket for handlers that run for every
// request passing through their node, regardless of the request method.
// Both of its lists are gathered as the walk passes the node and join the
// stage-merge at the request's final node; when no route matches, only the
// gathered middleware runs, before the outer next.
var PathMiddleware = MethodKey{kind: methodPath}

// AllMethods is the reserved bucket that participates for any request
// method, at a lower priority than the request's own method bucket.
var AllMethods = MethodKey{kind: methodAll}

// String returns the method name, or a reserved-token label for the
// PathMiddleware and AllMethods buckets.
func (k MethodKey) String() string {
	switch k.kind {
	case methodPath:
		return "MIDDLEWARE"
	case methodAll:
		return "ALL"
	default:
		return k.name
	}
}
