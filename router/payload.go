package router

import "regexp"

// buckets holds the two handler lists registered under one method key.
type buckets struct {
	middleware  StagedList[Handler]
	terminators StagedList[Handler]
}

// paramBranch is a parametric edge attached to a node. It owns a disjoint
// radix sub-tree for whatever follows the parameter.
type paramBranch struct {
	name  string
	re    *regexp.Regexp
	reSrc string
	multi bool
	sub   *tree
}

// matches reports whether the branch covers the same parameter shape.
// Branches are deduplicated on (name, multi, regex source) at registration.
func (b *paramBranch) matches(s segment) bool {
	return b.name == s.name && b.multi == s.multi && b.reSrc == s.reSrc
}

// payload is the per-node storage: handler buckets keyed by method, plus the
// parameter branches rooted at the node.
type payload struct {
	methods  map[MethodKey]*buckets
	branches StagedList[*paramBranch]
}

func newPayload() *payload {
	return &payload{methods: make(map[MethodKey]*buckets)}
}

// bucket returns the buckets for key, creating them on first use.
func (p *payload) bucket(key MethodKey) *buckets {
	b, ok := p.methods[key]
	if !ok {
		b = &buckets{}
		p.methods[key] = b
	}
	return b
}

// lookup returns the buckets for key, or nil when none were registered.
func (p *payload) lookup(key MethodKey) *buckets {
	return p.methods[key]
}
