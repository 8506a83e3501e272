package router

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// RouteEntry describes one registered bucket: the pattern it answers on, the
// method key, and how many handlers sit in each list.
type RouteEntry struct {
	Pattern     string `yaml:"pattern" json:"pattern"`
	Method      string `yaml:"method" json:"method"`
	Middleware  int    `yaml:"middleware,omitempty" json:"middleware,omitempty"`
	Terminators int    `yaml:"terminators,omitempty" json:"terminators,omitempty"`
}

// RouteTable is a snapshot of everything registered on a Router, for
// diagnostics and documentation tooling.
type RouteTable struct {
	Routes []RouteEntry `yaml:"routes" json:"routes"`
}

// YAML renders the table as YAML.
func (t *RouteTable) YAML() ([]byte, error) {
	return yaml.Marshal(t)
}

// Describe walks the registration tree, including parameter sub-trees, and
// reports every node that carries handlers. Entry order is deterministic:
// tree creation order, with a node's method keys sorted.
func (r *Router) Describe() *RouteTable {
	t := &RouteTable{}
	describeNode(r.tree.root, "", t)
	return t
}

func describeNode(n *node, prefix string, t *RouteTable) {
	pattern := prefix
	if n.label != rootLabel {
		pattern += n.label
	}

	keys := make([]MethodKey, 0, len(n.payload.methods))
	for k := range n.payload.methods {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].kind != keys[j].kind {
			return keys[i].kind < keys[j].kind
		}
		return keys[i].name < keys[j].name
	})

	for _, k := range keys {
		b := n.payload.methods[k]
		if b.middleware.Empty() && b.terminators.Empty() {
			continue
		}
		display := pattern
		if display == "" {
			display = "/"
		}
		t.Routes = append(t.Routes, RouteEntry{
			Pattern:     display,
			Method:      k.String(),
			Middleware:  b.middleware.Len(),
			Terminators: b.terminators.Len(),
		})
	}

	for _, b := range n.payload.branches.Ordered() {
		describeNode(b.sub.root, pattern+branchToken(b), t)
	}

	for _, c := range n.children {
		describeNode(c, pattern, t)
	}
}

// branchToken renders a parameter branch back into pattern syntax.
func branchToken(b *paramBranch) string {
	var sb strings.Builder
	sb.WriteByte(':')
	sb.WriteString(b.name)
	if b.reSrc != "" {
		sb.WriteByte('(')
		sb.WriteString(b.reSrc)
		sb.WriteByte(')')
	}
	if b.multi {
		sb.WriteByte('*')
	}
	return sb.String()
}
