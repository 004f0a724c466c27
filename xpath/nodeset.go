package xpath

import "sort"

// Nodeset is an unordered set of distinct nodes drawn from a single
// document. Duplicates are forbidden by construction: Add and Union silently
// skip nodes already present.
type Nodeset struct {
	nodes []Node
	index map[Node]struct{}
}

// NewNodeset returns an empty nodeset.
func NewNodeset() *Nodeset {
	return &Nodeset{index: make(map[Node]struct{})}
}

// NodesetOf builds a nodeset from a (possibly duplicate-laden) slice,
// keeping first-seen order and dropping duplicates.
func NodesetOf(nodes ...Node) *Nodeset {
	ns := NewNodeset()
	for _, n := range nodes {
		ns.Add(n)
	}
	return ns
}

// Add inserts n if not already present. Reports whether it was added.
func (ns *Nodeset) Add(n Node) bool {
	if _, ok := ns.index[n]; ok {
		return false
	}
	ns.index[n] = struct{}{}
	ns.nodes = append(ns.nodes, n)
	return true
}

// Union returns a new nodeset containing every node in ns or other.
func (ns *Nodeset) Union(other *Nodeset) *Nodeset {
	out := NewNodeset()
	for _, n := range ns.nodes {
		out.Add(n)
	}
	if other != nil {
		for _, n := range other.nodes {
			out.Add(n)
		}
	}
	return out
}

// Len reports the number of nodes in the set.
func (ns *Nodeset) Len() int { return len(ns.nodes) }

// Contains reports whether n is a member.
func (ns *Nodeset) Contains(n Node) bool {
	_, ok := ns.index[n]
	return ok
}

// Slice returns the set's members in unspecified (insertion) order. Callers
// that need document order must call DocumentOrder instead.
func (ns *Nodeset) Slice() []Node {
	out := make([]Node, len(ns.nodes))
	copy(out, ns.nodes)
	return out
}

// DocumentOrder projects the set into an OrderedSequence sorted by document
// order, the order XPath specifies for string-value extraction and for
// Filter's predicate input.
func (ns *Nodeset) DocumentOrder() OrderedSequence {
	out := make(OrderedSequence, len(ns.nodes))
	copy(out, ns.nodes)
	SortDocumentOrder(out)
	return out
}

// OrderedSequence is a sequence of nodes whose order was determined
// externally (an axis's natural order, or an explicit document-order sort)
// and must be preserved: position and size within a predicate are defined
// relative to this order, not to set membership.
type OrderedSequence []Node

// ToNodeset discards order and de-duplicates, producing a Nodeset.
func (s OrderedSequence) ToNodeset() *Nodeset {
	return NodesetOf(s...)
}

// SortDocumentOrder sorts nodes in place by document order, using each
// node's DocumentOrderKey for a total, tie-broken ordering (attribute and
// namespace nodes sort immediately after their owner element per XPath 1.0).
func SortDocumentOrder(nodes []Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].DocumentOrderKey() < nodes[j].DocumentOrderKey()
	})
}
