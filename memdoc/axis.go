package memdoc

import "github.com/gogo-agent/xpathcore/xpath"

// AxisKind names one of XPath 1.0's axes. memdoc implements twelve of the
// thirteen standard axes; the namespace axis is omitted (see DESIGN.md) since
// memdoc has no namespace-declaration model. The core itself is
// axis-agnostic: a namespace-axis implementation plugs into xpath.Axis
// exactly the way these do.
type AxisKind uint8

const (
	Child AxisKind = iota
	Descendant
	Parent
	Ancestor
	FollowingSibling
	PrecedingSibling
	Following
	Preceding
	AttributeAxis
	Self
	DescendantOrSelf
	AncestorOrSelf
)

// Axis implements xpath.Axis for one AxisKind. The zero Kind is Child.
type Axis struct {
	Kind AxisKind
}

// mustNode recovers memdoc's concrete type from the xpath.Node interface
// the core hands in. Every node produced by this package is a *Node, so a
// failed assertion means the caller mixed node handles from two different
// document models, a programmer error.
func mustNode(n xpath.Node) *Node {
	mn, ok := n.(*Node)
	if !ok {
		panic("memdoc: axis received a node not produced by this package")
	}
	return mn
}

func (a Axis) SelectNodes(ctx *xpath.EvaluationContext, test xpath.NodeTest, out *xpath.OrderedSequence) {
	n := mustNode(ctx.Node)

	emit := func(candidate *Node) {
		if test.Test(ctx, candidate) {
			*out = append(*out, candidate)
		}
	}

	switch a.Kind {
	case Self:
		emit(n)

	case Child:
		for _, c := range n.children {
			emit(c)
		}

	case Parent:
		if n.parent != nil {
			emit(n.parent)
		}

	case Descendant:
		for _, c := range n.children {
			emit(c)
			descend(c, emit)
		}

	case DescendantOrSelf:
		emit(n)
		for _, c := range n.children {
			emit(c)
			descend(c, emit)
		}

	case Ancestor:
		for p := n.parent; p != nil; p = p.parent {
			emit(p)
		}

	case AncestorOrSelf:
		emit(n)
		for p := n.parent; p != nil; p = p.parent {
			emit(p)
		}

	case FollowingSibling:
		for s := n.NextSibling(); s != nil; s = s.NextSibling() {
			emit(s)
		}

	case PrecedingSibling:
		for s := n.PreviousSibling(); s != nil; s = s.PreviousSibling() {
			emit(s)
		}

	case AttributeAxis:
		for _, attr := range n.attrs {
			emit(attr)
		}

	case Following:
		collectFollowing(documentRoot(n), n, emit)

	case Preceding:
		// The preceding axis is defined in reverse document order (nearest
		// preceding node first); collectPreceding gathers candidates in
		// forward document order, so the collected slice is walked back to
		// front before testing and emitting.
		var collected []*Node
		collectPreceding(documentRoot(n), n, ancestorSet(n), func(c *Node) { collected = append(collected, c) })
		for i := len(collected) - 1; i >= 0; i-- {
			emit(collected[i])
		}
	}
}

func documentRoot(n *Node) *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

func ancestorSet(n *Node) map[*Node]bool {
	set := make(map[*Node]bool)
	for p := n.parent; p != nil; p = p.parent {
		set[p] = true
	}
	return set
}

// descend visits every descendant of n (not n itself), document order,
// invoking emit on each.
func descend(n *Node, emit func(*Node)) {
	for _, c := range n.children {
		emit(c)
		descend(c, emit)
	}
}

// collectFollowing walks current's subtree in document order, emitting
// every node that comes after target and is not one of target's own
// descendants. It returns whether target lies within current's subtree, so
// an ancestor call can tell target's later siblings to start emitting.
func collectFollowing(current, target *Node, emit func(*Node)) bool {
	found := false
	for _, c := range current.children {
		switch {
		case found:
			emit(c)
			descend(c, emit)
		case c == target:
			found = true
		default:
			if collectFollowing(c, target, emit) {
				found = true
			}
		}
	}
	return found
}

// collectPreceding walks current's subtree in forward document order,
// collecting every node that comes before target, excluding target's
// ancestors (the axis explicitly excludes them — they're "above", not
// "before"). ancestors is the precomputed set of target's ancestor nodes.
// The caller reverses the collected order: the axis itself is defined in
// reverse document order.
func collectPreceding(current, target *Node, ancestors map[*Node]bool, emit func(*Node)) bool {
	for _, c := range current.children {
		switch {
		case c == target:
			return true
		case ancestors[c]:
			// c contains target; don't emit c itself, but its other
			// children may still precede target.
			if collectPreceding(c, target, ancestors, emit) {
				return true
			}
		default:
			emit(c)
			descend(c, emit)
		}
	}
	return false
}
