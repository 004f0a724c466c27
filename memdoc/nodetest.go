package memdoc

import "github.com/gogo-agent/xpathcore/xpath"

// NameTest implements xpath.NodeTest by exact element/attribute name, or by
// wildcard when Name is "*" (matching every element or attribute,
// depending on what the axis produces — text nodes never match a
// NameTest).
type NameTest struct {
	Name string
}

func (t NameTest) Test(_ *xpath.EvaluationContext, candidate xpath.Node) bool {
	n, ok := candidate.(*Node)
	if !ok || n.kind == KindText {
		return false
	}
	return t.Name == "*" || n.name == t.Name
}

// KindTest implements xpath.NodeTest by node kind, the memdoc analogue of
// XPath's node-kind tests (e.g. `text()`).
type KindTest struct {
	Kind Kind
}

func (t KindTest) Test(_ *xpath.EvaluationContext, candidate xpath.Node) bool {
	n, ok := candidate.(*Node)
	return ok && n.kind == t.Kind
}

// AnyTest implements xpath.NodeTest by accepting every candidate, the
// memdoc analogue of XPath's `node()` test.
type AnyTest struct{}

func (AnyTest) Test(_ *xpath.EvaluationContext, candidate xpath.Node) bool { return true }
