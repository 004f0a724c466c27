// Package memdoc is a minimal, read-only in-memory document model used to
// exercise package xpath's evaluation core in tests and examples. It
// implements the narrow collaborator interfaces the core consumes
// (xpath.Node, xpath.Document, xpath.Axis, xpath.NodeTest) over a plain
// element/text/attribute tree.
//
// It is deliberately not a general-purpose DOM: no mutation API, no
// parsing, no serialization. Those are explicit non-goals of the
// evaluation core this package exists to test (see SPEC_FULL.md §3).
// It is grounded on the Node/Document interface shape and axis traversal
// helpers of the xmldom package this module's core was adapted from,
// trimmed to the read-only subset XPath evaluation needs.
package memdoc

import "github.com/gogo-agent/xpathcore/xpath"

// Kind distinguishes the three node shapes memdoc supports.
type Kind uint8

const (
	KindElement Kind = iota
	KindText
	KindAttribute
)

// Node is memdoc's node handle. It implements xpath.Node.
type Node struct {
	kind     Kind
	name     string // element or attribute name; unused for text
	data     string // text content, or attribute value
	parent   *Node
	children []*Node
	attrs    []*Node // only populated for KindElement
	doc      *Document
	orderKey uint64
}

// Kind reports which of the three node shapes n is.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the element or attribute name; "" for text nodes.
func (n *Node) Name() string { return n.name }

// Data returns the text content of a text node or the value of an
// attribute node; "" for elements.
func (n *Node) Data() string { return n.data }

// Parent returns the owning element for an attribute or a child node, or
// nil for the document root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns an element's child nodes in document order; nil for
// text and attribute nodes.
func (n *Node) Children() []*Node { return n.children }

// Attrs returns an element's attribute nodes in declaration order; nil for
// non-elements.
func (n *Node) Attrs() []*Node { return n.attrs }

// siblingIndex returns n's index within its parent's Children, or -1 if n
// has no parent or is an attribute (attributes aren't part of the sibling
// axis).
func (n *Node) siblingIndex() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// NextSibling returns the following sibling element/text node, or nil.
func (n *Node) NextSibling() *Node {
	i := n.siblingIndex()
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

// PreviousSibling returns the preceding sibling element/text node, or nil.
func (n *Node) PreviousSibling() *Node {
	i := n.siblingIndex()
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

// StringValue implements xpath.Node: an element's string-value is the
// concatenation, in document order, of all descendant text; a text node's
// or attribute's string-value is its own data.
func (n *Node) StringValue() string {
	switch n.kind {
	case KindText, KindAttribute:
		return n.data
	default:
		var buf []byte
		n.collectText(&buf)
		return string(buf)
	}
}

func (n *Node) collectText(buf *[]byte) {
	if n.kind == KindText {
		*buf = append(*buf, n.data...)
		return
	}
	for _, c := range n.children {
		c.collectText(buf)
	}
}

// Document implements xpath.Node.
func (n *Node) Document() xpath.Document { return n.doc }

// DocumentOrderKey implements xpath.Node. Keys are assigned in Build, a
// pre-order walk in which an element's attributes are numbered immediately
// after the element itself and before any child, matching XPath 1.0's
// tie-break rule that attribute nodes follow their owner element.
func (n *Node) DocumentOrderKey() uint64 { return n.orderKey }

// Document is memdoc's xpath.Document implementation: a root node plus
// whatever the tree under it holds.
type Document struct {
	root *Node
}

func (d *Document) Root() xpath.Node { return d.root }

// RootNode returns the memdoc root as a *Node, for tests that want to walk
// the concrete tree rather than go through the xpath.Node interface.
func (d *Document) RootNode() *Node { return d.root }

// Text returns a text node with the given content.
func Text(data string) *Node {
	return &Node{kind: KindText, data: data}
}

// Attribute returns an attribute node with the given name and value.
func Attribute(name, value string) *Node {
	return &Node{kind: KindAttribute, name: name, data: value}
}

// Element returns an element node named name with the given attributes and
// children. Passing a KindText or KindElement node in attrs, or a
// KindAttribute node in children, is a programmer error and panics.
func Element(name string, attrs []*Node, children ...*Node) *Node {
	e := &Node{kind: KindElement, name: name, attrs: attrs, children: children}
	for _, a := range attrs {
		if a.kind != KindAttribute {
			panic("memdoc: Element attrs must all be attribute nodes")
		}
	}
	for _, c := range children {
		if c.kind == KindAttribute {
			panic("memdoc: Element children must not be attribute nodes")
		}
	}
	return e
}

// Build finalizes a tree rooted at root into a Document: it wires parent
// pointers, assigns the document-owner, and numbers every node in document
// order.
func Build(root *Node) *Document {
	doc := &Document{}
	var counter uint64
	var link func(n, parent *Node)
	link = func(n, parent *Node) {
		n.parent = parent
		n.doc = doc
		n.orderKey = counter
		counter++
		for _, a := range n.attrs {
			a.parent = n
			a.doc = doc
			a.orderKey = counter
			counter++
		}
		for _, c := range n.children {
			link(c, n)
		}
	}
	link(root, nil)
	doc.root = root
	return doc
}
