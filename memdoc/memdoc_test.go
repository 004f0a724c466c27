package memdoc

import (
	"testing"

	"github.com/gogo-agent/xpathcore/xpath"
)

// buildBookDoc builds:
//
//	<library>
//	  <book id="1">gravy</book>
//	  <book id="2">boat</book>
//	</library>
func buildBookDoc() (*Document, *Node, *Node) {
	book1 := Element("book", []*Node{Attribute("id", "1")}, Text("gravy"))
	book2 := Element("book", []*Node{Attribute("id", "2")}, Text("boat"))
	root := Element("library", nil, book1, book2)
	doc := Build(root)
	return doc, book1, book2
}

func TestElementStringValueConcatenatesDescendantText(t *testing.T) {
	doc, _, _ := buildBookDoc()
	if got := doc.Root().StringValue(); got != "gravyboat" {
		t.Errorf("StringValue() = %q, want %q", got, "gravyboat")
	}
}

func TestAttributeStringValueIsOwnData(t *testing.T) {
	doc, book1, _ := buildBookDoc()
	_ = doc
	if len(book1.Attrs()) != 1 {
		t.Fatalf("expected 1 attribute, got %d", len(book1.Attrs()))
	}
	attr := book1.Attrs()[0]
	if attr.StringValue() != "1" {
		t.Errorf("attr.StringValue() = %q, want \"1\"", attr.StringValue())
	}
}

func TestDocumentOrderAttributeFollowsOwner(t *testing.T) {
	doc, book1, _ := buildBookDoc()
	_ = doc
	owner := book1
	attr := book1.Attrs()[0]
	if !(owner.DocumentOrderKey() < attr.DocumentOrderKey()) {
		t.Error("owner should sort before its attribute")
	}
	if !(attr.DocumentOrderKey() < book1.children[0].DocumentOrderKey()) {
		t.Error("attribute should sort before the element's first child")
	}
}

func TestChildAxis(t *testing.T) {
	doc, book1, book2 := buildBookDoc()
	ctx := xpath.NewContext(doc.Root())
	var out xpath.OrderedSequence
	Axis{Kind: Child}.SelectNodes(ctx, NameTest{Name: "book"}, &out)
	if len(out) != 2 || out[0] != xpath.Node(book1) || out[1] != xpath.Node(book2) {
		t.Errorf("child axis = %v, want [book1 book2]", out)
	}
}

func TestDescendantAxisIncludesText(t *testing.T) {
	doc, _, _ := buildBookDoc()
	ctx := xpath.NewContext(doc.Root())
	var out xpath.OrderedSequence
	Axis{Kind: Descendant}.SelectNodes(ctx, AnyTest{}, &out)
	// library > book1, text, book2, text = 4 descendants
	if len(out) != 4 {
		t.Errorf("descendant axis found %d nodes, want 4", len(out))
	}
}

func TestFollowingAndPrecedingExcludeAncestorsAndSelf(t *testing.T) {
	doc, book1, book2 := buildBookDoc()
	_ = doc

	var following xpath.OrderedSequence
	ctx1 := xpath.NewContext(book1)
	Axis{Kind: Following}.SelectNodes(ctx1, NameTest{Name: "book"}, &following)
	if len(following) != 1 || following[0] != xpath.Node(book2) {
		t.Errorf("following(book1) = %v, want [book2]", following)
	}

	var preceding xpath.OrderedSequence
	ctx2 := xpath.NewContext(book2)
	Axis{Kind: Preceding}.SelectNodes(ctx2, NameTest{Name: "book"}, &preceding)
	if len(preceding) != 1 || preceding[0] != xpath.Node(book1) {
		t.Errorf("preceding(book2) = %v, want [book1]", preceding)
	}

	// preceding must never include ancestors of the context node.
	var precedingFromText xpath.OrderedSequence
	textNode := book2.children[0]
	ctx3 := xpath.NewContext(textNode)
	Axis{Kind: Preceding}.SelectNodes(ctx3, AnyTest{}, &precedingFromText)
	for _, n := range precedingFromText {
		if n == xpath.Node(book2) {
			t.Error("preceding axis must exclude the context node's own ancestors")
		}
	}
}

func TestPrecedingAxisIsReverseDocumentOrder(t *testing.T) {
	book1 := Element("book", nil, Text("gravy"))
	book2 := Element("book", nil, Text("boat"))
	book3 := Element("book", nil, Text("anchor"))
	doc := Build(Element("library", nil, book1, book2, book3))
	_ = doc

	var out xpath.OrderedSequence
	ctx := xpath.NewContext(book3)
	Axis{Kind: Preceding}.SelectNodes(ctx, NameTest{Name: "book"}, &out)

	if len(out) != 2 || out[0] != xpath.Node(book2) || out[1] != xpath.Node(book1) {
		t.Errorf("preceding(book3) = %v, want [book2, book1] (nearest first)", out)
	}
}

func TestAncestorAxis(t *testing.T) {
	doc, book1, _ := buildBookDoc()
	ctx := xpath.NewContext(xpath.Node(book1.children[0]))
	var out xpath.OrderedSequence
	Axis{Kind: Ancestor}.SelectNodes(ctx, AnyTest{}, &out)
	if len(out) != 2 || out[0] != xpath.Node(book1) || out[1] != doc.Root() {
		t.Errorf("ancestor(text) = %v, want [book1, library]", out)
	}
}
