package xpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func nodeNames(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*fakeNode).value
	}
	return out
}

func TestNodesetOfDropsDuplicatesKeepingFirstSeenOrder(t *testing.T) {
	doc := &fakeDocument{}
	a := newFakeNode(doc, "a", 0)
	b := newFakeNode(doc, "b", 1)

	ns := NodesetOf(a, b, a, b, a)
	got := nodeNames(ns.Slice())
	want := []string{"a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NodesetOf dedup mismatch (-want +got):\n%s", diff)
	}
}

func TestNodesetUnionDeduplicatesAcrossBothSets(t *testing.T) {
	doc := &fakeDocument{}
	a := newFakeNode(doc, "a", 0)
	b := newFakeNode(doc, "b", 1)
	c := newFakeNode(doc, "c", 2)

	left := NodesetOf(a, b)
	right := NodesetOf(b, c)

	union := left.Union(right)
	if union.Len() != 3 {
		t.Fatalf("union.Len() = %d, want 3", union.Len())
	}
	for _, n := range []Node{a, b, c} {
		if !union.Contains(n) {
			t.Errorf("union missing %v", n)
		}
	}
}

func TestDocumentOrderProjectsByKeyRegardlessOfInsertionOrder(t *testing.T) {
	doc := &fakeDocument{}
	first := newFakeNode(doc, "first", 0)
	second := newFakeNode(doc, "second", 1)
	third := newFakeNode(doc, "third", 2)

	// Inserted out of document order.
	ns := NodesetOf(third, first, second)

	got := nodeNames(ns.DocumentOrder())
	want := []string{"first", "second", "third"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DocumentOrder mismatch (-want +got):\n%s", diff)
	}
}
