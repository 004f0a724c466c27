package xpath

// Step is one axis/node-test/predicates triple: child::foo[1] is a single
// Step. A Path threads a starting nodeset through an ordered list of Steps.
type Step struct {
	Axis       Axis
	Test       NodeTest
	Predicates []Expression
}

// evaluate runs the step's three phases against a starting nodeset:
//
//  1. Axis application: for every node in start, in arbitrary order,
//     the axis enumerates candidates in its own natural order and appends
//     survivors to a single shared sequence. The aggregate order across
//     input nodes is the concatenation of each per-node axis emission.
//  2. Predicate chaining: each predicate, in declaration order, filters the
//     current sequence; every predicate sees a fresh 1..N numbering of
//     whatever the previous predicate left.
//  3. Nodeset promotion: the final sequence becomes the step's output
//     nodeset. A single axis application cannot itself produce a node
//     twice, but aggregating across more than one starting node can, so
//     promotion still de-duplicates.
func (s *Step) evaluate(ctx *EvaluationContext, start *Nodeset) (*Nodeset, error) {
	var seq OrderedSequence
	for _, node := range start.Slice() {
		nodeCtx := ctx.NewContextFor(node)
		s.Axis.SelectNodes(nodeCtx, s.Test, &seq)
	}

	for _, pred := range s.Predicates {
		filtered, err := applyPredicate(ctx, seq, pred)
		if err != nil {
			return nil, err
		}
		seq = filtered
	}

	return seq.ToNodeset(), nil
}
