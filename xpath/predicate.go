package xpath

import "math"

// applyPredicate filters seq through pred: each node gets a fresh per-node
// context with position/size set to its index/length within seq (not
// whatever position/size the outer context carried), per §4.14. A numeric
// predicate result is a positional filter; any other kind coerces to
// boolean. Errors propagate immediately, discarding whatever survived so
// far — there is no partial result.
func applyPredicate(ctx *EvaluationContext, seq OrderedSequence, pred Expression) (OrderedSequence, error) {
	contexts := ctx.NewContextsFor(seq)
	kept := make(OrderedSequence, 0, len(seq))
	for i, nodeCtx := range contexts {
		v, err := pred.Evaluate(nodeCtx)
		if err != nil {
			return nil, err
		}
		if predicateMatches(v, i+1) {
			kept = append(kept, seq[i])
		}
	}
	return kept, nil
}

// predicateMatches decides whether a predicate's result selects the node at
// the given 1-based position.
//
// A numeric result means positional matching: the node is kept iff the
// number is finite, at least 1, and its floor equals position exactly.
// Unlike an unchecked conversion to an unsigned integer, NaN, infinities,
// and negative or sub-1 fractional values simply never match, rather than
// wrapping into some large or zero position.
//
// Any non-numeric result coerces to boolean. The dispatch is on the runtime
// kind of the value, never on the shape of the predicate expression itself:
// the literal `1` or a `last()` call yields a number and selects by
// position, while `position() = last()` yields a boolean (Equal always
// does) and keeps or drops the node by that boolean.
func predicateMatches(v Value, position int) bool {
	if v.Kind() == KindNumber {
		n := v.Number()
		if math.IsNaN(n) || math.IsInf(n, 0) || n < 1 {
			return false
		}
		return math.Floor(n) == float64(position)
	}
	return v.Boolean()
}
