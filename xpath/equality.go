package xpath

// Equal implements XPath 1.0's type-directed equality dispatch. The rules
// are tried in a specific priority order because more than one can apply to
// a given pair of kinds: boolean outranks number (rule 4 before rule 5), so
// `false = "hello"` is false even though "hello" is a non-number string —
// it's coerced to boolean (true), not compared as a number or a string.
type Equal struct {
	Left, Right Expression
}

func (e *Equal) Evaluate(ctx *EvaluationContext) (Value, error) {
	v, err := equalBoolean(ctx, e.Left, e.Right)
	if err != nil {
		return nil, err
	}
	return NewBoolean(v), nil
}

// NotEqual is the negation of Equal's boolean result; it shares Equal's
// dispatch rather than re-deriving a mirrored rule set.
type NotEqual struct {
	Left, Right Expression
}

func (e *NotEqual) Evaluate(ctx *EvaluationContext) (Value, error) {
	v, err := equalBoolean(ctx, e.Left, e.Right)
	if err != nil {
		return nil, err
	}
	return NewBoolean(!v), nil
}

func equalBoolean(ctx *EvaluationContext, left, right Expression) (bool, error) {
	lv, err := left.Evaluate(ctx)
	if err != nil {
		return false, err
	}
	rv, err := right.Evaluate(ctx)
	if err != nil {
		return false, err
	}
	return compareEqual(lv, rv), nil
}

func compareEqual(left, right Value) bool {
	lns, lIsNS := AsNodeset(left)
	rns, rIsNS := AsNodeset(right)

	switch {
	case lIsNS && rIsNS:
		// Rule 1: true iff some string-value on the left matches some
		// string-value on the right. A hash set over strings is safe here
		// (strings hash fine, unlike the float64 case below).
		leftStrings := make(map[string]struct{}, lns.Len())
		for _, n := range lns.Slice() {
			leftStrings[n.StringValue()] = struct{}{}
		}
		for _, n := range rns.Slice() {
			if _, ok := leftStrings[n.StringValue()]; ok {
				return true
			}
		}
		return false

	case lIsNS && right.Kind() == KindNumber:
		return nodesetMatchesNumber(lns, right.Number())
	case rIsNS && left.Kind() == KindNumber:
		return nodesetMatchesNumber(rns, left.Number())

	case lIsNS && right.Kind() == KindString:
		return nodesetMatchesString(lns, right.String())
	case rIsNS && left.Kind() == KindString:
		return nodesetMatchesString(rns, left.String())

	case left.Kind() == KindBoolean || right.Kind() == KindBoolean:
		// Rule 4, outranks rule 5: checked before the number rule below.
		return left.Boolean() == right.Boolean()

	case left.Kind() == KindNumber || right.Kind() == KindNumber:
		return left.Number() == right.Number()

	default:
		return left.String() == right.String()
	}
}

// nodesetMatchesNumber checks whether any node's string-value, coerced to a
// number, equals val. It scans linearly rather than hashing: NaN != NaN
// makes a hash set over float64 unsafe (a NaN key could never be found even
// if present), so this must be a straightforward scan instead.
func nodesetMatchesNumber(ns *Nodeset, val float64) bool {
	for _, n := range ns.Slice() {
		if stringToNumber(n.StringValue()) == val {
			return true
		}
	}
	return false
}

func nodesetMatchesString(ns *Nodeset, val string) bool {
	for _, n := range ns.Slice() {
		if n.StringValue() == val {
			return true
		}
	}
	return false
}
