package xpath

import "math"

// MathOp is one of the five XPath 1.0 arithmetic operators. Each is plain
// IEEE-754 arithmetic on the number coercion of both operands: division by
// zero yields ±Inf or NaN (0/0), never an error, and modulus is `math.Mod`
// (IEEE-754 `fmod`), which — like XPath — takes the sign of the dividend
// and yields NaN for a zero divisor.
type MathOp func(a, b float64) float64

func MathAdd(a, b float64) float64      { return a + b }
func MathSubtract(a, b float64) float64 { return a - b }
func MathMultiply(a, b float64) float64 { return a * b }
func MathDivide(a, b float64) float64   { return a / b }
func MathModulus(a, b float64) float64  { return math.Mod(a, b) }

// Math applies Op to the number coercion of both operands.
type Math struct {
	Left, Right Expression
	Op          MathOp
}

func (e *Math) Evaluate(ctx *EvaluationContext) (Value, error) {
	left, err := e.Left.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	right, err := e.Right.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return NewNumber(e.Op(left.Number(), right.Number())), nil
}

// RelationalOp is one of the four ordering comparisons.
type RelationalOp func(a, b float64) bool

func LessThan(a, b float64) bool           { return a < b }
func LessThanOrEqual(a, b float64) bool    { return a <= b }
func GreaterThan(a, b float64) bool        { return a > b }
func GreaterThanOrEqual(a, b float64) bool { return a >= b }

// Relational always coerces both operands to number and compares, unlike
// Equal/NotEqual it never performs the nodeset-pairwise dance: XPath 1.0
// specifies this simpler rule for the `<`-family. NaN comparisons are
// false for every operator, a free consequence of IEEE-754 ordering.
type Relational struct {
	Left, Right Expression
	Op          RelationalOp
}

func (e *Relational) Evaluate(ctx *EvaluationContext) (Value, error) {
	left, err := e.Left.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	right, err := e.Right.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return NewBoolean(e.Op(left.Number(), right.Number())), nil
}
