package xpath

import "testing"

type panicIfEvaluated struct{}

func (panicIfEvaluated) Evaluate(ctx *EvaluationContext) (Value, error) {
	panic("should never be evaluated")
}

func TestAndShortCircuits(t *testing.T) {
	e := &And{Left: lit(NewBoolean(false)), Right: panicIfEvaluated{}}
	v, err := e.Evaluate(NewContext(nil))
	if err != nil {
		t.Fatal(err)
	}
	if v.Boolean() {
		t.Error("And(false, _) should be false")
	}
}

func TestOrShortCircuits(t *testing.T) {
	e := &Or{Left: lit(NewBoolean(true)), Right: panicIfEvaluated{}}
	v, err := e.Evaluate(NewContext(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Boolean() {
		t.Error("Or(true, _) should be true")
	}
}

func TestAndEvaluatesRightWhenLeftTrue(t *testing.T) {
	e := &And{Left: lit(NewBoolean(true)), Right: lit(NewBoolean(false))}
	v, err := e.Evaluate(NewContext(nil))
	if err != nil {
		t.Fatal(err)
	}
	if v.Boolean() {
		t.Error("And(true, false) should be false")
	}
}

func TestNegation(t *testing.T) {
	e := &Negation{Operand: lit(NewNumber(5))}
	v, err := e.Evaluate(NewContext(nil))
	if err != nil {
		t.Fatal(err)
	}
	if v.Number() != -5 {
		t.Errorf("Negation(5) = %v, want -5", v.Number())
	}
}
