package smt

import (
	"strings"
	"testing"

	"slava0135/rulesynth/expr"
)

func TestSerialize_Add(t *testing.T) {
	got, err := Serialize(expr.Add(expr.Var("x"), expr.Int(1)))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "(+ x 1)" {
		t.Errorf("got %q; want %q", got, "(+ x 1)")
	}
}

func TestSerialize_MinUsesMyMin(t *testing.T) {
	got, err := Serialize(expr.Min(expr.Var("x"), expr.Var("y")))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "(my_min x y)" {
		t.Errorf("got %q; want %q", got, "(my_min x y)")
	}
}

func TestSerialize_NotEqualExpandsToNotEqual(t *testing.T) {
	got, err := Serialize(expr.NE(expr.Var("x"), expr.Var("y")))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "(not (= x y))" {
		t.Errorf("got %q; want %q", got, "(not (= x y))")
	}
}

func TestSerialize_RampIsUnsupported(t *testing.T) {
	_, err := Serialize(expr.Ramp{Base: expr.Int(0), Stride: expr.Int(1), Lanes: 4})
	if err == nil {
		t.Fatal("expected an error serializing Ramp")
	}
	var target *ErrUnsupported
	if !strings.Contains(err.Error(), "Ramp") {
		t.Errorf("got error %v, want it to mention Ramp (target type %T)", err, target)
	}
}

func TestBuildQuery_DeclaresFreeVars(t *testing.T) {
	got, err := BuildQuery(expr.EQ(expr.Var("x"), expr.Int(1)))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(got, "(declare-const x Int)") {
		t.Errorf("expected query to declare x, got %q", got)
	}
	if !strings.Contains(got, "(check-sat)") {
		t.Errorf("expected query to contain check-sat, got %q", got)
	}
}
