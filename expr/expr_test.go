package expr

import "testing"

func TestEqual_SameStructure(t *testing.T) {
	a := Add(Var("x"), Int(1))
	b := Add(Var("x"), Int(1))
	if !Equal(a, b) {
		t.Errorf("expected %s to equal %s", a, b)
	}
}

func TestEqual_DifferentOperand(t *testing.T) {
	a := Add(Var("x"), Int(1))
	b := Add(Var("x"), Int(2))
	if Equal(a, b) {
		t.Errorf("did not expect %s to equal %s", a, b)
	}
}

func TestCompare_CommutativeOperandOrderMatters(t *testing.T) {
	a := Add(Var("x"), Var("y"))
	b := Add(Var("y"), Var("x"))
	if Compare(a, b) == 0 {
		t.Errorf("did not expect %s and %s to compare equal: structural comparison is order-sensitive even for commutative ops", a, b)
	}
}

func TestCompare_NonCommutativeOrderMatters(t *testing.T) {
	a := Sub(Var("x"), Var("y"))
	b := Sub(Var("y"), Var("x"))
	if Compare(a, b) == 0 {
		t.Errorf("did not expect %s and %s to compare equal", a, b)
	}
}

func TestFreeVars_SkipsLetBoundName(t *testing.T) {
	e := LetIn("t", Int32, Add(Var("x"), Int(1)), Mul(Var("t"), Var("y")))
	got := FreeVars(e)
	names := map[string]bool{}
	for _, v := range got {
		names[v.Name] = true
	}
	if names["t"] {
		t.Errorf("let-bound name 't' should not be free in %s", e)
	}
	if !names["x"] || !names["y"] {
		t.Errorf("expected x and y free in %s, got %v", e, got)
	}
}

func TestType_CompareIsBool(t *testing.T) {
	e := LT(Var("x"), Var("y"))
	if e.Type() != Bool {
		t.Errorf("expected LT to have type Bool, got %s", e.Type())
	}
}
