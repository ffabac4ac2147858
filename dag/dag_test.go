package dag

import (
	"testing"

	"slava0135/rulesynth/expr"
)

func TestBuild_RootIsIDZero(t *testing.T) {
	e := expr.Add(expr.Var("x"), expr.Int(1))
	d := Build(e)
	if d.ExprForID[0].String() != e.String() {
		t.Errorf("expected id 0 to be the root %s, got %s", e, d.ExprForID[0])
	}
}

func TestBuild_SharesStructurallyEqualSubexprs(t *testing.T) {
	shared := expr.Add(expr.Var("x"), expr.Var("y"))
	e := expr.Mul(shared, shared)
	d := Build(e)
	// two occurrences of "x + y" must resolve to the same id
	id, ok := d.IDForExpr[shared.String()]
	if !ok {
		t.Fatalf("expected %s to be present in the dag", shared)
	}
	if len(d.Children[0]) != 1 {
		t.Errorf("expected both operands of %s to collapse to a single shared child edge, got %d", e, len(d.Children[0]))
	}
	if _, ok := d.Children[0][id]; !ok {
		t.Errorf("expected root's single child edge to point at shared subexpr id %d", id)
	}
}
