package synth

import (
	"context"
	"os/exec"
	"testing"

	"slava0135/rulesynth/expr"
	"slava0135/rulesynth/smt"
)

// requireSolver skips the test when no z3 binary is on PATH: unlike
// Slava0135-gobber's embedded cgo z3, this bridge shells out to a solver
// binary that may not exist in every test environment.
func requireSolver(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("z3")
	if err != nil {
		t.Skip("z3 not found on PATH, skipping solver-backed test")
	}
	return path
}

func TestSuperSimplify_MinSelfIsX(t *testing.T) {
	path := requireSolver(t)
	bridge := smt.NewBridge(path)
	e := expr.Min(expr.Var("x"), expr.Var("x"))
	got, ok, err := SuperSimplify2(context.Background(), bridge, e)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !ok {
		t.Fatal("expected a synthesized replacement for min(x, x)")
	}
	if !expr.Equal(expr.Simplify(got), expr.Var("x")) {
		t.Errorf("got %s; want x", got)
	}
}

func TestSuperSimplify_AddZeroIsX(t *testing.T) {
	path := requireSolver(t)
	bridge := smt.NewBridge(path)
	e := expr.Add(expr.Var("x"), expr.Int(0))
	got, ok, err := SuperSimplify2(context.Background(), bridge, e)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !ok {
		t.Fatal("expected a synthesized replacement for x + 0")
	}
	if !expr.Equal(expr.Simplify(got), expr.Var("x")) {
		t.Errorf("got %s; want x", got)
	}
}
