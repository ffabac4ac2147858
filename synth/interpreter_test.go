package synth

import (
	"strings"
	"testing"

	"slava0135/rulesynth/expr"
)

func TestInterpreterExpr_NoDivisionOrModulus(t *testing.T) {
	leaves := []expr.Expr{expr.Var("x"), expr.Var("y")}
	opcodes := []expr.Expr{expr.Var("op0"), expr.Var("a0"), expr.Var("b0")}
	got := InterpreterExpr(leaves, opcodes)
	s := got.String()
	if strings.Contains(s, "/") || strings.Contains(s, "%") {
		t.Errorf("interpreter expression should never contain division or modulus, got %s", s)
	}
}

func TestInterpreterExpr_EmptyOpcodesReturnsLastLeaf(t *testing.T) {
	leaves := []expr.Expr{expr.Var("x"), expr.Var("y")}
	got := InterpreterExpr(leaves, nil)
	if !expr.Equal(got, expr.Var("y")) {
		t.Errorf("got %s; want y", got)
	}
}
