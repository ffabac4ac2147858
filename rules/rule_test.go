package rules

import (
	"testing"

	"slava0135/rulesynth/expr"
)

func TestCountLeaves_CountsVariablesAndConstants(t *testing.T) {
	e := expr.Add(expr.Var("v0"), expr.Int(1))
	count, hasDivision, repeated := CountLeaves(e)
	if count != 2 {
		t.Errorf("got count %d; want 2", count)
	}
	if hasDivision {
		t.Errorf("did not expect hasDivision for %s", e)
	}
	if repeated {
		t.Errorf("did not expect repeatedVar for %s", e)
	}
}

func TestCountLeaves_DetectsDivision(t *testing.T) {
	e := expr.Div(expr.Var("v0"), expr.Var("v1"))
	_, hasDivision, _ := CountLeaves(e)
	if !hasDivision {
		t.Errorf("expected hasDivision for %s", e)
	}
}

func TestCountLeaves_ModAloneIsNotDivision(t *testing.T) {
	e := expr.Mod(expr.Var("v0"), expr.Var("v1"))
	_, hasDivision, _ := CountLeaves(e)
	if hasDivision {
		t.Errorf("did not expect hasDivision for %s: Mod is not Div", e)
	}
}

func TestCountLeaves_DetectsRepeatedVar(t *testing.T) {
	e := expr.Min(expr.Var("v0"), expr.Var("v0"))
	_, _, repeated := CountLeaves(e)
	if !repeated {
		t.Errorf("expected repeatedVar for %s", e)
	}
}
