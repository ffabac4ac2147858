package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"slava0135/rulesynth/expr"
)

func TestMoreGeneralThan_MinV0V1SubsumesMinV0V0(t *testing.T) {
	general := expr.Min(expr.Var("v0"), expr.Var("v1"))
	specific := expr.Min(expr.Var("v0"), expr.Var("v0"))
	if !MoreGeneralThan(general, specific, expr.Bindings{}) {
		t.Errorf("expected %s to be more general than %s", general, specific)
	}
}

func TestMoreGeneralThan_NotSymmetric(t *testing.T) {
	general := expr.Min(expr.Var("v0"), expr.Var("v1"))
	specific := expr.Min(expr.Var("v0"), expr.Var("v0"))
	if MoreGeneralThan(specific, general, expr.Bindings{}) {
		t.Errorf("did not expect %s to be more general than %s", specific, general)
	}
}

func TestMoreGeneralThan_InconsistentBindingFails(t *testing.T) {
	pat := expr.Add(expr.Var("v0"), expr.Var("v0"))
	other := expr.Add(expr.Var("x"), expr.Var("y"))
	if MoreGeneralThan(pat, other, expr.Bindings{}) {
		t.Errorf("did not expect %s to match %s: v0 can't bind to both x and y", pat, other)
	}
}

func TestFilter_DropsSubsumedRule(t *testing.T) {
	general := Rule{LHS: expr.Min(expr.Var("v0"), expr.Var("v1")), RHS: expr.Var("v0")}
	specific := Rule{LHS: expr.Min(expr.Var("v0"), expr.Var("v0")), RHS: expr.Var("v0")}
	got := Filter([]Rule{general, specific})
	want := []Rule{general}
	if diff := cmp.Diff(fmtRules(got), fmtRules(want)); diff != "" {
		t.Fatalf("Filter mismatch (-got +want):\n%s", diff)
	}
}

func fmtRules(rs []Rule) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}
