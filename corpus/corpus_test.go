package corpus

import (
	"testing"

	"slava0135/rulesynth/expr"
)

func TestExpressions_AreAllBoolean(t *testing.T) {
	for _, e := range Expressions {
		if e.Type() != expr.Bool {
			t.Errorf("expected corpus entry %s to be boolean, got %s", e, e.Type())
		}
	}
}

func TestExpressions_NonEmpty(t *testing.T) {
	if len(Expressions) == 0 {
		t.Fatal("expected a non-empty corpus")
	}
}
