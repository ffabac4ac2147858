package smt

import "testing"

func TestParseResult_Sat(t *testing.T) {
	if ParseResult("sat\n(model ...)") != Sat {
		t.Error("expected Sat")
	}
}

func TestParseResult_Unsat(t *testing.T) {
	if ParseResult("unsat\n") != Unsat {
		t.Error("expected Unsat")
	}
}

func TestParseResult_TimeoutIsUnknown(t *testing.T) {
	if ParseResult("timeout\n") != Unknown {
		t.Error("expected Unknown for timeout")
	}
}

func TestParseModel_BareIntLiteral(t *testing.T) {
	out := "sat\n(model\n  (define-fun x () Int 5)\n)\n"
	b, err := ParseModel(out)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	v, ok := b["x"]
	if !ok {
		t.Fatal("expected binding for x")
	}
	if v.String() != "5" {
		t.Errorf("got %s; want 5", v)
	}
}

func TestParseModel_NegativeLiteral(t *testing.T) {
	out := "sat\n(model\n  (define-fun x () Int (- 7))\n)\n"
	b, err := ParseModel(out)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if b["x"].String() != "-7" {
		t.Errorf("got %s; want -7", b["x"])
	}
}

func TestParseModel_SkipsZ3NamePrefixedSkolems(t *testing.T) {
	out := "sat\n(model\n  (define-fun x () Int 1)\n  (define-fun z3name!0 () Int 2)\n)\n"
	b, err := ParseModel(out)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, ok := b["z3name!0"]; ok {
		t.Error("did not expect a binding for a z3name!-prefixed skolem")
	}
	if _, ok := b["x"]; !ok {
		t.Error("expected a binding for x")
	}
}
