package expr

import "testing"

func TestSubstituteInAllLets_InlinesBinding(t *testing.T) {
	e := LetIn("t", Int32, Int(5), Add(Var("t"), Var("t")))
	got := SubstituteInAllLets(e)
	want := Add(Int(5), Int(5))
	if !Equal(got, want) {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestCSE_HoistsRepeatedSubexpr(t *testing.T) {
	shared := Add(Var("x"), Var("y"))
	e := Add(shared, shared)
	got := CSE(e)
	if _, ok := got.(Let); !ok {
		t.Errorf("expected CSE to introduce a Let, got %s", got)
	}
	back := SubstituteInAllLets(got)
	if !Equal(back, e) {
		t.Errorf("round trip mismatch: got %s; want %s", back, e)
	}
}

func TestSubstitute_ReplacesWildcard(t *testing.T) {
	pat := Add(Var("v0"), Int(1))
	got := Substitute(pat, map[string]Expr{"v0": Var("x")})
	want := Add(Var("x"), Int(1))
	if !Equal(got, want) {
		t.Errorf("got %s; want %s", got, want)
	}
}
