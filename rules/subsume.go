package rules

import "slava0135/rulesynth/expr"

// MoreGeneralThan reports whether pattern a matches a superset of what
// pattern b matches: every binding a's wildcards would need to also match
// b is consistent (the same wildcard always binds to the same subterm).
// bindings accumulates the wildcard -> subterm substitution discovered
// along the way; pass an empty map for a fresh check.
//
// Unlike super_simplify.cpp's more_general_than, which only recurses
// through Min/Max/Add/Sub/Mul/Div/LE/LT/Select and conservatively returns
// false for anything else, this covers every Binary/Unary/Select kind the
// synthesizer can actually emit (see REDESIGN FLAGS in SPEC_FULL.md) — a
// generality checker that can't see half its own synthesizer's output
// isn't a reasonable default for a tool meant to ship rules, only a
// documented research shortcut.
func MoreGeneralThan(a, b expr.Expr, bindings expr.Bindings) bool {
	if v, ok := a.(expr.Variable); ok {
		if existing, bound := bindings[v.Name]; bound {
			return expr.Equal(existing, b)
		}
		bindings[v.Name] = b
		return true
	}

	if expr.KindOf(a) != expr.KindOf(b) {
		return false
	}

	switch x := a.(type) {
	case expr.IntImm:
		return x.Value == b.(expr.IntImm).Value
	case expr.UIntImm:
		return x.Value == b.(expr.UIntImm).Value
	case expr.FloatImm:
		return x.Value == b.(expr.FloatImm).Value
	case expr.StringImm:
		return x.Value == b.(expr.StringImm).Value
	case expr.Binary:
		y := b.(expr.Binary)
		return MoreGeneralThan(x.A, y.A, bindings) && MoreGeneralThan(x.B, y.B, bindings)
	case expr.Unary:
		y := b.(expr.Unary)
		return MoreGeneralThan(x.A, y.A, bindings)
	case expr.Select:
		y := b.(expr.Select)
		return MoreGeneralThan(x.Cond, y.Cond, bindings) &&
			MoreGeneralThan(x.Then, y.Then, bindings) &&
			MoreGeneralThan(x.Else, y.Else, bindings)
	default:
		// Let/Broadcast/Ramp never appear in a synthesized pattern.
		return false
	}
}

// Filter removes every rule whose LHS is matched by some other rule's more
// general LHS (with a different LHS — an exact duplicate LHS is not a
// reason to drop either rule), keeping the more general rule and discarding
// the redundant specific one.
func Filter(all []Rule) []Rule {
	var out []Rule
	for i, r := range all {
		subsumed := false
		for j, other := range all {
			if i == j {
				continue
			}
			if expr.Equal(r.LHS, other.LHS) {
				continue
			}
			if MoreGeneralThan(other.LHS, r.LHS, expr.Bindings{}) {
				// If the two patterns are mutually general (equivalent up
				// to wildcard renaming), keep whichever comes first in all
				// rather than letting both sides discard each other.
				if MoreGeneralThan(r.LHS, other.LHS, expr.Bindings{}) && i < j {
					continue
				}
				subsumed = true
				break
			}
		}
		if !subsumed {
			out = append(out, r)
		}
	}
	return out
}
