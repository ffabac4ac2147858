// Package rules defines the synthesized rewrite rule type along with leaf
// counting, subsumption filtering, and textual emission. Grounded on
// super_simplify.cpp's CountLeaves, more_general_than, and main()'s final
// sort/group/emit block.
package rules

import (
	"fmt"

	"slava0135/rulesynth/expr"
)

// Rule is a synthesized (pattern, replacement) pair: LHS still contains its
// v0..v29 wildcards, RHS is built only from LHS's wildcards and/or fresh
// synthesized constants.
type Rule struct {
	LHS, RHS expr.Expr
}

func (r Rule) String() string {
	return fmt.Sprintf("rewrite(%s, %s)", r.LHS, r.RHS)
}

// CountLeaves walks e and reports its leaf count, whether it contains a
// division (such patterns are never eligible for synthesis, since the
// distilled spec excludes RHS division but LHS division still disqualifies
// an extracted pattern from the eligibility filter; Mod is not division and
// does not disqualify, matching CountLeaves::visit(Div*) in the original,
// which does not override Mod), and whether any wildcard variable appears
// more than once (repeated variables make a pattern strictly more specific,
// which the orchestrator's eligibility filter also needs).
func CountLeaves(e expr.Expr) (count int, hasDivision bool, repeatedVar bool) {
	seen := map[string]bool{}
	var walk func(expr.Expr)
	walk = func(e expr.Expr) {
		switch n := e.(type) {
		case expr.Variable:
			count++
			if seen[n.Name] {
				repeatedVar = true
			}
			seen[n.Name] = true
		case expr.IntImm, expr.UIntImm, expr.FloatImm, expr.StringImm:
			count++
		case expr.Binary:
			if n.Op == expr.KindDiv {
				hasDivision = true
			}
			walk(n.A)
			walk(n.B)
		default:
			for _, c := range expr.Children(e) {
				walk(c)
			}
		}
	}
	walk(e)
	return
}
