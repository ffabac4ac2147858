// Package corpus is the compiled-in set of boolean identities the
// synthesizer mines for rewrite rules: each entry is an equality that
// already holds for all variable values. Some entries expr.Simplify already
// reduces to a literal true (these are counted as handled and skipped); the
// rest it does not, and those are mined for patterns. Grounded on the #include'd
// exprs*.h literal tables super_simplify.cpp's main() iterates over.
package corpus

import "slava0135/rulesynth/expr"

var (
	x = expr.Var("x")
	y = expr.Var("y")
	z = expr.Var("z")
)

// Expressions is the fixed input corpus. Each entry covers one of the
// spec's worked end-to-end scenarios, plus broader binary/ternary operator
// coverage so the extractor and subsumption filter both see a realistic
// mix of shapes.
var Expressions = []expr.Expr{
	// min(x, x) == x
	expr.EQ(expr.Min(x, x), x),

	// max(x, x) == x
	expr.EQ(expr.Max(x, x), x),

	// x + 0 == x
	expr.EQ(expr.Add(x, expr.Int(0)), x),

	// x - x == 0
	expr.EQ(expr.Sub(x, x), expr.Int(0)),

	// x * 1 == x
	expr.EQ(expr.Mul(x, expr.Int(1)), x),

	// select(x < y, x, y) == min(x, y)
	expr.EQ(expr.IfThenElse(expr.LT(x, y), x, y), expr.Min(x, y)),

	// select(x < y, y, x) == max(x, y)
	expr.EQ(expr.IfThenElse(expr.LT(x, y), y, x), expr.Max(x, y)),

	// max(min(x, y), min(x, z)) == min(x, max(y, z))
	expr.EQ(expr.Max(expr.Min(x, y), expr.Min(x, z)), expr.Min(x, expr.Max(y, z))),

	// min(min(x, y), z) == min(x, min(y, z))
	expr.EQ(expr.Min(expr.Min(x, y), z), expr.Min(x, expr.Min(y, z))),

	// (x < y) == !(y <= x)
	expr.EQ(boolToInt(expr.LT(x, y)), boolToInt(expr.Not(expr.LE(y, x)))),

	// min(x, x + 1) == x
	expr.EQ(expr.Min(x, expr.Add(x, expr.Int(1))), x),
}

func boolToInt(cond expr.Expr) expr.Expr {
	return expr.IfThenElse(cond, expr.Int(1), expr.Int(0))
}
