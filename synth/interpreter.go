// Package synth implements the symbolic program interpreter and the
// counterexample-guided synthesis loop that searches, for a given LHS
// pattern, for a smallest semantically equivalent RHS expression. Grounded
// on super_simplify.cpp's interpreter_expr and super_simplify.
package synth

import "slava0135/rulesynth/expr"

// Opcode values dispatched by chainedOpSelect, matching interpreter_expr's
// own select(op == N, ...) chain exactly, including its gap at 3 (division
// is deliberately never emitted) and its open-ended "anything >= 10 is a
// literal constant op-10" tail.
const (
	opAdd = 0
	opSub = 1
	opMul = 2
	opLT  = 4
	opLE  = 5
	opEQ  = 6
	opNE  = 7
	opMin = 8
	opMax = 9
)

// InterpreterExpr builds a single symbolic expression parameterized by
// opcodes: opcodes is a flat list of (op, argIdx1, argIdx2) triples, one per
// instruction. Each instruction selects its two operands from the leaves
// plus the results of prior instructions via a chained Select tree, then
// dispatches on op per chainedOpSelect, and appends its result as a new
// term. The final returned expression is the last appended term (or the
// last leaf if there are no instructions). Exactly interpreter_expr's own
// shape, term for term.
func InterpreterExpr(leaves []expr.Expr, opcodes []expr.Expr) expr.Expr {
	terms := append([]expr.Expr{}, leaves...)
	for i := 0; i+2 < len(opcodes); i += 3 {
		op := opcodes[i]
		arg1Idx := opcodes[i+1]
		arg2Idx := opcodes[i+2]

		arg1 := selectFrom(terms, arg1Idx)
		arg2 := selectFrom(terms, arg2Idx)

		terms = append(terms, chainedOpSelect(op, arg1, arg2))
	}
	if len(terms) == 0 {
		return expr.Int(0)
	}
	return terms[len(terms)-1]
}

// selectFrom builds the chained select tree interpreter_expr uses to pick
// an operand by symbolic index: terms[j] if idx == j, checked in order,
// defaulting to 0 if idx matches no term.
func selectFrom(terms []expr.Expr, idx expr.Expr) expr.Expr {
	result := expr.Expr(expr.Int(0))
	for j, t := range terms {
		cond := expr.EQ(idx, expr.Int(int64(j)))
		result = expr.IfThenElse(cond, t, result)
	}
	return result
}

// chainedOpSelect dispatches on op exactly as interpreter_expr's own chain
// of select(op == N, ..., result) calls: by default the result is the op
// value itself (a degenerate literal, never produced for op in the
// synthesizer's intended domain but not special-cased away either, matching
// the original's own "by default it's just the integer constant" comment),
// overridden for add/sub/mul, the six comparisons (as a boolean-to-integer
// lift), min/max, and finally for any op >= 10 as the literal constant
// op - 10. op == 3 is deliberately never matched: division is excluded.
func chainedOpSelect(op, arg1, arg2 expr.Expr) expr.Expr {
	result := op
	result = expr.IfThenElse(expr.EQ(op, expr.Int(opAdd)), expr.Add(arg1, arg2), result)
	result = expr.IfThenElse(expr.EQ(op, expr.Int(opSub)), expr.Sub(arg1, arg2), result)
	result = expr.IfThenElse(expr.EQ(op, expr.Int(opMul)), expr.Mul(arg1, arg2), result)
	result = expr.IfThenElse(expr.EQ(op, expr.Int(opLT)), boolToInt(expr.LT(arg1, arg2)), result)
	result = expr.IfThenElse(expr.EQ(op, expr.Int(opLE)), boolToInt(expr.LE(arg1, arg2)), result)
	result = expr.IfThenElse(expr.EQ(op, expr.Int(opEQ)), boolToInt(expr.EQ(arg1, arg2)), result)
	result = expr.IfThenElse(expr.EQ(op, expr.Int(opNE)), boolToInt(expr.NE(arg1, arg2)), result)
	result = expr.IfThenElse(expr.EQ(op, expr.Int(opMin)), expr.Min(arg1, arg2), result)
	result = expr.IfThenElse(expr.EQ(op, expr.Int(opMax)), expr.Max(arg1, arg2), result)
	result = expr.IfThenElse(expr.GE(op, expr.Int(10)), expr.Sub(op, expr.Int(10)), result)
	return result
}

func boolToInt(cond expr.Expr) expr.Expr {
	return expr.IfThenElse(cond, expr.Int(1), expr.Int(0))
}
