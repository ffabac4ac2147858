package synth

import (
	"context"
	"fmt"

	"slava0135/rulesynth/expr"
	"slava0135/rulesynth/smt"
)

// SuperSimplify searches for an expression of the given size (number of
// interpreter program instructions) that is provably equal to e for every
// valuation of e's free variables, via CEGIS: alternating a falsification
// query (find a variable assignment where the current candidate disagrees
// with e) and a synthesis query (find opcodes consistent with all
// counterexamples seen so far), seeded from the trivial all-zero-opcode
// candidate, exactly the loop in super_simplify.cpp's super_simplify. Two
// callers disagree about what "size" means here — SuperSimplify2's 1/2
// sweep and the orchestrator's leaves-2 budget are both kept verbatim
// rather than reconciled, since unifying them would silently change which
// rules each one finds.
func SuperSimplify(ctx context.Context, bridge *smt.Bridge, e expr.Expr, size int) (expr.Expr, bool, error) {
	// Synthesis runs over integers: a boolean e is lifted to select(e, 1, 0)
	// and the result is projected back with == 1.
	isBool := e.Type() == expr.Bool
	if isBool {
		e = expr.IfThenElse(e, expr.Int(1), expr.Int(0))
	}
	freeVars := expr.FreeVars(e)
	leaves := make([]expr.Expr, 0, len(freeVars))
	for _, v := range freeVars {
		leaves = append(leaves, v)
	}

	opcodeNames := make([]string, 0, size*3)
	opcodeVars := make([]expr.Expr, 0, size*3)
	for i := 0; i < size; i++ {
		for _, suffix := range []string{"op", "a", "b"} {
			name := fmt.Sprintf("synth_%s%d", suffix, i)
			opcodeNames = append(opcodeNames, name)
			opcodeVars = append(opcodeVars, expr.Var(name))
		}
	}

	program := InterpreterExpr(leaves, opcodeVars)
	programWorks := expr.EQ(e, program)

	currentOpcodes := expr.Bindings{}
	for _, name := range opcodeNames {
		currentOpcodes[name] = expr.Int(0)
	}

	var examples []expr.Bindings
	for {
		currentProgramWorks := expr.Substitute(programWorks, currentOpcodes)
		disagreement := expr.Not(currentProgramWorks)

		cexBindings := expr.Bindings{}
		for _, v := range freeVars {
			cexBindings[v.Name] = expr.Int(0)
		}
		result, err := bridge.Satisfy(ctx, disagreement, cexBindings)
		if err != nil {
			return nil, false, err
		}
		switch result {
		case smt.Unsat:
			result := expr.Substitute(program, currentOpcodes)
			result = expr.CSE(result)
			result = expr.SubstituteInAllLets(result)
			result = expr.Simplify(result)
			if isBool {
				result = expr.Simplify(expr.EQ(result, expr.Int(1)))
			}
			return result, true, nil
		case smt.Unknown:
			return nil, false, nil
		case smt.Sat:
			example := expr.Bindings{}
			for _, v := range freeVars {
				if val, ok := cexBindings[v.Name]; ok {
					example[v.Name] = val
				} else {
					example[v.Name] = expr.Int(0)
				}
			}
			examples = append(examples, example)
		}

		worksOnCounterexamples, err := conjunctExamples(programWorks, examples)
		if err != nil {
			return nil, false, err
		}
		synthBindings := expr.Bindings{}
		result, err = bridge.Satisfy(ctx, worksOnCounterexamples, synthBindings)
		if err != nil {
			return nil, false, err
		}
		if result != smt.Sat {
			return nil, false, nil
		}

		next := expr.Bindings{}
		for _, name := range opcodeNames {
			if v, ok := synthBindings[name]; ok {
				next[name] = v
			} else {
				next[name] = expr.Int(0)
			}
		}
		currentOpcodes = next
	}
}

// SuperSimplify2 tries sizes 1 then 2, returning the first success. The
// two-argument entry point in the original tries only these two sizes; the
// orchestrator instead computes size from a pattern's own leaf count minus
// two, and the discrepancy is intentional (see SuperSimplify's doc comment).
func SuperSimplify2(ctx context.Context, bridge *smt.Bridge, e expr.Expr) (expr.Expr, bool, error) {
	for size := 1; size < 3; size++ {
		r, ok, err := SuperSimplify(ctx, bridge, e, size)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return r, true, nil
		}
	}
	return nil, false, nil
}

// conjunctExamples builds works_on_counterexamples: programWorks (e ==
// program, with opcode vars still free) with each accumulated
// counterexample's free-variable bindings substituted in turn, conjoined.
// Always called with at least one example, since falsification runs before
// the first synthesis query and only reaches it by finding a counterexample.
func conjunctExamples(programWorks expr.Expr, examples []expr.Bindings) (expr.Expr, error) {
	var goal expr.Expr
	for _, ex := range examples {
		clause := expr.Substitute(programWorks, ex)
		if goal == nil {
			goal = clause
		} else {
			goal = expr.And(goal, clause)
		}
	}
	return goal, nil
}
