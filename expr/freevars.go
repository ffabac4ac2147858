package expr

// Bindings maps wildcard/variable names to the expression substituted for
// them, used both for SMT model witnesses and for rule subsumption.
type Bindings map[string]Expr

// FreeVars collects the distinct variables referenced in e that are not
// bound by an enclosing Let, in first-occurrence order. Grounded on
// super_simplify.cpp's FindVars, which keeps a Scope<> of let-bound names
// while visiting and skips anything currently in scope.
func FreeVars(e Expr) []Variable {
	var out []Variable
	seen := map[string]bool{}
	bound := map[string]bool{}
	var walk func(Expr)
	walk = func(e Expr) {
		switch n := e.(type) {
		case Variable:
			if bound[n.Name] {
				return
			}
			if !seen[n.Name] {
				seen[n.Name] = true
				out = append(out, n)
			}
		case Let:
			walk(n.Value)
			wasBound := bound[n.Name]
			bound[n.Name] = true
			walk(n.Body)
			bound[n.Name] = wasBound
		default:
			for _, c := range Children(e) {
				walk(c)
			}
		}
	}
	walk(e)
	return out
}

// CountDistinctVars returns the number of distinct free variables in e,
// which for an extracted pattern is its number of distinct wildcards.
func CountDistinctVars(e Expr) int {
	return len(FreeVars(e))
}
