package expr

// Equal reports whether a and b are structurally identical, the way
// Halide's IRDeepCompare reports equality (Compare(a,b)==0). Used by
// Simplify, CSE, and rule subsumption.
func Equal(a, b Expr) bool {
	return Compare(a, b) == 0
}
