package expr

import (
	"fmt"
	"sort"
)

// CSE rewrites e so that every subexpression appearing more than once is
// bound once via a Let and referenced thereafter by name, the same
// "simplify, then CSE" staging Slava0135-gobber's symexec package uses
// before handing a formula to the solver. Leaves (Variable, immediates) are
// never hoisted since naming them buys nothing.
func CSE(e Expr) Expr {
	counts := map[string]int{}
	byKey := map[string]Expr{}
	var count func(Expr)
	count = func(e Expr) {
		for _, c := range Children(e) {
			count(c)
		}
		if isLeaf(e) {
			return
		}
		k := e.String()
		counts[k]++
		byKey[k] = e
	}
	count(e)

	named := map[string]string{}
	var n int
	nameFor := func(key string) string {
		if nm, ok := named[key]; ok {
			return nm
		}
		nm := fmt.Sprintf("cse%d", n)
		n++
		named[key] = nm
		return nm
	}

	var order []string
	seenOrder := map[string]bool{}
	var rewrite func(Expr) Expr
	rewrite = func(e Expr) Expr {
		if !isLeaf(e) {
			k := e.String()
			if counts[k] > 1 {
				nm := nameFor(k)
				if !seenOrder[k] {
					seenOrder[k] = true
					order = append(order, k)
				}
				return Variable{Name: nm, Typ: e.Type()}
			}
		}
		children := Children(e)
		if len(children) == 0 {
			return e
		}
		rewritten := make([]Expr, len(children))
		changed := false
		for i, c := range children {
			rewritten[i] = rewrite(c)
			if !Equal(rewritten[i], c) {
				changed = true
			}
		}
		if !changed {
			return e
		}
		return WithChildren(e, rewritten)
	}

	body := rewrite(e)
	// Rewriting a hoisted value's children can name further repeats, so
	// order may grow while this loop runs.
	for i := 0; i < len(order); i++ {
		value := byKey[order[i]]
		children := Children(value)
		rewritten := make([]Expr, len(children))
		for j, c := range children {
			rewritten[j] = rewrite(c)
		}
		byKey[order[i]] = WithChildren(value, rewritten)
	}
	// A hoisted value only refers to strictly shorter keys, so binding the
	// shortest keys outermost keeps every reference in scope.
	sort.SliceStable(order, func(i, j int) bool { return len(order[i]) < len(order[j]) })
	for i := len(order) - 1; i >= 0; i-- {
		key := order[i]
		nm := named[key]
		value := byKey[key]
		body = Let{Name: nm, Typ: value.Type(), Value: value, Body: body}
	}
	return body
}

func isLeaf(e Expr) bool {
	switch e.(type) {
	case IntImm, UIntImm, FloatImm, StringImm, Variable:
		return true
	default:
		return false
	}
}

// SubstituteInAllLets inlines every Let binding into its body and returns
// the resulting Let-free expression, undoing CSE once the solver no longer
// needs the sharing (e.g. before re-simplifying a synthesized candidate).
func SubstituteInAllLets(e Expr) Expr {
	switch n := e.(type) {
	case Let:
		value := SubstituteInAllLets(n.Value)
		body := SubstituteInAllLets(n.Body)
		return substituteVar(body, n.Name, value)
	default:
		children := Children(e)
		if len(children) == 0 {
			return e
		}
		rewritten := make([]Expr, len(children))
		for i, c := range children {
			rewritten[i] = SubstituteInAllLets(c)
		}
		return WithChildren(e, rewritten)
	}
}

func substituteVar(e Expr, name string, value Expr) Expr {
	switch n := e.(type) {
	case Variable:
		if n.Name == name {
			return value
		}
		return n
	case Let:
		newValue := substituteVar(n.Value, name, value)
		if n.Name == name {
			return Let{Name: n.Name, Typ: n.Typ, Value: newValue, Body: n.Body}
		}
		return Let{Name: n.Name, Typ: n.Typ, Value: newValue, Body: substituteVar(n.Body, name, value)}
	default:
		children := Children(e)
		if len(children) == 0 {
			return e
		}
		rewritten := make([]Expr, len(children))
		for i, c := range children {
			rewritten[i] = substituteVar(c, name, value)
		}
		return WithChildren(e, rewritten)
	}
}

// Substitute replaces every free occurrence of a wildcard/variable in e per
// bindings, used by rules.MoreGeneralThan to check whether a substitution
// makes two patterns syntactically equal.
func Substitute(e Expr, bindings map[string]Expr) Expr {
	switch n := e.(type) {
	case Variable:
		if v, ok := bindings[n.Name]; ok {
			return v
		}
		return n
	case Let:
		value := Substitute(n.Value, bindings)
		inner := bindings
		if _, shadowed := bindings[n.Name]; shadowed {
			inner = map[string]Expr{}
			for k, v := range bindings {
				if k != n.Name {
					inner[k] = v
				}
			}
		}
		return Let{Name: n.Name, Typ: n.Typ, Value: value, Body: Substitute(n.Body, inner)}
	default:
		children := Children(e)
		if len(children) == 0 {
			return e
		}
		rewritten := make([]Expr, len(children))
		for i, c := range children {
			rewritten[i] = Substitute(c, bindings)
		}
		return WithChildren(e, rewritten)
	}
}
