package dag

import (
	"fmt"

	"github.com/benbjohnson/immutable"

	"slava0135/rulesynth/expr"
)

const (
	maxWildcards = 6
	minInterior  = 2
)

// patternComparer orders patterns by expr.Compare, giving the final result
// set the same deterministic, dedup-by-comparator behavior as the original
// std::set<Expr, IRDeepCompare>.
type patternComparer struct{}

func (*patternComparer) Compare(a, b interface{}) int {
	return expr.Compare(a.(expr.Expr), b.(expr.Expr))
}

// Extract enumerates every candidate rewrite-rule LHS pattern derivable
// from root: for each interior subexpression (by id, in the DAG built from
// root) taken as a seed, it walks every connected subgraph grown downward
// from that seed, abstracting excluded interior int32 nodes into fresh
// wildcards v0, v1, .... Patterns with fewer than two kept interior nodes
// or more than six distinct wildcards are dropped. Grounded on
// super_simplify.cpp's all_possible_lhs_patterns.
func Extract(root expr.Expr) []expr.Expr {
	d := Build(root)
	seen := immutable.NewSortedMap(&patternComparer{})

	for seed := 0; seed < len(d.ExprForID); seed++ {
		if !d.IsInterior(seed) {
			continue
		}
		generateSubgraphs(d, seed, map[int]struct{}{}, map[int]struct{}{}, map[int]struct{}{seed: {}}, seen)
	}

	var out []expr.Expr
	it := seen.Iterator()
	for !it.Done() {
		k, _ := it.Next()
		out = append(out, k.(expr.Expr))
	}
	return out
}

func cloneSet(s map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func generateSubgraphs(d *DAG, seed int, rejected, current, frontier map[int]struct{}, seen *immutable.SortedMap) {
	if len(frontier) == 0 {
		if len(current) > 0 {
			pat, numWildcards := materialize(d, seed, current)
			if len(current) > minInterior-1 && numWildcards <= maxWildcards {
				// SortedMap is persistent: Set returns the updated map.
				*seen = *seen.Set(pat, struct{}{})
			}
		}
		return
	}

	v := minKey(frontier)

	f := cloneSet(frontier)
	delete(f, v)

	if d.ExprForID[v].Type() == expr.Int32 {
		r := cloneSet(rejected)
		r[v] = struct{}{}
		generateSubgraphs(d, seed, r, current, f, seen)
	}

	c := cloneSet(current)
	c[v] = struct{}{}
	f2 := cloneSet(f)
	for n := range d.Children[v] {
		_, inRejected := rejected[n]
		_, inCurrent := current[n]
		if !inRejected && !inCurrent && d.IsInterior(n) {
			f2[n] = struct{}{}
		}
	}
	generateSubgraphs(d, seed, rejected, c, f2, seen)
}

func minKey(s map[int]struct{}) int {
	first := true
	var min int
	for k := range s {
		if first || k < min {
			min = k
			first = false
		}
	}
	return min
}

// materialize rebuilds the subexpression rooted at seed, replacing every
// child node not in current with a fresh wildcard variable. Two excluded
// occurrences of the same DAG node id always get the same wildcard name,
// since the DAG already merges structurally identical subexpressions.
func materialize(d *DAG, seed int, current map[int]struct{}) (expr.Expr, int) {
	renumber := map[int]string{}
	var build func(id int) expr.Expr
	build = func(id int) expr.Expr {
		if _, ok := current[id]; !ok {
			name, ok := renumber[id]
			if !ok {
				name = fmt.Sprintf("v%d", len(renumber))
				renumber[id] = name
			}
			return expr.Variable{Name: name, Typ: d.ExprForID[id].Type()}
		}
		e := d.ExprForID[id]
		children := expr.Children(e)
		if len(children) == 0 {
			return e
		}
		newChildren := make([]expr.Expr, len(children))
		for i, c := range children {
			cid := d.IDForExpr[c.String()]
			newChildren[i] = build(cid)
		}
		return expr.WithChildren(e, newChildren)
	}
	pat := build(seed)
	return pat, len(renumber)
}
