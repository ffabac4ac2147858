// Package dag builds a shared-subexpression DAG view over an expr.Expr and
// enumerates the connected subgraphs that become candidate rewrite-rule
// patterns. Grounded on super_simplify.cpp's DAGConverter and
// generate_subgraphs.
package dag

import "slava0135/rulesynth/expr"

// DAG is an arena-by-index view of an expression: every distinct
// subexpression (by structural equality) gets one id, id 0 is the root,
// and Children/Parents record the edges between ids. Scoped to a single
// call to Build; never mutated after construction.
type DAG struct {
	IDForExpr map[string]int
	ExprForID []expr.Expr
	Children  []map[int]struct{}
	Parents   []map[int]struct{}
}

// Build constructs the DAG for root via a pre-order walk: the first
// subexpression encountered (root itself) gets id 0, and every
// structurally distinct subexpression seen thereafter gets the next id in
// first-occurrence order. Structurally identical subexpressions, wherever
// they occur, share one id.
func Build(root expr.Expr) *DAG {
	d := &DAG{IDForExpr: map[string]int{}}
	var visit func(e expr.Expr, parent int) int
	visit = func(e expr.Expr, parent int) int {
		key := e.String()
		id, seen := d.IDForExpr[key]
		if !seen {
			id = len(d.ExprForID)
			d.IDForExpr[key] = id
			d.ExprForID = append(d.ExprForID, e)
			d.Children = append(d.Children, map[int]struct{}{})
			d.Parents = append(d.Parents, map[int]struct{}{})
			for _, c := range expr.Children(e) {
				cid := visit(c, id)
				d.Children[id][cid] = struct{}{}
			}
		}
		if parent >= 0 {
			d.Parents[id][parent] = struct{}{}
		}
		return id
	}
	visit(root, -1)
	return d
}

// IsInterior reports whether node id has at least one child, i.e. it is a
// candidate pattern root or a candidate member of a pattern's kept set.
func (d *DAG) IsInterior(id int) bool {
	return len(d.Children[id]) > 0
}
