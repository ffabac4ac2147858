package rules

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"slava0135/rulesynth/expr"
)

// Sort orders rules by their LHS, using expr.Compare, the same
// IRDeepCompare-based order the original sorts by before emission. Rules
// with the same LHS root kind end up adjacent, which is what Emit's
// grouping relies on.
func Sort(rs []Rule) {
	sort.SliceStable(rs, func(i, j int) bool {
		return expr.Compare(rs[i].LHS, rs[j].LHS) < 0
	})
}

// Emit writes rs grouped by LHS root kind, one "rewrite(lhs, rhs) ||" line
// per rule, a blank line between groups, matching the original's grouped
// emission block.
func Emit(w io.Writer, rs []Rule) error {
	var lastKind expr.Kind
	first := true
	for _, r := range rs {
		k := expr.KindOf(r.LHS)
		if !first && k != lastKind {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "    rewrite(%s, %s) ||\n", r.LHS, r.RHS); err != nil {
			return err
		}
		lastKind = k
		first = false
	}
	return nil
}

// yamlRule is the dump-friendly shape for a Rule: expr.Expr values don't
// carry yaml tags themselves, so the debug dump flattens each rule to its
// string form, the same way Slava0135-gobber's toYaml helper dumps a
// Formula by its String() representation rather than its internal struct
// layout.
type yamlRule struct {
	LHS string `yaml:"lhs"`
	RHS string `yaml:"rhs"`
}

// DumpYAML renders rs as YAML for the -dump-yaml debug flag, grounded on
// graph/formula.go and symexec/formula.go's own toYaml(Formula) helper.
func DumpYAML(rs []Rule) (string, error) {
	out := make([]yamlRule, len(rs))
	for i, r := range rs {
		out[i] = yamlRule{LHS: r.LHS.String(), RHS: r.RHS.String()}
	}
	d, err := yaml.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(d), nil
}
