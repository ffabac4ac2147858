package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"

	"slava0135/rulesynth/corpus"
	"slava0135/rulesynth/dag"
	"slava0135/rulesynth/expr"
	"slava0135/rulesynth/pool"
	"slava0135/rulesynth/rules"
	"slava0135/rulesynth/smt"
	"slava0135/rulesynth/synth"
)

var (
	solverPath  string
	concurrency int
	dumpYAMLTo  string
)

func init() {
	flag.StringVar(&solverPath, "solver", "z3", "SMT solver binary to invoke")
	flag.IntVar(&concurrency, "j", runtime.NumCPU(), "max concurrent solver subprocesses")
	flag.StringVar(&dumpYAMLTo, "dump-yaml", "", "if set, also write the filtered rule set as YAML to this path")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	bridge := smt.NewBridge(solverPath)
	ctx := context.Background()

	patternsByLeaves := map[int][]expr.Expr{}
	seenPatterns := map[string]bool{}

	handled := 0
	for _, e := range corpus.Expressions {
		simplified := expr.Simplify(e)
		if lit, ok := simplified.(expr.IntImm); ok && lit.Value != 0 {
			fmt.Printf("EXPR: %s (already handled by simplifier)\n", e)
			handled++
			continue
		}

		extracted := dag.Extract(e)
		fmt.Printf("EXPR: %s (%d candidate patterns)\n", e, len(extracted))
		for _, p := range extracted {
			key := p.String()
			if seenPatterns[key] {
				continue
			}
			seenPatterns[key] = true

			leaves, hasDivision, repeatedVar := rules.CountLeaves(p)
			if hasDivision || !repeatedVar {
				continue
			}
			fmt.Printf("PATTERN: %s\n", p)
			patternsByLeaves[leaves] = append(patternsByLeaves[leaves], p)
		}
	}
	fmt.Printf("%d/%d expressions already handled by the simplifier\n", handled, len(corpus.Expressions))

	var mu sync.Mutex
	var synthesized []rules.Rule

	for leaves, patterns := range patternsByLeaves {
		size := leaves - 2
		if size < 1 {
			continue
		}
		p := pool.New(ctx, concurrency)
		for _, pat := range patterns {
			pat := pat
			p.Go(func(ctx context.Context) error {
				rhs, ok, err := synth.SuperSimplify(ctx, bridge, pat, size)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				mu.Lock()
				synthesized = append(synthesized, rules.Rule{LHS: pat, RHS: rhs})
				fmt.Printf("RULE: rewrite(%s, %s)\n", pat, rhs)
				mu.Unlock()
				return nil
			})
		}
		if err := p.Wait(); err != nil {
			return err
		}
	}

	filtered := rules.Filter(synthesized)
	rules.Sort(filtered)

	if err := rules.Emit(os.Stdout, filtered); err != nil {
		return err
	}

	if dumpYAMLTo != "" {
		y, err := rules.DumpYAML(filtered)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dumpYAMLTo, []byte(y), 0o644); err != nil {
			return err
		}
	}

	return nil
}
