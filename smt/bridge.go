package smt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"slava0135/rulesynth/expr"
)

// queryTimeout matches the "-T:600" solver time limit super_simplify.cpp
// passes on every invocation.
const queryTimeout = 600 * time.Second

// Bridge drives an external SMT solver as a subprocess, the way the
// synthesizer's "satisfy" queries do in the original: text in, text out, no
// persistent solver process or FFI binding.
type Bridge struct {
	SolverPath string
	TempDir    string
}

// NewBridge returns a Bridge invoking solverPath (e.g. "z3") with temp
// files under os.TempDir().
func NewBridge(solverPath string) *Bridge {
	return &Bridge{SolverPath: solverPath, TempDir: os.TempDir()}
}

// Satisfy asks whether e (a boolean formula) is satisfiable, and if so
// merges the witness assignment into bindings. It first tries
// expr.Simplify(e) to shortcut a literal true/false without invoking the
// solver at all, matching the distilled design's fast path.
func (b *Bridge) Satisfy(ctx context.Context, e expr.Expr, bindings expr.Bindings) (Result, error) {
	simplified := expr.Simplify(e)
	if lit, ok := simplified.(expr.IntImm); ok {
		if lit.Value != 0 {
			return Sat, nil
		}
		return Unsat, nil
	}
	if simplified.Type() != expr.Bool {
		return Unknown, fmt.Errorf("smt: Satisfy requires a boolean formula, got %s", simplified.Type())
	}

	query, err := BuildQuery(simplified)
	if err != nil {
		return Unknown, err
	}

	id := uuid.NewString()
	inPath := filepath.Join(b.TempDir, "rulesynth-"+id+".smt2")
	outPath := filepath.Join(b.TempDir, "rulesynth-"+id+".out")
	if err := os.WriteFile(inPath, []byte(query), 0o600); err != nil {
		return Unknown, fmt.Errorf("smt: writing query: %w", err)
	}
	defer os.Remove(inPath)
	defer os.Remove(outPath)

	runCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, b.SolverPath, "-T:600", inPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		return Unknown, nil
	}
	if runErr != nil && ParseResult(stdout.String()) != Unsat {
		return Unknown, fmt.Errorf("smt: solver invocation failed: %w (stderr: %s)", runErr, stderr.String())
	}

	if err := os.WriteFile(outPath, stdout.Bytes(), 0o600); err != nil {
		return Unknown, fmt.Errorf("smt: writing solver output: %w", err)
	}

	result := ParseResult(stdout.String())
	switch result {
	case Unsat:
		return Unsat, nil
	case Unknown:
		if line := strings.TrimSpace(firstLine(stdout.String())); line != "unknown" && line != "timeout" {
			return Unknown, fmt.Errorf("smt: unexpected solver output: %q", stdout.String())
		}
		return Unknown, nil
	case Sat:
		model, err := ParseModel(stdout.String())
		if err != nil {
			return Unknown, fmt.Errorf("smt: unexpected solver output: %w", err)
		}
		for k, v := range model {
			bindings[k] = v
		}
		return Sat, nil
	}
	return Unknown, fmt.Errorf("smt: unreachable result %v", result)
}
