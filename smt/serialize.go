// Package smt bridges the expression IR to an external SMT solver: it
// serializes formulas to SMT-LIB2, drives the solver as a subprocess, and
// parses its textual model output. Grounded on super_simplify.cpp's
// expr_to_smt2 and satisfy, since neither Go example repo in the reference
// pack talks to a solver over text (both Slava0135-gobber and
// benbjohnson-glee bind libz3 via cgo).
package smt

import (
	"fmt"
	"strings"

	"slava0135/rulesynth/expr"
)

// ErrUnsupported marks a node kind the serializer refuses to encode.
type ErrUnsupported struct {
	Kind expr.Kind
}

func (e *ErrUnsupported) Error() string {
	return fmt.Sprintf("smt: cannot serialize node kind %s", e.Kind)
}

// Serialize renders e as an SMT-LIB2 term. Ramp has no synthesis semantics
// and is rejected outright, matching the fatal "unsupported IR kind"
// handling in the error table.
func Serialize(e expr.Expr) (string, error) {
	var b strings.Builder
	if err := serializeInto(&b, e); err != nil {
		return "", err
	}
	return b.String(), nil
}

func serializeInto(b *strings.Builder, e expr.Expr) error {
	switch n := e.(type) {
	case expr.IntImm:
		if n.Value < 0 {
			fmt.Fprintf(b, "(- %d)", -n.Value)
		} else {
			fmt.Fprintf(b, "%d", n.Value)
		}
	case expr.UIntImm:
		fmt.Fprintf(b, "%d", n.Value)
	case expr.FloatImm:
		fmt.Fprintf(b, "%g", n.Value)
	case expr.StringImm:
		fmt.Fprintf(b, "%q", n.Value)
	case expr.Variable:
		b.WriteString(n.Name)
	case expr.Binary:
		return serializeBinary(b, n)
	case expr.Unary:
		switch n.Op {
		case expr.KindNot:
			b.WriteString("(not ")
			if err := serializeInto(b, n.A); err != nil {
				return err
			}
			b.WriteString(")")
		default:
			return &ErrUnsupported{Kind: n.Op}
		}
	case expr.Select:
		b.WriteString("(ite ")
		if err := serializeInto(b, n.Cond); err != nil {
			return err
		}
		b.WriteString(" ")
		if err := serializeInto(b, n.Then); err != nil {
			return err
		}
		b.WriteString(" ")
		if err := serializeInto(b, n.Else); err != nil {
			return err
		}
		b.WriteString(")")
	case expr.Let:
		fmt.Fprintf(b, "(let ((%s ", n.Name)
		if err := serializeInto(b, n.Value); err != nil {
			return err
		}
		b.WriteString(")) ")
		if err := serializeInto(b, n.Body); err != nil {
			return err
		}
		b.WriteString(")")
	case expr.Broadcast:
		return serializeInto(b, n.Value)
	case expr.Ramp:
		return &ErrUnsupported{Kind: expr.KindRamp}
	default:
		return &ErrUnsupported{Kind: expr.KindOf(e)}
	}
	return nil
}

var binaryFunc = map[expr.Kind]string{
	expr.KindAdd: "+", expr.KindSub: "-", expr.KindMul: "*",
	expr.KindDiv: "div", expr.KindMod: "mod",
	expr.KindMin: "my_min", expr.KindMax: "my_max",
	expr.KindEQ: "=", expr.KindLT: "<", expr.KindLE: "<=",
	expr.KindGT: ">", expr.KindGE: ">=",
	expr.KindAnd: "and", expr.KindOr: "or",
}

func serializeBinary(b *strings.Builder, n expr.Binary) error {
	if n.Op == expr.KindNE {
		b.WriteString("(not (= ")
		if err := serializeInto(b, n.A); err != nil {
			return err
		}
		b.WriteString(" ")
		if err := serializeInto(b, n.B); err != nil {
			return err
		}
		b.WriteString("))")
		return nil
	}
	fn, ok := binaryFunc[n.Op]
	if !ok {
		return &ErrUnsupported{Kind: n.Op}
	}
	fmt.Fprintf(b, "(%s ", fn)
	if err := serializeInto(b, n.A); err != nil {
		return err
	}
	b.WriteString(" ")
	if err := serializeInto(b, n.B); err != nil {
		return err
	}
	b.WriteString(")")
	return nil
}

// preamble declares the my_min/my_max helper functions every query needs,
// matching the fixed preamble super_simplify.cpp writes before every query.
const preamble = `(define-fun my_min ((a Int) (b Int)) Int (ite (< a b) a b))
(define-fun my_max ((a Int) (b Int)) Int (ite (> a b) a b))
`

// BuildQuery assembles a full SMT-LIB2 script: variable declarations for
// every free variable in e, the my_min/my_max preamble, the assertion of e,
// and a check-sat/get-model pair.
func BuildQuery(e expr.Expr) (string, error) {
	body, err := Serialize(e)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, v := range expr.FreeVars(e) {
		fmt.Fprintf(&b, "(declare-const %s Int)\n", v.Name)
	}
	b.WriteString(preamble)
	fmt.Fprintf(&b, "(assert %s)\n", body)
	b.WriteString("(check-sat)\n(get-model)\n")
	return b.String(), nil
}
