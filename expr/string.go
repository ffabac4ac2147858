package expr

import (
	"fmt"
	"strings"
)

var binarySymbol = map[Kind]string{
	KindAdd: "+", KindSub: "-", KindMul: "*", KindDiv: "/", KindMod: "%",
	KindEQ: "==", KindNE: "!=", KindLT: "<", KindLE: "<=", KindGT: ">", KindGE: ">=",
	KindAnd: "&&", KindOr: "||",
}

func (n IntImm) String() string    { return fmt.Sprintf("%d", n.Value) }
func (n UIntImm) String() string   { return fmt.Sprintf("%du", n.Value) }
func (n FloatImm) String() string  { return fmt.Sprintf("%g", n.Value) }
func (n StringImm) String() string { return fmt.Sprintf("%q", n.Value) }
func (v Variable) String() string  { return v.Name }

func (b Binary) String() string {
	if b.Op == KindMin || b.Op == KindMax {
		name := "min"
		if b.Op == KindMax {
			name = "max"
		}
		return fmt.Sprintf("%s(%s, %s)", name, b.A, b.B)
	}
	sym, ok := binarySymbol[b.Op]
	if !ok {
		panic(fmt.Sprintf("unknown binary operator '%s'", b.Op))
	}
	return fmt.Sprintf("(%s %s %s)", b.A, sym, b.B)
}

func (u Unary) String() string {
	switch u.Op {
	case KindNot:
		return fmt.Sprintf("!%s", u.A)
	default:
		panic(fmt.Sprintf("unknown unary operator '%s'", u.Op))
	}
}

func (s Select) String() string {
	return fmt.Sprintf("select(%s, %s, %s)", s.Cond, s.Then, s.Else)
}

func (l Let) String() string {
	return fmt.Sprintf("(let %s = %s in %s)", l.Name, l.Value, l.Body)
}

func (b Broadcast) String() string {
	return fmt.Sprintf("broadcast(%s, %d)", b.Value, b.Lanes)
}

func (r Ramp) String() string {
	return fmt.Sprintf("ramp(%s, %s, %d)", r.Base, r.Stride, r.Lanes)
}

// exprList joins the string forms of es with ", ".
func exprList(es []Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
