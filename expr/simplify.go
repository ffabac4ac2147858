package expr

// Simplify applies a bottom-up pass of constant folding and a handful of
// algebraic identities. It is deliberately not a full simplifier: its job
// is only to (a) let the SMT bridge recognize an already-trivial formula
// (literal true/false) without a solver round trip, and (b) let the CEGIS
// boolean-to-integer lift (select(e,1,0) == 1) collapse back down after
// substitution, matching the "simplify, then CSE" layering in
// Slava0135-gobber's symexec package.
func Simplify(e Expr) Expr {
	switch n := e.(type) {
	case Binary:
		a := Simplify(n.A)
		b := Simplify(n.B)
		return simplifyBinary(n.Op, a, b)
	case Unary:
		a := Simplify(n.A)
		if n.Op == KindNot {
			if lit, ok := a.(IntImm); ok {
				return boolLit(lit.Value == 0)
			}
			if inner, ok := a.(Unary); ok && inner.Op == KindNot {
				return inner.A
			}
		}
		return Unary{Op: n.Op, A: a}
	case Select:
		cond := Simplify(n.Cond)
		then := Simplify(n.Then)
		els := Simplify(n.Else)
		if lit, ok := cond.(IntImm); ok {
			if lit.Value != 0 {
				return then
			}
			return els
		}
		if Equal(then, els) {
			return then
		}
		return Select{Cond: cond, Then: then, Else: els}
	case Let:
		value := Simplify(n.Value)
		body := Simplify(n.Body)
		return Let{Name: n.Name, Typ: n.Typ, Value: value, Body: body}
	case Broadcast:
		return Broadcast{Value: Simplify(n.Value), Lanes: n.Lanes}
	case Ramp:
		return Ramp{Base: Simplify(n.Base), Stride: Simplify(n.Stride), Lanes: n.Lanes}
	default:
		return e
	}
}

func boolLit(v bool) Expr {
	if v {
		return IntImm{Value: 1}
	}
	return IntImm{Value: 0}
}

func simplifyBinary(op Kind, a, b Expr) Expr {
	ai, aIsInt := a.(IntImm)
	bi, bIsInt := b.(IntImm)

	if aIsInt && bIsInt {
		if v, ok := foldConstInts(op, ai.Value, bi.Value); ok {
			return v
		}
	}

	switch op {
	case KindAdd:
		if aIsInt && ai.Value == 0 {
			return b
		}
		if bIsInt && bi.Value == 0 {
			return a
		}
	case KindSub:
		if bIsInt && bi.Value == 0 {
			return a
		}
		if Equal(a, b) {
			return IntImm{Value: 0}
		}
	case KindMul:
		if (aIsInt && ai.Value == 0) || (bIsInt && bi.Value == 0) {
			return IntImm{Value: 0}
		}
		if aIsInt && ai.Value == 1 {
			return b
		}
		if bIsInt && bi.Value == 1 {
			return a
		}
	case KindDiv:
		if bIsInt && bi.Value == 1 {
			return a
		}
	case KindMin, KindMax:
		if Equal(a, b) {
			return a
		}
	case KindEQ:
		if Equal(a, b) {
			return boolLit(true)
		}
	case KindNE:
		if Equal(a, b) {
			return boolLit(false)
		}
	case KindAnd:
		if aIsInt {
			if ai.Value == 0 {
				return IntImm{Value: 0}
			}
			return b
		}
		if bIsInt {
			if bi.Value == 0 {
				return IntImm{Value: 0}
			}
			return a
		}
	case KindOr:
		if aIsInt {
			if ai.Value != 0 {
				return IntImm{Value: 1}
			}
			return b
		}
		if bIsInt {
			if bi.Value != 0 {
				return IntImm{Value: 1}
			}
			return a
		}
	}
	return Binary{Op: op, A: a, B: b}
}

func foldConstInts(op Kind, a, b int64) (Expr, bool) {
	switch op {
	case KindAdd:
		return IntImm{Value: a + b}, true
	case KindSub:
		return IntImm{Value: a - b}, true
	case KindMul:
		return IntImm{Value: a * b}, true
	case KindDiv:
		if b == 0 {
			return nil, false
		}
		return IntImm{Value: floorDiv(a, b)}, true
	case KindMod:
		if b == 0 {
			return nil, false
		}
		return IntImm{Value: floorMod(a, b)}, true
	case KindMin:
		if a < b {
			return IntImm{Value: a}, true
		}
		return IntImm{Value: b}, true
	case KindMax:
		if a > b {
			return IntImm{Value: a}, true
		}
		return IntImm{Value: b}, true
	case KindEQ:
		return boolLit(a == b), true
	case KindNE:
		return boolLit(a != b), true
	case KindLT:
		return boolLit(a < b), true
	case KindLE:
		return boolLit(a <= b), true
	case KindGT:
		return boolLit(a > b), true
	case KindGE:
		return boolLit(a >= b), true
	}
	return nil, false
}

// floorDiv/floorMod use Euclidean rounding (the remainder is never
// negative), the same convention as the SMT-LIB "div"/"mod" functions the
// serializer emits. For a positive divisor this is floor division.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		if b > 0 {
			m += b
		} else {
			m -= b
		}
	}
	return m
}
