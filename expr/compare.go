package expr

import "strings"

// Compare gives a deterministic total order over Expr values: by node kind
// first, then by immediate value or name, then by children left-to-right.
// It is the Go analogue of Halide's IRDeepCompare and backs both the
// deduplicated pattern set (package dag) and the final rule sort (package
// rules).
func Compare(a, b Expr) int {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return cmpInt(int(ka), int(kb))
	}
	switch x := a.(type) {
	case IntImm:
		return cmpInt64(x.Value, b.(IntImm).Value)
	case UIntImm:
		return cmpUint64(x.Value, b.(UIntImm).Value)
	case FloatImm:
		return cmpFloat64(x.Value, b.(FloatImm).Value)
	case StringImm:
		return strings.Compare(x.Value, b.(StringImm).Value)
	case Variable:
		y := b.(Variable)
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		return cmpInt(int(x.Typ), int(y.Typ))
	case Binary:
		y := b.(Binary)
		return compareBinary(x, y)
	case Unary:
		y := b.(Unary)
		return Compare(x.A, y.A)
	case Select:
		y := b.(Select)
		if c := Compare(x.Cond, y.Cond); c != 0 {
			return c
		}
		if c := Compare(x.Then, y.Then); c != 0 {
			return c
		}
		return Compare(x.Else, y.Else)
	case Let:
		y := b.(Let)
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		if c := Compare(x.Value, y.Value); c != 0 {
			return c
		}
		return Compare(x.Body, y.Body)
	case Broadcast:
		y := b.(Broadcast)
		if c := cmpInt(x.Lanes, y.Lanes); c != 0 {
			return c
		}
		return Compare(x.Value, y.Value)
	case Ramp:
		y := b.(Ramp)
		if c := cmpInt(x.Lanes, y.Lanes); c != 0 {
			return c
		}
		if c := Compare(x.Base, y.Base); c != 0 {
			return c
		}
		return Compare(x.Stride, y.Stride)
	default:
		return 0
	}
}

// compareBinary compares operands left-to-right, in the order they actually
// appear. Structural equality is order-sensitive even for commutative
// operators: x+y and y+x are distinct patterns until a solver-backed
// equivalence check (not Compare) says otherwise.
func compareBinary(x, y Binary) int {
	if c := Compare(x.A, y.A); c != 0 {
		return c
	}
	return Compare(x.B, y.B)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
