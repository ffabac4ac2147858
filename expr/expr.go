// Package expr implements the expression IR shared by every other package
// in this module: the pattern extractor walks it, the SMT bridge serializes
// it, the synthesizer builds and compares it, and the rule subsumption
// checker matches it against itself.
package expr

import "fmt"

// Kind discriminates the shape-sharing node types (Binary, Unary) by
// operator, the way Slava0135-gobber's BinOp/UnOp discriminate by an Op
// string field.
type Kind int

const (
	KindIntImm Kind = iota
	KindUIntImm
	KindFloatImm
	KindStringImm
	KindVariable
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod
	KindMin
	KindMax
	KindEQ
	KindNE
	KindLT
	KindLE
	KindGT
	KindGE
	KindAnd
	KindOr
	KindNot
	KindSelect
	KindLet
	KindBroadcast
	KindRamp
)

var kindNames = map[Kind]string{
	KindIntImm: "IntImm", KindUIntImm: "UIntImm", KindFloatImm: "FloatImm",
	KindStringImm: "StringImm", KindVariable: "Variable",
	KindAdd: "Add", KindSub: "Sub", KindMul: "Mul", KindDiv: "Div", KindMod: "Mod",
	KindMin: "Min", KindMax: "Max",
	KindEQ: "EQ", KindNE: "NE", KindLT: "LT", KindLE: "LE", KindGT: "GT", KindGE: "GE",
	KindAnd: "And", KindOr: "Or", KindNot: "Not",
	KindSelect: "Select", KindLet: "Let", KindBroadcast: "Broadcast", KindRamp: "Ramp",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsCompare reports whether k produces a Bool result from two operands.
func (k Kind) IsCompare() bool {
	switch k {
	case KindEQ, KindNE, KindLT, KindLE, KindGT, KindGE:
		return true
	}
	return false
}

// Type is the small, fixed set of sorts this system reasons about. Vector
// lanes are tracked on Broadcast/Ramp only and never influence synthesis.
type Type int

const (
	Int32 Type = iota
	UInt32
	Float64
	Bool
	StringType
)

func (t Type) String() string {
	switch t {
	case Int32:
		return "int32"
	case UInt32:
		return "uint32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	case StringType:
		return "string"
	default:
		return "unknown"
	}
}

// Expr is any node in the expression IR. Every concrete type below
// implements it.
type Expr interface {
	fmt.Stringer
	Type() Type
	kind() Kind
}

// IntImm is a signed 32-bit integer literal.
type IntImm struct {
	Value int64
}

// UIntImm is an unsigned 32-bit integer literal.
type UIntImm struct {
	Value uint64
}

// FloatImm is a floating point literal.
type FloatImm struct {
	Value float64
}

// StringImm is a string literal.
type StringImm struct {
	Value string
}

// Variable names a symbol: either a free variable of the expression being
// analyzed, or a synthesizer wildcard (v0..v29).
type Variable struct {
	Name string
	Typ  Type
}

// Binary covers every two-operand arithmetic, comparison, and logical node,
// discriminated by Op.
type Binary struct {
	Op   Kind
	A, B Expr
}

// Unary covers Not.
type Unary struct {
	Op Kind
	A  Expr
}

// Select is the ternary (ite cond then else) node.
type Select struct {
	Cond, Then, Else Expr
}

// Let binds Name to Value within Body.
type Let struct {
	Name  string
	Typ   Type
	Value Expr
	Body  Expr
}

// Broadcast replicates a scalar across Lanes lanes. Only the serializer
// looks at Lanes; synthesis treats Broadcast(v) as v.
type Broadcast struct {
	Value Expr
	Lanes int
}

// Ramp is a linear sequence base, base+stride, base+2*stride, ...
// The serializer rejects it outright (it has no synthesis semantics).
type Ramp struct {
	Base, Stride Expr
	Lanes        int
}

func (IntImm) kind() Kind     { return KindIntImm }
func (UIntImm) kind() Kind    { return KindUIntImm }
func (FloatImm) kind() Kind   { return KindFloatImm }
func (StringImm) kind() Kind  { return KindStringImm }
func (Variable) kind() Kind   { return KindVariable }
func (b Binary) kind() Kind   { return b.Op }
func (u Unary) kind() Kind    { return u.Op }
func (Select) kind() Kind     { return KindSelect }
func (Let) kind() Kind        { return KindLet }
func (Broadcast) kind() Kind  { return KindBroadcast }
func (Ramp) kind() Kind       { return KindRamp }

func (IntImm) Type() Type    { return Int32 }
func (UIntImm) Type() Type   { return UInt32 }
func (FloatImm) Type() Type  { return Float64 }
func (StringImm) Type() Type { return StringType }
func (v Variable) Type() Type { return v.Typ }

func (b Binary) Type() Type {
	if b.Op.IsCompare() || b.Op == KindAnd || b.Op == KindOr {
		return Bool
	}
	return b.A.Type()
}

func (Unary) Type() Type { return Bool }

func (s Select) Type() Type { return s.Then.Type() }

func (l Let) Type() Type { return l.Body.Type() }

func (b Broadcast) Type() Type { return b.Value.Type() }

func (r Ramp) Type() Type { return r.Base.Type() }

// Kind returns the node's discriminator. Exported accessor over the
// unexported kind() method so other packages can switch on it without
// reaching into each concrete type.
func KindOf(e Expr) Kind { return e.kind() }

// Constructors mirror the style of a small literal-construction API; each
// just builds the value, the way expr_to_smt2's callers in the original
// build raw IR nodes inline.

func Int(v int64) Expr            { return IntImm{Value: v} }
func UInt(v uint64) Expr          { return UIntImm{Value: v} }
func Float(v float64) Expr        { return FloatImm{Value: v} }
func Str(v string) Expr           { return StringImm{Value: v} }
func Var(name string) Expr        { return Variable{Name: name, Typ: Int32} }
func VarT(name string, t Type) Expr { return Variable{Name: name, Typ: t} }

func Add(a, b Expr) Expr { return Binary{Op: KindAdd, A: a, B: b} }
func Sub(a, b Expr) Expr { return Binary{Op: KindSub, A: a, B: b} }
func Mul(a, b Expr) Expr { return Binary{Op: KindMul, A: a, B: b} }
func Div(a, b Expr) Expr { return Binary{Op: KindDiv, A: a, B: b} }
func Mod(a, b Expr) Expr { return Binary{Op: KindMod, A: a, B: b} }
func Min(a, b Expr) Expr { return Binary{Op: KindMin, A: a, B: b} }
func Max(a, b Expr) Expr { return Binary{Op: KindMax, A: a, B: b} }
func EQ(a, b Expr) Expr  { return Binary{Op: KindEQ, A: a, B: b} }
func NE(a, b Expr) Expr  { return Binary{Op: KindNE, A: a, B: b} }
func LT(a, b Expr) Expr  { return Binary{Op: KindLT, A: a, B: b} }
func LE(a, b Expr) Expr  { return Binary{Op: KindLE, A: a, B: b} }
func GT(a, b Expr) Expr  { return Binary{Op: KindGT, A: a, B: b} }
func GE(a, b Expr) Expr  { return Binary{Op: KindGE, A: a, B: b} }
func And(a, b Expr) Expr { return Binary{Op: KindAnd, A: a, B: b} }
func Or(a, b Expr) Expr  { return Binary{Op: KindOr, A: a, B: b} }
func Not(a Expr) Expr    { return Unary{Op: KindNot, A: a} }

func IfThenElse(cond, t, f Expr) Expr { return Select{Cond: cond, Then: t, Else: f} }

func LetIn(name string, typ Type, value, body Expr) Expr {
	return Let{Name: name, Typ: typ, Value: value, Body: body}
}

// Children returns e's direct operands in evaluation order, or nil for a
// leaf. Used by the DAG builder and every generic tree walk.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case Binary:
		return []Expr{n.A, n.B}
	case Unary:
		return []Expr{n.A}
	case Select:
		return []Expr{n.Cond, n.Then, n.Else}
	case Let:
		return []Expr{n.Value, n.Body}
	case Broadcast:
		return []Expr{n.Value}
	case Ramp:
		return []Expr{n.Base, n.Stride}
	default:
		return nil
	}
}

// WithChildren rebuilds e with new children, in the same order Children
// returned them. Used by CSE, let substitution, and the pattern extractor
// to reconstruct nodes bottom-up.
func WithChildren(e Expr, children []Expr) Expr {
	switch n := e.(type) {
	case Binary:
		return Binary{Op: n.Op, A: children[0], B: children[1]}
	case Unary:
		return Unary{Op: n.Op, A: children[0]}
	case Select:
		return Select{Cond: children[0], Then: children[1], Else: children[2]}
	case Let:
		return Let{Name: n.Name, Typ: n.Typ, Value: children[0], Body: children[1]}
	case Broadcast:
		return Broadcast{Value: children[0], Lanes: n.Lanes}
	case Ramp:
		return Ramp{Base: children[0], Stride: children[1], Lanes: n.Lanes}
	default:
		return e
	}
}
