package symdiff

// Priority values used by the printer to decide where parentheses are
// required. Higher binds tighter.
const (
	priorityAddSub = 1
	priorityMulDiv = 2
	priorityNeg    = 3
	priorityPow    = 4
	priorityLeaf   = 10
)

// Expression is an immutable node in a symbolic expression tree. Every
// transformation (Derivative, Simplify, Clone) returns a new tree; no
// operation mutates a node reachable from outside its own call.
type Expression interface {
	// Evaluate computes the numeric value of the expression given bindings
	// for its variables. The second result is false if a variable used in
	// the expression has no binding in env.
	Evaluate(env map[byte]float64) (float64, bool)
	// Derivative returns a new expression representing d/d(wrt) of this
	// expression. It always succeeds; the rules are purely structural.
	Derivative(wrt byte) Expression
	// Simplify returns a rewritten, simplified expression.
	Simplify() Expression
	// Print renders the expression to its minimal, unambiguous textual
	// form.
	Print() string
	// String is an alias for Print so Expression satisfies fmt.Stringer.
	String() string
	// StructuralEqual reports whether this expression and other have the
	// same shape and leaf values. This is not mathematical equivalence.
	StructuralEqual(other Expression) bool
	// Variables returns the set of variable letters that appear anywhere
	// in the expression.
	Variables() map[byte]bool
	// Size returns the number of nodes in the expression tree, including
	// this one.
	Size() int
	// Clone returns a deep structural copy of the expression.
	Clone() Expression
	// Priority returns the fixed precedence used by the printer to decide
	// parenthesization: Const=Var=10, Pow=4, Neg=3, Mul=Div=2, Add=Sub=1.
	Priority() int
}

// Const is a numeric literal leaf. By construction its Value is
// non-negative; negative constants are represented as Neg(Const(|v|)).
type Const struct {
	Value float64
}

// Var is a single-letter variable leaf.
type Var struct {
	Letter byte
}

// Add is the sum Left + Right.
type Add struct {
	Left, Right Expression
}

// Sub is the difference Left - Right.
type Sub struct {
	Left, Right Expression
}

// Mul is the product Left * Right.
type Mul struct {
	Left, Right Expression
}

// Div is the quotient Left / Right.
type Div struct {
	Left, Right Expression
}

// Pow is Base raised to Exponent.
type Pow struct {
	Base, Exponent Expression
}

// Neg is the negation -Inner.
type Neg struct {
	Inner Expression
}

func (Const) Priority() int { return priorityLeaf }
func (Var) Priority() int   { return priorityLeaf }
func (Add) Priority() int   { return priorityAddSub }
func (Sub) Priority() int   { return priorityAddSub }
func (Mul) Priority() int   { return priorityMulDiv }
func (Div) Priority() int   { return priorityMulDiv }
func (Pow) Priority() int   { return priorityPow }
func (Neg) Priority() int   { return priorityNeg }

func (c Const) Size() int { return 1 }
func (v Var) Size() int   { return 1 }
func (a Add) Size() int   { return 1 + a.Left.Size() + a.Right.Size() }
func (s Sub) Size() int   { return 1 + s.Left.Size() + s.Right.Size() }
func (m Mul) Size() int   { return 1 + m.Left.Size() + m.Right.Size() }
func (d Div) Size() int   { return 1 + d.Left.Size() + d.Right.Size() }
func (p Pow) Size() int   { return 1 + p.Base.Size() + p.Exponent.Size() }
func (n Neg) Size() int   { return 1 + n.Inner.Size() }

func (c Const) Variables() map[byte]bool { return map[byte]bool{} }
func (v Var) Variables() map[byte]bool   { return map[byte]bool{v.Letter: true} }
func (a Add) Variables() map[byte]bool   { return mergeVars(a.Left, a.Right) }
func (s Sub) Variables() map[byte]bool   { return mergeVars(s.Left, s.Right) }
func (m Mul) Variables() map[byte]bool   { return mergeVars(m.Left, m.Right) }
func (d Div) Variables() map[byte]bool   { return mergeVars(d.Left, d.Right) }
func (p Pow) Variables() map[byte]bool   { return mergeVars(p.Base, p.Exponent) }
func (n Neg) Variables() map[byte]bool   { return n.Inner.Variables() }

func mergeVars(a, b Expression) map[byte]bool {
	vars := a.Variables()
	for c := range b.Variables() {
		vars[c] = true
	}
	return vars
}

func (c Const) Clone() Expression { return Const{Value: c.Value} }
func (v Var) Clone() Expression   { return Var{Letter: v.Letter} }
func (a Add) Clone() Expression   { return Add{Left: a.Left.Clone(), Right: a.Right.Clone()} }
func (s Sub) Clone() Expression   { return Sub{Left: s.Left.Clone(), Right: s.Right.Clone()} }
func (m Mul) Clone() Expression   { return Mul{Left: m.Left.Clone(), Right: m.Right.Clone()} }
func (d Div) Clone() Expression   { return Div{Left: d.Left.Clone(), Right: d.Right.Clone()} }
func (p Pow) Clone() Expression {
	return Pow{Base: p.Base.Clone(), Exponent: p.Exponent.Clone()}
}
func (n Neg) Clone() Expression { return Neg{Inner: n.Inner.Clone()} }

func (c Const) String() string { return c.Print() }
func (v Var) String() string   { return v.Print() }
func (a Add) String() string   { return a.Print() }
func (s Sub) String() string   { return s.Print() }
func (m Mul) String() string   { return m.Print() }
func (d Div) String() string   { return d.Print() }
func (p Pow) String() string   { return p.Print() }
func (n Neg) String() string   { return n.Print() }

var (
	_ Expression = Const{}
	_ Expression = Var{}
	_ Expression = Add{}
	_ Expression = Sub{}
	_ Expression = Mul{}
	_ Expression = Div{}
	_ Expression = Pow{}
	_ Expression = Neg{}
)
