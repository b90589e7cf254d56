package symdiff

// isZero reports whether e is the literal Const(0).
func isZero(e Expression) bool {
	c, ok := e.(Const)
	return ok && c.Value == 0
}

// isOne reports whether e is the literal Const(1).
func isOne(e Expression) bool {
	c, ok := e.(Const)
	return ok && c.Value == 1
}

// sumAddChain sums every Const leaf reachable through a chain of Add nodes
// rooted at e, stopping at any node that is neither Add nor Const.
func sumAddChain(e Expression) float64 {
	switch v := e.(type) {
	case Const:
		return v.Value
	case Add:
		return sumAddChain(v.Left) + sumAddChain(v.Right)
	default:
		return 0
	}
}

// rewriteAddChain walks the same chain sumAddChain traversed, replacing the
// first Const leaf encountered with sum and every subsequent one with 0. The
// tree shape is otherwise untouched.
func rewriteAddChain(e Expression, sum float64, first *bool) Expression {
	switch v := e.(type) {
	case Const:
		if *first {
			*first = false
			return Const{Value: sum}
		}
		return Const{Value: 0}
	case Add:
		return Add{Left: rewriteAddChain(v.Left, sum, first), Right: rewriteAddChain(v.Right, sum, first)}
	default:
		return e
	}
}

// productMulChain multiplies every Const leaf reachable through a chain of
// Mul nodes rooted at e, stopping at any node that is neither Mul nor Const.
func productMulChain(e Expression) float64 {
	switch v := e.(type) {
	case Const:
		return v.Value
	case Mul:
		return productMulChain(v.Left) * productMulChain(v.Right)
	default:
		return 1
	}
}

// rewriteMulChain walks the same chain productMulChain traversed, replacing
// the first Const leaf encountered with product and every subsequent one
// with 1.
func rewriteMulChain(e Expression, product float64, first *bool) Expression {
	switch v := e.(type) {
	case Const:
		if *first {
			*first = false
			return Const{Value: product}
		}
		return Const{Value: 1}
	case Mul:
		return Mul{Left: rewriteMulChain(v.Left, product, first), Right: rewriteMulChain(v.Right, product, first)}
	default:
		return e
	}
}

// Simplify returns the constant unchanged: a constant is already fully
// simplified.
func (c Const) Simplify() Expression { return c }

// Simplify rewrites Var per the identity rule: a variable is already fully
// simplified.
func (v Var) Simplify() Expression { return v }

// Simplify applies constant-flattening across the Add chain rooted here,
// then the zero-addend identities, then folds to Const when no variables
// remain.
func (a Add) Simplify() Expression {
	flat := Add{Left: a.Left.Simplify(), Right: a.Right.Simplify()}

	sum := sumAddChain(flat)
	first := true
	flat = Add{
		Left:  rewriteAddChain(flat.Left, sum, &first),
		Right: rewriteAddChain(flat.Right, sum, &first),
	}

	left := flat.Left.Simplify()
	right := flat.Right.Simplify()

	if isZero(left) {
		return right
	}
	if isZero(right) {
		return left
	}

	result := Expression(Add{Left: left, Right: right})
	if folded, ok := evaluateToConst(result); ok {
		return folded
	}
	return result
}

// Simplify folds Sub to Const when no variables remain; otherwise the node
// is kept as-is, matching the specification's minimal treatment of
// subtraction (no zero-operand elimination rule is defined for Sub).
func (s Sub) Simplify() Expression {
	result := Expression(Sub{Left: s.Left.Simplify(), Right: s.Right.Simplify()})
	if folded, ok := evaluateToConst(result); ok {
		return folded
	}
	return result
}

// Simplify applies constant-flattening across the Mul chain rooted here,
// then the zero/one-factor identities, then folds to Const when no
// variables remain.
func (m Mul) Simplify() Expression {
	flat := Mul{Left: m.Left.Simplify(), Right: m.Right.Simplify()}

	product := productMulChain(flat)
	first := true
	flat = Mul{
		Left:  rewriteMulChain(flat.Left, product, &first),
		Right: rewriteMulChain(flat.Right, product, &first),
	}

	left := flat.Left.Simplify()
	right := flat.Right.Simplify()

	if isZero(left) || isZero(right) {
		return Const{Value: 0}
	}
	if isOne(left) {
		return right
	}
	if isOne(right) {
		return left
	}

	result := Expression(Mul{Left: left, Right: right})
	if folded, ok := evaluateToConst(result); ok {
		return folded
	}
	return result
}

// Simplify folds Div to Const when no variables remain; no quotient
// identity beyond that is defined.
func (d Div) Simplify() Expression {
	result := Expression(Div{Left: d.Left.Simplify(), Right: d.Right.Simplify()})
	if folded, ok := evaluateToConst(result); ok {
		return folded
	}
	return result
}

// Simplify applies the exponent identities (x^1 -> x, 1^x -> 1), then folds
// to Const when no variables remain.
func (p Pow) Simplify() Expression {
	base := p.Base.Simplify()
	exponent := p.Exponent.Simplify()

	if isOne(base) {
		return Const{Value: 1}
	}
	if isOne(exponent) {
		return base
	}

	result := Expression(Pow{Base: base, Exponent: exponent})
	if folded, ok := evaluateToConst(result); ok {
		return folded
	}
	return result
}

// Simplify folds Neg to Const when no variables remain; otherwise keeps the
// negation.
func (n Neg) Simplify() Expression {
	result := Expression(Neg{Inner: n.Inner.Simplify()})
	if folded, ok := evaluateToConst(result); ok {
		return folded
	}
	return result
}
