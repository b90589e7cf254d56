package symdiff

// Derivative returns Const(0): the derivative of any constant is zero.
func (c Const) Derivative(wrt byte) Expression { return Const{Value: 0} }

// Derivative returns Const(1) if this variable is the one being
// differentiated against, Const(0) otherwise.
func (v Var) Derivative(wrt byte) Expression {
	if v.Letter == wrt {
		return Const{Value: 1}
	}
	return Const{Value: 0}
}

// Derivative applies the sum rule: (a+b)' = a' + b'.
func (a Add) Derivative(wrt byte) Expression {
	return Add{Left: a.Left.Derivative(wrt), Right: a.Right.Derivative(wrt)}
}

// Derivative applies the difference rule: (a-b)' = a' - b'.
func (s Sub) Derivative(wrt byte) Expression {
	return Sub{Left: s.Left.Derivative(wrt), Right: s.Right.Derivative(wrt)}
}

// Derivative applies the product rule: (a*b)' = a*b' + b*a'.
func (m Mul) Derivative(wrt byte) Expression {
	return Add{
		Left:  Mul{Left: m.Left, Right: m.Right.Derivative(wrt)},
		Right: Mul{Left: m.Right, Right: m.Left.Derivative(wrt)},
	}
}

// Derivative applies the quotient rule: (a/b)' = (b*a' - a*b') / b^2.
func (d Div) Derivative(wrt byte) Expression {
	return Div{
		Left: Sub{
			Left:  Mul{Left: d.Right, Right: d.Left.Derivative(wrt)},
			Right: Mul{Left: d.Left, Right: d.Right.Derivative(wrt)},
		},
		Right: Pow{Base: d.Right, Exponent: Const{Value: 2}},
	}
}

// Derivative applies the power rule, treating the exponent as constant with
// respect to wrt regardless of whether it actually depends on wrt:
// (a^b)' = b * a' * a^(b-1).
func (p Pow) Derivative(wrt byte) Expression {
	return Mul{
		Left: Mul{Left: p.Exponent, Right: p.Base.Derivative(wrt)},
		Right: Pow{
			Base:     p.Base,
			Exponent: Sub{Left: p.Exponent, Right: Const{Value: 1}},
		},
	}
}

// Derivative applies the negation rule: (-a)' = -(a').
func (n Neg) Derivative(wrt byte) Expression {
	return Neg{Inner: n.Inner.Derivative(wrt)}
}
