package symdiff

// StructuralEqual reports whether other is also a Const with the same
// value.
func (c Const) StructuralEqual(other Expression) bool {
	o, ok := other.(Const)
	return ok && o.Value == c.Value
}

// StructuralEqual reports whether other is also a Var with the same
// letter.
func (v Var) StructuralEqual(other Expression) bool {
	o, ok := other.(Var)
	return ok && o.Letter == v.Letter
}

// StructuralEqual reports whether other is also an Add with structurally
// equal children in the same positions.
func (a Add) StructuralEqual(other Expression) bool {
	o, ok := other.(Add)
	return ok && a.Left.StructuralEqual(o.Left) && a.Right.StructuralEqual(o.Right)
}

// StructuralEqual reports whether other is also a Sub with structurally
// equal children in the same positions.
func (s Sub) StructuralEqual(other Expression) bool {
	o, ok := other.(Sub)
	return ok && s.Left.StructuralEqual(o.Left) && s.Right.StructuralEqual(o.Right)
}

// StructuralEqual reports whether other is also a Mul with structurally
// equal children in the same positions.
func (m Mul) StructuralEqual(other Expression) bool {
	o, ok := other.(Mul)
	return ok && m.Left.StructuralEqual(o.Left) && m.Right.StructuralEqual(o.Right)
}

// StructuralEqual reports whether other is also a Div with structurally
// equal children in the same positions.
func (d Div) StructuralEqual(other Expression) bool {
	o, ok := other.(Div)
	return ok && d.Left.StructuralEqual(o.Left) && d.Right.StructuralEqual(o.Right)
}

// StructuralEqual reports whether other is also a Pow with structurally
// equal children in the same positions.
func (p Pow) StructuralEqual(other Expression) bool {
	o, ok := other.(Pow)
	return ok && p.Base.StructuralEqual(o.Base) && p.Exponent.StructuralEqual(o.Exponent)
}

// StructuralEqual reports whether other is also a Neg with a structurally
// equal inner expression.
func (n Neg) StructuralEqual(other Expression) bool {
	o, ok := other.(Neg)
	return ok && n.Inner.StructuralEqual(o.Inner)
}
