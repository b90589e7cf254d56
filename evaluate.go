package symdiff

import "math"

// Evaluate computes a numeric constant. The second result is always true.
func (c Const) Evaluate(env map[byte]float64) (float64, bool) { return c.Value, true }

// Evaluate looks up the variable's binding in env. The second result is
// false if the variable is unbound.
func (v Var) Evaluate(env map[byte]float64) (float64, bool) {
	val, ok := env[v.Letter]
	return val, ok
}

// Evaluate computes Left + Right using IEEE-754 double arithmetic.
func (a Add) Evaluate(env map[byte]float64) (float64, bool) {
	l, r, ok := evalBoth(a.Left, a.Right, env)
	if !ok {
		return 0, false
	}
	return l + r, true
}

// Evaluate computes Left - Right using IEEE-754 double arithmetic.
func (s Sub) Evaluate(env map[byte]float64) (float64, bool) {
	l, r, ok := evalBoth(s.Left, s.Right, env)
	if !ok {
		return 0, false
	}
	return l - r, true
}

// Evaluate computes Left * Right using IEEE-754 double arithmetic.
func (m Mul) Evaluate(env map[byte]float64) (float64, bool) {
	l, r, ok := evalBoth(m.Left, m.Right, env)
	if !ok {
		return 0, false
	}
	return l * r, true
}

// Evaluate computes Left / Right. Division by zero produces the underlying
// IEEE-754 infinity or NaN rather than an error.
func (d Div) Evaluate(env map[byte]float64) (float64, bool) {
	l, r, ok := evalBoth(d.Left, d.Right, env)
	if !ok {
		return 0, false
	}
	return l / r, true
}

// Evaluate computes Base raised to Exponent. Domain errors produce NaN
// rather than an error, per math.Pow.
func (p Pow) Evaluate(env map[byte]float64) (float64, bool) {
	b, e, ok := evalBoth(p.Base, p.Exponent, env)
	if !ok {
		return 0, false
	}
	return math.Pow(b, e), true
}

// Evaluate negates Inner.
func (n Neg) Evaluate(env map[byte]float64) (float64, bool) {
	v, ok := n.Inner.Evaluate(env)
	if !ok {
		return 0, false
	}
	return -v, true
}

func evalBoth(left, right Expression, env map[byte]float64) (l, r float64, ok bool) {
	l, ok = left.Evaluate(env)
	if !ok {
		return 0, 0, false
	}
	r, ok = right.Evaluate(env)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

// hasNoVariables reports whether e contains no variables at all. Simplify
// does not call it: it folds a subtree through evaluateToConst, which
// succeeds under exactly this condition.
func hasNoVariables(e Expression) bool {
	return len(e.Variables()) == 0
}

// evaluateToConst evaluates e with an empty environment and, if the
// evaluation succeeds, returns the equivalent constant expression and true.
// Per I2, a negative result is returned as Neg(Const(|v|)) rather than a
// Const holding a negative value.
func evaluateToConst(e Expression) (Expression, bool) {
	v, ok := e.Evaluate(map[byte]float64{})
	if !ok {
		return nil, false
	}
	if v < 0 {
		return Neg{Inner: Const{Value: -v}}, true
	}
	return Const{Value: v}, true
}
