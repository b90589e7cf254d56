// Package symdiff implements a symbolic differentiation engine for textual
// arithmetic expressions over a single independent variable.
//
// A source string such as "3x^2+5" is tokenized, parsed into an expression
// tree honoring standard operator precedence and associativity (including
// implicit multiplication: "3x" means "3*x"), differentiated with respect to
// a chosen variable letter, simplified toward a canonical form, and rendered
// back to text with the minimal parentheses needed to preserve meaning.
//
// The pipeline is: Tokenize -> BuildExpression -> Expression.Derivative ->
// Expression.Simplify -> Expression.Print. Differentiate wires all of these
// together for the common case.
package symdiff
