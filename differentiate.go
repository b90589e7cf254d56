package symdiff

// Differentiate tokenizes source, parses it into an expression tree,
// differentiates with respect to variable, simplifies the result, and
// renders it back to text. Lexer and parser errors are propagated
// unchanged; the caller is expected to present them.
func Differentiate(source string, variable byte) (string, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return "", err
	}
	expr, err := BuildExpression(tokens)
	if err != nil {
		return "", err
	}
	result := expr.Derivative(variable).Simplify()
	return result.Print(), nil
}
