package symdiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/symdiff/symdiff"
)

func TestSimplifyRules(t *testing.T) {
	x := symdiff.Var{Letter: 'x'}

	cases := []struct {
		name string
		expr symdiff.Expression
		want symdiff.Expression
	}{
		{
			name: "add zero eliminated on the left",
			expr: symdiff.Add{Left: symdiff.Const{Value: 0}, Right: x},
			want: x,
		},
		{
			name: "add zero eliminated on the right",
			expr: symdiff.Add{Left: x, Right: symdiff.Const{Value: 0}},
			want: x,
		},
		{
			name: "constant flattening through an add chain",
			expr: symdiff.Add{
				Left:  symdiff.Add{Left: symdiff.Const{Value: 3}, Right: x},
				Right: symdiff.Const{Value: 4},
			},
			want: symdiff.Add{Left: symdiff.Const{Value: 7}, Right: x},
		},
		{
			name: "multiply by zero",
			expr: symdiff.Mul{Left: x, Right: symdiff.Const{Value: 0}},
			want: symdiff.Const{Value: 0},
		},
		{
			name: "multiply by one on the left",
			expr: symdiff.Mul{Left: symdiff.Const{Value: 1}, Right: x},
			want: x,
		},
		{
			name: "multiply by one on the right",
			expr: symdiff.Mul{Left: x, Right: symdiff.Const{Value: 1}},
			want: x,
		},
		{
			name: "constant flattening through a multiply chain",
			expr: symdiff.Mul{
				Left:  symdiff.Mul{Left: symdiff.Const{Value: 3}, Right: x},
				Right: symdiff.Const{Value: 4},
			},
			want: symdiff.Mul{Left: symdiff.Const{Value: 12}, Right: x},
		},
		{
			name: "power of one exponent",
			expr: symdiff.Pow{Base: x, Exponent: symdiff.Const{Value: 1}},
			want: x,
		},
		{
			name: "one to any power",
			expr: symdiff.Pow{Base: symdiff.Const{Value: 1}, Exponent: x},
			want: symdiff.Const{Value: 1},
		},
		{
			name: "fold to constant when no variables remain",
			expr: symdiff.Add{Left: symdiff.Const{Value: 2}, Right: symdiff.Const{Value: 3}},
			want: symdiff.Const{Value: 5},
		},
		{
			name: "negative fold represented as Neg(Const)",
			expr: symdiff.Sub{Left: symdiff.Const{Value: 2}, Right: symdiff.Const{Value: 5}},
			want: symdiff.Neg{Inner: symdiff.Const{Value: 3}},
		},
		{
			name: "subtraction keeps its shape when it has variables",
			expr: symdiff.Sub{Left: x, Right: symdiff.Const{Value: 0}},
			want: symdiff.Sub{Left: x, Right: symdiff.Const{Value: 0}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.expr.Simplify()
			assert.True(t, tc.want.StructuralEqual(got), "Simplify() = %v, want %v", got, tc.want)
		})
	}
}

func TestSimplifyNeverProducesNegativeConst(t *testing.T) {
	expr := symdiff.Sub{Left: symdiff.Const{Value: 1}, Right: symdiff.Const{Value: 9}}
	got := expr.Simplify()

	neg, ok := got.(symdiff.Neg)
	if assert.True(t, ok, "expected Neg(Const(8)), got %v", got) {
		c, ok := neg.Inner.(symdiff.Const)
		assert.True(t, ok)
		assert.Equal(t, 8.0, c.Value)
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	exprs := []symdiff.Expression{
		symdiff.Add{Left: symdiff.Const{Value: 3}, Right: symdiff.Var{Letter: 'x'}},
		symdiff.Mul{
			Left:  symdiff.Mul{Left: symdiff.Const{Value: 2}, Right: symdiff.Var{Letter: 'x'}},
			Right: symdiff.Const{Value: 3},
		},
		symdiff.Pow{Base: symdiff.Var{Letter: 'x'}, Exponent: symdiff.Const{Value: 1}},
		symdiff.Sub{Left: symdiff.Const{Value: 4}, Right: symdiff.Const{Value: 9}},
	}

	for _, e := range exprs {
		once := e.Simplify()
		twice := once.Simplify()
		assert.True(t, once.StructuralEqual(twice), "Simplify() not idempotent for %v", e)
	}
}
