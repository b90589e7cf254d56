// Package randexpr generates small random expression trees for property
// tests of the symdiff package. It is test-only support, not part of the
// public API.
package randexpr

import (
	"math/rand"

	"github.com/symdiff/symdiff"
)

// Config controls the shape of generated trees.
type Config struct {
	// MaxDepth bounds how deep a generated tree may nest binary/unary
	// operators. A depth of 0 always yields a leaf.
	MaxDepth int
	// Letters is the pool of variable letters a Var leaf may draw from.
	// It must be non-empty.
	Letters []byte
}

// DefaultConfig is a reasonable depth and variable pool for fuzzing the
// derivative, simplify, and printer pipeline.
var DefaultConfig = Config{MaxDepth: 4, Letters: []byte{'x', 'y'}}

// Expression draws one random expression tree using rng.
func Expression(rng *rand.Rand, cfg Config) symdiff.Expression {
	return gen(rng, cfg, cfg.MaxDepth)
}

func gen(rng *rand.Rand, cfg Config, depth int) symdiff.Expression {
	if depth <= 0 || rng.Intn(3) == 0 {
		return leaf(rng, cfg)
	}

	switch rng.Intn(7) {
	case 0:
		return symdiff.Add{Left: gen(rng, cfg, depth-1), Right: gen(rng, cfg, depth-1)}
	case 1:
		return symdiff.Sub{Left: gen(rng, cfg, depth-1), Right: gen(rng, cfg, depth-1)}
	case 2:
		return symdiff.Mul{Left: gen(rng, cfg, depth-1), Right: gen(rng, cfg, depth-1)}
	case 3:
		return symdiff.Div{Left: gen(rng, cfg, depth-1), Right: gen(rng, cfg, depth-1)}
	case 4:
		// Keep exponents small integers so Pow stays well-behaved for the
		// numeric oracle.
		return symdiff.Pow{Base: gen(rng, cfg, depth-1), Exponent: symdiff.Const{Value: float64(1 + rng.Intn(3))}}
	case 5:
		return symdiff.Neg{Inner: gen(rng, cfg, depth-1)}
	default:
		return leaf(rng, cfg)
	}
}

func leaf(rng *rand.Rand, cfg Config) symdiff.Expression {
	if rng.Intn(2) == 0 {
		return symdiff.Const{Value: float64(rng.Intn(20))}
	}
	letter := cfg.Letters[rng.Intn(len(cfg.Letters))]
	return symdiff.Var{Letter: letter}
}
