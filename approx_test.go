package guac_test

import (
	"math"
	"testing"

	"github.com/guacalc/guac"
)

// approxEq fails the test unless the approximate value of e is within
// tolerance of want at 64 bits of precision.
func approxEq(t *testing.T, e *guac.Expr, want, tol float64) {
	t.Helper()
	f, ok := guac.AsFloat(e, 64)
	if !ok {
		t.Fatalf("AsFloat(%v) has no value", e)
	}
	got, _ := f.Float64()
	if math.Abs(got-want) > tol {
		t.Errorf("AsFloat(%v) = %g, want %g", e, got, want)
	}
}

func TestAsFloat(t *testing.T) {
	pi := guac.Constant(guac.Pi)
	cases := []struct {
		name string
		e    *guac.Expr
		want float64
	}{
		{"rational", guac.Rat(1, 2), 0.5},
		{"pi", pi, math.Pi},
		{"tau", guac.Constant(guac.Tau), 2 * math.Pi},
		{"e", guac.Constant(guac.E), math.E},
		{"c", guac.Constant(guac.C), 299792458},
		{"sum", guac.NewSum(guac.Int(1), pi), 1 + math.Pi},
		{"product", guac.NewProduct(guac.Int(2), pi), 2 * math.Pi},
		{"power", guac.NewPower(guac.Int(2), guac.Rat(1, 2)), math.Sqrt2},
		{"neg-base", guac.NewPower(guac.Int(-2), guac.Int(3)), -8},
		{"log", guac.NewLog(guac.Int(2), guac.Int(8)), 3},
		{"ln", guac.NewLog(guac.Constant(guac.E), guac.Int(1)), 0},
		{"mod", guac.NewMod(guac.Rat(17, 2), guac.Int(3)), 2.5},
		{"abs", guac.NewAbs(guac.Int(-4)), 4},
		{"cos", guac.NewCos(pi), -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			approxEq(t, c.e, c.want, 1e-9)
		})
	}
	t.Run("sin-pi", func(t *testing.T) {
		// Approximately zero, bounded by float64 trig accuracy.
		approxEq(t, guac.NewSin(pi), 0, 1e-9)
	})
}

func TestAsFloatNoValue(t *testing.T) {
	x := guac.Variable("x")
	cases := []struct {
		name string
		e    *guac.Expr
	}{
		{"variable", x},
		{"nested-variable", guac.NewSum(guac.Int(1), guac.NewProduct(guac.Int(2), x))},
		{"log-nonpositive", guac.NewLog(guac.Int(2), guac.Int(-1))},
		{"log-base-one", guac.NewLog(guac.Int(1), guac.Int(5))},
		{"neg-base-frac-exp", guac.NewPower(guac.Int(-2), guac.Rat(1, 2))},
		{"zero-to-negative", guac.NewPower(guac.Int(0), guac.Int(-1))},
		{"mod-zero", guac.NewMod(guac.Int(5), guac.Int(0))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if f, ok := guac.AsFloat(c.e, 64); ok {
				t.Errorf("AsFloat(%v) = %v, want no value", c.e, f)
			}
		})
	}
}
