package guac

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Const is a named irrational constant. Constants are opaque atoms to
// the simplifier: two occurrences of the same constant match
// structurally and combine like any other base, but no identity beyond
// that is ever applied. The approximate expansion below is used only
// for approximate display.
type Const int8

// The constants the calculator knows.
const (
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi Const = iota
	// Tau is the ratio of a circle's circumference to its radius.
	Tau
	// E is the base of the natural logarithm.
	E
	// Gamma is the Euler–Mascheroni constant.
	Gamma
	// C is the speed of light in m/s.
	C
	// G is the Newtonian constant of gravitation.
	G
	// H is the Planck constant.
	H
	// Hbar is the reduced Planck constant.
	Hbar
	// K is the Boltzmann constant.
	K
	// Qe is the elementary charge.
	Qe
	// Me is the electron mass.
	Me
	// Mp is the proton mass.
	Mp

	numConsts = iota
)

// constInfo describes one constant: how it parses and displays, and its
// decimal expansion for approximate evaluation. Exact SI-defined values
// are truncated well past any display precision.
type constInfo struct {
	name   string
	glyph  string
	approx string
}

var consts = [numConsts]constInfo{
	Pi:    {"pi", "π", "3.14159265358979323846264338327950288419716939937510"},
	Tau:   {"tau", "τ", "6.28318530717958647692528676655900576839433879875021"},
	E:     {"e", "e", "2.71828182845904523536028747135266249775724709369996"},
	Gamma: {"gamma", "γ", "0.57721566490153286060651209008240243104215933593992"},
	C:     {"c", "c", "299792458"},
	G:     {"G", "G", "6.67430e-11"},
	H:     {"h", "h", "6.62607015e-34"},
	Hbar:  {"hbar", "ℏ", "1.054571817e-34"},
	K:     {"kB", "k_B", "1.380649e-23"},
	Qe:    {"qe", "q_e", "1.602176634e-19"},
	Me:    {"me", "m_e", "9.1093837015e-31"},
	Mp:    {"mp", "m_p", "1.67262192369e-27"},
}

// Name returns the constant's parse name, e.g. "pi" or "hbar".
func (c Const) Name() string {
	return consts[c].name
}

// String returns the constant's display glyph, e.g. "π" or "ℏ".
func (c Const) String() string {
	return consts[c].glyph
}

// constByName finds a constant by its parse name or display glyph.
func constByName(s string) (Const, bool) {
	for i, inf := range consts {
		if inf.name == s || inf.glyph == s {
			return Const(i), true
		}
	}
	return 0, false
}

// float computes the constant's approximate value to prec bits. Pi, Tau
// and E compute to full precision; physical constants parse from their
// decimal expansions.
func (c Const) float(prec uint) *big.Float {
	r := new(big.Float).SetPrec(prec)
	switch c {
	case Pi:
		bigfloat.Pi(r)
	case Tau:
		bigfloat.Pi(r)
		r.Add(r, r)
	case E:
		one := new(big.Float).SetPrec(prec).SetInt64(1)
		bigfloat.Exp(r, one)
	default:
		if _, _, err := r.Parse(consts[c].approx, 10); err != nil {
			panic("guac: bad constant table entry for " + consts[c].name + ": " + err.Error())
		}
	}
	return r
}
