package guac

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// AsFloat computes an expression's approximate numeric value to prec
// bits. It reports false when the expression has no numeric value: a
// variable occurs somewhere in it, or evaluation leaves the real domain
// (logarithm of a non-positive value, fractional power of a negative
// base, modulus zero). The underlying expression is unaffected either
// way; approximation is a display-side computation only.
//
// Sums, products, powers, and logarithms evaluate in big.Float to the
// requested precision. The trigonometric functions evaluate in float64,
// which bounds their useful precision.
func AsFloat(e *Expr, prec uint) (*big.Float, bool) {
	switch e.kind {
	case kindNum:
		return new(big.Float).SetPrec(prec).SetRat(e.rat), true
	case kindConst:
		return e.con.float(prec), true
	case kindVar:
		return nil, false
	case kindSum:
		acc := new(big.Float).SetPrec(prec)
		for _, k := range e.kids {
			v, ok := AsFloat(k, prec)
			if !ok {
				return nil, false
			}
			acc.Add(acc, v)
		}
		return acc, true
	case kindProd:
		acc := new(big.Float).SetPrec(prec).SetInt64(1)
		for _, k := range e.kids {
			v, ok := AsFloat(k, prec)
			if !ok {
				return nil, false
			}
			acc.Mul(acc, v)
		}
		return acc, true
	case kindPow:
		b, ok := AsFloat(e.x, prec)
		if !ok {
			return nil, false
		}
		p, ok := AsFloat(e.y, prec)
		if !ok {
			return nil, false
		}
		return floatPow(b, p, prec)
	case kindLog:
		b, ok := AsFloat(e.x, prec)
		if !ok || b.Sign() <= 0 {
			return nil, false
		}
		a, ok := AsFloat(e.y, prec)
		if !ok || a.Sign() <= 0 {
			return nil, false
		}
		r := bigfloat.Log(new(big.Float).SetPrec(prec), a)
		d := bigfloat.Log(new(big.Float).SetPrec(prec), b)
		if d.Sign() == 0 {
			return nil, false
		}
		return r.Quo(r, d), true
	case kindMod:
		x, ok := AsFloat(e.x, prec)
		if !ok {
			return nil, false
		}
		y, ok := AsFloat(e.y, prec)
		if !ok || y.Sign() == 0 {
			return nil, false
		}
		q := new(big.Float).SetPrec(prec).Quo(x, y)
		t, _ := q.Int(nil)
		r := new(big.Float).SetPrec(prec).SetInt(t)
		r.Mul(r, y)
		return r.Sub(x, r), true
	case kindAbs:
		x, ok := AsFloat(e.x, prec)
		if !ok {
			return nil, false
		}
		return x.Abs(x), true
	case kindSin, kindCos, kindTan:
		x, ok := AsFloat(e.x, prec)
		if !ok {
			return nil, false
		}
		f, _ := x.Float64()
		switch e.kind {
		case kindSin:
			f = math.Sin(f)
		case kindCos:
			f = math.Cos(f)
		default:
			f = math.Tan(f)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, false
		}
		return new(big.Float).SetPrec(prec).SetFloat64(f), true
	}
	panic("guac: invalid expression kind in AsFloat")
}

// floatPow computes b^p in big.Float. A negative base works only for
// integer exponents; bigfloat.Pow handles the rest.
func floatPow(b, p *big.Float, prec uint) (*big.Float, bool) {
	if b.Sign() == 0 {
		if p.Sign() <= 0 {
			return nil, false
		}
		return new(big.Float).SetPrec(prec), true
	}
	neg := false
	if b.Signbit() {
		if !p.IsInt() {
			return nil, false
		}
		n, _ := p.Int(nil)
		neg = n.Bit(0) == 1
		b = new(big.Float).SetPrec(prec).Abs(b)
	}
	r := bigfloat.Pow(new(big.Float).SetPrec(prec), b, p)
	if neg {
		r.Neg(r)
	}
	return r, true
}
