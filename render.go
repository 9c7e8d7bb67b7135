package guac

import (
	"math/big"
	"strings"
)

// String renders the expression exactly, in decimal.
func (e *Expr) String() string {
	return e.render(Decimal)
}

// grouping returns the expression's grouping priority; a child renders
// inside parentheses when its priority exceeds its parent's. Mod binds
// like a product, so a sum operand always parenthesizes under it.
func (e *Expr) grouping() int {
	switch e.kind {
	case kindPow:
		return 1
	case kindProd, kindMod:
		return 2
	case kindSum:
		return 3
	default:
		return 0
	}
}

// render renders the expression exactly as text in the given radix.
// Rationals whose expansion terminates render as digit strings, all
// others as numerator/denominator pairs; rendering itself never fails.
func (e *Expr) render(r Radix) string {
	switch e.kind {
	case kindNum:
		return r.renderRat(e.rat)
	case kindConst:
		return e.con.String()
	case kindVar:
		return e.name
	case kindSum:
		return e.renderSum(r)
	case kindProd:
		return e.renderProduct(r)
	case kindPow:
		return e.child(e.x, r) + "^" + e.child(e.y, r)
	case kindLog:
		if e.x.kind == kindConst && e.x.con == E {
			return "ln(" + e.y.render(r) + ")"
		}
		return "log_" + e.child(e.x, r) + "(" + e.y.render(r) + ")"
	case kindMod:
		return e.child(e.x, r) + " mod " + e.child(e.y, r)
	case kindAbs:
		return "|" + e.x.render(r) + "|"
	case kindSin:
		return "sin(" + e.x.render(r) + ")"
	case kindCos:
		return "cos(" + e.x.render(r) + ")"
	case kindTan:
		return "tan(" + e.x.render(r) + ")"
	}
	panic("guac: invalid expression kind in render")
}

// child renders a subexpression, parenthesized when its grouping
// priority requires it. A Mod child always parenthesizes: the spelled
// operator has no visual binding of its own.
func (e *Expr) child(c *Expr, r Radix) string {
	s := c.render(r)
	if c.grouping() > e.grouping() || c.kind == kindMod || (c.kind == kindNum && c.rat.Sign() < 0) {
		return "(" + s + ")"
	}
	return s
}

// renderSum joins terms with + and renders negative-coefficient terms
// subtracted instead.
func (e *Expr) renderSum(r Radix) string {
	var b strings.Builder
	for i, t := range e.kids {
		coeff, _ := t.splitCoeff()
		if coeff.Sign() < 0 {
			b.WriteByte('-')
			t = negated(t)
		} else if i > 0 {
			b.WriteByte('+')
		}
		b.WriteString(e.child(t, r))
	}
	return b.String()
}

// negated returns -t for rendering purposes. Negating a simplified term
// cannot introduce a simplification error.
func negated(t *Expr) *Expr {
	n, err := Neg(t)
	if err != nil {
		panic("guac: negating a simplified term failed: " + err.Error())
	}
	return n
}

// renderProduct splits factors into a numerator and a denominator by
// exponent sign, joining with · and /.
func (e *Expr) renderProduct(r Radix) string {
	var numer, denom []string
	for _, f := range e.kids {
		if f.kind == kindNum {
			numer = append(numer, r.renderRat(f.rat))
			continue
		}
		exp := f.exponent()
		if exp.kind == kindNum && exp.rat.Sign() < 0 {
			inv, err := Recip(f)
			if err != nil {
				panic("guac: inverting a simplified factor failed: " + err.Error())
			}
			denom = append(denom, e.child(inv, r))
			continue
		}
		numer = append(numer, e.child(f, r))
	}
	// A coefficient of -1 or 1 next to other factors reduces to a sign.
	if len(numer) > 1 {
		switch numer[0] {
		case "1":
			numer = numer[1:]
		case "-1":
			numer = append([]string{"-" + numer[1]}, numer[2:]...)
		}
	}
	s := strings.Join(numer, "·")
	if len(numer) == 0 {
		s = "1"
	}
	switch len(denom) {
	case 0:
		return s
	case 1:
		return s + "/" + denom[0]
	}
	return s + "/(" + strings.Join(denom, "·") + ")"
}

// renderRat renders a rational exactly: as plain digits when its
// expansion terminates in the radix, as numerator/denominator when not.
func (r Radix) renderRat(x *big.Rat) string {
	s, err := r.FormatRat(x, false, 0)
	if err == nil {
		return s
	}
	return r.FormatInt(x.Num()) + "/" + r.FormatInt(x.Denom())
}

// renderApprox renders the expression's approximate value as truncated
// digits in the radix. When the expression has no numeric value (a free
// variable remains), it falls back to the exact rendering; the value
// itself stays exact regardless.
func (e *Expr) renderApprox(r Radix, prec uint, fracDigits int) string {
	f, ok := AsFloat(e, prec)
	if !ok {
		return e.render(r)
	}
	return r.formatFloat(f, fracDigits)
}

// formatFloat renders a big.Float as digits in radix r, truncating the
// fraction to fracDigits digits and trimming trailing zeros.
func (r Radix) formatFloat(f *big.Float, fracDigits int) string {
	var b strings.Builder
	if f.Signbit() {
		b.WriteByte('-')
		f = new(big.Float).SetPrec(f.Prec()).Abs(f)
	}
	ip, _ := f.Int(nil)
	b.WriteString(r.FormatInt(ip))
	frac := new(big.Float).SetPrec(f.Prec()).Sub(f, new(big.Float).SetPrec(f.Prec()).SetInt(ip))
	if frac.Sign() == 0 {
		return b.String()
	}
	base := new(big.Float).SetPrec(f.Prec()).SetInt64(int64(r))
	digits := make([]byte, 0, fracDigits)
	for i := 0; i < fracDigits && frac.Sign() != 0; i++ {
		frac.Mul(frac, base)
		d, _ := frac.Int(nil)
		k := d.Int64()
		if k > int64(r)-1 {
			// Rounding slop at the last computed digit.
			k = int64(r) - 1
		}
		digits = append(digits, Digits[k])
		frac.Sub(frac, new(big.Float).SetPrec(f.Prec()).SetInt(d))
	}
	for len(digits) > 0 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	if len(digits) == 0 {
		return b.String()
	}
	b.WriteByte('.')
	b.Write(digits)
	return b.String()
}
