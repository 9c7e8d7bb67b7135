package guac

import (
	"math/big"
	"sort"
)

// Simplify rewrites an expression into its canonical form. Children
// simplify before their parents; nested sums and products flatten;
// rational children fold; like terms and like bases combine; identity
// elements disappear; sum and product children sort into the canonical
// total order. Simplify is idempotent, and structurally equivalent
// inputs simplify to equal trees regardless of child order.
//
// It fails with *UndefinedError on 0^0 and with *ZeroDivisionError when
// folding forces a division by exactly zero, e.g. 0^-2 or 5 mod 0. The
// input is never mutated.
func Simplify(e *Expr) (*Expr, error) {
	switch e.kind {
	case kindNum, kindConst, kindVar:
		return e, nil
	case kindSum:
		return simplifySum(e.kids)
	case kindProd:
		return simplifyProduct(e.kids)
	case kindPow:
		b, err := Simplify(e.x)
		if err != nil {
			return nil, err
		}
		p, err := Simplify(e.y)
		if err != nil {
			return nil, err
		}
		return simplifyPower(b, p)
	case kindLog:
		b, err := Simplify(e.x)
		if err != nil {
			return nil, err
		}
		a, err := Simplify(e.y)
		if err != nil {
			return nil, err
		}
		return simplifyLog(b, a)
	case kindMod:
		x, err := Simplify(e.x)
		if err != nil {
			return nil, err
		}
		y, err := Simplify(e.y)
		if err != nil {
			return nil, err
		}
		if x.isNum() && y.isNum() {
			r, err := modRat(x.rat, y.rat)
			if err != nil {
				return nil, err
			}
			return Number(r), nil
		}
		return NewMod(x, y), nil
	case kindAbs, kindSin, kindCos, kindTan:
		x, err := Simplify(e.x)
		if err != nil {
			return nil, err
		}
		return simplifyUnary(e.kind, x), nil
	}
	panic("guac: invalid expression kind in Simplify")
}

// simplifySum canonicalizes a sum: flatten, fold rationals, merge like
// terms by adding coefficients, drop zeros, sort.
func simplifySum(terms []*Expr) (*Expr, error) {
	acc := new(big.Rat)
	type bucket struct {
		coeff *big.Rat
		rest  []*Expr
	}
	var buckets []*bucket
	var walk func(ts []*Expr) error
	walk = func(ts []*Expr) error {
		for _, t := range ts {
			s, err := Simplify(t)
			if err != nil {
				return err
			}
			if s.kind == kindSum {
				if err := walk(s.kids); err != nil {
					return err
				}
				continue
			}
			coeff, rest := s.splitCoeff()
			if len(rest) == 0 {
				acc.Add(acc, coeff)
				continue
			}
			merged := false
			for _, b := range buckets {
				if sameFactors(b.rest, rest) {
					b.coeff.Add(b.coeff, coeff)
					merged = true
					break
				}
			}
			if !merged {
				buckets = append(buckets, &bucket{coeff: coeff, rest: rest})
			}
		}
		return nil
	}
	if err := walk(terms); err != nil {
		return nil, err
	}

	var out []*Expr
	if acc.Sign() != 0 {
		out = append(out, Number(acc))
	}
	for _, b := range buckets {
		switch {
		case b.coeff.Sign() == 0:
			// Terms cancelled.
		case b.coeff.Cmp(ratOne) == 0 && len(b.rest) == 1:
			out = append(out, b.rest[0])
		case b.coeff.Cmp(ratOne) == 0:
			out = append(out, NewProduct(b.rest...))
		default:
			kids := append([]*Expr{Number(b.coeff)}, b.rest...)
			out = append(out, NewProduct(kids...))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	switch len(out) {
	case 0:
		return Int(0), nil
	case 1:
		return out[0], nil
	}
	return &Expr{kind: kindSum, kids: out}, nil
}

// simplifyProduct canonicalizes a product: flatten, fold rationals into
// one leading coefficient, merge factors sharing a base into a power
// with the summed exponent, drop exponent-0 factors, collapse on a zero
// coefficient, sort.
func simplifyProduct(factors []*Expr) (*Expr, error) {
	coeff := new(big.Rat).Set(ratOne)
	type bucket struct {
		base *Expr
		exps []*Expr
	}
	var buckets []*bucket
	var walk func(fs []*Expr) error
	walk = func(fs []*Expr) error {
		for _, f := range fs {
			s, err := Simplify(f)
			if err != nil {
				return err
			}
			if s.kind == kindProd {
				if err := walk(s.kids); err != nil {
					return err
				}
				continue
			}
			if s.kind == kindNum {
				coeff.Mul(coeff, s.rat)
				continue
			}
			base, exp := s.base(), s.exponent()
			merged := false
			for _, b := range buckets {
				if b.base.Equal(base) {
					b.exps = append(b.exps, exp)
					merged = true
					break
				}
			}
			if !merged {
				buckets = append(buckets, &bucket{base: base, exps: []*Expr{exp}})
			}
		}
		return nil
	}
	if err := walk(factors); err != nil {
		return nil, err
	}
	if coeff.Sign() == 0 {
		return Int(0), nil
	}

	var out []*Expr
	for _, b := range buckets {
		exp, err := simplifySum(b.exps)
		if err != nil {
			return nil, err
		}
		f, err := simplifyPower(b.base, exp)
		if err != nil {
			return nil, err
		}
		switch {
		case f.isNum():
			coeff.Mul(coeff, f.rat)
		case f.kind == kindProd:
			// A power fold produced a product; absorb its factors.
			for _, k := range f.kids {
				if k.isNum() {
					coeff.Mul(coeff, k.rat)
				} else {
					out = append(out, k)
				}
			}
		default:
			out = append(out, f)
		}
	}
	if coeff.Sign() == 0 {
		return Int(0), nil
	}
	if coeff.Cmp(ratOne) != 0 {
		out = append(out, Number(coeff))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	switch len(out) {
	case 0:
		return Int(1), nil
	case 1:
		return out[0], nil
	}
	return &Expr{kind: kindProd, kids: out}, nil
}

// simplifyPower canonicalizes a power of two already-simplified
// operands. x^1 is x; x^0 is 1 except that 0^0 is undefined; a power of
// a power collapses into one power with the multiplied exponent; a
// rational raised to a rational folds exactly for integer exponents and
// for exact roots, and is otherwise retained unevaluated.
func simplifyPower(base, exp *Expr) (*Expr, error) {
	switch {
	case exp.isOne():
		return base, nil
	case exp.isZero():
		if base.isZero() {
			return nil, &UndefinedError{Op: "pow", Detail: "0^0"}
		}
		return Int(1), nil
	case base.kind == kindPow:
		merged, err := simplifyProduct([]*Expr{base.y, exp})
		if err != nil {
			return nil, err
		}
		return simplifyPower(base.x, merged)
	case base.isNum() && exp.isNum():
		return foldNumPower(base.rat, exp.rat)
	}
	return NewPower(base, exp), nil
}

// foldNumPower computes b^e exactly where possible. Integer exponents
// always fold; fractional exponents fold only when the numerator and
// denominator of the base both have exact integer roots of the
// exponent's denominator. Anything else is retained unevaluated.
func foldNumPower(b, e *big.Rat) (*Expr, error) {
	if e.IsInt() {
		return intPower(b, e.Num())
	}
	if b.Sign() == 0 {
		if e.Sign() < 0 {
			return nil, &ZeroDivisionError{Op: "pow"}
		}
		return Int(0), nil
	}
	q := e.Denom()
	if !q.IsInt64() {
		return NewPower(Number(b), Number(e)), nil
	}
	neg := b.Sign() < 0
	if neg && q.Int64()%2 == 0 {
		// Even root of a negative base: complex, retained.
		return NewPower(Number(b), Number(e)), nil
	}
	nr, ok := iroot(new(big.Int).Abs(b.Num()), q.Int64())
	if !ok {
		return NewPower(Number(b), Number(e)), nil
	}
	dr, ok := iroot(new(big.Int).Set(b.Denom()), q.Int64())
	if !ok {
		return NewPower(Number(b), Number(e)), nil
	}
	if neg {
		nr.Neg(nr)
	}
	root := new(big.Rat).SetFrac(nr, dr)
	return intPower(root, e.Num())
}

// intPower computes b^n for an integer n of any size and sign. It fails
// with *ZeroDivisionError for a zero base and negative exponent.
func intPower(b *big.Rat, n *big.Int) (*Expr, error) {
	if n.Sign() < 0 {
		if b.Sign() == 0 {
			return nil, &ZeroDivisionError{Op: "pow"}
		}
		b = new(big.Rat).Inv(b)
		n = new(big.Int).Neg(n)
	}
	num := new(big.Int).Exp(b.Num(), n, nil)
	den := new(big.Int).Exp(b.Denom(), n, nil)
	return Number(new(big.Rat).SetFrac(num, den)), nil
}

// iroot returns the exact q-th root of a non-negative integer, or false
// if x is not a perfect q-th power.
func iroot(x *big.Int, q int64) (*big.Int, bool) {
	if x.Sign() == 0 || x.Cmp(bigOne) == 0 {
		return new(big.Int).Set(x), true
	}
	bq := big.NewInt(q)
	lo := big.NewInt(1)
	hi := new(big.Int).Lsh(bigOne, uint(x.BitLen()/int(q))+1)
	for lo.Cmp(hi) < 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Add(mid, bigOne)
		mid.Rsh(mid, 1)
		if new(big.Int).Exp(mid, bq, nil).Cmp(x) <= 0 {
			lo.Set(mid)
		} else {
			hi.Sub(mid, bigOne)
		}
	}
	if new(big.Int).Exp(lo, bq, nil).Cmp(x) == 0 {
		return lo, true
	}
	return nil, false
}

// simplifyLog folds the two structural cases log_b(1) = 0 and
// log_b(b) = 1, and retains everything else. Constants stay opaque:
// ln(e) folds because the base matches structurally, but no deeper
// logarithm identity applies.
func simplifyLog(base, arg *Expr) (*Expr, error) {
	switch {
	case arg.isOne():
		return Int(0), nil
	case base.Equal(arg):
		return Int(1), nil
	}
	return NewLog(base, arg), nil
}

// simplifyUnary folds the numeric special cases of abs and the
// trigonometric functions; all other operands are retained
// symbolically.
func simplifyUnary(kind exprKind, x *Expr) *Expr {
	switch kind {
	case kindAbs:
		if x.isNum() {
			return Number(new(big.Rat).Abs(x.rat))
		}
	case kindSin, kindTan:
		if x.isZero() {
			return Int(0)
		}
	case kindCos:
		if x.isZero() {
			return Int(1)
		}
	}
	return &Expr{kind: kind, x: x}
}
