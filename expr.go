package guac

import (
	"math/big"
	"sort"
	"strconv"
)

// exprKind discriminates the variants of Expr.
type exprKind int8

const (
	kindNum   exprKind = iota // rational leaf
	kindConst                 // named constant leaf
	kindVar                   // variable leaf
	kindSum                   // variadic sum
	kindProd                  // variadic product
	kindPow                   // x^y
	kindLog                   // log base x of y
	kindMod                   // x mod y
	kindAbs                   // |x|
	kindSin                   // sin x
	kindCos                   // cos x
	kindTan                   // tan x
)

// Expr is an algebraic expression: an immutable tree of rationals,
// constants, variables, and operator applications. Expressions are
// never mutated after construction; the simplifier and the operator
// library always build new nodes. Constructors build the tree exactly
// as given, without simplifying.
type Expr struct {
	kind exprKind

	rat  *big.Rat // kindNum
	con  Const    // kindConst
	name string   // kindVar

	kids []*Expr // kindSum, kindProd
	x, y *Expr   // kindPow, kindLog, kindMod; unary operand in x
}

// Int returns the expression n.
func Int(n int64) *Expr {
	return &Expr{kind: kindNum, rat: new(big.Rat).SetInt64(n)}
}

// Rat returns the expression p/q in lowest terms. Panics if q is zero.
func Rat(p, q int64) *Expr {
	if q == 0 {
		panic("guac: rational with zero denominator")
	}
	return &Expr{kind: kindNum, rat: big.NewRat(p, q)}
}

// Number returns the expression x. The value is copied.
func Number(x *big.Rat) *Expr {
	return &Expr{kind: kindNum, rat: new(big.Rat).Set(x)}
}

// Variable returns the expression naming a free variable.
func Variable(name string) *Expr {
	return &Expr{kind: kindVar, name: name}
}

// Constant returns the expression for a named constant.
func Constant(c Const) *Expr {
	return &Expr{kind: kindConst, con: c}
}

// NewSum returns the sum of terms, unsimplified.
func NewSum(terms ...*Expr) *Expr {
	return &Expr{kind: kindSum, kids: terms}
}

// NewProduct returns the product of factors, unsimplified.
func NewProduct(factors ...*Expr) *Expr {
	return &Expr{kind: kindProd, kids: factors}
}

// NewPower returns base raised to exp, unsimplified.
func NewPower(base, exp *Expr) *Expr {
	return &Expr{kind: kindPow, x: base, y: exp}
}

// NewLog returns the logarithm of arg in the given base, unsimplified.
func NewLog(base, arg *Expr) *Expr {
	return &Expr{kind: kindLog, x: base, y: arg}
}

// NewMod returns x modulo y, unsimplified.
func NewMod(x, y *Expr) *Expr {
	return &Expr{kind: kindMod, x: x, y: y}
}

// NewAbs returns the absolute value of x, unsimplified.
func NewAbs(x *Expr) *Expr {
	return &Expr{kind: kindAbs, x: x}
}

// NewSin returns the sine of x in radians, unsimplified.
func NewSin(x *Expr) *Expr {
	return &Expr{kind: kindSin, x: x}
}

// NewCos returns the cosine of x in radians, unsimplified.
func NewCos(x *Expr) *Expr {
	return &Expr{kind: kindCos, x: x}
}

// NewTan returns the tangent of x in radians, unsimplified.
func NewTan(x *Expr) *Expr {
	return &Expr{kind: kindTan, x: x}
}

// Rational returns the expression's value if it is a rational leaf.
func (e *Expr) Rational() (*big.Rat, bool) {
	if e.kind != kindNum {
		return nil, false
	}
	return new(big.Rat).Set(e.rat), true
}

// isNum reports whether e is a rational leaf.
func (e *Expr) isNum() bool {
	return e.kind == kindNum
}

// isZero reports whether e is exactly the rational 0.
func (e *Expr) isZero() bool {
	return e.kind == kindNum && e.rat.Sign() == 0
}

// isOne reports whether e is exactly the rational 1.
func (e *Expr) isOne() bool {
	return e.kind == kindNum && e.rat.Cmp(ratOne) == 0
}

// Equal reports whether two expressions are structurally equal. Over
// simplified expressions this is order-independent for sums and
// products, because the simplifier sorts their children canonically.
func (e *Expr) Equal(o *Expr) bool {
	return e.Cmp(o) == 0
}

// classRank orders the broad classes of expression: rationals before
// constants before variables before compounds.
func (e *Expr) classRank() int {
	switch e.kind {
	case kindNum:
		return 0
	case kindConst:
		return 1
	case kindVar:
		return 2
	default:
		return 3
	}
}

// Cmp compares two expressions in the canonical total order: rationals
// first (by value), then constants (by identity), then variables (by
// name), then compounds (by kind, then children). The order is total:
// Cmp returns 0 exactly for structurally equal trees.
func (e *Expr) Cmp(o *Expr) int {
	if r, s := e.classRank(), o.classRank(); r != s {
		return cmpInt(r, s)
	}
	switch e.kind {
	case kindNum:
		return e.rat.Cmp(o.rat)
	case kindConst:
		return cmpInt(int(e.con), int(o.con))
	case kindVar:
		switch {
		case e.name < o.name:
			return -1
		case e.name > o.name:
			return 1
		}
		return 0
	}
	if e.kind != o.kind {
		return cmpInt(int(e.kind), int(o.kind))
	}
	switch e.kind {
	case kindSum, kindProd:
		for i := 0; i < len(e.kids) && i < len(o.kids); i++ {
			if c := e.kids[i].Cmp(o.kids[i]); c != 0 {
				return c
			}
		}
		return cmpInt(len(e.kids), len(o.kids))
	case kindAbs, kindSin, kindCos, kindTan:
		return e.x.Cmp(o.x)
	case kindPow, kindLog, kindMod:
		if c := e.x.Cmp(o.x); c != 0 {
			return c
		}
		return e.y.Cmp(o.y)
	}
	panic("guac: invalid expression kind " + strconv.Itoa(int(e.kind)))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ContainsVar reports whether any subexpression is a variable.
func (e *Expr) ContainsVar() bool {
	switch e.kind {
	case kindNum, kindConst:
		return false
	case kindVar:
		return true
	case kindSum, kindProd:
		for _, k := range e.kids {
			if k.ContainsVar() {
				return true
			}
		}
		return false
	case kindAbs, kindSin, kindCos, kindTan:
		return e.x.ContainsVar()
	default:
		return e.x.ContainsVar() || e.y.ContainsVar()
	}
}

// Vars returns the sorted set of variable names used in the expression.
func (e *Expr) Vars() []string {
	set := make(map[string]bool)
	e.vars(set)
	if len(set) == 0 {
		return nil
	}
	v := make([]string, 0, len(set))
	for name := range set {
		v = append(v, name)
	}
	sort.Strings(v)
	return v
}

func (e *Expr) vars(set map[string]bool) {
	switch e.kind {
	case kindVar:
		set[e.name] = true
	case kindSum, kindProd:
		for _, k := range e.kids {
			k.vars(set)
		}
	case kindAbs, kindSin, kindCos, kindTan:
		e.x.vars(set)
	case kindPow, kindLog, kindMod:
		e.x.vars(set)
		e.y.vars(set)
	}
}

// terms views the expression as a list of summands: a sum yields its
// children, anything else yields itself.
func (e *Expr) terms() []*Expr {
	if e.kind == kindSum {
		return e.kids
	}
	return []*Expr{e}
}

// factors views the expression as a list of multiplicands: a product
// yields its children, anything else yields itself. It does not factor.
func (e *Expr) factors() []*Expr {
	if e.kind == kindProd {
		return e.kids
	}
	return []*Expr{e}
}

// base returns the base of a power, or the expression itself.
func (e *Expr) base() *Expr {
	if e.kind == kindPow {
		return e.x
	}
	return e
}

// exponent returns the exponent of a power, or 1.
func (e *Expr) exponent() *Expr {
	if e.kind == kindPow {
		return e.y
	}
	return Int(1)
}

// splitCoeff splits a simplified term into its rational coefficient and
// its remaining factors. A bare rational splits into (itself, nil).
func (e *Expr) splitCoeff() (*big.Rat, []*Expr) {
	coeff := new(big.Rat).Set(ratOne)
	var rest []*Expr
	for _, f := range e.factors() {
		if f.kind == kindNum {
			coeff.Mul(coeff, f.rat)
		} else {
			rest = append(rest, f)
		}
	}
	return coeff, rest
}

// sameFactors reports whether two factor lists are structurally equal
// element-wise. Both lists must come from simplified expressions, whose
// factors are canonically sorted.
func sameFactors(a, b []*Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
