package guac

import "math/big"

// Shared small values. These are never mutated.
var (
	bigOne = big.NewInt(1)
	ratOne = big.NewRat(1, 1)
)

func subRat(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }

func mulRat(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }

// divRat divides two rationals exactly. It fails with
// *ZeroDivisionError on a zero divisor.
func divRat(x, y *big.Rat) (*big.Rat, error) {
	if y.Sign() == 0 {
		return nil, &ZeroDivisionError{Op: "div"}
	}
	return new(big.Rat).Quo(x, y), nil
}

// modRat computes the remainder of x divided by y, truncated toward
// zero, so that x == y*trunc(x/y) + modRat(x, y). It fails with
// *ZeroDivisionError on a zero modulus.
func modRat(x, y *big.Rat) (*big.Rat, error) {
	q, err := divRat(x, y)
	if err != nil {
		return nil, &ZeroDivisionError{Op: "mod"}
	}
	t := new(big.Int).Quo(q.Num(), q.Denom())
	return subRat(x, mulRat(y, new(big.Rat).SetInt(t))), nil
}
