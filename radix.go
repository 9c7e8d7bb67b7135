package guac

import (
	"math/big"
	"strconv"
	"strings"
)

// Digits is the full digit alphabet, in order of value. A radix n uses
// the first n characters as its digits.
const Digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!@"

// abbrevs contains the three-letter radix abbreviations. Element k is
// the abbreviation for radix k+2.
var abbrevs = [63]string{
	"bin", "tri", "qua", "qui", "sex", "sep", "oct", "non", "dec", "ele",
	"doz", "bak", "bis", "trq", "hex", "sub", "trs", "unt", "vig", "tis",
	"bie", "unb", "tet", "pen", "bik", "trn", "ter", "utt", "pet", "unp",
	"ttr", "trl", "bib", "pnt", "nif", "unn", "bit", "trk", "pec", "upn",
	"hes", "unh", "tel", "pnn", "bnb", "ubn", "hec", "hep", "peg", "trb",
	"tek", "unr", "hen", "pel", "het", "tin", "bnt", "ubt", "heg", "unx",
	"bip", "hpt", "occ",
}

// Radix is a numeral base between 2 and 64 inclusive. It controls only
// how values encode to and decode from text, never the values
// themselves. The zero Radix is invalid and means "no radix" where a
// Radix is optional.
type Radix int

// Radices with common names.
const (
	Binary  Radix = 2
	Octal   Radix = 8
	Decimal Radix = 10
	Dozenal Radix = 12
	Hex     Radix = 16
)

// NewRadix converts an integer to a Radix. ok is false if n is outside
// [2, 64].
func NewRadix(n int) (r Radix, ok bool) {
	if n < 2 || n > 64 {
		return 0, false
	}
	return Radix(n), true
}

// ParseRadix parses a radix name: either a three-letter abbreviation
// like "hex", or a single digit character whose value is the radix,
// like "g" for 16. ok is false if s is neither.
func ParseRadix(s string) (r Radix, ok bool) {
	if len(s) == 3 {
		for i, a := range abbrevs {
			if a == s {
				return Radix(i + 2), true
			}
		}
		return 0, false
	}
	c := []rune(s)
	if len(c) != 1 {
		return 0, false
	}
	k := digitVal(c[0])
	if k < 2 {
		return 0, false
	}
	return Radix(k), true
}

// N returns the radix as an integer.
func (r Radix) N() int {
	return int(r)
}

// Valid reports whether r is in [2, 64].
func (r Radix) Valid() bool {
	return 2 <= r && r <= 64
}

// Abbrev returns the radix's three-letter abbreviation, e.g. "dec" for 10.
func (r Radix) Abbrev() string {
	return abbrevs[r-2]
}

func (r Radix) String() string {
	if !r.Valid() {
		return "radix(" + strconv.Itoa(int(r)) + ")"
	}
	return r.Abbrev()
}

// digitVal returns the value of a digit character, or -1 if c is not in
// the digit alphabet.
func digitVal(c rune) int {
	return strings.IndexRune(Digits, c)
}

// expMarker reports whether c marks an exponent suffix in radix r. The
// marker ᴇ works in every radix; e and E work in radices small enough
// that they are not digits.
func (r Radix) expMarker(c rune) bool {
	switch c {
	case 'ᴇ':
		return true
	case 'e':
		return r <= 14
	case 'E':
		return r <= 40
	}
	return false
}

// FormatInt renders an integer as digits in radix r. Integers terminate
// in every radix.
func (r Radix) FormatInt(x *big.Int) string {
	if x.Sign() == 0 {
		return "0"
	}
	var b strings.Builder
	n := new(big.Int).Abs(x)
	base := big.NewInt(int64(r))
	m := new(big.Int)
	var digits []byte
	for n.Sign() != 0 {
		n.QuoRem(n, base, m)
		digits = append(digits, Digits[m.Int64()])
	}
	if x.Sign() < 0 {
		b.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}
	return b.String()
}

// Terminates reports whether x has a finite digit expansion in radix r,
// i.e. whether every prime factor of x's reduced denominator divides r.
func (r Radix) Terminates(x *big.Rat) bool {
	d := new(big.Int).Set(x.Denom())
	b := big.NewInt(int64(r))
	g := new(big.Int)
	rem := new(big.Int)
	for {
		g.GCD(nil, nil, d, b)
		if g.Cmp(bigOne) == 0 {
			break
		}
		for {
			q, m := new(big.Int).QuoRem(d, g, rem)
			if m.Sign() != 0 {
				break
			}
			d.Set(q)
		}
	}
	return d.Cmp(bigOne) == 0
}

// FormatRat renders a rational as a digit string in radix r. A value
// whose expansion terminates renders in full in either mode. One that
// does not terminate renders truncated to fracDigits fractional digits
// when approx is true, and fails with *NonTerminatingError when approx
// is false; the caller can recover by switching the entry to
// approximate display.
func (r Radix) FormatRat(x *big.Rat, approx bool, fracDigits int) (string, error) {
	terminates := r.Terminates(x)
	if !terminates && !approx {
		return "", &NonTerminatingError{Radix: r}
	}
	var b strings.Builder
	if x.Sign() < 0 {
		b.WriteByte('-')
		x = new(big.Rat).Abs(x)
	}
	ip := new(big.Int).Quo(x.Num(), x.Denom())
	b.WriteString(r.FormatInt(ip))
	frac := new(big.Rat).Sub(x, new(big.Rat).SetInt(ip))
	if frac.Sign() == 0 {
		return b.String(), nil
	}
	b.WriteByte('.')
	base := new(big.Rat).SetInt64(int64(r))
	d := new(big.Int)
	for i := 0; frac.Sign() != 0; i++ {
		if !terminates && i >= fracDigits {
			break
		}
		frac.Mul(frac, base)
		d.Quo(frac.Num(), frac.Denom())
		b.WriteByte(Digits[d.Int64()])
		frac.Sub(frac, new(big.Rat).SetInt(d))
	}
	return b.String(), nil
}

// ParseRat parses a digit string in radix r into an exact rational. The
// accepted form is an optional sign, digits with an optional fractional
// point, and an optional exponent suffix whose digits are interpreted
// in the same radix: "-1a.3ᴇ-2" in hex is -0x1a.3 × 16^-2. It fails
// with *EmptyInputError when s contains no digits, *DigitError on a
// character outside the radix alphabet, and *ExponentError on an
// exponent too large to represent.
func (r Radix) ParseRat(s string) (*big.Rat, error) {
	mant := new(big.Int)
	base := big.NewInt(int64(r))
	var (
		neg, any, dot bool
		scale         int
		pos           int
	)
	runes := []rune(s)
	i := 0
	if i < len(runes) && (runes[i] == '-' || runes[i] == '+') {
		neg = runes[i] == '-'
		i++
	}
	for ; i < len(runes); i++ {
		c := runes[i]
		pos = i + 1
		switch {
		case c == '.':
			if dot {
				return nil, &DigitError{Digit: c, Radix: r, Pos: pos}
			}
			dot = true
		case r.expMarker(c):
			exp, err := r.parseExp(runes[i+1:], pos+1)
			if err != nil {
				return nil, err
			}
			return ratFromParts(mant, neg, any, scale, exp, base, r)
		default:
			k := digitVal(c)
			if k < 0 || k >= int(r) {
				return nil, &DigitError{Digit: c, Radix: r, Pos: pos}
			}
			mant.Mul(mant, base)
			mant.Add(mant, big.NewInt(int64(k)))
			any = true
			if dot {
				scale++
			}
		}
	}
	return ratFromParts(mant, neg, any, scale, new(big.Int), base, r)
}

// parseExp parses the digits of an exponent suffix, in radix r. The
// exponent accumulates in a big.Int so it can never wrap; a magnitude
// past 63 bits fails with *ExponentError rather than producing a value
// the shift arithmetic cannot represent.
func (r Radix) parseExp(runes []rune, pos int) (*big.Int, error) {
	neg := false
	i := 0
	if i < len(runes) && (runes[i] == '-' || runes[i] == '+') {
		neg = runes[i] == '-'
		i++
	}
	if i >= len(runes) {
		return nil, &EmptyInputError{}
	}
	exp := new(big.Int)
	base := big.NewInt(int64(r))
	for ; i < len(runes); i++ {
		k := digitVal(runes[i])
		if k < 0 || k >= int(r) {
			return nil, &DigitError{Digit: runes[i], Radix: r, Pos: pos + i}
		}
		exp.Mul(exp, base)
		exp.Add(exp, big.NewInt(int64(k)))
	}
	if exp.BitLen() > 63 {
		return nil, &ExponentError{Radix: r}
	}
	if neg {
		exp.Neg(exp)
	}
	return exp, nil
}

func ratFromParts(mant *big.Int, neg, any bool, scale int, exp, base *big.Int, r Radix) (*big.Rat, error) {
	if !any {
		return nil, &EmptyInputError{}
	}
	if neg {
		mant.Neg(mant)
	}
	x := new(big.Rat).SetInt(mant)
	shift := new(big.Int).Sub(exp, big.NewInt(int64(scale)))
	if shift.Sign() != 0 {
		p := new(big.Int).Exp(base, new(big.Int).Abs(shift), nil)
		if shift.Sign() > 0 {
			x.Mul(x, new(big.Rat).SetInt(p))
		} else {
			x.Quo(x, new(big.Rat).SetInt(p))
		}
	}
	return x, nil
}
