package guac

import (
	"strings"
	"unicode"
)

// ParseInput parses one stack entry's worth of input text under the
// given radix. The accepted grammar is:
//
//	input  = [ radix "#" ] body
//	radix  = three-letter abbreviation | single digit character
//	body   = number | constant name | variable name
//
// A radix prefix such as "hex#ff" overrides the active radix for this
// entry only; the returned Radix is the override, or zero without one.
// A body whose first character is a digit of the active radix (or a
// sign or point leading into one) parses as a number, so in bases above
// fourteen "e" is the digit fourteen rather than Euler's number.
// Otherwise the body names a constant if it matches one, and a free
// variable if not.
//
// It fails with *EmptyInputError or *DigitError, which leave nothing
// changed.
func ParseInput(text string, radix Radix) (*Expr, Radix, error) {
	var override Radix
	body := text
	if i := strings.IndexByte(text, '#'); i >= 0 {
		r, ok := ParseRadix(text[:i])
		if !ok {
			bad := []rune(text[:i] + "#")
			return nil, 0, &DigitError{Digit: bad[0], Radix: radix, Pos: 1}
		}
		override = r
		radix = r
		body = text[i+1:]
	}
	if body == "" {
		return nil, 0, &EmptyInputError{}
	}
	if startsNumber(body, radix) {
		x, err := radix.ParseRat(body)
		if err != nil {
			return nil, 0, err
		}
		return Number(x), override, nil
	}
	if c, ok := constByName(body); ok {
		return Constant(c), override, nil
	}
	for i, r := range body {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return nil, 0, &DigitError{Digit: r, Radix: radix, Pos: i + 1}
	}
	return Variable(body), override, nil
}

// startsNumber reports whether the body's leading characters commit it
// to the number grammar.
func startsNumber(body string, radix Radix) bool {
	runes := []rune(body)
	i := 0
	if runes[i] == '-' || runes[i] == '+' {
		i++
		if i == len(runes) {
			return false
		}
	}
	if runes[i] == '.' {
		i++
		if i == len(runes) {
			return false
		}
	}
	k := digitVal(runes[i])
	return k >= 0 && k < int(radix)
}
