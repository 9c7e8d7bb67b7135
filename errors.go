package guac

import "strconv"

// UnderflowError is an error from applying an operator to a stack with
// fewer entries than the operator's arity.
type UnderflowError struct {
	// Op is the operator that was applied.
	Op string
	// Need is the operator's arity.
	Need int
	// Have is the number of entries that were addressable.
	Have int
}

func (err *UnderflowError) Error() string {
	return "stack underflow: " + err.Op + " needs " + strconv.Itoa(err.Need) +
		" entries, have " + strconv.Itoa(err.Have)
}

// ZeroDivisionError is an error from dividing, inverting, or reducing
// modulo an expression which is exactly zero.
type ZeroDivisionError struct {
	// Op is the operator that was applied.
	Op string
}

func (err *ZeroDivisionError) Error() string {
	return err.Op + ": division by zero"
}

// UndefinedError is an error from an operation whose result is
// mathematically undefined, e.g. 0^0 or the logarithm of zero.
type UndefinedError struct {
	// Op is the operator that was applied.
	Op string
	// Detail describes the undefined case.
	Detail string
}

func (err *UndefinedError) Error() string {
	if err.Detail == "" {
		return err.Op + ": undefined result"
	}
	return err.Op + ": " + err.Detail
}

// DigitError is an error from parsing a character that is not a digit
// of the active radix.
type DigitError struct {
	// Digit is the offending character.
	Digit rune
	// Radix is the radix the input was parsed under.
	Radix Radix
	// Pos is the rune position of the digit in the input, starting at 1.
	Pos int
}

func (err *DigitError) Error() string {
	return "invalid digit " + strconv.QuoteRune(err.Digit) + " for radix " +
		err.Radix.String() + " at position " + strconv.Itoa(err.Pos)
}

// ExponentError is an error from parsing an exponent suffix whose
// magnitude is too large to represent.
type ExponentError struct {
	// Radix is the radix the input was parsed under.
	Radix Radix
}

func (err *ExponentError) Error() string {
	return "exponent out of range in radix " + err.Radix.String()
}

// EmptyInputError is an error from parsing input that contains no digits.
type EmptyInputError struct{}

func (err *EmptyInputError) Error() string {
	return "empty input"
}

// NonTerminatingError is an error from rendering a rational whose
// fractional expansion does not terminate in the requested radix while
// the entry displays exactly. It is recoverable: render the entry
// approximately instead.
type NonTerminatingError struct {
	// Radix is the radix the value was rendered under.
	Radix Radix
}

func (err *NonTerminatingError) Error() string {
	return "value does not terminate in radix " + err.Radix.String()
}
