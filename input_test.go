package guac_test

import (
	"errors"
	"testing"

	"github.com/guacalc/guac"
)

func TestParseInput(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		radix    guac.Radix
		want     *guac.Expr
		override guac.Radix
	}{
		{"int", "42", guac.Decimal, guac.Int(42), 0},
		{"negative", "-5", guac.Decimal, guac.Int(-5), 0},
		{"fraction", ".5", guac.Decimal, guac.Rat(1, 2), 0},
		{"hex", "ff", guac.Hex, guac.Int(255), 0},
		{"prefix", "hex#ff", guac.Decimal, guac.Int(255), guac.Hex},
		{"digit-prefix", "2#1010", guac.Decimal, guac.Int(10), guac.Binary},
		{"dozenal-prefix", "doz#10", guac.Decimal, guac.Int(12), guac.Dozenal},
		{"constant", "pi", guac.Decimal, guac.Constant(guac.Pi), 0},
		{"glyph", "π", guac.Decimal, guac.Constant(guac.Pi), 0},
		{"euler", "e", guac.Decimal, guac.Constant(guac.E), 0},
		// In bases above fourteen, e is the digit fourteen.
		{"e-digit", "e", guac.Hex, guac.Int(14), 0},
		{"variable", "x1", guac.Decimal, guac.Variable("x1"), 0},
		{"underscore", "_tmp", guac.Decimal, guac.Variable("_tmp"), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, override, err := guac.ParseInput(c.text, c.radix)
			if err != nil {
				t.Fatalf("ParseInput(%q): %v", c.text, err)
			}
			if !e.Equal(c.want) {
				t.Errorf("got %v, want %v", e, c.want)
			}
			if override != c.override {
				t.Errorf("override is %v, want %v", override, c.override)
			}
		})
	}
}

func TestParseInputErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, _, err := guac.ParseInput("", guac.Decimal)
		var eerr *guac.EmptyInputError
		if !errors.As(err, &eerr) {
			t.Errorf("got %v, want *EmptyInputError", err)
		}
	})
	t.Run("empty-after-prefix", func(t *testing.T) {
		_, _, err := guac.ParseInput("hex#", guac.Decimal)
		var eerr *guac.EmptyInputError
		if !errors.As(err, &eerr) {
			t.Errorf("got %v, want *EmptyInputError", err)
		}
	})
	cases := []struct {
		name  string
		text  string
		radix guac.Radix
	}{
		{"bad-prefix", "bad#1", guac.Decimal},
		{"bad-digit", "12a", guac.Decimal},
		{"bad-variable", "x$", guac.Decimal},
		{"lone-sign", "-", guac.Decimal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := guac.ParseInput(c.text, c.radix)
			var derr *guac.DigitError
			if !errors.As(err, &derr) {
				t.Errorf("ParseInput(%q) = %v, want *DigitError", c.text, err)
			}
		})
	}
}
