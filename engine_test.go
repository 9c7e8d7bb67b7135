package guac_test

import (
	"errors"
	"testing"

	"github.com/guacalc/guac"
)

func TestPushInput(t *testing.T) {
	c := guac.NewCalc()
	if err := c.PushInput("42", 0); err != nil {
		t.Fatalf("PushInput: %v", err)
	}
	ent, _ := c.At(0)
	if !ent.Expr.Equal(guac.Int(42)) {
		t.Errorf("got %v, want 42", ent.Expr)
	}
	if ent.Radix != 0 {
		t.Errorf("plain input got radix override %v", ent.Radix)
	}
}

func TestPushInputRadixSticks(t *testing.T) {
	t.Run("prefix", func(t *testing.T) {
		// A value entered as hex keeps rendering as hex.
		c := guac.NewCalc()
		if err := c.PushInput("hex#ff", 0); err != nil {
			t.Fatalf("PushInput: %v", err)
		}
		if got := c.Render(0, 0); got != "ff" {
			t.Errorf("rendered %q, want %q", got, "ff")
		}
		if got := c.Render(0, guac.Decimal); got != "255" {
			t.Errorf("rendered %q, want %q", got, "255")
		}
	})
	t.Run("argument", func(t *testing.T) {
		c := guac.NewCalc()
		if err := c.PushInput("12", guac.Hex); err != nil {
			t.Fatalf("PushInput: %v", err)
		}
		ent, _ := c.At(0)
		if !ent.Expr.Equal(guac.Int(18)) {
			t.Errorf("got %v, want 18", ent.Expr)
		}
		if got := c.Render(0, 0); got != "12" {
			t.Errorf("rendered %q, want %q", got, "12")
		}
	})
	t.Run("prefix-wins", func(t *testing.T) {
		c := guac.NewCalc()
		if err := c.PushInput("bin#101", guac.Hex); err != nil {
			t.Fatalf("PushInput: %v", err)
		}
		ent, _ := c.At(0)
		if !ent.Expr.Equal(guac.Int(5)) || ent.Radix != guac.Binary {
			t.Errorf("got %v radix %v, want 5 radix bin", ent.Expr, ent.Radix)
		}
	})
}

func TestPushInputError(t *testing.T) {
	c := guac.NewCalc()
	c.Push(guac.Int(1))
	err := c.PushInput("12a", 0)
	var derr *guac.DigitError
	if !errors.As(err, &derr) {
		t.Fatalf("got %v, want *DigitError", err)
	}
	if c.Len() != 1 {
		t.Errorf("failed input changed the stack")
	}
	c.Undo()
	if c.Len() != 0 {
		t.Errorf("failed input recorded history")
	}
}

func TestApplyRadixPropagates(t *testing.T) {
	// The result of a binary operator keeps the lower operand's radix
	// override, or the upper one's if the lower has none.
	c := guac.NewCalc()
	if err := c.PushInput("10", 0); err != nil {
		t.Fatalf("PushInput: %v", err)
	}
	if err := c.PushInput("hex#a", 0); err != nil {
		t.Fatalf("PushInput: %v", err)
	}
	if err := c.Apply("add"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := c.Render(0, 0); got != "14" {
		t.Errorf("rendered %q, want %q", got, "14")
	}
}

func TestRender(t *testing.T) {
	c := guac.NewCalc()
	c.Push(guac.Rat(1, 3))
	if got := c.Render(0, 0); got != "1/3" {
		t.Errorf("exact render is %q, want %q", got, "1/3")
	}
	c.ToggleDisplayMode(0)
	if got := c.Render(0, 0); got != "0.333333333333" {
		t.Errorf("approx render is %q, want %q", got, "0.333333333333")
	}
	// In ternary the same value terminates.
	if got := c.Render(0, 3); got != "0.1" {
		t.Errorf("ternary render is %q, want %q", got, "0.1")
	}
	if got := c.Render(5, 0); got != "" {
		t.Errorf("out-of-range render is %q, want empty", got)
	}
}

func TestRenderInvalidRadix(t *testing.T) {
	// An invalid radix argument falls back like zero, never reaching
	// the digit codec.
	c := guac.NewCalc()
	c.Push(guac.Int(255))
	for _, r := range []guac.Radix{1, 65, -3} {
		if got := c.Render(0, r); got != "255" {
			t.Errorf("Render with radix %d is %q, want %q", r.N(), got, "255")
		}
	}
	// The entry override still wins over an invalid argument.
	c.SetEntryRadix(0, guac.Hex)
	if got := c.Render(0, 1); got != "ff" {
		t.Errorf("rendered %q, want %q", got, "ff")
	}
}

func TestRenderApproxFallsBack(t *testing.T) {
	// An entry with a free variable has no numeric value; approximate
	// display falls back to the exact form.
	c := guac.NewCalc()
	c.Push(guac.Variable("x"))
	c.ToggleDisplayMode(0)
	if got := c.Render(0, 0); got != "x" {
		t.Errorf("rendered %q, want %q", got, "x")
	}
}

func TestDisplayModeLosesNothing(t *testing.T) {
	// Toggling to approximate display and back recovers the exact
	// value: the mode affects rendering only.
	c := guac.NewCalc(guac.FracDigits(4))
	c.Push(guac.Rat(1, 3))
	c.ToggleDisplayMode(0)
	if got := c.Render(0, 0); got != "0.3333" {
		t.Fatalf("approx render is %q, want %q", got, "0.3333")
	}
	c.ToggleDisplayMode(0)
	if got := c.Render(0, 0); got != "1/3" {
		t.Errorf("exact render is %q, want %q", got, "1/3")
	}

	// A terminating value's exact render re-parses to the same value.
	c.Push(guac.Rat(5, 8))
	c.ToggleDisplayMode(1)
	c.ToggleDisplayMode(1)
	if err := c.PushInput(c.Render(1, 0), 0); err != nil {
		t.Fatalf("PushInput: %v", err)
	}
	a, _ := c.At(1)
	b, _ := c.At(2)
	if !a.Expr.Equal(b.Expr) {
		t.Errorf("re-parsed render is %v, want %v", b.Expr, a.Expr)
	}
}
