package guac_test

import (
	"errors"
	"testing"

	"github.com/guacalc/guac"
)

func TestBinaryOps(t *testing.T) {
	x := guac.Variable("x")
	cases := []struct {
		name string
		op   func(a, b *guac.Expr) (*guac.Expr, error)
		a, b *guac.Expr
		want *guac.Expr
	}{
		{"add", guac.Add, guac.Int(2), guac.Int(3), guac.Int(5)},
		{"sub", guac.Sub, guac.Int(2), guac.Int(3), guac.Int(-1)},
		{"sub-self", guac.Sub, x, x, guac.Int(0)},
		{"mul", guac.Mul, guac.Rat(2, 3), guac.Rat(3, 4), guac.Rat(1, 2)},
		{"div", guac.Div, guac.Int(1), guac.Int(3), guac.Rat(1, 3)},
		{"div-symbolic", guac.Div, x, guac.Int(2), guac.NewProduct(guac.Rat(1, 2), x)},
		{"pow", guac.Pow, guac.Int(3), guac.Int(4), guac.Int(81)},
		{"mod", guac.Mod, guac.Int(17), guac.Int(5), guac.Int(2)},
		{"log", guac.LogBase, guac.Int(10), guac.Int(1), guac.Int(0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.op(c.a, c.b)
			if err != nil {
				t.Fatalf("op: %v", err)
			}
			if !got.Equal(c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestUnaryOps(t *testing.T) {
	cases := []struct {
		name string
		op   func(a *guac.Expr) (*guac.Expr, error)
		a    *guac.Expr
		want *guac.Expr
	}{
		{"neg", guac.Neg, guac.Int(5), guac.Int(-5)},
		{"recip", guac.Recip, guac.Rat(2, 3), guac.Rat(3, 2)},
		{"sqrt", guac.Sqrt, guac.Int(4), guac.Int(2)},
		{"sqrt-surd", guac.Sqrt, guac.Int(2), guac.NewPower(guac.Int(2), guac.Rat(1, 2))},
		{"square", guac.Square, guac.Rat(3, 2), guac.Rat(9, 4)},
		{"ln-e", guac.Ln, guac.Constant(guac.E), guac.Int(1)},
		{"ln-one", guac.Ln, guac.Int(1), guac.Int(0)},
		{"abs", guac.Abs, guac.Int(-7), guac.Int(7)},
		{"sin", guac.Sin, guac.Int(0), guac.Int(0)},
		{"cos", guac.Cos, guac.Int(0), guac.Int(1)},
		{"tan", guac.Tan, guac.Int(0), guac.Int(0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.op(c.a)
			if err != nil {
				t.Fatalf("op: %v", err)
			}
			if !got.Equal(c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestPowCollapse(t *testing.T) {
	// (x^2)^3 collapses to x^6 rather than nesting.
	x := guac.Variable("x")
	sq, err := guac.Square(x)
	if err != nil {
		t.Fatalf("Square: %v", err)
	}
	got, err := guac.Pow(sq, guac.Int(3))
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	want := guac.NewPower(x, guac.Int(6))
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOpErrors(t *testing.T) {
	x := guac.Variable("x")
	cases := []struct {
		name string
		err  error
	}{
		{"div-zero", func() error { _, err := guac.Div(x, guac.Int(0)); return err }()},
		{"recip-zero", func() error { _, err := guac.Recip(guac.Int(0)); return err }()},
		{"mod-zero", func() error { _, err := guac.Mod(x, guac.Int(0)); return err }()},
		{"pow-zero-neg", func() error { _, err := guac.Pow(guac.Int(0), guac.Int(-1)); return err }()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var zerr *guac.ZeroDivisionError
			if !errors.As(c.err, &zerr) {
				t.Errorf("got %v, want *ZeroDivisionError", c.err)
			}
		})
	}
	t.Run("log-zero", func(t *testing.T) {
		_, err := guac.LogBase(guac.Int(10), guac.Int(0))
		var uerr *guac.UndefinedError
		if !errors.As(err, &uerr) {
			t.Errorf("got %v, want *UndefinedError", err)
		}
	})
}

func TestLookupOp(t *testing.T) {
	cases := []struct {
		id    string
		name  string
		arity int
	}{
		{"add", "add", 2},
		{"+", "add", 2},
		{"×", "mul", 2},
		{"÷", "div", 2},
		{"^", "pow", 2},
		{"~", "neg", 1},
		{"`", "recip", 1},
		{"r", "sqrt", 1},
		{"ln", "ln", 1},
	}
	for _, c := range cases {
		op, ok := guac.LookupOp(c.id)
		if !ok {
			t.Errorf("LookupOp(%q) not found", c.id)
			continue
		}
		if op.Name != c.name || op.Arity != c.arity {
			t.Errorf("LookupOp(%q) = %q/%d, want %q/%d", c.id, op.Name, op.Arity, c.name, c.arity)
		}
	}
	if _, ok := guac.LookupOp("frobnicate"); ok {
		t.Error("LookupOp found a nonexistent operator")
	}
}
