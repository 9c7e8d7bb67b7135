package guac

// The operator library: one entry point per user-facing operator. Each
// operator takes already-simplified operands, builds the unsimplified
// composite, and canonicalizes it. Binary operators take their first
// operand from deeper in the stack, so Sub(a, b) is a-b with a below b.

// Add returns a+b.
func Add(a, b *Expr) (*Expr, error) {
	return Simplify(NewSum(a, b))
}

// Sub returns a-b, built as a + (-1)·b.
func Sub(a, b *Expr) (*Expr, error) {
	return Simplify(NewSum(a, NewProduct(Int(-1), b)))
}

// Mul returns a·b.
func Mul(a, b *Expr) (*Expr, error) {
	return Simplify(NewProduct(a, b))
}

// Div returns a/b, built as a·b⁻¹. It fails with *ZeroDivisionError
// when b is syntactically zero.
func Div(a, b *Expr) (*Expr, error) {
	if b.isZero() {
		return nil, &ZeroDivisionError{Op: "div"}
	}
	return Simplify(NewProduct(a, NewPower(b, Int(-1))))
}

// Pow returns a^b. It fails with *ZeroDivisionError for a zero base and
// negative numeric exponent, and via Simplify with *UndefinedError for
// 0^0.
func Pow(a, b *Expr) (*Expr, error) {
	if a.isZero() && b.kind == kindNum && b.rat.Sign() < 0 {
		return nil, &ZeroDivisionError{Op: "pow"}
	}
	return Simplify(NewPower(a, b))
}

// Neg returns -a, built as (-1)·a.
func Neg(a *Expr) (*Expr, error) {
	return Simplify(NewProduct(Int(-1), a))
}

// Recip returns 1/a, built as a⁻¹. It fails with *ZeroDivisionError
// when a is syntactically zero.
func Recip(a *Expr) (*Expr, error) {
	if a.isZero() {
		return nil, &ZeroDivisionError{Op: "recip"}
	}
	return Simplify(NewPower(a, Int(-1)))
}

// Sqrt returns the square root of a, built as a^(1/2).
func Sqrt(a *Expr) (*Expr, error) {
	return Pow(a, Rat(1, 2))
}

// Square returns a².
func Square(a *Expr) (*Expr, error) {
	return Pow(a, Int(2))
}

// Ln returns the natural logarithm of a, built as a logarithm in base
// e. It fails with *UndefinedError when a is syntactically zero.
func Ln(a *Expr) (*Expr, error) {
	return LogBase(Constant(E), a)
}

// LogBase returns the logarithm of arg in the given base. It fails with
// *UndefinedError when arg is syntactically zero; a symbolic argument
// is retained unevaluated.
func LogBase(base, arg *Expr) (*Expr, error) {
	if arg.isZero() {
		return nil, &UndefinedError{Op: "log", Detail: "logarithm of zero"}
	}
	return Simplify(NewLog(base, arg))
}

// Mod returns a mod b, exact for numeric operands and retained
// symbolically otherwise. It fails with *ZeroDivisionError when b is
// syntactically zero.
func Mod(a, b *Expr) (*Expr, error) {
	if b.isZero() {
		return nil, &ZeroDivisionError{Op: "mod"}
	}
	return Simplify(NewMod(a, b))
}

// Abs returns |a|.
func Abs(a *Expr) (*Expr, error) {
	return Simplify(NewAbs(a))
}

// Sin returns the sine of a in radians, retained symbolically on
// non-numeric operands.
func Sin(a *Expr) (*Expr, error) {
	return Simplify(NewSin(a))
}

// Cos returns the cosine of a in radians.
func Cos(a *Expr) (*Expr, error) {
	return Simplify(NewCos(a))
}

// Tan returns the tangent of a in radians.
func Tan(a *Expr) (*Expr, error) {
	return Simplify(NewTan(a))
}

// An Op is a user-facing operator with a fixed arity, addressable by id
// for selection-addressed application on the stack.
type Op struct {
	// Name is the operator's canonical id.
	Name string
	// Arity is 1 or 2.
	Arity int

	unary  func(*Expr) (*Expr, error)
	binary func(*Expr, *Expr) (*Expr, error)
}

func unop(name string, f func(*Expr) (*Expr, error)) *Op {
	return &Op{Name: name, Arity: 1, unary: f}
}

func binop(name string, f func(*Expr, *Expr) (*Expr, error)) *Op {
	return &Op{Name: name, Arity: 2, binary: f}
}

var opTable = map[string]*Op{
	"add":    binop("add", Add),
	"sub":    binop("sub", Sub),
	"mul":    binop("mul", Mul),
	"div":    binop("div", Div),
	"pow":    binop("pow", Pow),
	"mod":    binop("mod", Mod),
	"log":    binop("log", LogBase),
	"neg":    unop("neg", Neg),
	"recip":  unop("recip", Recip),
	"abs":    unop("abs", Abs),
	"sqrt":   unop("sqrt", Sqrt),
	"square": unop("square", Square),
	"ln":     unop("ln", Ln),
	"sin":    unop("sin", Sin),
	"cos":    unop("cos", Cos),
	"tan":    unop("tan", Tan),
}

// opAliases maps the symbols users type to canonical operator ids.
var opAliases = map[string]string{
	"+": "add",
	"-": "sub",
	"*": "mul",
	"×": "mul",
	"·": "mul",
	"/": "div",
	"÷": "div",
	"^": "pow",
	"%": "mod",
	"~": "neg",
	"`": "recip",
	"|": "abs",
	"r": "sqrt",
}

// LookupOp finds an operator by id or symbol alias.
func LookupOp(id string) (*Op, bool) {
	if name, ok := opAliases[id]; ok {
		id = name
	}
	op, ok := opTable[id]
	return op, ok
}
