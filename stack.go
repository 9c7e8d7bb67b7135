package guac

// DisplayMode selects how a stack entry renders. It never affects the
// stored value: an entry holds its exact expression in either mode, and
// toggling back and forth loses nothing.
type DisplayMode int8

const (
	// ModeExact renders the expression symbolically, without rounding.
	ModeExact DisplayMode = iota
	// ModeApprox renders a truncated numeric approximation.
	ModeApprox
)

func (m DisplayMode) String() string {
	if m == ModeApprox {
		return "approx"
	}
	return "exact"
}

// Entry is one expression on the stack, along with its display mode and
// an optional per-entry radix override (zero Radix means none).
type Entry struct {
	Expr  *Expr
	Mode  DisplayMode
	Radix Radix
}

// Calc is a calculator: a stack of expressions, a selection cursor, and
// an undo history. The zero value is not useful; use NewCalc. It is not
// safe to use a Calc concurrently.
//
// Every operation that changes stack content records an undo snapshot
// and discards any redo tail. Out-of-range selection and entry moves,
// and undo or redo at the ends of the history, are silent no-ops.
// Operations that fail with an error leave the stack, the selection,
// and the history exactly as they were.
type Calc struct {
	stack []Entry
	sel   int // index of the selected entry, or -1 for none

	hist [][]Entry
	cur  int

	prec       uint
	radix      Radix
	fracDigits int
}

// Option is an option used when creating a Calc.
type Option interface {
	calcOption(*Calc)
}

type (
	precOpt  uint
	radixOpt Radix
	fracOpt  int
)

func (o precOpt) calcOption(c *Calc)  { c.prec = uint(o) }
func (o radixOpt) calcOption(c *Calc) { c.radix = Radix(o) }
func (o fracOpt) calcOption(c *Calc)  { c.fracDigits = int(o) }

// Prec sets the precision in bits of approximate evaluation.
func Prec(prec uint) Option {
	return precOpt(prec)
}

// DefaultRadix sets the radix used to parse and render entries that
// have no per-entry override. Panics if the radix is invalid.
func DefaultRadix(r Radix) Option {
	if !r.Valid() {
		panic("guac: invalid default radix " + r.String())
	}
	return radixOpt(r)
}

// FracDigits sets how many fractional digits approximate display keeps.
func FracDigits(n int) Option {
	if n < 1 {
		panic("guac: at least one fractional digit is required")
	}
	return fracOpt(n)
}

// NewCalc creates a calculator with an empty stack. The defaults are 64
// bits of precision, decimal, and 12 fractional digits.
func NewCalc(opts ...Option) *Calc {
	c := &Calc{
		sel:        -1,
		prec:       64,
		radix:      Decimal,
		fracDigits: 12,
	}
	for _, o := range opts {
		o.calcOption(c)
	}
	c.hist = [][]Entry{nil}
	return c
}

// Len returns the number of entries on the stack.
func (c *Calc) Len() int {
	return len(c.stack)
}

// At returns the entry at index i, counting from the bottom.
func (c *Calc) At(i int) (Entry, bool) {
	if i < 0 || i >= len(c.stack) {
		return Entry{}, false
	}
	return c.stack[i], true
}

// Selection returns the selected index, or false if nothing is
// selected and operations address the top of the stack.
func (c *Calc) Selection() (int, bool) {
	if c.sel < 0 {
		return 0, false
	}
	return c.sel, true
}

// target is the index operations address: the selection, or the top.
func (c *Calc) target() int {
	if c.sel >= 0 {
		return c.sel
	}
	return len(c.stack) - 1
}

// record snapshots the current stack as a new history entry, discarding
// any redo tail. Entries are immutable, so a shallow copy suffices.
func (c *Calc) record() {
	snap := append([]Entry(nil), c.stack...)
	c.hist = append(c.hist[:c.cur+1], snap)
	c.cur++
}

// clampSel re-validates the selection against the current stack.
func (c *Calc) clampSel() {
	if c.sel >= len(c.stack) {
		c.sel = -1
	}
}

// Push pushes an expression as the new top of the stack, displayed
// exactly.
func (c *Calc) Push(e *Expr) {
	c.stack = append(c.stack, Entry{Expr: e, Mode: ModeExact})
	c.record()
}

// pushEntry pushes a prepared entry.
func (c *Calc) pushEntry(ent Entry) {
	c.stack = append(c.stack, ent)
	c.record()
}

// Apply applies the operator with the given id (or symbol alias) at the
// selection, or at the top of the stack without one. A unary operator
// replaces the addressed entry with the operator applied to it. A
// binary operator consumes the addressed entry and the entry below it —
// the lower entry is the first operand — and leaves one result at the
// lower index. The result displays approximately if any operand did.
//
// It fails with *UnderflowError when fewer entries than the arity are
// addressable, and passes through operator errors such as
// *ZeroDivisionError; any failure leaves the calculator unchanged.
func (c *Calc) Apply(id string) error {
	op, ok := LookupOp(id)
	if !ok {
		return &UndefinedError{Op: id, Detail: "unknown operator"}
	}
	t := c.target()
	switch op.Arity {
	case 1:
		if t < 0 {
			return &UnderflowError{Op: op.Name, Need: 1, Have: 0}
		}
		ent := c.stack[t]
		res, err := op.unary(ent.Expr)
		if err != nil {
			return err
		}
		c.stack[t] = Entry{Expr: res, Mode: ent.Mode, Radix: ent.Radix}
		c.record()
		return nil
	case 2:
		if t < 1 {
			return &UnderflowError{Op: op.Name, Need: 2, Have: t + 1}
		}
		lo, hi := c.stack[t-1], c.stack[t]
		res, err := op.binary(lo.Expr, hi.Expr)
		if err != nil {
			return err
		}
		mode := lo.Mode
		if hi.Mode == ModeApprox {
			mode = ModeApprox
		}
		radix := lo.Radix
		if radix == 0 {
			radix = hi.Radix
		}
		c.stack[t-1] = Entry{Expr: res, Mode: mode, Radix: radix}
		c.stack = append(c.stack[:t], c.stack[t+1:]...)
		if c.sel == t {
			c.sel = t - 1
		} else if c.sel > t {
			c.sel--
		}
		c.record()
		return nil
	}
	panic("guac: operator " + op.Name + " has invalid arity")
}

// Select sets the selection to index i. An out-of-range index is a
// silent no-op.
func (c *Calc) Select(i int) {
	if i >= 0 && i < len(c.stack) {
		c.sel = i
	}
}

// ClearSelection returns addressing to the top of the stack.
func (c *Calc) ClearSelection() {
	c.sel = -1
}

// MoveSelection moves the selection cursor by delta. The cursor travels
// over the stack indices plus one virtual position above the top which
// means "no selection"; requests past either end clamp there.
func (c *Calc) MoveSelection(delta int) {
	if len(c.stack) == 0 {
		return
	}
	pos := c.sel
	if pos < 0 {
		pos = len(c.stack)
	}
	pos += delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(c.stack) {
		c.sel = -1
		return
	}
	c.sel = pos
}

// MoveEntry moves the selected entry by delta positions within the
// stack, clamped to the stack bounds; the selection follows the entry.
// Without a selection, or when clamping leaves the entry in place, it
// is a silent no-op.
func (c *Calc) MoveEntry(delta int) {
	if c.sel < 0 {
		return
	}
	to := c.sel + delta
	if to < 0 {
		to = 0
	}
	if to >= len(c.stack) {
		to = len(c.stack) - 1
	}
	if to == c.sel {
		return
	}
	ent := c.stack[c.sel]
	c.stack = append(c.stack[:c.sel], c.stack[c.sel+1:]...)
	c.stack = append(c.stack, Entry{})
	copy(c.stack[to+1:], c.stack[to:])
	c.stack[to] = ent
	c.sel = to
	c.record()
}

// Drop removes the entry at index i. An out-of-range index is a silent
// no-op. A selection pointing at the removed entry clears.
func (c *Calc) Drop(i int) {
	c.DropRange(i, i+1)
}

// DropRange removes the entries in [lo, hi), clamped to the stack
// bounds. A selection inside the range clears; one above it shifts
// down.
func (c *Calc) DropRange(lo, hi int) {
	if lo < 0 {
		lo = 0
	}
	if hi > len(c.stack) {
		hi = len(c.stack)
	}
	if lo >= hi {
		return
	}
	c.stack = append(c.stack[:lo], c.stack[hi:]...)
	switch {
	case c.sel >= hi:
		c.sel -= hi - lo
	case c.sel >= lo:
		c.sel = -1
	}
	c.record()
}

// Pop removes and returns the top entry.
func (c *Calc) Pop() (Entry, bool) {
	if len(c.stack) == 0 {
		return Entry{}, false
	}
	ent := c.stack[len(c.stack)-1]
	c.Drop(len(c.stack) - 1)
	return ent, true
}

// Dup duplicates the selected-or-top entry, pushing the copy as the new
// top. On an empty stack it is a silent no-op.
func (c *Calc) Dup() {
	t := c.target()
	if t < 0 {
		return
	}
	c.pushEntry(c.stack[t])
}

// Swap exchanges the top two entries. With fewer than two entries it is
// a silent no-op.
func (c *Calc) Swap() {
	n := len(c.stack)
	if n < 2 {
		return
	}
	c.stack[n-1], c.stack[n-2] = c.stack[n-2], c.stack[n-1]
	c.record()
}

// ToggleDisplayMode flips the entry at index i between exact and
// approximate display. The underlying expression never changes. An
// out-of-range index is a silent no-op.
func (c *Calc) ToggleDisplayMode(i int) {
	if i < 0 || i >= len(c.stack) {
		return
	}
	if c.stack[i].Mode == ModeExact {
		c.stack[i].Mode = ModeApprox
	} else {
		c.stack[i].Mode = ModeExact
	}
	c.record()
}

// SetEntryRadix sets a per-entry radix override. A zero radix removes
// the override; any other invalid radix or index is a silent no-op.
func (c *Calc) SetEntryRadix(i int, r Radix) {
	if i < 0 || i >= len(c.stack) || (r != 0 && !r.Valid()) {
		return
	}
	c.stack[i].Radix = r
	c.record()
}

// Undo steps the history cursor back one snapshot. At the oldest
// snapshot it is a silent no-op.
func (c *Calc) Undo() {
	if c.cur == 0 {
		return
	}
	c.cur--
	c.stack = append([]Entry(nil), c.hist[c.cur]...)
	c.clampSel()
}

// Redo steps the history cursor forward one snapshot. At the newest
// snapshot it is a silent no-op.
func (c *Calc) Redo() {
	if c.cur == len(c.hist)-1 {
		return
	}
	c.cur++
	c.stack = append([]Entry(nil), c.hist[c.cur]...)
	c.clampSel()
}
