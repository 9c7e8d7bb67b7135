package guac

// PushInput parses input text and pushes the result on the stack. The
// radix argument overrides the calculator's default radix for parsing
// this entry; pass zero to use the default. A radix prefix in the text
// itself ("hex#ff") wins over both and sticks to the entry, so the
// value keeps rendering in the radix it was entered in.
//
// It fails with *EmptyInputError or *DigitError and changes nothing on
// failure.
func (c *Calc) PushInput(text string, radix Radix) error {
	r := c.radix
	if radix != 0 {
		if !radix.Valid() {
			panic("guac: invalid radix " + radix.String())
		}
		r = radix
	}
	e, override, err := ParseInput(text, r)
	if err != nil {
		return err
	}
	ent := Entry{Expr: e, Mode: ModeExact, Radix: override}
	if override == 0 && radix != 0 && radix != c.radix {
		ent.Radix = radix
	}
	c.pushEntry(ent)
	return nil
}

// Render renders the entry at index i using its display mode. The radix
// argument overrides the entry's own radix override and the
// calculator's default; zero, or any other invalid radix, uses those
// instead. An out-of-range index renders as the empty string.
func (c *Calc) Render(i int, radix Radix) string {
	ent, ok := c.At(i)
	if !ok {
		return ""
	}
	r := radix
	if !r.Valid() {
		r = ent.Radix
	}
	if !r.Valid() {
		r = c.radix
	}
	if ent.Mode == ModeApprox {
		return ent.Expr.renderApprox(r, c.prec, c.fracDigits)
	}
	return ent.Expr.render(r)
}
