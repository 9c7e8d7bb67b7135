package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/guacalc/guac"
)

func main() {
	log.SetFlags(0)
	var (
		radixName string
		prec      int
		digits    int
	)
	flag.StringVar(&radixName, "radix", "dec", "default radix, as an abbreviation like hex or a number")
	flag.IntVar(&prec, "p", 64, "precision of approximate evaluation in bits")
	flag.IntVar(&digits, "digits", 12, "fractional digits of approximate display")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	radix, ok := guac.ParseRadix(radixName)
	if !ok {
		if n, err := strconv.Atoi(radixName); err == nil {
			radix, ok = guac.NewRadix(n)
		}
	}
	if !ok {
		log.Fatalf("unknown radix %q", radixName)
	}

	calc := guac.NewCalc(guac.Prec(uint(prec)), guac.DefaultRadix(radix), guac.FracDigits(digits))

	if args := flag.Args(); len(args) > 0 {
		for _, arg := range args {
			for _, tok := range strings.Fields(arg) {
				if err := exec(calc, tok); err != nil {
					log.Fatal(err)
				}
			}
		}
		for i := 0; i < calc.Len(); i++ {
			fmt.Println(calc.Render(i, 0))
		}
		return
	}

	repl(calc)
}

func repl(calc *guac.Calc) {
	l := liner.NewLiner()
	defer l.Close()
	l.SetCtrlCAborts(true)
	for {
		line, err := l.Prompt(prompt(calc))
		switch err {
		case nil: // do nothing
		case io.EOF, liner.ErrPromptAborted:
			fmt.Println()
			return
		default:
			log.Fatal(err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		l.AppendHistory(line)
		for _, tok := range strings.Fields(line) {
			if tok == "quit" || tok == "q" {
				return
			}
			if err := exec(calc, tok); err != nil {
				fmt.Fprintln(os.Stderr, err)
				break
			}
		}
	}
}

// prompt renders the whole stack as the prompt, marking the selection.
func prompt(calc *guac.Calc) string {
	var b strings.Builder
	sel, selected := calc.Selection()
	for i := 0; i < calc.Len(); i++ {
		s := calc.Render(i, 0)
		if selected && i == sel {
			s = "[" + s + "]"
		}
		b.WriteString(s)
		b.WriteByte(' ')
	}
	b.WriteString("» ")
	return b.String()
}

// exec runs one token against the calculator: a stack command, an
// operator id, or input to push.
func exec(calc *guac.Calc, tok string) error {
	switch tok {
	case "undo", "u":
		calc.Undo()
	case "redo", "U":
		calc.Redo()
	case "drop", "d":
		calc.Drop(selOrTop(calc))
	case "dup":
		calc.Dup()
	case "swap":
		calc.Swap()
	case ";", "approx":
		calc.ToggleDisplayMode(selOrTop(calc))
	case "<":
		calc.MoveSelection(-1)
	case ">":
		calc.MoveSelection(1)
	case "unselect", "a":
		calc.ClearSelection()
	case "<<":
		calc.MoveEntry(-1)
	case ">>":
		calc.MoveEntry(1)
	default:
		if _, ok := guac.LookupOp(tok); ok {
			return calc.Apply(tok)
		}
		return calc.PushInput(tok, 0)
	}
	return nil
}

func selOrTop(calc *guac.Calc) int {
	if i, ok := calc.Selection(); ok {
		return i
	}
	return calc.Len() - 1
}
