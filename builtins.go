package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nukata/goarith"

	"github.com/dannynchang/logo-interpreter/internal/ierrors"
)

// Printer is the output collaborator of §6: print_line and
// print_no_newline. The core's "type" primitive (registered in eval.go,
// since §4.5 lists it among what "core itself registers") is defined in
// terms of PrintNoNewline.
type Printer interface {
	PrintLine(text string)
	PrintNoNewline(text string)
}

type writerPrinter struct{ w io.Writer }

// NewPrinter adapts an io.Writer into a Printer.
func NewPrinter(w io.Writer) Printer { return writerPrinter{w} }

func (p writerPrinter) PrintLine(text string)      { fmt.Fprintln(p.w, text) }
func (p writerPrinter) PrintNoNewline(text string) { fmt.Fprint(p.w, text) }

// RegisterBuiltins installs the primitive library required by §4.5:
// arithmetic, comparisons, word/list constructors and accessors,
// predicates, and printing. Grounded on nukata's GlobalEnv primitive chain
// (car/cdr/cons/+/-/*/</=/eq?/display/newline), re-expressed under this
// language's required names.
func RegisterBuiltins(reg *Registry, out Printer) {
	reg.Register([]string{"sum"}, 2, arith("sum", goarith.Number.Add), false)
	reg.Register([]string{"difference"}, 2, arith("difference", goarith.Number.Sub), false)
	reg.Register([]string{"product"}, 2, arith("product", goarith.Number.Mul), false)
	reg.Register([]string{"div"}, 2, divide, false)

	reg.Register([]string{"equalp", "equal?"}, 2, func(args []Value, _ *Environment) (Value, error) {
		return BoolValue(Equal(args[0], args[1])), nil
	}, false)
	reg.Register([]string{"lessp", "less?"}, 2, cmp("lessp", func(c int) bool { return c < 0 }), false)
	reg.Register([]string{"greaterp", "greater?"}, 2, cmp("greaterp", func(c int) bool { return c > 0 }), false)

	reg.Register([]string{"word"}, 2, func(args []Value, _ *Environment) (Value, error) {
		a, err := wordText("word", args[0])
		if err != nil {
			return Value{}, err
		}
		b, err := wordText("word", args[1])
		if err != nil {
			return Value{}, err
		}
		return WordValue(a + b), nil
	}, false)

	reg.Register([]string{"sentence"}, 2, func(args []Value, _ *Environment) (Value, error) {
		items := append(append([]Value{}, asItems(args[0])...), asItems(args[1])...)
		return ListValue(items), nil
	}, false)

	reg.Register([]string{"list"}, 2, func(args []Value, _ *Environment) (Value, error) {
		return ListValue([]Value{args[0], args[1]}), nil
	}, false)

	reg.Register([]string{"fput"}, 2, func(args []Value, _ *Environment) (Value, error) {
		if args[1].Kind != ValList {
			return Value{}, ierrors.New("fput: not a list: %s", Display(args[1]))
		}
		items := make([]Value, 0, len(args[1].List)+1)
		items = append(items, args[0])
		items = append(items, args[1].List...)
		return ListValue(items), nil
	}, false)

	reg.Register([]string{"first"}, 1, func(args []Value, _ *Environment) (Value, error) {
		return firstOf(args[0])
	}, false)
	reg.Register([]string{"last"}, 1, func(args []Value, _ *Environment) (Value, error) {
		return lastOf(args[0])
	}, false)
	reg.Register([]string{"butfirst", "bf"}, 1, func(args []Value, _ *Environment) (Value, error) {
		return butfirstOf(args[0])
	}, false)

	reg.Register([]string{"empty?", "emptyp"}, 1, func(args []Value, _ *Environment) (Value, error) {
		v := args[0]
		switch v.Kind {
		case ValList:
			return BoolValue(len(v.List) == 0), nil
		case ValWord:
			return BoolValue(v.Word == ""), nil
		default:
			return FalseValue, nil
		}
	}, false)

	reg.Register([]string{"word?"}, 1, func(args []Value, _ *Environment) (Value, error) {
		return BoolValue(args[0].Kind != ValList), nil
	}, false)

	reg.Register([]string{"print"}, 1, func(args []Value, _ *Environment) (Value, error) {
		out.PrintLine(Display(args[0]))
		return NoValue, nil
	}, false)
	reg.Register([]string{"show"}, 1, func(args []Value, _ *Environment) (Value, error) {
		out.PrintLine(displayElement(args[0]))
		return NoValue, nil
	}, false)
}

func arith(who string, op func(goarith.Number, goarith.Number) goarith.Number) NativeFunc {
	return func(args []Value, _ *Environment) (Value, error) {
		a, err := asNumber(who, args[0])
		if err != nil {
			return Value{}, err
		}
		b, err := asNumber(who, args[1])
		if err != nil {
			return Value{}, err
		}
		return NumberValue(op(a, b)), nil
	}
}

// divide implements "div". goarith.Number's tower is only ever exercised
// through Add/Sub/Mul/Cmp in the teacher's scm.go — there is no observed
// method that divides two Numbers and returns a Number — so division is
// done by promoting both operands to float64 through their (confirmed)
// String() representation, exactly as the lexer's own tryParseNumber
// falls back to strconv.ParseFloat for non-integer literals.
func divide(args []Value, _ *Environment) (Value, error) {
	a, err := asNumber("div", args[0])
	if err != nil {
		return Value{}, err
	}
	b, err := asNumber("div", args[1])
	if err != nil {
		return Value{}, err
	}
	bf, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return Value{}, ierrors.New("div: %v", err)
	}
	if bf == 0 {
		return Value{}, ierrors.New("div: division by zero")
	}
	af, err := strconv.ParseFloat(a.String(), 64)
	if err != nil {
		return Value{}, ierrors.New("div: %v", err)
	}
	return NumberValue(goarith.AsNumber(af / bf)), nil
}

func cmp(who string, ok func(int) bool) NativeFunc {
	return func(args []Value, _ *Environment) (Value, error) {
		a, err := asNumber(who, args[0])
		if err != nil {
			return Value{}, err
		}
		b, err := asNumber(who, args[1])
		if err != nil {
			return Value{}, err
		}
		return BoolValue(ok(a.Cmp(b))), nil
	}
}

func asNumber(who string, v Value) (goarith.Number, error) {
	if v.Kind != ValNumber {
		return nil, ierrors.New("%s: not a number: %s", who, Display(v))
	}
	return v.Num, nil
}

func wordText(who string, v Value) (string, error) {
	if v.Kind == ValList {
		return "", ierrors.New("%s: not a word: %s", who, Display(v))
	}
	return Display(v), nil
}

// asItems returns v's elements if it is a list, or a single-element slice
// of v otherwise, implementing "sentence"'s one-level flattening.
func asItems(v Value) []Value {
	if v.Kind == ValList {
		return v.List
	}
	return []Value{v}
}

func firstOf(v Value) (Value, error) {
	if v.Kind == ValList {
		if len(v.List) == 0 {
			return Value{}, ierrors.New("first: empty list")
		}
		return v.List[0], nil
	}
	s := []rune(Display(v))
	if len(s) == 0 {
		return Value{}, ierrors.New("first: empty word")
	}
	return WordValue(string(s[0])), nil
}

func lastOf(v Value) (Value, error) {
	if v.Kind == ValList {
		if len(v.List) == 0 {
			return Value{}, ierrors.New("last: empty list")
		}
		return v.List[len(v.List)-1], nil
	}
	s := []rune(Display(v))
	if len(s) == 0 {
		return Value{}, ierrors.New("last: empty word")
	}
	return WordValue(string(s[len(s)-1])), nil
}

func butfirstOf(v Value) (Value, error) {
	if v.Kind == ValList {
		if len(v.List) == 0 {
			return Value{}, ierrors.New("butfirst: empty list")
		}
		return ListValue(append([]Value{}, v.List[1:]...)), nil
	}
	s := []rune(Display(v))
	if len(s) == 0 {
		return Value{}, ierrors.New("butfirst: empty word")
	}
	return WordValue(string(s[1:])), nil
}
