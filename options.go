package main

import (
	"io"
	"os"

	"github.com/dannynchang/logo-interpreter/internal/input"
)

// InterpOption configures an *Interp built by New, grounded on gothird's
// VMOption/apply(*VM) functional-option shape.
type InterpOption interface{ apply(ip *Interp) }

type withInputOption struct{ r io.Reader }
type withOutputOption struct{ w io.Writer }
type withFileOption struct {
	r    io.Reader
	name string
}
type withTraceOption struct{ w io.Writer }

// WithInput sets the REPL's interactive input stream (defaults to stdin).
func WithInput(r io.Reader) InterpOption { return withInputOption{r} }

// WithOutput sets where print/show/type write (defaults to stdout).
func WithOutput(w io.Writer) InterpOption { return withOutputOption{w} }

// WithFile makes the interpreter read lines from r as a non-interactive
// line source, naming it name in error locations, instead of prompting on
// stdin.
func WithFile(r io.Reader, name string) InterpOption { return withFileOption{r, name} }

// WithTrace enables evaluator tracing to w.
func WithTrace(w io.Writer) InterpOption { return withTraceOption{w} }

func (o withInputOption) apply(ip *Interp) {
	ip.stdin = o.r
}

func (o withOutputOption) apply(ip *Interp) {
	ip.Out = NewPrinter(o.w)
	ip.stdout = o.w
}

func (o withFileOption) apply(ip *Interp) {
	ip.Src = input.NewFileSource(o.r, o.name)
}

func (o withTraceOption) apply(ip *Interp) {
	ip.Trace = o.w
}

var defaultOptions = []InterpOption{
	withInputOption{os.Stdin},
	withOutputOption{os.Stdout},
}
