package main

import (
	"context"
	"io"
	"strings"

	"github.com/dannynchang/logo-interpreter/internal/ierrors"
	"github.com/dannynchang/logo-interpreter/internal/input"
)

// Interp is the assembled interpreter: the environment, the output
// collaborator, and the line source it drives itself from. Grounded on
// gothird's VM — a single struct wiring together the pieces an API
// consumer can override with options, built by New and driven by Run.
type Interp struct {
	Env *Environment
	Out Printer
	Src input.Source

	// Trace, if non-nil, receives one line per evaluated top-level line.
	// Wired through traceio.Writer by the CLI's -trace flag; nil disables
	// tracing entirely, which is the zero-cost default.
	Trace io.Writer

	stdin  io.Reader
	stdout io.Writer
}

// New builds an Interp: applies opts over the stdin/stdout defaults, wires
// the primitive library and the core control primitives into a fresh
// Environment, and falls back to an interactive StdinSource if no WithFile
// option supplied one.
func New(opts ...InterpOption) *Interp {
	ip := &Interp{}
	for _, o := range defaultOptions {
		o.apply(ip)
	}
	for _, o := range opts {
		o.apply(ip)
	}

	ip.Env = NewEnvironment()
	reg := NewRegistry(ip.Env)
	RegisterBuiltins(reg, ip.Out)
	ip.registerCore(reg)

	if ip.Src == nil {
		ip.Src = input.NewStdinSource(ip.stdin, ip.stdout)
	}
	return ip
}

// Run drives the REPL loop described in §6/§7: pull a top-level line, stop
// cleanly on "quit"/"exit"/"bye" or end of input, otherwise lex, rewrite
// infix, and evaluate it, printing and continuing past any error while
// restoring the frame stack to just the global frame (I1) before the next
// line. ctx is checked once per top-level line, per §5's cooperative
// cancellation note.
func (ip *Interp) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := ip.Src.NextTopLevelLine()
		if !ok {
			ip.Out.PrintLine("Goodbye")
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "exit", "bye":
			ip.Out.PrintLine("Goodbye")
			return nil
		case "":
			continue
		}

		if err := ip.runTopLevelLine(line); err != nil {
			ip.Out.PrintLine(ip.withLocation(err).Error())
		}
	}
}

// locatable is implemented by line sources that can report a current
// "name:line" position, such as input.FileSource; input.StdinSource does
// not, so interactive errors are printed without a location prefix.
type locatable interface {
	Location() string
}

// withLocation prefixes err with the source's current location, when the
// active Src can report one.
func (ip *Interp) withLocation(err error) error {
	if loc, ok := ip.Src.(locatable); ok {
		return ierrors.New("%s: %s", loc.Location(), err.Error())
	}
	return err
}

// runTopLevelLine evaluates one line end to end, always restoring the
// frame stack to frame 0 afterward (even across a panic a native primitive
// or a bug elsewhere in the evaluator let escape), per §7's frame-balance
// invariant across error unwinds.
func (ip *Interp) runTopLevelLine(line string) (err error) {
	defer ip.rewindFrames()
	return ierrors.Recover(func() {
		if e := ip.evalTopLevelLine(line); e != nil {
			panic(e)
		}
	})
}

func (ip *Interp) evalTopLevelLine(line string) error {
	if ip.Trace != nil {
		io.WriteString(ip.Trace, line+"\n")
	}

	toks, err := LexLine(line)
	if err != nil {
		return err
	}
	toks, err = RewriteInfix(toks)
	if err != nil {
		return err
	}

	result, err := ip.EvalLine(NewCursor(toks))
	if err != nil {
		return err
	}
	if IsOutputTrap(result) {
		result = TrapPayload(result)
	}
	if !IsNoValue(result) {
		return ierrors.New("You do not say what to do with the result of %s", Display(result))
	}
	return nil
}

// rewindFrames restores the environment to just the global frame, per I1.
func (ip *Interp) rewindFrames() {
	for ip.Env.FrameDepth() > 1 {
		ip.Env.PopFrame()
	}
}
