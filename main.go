package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dannynchang/logo-interpreter/internal/traceio"
)

func main() {
	trace := flag.Bool("trace", false, "log each evaluated top-level line")
	timeout := flag.Duration("timeout", 0, "wall-clock budget for the whole run (0 = unbounded)")
	flag.Parse()

	opts := []InterpOption{WithOutput(os.Stdout)}

	if *trace {
		tw := &traceio.Writer{Logf: func(f string, a ...interface{}) {
			fmt.Fprintf(os.Stderr, f+"\n", a...)
		}}
		opts = append(opts, WithTrace(tw))
	}

	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		opts = append(opts, WithFile(f, flag.Arg(0)))
	} else {
		opts = append(opts, WithInput(os.Stdin))
	}

	ip := New(opts...)

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	if err := ip.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
