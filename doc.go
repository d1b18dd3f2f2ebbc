/*
Package main implements an interpreter for a small, whitespace-delimited,
dynamically-typed command language in the Logo family.

Source text is tokenized into atoms (words, numbers, variable references,
quotations, and nested bracketed lists), parsed on demand during evaluation,
and executed by a tree-walking evaluator that supports user-defined
procedures ("to ... end"), lexically-scoped local frames, infix
arithmetic/comparison with precedence, and a small set of control-flow
primitives (if, ifelse, run, output, stop).

There is no turtle graphics, no tail-call optimization beyond what Go's own
call stack gives for free, and no concurrency: one source line is read,
rewritten from infix to prefix notation, and evaluated, in that order,
before the next line is read.
*/
package main
