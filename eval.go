package main

import "github.com/dannynchang/logo-interpreter/internal/ierrors"

// EvalExpression consumes exactly the tokens forming one complete
// expression starting at the cursor's current position and returns its
// value, per §4.6's central contract.
func (ip *Interp) EvalExpression(cur *Cursor) (Value, error) {
	tok, ok := cur.Pop()
	if !ok {
		return Value{}, ierrors.New("unexpected end of input at %s", cur.String())
	}
	switch tok.Kind {
	case TokNumber:
		return NumberValue(tok.Num), nil
	case TokVarRef:
		return ip.Env.LookupVariable(tok.Text)
	case TokQuotedWord:
		return WordValue(tok.Text), nil
	case TokList:
		return tokenToValue(tok), nil
	case TokOpenParen:
		v, err := ip.EvalExpression(cur)
		if err != nil {
			return Value{}, err
		}
		nxt, ok := cur.Pop()
		if !ok || nxt.Kind != TokCloseParen {
			return Value{}, ierrors.New(`Expected ")" at %s`, cur.String())
		}
		return v, nil
	case TokCloseParen:
		return Value{}, ierrors.New(`Unexpected ")" at %s`, cur.String())
	case TokInfixOp:
		return Value{}, ierrors.New("unexpected operator %q at %s", tok.Text, cur.String())
	case TokWord:
		if tok.Text == "True" || tok.Text == "False" {
			return WordValue(tok.Text), nil
		}
		if tok.Text == "to" {
			return ip.readDefinition(cur)
		}
		proc, err := ip.Env.LookupProcedure(tok.Text)
		if err != nil {
			return Value{}, err
		}
		return ip.applyProcedure(proc, cur)
	}
	return Value{}, ierrors.New("bad token at %s", cur.String())
}

// EvalLine repeatedly calls EvalExpression on cur until either the cursor
// is empty (returns the no-value sentinel) or an expression yields a
// non-no-value (returned immediately, leaving remaining tokens
// un-evaluated).
func (ip *Interp) EvalLine(cur *Cursor) (Value, error) {
	for !cur.IsEmpty() {
		v, err := ip.EvalExpression(cur)
		if err != nil {
			return Value{}, err
		}
		if !IsNoValue(v) {
			return v, nil
		}
	}
	return NoValue, nil
}

// applyProcedure collects proc.ArgCount arguments from cur by recursively
// evaluating exactly that many sub-expressions, then applies proc, per
// §4.6's argument collection and primitive/user-defined application rules.
func (ip *Interp) applyProcedure(proc *Procedure, cur *Cursor) (Value, error) {
	args := make([]Value, proc.ArgCount)
	for i := 0; i < proc.ArgCount; i++ {
		if cur.IsEmpty() {
			return Value{}, ierrors.New("Found only %d of %d args at %s", i, proc.ArgCount, cur.String())
		}
		v, err := ip.EvalExpression(cur)
		if err != nil {
			return Value{}, err
		}
		if IsNoValue(v) {
			return Value{}, ierrors.New("Found only %d of %d args at %s", i, proc.ArgCount, cur.String())
		}
		args[i] = v
	}

	if proc.IsPrimitive {
		var env *Environment
		if proc.NeedsEnv {
			env = ip.Env
		}
		return callNative(proc.Native, args, env)
	}
	return ip.applyUserProcedure(proc, args)
}

// applyUserProcedure implements §4.6's steps (a)-(f): push a frame binding
// formals positionally, walk the body lines, and pop the frame on every
// exit path — a successful "output"/"stop" trap, a statement-vs-expression
// error, a propagated error, or simply running out of lines.
func (ip *Interp) applyUserProcedure(proc *Procedure, args []Value) (Value, error) {
	frame := Frame{}
	for i, name := range proc.FormalParams {
		frame[name] = args[i]
	}
	ip.Env.PushFrame(frame)
	defer ip.Env.PopFrame()

	for _, lineToks := range proc.Body {
		result, err := ip.EvalExpression(NewCursor(lineToks))
		if err != nil {
			return Value{}, err
		}
		if IsOutputTrap(result) {
			return TrapPayload(result), nil
		}
		if !IsNoValue(result) {
			return Value{}, ierrors.New("You do not say what to do with the result of %s in %s", Display(result), proc.Name)
		}
	}
	return NoValue, nil
}

// callNative invokes a primitive's Go implementation, converting any panic
// it raises into a domain error, per §4.6's "any exception it raises is
// converted into a domain error" rule. Grounded on gothird's
// internal/panicerr.Recover, minus the goroutine indirection this
// single-threaded evaluator doesn't need.
func callNative(fn NativeFunc, args []Value, env *Environment) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*ierrors.Error); ok {
				err = e
				return
			}
			err = ierrors.New("%v", r)
		}
	}()
	return fn(args, env)
}

// lineTokensFor converts a Value into the tokens of one "line" to feed to
// EvalLine: a list value's elements become the line's tokens; any other
// value is wrapped into a single-element line. Used by run/if/ifelse per
// §4.6's control primitives.
func lineTokensFor(v Value) []Token {
	if v.Kind == ValList {
		toks := make([]Token, len(v.List))
		for i, it := range v.List {
			toks[i] = valueToToken(it)
		}
		return toks
	}
	return []Token{valueToToken(v)}
}

// registerCore installs the control primitives §4.5 says "core itself
// registers": type, make, if, ifelse, output, stop, run. They are
// registered as NativeFunc closures over ip (rather than free functions)
// because if/ifelse/run need to recursively evaluate a line through the
// same Interp, and type needs the output collaborator — both beyond what a
// NativeFunc's (args, env) signature alone carries.
func (ip *Interp) registerCore(reg *Registry) {
	reg.Register([]string{"type"}, 1, func(args []Value, _ *Environment) (Value, error) {
		ip.Out.PrintNoNewline(Display(args[0]))
		return NoValue, nil
	}, false)

	reg.Register([]string{"make"}, 2, func(args []Value, env *Environment) (Value, error) {
		if args[0].Kind != ValWord {
			return Value{}, ierrors.New("make: name is not a word: %s", Display(args[0]))
		}
		env.SetVariableValue(args[0].Word, args[1])
		return NoValue, nil
	}, true)

	reg.Register([]string{"output"}, 1, func(args []Value, _ *Environment) (Value, error) {
		return OutputTrap(args[0]), nil
	}, false)

	reg.Register([]string{"stop"}, 0, func(args []Value, _ *Environment) (Value, error) {
		return OutputTrap(NoValue), nil
	}, false)

	reg.Register([]string{"run"}, 1, func(args []Value, _ *Environment) (Value, error) {
		return ip.EvalLine(NewCursor(lineTokensFor(args[0])))
	}, true)

	reg.Register([]string{"if"}, 2, func(args []Value, _ *Environment) (Value, error) {
		cond := args[0]
		if !IsBooleanWord(cond) {
			return Value{}, ierrors.New(`First argument to "if" is not True or False: %s`, Display(cond))
		}
		if !IsTrueWord(cond) {
			return NoValue, nil
		}
		return ip.EvalLine(NewCursor(lineTokensFor(args[1])))
	}, true)

	reg.Register([]string{"ifelse"}, 3, func(args []Value, _ *Environment) (Value, error) {
		cond := args[0]
		if !IsBooleanWord(cond) {
			return Value{}, ierrors.New(`First argument to "ifelse" is not True or False: %s`, Display(cond))
		}
		branch := args[2]
		if IsTrueWord(cond) {
			branch = args[1]
		}
		return ip.EvalLine(NewCursor(lineTokensFor(branch)))
	}, true)
}
