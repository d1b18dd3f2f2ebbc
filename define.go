package main

import "github.com/dannynchang/logo-interpreter/internal/ierrors"

// readDefinition handles the "to" keyword (§4.7): it consumes the
// procedure name and formal parameters from the current line, then pulls
// further lines from the continuation collaborator until one consists of
// the single word "end". Grounded on nukata's Load/ReadExpression pattern
// of pulling more input through the same collaborator until a structural
// terminator is seen.
func (ip *Interp) readDefinition(cur *Cursor) (Value, error) {
	nameTok, ok := cur.Pop()
	if !ok || nameTok.Kind != TokWord {
		return Value{}, ierrors.New("to: expected a procedure name at %s", cur.String())
	}

	var params []string
	for {
		tok, ok := cur.Peek()
		if !ok || tok.Kind != TokVarRef {
			break
		}
		cur.Pop()
		params = append(params, tok.Text)
	}

	var body [][]Token
	for {
		line, ok := ip.Src.NextContinuationLine()
		if !ok {
			return Value{}, ierrors.New("to %s: unexpected end of input before \"end\"", nameTok.Text)
		}
		lineToks, err := LexLine(line)
		if err != nil {
			return Value{}, err
		}
		lineToks, err = RewriteInfix(lineToks)
		if err != nil {
			return Value{}, err
		}
		if len(lineToks) == 1 && lineToks[0].Kind == TokWord && lineToks[0].Text == "end" {
			break
		}
		body = append(body, lineToks)
	}

	ip.Env.DefineProcedure(nameTok.Text, &Procedure{
		Name:         nameTok.Text,
		ArgCount:     len(params),
		IsPrimitive:  false,
		NeedsEnv:     true,
		FormalParams: params,
		Body:         body,
	})
	return NoValue, nil
}
