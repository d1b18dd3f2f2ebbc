package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestInterp(lines ...string) (*Interp, *testLineSource) {
	var buf bytes.Buffer
	ip := New(WithOutput(&buf))
	src := &testLineSource{lines: lines}
	ip.Src = src
	return ip, src
}

func TestReadDefinitionRegistersProcedureWithFormalParams(t *testing.T) {
	ip, _ := newTestInterp(`output sum :n :n`, `end`)
	toks, err := LexLine(`to double :n`)
	require.NoError(t, err)
	cur := NewCursor(toks)
	cur.Pop() // consume "to" the way EvalExpression would before calling readDefinition

	v, err := ip.readDefinition(cur)
	require.NoError(t, err)
	require.True(t, IsNoValue(v))

	proc, err := ip.Env.LookupProcedure("double")
	require.NoError(t, err)
	require.Equal(t, 1, proc.ArgCount)
	require.Equal(t, []string{"n"}, proc.FormalParams)
	require.False(t, proc.IsPrimitive)
	require.Len(t, proc.Body, 1)
}

func TestReadDefinitionOverwritesPriorDefinition(t *testing.T) {
	ip, _ := newTestInterp(`print "hello`, `end`)
	ip.Env.DefineProcedure("greet", &Procedure{Name: "greet", ArgCount: 3})

	toks, _ := LexLine(`to greet`)
	cur := NewCursor(toks)
	cur.Pop()

	_, err := ip.readDefinition(cur)
	require.NoError(t, err)

	proc, err := ip.Env.LookupProcedure("greet")
	require.NoError(t, err)
	require.Equal(t, 0, proc.ArgCount)
}

func TestReadDefinitionEOFBeforeEndIsError(t *testing.T) {
	ip, _ := newTestInterp(`print 1`)
	toks, _ := LexLine(`to lonely`)
	cur := NewCursor(toks)
	cur.Pop()

	_, err := ip.readDefinition(cur)
	require.Error(t, err)
}

func TestReadDefinitionRejectsMissingName(t *testing.T) {
	ip, _ := newTestInterp()
	toks, _ := LexLine(`to`)
	cur := NewCursor(toks)
	cur.Pop()

	_, err := ip.readDefinition(cur)
	require.Error(t, err)
}
