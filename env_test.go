package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvironmentFrameBalanceInvariant(t *testing.T) {
	env := NewEnvironment()
	require.Equal(t, 1, env.FrameDepth())

	env.PushFrame(Frame{"x": NumberValue(nil)})
	require.Equal(t, 2, env.FrameDepth())

	env.PopFrame()
	require.Equal(t, 1, env.FrameDepth())
}

func TestPopFrameOnGlobalFramePanics(t *testing.T) {
	env := NewEnvironment()
	require.Panics(t, func() { env.PopFrame() })
}

func TestLookupVariableSearchesInnermostFirst(t *testing.T) {
	env := NewEnvironment()
	env.SetVariableValue("x", WordValue("global"))
	env.PushFrame(Frame{"x": WordValue("local")})

	v, err := env.LookupVariable("x")
	require.NoError(t, err)
	require.Equal(t, "local", v.Word)

	env.PopFrame()
	v, err = env.LookupVariable("x")
	require.NoError(t, err)
	require.Equal(t, "global", v.Word)
}

func TestLookupVariableMissingIsError(t *testing.T) {
	env := NewEnvironment()
	_, err := env.LookupVariable("nope")
	require.EqualError(t, err, "nope has no value")
}

func TestSetVariableValueUpdatesExistingInnerFrameElseGlobal(t *testing.T) {
	env := NewEnvironment()
	env.PushFrame(Frame{})
	env.SetVariableValue("y", WordValue("first"))
	env.SetVariableValue("y", WordValue("second"))

	v, err := env.LookupVariable("y")
	require.NoError(t, err)
	require.Equal(t, "second", v.Word)

	env.PopFrame()
	_, err = env.LookupVariable("y")
	require.NoError(t, err, "set_variable_value with no existing binding creates it in the global frame")
}

func TestDefineProcedureOverwritesPriorEntry(t *testing.T) {
	env := NewEnvironment()
	env.DefineProcedure("foo", &Procedure{Name: "foo", ArgCount: 0})
	env.DefineProcedure("foo", &Procedure{Name: "foo", ArgCount: 2})

	p, err := env.LookupProcedure("foo")
	require.NoError(t, err)
	require.Equal(t, 2, p.ArgCount)
}

func TestLookupProcedureMissingIsError(t *testing.T) {
	env := NewEnvironment()
	_, err := env.LookupProcedure("nope")
	require.EqualError(t, err, "I do not know how to nope.")
}
