package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// testLineSource feeds a fixed slice of lines to an Interp, both as
// top-level and continuation reads (a "to ... end" body line is read the
// same way a fresh top-level line is), then reports end of input.
type testLineSource struct {
	lines []string
	pos   int
}

func (s *testLineSource) NextTopLevelLine() (string, bool)     { return s.next() }
func (s *testLineSource) NextContinuationLine() (string, bool) { return s.next() }

func (s *testLineSource) next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.pos]
	s.pos++
	return line, true
}

func runProgram(t *testing.T, lines ...string) string {
	var buf bytes.Buffer
	ip := New(WithOutput(&buf))
	ip.Src = &testLineSource{lines: lines}
	require.NoError(t, ip.Run(context.Background()))
	return buf.String()
}

func TestScenario1SumProductPrint(t *testing.T) {
	out := runProgram(t, `print sum product 3 4 8`)
	require.Equal(t, "20\nGoodbye\n", out)
}

func TestScenario2MakeThenPrintSum(t *testing.T) {
	out := runProgram(t, `make "x 12  print sum 5 :x`)
	require.Equal(t, "17\nGoodbye\n", out)
}

func TestScenario3FactorialViaIfelseAndOutput(t *testing.T) {
	out := runProgram(t,
		`to factorial :n`,
		`output ifelse equal? :n 1 [1] [product :n factorial difference :n 1]`,
		`end`,
		`print factorial 5`,
	)
	require.Equal(t, "120\nGoodbye\n", out)
}

func TestScenario4IfWithNonBooleanFirstArgIsError(t *testing.T) {
	out := runProgram(t, `if 1 [print 3]`)
	require.Equal(t, "First argument to \"if\" is not True or False: 1\nGoodbye\n", out)
}

func TestScenario5InfixPrecedence(t *testing.T) {
	out := runProgram(t, `print 3 + 4 * 5 + 6`)
	require.Equal(t, "29\nGoodbye\n", out)
}

func TestScenario6HelperSeesCallersFrameNotGlobal(t *testing.T) {
	out := runProgram(t,
		`make "x 3`,
		`to helper :y`,
		`output list :x :y`,
		`end`,
		`to scope :x`,
		`output helper 5`,
		`end`,
		`print scope 4`,
	)
	require.Equal(t, "4 5\nGoodbye\n", out)
}

func TestQuitEndsSessionWithoutEvaluatingFurtherLines(t *testing.T) {
	out := runProgram(t, `print 1`, `quit`, `print 2`)
	require.Equal(t, "1\nGoodbye\n", out)
}

func TestFrameBalanceAcrossAFailedTopLevelLine(t *testing.T) {
	var buf bytes.Buffer
	ip := New(WithOutput(&buf))
	ip.Src = &testLineSource{lines: []string{`print :nope`, `print 1`}}
	require.NoError(t, ip.Run(context.Background()))
	require.Equal(t, "nope has no value\n1\nGoodbye\n", buf.String())
	require.Equal(t, 1, ip.Env.FrameDepth())
}
