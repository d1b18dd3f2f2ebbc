package input_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dannynchang/logo-interpreter/internal/input"
	"github.com/stretchr/testify/require"
)

func TestFileSourceStripsCommentsAndTracksLocation(t *testing.T) {
	src := input.NewFileSource(strings.NewReader("print 1 ; a comment\nprint 2\n"), "prog.logo")

	line, ok := src.NextTopLevelLine()
	require.True(t, ok)
	require.Equal(t, "print 1 ", line)
	require.Equal(t, "prog.logo:1", src.Location())

	line, ok = src.NextContinuationLine()
	require.True(t, ok)
	require.Equal(t, "print 2", line)

	_, ok = src.NextTopLevelLine()
	require.False(t, ok)
}

func TestStdinSourcePromptsBothReads(t *testing.T) {
	var out bytes.Buffer
	src := input.NewStdinSource(strings.NewReader("to double :n\nend\n"), &out)

	line, ok := src.NextTopLevelLine()
	require.True(t, ok)
	require.Equal(t, "to double :n", line)
	require.Equal(t, "? ", out.String())

	out.Reset()
	line, ok = src.NextContinuationLine()
	require.True(t, ok)
	require.Equal(t, "end", line)
	require.Equal(t, "  ", out.String())
}
