package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamBasicLineAssembly(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, false, true)

	s.Write([]byte("global"), 0)
	s.WriteIndent(0)
	s.Write([]byte(" "), 0)
	s.Write([]byte("x"), 0)
	s.Write([]byte(";\n"), 0)

	require.NoError(t, s.Close())
	require.Equal(t, "global x;\n", buf.String())
}

func TestStreamTrailingWhitespaceStripped(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, false, true)

	s.Write([]byte("foo   \n"), 0)
	require.NoError(t, s.Close())
	require.Equal(t, "foo\n", buf.String())
}

func TestStreamClosesWithTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, false, true)

	s.Write([]byte("foo"), 0)
	require.NoError(t, s.Close())
	require.Equal(t, "foo\n", buf.String())
}

func TestStreamLastLineBlank(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, false, true)

	s.Write([]byte("a;\n"), 0)
	require.False(t, s.LastLineBlank())
	s.Write([]byte("\n"), 0)
	require.True(t, s.LastLineBlank())
	require.NoError(t, s.Close())
}

func TestStreamNoLinebreaksPassesThroughVerbatim(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, false, false)

	long := bytes.Repeat([]byte("x"), MaxLineLen*2)
	s.Write(long, 0)
	s.Write([]byte("\n"), 0)
	require.NoError(t, s.Close())
	require.Equal(t, string(long)+"\n", buf.String())
}

func TestStreamWriteRawBypassesLineBreaking(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, false, true)

	s.Write([]byte("a"), NoLBAfter)
	s.WriteRaw([]byte(" <garbage> "))
	s.Write([]byte("b;\n"), 0)

	require.NoError(t, s.Close())
	require.Equal(t, "a <garbage> b;\n", buf.String())
}
