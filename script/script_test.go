package script_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeek/zeekscript/internal/ztszeek"
	"github.com/zeek/zeekscript/script"
)

func format(t *testing.T, src string) (string, bool) {
	t.Helper()
	sc := script.New(script.NewReader(strings.NewReader(src)), ztszeek.Parser{})
	ok, err := sc.Parse()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, sc.Format(&out, true))
	return out.String(), ok
}

func TestFormatGlobalDecl(t *testing.T) {
	got, ok := format(t, "global x : count = 0 ;")
	require.True(t, ok)
	require.Equal(t, "global x: count = 0;\n", got)
}

func TestFormatModuleDecl(t *testing.T) {
	got, ok := format(t, "module  Foo ;")
	require.True(t, ok)
	require.Equal(t, "module Foo;\n", got)
}

func TestFormatTypeDeclRecord(t *testing.T) {
	src := "type Info : record {\n\tname: string;\n\tcount: count;\n};\n"
	got, ok := format(t, src)
	require.True(t, ok)
	require.Equal(t, "type Info: record {\n\tname: string;\n\tcount: count;\n};\n", got)
}

func TestFormatIdempotent(t *testing.T) {
	first, ok := format(t, "global x : count = 0 ;\nglobal y : count = 1 ;\n")
	require.True(t, ok)

	second, ok := format(t, first)
	require.True(t, ok)
	require.Equal(t, first, second)
}

func TestHasErrorOnUnsupportedSyntax(t *testing.T) {
	sc := script.New(script.NewReader(strings.NewReader("!!! not zeek at all !!!\n")), ztszeek.Parser{})
	ok, err := sc.Parse()
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, sc.HasError())

	diag := sc.GetError()
	require.NotEmpty(t, diag.Msg)
}

func TestFormatBeforeParseIsInternalError(t *testing.T) {
	sc := script.New(script.NewReader(strings.NewReader("")), ztszeek.Parser{})
	var out bytes.Buffer
	err := sc.Format(&out, true)
	require.Error(t, err)
}
