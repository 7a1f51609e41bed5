package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeek/zeekscript/internal/ztszeek"
	"github.com/zeek/zeekscript/script"
)

func formatSrc(t *testing.T, src string) string {
	t.Helper()
	sc := script.New(script.NewReader(strings.NewReader(src)), ztszeek.Parser{})
	ok, err := sc.Parse()
	require.NoError(t, err)
	require.True(t, ok)

	var out bytes.Buffer
	require.NoError(t, sc.Format(&out, true))
	return out.String()
}

func TestFormatPrintStatement(t *testing.T) {
	got := formatSrc(t, `event zeek_init() { print "hi" ; }`)
	require.Equal(t, "event zeek_init()\n\t{\n\tprint \"hi\";\n\t}\n", got)
}

func TestFormatIfElseNonCurlyBodies(t *testing.T) {
	src := `event zeek_init ( ) { if ( x ) print a ; else print b ; foo ( 1 , 2 ) ; }`
	got := formatSrc(t, src)
	want := "event zeek_init()\n" +
		"\t{\n" +
		"\tif ( x )\n" +
		"\t\tprint a;\n" +
		"\telse\n" +
		"\t\tprint b;\n" +
		"\tfoo(1, 2);\n" +
		"\t}\n"
	require.Equal(t, want, got)
}

func TestFormatIfCurlyBody(t *testing.T) {
	src := `event zeek_init() { if ( x ) { print a ; } }`
	got := formatSrc(t, src)
	want := "event zeek_init()\n" +
		"\t{\n" +
		"\tif ( x ) {\n" +
		"\t\tprint a;\n" +
		"\t}\n" +
		"\t}\n"
	require.Equal(t, want, got)
}

func TestFormatFuncHdrUsesFuncSymbolNotFunctionKeyword(t *testing.T) {
	got := formatSrc(t, `function foo ( x : count ) : count { return x ; }`)
	require.Equal(t, "function foo(x: count): count\n\t{\n\treturn x;\n\t}\n", got)
}

func TestFormatIndexSliceCompactWhenBothSidesAtomic(t *testing.T) {
	got := formatSrc(t, `event zeek_init() { data[1:2]; }`)
	require.Contains(t, got, "data[1:2];")
}

func TestFormatIndexSliceSpacesColonWhenLeftIsCompound(t *testing.T) {
	got := formatSrc(t, `event zeek_init() { data[1 - 1:]; }`)
	require.Contains(t, got, "data[1 - 1 :];")
}

func TestFormatIndexSliceSpacesBothSidesWhenCompoundAndNonEmpty(t *testing.T) {
	got := formatSrc(t, `event zeek_init() { data[1 - 1:1]; }`)
	require.Contains(t, got, "data[1 - 1 : 1];")
}

func TestFormatIntervalLiteralStripsSpaceBetweenScalarAndUnit(t *testing.T) {
	got := formatSrc(t, `global x = 3.5 hrs;`)
	require.Equal(t, "global x = 3.5hrs;\n", got)
}

func TestFormatLongBooleanChainBreaksAtOperator(t *testing.T) {
	cond := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa && bbbbbbbbbbbbbbbbbbbbbbbbbbbbbb && cccccccccccccccccccccccccccccc"
	got := formatSrc(t, "event zeek_init() { if ( "+cond+" ) print x; }")

	foundBreakBeforeOperator := false
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "&&") {
			foundBreakBeforeOperator = true
		}
	}
	require.True(t, foundBreakBeforeOperator, "want a line break before '&&' in a long boolean chain, got:\n%s", got)
}

func TestFormatWhileLoop(t *testing.T) {
	got := formatSrc(t, `event zeek_init() { while ( x ) print a ; }`)
	want := "event zeek_init()\n" +
		"\t{\n" +
		"\twhile ( x )\n" +
		"\t\tprint a;\n" +
		"\t}\n"
	require.Equal(t, want, got)
}
