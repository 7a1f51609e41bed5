package zeekerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileErrorUnwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := &FileError{Path: "foo.zeek", Cause: cause}

	require.ErrorIs(t, err, cause)
	require.Equal(t, "foo.zeek: no such file", err.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ParseError{Cause: cause}

	require.ErrorIs(t, err, cause)
	require.Equal(t, "cannot parse script: unexpected EOF", err.Error())
}

func TestInternalErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("nil root")
	err := &InternalError{Cause: cause}

	require.ErrorIs(t, err, cause)
	require.Equal(t, "internal error: nil root", err.Error())
}

func TestDiagnosticString(t *testing.T) {
	require.Equal(t, "", Diagnostic{}.String())

	d := Diagnostic{Line: `global x: count;`, Lineno: 3, Msg: `cannot parse line 3, col 0: "global x: count;"`}
	require.Equal(t, `line 3: cannot parse line 3, col 0: "global x: count;"`, d.String())
}
