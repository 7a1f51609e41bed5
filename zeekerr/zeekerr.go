// Package zeekerr defines the error taxonomy of spec.md §7, grounded
// on the teacher's own error package (a SpecError wrapping a cause
// with a source row).
package zeekerr

import "fmt"

// FileError means the source could not be read at all; format aborts.
type FileError struct {
	Path  string
	Cause error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v: %v", e.Path, e.Cause)
}

func (e *FileError) Unwrap() error { return e.Cause }

// ParseError means the parser returned no usable tree whatsoever;
// format aborts. This is distinct from in-tree ERROR/is_missing/
// has_error nodes, which are tolerated (see Diagnostic below).
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse script: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// InternalError marks an invariant violation in the core itself: a
// bug, never an expected outcome of well-formed or even malformed
// input. Callers that hit one must emit the original source bytes
// unchanged rather than partial or garbled output (spec.md §7).
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Cause)
}

func (e *InternalError) Unwrap() error { return e.Cause }

// Diagnostic describes one in-tree ERROR/is_missing/has_error node:
// the offending source line, its 0-based line number, and a message
// in one of the three forms spec.md §6 specifies.
type Diagnostic struct {
	Line   string
	Lineno int
	Msg    string
}

func (d Diagnostic) String() string {
	if d.Msg == "" {
		return ""
	}
	return fmt.Sprintf("line %d: %v", d.Lineno, d.Msg)
}
