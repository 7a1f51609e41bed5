// Package script implements C3, the Script entry point: it owns the
// source bytes and the Enriched Syntax Tree root, and exposes the
// parse/format/dump-tree operations of spec.md §6.
package script

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/zeek/zeekscript/est"
	"github.com/zeek/zeekscript/format"
	"github.com/zeek/zeekscript/output"
	"github.com/zeek/zeekscript/parsetree"
	"github.com/zeek/zeekscript/zeekerr"

	"go.uber.org/multierr"
)

// Script is a single Zeek script file: its source bytes, parse tree,
// and the operations the core exposes over them.
type Script struct {
	input  Input
	parser parsetree.Parser

	source []byte
	root   *est.Node
}

// New constructs a Script over the given input, read lazily by Parse
// using the given parser.
func New(input Input, parser parsetree.Parser) *Script {
	return &Script{input: input, parser: parser}
}

// Parse reads the source (if not already read), builds the Enriched
// Syntax Tree, and reports whether the tree is free of
// ERROR/is_missing/has_error nodes. A FileError or ParseError aborts
// parsing outright; in-tree error nodes do not.
func (s *Script) Parse() (bool, error) {
	if s.source == nil {
		src, err := s.readSource()
		if err != nil {
			return false, &zeekerr.FileError{Path: s.input.Path(), Cause: err}
		}
		s.source = src
	}

	tree, err := s.parser.Parse(s.source)
	if err != nil {
		return false, &zeekerr.ParseError{Cause: err}
	}
	if tree == nil || tree.RootNode() == nil {
		return false, &zeekerr.ParseError{Cause: fmt.Errorf("parser returned no tree")}
	}

	s.root = est.Build(tree)

	return !s.HasError(), nil
}

// Root returns the Enriched Syntax Tree root. Call Parse first.
func (s *Script) Root() *est.Node { return s.root }

// Source returns the script's source bytes. Call Parse first.
func (s *Script) Source() []byte { return s.source }

func (s *Script) readSource() ([]byte, error) {
	var raw []byte
	var err error

	switch {
	case s.input.kind == sourceStdin:
		raw, err = io.ReadAll(os.Stdin)
	case s.input.kind == sourceFile:
		raw, err = os.ReadFile(s.input.path)
	default:
		raw, err = io.ReadAll(s.input.reader)
	}
	if err != nil {
		return nil, err
	}

	return bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n")), nil
}

// HasError reports whether the tree has any ERROR, is_missing, or
// has_error node anywhere. Call Parse first.
func (s *Script) HasError() bool {
	if s.root == nil {
		return false
	}
	return est.HasError(s.root)
}

// GetError returns the first offending line, its 0-based line number,
// and a message describing the problem, per spec.md §6's three
// message forms. The zero Diagnostic means no error was found.
func (s *Script) GetError() zeekerr.Diagnostic {
	if s.root == nil {
		return zeekerr.Diagnostic{}
	}

	var diag zeekerr.Diagnostic
	found := false
	lines := bytes.Split(s.source, []byte("\n"))

	est.Walk(s.root, false, func(n *est.Node, _ int) {
		if found {
			return
		}

		var msg string
		switch {
		case n.IsError():
			snippet := truncateSnippet(s.source[n.StartByte:n.EndByte])
			msg = fmt.Sprintf("cannot parse line %d, col %d: %q", n.StartPoint.Row, n.StartPoint.Col, snippet)
		case n.IsMissing:
			msg = fmt.Sprintf("missing grammar node %q on line %d, col %d", n.Type, n.StartPoint.Row, n.StartPoint.Col)
		case n.HasError && !anyChildHasError(n):
			msg = fmt.Sprintf("grammar node %q has error on line %d, col %d", n.Type, n.StartPoint.Row, n.StartPoint.Col)
		default:
			return
		}

		found = true
		var line string
		if n.StartPoint.Row < len(lines) {
			line = string(lines[n.StartPoint.Row])
		}
		diag = zeekerr.Diagnostic{Line: line, Lineno: n.StartPoint.Row, Msg: msg}
	})

	return diag
}

// Errors returns every in-tree ERROR/is_missing/has_error diagnostic,
// aggregated with multierr, not just the first one GetError reports.
// Call Parse first. An added, Non-goals-compatible accessor for
// tooling that wants the complete picture.
func (s *Script) Errors() error {
	if s.root == nil {
		return nil
	}

	var all error
	est.Walk(s.root, false, func(n *est.Node, _ int) {
		switch {
		case n.IsError():
			all = multierr.Append(all, fmt.Errorf("line %d, col %d: parse error", n.StartPoint.Row, n.StartPoint.Col))
		case n.IsMissing:
			all = multierr.Append(all, fmt.Errorf("line %d, col %d: missing grammar node %q", n.StartPoint.Row, n.StartPoint.Col, n.Type))
		case n.HasError && !anyChildHasError(n):
			all = multierr.Append(all, fmt.Errorf("line %d, col %d: grammar node %q has error", n.StartPoint.Row, n.StartPoint.Col, n.Type))
		}
	})
	return all
}

func anyChildHasError(n *est.Node) bool {
	for _, c := range n.Children {
		if c.HasError {
			return true
		}
	}
	return false
}

func truncateSnippet(b []byte) string {
	const limit = 50
	if len(b) <= limit {
		return string(b)
	}
	return string(b[:limit]) + "[...]"
}

// Format renders the script's canonical output to w. Call Parse
// first. enableLinebreaks toggles the OutputStream's line-wrapping
// logic (§4.5); disabling it is a diagnostic/testing aid, not a style
// option (style is otherwise fixed, spec.md §1 Non-goals).
func (s *Script) Format(w io.Writer, enableLinebreaks bool) (err error) {
	if s.root == nil {
		return &zeekerr.InternalError{Cause: fmt.Errorf("Format called before Parse")}
	}

	defer func() {
		if r := recover(); r != nil {
			err = &zeekerr.InternalError{Cause: fmt.Errorf("panic while formatting: %v", r)}
		}
	}()

	stream := output.NewStream(w, w == os.Stdout, enableLinebreaks)
	format.Format(stream, s.source, s.root)
	return stream.Close()
}

// WriteTree writes the parse-tree dump format of spec.md §6 to w.
// includeCST additionally interleaves comments and newlines.
func (s *Script) WriteTree(w io.Writer, includeCST bool) error {
	if s.root == nil {
		return &zeekerr.InternalError{Cause: fmt.Errorf("WriteTree called before Parse")}
	}
	return est.WriteTree(w, s.root, s.source, includeCST)
}
