// Package format implements C5 (formatter dispatch and the shared
// layout helpers), C6 (one layout rule per grammar symbol), and C7
// (the error-preserving formatter), per spec.md §4.3-§4.5.
package format

import (
	"bytes"

	"github.com/zeek/zeekscript/est"
	"github.com/zeek/zeekscript/output"
)

// FormatFunc lays out one node's worth of the tree into f's stream.
type FormatFunc func(f *Formatter)

// registry maps grammar symbol names to their layout rule. Population
// happens once, in the init() functions of this package's other files;
// after that the map is read-only
// (spec.md §9, "global registry mutation must be confined to
// initialization").
var registry = map[string]FormatFunc{}

func register(symbol string, fn FormatFunc) {
	registry[symbol] = fn
}

// lookup implements the dispatch rule of spec.md §4.3: unnamed or
// untyped nodes always get the default (verbatim token) formatter;
// named nodes consult the static registry, falling back to default.
func lookup(n *est.Node) FormatFunc {
	if !n.IsNamed || n.Type == "" {
		return defaultFormat
	}
	if fn, ok := registry[n.Type]; ok {
		return fn
	}
	return defaultFormat
}

// Format renders the tree rooted at root into stream, dispatching
// from the root node's own formatter.
func Format(stream *output.Stream, source []byte, root *est.Node) {
	f := &Formatter{source: source, node: root, out: stream}
	f.format()
}

// Formatter is the per-node formatting context: C5's dispatch target
// and the base every C6 layout rule is built from.
type Formatter struct {
	source []byte
	node   *est.Node
	out    *output.Stream
	indent int

	// extraHints carries the hints the parent asked to have applied
	// to this child's own emission (spec.md §4.3, "_format_child":
	// "Hints propagate to the AST child only").
	extraHints output.Hint

	// cidx is this formatter's cursor into node.NonErrChildren.
	cidx int
}

func (f *Formatter) format() {
	f.node.Formatter = f
	lookup(f.node)(f)
}

// Node, Source, Indent, and Out expose the formatter's immutable
// state to C6 layout rules living in other files of this package.
func (f *Formatter) Node() *est.Node     { return f.node }
func (f *Formatter) Source() []byte      { return f.source }
func (f *Formatter) Indent() int         { return f.indent }
func (f *Formatter) Out() *output.Stream { return f.out }

// defaultFormat is the fallback formatter (spec.md §4.3 step 1/3): it
// formats every remaining AST child, or emits its own byte span
// verbatim if it has none.
func defaultFormat(f *Formatter) {
	if len(f.node.NonErrChildren) > 0 {
		f.FormatChildren(nil)
	} else {
		f.FormatToken()
	}
}

// --- child iteration -------------------------------------------------------

func (f *Formatter) nextChild() *est.Node {
	if f.cidx >= len(f.node.NonErrChildren) {
		return nil
	}
	n := f.node.NonErrChildren[f.cidx]
	f.cidx++
	return n
}

// ChildrenRemaining reports how many AST children are still unconsumed.
func (f *Formatter) ChildrenRemaining() int {
	return len(f.node.NonErrChildren) - f.cidx
}

// PeekChildType returns the grammar symbol (or literal token text) of
// the child at the given offset from the cursor without consuming it;
// "" if there is none. offset 0 is the next unconsumed child.
func (f *Formatter) PeekChildType(offset int) string {
	c := f.PeekChild(offset)
	if c == nil {
		return ""
	}
	return c.Type
}

// PeekChild returns the child at the given offset from the cursor
// without consuming it, or nil.
func (f *Formatter) PeekChild(offset int) *est.Node {
	idx := f.cidx + offset
	if idx < 0 || idx >= len(f.node.NonErrChildren) {
		return nil
	}
	return f.node.NonErrChildren[idx]
}

func (f *Formatter) formatChildImpl(child *est.Node, indent bool, hints output.Hint) *Formatter {
	childIndent := f.indent
	if indent {
		childIndent++
	}
	cf := &Formatter{source: f.source, node: child, out: f.out, indent: childIndent, extraHints: hints}
	cf.format()
	return cf
}

// formatterOf returns the *Formatter a previously-formatted node
// back-linked to itself, if any (spec.md §3 "formatter back-pointer").
func formatterOf(n *est.Node) (*Formatter, bool) {
	if n == nil || n.Formatter == nil {
		return nil, false
	}
	fm, ok := n.Formatter.(*Formatter)
	return fm, ok
}

// FormatChild consumes the next AST child and formats it, bracketed
// by its associated error and CST siblings in the order spec.md §4.3
// specifies: prev_error_siblings, prev_cst_siblings, self,
// next_cst_siblings, next_error_siblings. No hints are applied.
func (f *Formatter) FormatChild(indent bool) {
	f.FormatChildHinted(indent, 0)
}

// FormatChildHinted is FormatChild, additionally applying hints to
// the AST child's own emission only.
func (f *Formatter) FormatChildHinted(indent bool, hints output.Hint) {
	node := f.nextChild()
	if node == nil {
		return
	}
	for _, e := range node.PrevErrorSiblings {
		f.formatChildImpl(e, indent, 0)
	}
	for _, c := range node.PrevCSTSiblings {
		f.formatChildImpl(c, indent, 0)
	}
	f.formatChildImpl(node, indent, hints)
	for _, c := range node.NextCSTSiblings {
		f.formatChildImpl(c, indent, 0)
	}
	for _, e := range node.NextErrorSiblings {
		f.formatChildImpl(e, indent, 0)
	}
}

// FormatChildRange formats n consecutive children with NO_LB_AFTER
// between them and NO_LB_BEFORE on the last, so the run never breaks
// internally (spec.md §4.3 "_format_child_range").
func (f *Formatter) FormatChildRange(n int) {
	for i := 0; i < n; i++ {
		var h output.Hint
		if i < n-1 {
			h |= output.NoLBAfter
		}
		if i == n-1 {
			h |= output.NoLBBefore
		}
		f.FormatChildHinted(false, h)
	}
}

// FormatChildren formats every remaining child, writing sep literally
// between consecutive children when non-nil. When sep is nil and
// consecutive children are both "decl" nodes, a blank line is added
// between them when declSeparatorNeeded says the two belong to
// different declaration groups; this is what makes top-level source
// files and export blocks group declarations the same way.
func (f *Formatter) FormatChildren(sep []byte) {
	var prev *est.Node
	for f.ChildrenRemaining() > 0 {
		cur := f.PeekChild(0)
		if sep == nil && prev != nil && prev.Type == "decl" && cur.Type == "decl" && declSeparatorNeeded(prev, cur) {
			f.WriteNl(true)
		}
		f.FormatChild(false)
		prev = cur
		if sep != nil && f.ChildrenRemaining() > 0 {
			f.Write(sep, 0)
		}
	}
}

// FormatToken emits this node's own byte span verbatim.
func (f *Formatter) FormatToken() {
	f.Write(f.node.Text(f.source), 0)
}

// --- low-level write helpers -------------------------------------------------

// Write sends data to the output stream under the given hints (OR'd
// with any hints the parent attached to this whole child), indenting
// transparently at the start of a line.
func (f *Formatter) Write(data []byte, hints output.Hint) {
	if len(data) == 0 {
		return
	}
	if data[0] != '\n' && f.out.Column() == 0 {
		f.out.WriteIndent(f.indent)
		data = bytes.TrimLeft(data, " \t")
		if len(data) == 0 {
			return
		}
	}
	f.out.Write(data, hints|f.extraHints)
}

// WriteSp writes n literal spaces.
func (f *Formatter) WriteSp(n int) {
	if n <= 0 {
		n = 1
	}
	f.Write(bytes.Repeat([]byte{' '}, n), 0)
}

// WriteNl writes a single newline, unless the stream is already at
// the start of a line and force is false (spec.md's original
// "_write_nl" de-duplicates accidental double newlines from callers
// that don't track column state themselves).
func (f *Formatter) WriteNl(force bool) {
	if f.out.Column() == 0 && !force {
		return
	}
	f.Write([]byte("\n"), 0)
}

// WriteRaw bypasses the line-breaking fragment buffer entirely,
// emitting data unmodified (beyond trailing-whitespace stripping).
// Used only by the error-preserving formatter (C7).
func (f *Formatter) WriteRaw(data []byte) {
	f.out.WriteRaw(data)
}
