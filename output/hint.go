package output

// Hint is a non-binding or binding line-break signal carried by a
// fragment (spec.md §4.3 "Layout hints").
type Hint uint8

const (
	// GoodAfterLB advises breaking before this fragment once the line
	// is already too long (used for &&/||/+ in long chains).
	GoodAfterLB Hint = 1 << iota
	// NoLBBefore forbids a break immediately before this fragment.
	NoLBBefore
	// NoLBAfter forbids a break immediately after this fragment.
	NoLBAfter
	// ZeroWidth excludes this fragment from line-length accounting.
	// The stream honors it, but no formatter sets it: comments are
	// written without it and count toward line length.
	ZeroWidth
	// ComplexBlock names a nested expression/block rendered in
	// multi-line form. Nothing in this module sets or reads it.
	ComplexBlock
)

func (h Hint) has(flag Hint) bool { return h&flag != 0 }
