package format

import (
	"github.com/zeek/zeekscript/est"
	"github.com/zeek/zeekscript/output"
)

func init() {
	register("expr", exprFormat)
	register("expr_list", exprListFormat)
	register("event_hdr", eventHdrFormat)
	register("index_slice", indexSliceFormat)
	register("interval", intervalFormat)
}

// noSpaceOps are unary/prefix operators that bind directly to their
// operand with no intervening space.
var noSpaceOps = map[string]bool{
	"|": true, "++": true, "--": true, "!": true, "~": true, "-": true, "+": true,
}

// goodAfterLBOps are the binary operators spec.md §4.3 marks
// GOOD_AFTER_LB: a long chain of them should break before the
// operator rather than wherever the line happens to overflow.
// parseBinary's left-recursive nesting puts each operator of a chain
// at its own <expr> level, so hinting every site here propagates the
// break preference through the whole chain without needing to check
// that every link uses the same operator.
var goodAfterLBOps = map[string]bool{
	"&&": true, "||": true, "+": true,
}

// exprFormat is the single dispatch point for every shape the <expr>
// grammar symbol can take: the grammar does not break expressions
// down into more specific symbols, so layout is chosen by peeking at
// the first few children (spec.md §4.3's canonical expression rules;
// ground truth for the exact peek conditions is the teacher-adjacent
// original's own expr dispatch).
func exprFormat(f *Formatter) {
	ct1 := f.PeekChildType(0)
	ct2 := f.PeekChildType(1)
	ct3 := f.PeekChildType(2)

	switch {
	case ct1 == "expr" && (ct2 == "[" || ct2 == "index_slice" || ct2 == "$"):
		f.FormatChildren(nil)

	case noSpaceOps[ct1]:
		f.FormatChildren(nil)

	case ct1 == "expr" && ct2 == "!" && ct3 == "in":
		f.FormatChild(false) // <expr>
		f.WriteSp(1)
		f.FormatChildRange(2) // '!' 'in'
		f.WriteSp(1)
		f.FormatChild(false) // <expr>

	case ct1 == "expr" && ct3 == "expr" && goodAfterLBOps[ct2]:
		f.FormatChild(false) // <expr>
		f.WriteSp(1)
		f.FormatChildHinted(false, output.GoodAfterLB) // '&&'/'||'/'+'
		f.WriteSp(1)
		f.FormatChild(false) // <expr>

	case ct1 == "[":
		f.FormatChild(false) // '['
		if f.PeekChildType(0) == "expr_list" {
			f.FormatChild(false)
		} else {
			f.WriteSp(1)
		}
		f.FormatChild(false) // ']'

	case ct1 == "$":
		f.FormatChildRange(2) // '$' <id>
		f.WriteSp(1)
		spaceSeparatedFormat(f)

	case ct1 == "(":
		f.FormatChildRange(3) // '(' <expr> ')'

	case ct1 == "copy":
		f.FormatChildRange(4) // 'copy' '(' <expr> ')'

	case ct2 == "?$":
		f.FormatChildRange(3) // <expr> '?$' <expr>

	case ct2 == "(":
		// Constructor-call forms: table(...), set(...), vector(...).
		f.FormatChildRange(2) // <id>/'table' '('
		if f.PeekChildType(0) == "expr_list" {
			f.FormatChild(false)
		}
		f.FormatChild(false) // ')'
		if f.PeekChildType(0) == "attr_list" {
			f.WriteSp(1)
			f.FormatChild(false)
		}

	default:
		spaceSeparatedFormat(f)
	}
}

func exprListFormat(f *Formatter) {
	for f.PeekChildType(0) == "expr" {
		f.FormatChild(false) // <expr>
		if f.ChildrenRemaining() > 0 {
			f.FormatChild(false) // ','
			f.WriteSp(1)
		}
	}
}

func eventHdrFormat(f *Formatter) {
	f.FormatChild(false) // <id>
	f.FormatChild(false) // '('
	if f.PeekChildType(0) == "expr_list" {
		f.FormatChild(false)
	}
	f.FormatChild(false) // ')'
}

// isAtomicIndexOperand reports whether an index/slice operand is
// "atomic" in spec.md §4.3's sense: a bare <id> or numeric <count>
// leaf. Anything else (a binary expression, a call, ...) is
// compound.
func isAtomicIndexOperand(n *est.Node) bool {
	if n == nil || n.Type != "expr" || len(n.NonErrChildren) != 1 {
		return false
	}
	switch n.NonErrChildren[0].Type {
	case "id", "count":
		return true
	}
	return false
}

// indexSliceFormat lays out the `[...]` of a postfix index/slice
// expression. A plain index (`xs[i]`) or a slice with atomic operands
// on both sides (`xs[1:2]`) stays compact; once either side of a ':'
// is a compound expression the colon gets a surrounding space, except
// on a side that's empty (`xs[1 - 1 :]`), which never gets a space of
// its own (spec.md §4.3 "Index slice").
func indexSliceFormat(f *Formatter) {
	f.FormatChild(false) // '['

	var left *est.Node // operand preceding the next ':' or ',', nil if empty
	for f.ChildrenRemaining() > 0 {
		switch f.PeekChildType(0) {
		case "]":
			f.FormatChild(false)

		case ",":
			f.FormatChild(false)
			f.WriteSp(1)
			left = nil

		case ":":
			right := f.PeekChild(1)
			rightEmpty := right == nil || right.Type == ":" || right.Type == "," || right.Type == "]"
			compound := (left != nil && !isAtomicIndexOperand(left)) ||
				(!rightEmpty && !isAtomicIndexOperand(right))

			if compound && left != nil {
				f.WriteSp(1)
			}
			f.FormatChild(false) // ':'
			if compound && !rightEmpty {
				f.WriteSp(1)
			}
			left = nil

		default:
			left = f.PeekChild(0)
			f.FormatChild(false) // <expr>
		}
	}
}

// intervalFormat lays out an interval literal (`3.5hrs`, `1sec`):
// spec.md §4.3 requires the whitespace between the scalar and its
// unit to be stripped, however the source wrote it.
func intervalFormat(f *Formatter) {
	f.FormatChildRange(2) // <count> <id>
}
