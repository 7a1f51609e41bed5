package format

func init() {
	register("nl", nlFormat)
	register("minor_comment", minorCommentFormat)
	register("zeekygen_head_comment", zeekygenHeadCommentFormat)
	register("zeekygen_next_comment", zeekygenNextCommentFormat)
	register("zeekygen_prev_comment", zeekygenPrevCommentFormat)
}

// nlFormat re-emits a user blank line, collapsing any run of
// consecutive ones down to a single blank line (spec.md §8 P8, never
// two in a row). Blank lines right after '{' or right before '}' are
// not treated specially: they are kept like any other.
func nlFormat(f *Formatter) {
	out := f.Out()
	if out.Column() != 0 {
		// Mid-line: this "nl" is the line terminator for whatever
		// preceded it, not a deliberate blank line.
		f.WriteNl(true)
		return
	}
	if out.LastLineBlank() {
		return
	}
	f.WriteNl(true)
}

// minorCommentFormat re-emits a `#` comment verbatim; its surrounding
// spacing (inline after code, or on its own line) is already decided
// by whether it arrived as a PrevCSTSibling/NextCSTSibling of the
// node it was anchored to.
func minorCommentFormat(f *Formatter) {
	if f.Out().Column() != 0 {
		f.WriteSp(1)
	}
	f.FormatToken()
	if f.node.IsCSTPrevNode {
		f.WriteNl(false)
	}
}

// zeekygenNextCommentFormat handles `##` Zeekygen comments that
// document the following declaration; always own-line. (`##!` comments
// go to zeekygenHeadCommentFormat.)
func zeekygenNextCommentFormat(f *Formatter) {
	f.FormatToken()
	f.WriteNl(true)
}

// zeekygenHeadCommentFormat handles `##!` file-header Zeekygen
// comments, always own-line, never re-grouped with what follows.
func zeekygenHeadCommentFormat(f *Formatter) {
	f.FormatToken()
	f.WriteNl(true)
}

// zeekygenPrevCommentFormat handles `##<` comments, which document
// the item they trail: kept on the same physical line when the output
// is mid-line at that point, else own-line.
func zeekygenPrevCommentFormat(f *Formatter) {
	if f.Out().Column() != 0 {
		f.WriteSp(1)
	}
	f.FormatToken()
	f.WriteNl(true)
}
