package format

func init() {
	register("ERROR", errorFormat)
}

// errorFormat implements C7: an ERROR node's byte span is emitted
// verbatim, bypassing the line-breaking fragment buffer entirely, so
// unparsable source is never silently reflowed or dropped (spec.md
// §4.4). A single leading/trailing protective space keeps it from
// fusing with whatever well-formed token sits on either side once the
// surrounding formatter's own spacing decisions run.
func errorFormat(f *Formatter) {
	text := f.node.Text(f.source)
	if f.out.Column() != 0 {
		f.WriteRaw([]byte(" "))
	}
	f.WriteRaw(text)
	f.WriteRaw([]byte(" "))
}
