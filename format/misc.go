package format

import "github.com/zeek/zeekscript/output"

func init() {
	register("preproc", preprocFormat)
}

// preprocFormat lays out an `@if`/`@ifdef`/`@else`/`@endif` etc.
// preprocessor directive: its tokens space-separated, terminated by a
// newline (mirrors LineFormatter in the teacher-adjacent original).
func preprocFormat(f *Formatter) {
	if len(f.node.NonErrChildren) == 0 {
		f.FormatToken()
		return
	}
	for f.ChildrenRemaining() > 0 {
		f.FormatChild(false)
		if f.ChildrenRemaining() > 0 {
			f.Write([]byte(" "), output.NoLBBefore)
		}
	}
	f.WriteNl(true)
}
