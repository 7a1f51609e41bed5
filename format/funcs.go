package format

func init() {
	register("func_decl", funcDeclFormat)
	register("func_hdr", funcHdrFormat)
	register("func", funcHdrVariantFormat)
	register("hook", funcHdrVariantFormat)
	register("event", funcHdrVariantFormat)
	register("func_body", funcBodyFormat)
	register("func_params", funcParamsFormat)
	register("formal_args", formalArgsFormat)
	register("formal_arg", formalArgFormat)
	register("capture_list", captureListFormat)
	register("capture", spaceSeparatedFormat)
	register("attr_list", spaceSeparatedFormat)
}

func funcDeclFormat(f *Formatter) {
	f.FormatChild(false) // <func_hdr>
	if f.PeekChildType(0) == "preproc" {
		f.WriteNl(false)
		for f.PeekChildType(0) == "preproc" {
			f.FormatChild(false) // <preproc>
			f.WriteNl(false)
		}
	}
	f.WriteNl(false)
	f.FormatChild(true) // <func_body>
	f.WriteNl(false)
}

func funcHdrFormat(f *Formatter) {
	f.FormatChild(false) // <func>, <hook>, or <event>
}

// funcHdrVariantFormat lays out the keyword-specific head: an optional
// leading 'redef' (for a redefinition of an existing hook/event
// signature), the keyword, the name, its parameter list, and any
// trailing attributes.
func funcHdrVariantFormat(f *Formatter) {
	if f.PeekChildType(0) == "redef" {
		f.FormatChild(false) // 'redef'
		f.WriteSp(1)
	}
	f.FormatChild(false) // 'function'/'hook'/'event'
	f.WriteSp(1)
	f.FormatChild(false) // <id>
	if f.PeekChildType(0) == "capture_list" {
		f.FormatChild(false)
	}
	f.FormatChild(false) // <func_params>
	if f.PeekChildType(0) == "attr_list" {
		f.WriteSp(1)
		f.FormatChild(false)
	}
}

func funcParamsFormat(f *Formatter) {
	f.FormatChild(false) // '('
	if f.PeekChildType(0) == "formal_args" {
		f.FormatChild(false)
	}
	f.FormatChild(false) // ')'
	if f.PeekChildType(0) == ":" {
		f.FormatChild(false) // ':'
		f.WriteSp(1)
		f.FormatChild(false) // <type>
	}
}

// funcBodyFormat lays out a function/event/hook body. Unlike the
// curly blocks under if/while/switch, the body's brace pair is on its
// own line and indented to the *same* column as the statements it
// holds (Whitesmith style, spec.md §4.3), rather than staying on the
// header's line K&R-style. funcDeclFormat arranges for this
// formatter's own indent to already be one level past the header, so
// '{', the statements, and '}' all land at that one level.
func funcBodyFormat(f *Formatter) {
	f.FormatChild(false) // '{'
	if f.PeekChildType(0) == "stmt_list" {
		f.WriteNl(false)
		f.FormatChild(false)
	} else {
		f.WriteSp(1)
	}
	f.FormatChild(false) // '}'
}

func formalArgsFormat(f *Formatter) {
	for f.PeekChildType(0) == "formal_arg" {
		f.FormatChild(false) // <formal_arg>
		if f.ChildrenRemaining() > 0 {
			f.FormatChild(false) // ',' or ';'
			f.WriteSp(1)
		}
	}
}

func formalArgFormat(f *Formatter) {
	f.FormatChildRange(2) // <id> ':'
	f.WriteSp(1)
	f.FormatChild(false) // <type>
	if f.PeekChildType(0) == "attr_list" {
		f.WriteSp(1)
		f.FormatChild(false)
	}
}

func captureListFormat(f *Formatter) {
	f.FormatChild(false) // '['
	for f.PeekChildType(0) == "capture" {
		f.FormatChild(false) // <capture>
		if f.PeekChildType(0) == "," {
			f.FormatChild(false)
			f.WriteSp(1)
		}
	}
	f.FormatChild(false) // ']'
	f.WriteSp(1)
}
