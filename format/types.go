package format

func init() {
	register("type", typeFormat)
	register("type_spec", typeSpecFormat)
	register("enum_body", enumBodyFormat)
}

// spaceSeparatedFormat joins every remaining child with a single
// space: used directly for "capture"/"attr_list", and as
// the base fallback for <type> and <expr> dispatch.
func spaceSeparatedFormat(f *Formatter) {
	for f.ChildrenRemaining() > 0 {
		f.FormatChild(false)
		if f.ChildrenRemaining() > 0 {
			f.WriteSp(1)
		}
	}
}

func formatTypelist(f *Formatter) {
	f.FormatChild(false) // '['
	for f.PeekChildType(0) == "type" {
		f.FormatChild(false) // <type>
		if f.PeekChildType(0) == "," {
			f.FormatChild(false)
			f.WriteSp(1)
		}
	}
	f.FormatChild(false) // ']'
}

// typeFormat dispatches the <type> grammar symbol: set/table/record/
// enum/function/event/hook types each nest a bracketed body; every
// other base type (addr, count, "vector of X", a bare <id> reference)
// falls back to plain space-separated children.
func typeFormat(f *Formatter) {
	switch f.PeekChildType(0) {
	case "set":
		f.FormatChild(false) // 'set'
		formatTypelist(f)

	case "table":
		f.FormatChild(false) // 'table'
		formatTypelist(f)
		f.WriteSp(1)
		f.FormatChild(false) // 'of'
		f.WriteSp(1)
		f.FormatChild(false) // <type>

	case "record":
		f.FormatChild(false) // 'record'
		f.WriteSp(1)
		f.FormatChild(false) // '{'
		if f.PeekChildType(0) == "type_spec" {
			f.WriteNl(false)
			for f.PeekChildType(0) == "type_spec" {
				f.FormatChild(true)
			}
		} else {
			f.WriteSp(1) // empty record, keep on one line
		}
		f.FormatChild(false) // '}'

	case "enum":
		f.FormatChild(false) // 'enum'
		f.WriteSp(1)
		f.FormatChild(false) // '{'
		f.WriteNl(false)
		f.FormatChild(true) // enum_body
		f.FormatChild(false) // '}'

	case "function":
		f.FormatChildRange(2) // 'function' <func_params>

	case "event", "hook":
		f.FormatChildRange(2) // 'event'/'hook' '('
		if f.PeekChildType(0) == "formal_args" {
			f.FormatChild(false)
		}
		f.FormatChild(false) // ')'

	default:
		// Plain space-separation, e.g. "vector of foo" or a bare <id>.
		spaceSeparatedFormat(f)
	}
}

func typeSpecFormat(f *Formatter) {
	f.FormatChildRange(2) // <id> ':'
	f.WriteSp(1)
	f.FormatChild(false) // <type>
	if f.PeekChildType(0) == "attr_list" {
		f.WriteSp(1)
		f.FormatChild(false)
	}
	f.FormatChild(false) // ';'
	f.WriteNl(false)
}

func enumBodyFormat(f *Formatter) {
	for f.ChildrenRemaining() > 0 {
		f.FormatChild(false) // enum_body_elem
		if f.ChildrenRemaining() > 0 {
			f.FormatChild(false) // ',' (optional at the end of the list)
		}
		f.WriteNl(false)
	}
}
