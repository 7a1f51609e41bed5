package est

import (
	"fmt"
	"io"
	"strings"
)

const dumpContentLimit = 100

// WriteTree renders the tree rooted at root in the parse-tree dump
// format of spec.md §6: one node per line, 4*depth leading spaces,
// `{type} (sr.sc,er.ec) [flags] ['content']`, CST nodes prefixed with
// `v ` (before their AST node) or `^ ` (after).
func WriteTree(w io.Writer, root *Node, source []byte, includeCST bool) error {
	var werr error
	Walk(root, includeCST, func(n *Node, depth int) {
		if werr != nil {
			return
		}
		_, werr = io.WriteString(w, dumpLine(n, depth, source))
	})
	return werr
}

func dumpLine(n *Node, depth int, source []byte) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 4*depth))

	if !n.IsAST {
		if n.IsCSTPrevNode {
			b.WriteString("v ")
		} else if n.IsCSTNextNode {
			b.WriteString("^ ")
		}
	}

	fmt.Fprintf(&b, "%s (%d.%d,%d.%d) ", n.Type, n.StartPoint.Row, n.StartPoint.Col, n.EndPoint.Row, n.EndPoint.Col)

	var flags []string
	if n.HasError {
		flags = append(flags, "error")
	}
	if n.IsMissing {
		flags = append(flags, "missing")
	}
	if len(flags) > 0 {
		fmt.Fprintf(&b, "[%s] ", strings.Join(flags, ", "))
	}

	if n.IsNamed {
		b.WriteString(dumpContent(n.Text(source)))
	}

	out := strings.TrimRight(b.String(), " ")
	return out + "\n"
}

// dumpContent renders a node's source snippet the way the dump format
// needs it: ASCII-filtered, truncated to dumpContentLimit bytes with
// a "[+N]" suffix for the elided remainder, single-quoted with the
// handful of escapes a human reads a control character as.
func dumpContent(raw []byte) string {
	extra := ""
	content := raw
	if len(content) > dumpContentLimit {
		extra = fmt.Sprintf("[+%d]", len(content)-dumpContentLimit)
		content = content[:dumpContentLimit]
	}

	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range string(content) {
		if r > 0x7f {
			continue // ascii-filtered, mirroring decode('ascii', 'ignore')
		}
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	b.WriteString(extra)
	return b.String()
}
