package ztszeek

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zeek/zeekscript/parsetree"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokPattern
	tokPunct   // operators/punctuation, exact text is the type
	tokKeyword // reserved word, exact text is the type
	tokComment
	tokBlankLine // a run of one or more blank source lines
)

type token struct {
	kind       tokenKind
	text       string
	start, end int
	startPt    parsetree.Point
	endPt      parsetree.Point
}

var keywords = map[string]bool{
	"module": true, "export": true, "global": true, "option": true,
	"const": true, "redef": true, "type": true, "record": true,
	"enum": true, "set": true, "table": true, "of": true, "vector": true,
	"function": true, "event": true, "hook": true, "return": true,
	"if": true, "else": true, "switch": true, "case": true, "default": true,
	"for": true, "while": true, "next": true, "break": true,
	"fallthrough": true, "add": true, "delete": true, "local": true,
	"when": true, "timeout": true, "print": true, "in": true, "as": true,
	"copy": true, "schedule": true, "addr": true, "count": true,
	"string": true, "bool": true, "double": true, "interval": true,
	"time": true, "pattern": true, "opaque": true, "any": true,
	"true": true, "false": true, "T": true, "F": true,
}

// multiCharPunct lists multi-byte operators, longest first so the
// lexer's greedy match never splits one early.
var multiCharPunct = []string{
	"?$", "!in", "+=", "-=", "*=", "/=", "==", "!=", "<=", ">=",
	"&&", "||", "+=", "++", "--", "::",
}

type lexer struct {
	src  []byte
	pos  int
	row  int
	col  int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src}
}

func (l *lexer) point() parsetree.Point { return parsetree.Point{Row: l.row, Col: l.col} }

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.row++
		l.col = 0
	} else {
		l.col++
	}
	return b
}

// next returns the next significant or trivia token. Comments and
// blank lines are trivia: the parser re-inserts them into the CST
// child stream at the point they were consumed from, rather than
// skipping them outright.
func (l *lexer) next() token {
	// Collapse runs of whitespace, tracking blank source lines.
	blankLines := 0
	sawNewlineSinceContent := l.pos == 0
	for l.pos < len(l.src) {
		b := l.peekByte()
		if b == '\n' {
			if sawNewlineSinceContent {
				blankLines++
			}
			sawNewlineSinceContent = true
			l.advance()
			continue
		}
		if b == ' ' || b == '\t' || b == '\r' {
			l.advance()
			continue
		}
		break
	}
	if blankLines > 0 {
		start := l.pos
		startPt := l.point()
		return token{kind: tokBlankLine, text: "", start: start, end: start, startPt: startPt, endPt: startPt}
	}

	if l.pos >= len(l.src) {
		return token{kind: tokEOF, start: l.pos, end: l.pos, startPt: l.point(), endPt: l.point()}
	}

	start := l.pos
	startPt := l.point()

	if l.peekByte() == '#' {
		for l.pos < len(l.src) && l.peekByte() != '\n' {
			l.advance()
		}
		return token{kind: tokComment, text: string(l.src[start:l.pos]), start: start, end: l.pos, startPt: startPt, endPt: l.point()}
	}

	r, size := utf8.DecodeRune(l.src[l.pos:])
	if r == '_' || unicode.IsLetter(r) {
		for l.pos < len(l.src) {
			// "::" joins a module-qualified name; a lone ':' ends it.
			if l.peekByte() == ':' && l.pos+1 < len(l.src) && l.src[l.pos+1] == ':' {
				l.advance()
				l.advance()
				continue
			}
			r, size := utf8.DecodeRune(l.src[l.pos:])
			if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			for i := 0; i < size; i++ {
				l.advance()
			}
		}
		text := string(l.src[start:l.pos])
		kind := tokIdent
		if keywords[text] {
			kind = tokKeyword
		}
		return token{kind: kind, text: text, start: start, end: l.pos, startPt: startPt, endPt: l.point()}
	}

	if unicode.IsDigit(r) {
		for l.pos < len(l.src) {
			b := l.peekByte()
			if (b >= '0' && b <= '9') || b == '.' || b == 'e' || b == 'E' ||
				b == 'x' || b == 'X' || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') ||
				b == '/' || b == 'm' || b == 's' || b == 'h' || b == 'd' || b == 'u' || b == '%' {
				l.advance()
				continue
			}
			break
		}
		return token{kind: tokNumber, text: string(l.src[start:l.pos]), start: start, end: l.pos, startPt: startPt, endPt: l.point()}
	}

	if r == '"' {
		l.advance()
		for l.pos < len(l.src) && l.peekByte() != '"' {
			if l.peekByte() == '\\' {
				l.advance()
			}
			if l.pos < len(l.src) {
				l.advance()
			}
		}
		if l.pos < len(l.src) {
			l.advance()
		}
		return token{kind: tokString, text: string(l.src[start:l.pos]), start: start, end: l.pos, startPt: startPt, endPt: l.point()}
	}

	if r == '/' {
		// Could be division or a pattern; the caller disambiguates by
		// context, so just return a single '/' punct token here.
	}

	for i := 0; i < size; i++ {
		l.advance()
	}

	rest := string(l.src[start:min(l.pos+3, len(l.src))])
	for _, mc := range multiCharPunct {
		if strings.HasPrefix(rest, mc) {
			for l.pos < start+len(mc) {
				l.advance()
			}
			return token{kind: tokPunct, text: mc, start: start, end: l.pos, startPt: startPt, endPt: l.point()}
		}
	}

	return token{kind: tokPunct, text: string(l.src[start:l.pos]), start: start, end: l.pos, startPt: startPt, endPt: l.point()}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
