package ztszeek

import (
	"strings"

	"github.com/zeek/zeekscript/parsetree"
)

// parser builds a node tree over a pragmatic subset of Zeek script
// grammar: module/export/global/const/option/redef/type declarations,
// event/function/hook declarations with bodies, if/for/while/when/
// switch/print/return/local/add/delete/next/break/fallthrough/
// expression statements, and common expression forms (literals, calls,
// field/index access, binary/unary operators, parenthesized
// sub-expressions). Anything outside that subset becomes an ERROR
// node spanning up to the next statement/declaration boundary, which
// the core tolerates by design (spec.md §4.4, §7).
type parser struct {
	lex    *lexer
	tok    token
	trivia []*node
}

// Parse parses src into a parsetree.Tree.
func Parse(src []byte) (parsetree.Tree, error) {
	p := &parser{lex: newLexer(src)}
	p.advance()
	root := p.parseSourceFile()
	return &tree{root: root, source: src}, nil
}

// Parser adapts Parse to the parsetree.Parser interface, so it can be
// handed to script.New as the module's built-in, non-tree-sitter
// grammar implementation.
type Parser struct{}

func (Parser) Parse(src []byte) (parsetree.Tree, error) { return Parse(src) }

func (p *parser) advance() token {
	old := p.tok
	for {
		t := p.lex.next()
		switch t.kind {
		case tokComment:
			p.trivia = append(p.trivia, commentNode(t))
			continue
		case tokBlankLine:
			p.trivia = append(p.trivia, &node{typ: "nl", isNamed: true, startByte: t.start, endByte: t.end, startPoint: t.startPt, endPoint: t.endPt})
			continue
		}
		p.tok = t
		break
	}
	return old
}

func commentNode(t token) *node {
	typ := "minor_comment"
	switch {
	case strings.HasPrefix(t.text, "##!"):
		typ = "zeekygen_head_comment"
	case strings.HasPrefix(t.text, "##<"):
		typ = "zeekygen_prev_comment"
	case strings.HasPrefix(t.text, "##"):
		typ = "zeekygen_next_comment"
	}
	return &node{typ: typ, isNamed: true, startByte: t.start, endByte: t.end, startPoint: t.startPt, endPoint: t.endPt}
}

// emit appends child to dst with the pending trivia kept in source
// order: trivia that start at or before child go ahead of it, trivia on
// the source row where child ends (a trailing comment) go right after
// it, and later trivia stay pending for the next emit.
func (p *parser) emit(dst *node, child *node) *node {
	var rest []*node
	for _, tr := range p.trivia {
		if tr.startByte <= child.startByte {
			dst.add(tr)
		} else {
			rest = append(rest, tr)
		}
	}
	dst.add(child)
	p.trivia = nil
	for _, tr := range rest {
		if len(p.trivia) == 0 && tr.startPoint.Row == child.endPoint.Row {
			dst.add(tr)
		} else {
			p.trivia = append(p.trivia, tr)
		}
	}
	return child
}

func (p *parser) at(text string) bool { return p.tok.text == text }

func (p *parser) atEOF() bool { return p.tok.kind == tokEOF }

// takeLit consumes the current token as an unnamed literal node
// appended to dst, and returns it.
func (p *parser) takeLit(dst *node) *node {
	t := p.advance()
	n := &node{typ: t.text, isNamed: false, startByte: t.start, endByte: t.end, startPoint: t.startPt, endPoint: t.endPt}
	return p.emit(dst, n)
}

// takeNamed consumes the current token as a named leaf node of the
// given grammar symbol (id/count/string_lit/...), appended to dst.
func (p *parser) takeNamed(dst *node, symbol string) *node {
	t := p.advance()
	n := &node{typ: symbol, isNamed: true, startByte: t.start, endByte: t.end, startPoint: t.startPt, endPoint: t.endPt}
	return p.emit(dst, n)
}

// expect consumes a token expected to equal text, appended to dst; if
// the current token doesn't match, a zero-width is_missing node is
// synthesized instead and nothing is consumed, mirroring tree-sitter's
// own error recovery (spec.md §4.1 "is_missing").
func (p *parser) expect(dst *node, text string) *node {
	if p.tok.text == text {
		return p.takeLit(dst)
	}
	n := &node{typ: text, isNamed: false, isMissing: true, hasError: true,
		startByte: p.tok.start, endByte: p.tok.start, startPoint: p.tok.startPt, endPoint: p.tok.startPt}
	return p.emit(dst, n)
}

// recoverToSemicolon wraps everything up to and including the next
// ';' (or end of input) into an ERROR node appended to dst, for
// constructs outside the supported subset.
func (p *parser) recoverToSemicolon(dst *node) {
	start, startPt := p.tok.start, p.tok.startPt
	end, endPt := start, startPt
	for !p.atEOF() {
		last := p.advance()
		end, endPt = last.end, last.endPt
		if last.text == ";" {
			break
		}
	}
	// Trivia inside the span are already part of the ERROR's own text.
	kept := p.trivia[:0]
	for _, tr := range p.trivia {
		if tr.startByte <= start || tr.startByte >= end {
			kept = append(kept, tr)
		}
	}
	p.trivia = kept
	n := &node{typ: "ERROR", isNamed: true, hasError: true, startByte: start, endByte: end, startPoint: startPt, endPoint: endPt}
	p.emit(dst, n)
}

func namedNode(typ string) *node {
	return &node{typ: typ, isNamed: true}
}

// closeSpan derives n's own byte/point span from its first and last
// children, once every child has been appended.
func closeSpan(n *node) *node {
	if len(n.children) == 0 {
		return n
	}
	first, last := n.children[0], n.children[len(n.children)-1]
	n.startByte, n.startPoint = first.startByte, first.startPoint
	n.endByte, n.endPoint = last.endByte, last.endPoint
	return n
}

// --- top level -----------------------------------------------------------

func (p *parser) parseSourceFile() *node {
	root := namedNode("source_file")
	for !p.atEOF() {
		switch {
		case p.at("module"):
			p.emit(root, closeSpan(p.parseModuleDecl()))
		case p.at("export"):
			p.emit(root, closeSpan(p.parseExportDecl()))
		case p.at("@"):
			p.emit(root, closeSpan(p.parsePreproc()))
		default:
			p.emit(root, closeSpan(p.wrapDecl()))
		}
	}
	for _, tr := range p.trivia {
		root.add(tr)
	}
	p.trivia = nil
	return closeSpan(root)
}

func (p *parser) parseModuleDecl() *node {
	n := namedNode("module_decl")
	p.takeLit(n)             // 'module'
	p.takeNamed(n, "id")     // <name>
	p.expect(n, ";")
	return n
}

func (p *parser) parseExportDecl() *node {
	n := namedNode("export_decl")
	p.takeLit(n) // 'export'
	p.expect(n, "{")
	for !p.at("}") && !p.atEOF() {
		p.emit(n, closeSpan(p.wrapDecl()))
	}
	p.expect(n, "}")
	return n
}

func (p *parser) parsePreproc() *node {
	n := namedNode("preproc")
	for !p.atEOF() && p.tok.kind != tokBlankLine {
		// a preprocessor directive runs to end of its source line; the
		// lexer already splits on real newlines via blank-line trivia,
		// so stop at the next keyword/decl boundary token instead.
		if p.at(";") || p.at("{") || p.at("}") {
			break
		}
		p.takeLit(n)
	}
	return n
}

// wrapDecl parses one declaration and wraps it in a generic "decl"
// node, the shape every global/const/option/redef/type/func/event/
// hook declaration shares at top level and inside export blocks.
func (p *parser) wrapDecl() *node {
	inner := closeSpan(p.parseOneDecl())
	if inner.typ == "decl" {
		// The unsupported-syntax recovery path already built its own
		// "decl" layer (see parseOneDecl's default case).
		return inner
	}
	wrapper := namedNode("decl")
	p.emit(wrapper, inner)
	return closeSpan(wrapper)
}

func (p *parser) parseOneDecl() *node {
	switch {
	case p.at("global"):
		return p.parseGlobalLike("global_decl")
	case p.at("option"):
		return p.parseGlobalLike("option_decl")
	case p.at("const"):
		return p.parseGlobalLike("const_decl")
	case p.at("redef"):
		return p.parseRedefDecl()
	case p.at("type"):
		return p.parseTypeDecl()
	case p.at("event"), p.at("hook"), p.at("function"):
		return p.parseFuncDecl(false)
	default:
		// Named "decl" so wrapDecl recognizes this already has its
		// "decl" layer (carrying any trivia recoverToSemicolon drained
		// ahead of the ERROR node) and doesn't wrap it a second time.
		n := namedNode("decl")
		p.recoverToSemicolon(n)
		return n
	}
}

func (p *parser) parseRedefDecl() *node {
	// 'redef' alone only disambiguates by what follows.
	la := p.peekAfterRedef()
	switch la {
	case "enum":
		return p.parseRedefEnumDecl()
	case "record":
		return p.parseRedefRecordDecl()
	case "event", "hook", "function":
		return p.parseFuncDecl(true)
	default:
		return p.parseGlobalLike("redef_decl")
	}
}

// peekAfterRedef inspects the token following 'redef' without
// consuming anything, by running a throwaway sub-lexer from the
// current position.
func (p *parser) peekAfterRedef() string {
	sub := &lexer{src: p.lex.src, pos: p.lex.pos, row: p.lex.row, col: p.lex.col}
	for {
		t := sub.next()
		if t.kind == tokComment || t.kind == tokBlankLine {
			continue
		}
		return t.text
	}
}

func (p *parser) parseGlobalLike(symbol string) *node {
	n := namedNode(symbol)
	p.takeLit(n)         // 'global'/'option'/'const'/'redef'
	p.takeNamed(n, "id") // <id>
	p.parseTypedInitializerInto(n)
	p.expect(n, ";")
	return n
}

// parseTypedInitializerInto appends the common "[: <type>]
// [<initializer>] [<attr_list>]" tail shared by globals and local/
// const statements.
func (p *parser) parseTypedInitializerInto(n *node) {
	if p.at(":") {
		p.takeLit(n) // ':'
		p.emit(n, closeSpan(p.parseType()))
	}
	if p.at("=") || p.at("+=") || p.at("-=") {
		p.emit(n, closeSpan(p.parseInitializer()))
	}
	if p.at("&") {
		p.emit(n, closeSpan(p.parseAttrList()))
	}
}

func (p *parser) parseInitializer() *node {
	n := namedNode("initializer")
	if p.at("=") || p.at("+=") || p.at("-=") {
		c := namedNode("init_class")
		p.takeLit(c)
		p.emit(n, closeSpan(c))
	}
	p.emit(n, closeSpan(p.parseInit()))
	return n
}

func (p *parser) parseInit() *node {
	n := namedNode("init")
	if p.at("{") {
		p.takeLit(n) // '{'
		for !p.at("}") && !p.atEOF() {
			p.emit(n, closeSpan(p.parseExpr()))
			if p.at(",") {
				p.takeLit(n)
			}
		}
		p.expect(n, "}")
	} else {
		p.emit(n, closeSpan(p.parseExpr()))
	}
	return n
}

func (p *parser) parseAttrList() *node {
	n := namedNode("attr_list")
	for p.at("&") {
		a := namedNode("attr")
		p.takeLit(a) // '&'
		p.takeNamed(a, "id")
		if p.at("=") {
			p.takeLit(a)
			p.emit(a, closeSpan(p.parseExpr()))
		}
		p.emit(n, closeSpan(a))
	}
	return n
}

func (p *parser) parseRedefEnumDecl() *node {
	n := namedNode("redef_enum_decl")
	p.takeLit(n)         // 'redef'
	p.takeLit(n)         // 'enum'
	p.takeNamed(n, "id") // <id>
	p.expect(n, "+=")
	p.expect(n, "{")
	p.emit(n, closeSpan(p.parseEnumBody()))
	p.expect(n, "}")
	p.expect(n, ";")
	return n
}

func (p *parser) parseRedefRecordDecl() *node {
	n := namedNode("redef_record_decl")
	p.takeLit(n)         // 'redef'
	p.takeLit(n)         // 'record'
	p.takeNamed(n, "id") // <id>
	p.expect(n, "+=")
	p.expect(n, "{")
	for !p.at("}") && !p.atEOF() {
		p.emit(n, closeSpan(p.parseTypeSpec()))
	}
	p.expect(n, "}")
	if p.at("&") {
		p.emit(n, closeSpan(p.parseAttrList()))
	}
	p.expect(n, ";")
	return n
}

func (p *parser) parseTypeDecl() *node {
	n := namedNode("type_decl")
	p.takeLit(n)         // 'type'
	p.takeNamed(n, "id") // <id>
	p.expect(n, ":")
	p.emit(n, closeSpan(p.parseType()))
	if p.at("&") {
		p.emit(n, closeSpan(p.parseAttrList()))
	}
	p.expect(n, ";")
	return n
}

func (p *parser) parseTypeSpec() *node {
	n := namedNode("type_spec")
	p.takeNamed(n, "id") // <id>
	p.expect(n, ":")
	p.emit(n, closeSpan(p.parseType()))
	if p.at("&") {
		p.emit(n, closeSpan(p.parseAttrList()))
	}
	p.expect(n, ";")
	return n
}

func (p *parser) parseEnumBody() *node {
	n := namedNode("enum_body")
	for !p.at("}") && !p.atEOF() {
		elem := namedNode("enum_body_elem")
		p.takeNamed(elem, "id")
		if p.at("=") {
			p.takeLit(elem)
			p.takeNamed(elem, "count")
		}
		p.emit(n, closeSpan(elem))
		if p.at(",") {
			p.takeLit(n)
		}
	}
	return n
}

// --- types -----------------------------------------------------------------

var baseTypeNames = map[string]bool{
	"addr": true, "bool": true, "count": true, "double": true, "string": true,
	"interval": true, "time": true, "pattern": true, "any": true, "opaque": true,
}

func (p *parser) parseType() *node {
	n := namedNode("type")
	switch {
	case p.at("set"):
		p.takeLit(n)
		p.parseTypeList(n)
	case p.at("table"):
		p.takeLit(n)
		p.parseTypeList(n)
		p.expect(n, "of")
		p.emit(n, closeSpan(p.parseType()))
	case p.at("vector"):
		p.takeLit(n)
		p.expect(n, "of")
		p.emit(n, closeSpan(p.parseType()))
	case p.at("record"):
		p.takeLit(n)
		p.expect(n, "{")
		for !p.at("}") && !p.atEOF() {
			p.emit(n, closeSpan(p.parseTypeSpec()))
		}
		p.expect(n, "}")
	case p.at("enum"):
		p.takeLit(n)
		p.expect(n, "{")
		p.emit(n, closeSpan(p.parseEnumBody()))
		p.expect(n, "}")
	case p.at("function"):
		p.takeLit(n)
		p.emit(n, closeSpan(p.parseFuncParams()))
	case p.at("event"), p.at("hook"):
		p.takeLit(n)
		p.expect(n, "(")
		if !p.at(")") {
			p.emit(n, closeSpan(p.parseFormalArgs()))
		}
		p.expect(n, ")")
	default:
		// Base type, "opaque of X", or a bare <id> type reference.
		if p.tok.kind == tokIdent {
			p.takeNamed(n, "id")
		} else {
			p.takeLit(n)
		}
		if p.at("of") {
			p.takeLit(n)
			p.emit(n, closeSpan(p.parseType()))
		}
	}
	return n
}

func (p *parser) parseTypeList(n *node) {
	p.expect(n, "[")
	for !p.at("]") && !p.atEOF() {
		p.emit(n, closeSpan(p.parseType()))
		if p.at(",") {
			p.takeLit(n)
		}
	}
	p.expect(n, "]")
}

// --- functions ---------------------------------------------------------

func (p *parser) parseFuncDecl(leadingRedef bool) *node {
	n := namedNode("func_decl")
	p.emit(n, closeSpan(p.parseFuncHdr(leadingRedef)))
	for p.at("@") {
		p.emit(n, closeSpan(p.parsePreproc()))
	}
	if p.at("{") {
		p.emit(n, closeSpan(p.parseFuncBody()))
	} else {
		p.expect(n, ";")
	}
	return n
}

func (p *parser) parseFuncHdr(leadingRedef bool) *node {
	n := namedNode("func_hdr")
	p.emit(n, closeSpan(p.parseFuncHdrVariant(leadingRedef)))
	return n
}

// funcHdrSymbol maps the keyword token text to the grammar symbol
// name its enclosing node takes, per the original grammar's 'func'/
// 'hook'/'event' node-type convention (the keyword text is "function",
// but the symbol is "func").
func funcHdrSymbol(kw string) string {
	if kw == "function" {
		return "func"
	}
	return kw
}

func (p *parser) parseFuncHdrVariant(leadingRedef bool) *node {
	kw := p.tok.text
	if leadingRedef {
		kw = p.peekAfterRedef()
	}
	n := namedNode(funcHdrSymbol(kw))
	if leadingRedef {
		p.takeLit(n) // 'redef'
	}
	p.takeLit(n)         // 'function'/'hook'/'event'
	p.takeNamed(n, "id") // <id>
	if p.at("[") {
		p.emit(n, closeSpan(p.parseCaptureList()))
	}
	p.emit(n, closeSpan(p.parseFuncParams()))
	if p.at("&") {
		p.emit(n, closeSpan(p.parseAttrList()))
	}
	return n
}

func (p *parser) parseCaptureList() *node {
	n := namedNode("capture_list")
	p.takeLit(n) // '['
	for !p.at("]") && !p.atEOF() {
		c := namedNode("capture")
		p.takeNamed(c, "id")
		p.emit(n, closeSpan(c))
		if p.at(",") {
			p.takeLit(n)
		}
	}
	p.expect(n, "]")
	return n
}

func (p *parser) parseFuncParams() *node {
	n := namedNode("func_params")
	p.expect(n, "(")
	if !p.at(")") {
		p.emit(n, closeSpan(p.parseFormalArgs()))
	}
	p.expect(n, ")")
	if p.at(":") {
		p.takeLit(n)
		p.emit(n, closeSpan(p.parseType()))
	}
	return n
}

func (p *parser) parseFormalArgs() *node {
	n := namedNode("formal_args")
	for !p.at(")") && !p.atEOF() {
		p.emit(n, closeSpan(p.parseFormalArg()))
		if p.at(",") || p.at(";") {
			p.takeLit(n)
		}
	}
	return n
}

func (p *parser) parseFormalArg() *node {
	n := namedNode("formal_arg")
	p.takeNamed(n, "id")
	p.expect(n, ":")
	p.emit(n, closeSpan(p.parseType()))
	if p.at("&") {
		p.emit(n, closeSpan(p.parseAttrList()))
	}
	return n
}

func (p *parser) parseFuncBody() *node {
	n := namedNode("func_body")
	p.takeLit(n) // '{'
	if !p.at("}") {
		p.emit(n, closeSpan(p.parseStmtList()))
	}
	p.expect(n, "}")
	return n
}

// --- statements --------------------------------------------------------

func (p *parser) parseStmtList() *node {
	n := namedNode("stmt_list")
	for !p.at("}") && !p.atEOF() {
		p.emit(n, closeSpan(p.parseStmt()))
	}
	return n
}

func (p *parser) childIsCurly() bool { return p.at("{") }

func (p *parser) parseStmt() *node {
	n := namedNode("stmt")
	switch {
	case p.at("{"):
		p.takeLit(n)
		if !p.at("}") {
			p.emit(n, closeSpan(p.parseStmtList()))
		}
		p.expect(n, "}")

	case p.at("print"):
		p.takeLit(n)
		p.emit(n, closeSpan(p.parseExprList()))
		p.expect(n, ";")

	case p.at("event"):
		p.takeLit(n)
		p.emit(n, closeSpan(p.parseEventHdr()))
		p.expect(n, ";")

	case p.at("if"):
		p.takeLit(n)
		p.expect(n, "(")
		p.emit(n, closeSpan(p.parseExpr()))
		p.expect(n, ")")
		p.emit(n, closeSpan(p.parseStmt()))
		if p.at("else") {
			p.takeLit(n)
			p.emit(n, closeSpan(p.parseStmt()))
		}

	case p.at("switch"):
		p.takeLit(n)
		p.emit(n, closeSpan(p.parseExpr()))
		p.expect(n, "{")
		if p.at("case") || p.at("default") {
			p.emit(n, closeSpan(p.parseCaseList()))
		}
		p.expect(n, "}")

	case p.at("for"):
		p.takeLit(n)
		p.expect(n, "(")
		if p.at("[") {
			p.takeLit(n)
			for !p.at("]") && !p.atEOF() {
				p.takeNamed(n, "id")
				if p.at(",") {
					p.takeLit(n)
				}
			}
			p.expect(n, "]")
		} else {
			p.takeNamed(n, "id")
		}
		for p.at(",") {
			p.takeLit(n)
			p.takeNamed(n, "id")
		}
		p.expect(n, "in")
		p.emit(n, closeSpan(p.parseExpr()))
		p.expect(n, ")")
		p.emit(n, closeSpan(p.parseStmt()))

	case p.at("while"):
		p.takeLit(n)
		p.expect(n, "(")
		p.emit(n, closeSpan(p.parseExpr()))
		p.expect(n, ")")
		p.emit(n, closeSpan(p.parseStmt()))

	case p.at("next"), p.at("break"), p.at("fallthrough"):
		p.takeLit(n)
		p.expect(n, ";")

	case p.at("return"):
		p.takeLit(n)
		switch {
		case p.at("when"):
			p.emit(n, closeSpan(p.parseWhen()))
			return closeSpan(n)
		case !p.at(";"):
			p.emit(n, closeSpan(p.parseExpr()))
		}
		p.expect(n, ";")

	case p.at("add"), p.at("delete"):
		p.takeLit(n)
		p.emit(n, closeSpan(p.parseExpr()))
		p.expect(n, ";")

	case p.at("local"), p.at("const"):
		p.takeLit(n)
		p.takeNamed(n, "id")
		p.parseTypedInitializerInto(n)
		p.expect(n, ";")

	case p.at("when"):
		p.emit(n, closeSpan(p.parseWhen()))

	case p.at(";"):
		p.takeLit(n)

	case p.at("@"):
		p.emit(n, closeSpan(p.parsePreproc()))

	default:
		p.emit(n, closeSpan(p.parseExpr()))
		p.expect(n, ";")
	}
	return n
}

func (p *parser) parseWhen() *node {
	n := namedNode("when")
	p.takeLit(n) // 'when'
	p.expect(n, "(")
	p.emit(n, closeSpan(p.parseExpr()))
	p.expect(n, ")")
	p.emit(n, closeSpan(p.parseStmt()))
	if p.at("timeout") {
		p.takeLit(n)
		p.emit(n, closeSpan(p.parseExpr()))
		p.expect(n, "{")
		if !p.at("}") {
			p.emit(n, closeSpan(p.parseStmtList()))
		}
		p.expect(n, "}")
	}
	return n
}

func (p *parser) parseCaseList() *node {
	n := namedNode("case_list")
	for p.at("case") || p.at("default") {
		if p.at("case") {
			p.takeLit(n)
			if p.at("type") {
				p.emit(n, closeSpan(p.parseCaseTypeList()))
			} else {
				p.emit(n, closeSpan(p.parseExprList()))
			}
		} else {
			p.takeLit(n)
		}
		p.expect(n, ":")
		if !p.at("case") && !p.at("default") && !p.at("}") {
			p.emit(n, closeSpan(p.parseStmtList()))
		}
	}
	return n
}

func (p *parser) parseCaseTypeList() *node {
	n := namedNode("case_type_list")
	for p.at("type") {
		p.takeLit(n)
		p.emit(n, closeSpan(p.parseType()))
		if p.at("as") {
			p.takeLit(n)
			p.takeNamed(n, "id")
		}
		if p.at(",") {
			p.takeLit(n)
		}
	}
	return n
}

func (p *parser) parseEventHdr() *node {
	n := namedNode("event_hdr")
	p.takeNamed(n, "id")
	p.expect(n, "(")
	if !p.at(")") {
		p.emit(n, closeSpan(p.parseExprList()))
	}
	p.expect(n, ")")
	return n
}

func (p *parser) parseExprList() *node {
	n := namedNode("expr_list")
	for !p.at(";") && !p.at(")") && !p.atEOF() {
		p.emit(n, closeSpan(p.parseExpr()))
		if p.at(",") {
			p.takeLit(n)
		} else {
			break
		}
	}
	return n
}

// --- expressions ---------------------------------------------------------

// precedence mirrors the common Zeek operator precedence, low to high.
var precedence = map[string]int{
	"||": 1, "&&": 2,
	"==": 3, "!=": 3, "<": 3, "<=": 3, ">": 3, ">=": 3, "in": 3, "!in": 3,
	"|": 4, "^": 4, "&": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func (p *parser) parseExpr() *node {
	return p.parseBinary(0)
}

func (p *parser) parseBinary(minPrec int) *node {
	left := p.parseUnaryPostfix()
	for {
		op := p.tok.text
		prec, ok := precedence[op]
		if !ok || prec < minPrec {
			return left
		}
		n := namedNode("expr")
		n.add(left)
		p.takeLit(n)
		if op == "!in" {
			// already a single token from the lexer.
		}
		right := p.parseBinary(prec + 1)
		n.add(right)
		left = closeSpan(n)
	}
}

func (p *parser) parseUnaryPostfix() *node {
	switch p.tok.text {
	case "!", "~", "-", "+", "|", "++", "--":
		n := namedNode("expr")
		p.takeLit(n)
		p.emit(n, closeSpan(p.parseUnaryPostfix()))
		return closeSpan(n)
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *parser) parsePostfix(base *node) *node {
	for {
		switch {
		case p.at("$"):
			n := namedNode("expr")
			n.add(base)
			p.takeLit(n) // '$'
			p.takeNamed(n, "id")
			base = closeSpan(n)

		case p.at("?$"):
			n := namedNode("expr")
			n.add(base)
			p.takeLit(n) // '?$'
			p.takeNamed(n, "id")
			base = closeSpan(n)

		case p.at("["):
			n := namedNode("expr")
			n.add(base)
			idx := namedNode("index_slice")
			p.takeLit(idx) // '['
			for !p.at("]") && !p.atEOF() {
				p.emit(idx, closeSpan(p.parseExpr()))
				if p.at(",") || p.at(":") {
					p.takeLit(idx)
				}
			}
			p.expect(idx, "]")
			p.emit(n, closeSpan(idx))
			base = closeSpan(n)

		case p.at("("):
			n := namedNode("expr")
			n.add(base)
			p.takeLit(n) // '('
			if !p.at(")") {
				p.emit(n, closeSpan(p.parseExprList()))
			}
			p.expect(n, ")")
			base = closeSpan(n)

		default:
			return base
		}
	}
}

// intervalUnits are the time-unit words that, directly following a
// numeric literal, turn it into an interval constant (`3.5hrs`,
// `1 sec`) rather than a bare number.
var intervalUnits = map[string]bool{
	"nsec": true, "nsecs": true,
	"usec": true, "usecs": true,
	"msec": true, "msecs": true,
	"sec": true, "secs": true, "second": true, "seconds": true,
	"min": true, "mins": true, "minute": true, "minutes": true,
	"hr": true, "hrs": true, "hour": true, "hours": true,
	"day": true, "days": true,
}

func (p *parser) parsePrimary() *node {
	n := namedNode("expr")
	switch {
	case p.at("("):
		p.takeLit(n) // '('
		p.emit(n, closeSpan(p.parseExpr()))
		p.expect(n, ")")

	case p.at("copy"):
		p.takeLit(n) // 'copy'
		p.expect(n, "(")
		p.emit(n, closeSpan(p.parseExpr()))
		p.expect(n, ")")

	case p.at("table"), p.at("set"), p.at("vector"), p.at("record"):
		p.takeLit(n)
		if p.at("(") {
			p.takeLit(n)
			if !p.at(")") {
				p.emit(n, closeSpan(p.parseExprList()))
			}
			p.expect(n, ")")
		}

	case p.tok.kind == tokString:
		p.takeNamed(n, "string_lit")

	case p.tok.kind == tokNumber:
		count := p.takeNamed(n, "count")
		if p.tok.kind == tokIdent && intervalUnits[p.tok.text] {
			// A number directly followed by a recognized time-unit
			// identifier is an interval literal (`3.5hrs`, `1 sec`),
			// not a bare numeric constant: re-home the count leaf
			// under a dedicated "interval" node alongside the unit.
			n.children = n.children[:len(n.children)-1]
			iv := namedNode("interval")
			iv.add(count)
			p.takeNamed(iv, "id")
			p.emit(n, closeSpan(iv))
		}

	case p.tok.kind == tokIdent || p.tok.kind == tokKeyword:
		p.takeNamed(n, "id")

	default:
		p.takeLit(n)
	}
	return n
}
