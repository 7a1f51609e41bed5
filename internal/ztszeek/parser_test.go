package ztszeek

import "testing"

func mustParse(t *testing.T, src string) *node {
	t.Helper()
	tr, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tr.RootNode().(*node)
}

func firstDecl(t *testing.T, root *node) *node {
	t.Helper()
	for _, c := range root.children {
		if c.typ == "decl" {
			return c.children[0]
		}
	}
	t.Fatalf("no decl child found under %+v", root)
	return nil
}

func TestParseGlobalDeclShape(t *testing.T) {
	root := mustParse(t, "global x: count = 0;")
	decl := firstDecl(t, root)
	if decl.typ != "global_decl" {
		t.Fatalf("got %q, want global_decl", decl.typ)
	}
	if decl.hasError {
		t.Fatalf("clean decl should not carry hasError")
	}
}

func TestParseMissingSemicolonSynthesizesIsMissing(t *testing.T) {
	root := mustParse(t, "global x: count = 0")
	decl := firstDecl(t, root)
	last := decl.children[len(decl.children)-1]
	if last.typ != ";" || !last.isMissing || !last.hasError {
		t.Fatalf("got %+v, want a synthesized is_missing ';'", last)
	}
	if !decl.hasError {
		t.Fatalf("hasError should propagate up from the missing ';'")
	}
}

func TestParseUnsupportedTopLevelBecomesError(t *testing.T) {
	root := mustParse(t, "!!! garbage !!!\n")
	decl := firstDecl(t, root)
	if decl.typ != "ERROR" || !decl.hasError {
		t.Fatalf("got %+v, want an ERROR node", decl)
	}
}

func TestParseRedefPlainGlobal(t *testing.T) {
	root := mustParse(t, "redef x: count = 1;")
	decl := firstDecl(t, root)
	if decl.typ != "redef_decl" {
		t.Fatalf("got %q, want redef_decl", decl.typ)
	}
}

func TestParseRedefRecordDecl(t *testing.T) {
	root := mustParse(t, "redef record Info += { extra: string; };")
	decl := firstDecl(t, root)
	if decl.typ != "redef_record_decl" {
		t.Fatalf("got %q, want redef_record_decl", decl.typ)
	}
}

func TestParseFuncHdrUsesFuncSymbol(t *testing.T) {
	root := mustParse(t, "function foo(): count { return 0; }")
	decl := firstDecl(t, root)
	if decl.typ != "func_decl" {
		t.Fatalf("got %q, want func_decl", decl.typ)
	}
	hdr := decl.children[0]
	if hdr.typ != "func_hdr" {
		t.Fatalf("got %q, want func_hdr", hdr.typ)
	}
	variant := hdr.children[0]
	if variant.typ != "func" {
		t.Fatalf("got %q, want 'func' symbol for a 'function' keyword decl", variant.typ)
	}
}

func TestParseEventHdrKeepsEventSymbol(t *testing.T) {
	root := mustParse(t, "event zeek_init() { }")
	decl := firstDecl(t, root)
	hdr := decl.children[0]
	variant := hdr.children[0]
	if variant.typ != "event" {
		t.Fatalf("got %q, want 'event' symbol", variant.typ)
	}
}

func TestParseNumberWithUnitBuildsIntervalNode(t *testing.T) {
	root := mustParse(t, "global x = 3.5 hrs;")
	decl := firstDecl(t, root)
	initializer := decl.children[2] // global_decl: 'global' <id> <initializer> ';'
	init := initializer.children[1]
	expr := init.children[0]
	iv := expr.children[0]
	if iv.typ != "interval" {
		t.Fatalf("got %q, want interval", iv.typ)
	}
	if len(iv.children) != 2 || iv.children[0].typ != "count" || iv.children[1].typ != "id" {
		t.Fatalf("interval children = %+v, want [count, id]", iv.children)
	}
}

func TestParseBareNumberStaysCount(t *testing.T) {
	root := mustParse(t, "global x = 5;")
	decl := firstDecl(t, root)
	initializer := decl.children[2]
	init := initializer.children[1]
	expr := init.children[0]
	lit := expr.children[0]
	if lit.typ != "count" {
		t.Fatalf("got %q, want count (no interval unit follows)", lit.typ)
	}
}

func TestParseCallExprFlattensIntoExpr(t *testing.T) {
	root := mustParse(t, "event zeek_init() { foo(1, 2); }")
	decl := firstDecl(t, root)
	body := decl.children[1] // func_body
	stmtList := body.children[1]
	stmt := stmtList.children[0]
	callExpr := stmt.children[0]
	if callExpr.typ != "expr" {
		t.Fatalf("got %q, want expr", callExpr.typ)
	}
	if len(callExpr.children) < 2 || callExpr.children[1].typ != "(" {
		t.Fatalf("call expr children = %+v, want [<expr>, '(', ...] flattened, not wrapped in call_args", callExpr.children)
	}
}
