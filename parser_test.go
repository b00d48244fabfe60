package lox

import (
	"testing"
)

func parse(t *testing.T, src string) ([]Stmt, []error) {
	t.Helper()
	toks, errs := NewTokenizer(src).Tokenize()
	expectNoErrors(t, errs)
	return NewParser(toks).Parse()
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		src  string
		tree string
	}{
		{"1 + 2 * 3 - 4;", "(; (- (+ 1 (* 2 3)) 4))"},
		{"1 - 2 - 3;", "(; (- (- 1 2) 3))"},
		{"8 / 4 / 2;", "(; (/ (/ 8 4) 2))"},
		{"1 < 2 == 3 >= 4;", "(; (== (< 1 2) (>= 3 4)))"},
		{"a == b != c;", "(; (!= (== a b) c))"},
		{"true ? 1 : false ? 2 : 3;", "(; (?: true 1 (?: false 2 3)))"},
		{"a ? b = 1 : 2;", "(; (?: a (assign b 1) 2))"},
		{"a = b = 3;", "(; (assign a (assign b 3)))"},
		{"-(1 + 2) * !true;", "(; (* (- (group (+ 1 2))) (! true)))"},
		{"--1;", "(; (- (- 1)))"},
		{"!!nil;", "(; (! (! nil)))"},
		{"\"a\" + 2.5;", "(; (+ a 2.5))"},
	}

	for _, test := range tests {
		stmts, errs := parse(t, test.src)
		if len(errs) != 0 {
			t.Errorf("%q: unexpected errors %v", test.src, errs)
			continue
		}
		if len(stmts) != 1 {
			t.Errorf("%q: expected 1 statement, got %d", test.src, len(stmts))
			continue
		}
		if got := stmts[0].String(); got != test.tree {
			t.Errorf("%q: expected %s, got %s", test.src, test.tree, got)
		}
	}
}

func TestParseStatements(t *testing.T) {
	stmts, errs := parse(t, "var a; var b = \"s\"; print a; { var c = 1; { c = 2; } } a;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}

	expected := []string{
		"(var a)",
		"(var b s)",
		"(print a)",
		"(block (var c 1) (block (; (assign c 2))))",
		"(; a)",
	}
	if len(stmts) != len(expected) {
		t.Fatalf("expected %d statements, got %d", len(expected), len(stmts))
	}
	for i, want := range expected {
		if got := stmts[i].String(); got != want {
			t.Errorf("statement %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src   string
		errs  []string
		stmts int
	}{
		{"+ 1;", []string{"[1:1] Error at '+': Missing left operand."}, 0},
		{"* 2; print 3;", []string{"[1:1] Error at '*': Missing left operand."}, 1},
		{"print < 1; print 2;", []string{"[1:7] Error at '<': Missing left operand."}, 1},
		{"1 = 2;", []string{"[1:3] Error at '=': Invalid assignment target."}, 1},
		{"(a) = 2; print 1;", []string{"[1:5] Error at '=': Invalid assignment target."}, 2},
		{"(1;", []string{"[1:3] Error at ';': Expect ')' after expression."}, 0},
		{"print 1", []string{"[1:8] Error at end: Expect ';' after value."}, 0},
		{"var 1 = 2;", []string{"[1:5] Error at '1': Expect variable name."}, 0},
		{"var a = 1", []string{"[1:10] Error at end: Expect ';' after variable declaration."}, 0},
		{"true ? 1;", []string{"[1:9] Error at ';': Expect ':' after then branch of ternary expression."}, 0},
		{"1 + 2", []string{"[1:6] Error at end: Expect ';' after expression."}, 0},
		{"{ print 1;", []string{"[1:11] Error at end: Expect '}' after block."}, 0},
		{")", []string{"[1:1] Error at ')': Expect expression."}, 0},
	}

	for _, test := range tests {
		stmts, errs := parse(t, test.src)
		if len(errs) != len(test.errs) {
			t.Errorf("%q: expected errors %v, got %v", test.src, test.errs, errs)
			continue
		}
		for i, err := range errs {
			if err.Error() != test.errs[i] {
				t.Errorf("%q: expected %q, got %q", test.src, test.errs[i], err)
			}
		}
		if len(stmts) != test.stmts {
			t.Errorf("%q: expected %d statements, got %d", test.src, test.stmts, len(stmts))
		}
	}
}

func TestParseRecoversPerStatement(t *testing.T) {
	stmts, errs := parse(t, "print 1; print ; var = 1; print 3;")

	expected := []string{
		"[1:16] Error at ';': Expect expression.",
		"[1:22] Error at '=': Expect variable name.",
	}
	if len(errs) != len(expected) {
		t.Fatalf("expected %d errors, got %v", len(expected), errs)
	}
	for i, err := range errs {
		if err.Error() != expected[i] {
			t.Errorf("expected %q, got %q", expected[i], err)
		}
	}

	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	if stmts[0].String() != "(print 1)" || stmts[1].String() != "(print 3)" {
		t.Errorf("unexpected statements %v", stmts)
	}
}

func TestParseSynchronizesAtStatementKeyword(t *testing.T) {
	// No ';' after the bad expression: recovery stops at 'print'.
	stmts, errs := parse(t, "1 + + 2 print 3;")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if len(stmts) != 1 || stmts[0].String() != "(print 3)" {
		t.Errorf("unexpected statements %v", stmts)
	}
}

func TestParseErrorInsideBlock(t *testing.T) {
	stmts, errs := parse(t, "{ print ; print 2; } print 3;")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}

	expected := []string{"(block (print 2))", "(print 3)"}
	if len(stmts) != len(expected) {
		t.Fatalf("expected %d statements, got %v", len(expected), stmts)
	}
	for i, want := range expected {
		if got := stmts[i].String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	stmts, errs := parse(t, "  // nothing here\n")
	if len(stmts) != 0 || len(errs) != 0 {
		t.Errorf("expected nothing, got %v %v", stmts, errs)
	}
}
