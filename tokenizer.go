package lox

import (
	"strconv"
)

var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

type position struct {
	line   int
	column int
}

type Tokenizer struct {
	source []rune
	tokens []Token

	start   int
	current int

	line      int
	lineStart int      // index of the first rune on the current line
	startPos  position // where the current lexeme began
}

func NewTokenizer(source string) *Tokenizer {
	t := new(Tokenizer)
	t.Init(source)
	return t
}

func (t *Tokenizer) Init(source string) {
	t.source = []rune(source)
	t.tokens = make([]Token, 0)

	t.start = 0
	t.current = 0
	t.line = 1
	t.lineStart = 0
}

// Tokenize scans the whole source. It never stops at an error: the returned
// slice always ends with exactly one EOF token.
func (t *Tokenizer) Tokenize() ([]Token, []error) {
	errs := make([]error, 0)
	for !t.isAtEnd() {
		t.start = t.current
		t.startPos = t.pos()
		errs = append(errs, t.scanToken()...)
	}
	t.tokens = append(t.tokens, Token{EOF, "", nil, t.line, t.pos().column})
	return t.tokens, errs
}

func (t *Tokenizer) scanToken() []error {
	c := t.advance()
	switch c {
	case ' ', '\r', '\t':
		// pass
	case '\n':
		t.newline()
	case '(':
		t.addToken(LEFT_PAREN, nil)
	case ')':
		t.addToken(RIGHT_PAREN, nil)
	case '{':
		t.addToken(LEFT_BRACE, nil)
	case '}':
		t.addToken(RIGHT_BRACE, nil)
	case ',':
		t.addToken(COMMA, nil)
	case '.':
		t.addToken(DOT, nil)
	case '-':
		t.addToken(MINUS, nil)
	case '+':
		t.addToken(PLUS, nil)
	case ';':
		t.addToken(SEMICOLON, nil)
	case '*':
		t.addToken(STAR, nil)
	case '?':
		t.addToken(QUESTION, nil)
	case ':':
		t.addToken(COLON, nil)
	case '!':
		if t.match('=') {
			t.addToken(BANG_EQUAL, nil)
		} else {
			t.addToken(BANG, nil)
		}
	case '=':
		if t.match('=') {
			t.addToken(EQUAL_EQUAL, nil)
		} else {
			t.addToken(EQUAL, nil)
		}
	case '<':
		if t.match('=') {
			t.addToken(LESS_EQUAL, nil)
		} else {
			t.addToken(LESS, nil)
		}
	case '>':
		if t.match('=') {
			t.addToken(GREATER_EQUAL, nil)
		} else {
			t.addToken(GREATER, nil)
		}
	case '/':
		switch {
		case t.match('/'):
			for !t.isAtEnd() && t.peekChar() != '\n' {
				t.current++
			}
		case t.match('*'):
			return t.scanBlockComment()
		default:
			t.addToken(SLASH, nil)
		}
	case '"':
		if err := t.scanString(); err != nil {
			return []error{err}
		}
	default:
		switch {
		case IsDigit(c):
			t.scanNumber()
		case IsAlpha(c):
			t.scanIdentifierOrKeyword()
		default:
			return []error{&LoxError{
				line:    t.startPos.line,
				column:  t.startPos.column,
				message: "Unexpected character: " + string(c),
			}}
		}
	}
	return nil
}

func (t *Tokenizer) addToken(typ TokenType, literal any) {
	text := string(t.source[t.start:t.current])
	t.tokens = append(
		t.tokens,
		Token{
			typ:     typ,
			lexeme:  text,
			literal: literal,
			line:    t.startPos.line,
			column:  t.startPos.column,
		},
	)
}

func (t *Tokenizer) isAtEnd() bool {
	return t.current >= len(t.source)
}

func (t *Tokenizer) pos() position {
	return position{t.line, t.current - t.lineStart + 1}
}

func (t *Tokenizer) newline() {
	t.line++
	t.lineStart = t.current
}

func (t *Tokenizer) advance() rune {
	c := t.source[t.current]
	t.current++
	return c
}

func (t *Tokenizer) match(expected rune) bool {
	if t.isAtEnd() || t.source[t.current] != expected {
		return false
	}
	t.current++
	return true
}

func (t *Tokenizer) peekChar() rune {
	if t.isAtEnd() {
		return 0
	}
	return t.source[t.current]
}

func (t *Tokenizer) peekNextChar() rune {
	if t.current+1 >= len(t.source) {
		return 0
	}
	return t.source[t.current+1]
}

func (t *Tokenizer) scanString() error {
	for !t.isAtEnd() && t.peekChar() != '"' {
		if t.advance() == '\n' {
			t.newline()
		}
	}
	if t.isAtEnd() {
		p := t.pos()
		return &LoxError{
			line:    p.line,
			column:  p.column,
			message: "Unterminated string.",
		}
	}
	// Consume closing quote
	t.current++

	str := string(t.source[t.start+1 : t.current-1])
	t.addToken(STRING, str)

	return nil
}

func (t *Tokenizer) scanNumber() {
	for IsDigit(t.peekChar()) {
		t.current++
	}
	if t.peekChar() == '.' && IsDigit(t.peekNextChar()) {
		t.current++ // consume the .
		for IsDigit(t.peekChar()) {
			t.current++
		}
	}

	// Digit-only input can only fail with ErrRange, where ParseFloat
	// already returns the saturated ±Inf.
	number, _ := strconv.ParseFloat(string(t.source[t.start:t.current]), 64)
	t.addToken(NUMBER, number)
}

func (t *Tokenizer) scanIdentifierOrKeyword() {
	for IsAlphaNumeric(t.peekChar()) {
		t.current++
	}
	text := string(t.source[t.start:t.current])
	typ, ok := keywords[text]
	if !ok {
		typ = IDENTIFIER
	}
	t.addToken(typ, nil)
}

// scanBlockComment discards a /* ... */ comment. Comments nest; every
// opening that is still unclosed at end of input gets its own error.
func (t *Tokenizer) scanBlockComment() []error {
	openings := Stack[position]{}
	openings.Push(t.startPos)

	for !openings.Empty() && !t.isAtEnd() {
		start := t.pos()
		switch t.advance() {
		case '\n':
			t.newline()
		case '/':
			if t.match('*') {
				openings.Push(start)
			}
		case '*':
			if t.match('/') {
				openings.Pop()
			}
		}
	}

	errs := make([]error, 0, len(openings))
	for _, p := range openings {
		errs = append(errs, &LoxError{
			line:    p.line,
			column:  p.column,
			message: "Unterminated block comment.",
		})
	}
	return errs
}
