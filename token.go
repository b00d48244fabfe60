package lox

import (
	"fmt"
)

type TokenType byte

const (
	// Single character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	SEMICOLON

	// Math operators
	MINUS
	PLUS
	SLASH
	STAR

	// Ternary
	QUESTION
	COLON

	// Assignment
	EQUAL

	// Comparison operators
	BANG
	BANG_EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL

	// Literals
	IDENTIFIER
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	EOF
)

var tokenTypeNames = [...]string{
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	COMMA:         "COMMA",
	DOT:           "DOT",
	SEMICOLON:     "SEMICOLON",
	MINUS:         "MINUS",
	PLUS:          "PLUS",
	SLASH:         "SLASH",
	STAR:          "STAR",
	QUESTION:      "QUESTION",
	COLON:         "COLON",
	EQUAL:         "EQUAL",
	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	AND:           "AND",
	CLASS:         "CLASS",
	ELSE:          "ELSE",
	FALSE:         "FALSE",
	FUN:           "FUN",
	FOR:           "FOR",
	IF:            "IF",
	NIL:           "NIL",
	OR:            "OR",
	PRINT:         "PRINT",
	RETURN:        "RETURN",
	SUPER:         "SUPER",
	THIS:          "THIS",
	TRUE:          "TRUE",
	VAR:           "VAR",
	WHILE:         "WHILE",
	EOF:           "EOF",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}

	panic(fmt.Sprintf("Invalid TokenType: %d", t))
}

// Token is one lexical unit. Tokens are never mutated once the
// tokenizer has produced them; AST nodes keep copies for error locations.
type Token struct {
	typ     TokenType
	lexeme  string
	literal any // float64, string, or nil
	line    int
	column  int
}

func (t Token) Type() TokenType { return t.typ }
func (t Token) Lexeme() string  { return t.lexeme }
func (t Token) Literal() any    { return t.literal }
func (t Token) Line() int       { return t.line }
func (t Token) Column() int     { return t.column }

func (t Token) String() string {
	if t.literal == nil {
		return fmt.Sprintf("%s %s nil", t.typ, t.lexeme)
	}
	return fmt.Sprintf("%s %s %s", t.typ, t.lexeme, Stringify(t.literal))
}
