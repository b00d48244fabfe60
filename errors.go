package lox

import "fmt"

// LoxError is a lexical error reported by the tokenizer.
type LoxError struct {
	line    int
	column  int
	where   string
	message string
}

func (e *LoxError) Error() string {
	return fmt.Sprintf(
		"[%d:%d] Error%s: %s",
		e.line, e.column, e.where, e.message,
	)
}

type ParseError struct {
	tok Token
	msg string
}

func (e *ParseError) Error() string {
	if e.tok.typ == EOF {
		return fmt.Sprintf("[%d:%d] Error at end: %s",
			e.tok.line, e.tok.column, e.msg)
	}
	return fmt.Sprintf("[%d:%d] Error at '%s': %s",
		e.tok.line, e.tok.column, e.tok.lexeme, e.msg)
}

// RuntimeError stops evaluation of the current run.
type RuntimeError struct {
	tok Token
	msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%d:%d] Runtime Error: %s",
		e.tok.line, e.tok.column, e.msg)
}

func (e *RuntimeError) Message() string { return e.msg }
func (e *RuntimeError) Token() Token    { return e.tok }
