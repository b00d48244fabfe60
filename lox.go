// Package lox scans, parses, and evaluates Lox source text.
package lox

import (
	"fmt"
	"io"
)

// Exit codes for a finished run, following sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
)

// Result describes one pass of source through the pipeline. Scan and parse
// errors suppress evaluation, so RuntimeError is only set when both
// error lists are empty.
type Result struct {
	Statements   []Stmt
	ScanErrors   []error
	ParseErrors  []error
	RuntimeError error
}

func (r *Result) HadError() bool {
	return len(r.ScanErrors) > 0 || len(r.ParseErrors) > 0
}

func (r *Result) HadRuntimeError() bool {
	return r.RuntimeError != nil
}

func (r *Result) ExitCode() int {
	switch {
	case r.HadError():
		return ExitDataErr
	case r.HadRuntimeError():
		return ExitSoftware
	default:
		return ExitOK
	}
}

// Errors returns every diagnostic in the order it should be shown.
func (r *Result) Errors() []error {
	errs := make([]error, 0, len(r.ScanErrors)+len(r.ParseErrors)+1)
	errs = append(errs, r.ScanErrors...)
	errs = append(errs, r.ParseErrors...)
	if r.RuntimeError != nil {
		errs = append(errs, r.RuntimeError)
	}
	return errs
}

// Report writes one line per diagnostic to w.
func (r *Result) Report(w io.Writer) {
	for _, err := range r.Errors() {
		fmt.Fprintln(w, err)
	}
}

// Parse scans and parses source without evaluating it.
func Parse(source string) *Result {
	toks, scanErrs := NewTokenizer(source).Tokenize()
	stmts, parseErrs := NewParser(toks).Parse()

	return &Result{
		Statements:  stmts,
		ScanErrors:  scanErrs,
		ParseErrors: parseErrs,
	}
}

// Evaluate runs the parsed statements with interpreter unless scanning or
// parsing failed.
func (r *Result) Evaluate(interpreter *Interpreter) *Result {
	if !r.HadError() {
		r.RuntimeError = interpreter.Interpret(r.Statements)
	}
	return r
}

// Run feeds source through the tokenizer and parser and, when both are
// clean, evaluates it with interpreter.
func Run(source string, interpreter *Interpreter) *Result {
	return Parse(source).Evaluate(interpreter)
}
