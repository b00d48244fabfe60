package lox

import (
	"fmt"
	"io"
)

type Interpreter struct {
	globals *Environment
	env     *Environment
	out     io.Writer
}

// NewInterpreter returns an interpreter whose print statements write to
// out. Its global scope survives across calls to Interpret.
func NewInterpreter(out io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{globals: globals, env: globals, out: out}
}

func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// Interpret executes stmts against the global scope.
func (i *Interpreter) Interpret(stmts []Stmt) error {
	return i.Run(stmts, i.globals)
}

// Run executes stmts in order against env and stops at the first runtime
// error. Output already written by earlier statements stays written.
func (i *Interpreter) Run(stmts []Stmt, env *Environment) error {
	prevEnv := i.env
	i.env = env
	defer func() { i.env = prevEnv }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) execute(stmt Stmt) error {
	switch s := stmt.(type) {
	case *VarDecl:
		var val any
		if s.expr != nil {
			var err error
			if val, err = i.evaluate(s.expr); err != nil {
				return err
			}
		}

		i.env.Define(s.name.lexeme, val)

		return nil
	case *ExprStmt:
		_, err := i.evaluate(s.expr)
		return err
	case *PrintStmt:
		value, err := i.evaluate(s.expr)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(i.out, Stringify(value))

		return err
	case *Block:
		return i.Run(s.stmts, NewEnvironment(i.env))
	default:
		panic(fmt.Sprintf(
			"Unimplemented Statement type: %T", s))
	}
}

func (i *Interpreter) evaluate(expr Expr) (any, error) {
	switch e := expr.(type) {
	case *Literal:
		return e.value, nil
	case *Grouping:
		return i.evaluate(e.expression)
	case *Variable:
		val, ok := i.env.Get(e.name.lexeme)
		if !ok {
			return nil, undefinedVariable(e.name)
		}

		return val, nil
	case *Assign:
		val, err := i.evaluate(e.value)
		if err != nil {
			return nil, err
		}

		if !i.env.Assign(e.name.lexeme, val) {
			return nil, undefinedVariable(e.name)
		}

		return val, nil
	case *Unary:
		return i.evalUnary(e)
	case *Binary:
		return i.evalBinary(e)
	case *Ternary:
		return i.evalTernary(e)
	default:
		panic(fmt.Sprintf(
			"Unimplemented Expression type: %T", e))
	}
}

func undefinedVariable(name Token) *RuntimeError {
	return &RuntimeError{name, "Undefined variable '" + name.lexeme + "'."}
}

func (i *Interpreter) evalUnary(expr *Unary) (any, error) {
	rhs, err := i.evaluate(expr.rhs)
	if err != nil {
		return nil, err
	}

	switch expr.op.typ {
	case BANG:
		return !IsTruthy(rhs), nil
	case MINUS:
		rhs, ok := rhs.(float64)
		if !ok {
			return nil, &RuntimeError{expr.op, "Operand must be a number."}
		}

		return -rhs, nil
	default:
		panic(fmt.Sprintf(
			"Unreachable: unexpected unary operator: %v", expr.op))
	}
}

func (i *Interpreter) evalBinary(expr *Binary) (any, error) {
	lhs, err := i.evaluate(expr.lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := i.evaluate(expr.rhs)
	if err != nil {
		return nil, err
	}

	switch expr.op.typ {
	case EQUAL_EQUAL:
		return IsEqual(lhs, rhs), nil
	case BANG_EQUAL:
		return !IsEqual(lhs, rhs), nil
	case PLUS:
		return addOrConcat(expr.op, lhs, rhs)
	}

	lhsN, lok := lhs.(float64)
	rhsN, rok := rhs.(float64)
	if !lok || !rok {
		return nil, &RuntimeError{expr.op, "Operands must be numbers."}
	}

	switch expr.op.typ {
	case LESS:
		return lhsN < rhsN, nil
	case LESS_EQUAL:
		return lhsN <= rhsN, nil
	case GREATER:
		return lhsN > rhsN, nil
	case GREATER_EQUAL:
		return lhsN >= rhsN, nil
	case MINUS:
		return lhsN - rhsN, nil
	case STAR:
		return lhsN * rhsN, nil
	case SLASH:
		// IEEE semantics: x/0 is ±Inf and 0/0 is NaN.
		return lhsN / rhsN, nil
	}

	panic("Unreachable.")
}

// addOrConcat tries number+number first, then string concatenation. A
// number on either side of a string is converted with Stringify.
func addOrConcat(op Token, lhs, rhs any) (any, error) {
	switch l := lhs.(type) {
	case float64:
		switch r := rhs.(type) {
		case float64:
			return l + r, nil
		case string:
			return Stringify(l) + r, nil
		}
	case string:
		switch r := rhs.(type) {
		case string:
			return l + r, nil
		case float64:
			return l + Stringify(r), nil
		}
	}

	return nil, &RuntimeError{op, "Operands must be two numbers or two strings."}
}

func (i *Interpreter) evalTernary(expr *Ternary) (any, error) {
	cond, err := i.evaluate(expr.condition)
	if err != nil {
		return nil, err
	}

	// The branch not taken is never evaluated.
	if IsTruthy(cond) {
		return i.evaluate(expr.trueBranch)
	}
	return i.evaluate(expr.falseBranch)
}
