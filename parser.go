package lox

import (
	"slices"
)

type Parser struct {
	tokens  []Token
	current int
	errs    []error
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) IsAtEnd() bool {
	return p.peekToken().typ == EOF
}

// program ::= declaration* EOF
//
// Parse collects every statement it can recover. A malformed statement is
// dropped and reported; parsing resumes at the next statement boundary.
func (p *Parser) Parse() ([]Stmt, []error) {
	stmts := []Stmt{}
	for !p.IsAtEnd() {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	return stmts, p.errs
}

// report records an error without unwinding.
func (p *Parser) report(err *ParseError) {
	p.errs = append(p.errs, err)
}

func (p *Parser) peekToken() Token {
	p.current = min(p.current, len(p.tokens)-1) // avoid passing EOF
	return p.tokens[p.current]
}

func (p *Parser) previousToken() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) peekIsOneOf(types ...TokenType) bool {
	return slices.Contains(types, p.peekToken().typ)
}

func (p *Parser) peekAndConsume() Token {
	tok := p.peekToken()
	if tok.typ != EOF {
		p.current++
	}

	return tok
}

func (p *Parser) consumeToken(typ TokenType, message string) Token {
	if tok := p.peekToken(); tok.typ == typ {
		p.current++
		return tok
	} else {
		panic(&ParseError{tok, message})
	}
}

func (p *Parser) tryConsume(typ TokenType) bool {
	if p.peekToken().typ == typ {
		p.current++
		return true
	}

	return false
}

func (p *Parser) consumeOneOf(types ...TokenType) (Token, bool) {
	tok := p.peekToken()
	if slices.Contains(types, tok.typ) {
		p.current++
		return tok, true
	}

	return tok, false
}

// synchronize skips the offending token, then everything up to a consumed
// ';' or a token that can begin a new statement.
func (p *Parser) synchronize() {
	p.peekAndConsume()

	for !p.IsAtEnd() {
		if p.previousToken().typ == SEMICOLON {
			return
		}

		if p.peekIsOneOf(CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN) {
			return
		}

		p.current++
	}
}

// declaration ::= varDecl | statement
//
// This is the only place a ParseError is recovered.
func (p *Parser) parseDeclaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(*ParseError); ok {
				p.report(err)
				p.synchronize()
				stmt = nil
			} else {
				panic(r) // real panic, let it crash
			}
		}
	}()

	if p.tryConsume(VAR) {
		return p.parseVarDecl()
	}

	return p.parseStatement()
}

// varDecl ::= "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) parseVarDecl() Stmt {
	name := p.consumeToken(IDENTIFIER, "Expect variable name.")

	var initializer Expr
	if p.tryConsume(EQUAL) {
		initializer = p.parseExpression()
	}

	p.consumeToken(SEMICOLON, "Expect ';' after variable declaration.")

	return &VarDecl{name, initializer}
}

// statement ::= printStmt | block | exprStmt
func (p *Parser) parseStatement() Stmt {
	switch {
	case p.tryConsume(PRINT):
		return p.parsePrintStmt()
	case p.tryConsume(LEFT_BRACE):
		return &Block{p.parseBlock()}
	default:
		return p.parseExprStmt()
	}
}

// print ::= "print" expression ";"
func (p *Parser) parsePrintStmt() Stmt {
	value := p.parseExpression()
	p.consumeToken(SEMICOLON, "Expect ';' after value.")

	return &PrintStmt{value}
}

// block ::= "{" declaration* "}"
func (p *Parser) parseBlock() []Stmt {
	stmts := []Stmt{}
	for !p.peekIsOneOf(RIGHT_BRACE, EOF) {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	p.consumeToken(RIGHT_BRACE, "Expect '}' after block.")

	return stmts
}

// exprStmt ::= expression ";"
func (p *Parser) parseExprStmt() Stmt {
	expr := p.parseExpression()
	p.consumeToken(SEMICOLON, "Expect ';' after expression.")

	return &ExprStmt{expr}
}

// expression ::= assignment
func (p *Parser) parseExpression() Expr {
	return p.parseAssignment()
}

// assignment ::= IDENTIFIER "=" assignment | equality
func (p *Parser) parseAssignment() Expr {
	expr := p.parseEquality()

	if tok, ok := p.consumeOneOf(EQUAL); ok {
		value := p.parseAssignment()

		if e, ok := expr.(*Variable); ok {
			return &Assign{e.name, value}
		}

		// Not fatal: the statement still parses to the end.
		p.report(&ParseError{tok, "Invalid assignment target."})
	}

	return expr
}

// equality ::= ternary ( ( "!=" | "==" ) comparison )*
func (p *Parser) parseEquality() Expr {
	expr := p.parseTernary()

	for p.peekIsOneOf(BANG_EQUAL, EQUAL_EQUAL) {
		op := p.peekAndConsume()
		rhs := p.parseComparison()
		expr = &Binary{expr, op, rhs}
	}

	return expr
}

// ternary ::= comparison ( "?" expression ":" expression )?
func (p *Parser) parseTernary() Expr {
	expr := p.parseComparison()

	if op, ok := p.consumeOneOf(QUESTION); ok {
		trueBranch := p.parseExpression()

		p.consumeToken(COLON, "Expect ':' after then branch of ternary expression.")

		falseBranch := p.parseExpression()

		return &Ternary{
			token:       op,
			condition:   expr,
			trueBranch:  trueBranch,
			falseBranch: falseBranch,
		}
	}

	return expr
}

// comparison ::= term ( ( '>' | '>=' | '<' | '<=' ) term )*
func (p *Parser) parseComparison() Expr {
	if op, ok := p.consumeOneOf(
		GREATER, GREATER_EQUAL, LESS, LESS_EQUAL,
	); ok {
		_ = p.parseTerm()
		panic(&ParseError{op, "Missing left operand."})
	}

	expr := p.parseTerm()
	for p.peekIsOneOf(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		op := p.peekAndConsume()
		rhs := p.parseTerm()
		expr = &Binary{expr, op, rhs}
	}

	return expr
}

// term ::= factor ( ( '-' | '+' ) factor )*
//
// A leading '-' is negation, so only '+' lacks a left operand here.
func (p *Parser) parseTerm() Expr {
	if op, ok := p.consumeOneOf(PLUS); ok {
		_ = p.parseFactor()
		panic(&ParseError{op, "Missing left operand."})
	}

	expr := p.parseFactor()
	for p.peekIsOneOf(MINUS, PLUS) {
		op := p.peekAndConsume()
		rhs := p.parseFactor()
		expr = &Binary{expr, op, rhs}
	}

	return expr
}

// factor ::= unary ( ( '*' | '/' ) unary )*
func (p *Parser) parseFactor() Expr {
	if op, ok := p.consumeOneOf(STAR, SLASH); ok {
		_ = p.parseUnary()
		panic(&ParseError{op, "Missing left operand."})
	}

	expr := p.parseUnary()
	for p.peekIsOneOf(SLASH, STAR) {
		op := p.peekAndConsume()
		rhs := p.parseUnary()
		expr = &Binary{expr, op, rhs}
	}

	return expr
}

// unary ::= ( '!' | '-' ) unary | primary
func (p *Parser) parseUnary() Expr {
	if op, ok := p.consumeOneOf(BANG, MINUS); ok {
		rhs := p.parseUnary()
		return &Unary{op, rhs}
	}

	return p.parsePrimary()
}

/*
 * primary ::= NUMBER | STRING
 * 			 | 'true' | 'false' | 'nil'
 * 			 | IDENTIFIER
 * 			 | "(" expression ")"
 */
func (p *Parser) parsePrimary() Expr {
	tok := p.peekToken()
	switch tok.typ {
	case NUMBER, STRING:
		p.current++
		return &Literal{tok.literal}
	case TRUE:
		p.current++
		return &Literal{true}
	case FALSE:
		p.current++
		return &Literal{false}
	case NIL:
		p.current++
		return &Literal{nil}
	case IDENTIFIER:
		p.current++
		return &Variable{tok}
	case LEFT_PAREN:
		p.current++
		expr := p.parseExpression()
		p.consumeToken(RIGHT_PAREN, "Expect ')' after expression.")

		return &Grouping{expr}
	default:
		panic(&ParseError{tok, "Expect expression."})
	}
}
