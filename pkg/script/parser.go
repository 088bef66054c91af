package script

import "strconv"

// maxParseErrors caps how many diagnostics one parse pass accumulates
// before giving up early.
const maxParseErrors = 50

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program    = (statement? NEWLINE)* EOF
//	statement  = assignment | jump | command | label
//	assignment = IDENTIFIER "<-" expression
//	jump       = "GoTo" "[" IDENTIFIER "]" "(" expression ")"
//	command    = COMMAND "(" args ")"
//	label      = IDENTIFIER                (only token on its line)
//	args       = (expression ("," expression)*)?
//	expression = or
//	or         = and (("||" | "or") and)*
//	and        = equality (("&&" | "and") equality)*
//	equality   = relational ("==" relational)*
//	relational = additive (("<" | "<=" | ">" | ">=") additive)*
//	additive   = multiplicative (("+" | "-") multiplicative)*
//	multiplicative = power (("*" | "/" | "%") power)*
//	power      = unary ("**" unary)*
//	unary      = "-" unary | primary
//	primary    = NUMBER | STRING | "(" expression ")"
//	           | IDENTIFIER | FUNCTION "(" args ")" | IDENTIFIER "(" args ")"
//
// On a malformed statement the parser records the diagnostic, discards
// tokens up to the next newline, and continues, so one pass can report
// several errors.
type Parser struct {
	tokens []Token
	pos    int
	errs   ErrorList
}

// Parse builds a Program from tokens. The returned ErrorList is nil when
// the whole input parsed cleanly; otherwise it holds one diagnostic per
// failed statement, and the Program contains the statements that did parse.
func Parse(tokens []Token) (*Program, ErrorList) {
	p := &Parser{tokens: tokens}
	prog := &Program{}

	for {
		for p.peek().Type == NEWLINE {
			p.advance()
		}
		if p.peek().Type == EOF {
			break
		}

		stmt, err := p.parseStatement()
		if err == nil {
			if t := p.peek(); t.Type != NEWLINE && t.Type != EOF {
				err = syntaxErr(t.Line, "unexpected %s (%q) after statement", t.Type, t.Lexeme)
			}
		}
		if err != nil {
			p.errs = append(p.errs, err)
			if len(p.errs) >= maxParseErrors {
				break
			}
			p.synchronize()
			continue
		}
		prog.Statements = append(prog.Statements, stmt)
	}

	return prog, p.errs
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// peekNext returns the token immediately after the current one.
func (p *Parser) peekNext() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos+1]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, *Error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, syntaxErr(tok.Line, "expected %s, got %s (%q)", tt, tok.Type, tok.Lexeme)
	}
	return tok, nil
}

// synchronize discards tokens up to and including the next newline so the
// parser can resume at the next statement.
func (p *Parser) synchronize() {
	for p.peek().Type != NEWLINE && p.peek().Type != EOF {
		p.advance()
	}
	if p.peek().Type == NEWLINE {
		p.advance()
	}
}

// parseStatement dispatches on the first one or two tokens of the line.
func (p *Parser) parseStatement() (Stmt, *Error) {
	tok := p.peek()
	switch {
	case tok.Type == IDENTIFIER && p.peekNext().Type == ASSIGN:
		return p.parseAssignment()
	case tok.Type == GOTO:
		return p.parseJump()
	case tok.Type.isCommand():
		return p.parseCommand()
	case tok.Type == IDENTIFIER && (p.peekNext().Type == NEWLINE || p.peekNext().Type == EOF):
		p.advance()
		return &LabelStmt{Name: tok.Lexeme, Line: tok.Line}, nil
	default:
		return nil, syntaxErr(tok.Line, "no valid instruction starts with %s (%q)", tok.Type, tok.Lexeme)
	}
}

// parseAssignment parses  IDENTIFIER <- expression.
func (p *Parser) parseAssignment() (Stmt, *Error) {
	name := p.advance() // IDENTIFIER, checked by the dispatcher
	p.advance()         // <-
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err.withContext("in assignment to %s", name.Lexeme)
	}
	return &AssignStmt{Name: name.Lexeme, Expr: expr, Line: name.Line}, nil
}

// parseJump parses  GoTo [ label ] ( condition ).
func (p *Parser) parseJump() (Stmt, *Error) {
	kw := p.advance() // GOTO
	if _, err := p.expect(LBRACKET); err != nil {
		return nil, err.withContext("expected GoTo[label](condition)")
	}
	label, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err.withContext("expected GoTo[label](condition)")
	}
	if _, err := p.expect(RBRACKET); err != nil {
		return nil, err.withContext("expected GoTo[label](condition)")
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err.withContext("expected GoTo[label](condition)")
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err.withContext("in GoTo condition")
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err.withContext("expected GoTo[label](condition)")
	}
	return &JumpStmt{Label: label.Lexeme, Condition: cond, Line: kw.Line}, nil
}

// parseCommand parses  COMMAND ( args ).
func (p *Parser) parseCommand() (Stmt, *Error) {
	kw := p.advance()
	args, err := p.parseArgList(kw.Lexeme)
	if err != nil {
		return nil, err
	}
	return &CommandStmt{Keyword: kw.Type, Name: kw.Lexeme, Args: args, Line: kw.Line}, nil
}

// parseArgList parses  ( expr, expr, ... )  including both parentheses.
// Diagnostics are annotated with the callee name and the 1-based argument
// index that failed.
func (p *Parser) parseArgList(callee string) ([]Expr, *Error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err.withContext("in %s argument list", callee)
	}
	var args []Expr
	if p.peek().Type != RPAREN {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err.withContext("in argument %d of %s", len(args)+1, callee)
			}
			args = append(args, arg)
			if p.peek().Type != COMMA {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err.withContext("in %s argument list", callee)
	}
	return args, nil
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, *Error) {
	return p.parseOr()
}

// parseOr handles || / or
func (p *Parser) parseOr() (Expr, *Error) {
	expr, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == OR {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseAnd handles && / and
func (p *Parser) parseAnd() (Expr, *Error) {
	expr, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == AND {
		op := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseEquality handles ==
func (p *Parser) parseEquality() (Expr, *Error) {
	expr, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == EQUALS {
		op := p.advance()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseRelational handles <, <=, > and >=
func (p *Parser) parseRelational() (Expr, *Error) {
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		tt := p.peek().Type
		if tt != LESS && tt != LESS_EQ && tt != GREATER && tt != GREATER_EQ {
			break
		}
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseAdditive handles + and -
func (p *Parser) parseAdditive() (Expr, *Error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		tt := p.peek().Type
		if tt != PLUS && tt != MINUS {
			break
		}
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseMultiplicative handles *, / and %
func (p *Parser) parseMultiplicative() (Expr, *Error) {
	expr, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		tt := p.peek().Type
		if tt != STAR && tt != SLASH && tt != PERCENT {
			break
		}
		op := p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parsePower handles **
func (p *Parser) parsePower() (Expr, *Error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == POWER {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseUnary handles prefix minus, desugared to 0 - operand.
func (p *Parser) parseUnary() (Expr, *Error) {
	if p.peek().Type == MINUS {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		zero := &Literal{Value: intVal(0), Line: op.Line}
		return &BinaryExpr{Op: MINUS, Left: zero, Right: operand, Line: op.Line}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles literals, parenthesized expressions, variable
// references and function calls.
func (p *Parser) parsePrimary() (Expr, *Error) {
	tok := p.peek()
	switch {
	case tok.Type == NUMBER:
		p.advance()
		n, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			return nil, syntaxErr(tok.Line, "integer literal %q out of range", tok.Lexeme)
		}
		return &Literal{Value: intVal(n), Line: tok.Line}, nil

	case tok.Type == STRING:
		p.advance()
		return &Literal{Value: strVal(tok.Lexeme), Line: tok.Line}, nil

	case tok.Type == LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case tok.Type.isFunction():
		p.advance()
		args, err := p.parseArgList(tok.Lexeme)
		if err != nil {
			return nil, err
		}
		return &CallExpr{Fn: tok.Type, Name: tok.Lexeme, Args: args, Line: tok.Line}, nil

	case tok.Type == IDENTIFIER:
		p.advance()
		if p.peek().Type == LPAREN {
			// Call to a name the lexer did not recognize as a function;
			// rejected at execution time with the recorded line.
			args, err := p.parseArgList(tok.Lexeme)
			if err != nil {
				return nil, err
			}
			return &CallExpr{Fn: IDENTIFIER, Name: tok.Lexeme, Args: args, Line: tok.Line}, nil
		}
		return &VarRef{Name: tok.Lexeme, Line: tok.Line}, nil

	default:
		return nil, syntaxErr(tok.Line, "invalid primary expression: unexpected %s (%q)", tok.Type, tok.Lexeme)
	}
}
