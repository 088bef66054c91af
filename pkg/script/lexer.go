package script

import "unicode"

// keywords maps case-folded source text to its keyword TokenType.
// Lookup is case-insensitive; the token keeps the original-case lexeme.
var keywords = map[string]TokenType{
	"spawn":         SPAWN,
	"color":         COLOR,
	"size":          SIZE,
	"drawline":      DRAW_LINE,
	"drawcircle":    DRAW_CIRCLE,
	"drawrectangle": DRAW_RECTANGLE,
	"fill":          FILL,
	"goto":          GOTO,

	"getactualx":    GET_ACTUAL_X,
	"getactualy":    GET_ACTUAL_Y,
	"getcanvassize": GET_CANVAS_SIZE,
	"getcolorcount": GET_COLOR_COUNT,
	"isbrushcolor":  IS_BRUSH_COLOR,
	"isbrushsize":   IS_BRUSH_SIZE,
	"iscanvascolor": IS_CANVAS_COLOR,

	"and": AND,
	"or":  OR,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

// skipBlanks discards spaces, tabs and carriage returns. Newlines are
// statement terminators, never blank space.
func (l *Lexer) skipBlanks() {
	for {
		r := l.peek()
		if r != ' ' && r != '\t' && r != '\r' {
			return
		}
		l.advance()
	}
}

// isIdentStart reports whether r can begin an identifier.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r)
}

// isIdentPart reports whether r can continue an identifier.
func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.'
}

// scanIdent collects a full identifier or keyword token.
// The first character (a letter) must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	line := l.line
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := keywords[toLowerASCII(lexeme)]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line}
}

// scanNumber collects a decimal integer literal. A digit-initial run that
// continues with identifier characters is an invalid identifier.
func (l *Lexer) scanNumber() (Token, *Error) {
	line := l.line
	start := l.pos
	for l.pos < len(l.src) && unicode.IsDigit(l.peek()) {
		l.advance()
	}
	if r := l.peek(); unicode.IsLetter(r) || r == '_' || r == '.' {
		for l.pos < len(l.src) && isIdentPart(l.peek()) {
			l.advance()
		}
		return Token{}, syntaxErr(line, "invalid identifier %q: identifiers cannot start with a digit", string(l.src[start:l.pos]))
	}
	return Token{Type: NUMBER, Lexeme: string(l.src[start:l.pos]), Line: line}, nil
}

// scanString collects a string literal "...". There is no escape handling;
// an embedded newline or missing closing quote is a syntax error.
func (l *Lexer) scanString() (Token, *Error) {
	line := l.line
	l.advance() // consume opening "
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if r == '"' {
			lexeme := string(l.src[start:l.pos])
			l.advance() // consume closing "
			return Token{Type: STRING, Lexeme: lexeme, Line: line}, nil
		}
		if r == '\n' {
			return Token{}, syntaxErr(line, "unterminated string literal")
		}
		l.advance()
	}
	return Token{}, syntaxErr(line, "unterminated string literal")
}

// nextToken skips blanks and returns the next Token.
func (l *Lexer) nextToken() (Token, *Error) {
	l.skipBlanks()
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Lexeme: "", Line: l.line}, nil
	}

	ch := l.peek()
	line := l.line

	if isIdentStart(ch) {
		return l.scanIdent(), nil
	}
	if unicode.IsDigit(ch) {
		return l.scanNumber()
	}
	if ch == '"' {
		return l.scanString()
	}

	l.advance() // consume the character before the switch
	switch ch {
	case '\n':
		return Token{NEWLINE, "\n", line}, nil
	case '(':
		return Token{LPAREN, "(", line}, nil
	case ')':
		return Token{RPAREN, ")", line}, nil
	case '[':
		return Token{LBRACKET, "[", line}, nil
	case ']':
		return Token{RBRACKET, "]", line}, nil
	case ',':
		return Token{COMMA, ",", line}, nil
	case '+':
		return Token{PLUS, "+", line}, nil
	case '-':
		return Token{MINUS, "-", line}, nil
	case '/':
		return Token{SLASH, "/", line}, nil
	case '%':
		return Token{PERCENT, "%", line}, nil
	case '*':
		if l.peek() == '*' {
			l.advance()
			return Token{POWER, "**", line}, nil
		}
		return Token{STAR, "*", line}, nil
	case '=':
		if l.peek() == '=' { // lookahead: bare = is not an operator
			l.advance()
			return Token{EQUALS, "==", line}, nil
		}
		return Token{}, syntaxErr(line, "unexpected character '=': assignment is written <-, comparison ==")
	case '>':
		if l.peek() == '=' {
			l.advance()
			return Token{GREATER_EQ, ">=", line}, nil
		}
		return Token{GREATER, ">", line}, nil
	case '<':
		if l.peek() == '-' {
			l.advance()
			return Token{ASSIGN, "<-", line}, nil
		}
		if l.peek() == '=' {
			l.advance()
			return Token{LESS_EQ, "<=", line}, nil
		}
		return Token{LESS, "<", line}, nil
	case '&':
		if l.peek() == '&' {
			l.advance()
			return Token{AND, "&&", line}, nil
		}
		return Token{}, syntaxErr(line, "unexpected character '&': logical and is written && or and")
	case '|':
		if l.peek() == '|' {
			l.advance()
			return Token{OR, "||", line}, nil
		}
		return Token{}, syntaxErr(line, "unexpected character '|': logical or is written || or or")
	default:
		return Token{}, syntaxErr(line, "unexpected character %q", ch)
	}
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It fails fast on the first illegal character, unterminated string, or
// digit-initial identifier.
func Lex(src string) ([]Token, *Error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

// toLowerASCII lowercases A-Z only, which covers every keyword spelling.
func toLowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
