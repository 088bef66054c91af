package script

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Structural
	NEWLINE  // \n, the statement terminator
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	COMMA    // ,

	// Literals
	IDENTIFIER // variable / label name
	NUMBER     // decimal integer literal
	STRING     // string literal "..."

	// Command keywords (case-insensitive in source)
	SPAWN          // Spawn(x, y)
	COLOR          // Color(name)
	SIZE           // Size(n)
	DRAW_LINE      // DrawLine(dx, dy, len)
	DRAW_CIRCLE    // DrawCircle(dx, dy, r)
	DRAW_RECTANGLE // DrawRectangle(dx, dy, len, w, h)
	FILL           // Fill()
	GOTO           // GoTo[label](condition)

	// Query function keywords
	GET_ACTUAL_X    // GetActualX()
	GET_ACTUAL_Y    // GetActualY()
	GET_CANVAS_SIZE // GetCanvasSize()
	GET_COLOR_COUNT // GetColorCount(color, x1, y1, x2, y2)
	IS_BRUSH_COLOR  // IsBrushColor(color)
	IS_BRUSH_SIZE   // IsBrushSize(n)
	IS_CANVAS_COLOR // IsCanvasColor(color, dy, dx)

	// Operators
	ASSIGN     // <-
	PLUS       // +
	MINUS      // -
	STAR       // *
	SLASH      // /
	POWER      // **
	PERCENT    // %
	EQUALS     // ==
	GREATER    // >
	GREATER_EQ // >=
	LESS       // <
	LESS_EQ    // <=
	AND        // && or "and"
	OR         // || or "or"
)

var tokenNames = [...]string{
	EOF:             "EOF",
	NEWLINE:         "NEWLINE",
	LPAREN:          "LPAREN",
	RPAREN:          "RPAREN",
	LBRACKET:        "LBRACKET",
	RBRACKET:        "RBRACKET",
	COMMA:           "COMMA",
	IDENTIFIER:      "IDENTIFIER",
	NUMBER:          "NUMBER",
	STRING:          "STRING",
	SPAWN:           "SPAWN",
	COLOR:           "COLOR",
	SIZE:            "SIZE",
	DRAW_LINE:       "DRAW_LINE",
	DRAW_CIRCLE:     "DRAW_CIRCLE",
	DRAW_RECTANGLE:  "DRAW_RECTANGLE",
	FILL:            "FILL",
	GOTO:            "GOTO",
	GET_ACTUAL_X:    "GET_ACTUAL_X",
	GET_ACTUAL_Y:    "GET_ACTUAL_Y",
	GET_CANVAS_SIZE: "GET_CANVAS_SIZE",
	GET_COLOR_COUNT: "GET_COLOR_COUNT",
	IS_BRUSH_COLOR:  "IS_BRUSH_COLOR",
	IS_BRUSH_SIZE:   "IS_BRUSH_SIZE",
	IS_CANVAS_COLOR: "IS_CANVAS_COLOR",
	ASSIGN:          "ASSIGN",
	PLUS:            "PLUS",
	MINUS:           "MINUS",
	STAR:            "STAR",
	SLASH:           "SLASH",
	POWER:           "POWER",
	PERCENT:         "PERCENT",
	EQUALS:          "EQUALS",
	GREATER:         "GREATER",
	GREATER_EQ:      "GREATER_EQ",
	LESS:            "LESS",
	LESS_EQ:         "LESS_EQ",
	AND:             "AND",
	OR:              "OR",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// isCommand reports whether tt is one of the drawing command keywords.
// GOTO is a keyword too but parses as a jump statement, not a command.
func (tt TokenType) isCommand() bool {
	return tt >= SPAWN && tt <= FILL
}

// isFunction reports whether tt is one of the query function keywords.
func (tt TokenType) isFunction() bool {
	return tt >= GET_ACTUAL_X && tt <= IS_CANVAS_COLOR
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-15s %-18q  line %d", t.Type, t.Lexeme, t.Line)
}
