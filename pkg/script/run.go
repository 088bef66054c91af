package script

import "gobrush/pkg/canvas"

// Run is the single entry point for hosting shells: it tokenizes source,
// parses it, and executes the program against the borrowed canvas. The
// returned error is a *Error for lexing and execution failures, or an
// ErrorList holding every diagnostic of a failed parse.
func Run(source string, cv *canvas.Canvas) (*AgentState, error) {
	tokens, lerr := Lex(source)
	if lerr != nil {
		return nil, lerr
	}
	prog, perrs := Parse(tokens)
	if len(perrs) > 0 {
		return nil, perrs
	}
	state, xerr := NewInterpreter().Execute(prog, cv)
	if xerr != nil {
		return nil, xerr
	}
	return state, nil
}
