package script

import (
	"gobrush/pkg/canvas"
)

// AgentState is the virtual pen: a position on the canvas, a brush color
// and an odd positive brush size. The brush starts transparent, so a
// program that never calls Color moves the agent without painting.
type AgentState struct {
	X, Y       int
	BrushColor canvas.Color
	BrushSize  int
	Spawned    bool
}

// Interpreter walks a parsed Program statement by statement, driving a
// borrowed Canvas. All state is reset at the start of every Execute call;
// nothing survives between runs. One Interpreter must not run two programs
// concurrently.
type Interpreter struct {
	canvas *canvas.Canvas
	agent  AgentState
	vars   map[string]Value
	labels map[string]int
	pc     int
}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// reset puts the interpreter in its initial state for one run.
func (in *Interpreter) reset(cv *canvas.Canvas) {
	in.canvas = cv
	in.agent = AgentState{BrushColor: canvas.Transparent, BrushSize: 1}
	in.vars = make(map[string]Value)
	in.labels = make(map[string]int)
	in.pc = 0
}

// Execute runs prog against cv and returns the final agent state, or the
// first error hit. The interpreter does not recover: the first semantic or
// execution failure aborts the run. A program whose jump graph never
// terminates runs forever; callers wanting a bound must impose it
// externally.
func (in *Interpreter) Execute(prog *Program, cv *canvas.Canvas) (*AgentState, *Error) {
	in.reset(cv)

	// Label pre-pass: record each label's statement index. Lookup is
	// case-sensitive, here and at jump time.
	for i, st := range prog.Statements {
		if l, ok := st.(*LabelStmt); ok {
			if prev, dup := in.labels[l.Name]; dup {
				return nil, semanticErr(l.Line, "duplicate label %q (first declared on line %d)",
					l.Name, prog.Statements[prev].Pos())
			}
			in.labels[l.Name] = i
		}
	}

	for in.pc < len(prog.Statements) {
		switch s := prog.Statements[in.pc].(type) {
		case *LabelStmt:
			in.pc++

		case *AssignStmt:
			v, err := in.eval(s.Expr)
			if err != nil {
				return nil, err
			}
			in.vars[s.Name] = v
			in.pc++

		case *JumpStmt:
			cond, err := in.eval(s.Condition)
			if err != nil {
				return nil, err
			}
			if cond.Kind != BoolValue {
				return nil, executionErr(s.Line, "GoTo condition must be a boolean, got %s", cond.Kind)
			}
			if !cond.Bool {
				in.pc++
				continue
			}
			target, ok := in.labels[s.Label]
			if !ok {
				return nil, semanticErr(s.Line, "undefined label %q", s.Label)
			}
			in.pc = target

		case *CommandStmt:
			if err := in.runCommand(s); err != nil {
				return nil, err
			}
			in.pc++
		}
	}

	final := in.agent
	return &final, nil
}

//  Commands

// clampDir squeezes a direction component into {-1, 0, 1}.
func clampDir(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func (in *Interpreter) runCommand(s *CommandStmt) *Error {
	switch s.Keyword {
	case SPAWN:
		return in.cmdSpawn(s)
	case COLOR:
		return in.cmdColor(s)
	case SIZE:
		return in.cmdSize(s)
	case DRAW_LINE:
		return in.cmdDrawLine(s)
	case DRAW_CIRCLE:
		return in.cmdDrawCircle(s)
	case DRAW_RECTANGLE:
		return in.cmdDrawRectangle(s)
	case FILL:
		return in.cmdFill(s)
	default:
		return semanticErr(s.Line, "unknown command %q", s.Name)
	}
}

// checkArity rejects a call whose argument count does not match the
// command's contract.
func checkArity(s *CommandStmt, want int) *Error {
	if len(s.Args) != want {
		return semanticErr(s.Line, "%s expects %d arguments, got %d", s.Name, want, len(s.Args))
	}
	return nil
}

// requireSpawned guards the commands that operate on the agent's position.
func (in *Interpreter) requireSpawned(s *CommandStmt) *Error {
	if !in.agent.Spawned {
		return semanticErr(s.Line, "%s before Spawn: the agent has no position yet", s.Name)
	}
	return nil
}

func (in *Interpreter) cmdSpawn(s *CommandStmt) *Error {
	if err := checkArity(s, 2); err != nil {
		return err
	}
	if in.agent.Spawned {
		return semanticErr(s.Line, "Spawn may only be called once per run")
	}
	x, err := in.evalInt(s.Args[0], "Spawn x")
	if err != nil {
		return err
	}
	y, err := in.evalInt(s.Args[1], "Spawn y")
	if err != nil {
		return err
	}
	if !in.canvas.InBounds(x, y) {
		return executionErr(s.Line, "Spawn position (%d, %d) is outside the %d×%d canvas",
			x, y, in.canvas.Size(), in.canvas.Size())
	}
	in.agent.X, in.agent.Y = x, y
	in.agent.Spawned = true
	return nil
}

func (in *Interpreter) cmdColor(s *CommandStmt) *Error {
	if err := checkArity(s, 1); err != nil {
		return err
	}
	name, err := in.evalString(s.Args[0], "Color name")
	if err != nil {
		return err
	}
	c, perr := canvas.ParseColor(name)
	if perr != nil {
		return semanticErr(s.Line, "unknown color %q", name)
	}
	in.agent.BrushColor = c
	return nil
}

func (in *Interpreter) cmdSize(s *CommandStmt) *Error {
	if err := checkArity(s, 1); err != nil {
		return err
	}
	n, err := in.evalInt(s.Args[0], "Size")
	if err != nil {
		return err
	}
	if n <= 0 {
		return semanticErr(s.Line, "brush size must be positive, got %d", n)
	}
	if n%2 == 0 {
		n-- // even sizes are reduced to keep the brush odd
	}
	in.agent.BrushSize = n
	return nil
}

func (in *Interpreter) cmdDrawLine(s *CommandStmt) *Error {
	if err := checkArity(s, 3); err != nil {
		return err
	}
	if err := in.requireSpawned(s); err != nil {
		return err
	}
	dx, err := in.evalInt(s.Args[0], "DrawLine dx")
	if err != nil {
		return err
	}
	dy, err := in.evalInt(s.Args[1], "DrawLine dy")
	if err != nil {
		return err
	}
	length, err := in.evalInt(s.Args[2], "DrawLine length")
	if err != nil {
		return err
	}
	dx, dy = clampDir(dx), clampDir(dy)
	ex := in.agent.X + dx*length
	ey := in.agent.Y + dy*length
	if !in.canvas.InBounds(ex, ey) {
		return executionErr(s.Line, "line endpoint (%d, %d) is outside the canvas", ex, ey)
	}
	in.canvas.DrawLine(in.agent.X, in.agent.Y, ex, ey, in.agent.BrushSize, in.agent.BrushColor)
	in.agent.X, in.agent.Y = ex, ey
	return nil
}

func (in *Interpreter) cmdDrawCircle(s *CommandStmt) *Error {
	if err := checkArity(s, 3); err != nil {
		return err
	}
	if err := in.requireSpawned(s); err != nil {
		return err
	}
	dx, err := in.evalInt(s.Args[0], "DrawCircle dx")
	if err != nil {
		return err
	}
	dy, err := in.evalInt(s.Args[1], "DrawCircle dy")
	if err != nil {
		return err
	}
	radius, err := in.evalInt(s.Args[2], "DrawCircle radius")
	if err != nil {
		return err
	}
	dx, dy = clampDir(dx), clampDir(dy)
	cx := in.agent.X + dx*radius
	cy := in.agent.Y + dy*radius
	if !in.canvas.InBounds(cx, cy) {
		return executionErr(s.Line, "circle center (%d, %d) is outside the canvas", cx, cy)
	}
	in.canvas.DrawCircle(cx, cy, radius, in.agent.BrushSize, in.agent.BrushColor)
	in.agent.X, in.agent.Y = cx, cy
	return nil
}

func (in *Interpreter) cmdDrawRectangle(s *CommandStmt) *Error {
	if err := checkArity(s, 5); err != nil {
		return err
	}
	if err := in.requireSpawned(s); err != nil {
		return err
	}
	dx, err := in.evalInt(s.Args[0], "DrawRectangle dx")
	if err != nil {
		return err
	}
	dy, err := in.evalInt(s.Args[1], "DrawRectangle dy")
	if err != nil {
		return err
	}
	dist, err := in.evalInt(s.Args[2], "DrawRectangle distance")
	if err != nil {
		return err
	}
	w, err := in.evalInt(s.Args[3], "DrawRectangle width")
	if err != nil {
		return err
	}
	h, err := in.evalInt(s.Args[4], "DrawRectangle height")
	if err != nil {
		return err
	}
	dx, dy = clampDir(dx), clampDir(dy)
	cx := in.agent.X + dx*dist
	cy := in.agent.Y + dy*dist
	if !in.canvas.InBounds(cx, cy) {
		return executionErr(s.Line, "rectangle center (%d, %d) is outside the canvas", cx, cy)
	}
	in.canvas.DrawRectangleBorder(cx, cy, w, h, in.agent.BrushSize, in.agent.BrushColor)
	in.agent.X, in.agent.Y = cx, cy
	return nil
}

func (in *Interpreter) cmdFill(s *CommandStmt) *Error {
	if err := checkArity(s, 0); err != nil {
		return err
	}
	if err := in.requireSpawned(s); err != nil {
		return err
	}
	in.canvas.FloodFill(in.agent.X, in.agent.Y, in.agent.BrushColor)
	return nil
}

//  Expression evaluation

func (in *Interpreter) eval(e Expr) (Value, *Error) {
	switch ex := e.(type) {
	case *Literal:
		return ex.Value, nil

	case *VarRef:
		v, ok := in.vars[ex.Name]
		if !ok {
			return Value{}, semanticErr(ex.Line, "undefined variable %q", ex.Name)
		}
		return v, nil

	case *BinaryExpr:
		return in.evalBinary(ex)

	case *CallExpr:
		return in.call(ex)
	}
	return Value{}, executionErr(e.Pos(), "unevaluable expression")
}

// evalInt evaluates e and requires an integer result.
func (in *Interpreter) evalInt(e Expr, what string) (int, *Error) {
	v, err := in.eval(e)
	if err != nil {
		return 0, err
	}
	if v.Kind != IntValue {
		return 0, executionErr(e.Pos(), "%s must be an integer, got %s", what, v.Kind)
	}
	return v.Int, nil
}

// evalString evaluates e and requires a string result.
func (in *Interpreter) evalString(e Expr, what string) (string, *Error) {
	v, err := in.eval(e)
	if err != nil {
		return "", err
	}
	if v.Kind != StringValue {
		return "", executionErr(e.Pos(), "%s must be a string, got %s", what, v.Kind)
	}
	return v.Str, nil
}

func (in *Interpreter) evalBinary(ex *BinaryExpr) (Value, *Error) {
	left, err := in.eval(ex.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := in.eval(ex.Right)
	if err != nil {
		return Value{}, err
	}

	switch ex.Op {
	case PLUS, MINUS, STAR, SLASH, PERCENT, POWER:
		if left.Kind != IntValue || right.Kind != IntValue {
			return Value{}, executionErr(ex.Line, "operator %s requires integer operands, got %s and %s",
				ex.Op, left.Kind, right.Kind)
		}
		return in.evalArith(ex.Op, left.Int, right.Int, ex.Line)

	case EQUALS:
		if left.Kind != right.Kind {
			return Value{}, executionErr(ex.Line, "cannot compare %s with %s", left.Kind, right.Kind)
		}
		return boolVal(left == right), nil

	case LESS, LESS_EQ, GREATER, GREATER_EQ:
		if left.Kind != IntValue || right.Kind != IntValue {
			return Value{}, executionErr(ex.Line, "operator %s requires integer operands, got %s and %s",
				ex.Op, left.Kind, right.Kind)
		}
		switch ex.Op {
		case LESS:
			return boolVal(left.Int < right.Int), nil
		case LESS_EQ:
			return boolVal(left.Int <= right.Int), nil
		case GREATER:
			return boolVal(left.Int > right.Int), nil
		default:
			return boolVal(left.Int >= right.Int), nil
		}

	case AND, OR:
		if left.Kind != BoolValue || right.Kind != BoolValue {
			return Value{}, executionErr(ex.Line, "operator %s requires boolean operands, got %s and %s",
				ex.Op, left.Kind, right.Kind)
		}
		if ex.Op == AND {
			return boolVal(left.Bool && right.Bool), nil
		}
		return boolVal(left.Bool || right.Bool), nil
	}

	return Value{}, executionErr(ex.Line, "unsupported operator %s", ex.Op)
}

func (in *Interpreter) evalArith(op TokenType, a, b, line int) (Value, *Error) {
	switch op {
	case PLUS:
		return intVal(a + b), nil
	case MINUS:
		return intVal(a - b), nil
	case STAR:
		return intVal(a * b), nil
	case SLASH:
		if b == 0 {
			return Value{}, executionErr(line, "division by zero")
		}
		return intVal(a / b), nil
	case PERCENT:
		if b == 0 {
			return Value{}, executionErr(line, "modulo by zero")
		}
		return intVal(a % b), nil
	default: // POWER
		return intVal(intPow(a, b)), nil
	}
}

// intPow computes a**b in pure integer arithmetic. Negative exponents
// truncate to 0 except for bases 1 and -1, whose reciprocals stay integral.
func intPow(base, exp int) int {
	if exp < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if exp%2 == 0 {
				return 1
			}
			return -1
		}
		return 0
	}
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

//  Query functions

// checkCallArity rejects a query call whose argument count does not match.
func checkCallArity(ex *CallExpr, want int) *Error {
	if len(ex.Args) != want {
		return semanticErr(ex.Line, "%s expects %d arguments, got %d", ex.Name, want, len(ex.Args))
	}
	return nil
}

// boolToInt exposes a predicate result to the integer-only expression
// language: 1 for true, 0 for false.
func boolToInt(b bool) Value {
	if b {
		return intVal(1)
	}
	return intVal(0)
}

func (in *Interpreter) call(ex *CallExpr) (Value, *Error) {
	switch ex.Fn {
	case GET_ACTUAL_X:
		if err := checkCallArity(ex, 0); err != nil {
			return Value{}, err
		}
		return intVal(in.agent.X), nil

	case GET_ACTUAL_Y:
		if err := checkCallArity(ex, 0); err != nil {
			return Value{}, err
		}
		return intVal(in.agent.Y), nil

	case GET_CANVAS_SIZE:
		if err := checkCallArity(ex, 0); err != nil {
			return Value{}, err
		}
		return intVal(in.canvas.Size()), nil

	case GET_COLOR_COUNT:
		if err := checkCallArity(ex, 5); err != nil {
			return Value{}, err
		}
		c, err := in.colorArg(ex, 0)
		if err != nil {
			return Value{}, err
		}
		coords := make([]int, 4)
		names := [4]string{"x1", "y1", "x2", "y2"}
		for i := 0; i < 4; i++ {
			v, err := in.evalInt(ex.Args[i+1], "GetColorCount "+names[i])
			if err != nil {
				return Value{}, err
			}
			coords[i] = v
		}
		return intVal(in.canvas.CountColorInBox(c, coords[0], coords[1], coords[2], coords[3])), nil

	case IS_BRUSH_COLOR:
		if err := checkCallArity(ex, 1); err != nil {
			return Value{}, err
		}
		c, err := in.colorArg(ex, 0)
		if err != nil {
			return Value{}, err
		}
		return boolToInt(in.agent.BrushColor == c), nil

	case IS_BRUSH_SIZE:
		if err := checkCallArity(ex, 1); err != nil {
			return Value{}, err
		}
		n, err := in.evalInt(ex.Args[0], "IsBrushSize")
		if err != nil {
			return Value{}, err
		}
		return boolToInt(in.agent.BrushSize == n), nil

	case IS_CANVAS_COLOR:
		// Note the argument order: the vertical offset comes first.
		if err := checkCallArity(ex, 3); err != nil {
			return Value{}, err
		}
		c, err := in.colorArg(ex, 0)
		if err != nil {
			return Value{}, err
		}
		dy, err := in.evalInt(ex.Args[1], "IsCanvasColor dy")
		if err != nil {
			return Value{}, err
		}
		dx, err := in.evalInt(ex.Args[2], "IsCanvasColor dx")
		if err != nil {
			return Value{}, err
		}
		px := in.agent.X + dx
		py := in.agent.Y + dy
		if !in.canvas.InBounds(px, py) {
			return Value{}, executionErr(ex.Line, "IsCanvasColor position (%d, %d) is outside the canvas", px, py)
		}
		return boolToInt(in.canvas.ColorAt(px, py) == c), nil

	default:
		return Value{}, semanticErr(ex.Line, "unknown function %q", ex.Name)
	}
}

// colorArg evaluates the i-th argument of ex as a color name.
func (in *Interpreter) colorArg(ex *CallExpr, i int) (canvas.Color, *Error) {
	name, err := in.evalString(ex.Args[i], ex.Name+" color")
	if err != nil {
		return canvas.Transparent, err
	}
	c, perr := canvas.ParseColor(name)
	if perr != nil {
		return canvas.Transparent, semanticErr(ex.Args[i].Pos(), "unknown color %q", name)
	}
	return c, nil
}
