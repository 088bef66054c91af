package script

import (
	"fmt"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces a value.
// Every node carries the 1-based source line that produced it; the line is
// used for diagnostics only.
type Expr interface {
	exprNode()
	Pos() int
	String() string
}

// Literal is an integer or string constant.
//
//	radio <- 50
//	         ^^  Literal{Value: intVal(50)}
type Literal struct {
	Value Value
	Line  int
}

func (*Literal) exprNode()        {}
func (l *Literal) Pos() int       { return l.Line }
func (l *Literal) String() string { return l.Value.String() }

// VarRef is a read of a named variable.
type VarRef struct {
	Name string
	Line int
}

func (*VarRef) exprNode()        {}
func (v *VarRef) Pos() int       { return v.Line }
func (v *VarRef) String() string { return v.Name }

// BinaryExpr represents Left Op Right. Unary minus never reaches the AST:
// the parser desugars it to 0 - operand.
type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
	Line  int
}

func (*BinaryExpr) exprNode()  {}
func (b *BinaryExpr) Pos() int { return b.Line }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// CallExpr represents name(args). Fn is the query-function keyword, or
// IDENTIFIER for a call to an unknown name (rejected at execution time).
type CallExpr struct {
	Fn   TokenType
	Name string // original-case spelling, for diagnostics
	Args []Expr
	Line int
}

func (*CallExpr) exprNode()  {}
func (c *CallExpr) Pos() int { return c.Line }
func (c *CallExpr) String() string {
	return fmt.Sprintf("%s(%s)", c.Name, joinExprs(c.Args))
}

//  Statement nodes

// Stmt is implemented by every node that does not produce a value.
type Stmt interface {
	stmtNode()
	Pos() int
	String() string
}

// CommandStmt represents one of the drawing commands, e.g. DrawLine(1, 0, 5).
type CommandStmt struct {
	Keyword TokenType
	Name    string // original-case spelling, for diagnostics
	Args    []Expr
	Line    int
}

func (*CommandStmt) stmtNode()  {}
func (c *CommandStmt) Pos() int { return c.Line }
func (c *CommandStmt) String() string {
	return fmt.Sprintf("%s(%s)", c.Name, joinExprs(c.Args))
}

// AssignStmt represents  name <- expr.
type AssignStmt struct {
	Name string
	Expr Expr
	Line int
}

func (*AssignStmt) stmtNode()  {}
func (a *AssignStmt) Pos() int { return a.Line }
func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s <- %s", a.Name, a.Expr)
}

// LabelStmt is a jump target declared by a bare identifier on its own line.
type LabelStmt struct {
	Name string
	Line int
}

func (*LabelStmt) stmtNode()        {}
func (l *LabelStmt) Pos() int       { return l.Line }
func (l *LabelStmt) String() string { return l.Name + ":" }

// JumpStmt represents  GoTo[label](condition).
type JumpStmt struct {
	Label     string
	Condition Expr
	Line      int
}

func (*JumpStmt) stmtNode()  {}
func (j *JumpStmt) Pos() int { return j.Line }
func (j *JumpStmt) String() string {
	return fmt.Sprintf("GoTo[%s](%s)", j.Label, j.Condition)
}

// Program is the parsed form of one source text. A program with zero
// statements is valid.
type Program struct {
	Statements []Stmt
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
