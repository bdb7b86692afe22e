/*
File   : pitlang/eval/eval_expressions.go
Package: eval

The Eval type-switch dispatcher plus literal, identifier, unary and binary
expression evaluation.
*/
package eval

import (
	"math"

	"github.com/akashmaji946/pitlang/function"
	"github.com/akashmaji946/pitlang/object"
	"github.com/akashmaji946/pitlang/parser"
)

// Eval is the main evaluation dispatcher, routing each AST node type to
// its handler. Declarations and loops yield Null, an expression statement
// yields its expression's value, and a block or if yields the value of the
// last statement it ran; errors and return signals pass through unchanged.
// Expressions yield their computed value.
func (e *Evaluator) Eval(n parser.Node) object.Value {
	switch n := n.(type) {
	case *parser.Program:
		return e.evalProgram(n)

	// Statements
	case *parser.LetStmt:
		return e.evalLetStmt(n)
	case *parser.FunctionDeclStmt:
		return e.evalFunctionDeclStmt(n)
	case *parser.ExprStmt:
		return e.Eval(n.Expr)
	case *parser.ReturnStmt:
		return e.evalReturnStmt(n)
	case *parser.BlockStmt:
		return e.evalBlockStmt(n)
	case *parser.IfStmt:
		return e.evalIfStmt(n)
	case *parser.WhileStmt:
		return e.evalWhileStmt(n)
	case *parser.ForStmt:
		return e.evalForStmt(n)

	// Expressions
	case *parser.NumberLit:
		return &object.Number{Value: n.Value}
	case *parser.StringLit:
		return &object.String{Value: n.Value}
	case *parser.BoolLit:
		return object.BoolOf(n.Value)
	case *parser.NullLit:
		return object.NullValue
	case *parser.Identifier:
		return e.evalIdentifier(n)
	case *parser.ArrayLit:
		return e.evalArrayLit(n)
	case *parser.ObjectLit:
		return e.evalObjectLit(n)
	case *parser.FunctionLit:
		return &function.Function{Params: n.Params, Body: n.Body, Env: e.Env}
	case *parser.UnaryExpr:
		return e.evalUnaryExpr(n)
	case *parser.BinaryExpr:
		return e.evalBinaryExpr(n)
	case *parser.IndexExpr:
		return e.evalIndexExpr(n)
	case *parser.MemberExpr:
		return e.evalMemberExpr(n)
	case *parser.CallExpr:
		return e.evalCallExpr(n)
	case *parser.AssignExpr:
		return e.evalAssignExpr(n)
	default:
		return object.NullValue
	}
}

func (e *Evaluator) evalIdentifier(n *parser.Identifier) object.Value {
	if v, ok := e.Env.Lookup(n.Name); ok {
		return v
	}
	return e.newError(n.Pos, object.NameError, "identifier not found: (%s)", n.Name)
}

func (e *Evaluator) evalUnaryExpr(n *parser.UnaryExpr) object.Value {
	switch n.Op {
	case parser.OpPreInc:
		return e.evalIncDec(n, 1)
	case parser.OpPreDec:
		return e.evalIncDec(n, -1)
	}

	operand := e.Eval(n.Operand)
	if isError(operand) {
		return operand
	}
	switch n.Op {
	case parser.OpNeg:
		num, ok := operand.(*object.Number)
		if !ok {
			return e.newError(n.Pos, object.TypeError, "unary '-' requires a number, got %s", operand.Kind())
		}
		return &object.Number{Value: -num.Value}
	case parser.OpNot:
		return object.BoolOf(!object.Truthy(operand))
	default:
		return e.newError(n.Pos, object.TypeError, "unknown unary operator %q", n.Op)
	}
}

func (e *Evaluator) evalBinaryExpr(n *parser.BinaryExpr) object.Value {
	// && and || short-circuit: the right operand is not evaluated unless
	// the left one demands it, and the chosen operand is yielded uncoerced.
	if n.Op == parser.OpAnd || n.Op == parser.OpOr {
		left := e.Eval(n.Left)
		if isError(left) {
			return left
		}
		if n.Op == parser.OpAnd {
			if !object.Truthy(left) {
				return left
			}
		} else {
			if object.Truthy(left) {
				return left
			}
		}
		return e.Eval(n.Right)
	}

	left := e.Eval(n.Left)
	if isError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if isError(right) {
		return right
	}

	switch n.Op {
	case parser.OpEq:
		return object.BoolOf(object.Equal(left, right))
	case parser.OpNe:
		return object.BoolOf(!object.Equal(left, right))
	case parser.OpAdd:
		return e.evalAdd(n, left, right)
	case parser.OpSub, parser.OpMul, parser.OpDiv, parser.OpMod:
		return e.evalArithmetic(n, left, right)
	case parser.OpLt, parser.OpLe, parser.OpGt, parser.OpGe:
		return e.evalComparison(n, left, right)
	default:
		return e.newError(n.Pos, object.TypeError, "unknown binary operator %q", n.Op)
	}
}

// evalAdd handles the overloaded '+': Number+Number is arithmetic; if
// either operand is a String the other is converted to its canonical
// string form and the two are concatenated.
func (e *Evaluator) evalAdd(n *parser.BinaryExpr, left, right object.Value) object.Value {
	if ln, ok := left.(*object.Number); ok {
		if rn, ok := right.(*object.Number); ok {
			return &object.Number{Value: ln.Value + rn.Value}
		}
	}
	_, leftStr := left.(*object.String)
	_, rightStr := right.(*object.String)
	if leftStr || rightStr {
		return &object.String{Value: left.String() + right.String()}
	}
	return e.newError(n.Pos, object.TypeError, "operator '+' requires numbers or a string operand, got %s and %s", left.Kind(), right.Kind())
}

func (e *Evaluator) evalArithmetic(n *parser.BinaryExpr, left, right object.Value) object.Value {
	ln, lok := left.(*object.Number)
	rn, rok := right.(*object.Number)
	if !lok || !rok {
		return e.newError(n.Pos, object.TypeError, "operator %q requires numbers, got %s and %s", n.Op, left.Kind(), right.Kind())
	}
	switch n.Op {
	case parser.OpSub:
		return &object.Number{Value: ln.Value - rn.Value}
	case parser.OpMul:
		return &object.Number{Value: ln.Value * rn.Value}
	case parser.OpDiv:
		// Division by zero yields the IEEE result (Inf or NaN), per float
		// semantics.
		return &object.Number{Value: ln.Value / rn.Value}
	default: // OpMod
		return &object.Number{Value: math.Mod(ln.Value, rn.Value)}
	}
}

// evalComparison handles < <= > >=, defined for Number pairs and String
// pairs only.
func (e *Evaluator) evalComparison(n *parser.BinaryExpr, left, right object.Value) object.Value {
	if ln, ok := left.(*object.Number); ok {
		if rn, ok := right.(*object.Number); ok {
			return object.BoolOf(compareFloats(n.Op, ln.Value, rn.Value))
		}
	}
	if ls, ok := left.(*object.String); ok {
		if rs, ok := right.(*object.String); ok {
			return object.BoolOf(compareStrings(n.Op, ls.Value, rs.Value))
		}
	}
	return e.newError(n.Pos, object.TypeError, "operator %q requires two numbers or two strings, got %s and %s", n.Op, left.Kind(), right.Kind())
}

func compareFloats(op parser.BinaryOp, a, b float64) bool {
	switch op {
	case parser.OpLt:
		return a < b
	case parser.OpLe:
		return a <= b
	case parser.OpGt:
		return a > b
	default:
		return a >= b
	}
}

func compareStrings(op parser.BinaryOp, a, b string) bool {
	switch op {
	case parser.OpLt:
		return a < b
	case parser.OpLe:
		return a <= b
	case parser.OpGt:
		return a > b
	default:
		return a >= b
	}
}
