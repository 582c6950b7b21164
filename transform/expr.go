package transform

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	gotoken "go/token"
	"math"
	"strconv"
	"strings"

	"tokencss/common"
)

// ErrExpression is returned when a value looks like a rounding expression but
// cannot be understood.
var ErrExpression = errors.New("unsupported expression")

// roundToFunc is the only function name recognized in token values.
const roundToFunc = "roundTo"

// Expr is a numeric expression found inside a token value. Eval reports false
// when the expression has no finite value or rounding fails.
type Expr interface {
	Eval() (float64, bool)
	String() string
}

// Number is a numeric literal.
type Number float64

func (n Number) Eval() (float64, bool) { return float64(n), true }
func (n Number) String() string        { return FormatNumber(float64(n)) }

// Binary is one of + - * / applied to two operands.
type Binary struct {
	Op   byte
	X, Y Expr
}

func (b Binary) Eval() (float64, bool) {
	x, ok := b.X.Eval()
	if !ok {
		return 0, false
	}
	y, ok := b.Y.Eval()
	if !ok {
		return 0, false
	}
	var r float64
	switch b.Op {
	case '+':
		r = x + y
	case '-':
		r = x - y
	case '*':
		r = x * y
	case '/':
		r = x / y
	default:
		return 0, false
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func (b Binary) String() string {
	return "(" + b.X.String() + " " + string(b.Op) + " " + b.Y.String() + ")"
}

// Negate is unary minus.
type Negate struct {
	X Expr
}

func (n Negate) Eval() (float64, bool) {
	x, ok := n.X.Eval()
	return -x, ok
}

func (n Negate) String() string { return "-" + n.X.String() }

// RoundExpr is a call roundTo(n, decimalPlaces, 'direction', transpose)
// where everything after n is optional.
type RoundExpr struct {
	N             Expr
	DecimalPlaces int
	Direction     common.RoundDirection
	Transpose     int
}

func (r RoundExpr) Eval() (float64, bool) {
	n, ok := r.N.Eval()
	if !ok {
		return 0, false
	}
	return RoundTo(n, r.DecimalPlaces, r.Direction, r.Transpose)
}

func (r RoundExpr) String() string {
	return fmt.Sprintf("%s(%s, %d, '%s', %d)", roundToFunc, r.N, r.DecimalPlaces, r.Direction, r.Transpose)
}

// ParseExpr builds expression tree from value text. Only numeric literals,
// parentheses, + - * / and roundTo calls are accepted, the text is never
// executed.
func ParseExpr(s string) (Expr, error) {
	// direction arguments come single quoted, which is not a valid string
	// literal for the parser
	node, err := parser.ParseExpr(strings.ReplaceAll(s, "'", `"`))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrExpression, s, err)
	}
	e, err := buildExpr(node)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrExpression, s, err)
	}
	return e, nil
}

func buildExpr(node ast.Expr) (Expr, error) {
	switch n := node.(type) {
	case *ast.ParenExpr:
		return buildExpr(n.X)
	case *ast.BasicLit:
		if n.Kind != gotoken.INT && n.Kind != gotoken.FLOAT {
			return nil, fmt.Errorf("literal %s is not a number", n.Value)
		}
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case *ast.UnaryExpr:
		x, err := buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case gotoken.SUB:
			return Negate{X: x}, nil
		case gotoken.ADD:
			return x, nil
		}
		return nil, fmt.Errorf("operator %s is not allowed", n.Op)
	case *ast.BinaryExpr:
		var op byte
		switch n.Op {
		case gotoken.ADD:
			op = '+'
		case gotoken.SUB:
			op = '-'
		case gotoken.MUL:
			op = '*'
		case gotoken.QUO:
			op = '/'
		default:
			return nil, fmt.Errorf("operator %s is not allowed", n.Op)
		}
		x, err := buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		y, err := buildExpr(n.Y)
		if err != nil {
			return nil, err
		}
		return Binary{Op: op, X: x, Y: y}, nil
	case *ast.CallExpr:
		return buildRound(n)
	}
	return nil, fmt.Errorf("%T is not allowed", node)
}

func buildRound(call *ast.CallExpr) (Expr, error) {
	fn, ok := call.Fun.(*ast.Ident)
	if !ok || fn.Name != roundToFunc {
		return nil, errors.New("only " + roundToFunc + " may be called")
	}
	if len(call.Args) == 0 || len(call.Args) > 4 || call.Ellipsis.IsValid() {
		return nil, fmt.Errorf("%s takes from 1 to 4 arguments, got %d", roundToFunc, len(call.Args))
	}

	var (
		r   RoundExpr
		err error
	)
	if r.N, err = buildExpr(call.Args[0]); err != nil {
		return nil, err
	}
	if len(call.Args) > 1 {
		if r.DecimalPlaces, err = intArg(call.Args[1]); err != nil {
			return nil, fmt.Errorf("decimal places: %w", err)
		}
	}
	if len(call.Args) > 2 {
		if r.Direction, err = directionArg(call.Args[2]); err != nil {
			return nil, fmt.Errorf("direction: %w", err)
		}
	}
	if len(call.Args) > 3 {
		if r.Transpose, err = intArg(call.Args[3]); err != nil {
			return nil, fmt.Errorf("transpose: %w", err)
		}
	}
	return r, nil
}

func intArg(node ast.Expr) (int, error) {
	e, err := buildExpr(node)
	if err != nil {
		return 0, err
	}
	f, ok := e.Eval()
	if !ok || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s is not an integer", e)
	}
	return int(f), nil
}

// directionArg reads the direction name. Only rounding is ever performed,
// so names outside of the known ones (any case) fall back to round.
func directionArg(node ast.Expr) (common.RoundDirection, error) {
	var name string
	switch n := node.(type) {
	case *ast.BasicLit:
		if n.Kind != gotoken.STRING {
			return common.RoundDirectionRound, nil
		}
		s, err := strconv.Unquote(n.Value)
		if err != nil {
			return 0, err
		}
		name = s
	case *ast.Ident:
		name = n.Name
	default:
		return 0, fmt.Errorf("%T is not allowed", node)
	}
	if d, err := common.ParseRoundDirection(strings.ToLower(strings.TrimSpace(name))); err == nil {
		return d, nil
	}
	return common.RoundDirectionRound, nil
}
