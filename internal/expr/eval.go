package expr

import (
	"errors"
	"fmt"
	gomath "math"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/calclab/calc/internal/engine"
)

// ErrNotNumeric reports an expression that evaluated to something other than
// a number, e.g. a comparison.
var ErrNotNumeric = errors.New("expression did not evaluate to a number")

// ParseError wraps a syntax error in the expression text.
type ParseError struct {
	Expression string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid expression %q: %v", e.Expression, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Evaluator evaluates infix arithmetic expressions against the calculator
// engine's function set.
type Evaluator struct {
	engine    *engine.Engine
	functions map[string]govaluate.ExpressionFunction
	params    map[string]interface{}
}

// New creates an expression evaluator backed by eng.
func New(eng *engine.Engine) *Evaluator {
	ev := &Evaluator{engine: eng}

	unary := func(op engine.Op) govaluate.ExpressionFunction {
		return func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("%s takes exactly one argument", op)
			}
			x, ok := toFloat(args[0])
			if !ok {
				return nil, fmt.Errorf("%s requires a numeric argument", op)
			}
			result, err := ev.engine.Evaluate(op, []float64{x})
			if err != nil {
				return nil, err
			}
			return result, nil
		}
	}

	ev.functions = map[string]govaluate.ExpressionFunction{
		"sqrt":  unary(engine.OpSqrt),
		"abs":   unary(engine.OpAbs),
		"floor": unary(engine.OpFloor),
		"ceil":  unary(engine.OpCeil),
		"round": unary(engine.OpRound),
		"exp":   unary(engine.OpExp),
		"log":   unary(engine.OpLog),
		"log10": unary(engine.OpLog10),
		"log2":  unary(engine.OpLog2),
		"pow": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, errors.New("pow takes exactly two arguments")
			}
			base, okA := toFloat(args[0])
			exponent, okB := toFloat(args[1])
			if !okA || !okB {
				return nil, errors.New("pow requires numeric arguments")
			}
			result, err := ev.engine.Evaluate(engine.OpPower, []float64{base, exponent})
			if err != nil {
				return nil, err
			}
			return result, nil
		},
	}
	ev.params = map[string]interface{}{
		"pi":  gomath.Pi,
		"e":   gomath.E,
		"tau": 2 * gomath.Pi,
		"phi": gomath.Phi,
	}
	return ev
}

// Evaluate parses and evaluates expression, returning its numeric value.
//
// IEEE float evaluation turns division by zero into an infinity rather than
// an error, so a non-finite result from an expression containing a division
// is reported as engine.ErrDivisionByZero.
func (ev *Evaluator) Evaluate(expression string) (float64, error) {
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expression, ev.functions)
	if err != nil {
		return 0, &ParseError{Expression: expression, Err: err}
	}

	value, err := parsed.Evaluate(ev.params)
	if err != nil {
		return 0, err
	}

	result, ok := toFloat(value)
	if !ok {
		return 0, ErrNotNumeric
	}
	if gomath.IsNaN(result) || gomath.IsInf(result, 0) {
		if strings.Contains(expression, "/") || strings.Contains(expression, "%") {
			return 0, engine.ErrDivisionByZero
		}
		return 0, engine.ErrNotFinite
	}
	return result, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
