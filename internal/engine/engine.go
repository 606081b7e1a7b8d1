package engine

import "sort"

// Op identifies a calculator operation.
type Op string

const (
	// Scalar arithmetic
	OpAdd       Op = "add"
	OpSubtract  Op = "subtract"
	OpMultiply  Op = "multiply"
	OpDivide    Op = "divide"
	OpPower     Op = "power"
	OpMod       Op = "mod"
	OpSqrt      Op = "sqrt"
	OpAbs       Op = "abs"
	OpFloor     Op = "floor"
	OpCeil      Op = "ceil"
	OpRound     Op = "round"
	OpExp       Op = "exp"
	OpLog       Op = "log"
	OpLog10     Op = "log10"
	OpLog2      Op = "log2"
	OpFactorial Op = "factorial"
	OpGCD       Op = "gcd"
	OpLCM       Op = "lcm"

	// Aggregates
	OpSum      Op = "sum"
	OpProduct  Op = "product"
	OpMean     Op = "mean"
	OpMedian   Op = "median"
	OpMin      Op = "min"
	OpMax      Op = "max"
	OpStdev    Op = "stdev"
	OpVariance Op = "variance"
)

// Spec describes an operation's surface: its name, operand arity and a short
// description used for usage text.
type Spec struct {
	Op          Op
	Description string
	Min         int
	Max         int // 0 means unbounded
}

var specs = map[Op]Spec{
	OpAdd:       {Op: OpAdd, Description: "Add two or more numbers", Min: 2, Max: 0},
	OpSubtract:  {Op: OpSubtract, Description: "Subtract b from a", Min: 2, Max: 2},
	OpMultiply:  {Op: OpMultiply, Description: "Multiply two or more numbers", Min: 2, Max: 0},
	OpDivide:    {Op: OpDivide, Description: "Divide a by b", Min: 2, Max: 2},
	OpPower:     {Op: OpPower, Description: "Raise a to the power of b", Min: 2, Max: 2},
	OpMod:       {Op: OpMod, Description: "Remainder of a/b", Min: 2, Max: 2},
	OpSqrt:      {Op: OpSqrt, Description: "Square root", Min: 1, Max: 1},
	OpAbs:       {Op: OpAbs, Description: "Absolute value", Min: 1, Max: 1},
	OpFloor:     {Op: OpFloor, Description: "Round down to nearest integer", Min: 1, Max: 1},
	OpCeil:      {Op: OpCeil, Description: "Round up to nearest integer", Min: 1, Max: 1},
	OpRound:     {Op: OpRound, Description: "Round to nearest integer", Min: 1, Max: 1},
	OpExp:       {Op: OpExp, Description: "e raised to x", Min: 1, Max: 1},
	OpLog:       {Op: OpLog, Description: "Natural logarithm", Min: 1, Max: 1},
	OpLog10:     {Op: OpLog10, Description: "Base-10 logarithm", Min: 1, Max: 1},
	OpLog2:      {Op: OpLog2, Description: "Base-2 logarithm", Min: 1, Max: 1},
	OpFactorial: {Op: OpFactorial, Description: "Factorial (n!)", Min: 1, Max: 1},
	OpGCD:       {Op: OpGCD, Description: "Greatest common divisor", Min: 2, Max: 2},
	OpLCM:       {Op: OpLCM, Description: "Least common multiple", Min: 2, Max: 2},
	OpSum:       {Op: OpSum, Description: "Sum of all operands", Min: 1, Max: 0},
	OpProduct:   {Op: OpProduct, Description: "Product of all operands", Min: 1, Max: 0},
	OpMean:      {Op: OpMean, Description: "Arithmetic mean", Min: 1, Max: 0},
	OpMedian:    {Op: OpMedian, Description: "Median", Min: 1, Max: 0},
	OpMin:       {Op: OpMin, Description: "Minimum", Min: 1, Max: 0},
	OpMax:       {Op: OpMax, Description: "Maximum", Min: 1, Max: 0},
	OpStdev:     {Op: OpStdev, Description: "Sample standard deviation", Min: 2, Max: 0},
	OpVariance:  {Op: OpVariance, Description: "Sample variance", Min: 2, Max: 0},
}

// Lookup returns the spec for op, if op names a known operation.
func Lookup(op Op) (Spec, bool) {
	s, ok := specs[op]
	return s, ok
}

// Specs returns all operation specs sorted by name.
func Specs() []Spec {
	out := make([]Spec, 0, len(specs))
	for _, nameSpec := range specs {
		out = append(out, nameSpec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Op < out[j].Op })
	return out
}

// Engine routes operations to the module implementing them.
type Engine struct {
	arithmetic *arithmeticOps
	aggregate  *aggregateOps
	precision  *precisionOps
}

// New creates a calculator engine.
func New() *Engine {
	return &Engine{
		arithmetic: &arithmeticOps{},
		aggregate:  &aggregateOps{},
		precision:  &precisionOps{},
	}
}

// Evaluate applies op to operands. All inputs must be finite; results are
// validated finite before they are returned.
func (e *Engine) Evaluate(op Op, operands []float64) (float64, error) {
	nameSpec, ok := specs[op]
	if !ok {
		return 0, ErrUnknownOperation
	}
	if len(operands) < nameSpec.Min || (nameSpec.Max != 0 && len(operands) > nameSpec.Max) {
		return 0, &OperandCountError{Op: op, Got: len(operands), Min: nameSpec.Min, Max: nameSpec.Max}
	}
	if err := validateOperands(operands); err != nil {
		return 0, err
	}

	switch op {
	case OpAdd:
		return e.arithmetic.Add(operands)
	case OpSubtract:
		return e.arithmetic.Subtract(operands[0], operands[1])
	case OpMultiply:
		return e.arithmetic.Multiply(operands)
	case OpDivide:
		return e.arithmetic.Divide(operands[0], operands[1])
	case OpPower:
		return e.arithmetic.Power(operands[0], operands[1])
	case OpMod:
		return e.arithmetic.Mod(operands[0], operands[1])
	case OpSqrt:
		return e.arithmetic.Sqrt(operands[0])
	case OpAbs:
		return e.arithmetic.Abs(operands[0])
	case OpFloor:
		return e.arithmetic.Floor(operands[0])
	case OpCeil:
		return e.arithmetic.Ceil(operands[0])
	case OpRound:
		return e.arithmetic.Round(operands[0])
	case OpExp:
		return e.arithmetic.Exp(operands[0])
	case OpLog:
		return e.arithmetic.Log(operands[0])
	case OpLog10:
		return e.arithmetic.Log10(operands[0])
	case OpLog2:
		return e.arithmetic.Log2(operands[0])
	case OpFactorial:
		return e.arithmetic.Factorial(operands[0])
	case OpGCD:
		return e.arithmetic.GCD(operands[0], operands[1])
	case OpLCM:
		return e.arithmetic.LCM(operands[0], operands[1])
	case OpSum:
		return e.aggregate.Sum(operands)
	case OpProduct:
		return e.aggregate.Product(operands)
	case OpMean:
		return e.aggregate.Mean(operands)
	case OpMedian:
		return e.aggregate.Median(operands)
	case OpMin:
		return e.aggregate.Min(operands)
	case OpMax:
		return e.aggregate.Max(operands)
	case OpStdev:
		return e.aggregate.Stdev(operands)
	case OpVariance:
		return e.aggregate.Variance(operands)
	default:
		return 0, ErrUnknownOperation
	}
}

// EvaluatePrecise applies op to decimal string operands using arbitrary
// precision arithmetic. Only add, subtract, multiply and divide are supported.
// digits is the number of decimal places carried through the computation.
func (e *Engine) EvaluatePrecise(op Op, operands []string, digits uint) (string, error) {
	return e.precision.Evaluate(op, operands, digits)
}
