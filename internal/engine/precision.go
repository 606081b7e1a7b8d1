package engine

import (
	"math/big"
	"strings"
)

// DefaultPreciseDigits is the decimal precision used when the caller does not
// configure one.
const DefaultPreciseDigits = 10

// precisionOps handles arbitrary-precision decimal arithmetic over string
// operands using big.Float, for results float64 cannot represent exactly.
type precisionOps struct{}

// binaryPrecision converts decimal digits to big.Float mantissa bits, never
// below float64 precision.
func binaryPrecision(digits uint) uint {
	bits := uint(float64(digits) * 3.32)
	if bits < 53 {
		bits = 53
	}
	return bits
}

func parseDecimal(s string, prec uint) (*big.Float, error) {
	f := new(big.Float).SetPrec(prec)
	if _, ok := f.SetString(s); !ok {
		return nil, invalidOperandf("invalid number format: %s", s)
	}
	return f, nil
}

// Evaluate applies op to decimal string operands with digits decimal places
// of working precision. Only the four basic operations are supported.
func (p *precisionOps) Evaluate(op Op, operands []string, digits uint) (string, error) {
	if digits == 0 {
		digits = DefaultPreciseDigits
	}
	prec := binaryPrecision(digits)

	nameSpec, ok := specs[op]
	if !ok {
		return "", ErrUnknownOperation
	}
	if len(operands) < nameSpec.Min || (nameSpec.Max != 0 && len(operands) > nameSpec.Max) {
		return "", &OperandCountError{Op: op, Got: len(operands), Min: nameSpec.Min, Max: nameSpec.Max}
	}

	parsed := make([]*big.Float, len(operands))
	for i, s := range operands {
		f, err := parseDecimal(s, prec)
		if err != nil {
			return "", err
		}
		parsed[i] = f
	}

	result := new(big.Float).SetPrec(prec)
	switch op {
	case OpAdd:
		for _, f := range parsed {
			result.Add(result, f)
		}
	case OpSubtract:
		result.Sub(parsed[0], parsed[1])
	case OpMultiply:
		result.SetFloat64(1)
		for _, f := range parsed {
			result.Mul(result, f)
		}
	case OpDivide:
		if parsed[1].Sign() == 0 {
			return "", ErrDivisionByZero
		}
		result.Quo(parsed[0], parsed[1])
	default:
		return "", invalidOperandf("operation %s does not support precise mode", op)
	}

	return trimDecimal(result.Text('f', int(digits))), nil
}

// trimDecimal removes trailing fraction zeros from a fixed-point rendering.
func trimDecimal(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" || s == "-0" {
		return "0"
	}
	return s
}
