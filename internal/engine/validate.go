package engine

import gomath "math"

// finite enforces the overflow policy: fail, never saturate.
func finite(x float64) (float64, error) {
	if gomath.IsNaN(x) || gomath.IsInf(x, 0) {
		return 0, ErrNotFinite
	}
	return x, nil
}

// validateOperands rejects NaN and infinite inputs before evaluation.
func validateOperands(operands []float64) error {
	for i, x := range operands {
		if gomath.IsNaN(x) {
			return invalidOperandf("operand %d is NaN", i)
		}
		if gomath.IsInf(x, 0) {
			return invalidOperandf("operand %d is infinite", i)
		}
	}
	return nil
}
