package engine

import gomath "math"

// arithmeticOps handles scalar arithmetic.
type arithmeticOps struct{}

// Add sums the operands.
func (a *arithmeticOps) Add(operands []float64) (float64, error) {
	sum := 0.0
	for _, n := range operands {
		sum += n
	}
	return finite(sum)
}

// Subtract subtracts b from a.
func (a *arithmeticOps) Subtract(x, y float64) (float64, error) {
	return finite(x - y)
}

// Multiply multiplies the operands.
func (a *arithmeticOps) Multiply(operands []float64) (float64, error) {
	product := 1.0
	for _, n := range operands {
		product *= n
	}
	return finite(product)
}

// Divide divides a by b.
func (a *arithmeticOps) Divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return finite(x / y)
}

// Power raises base to exponent.
func (a *arithmeticOps) Power(base, exponent float64) (float64, error) {
	return finite(gomath.Pow(base, exponent))
}

// Mod calculates the remainder of a/b.
func (a *arithmeticOps) Mod(x, y float64) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return finite(gomath.Mod(x, y))
}

// Sqrt calculates the square root.
func (a *arithmeticOps) Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, invalidOperandf("cannot take square root of negative number")
	}
	return finite(gomath.Sqrt(x))
}

// Abs calculates the absolute value.
func (a *arithmeticOps) Abs(x float64) (float64, error) {
	return finite(gomath.Abs(x))
}

// Floor rounds down.
func (a *arithmeticOps) Floor(x float64) (float64, error) {
	return finite(gomath.Floor(x))
}

// Ceil rounds up.
func (a *arithmeticOps) Ceil(x float64) (float64, error) {
	return finite(gomath.Ceil(x))
}

// Round rounds to the nearest integer.
func (a *arithmeticOps) Round(x float64) (float64, error) {
	return finite(gomath.Round(x))
}

// Exp calculates e^x.
func (a *arithmeticOps) Exp(x float64) (float64, error) {
	return finite(gomath.Exp(x))
}

// Log calculates the natural logarithm.
func (a *arithmeticOps) Log(x float64) (float64, error) {
	if x <= 0 {
		return 0, invalidOperandf("logarithm undefined for non-positive numbers")
	}
	return finite(gomath.Log(x))
}

// Log10 calculates the base-10 logarithm.
func (a *arithmeticOps) Log10(x float64) (float64, error) {
	if x <= 0 {
		return 0, invalidOperandf("logarithm undefined for non-positive numbers")
	}
	return finite(gomath.Log10(x))
}

// Log2 calculates the base-2 logarithm.
func (a *arithmeticOps) Log2(x float64) (float64, error) {
	if x <= 0 {
		return 0, invalidOperandf("logarithm undefined for non-positive numbers")
	}
	return finite(gomath.Log2(x))
}

// Factorial calculates n!.
func (a *arithmeticOps) Factorial(n float64) (float64, error) {
	if n < 0 || n != gomath.Floor(n) {
		return 0, invalidOperandf("factorial requires a non-negative integer")
	}

	result := 1.0
	for i := 2; i <= int(n); i++ {
		result *= float64(i)
	}
	return finite(result)
}

// GCD calculates the greatest common divisor via the Euclidean algorithm.
func (a *arithmeticOps) GCD(x, y float64) (float64, error) {
	if x != gomath.Floor(x) || y != gomath.Floor(y) {
		return 0, invalidOperandf("gcd requires integer operands")
	}

	numA := int64(gomath.Abs(x))
	numB := int64(gomath.Abs(y))
	for numB != 0 {
		numA, numB = numB, numA%numB
	}
	return float64(numA), nil
}

// LCM calculates the least common multiple.
func (a *arithmeticOps) LCM(x, y float64) (float64, error) {
	if x != gomath.Floor(x) || y != gomath.Floor(y) {
		return 0, invalidOperandf("lcm requires integer operands")
	}
	if x == 0 || y == 0 {
		return 0, nil
	}

	numA := int64(gomath.Abs(x))
	numB := int64(gomath.Abs(y))
	gcd, rem := numA, numB
	for rem != 0 {
		gcd, rem = rem, gcd%rem
	}
	return finite(float64((numA / gcd) * numB))
}
