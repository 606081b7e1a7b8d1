// Package engine implements the calculator's evaluation core.
//
// This package is organized into specialized modules:
//   - arithmetic: Scalar operations (add, subtract, multiply, divide, power, sqrt)
//   - aggregate: Operations over operand lists (sum, mean, median, stdev)
//   - precision: High-precision decimal arithmetic over string operands
//
// Built on gonum.org/v1/gonum for the statistical aggregates:
//   - IEEE 754 floating-point accuracy
//   - Statistical algorithms from R and NumPy
//
// All operations are pure functions: no state, no side effects. Non-finite
// inputs are rejected and any operation whose result is NaN or infinite
// fails with ErrNotFinite rather than saturating.
package engine
