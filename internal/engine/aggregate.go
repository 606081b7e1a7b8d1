package engine

import (
	gomath "math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// aggregateOps handles operations over operand lists using gonum.
type aggregateOps struct{}

// Sum calculates the sum.
func (s *aggregateOps) Sum(operands []float64) (float64, error) {
	sum := 0.0
	for _, n := range operands {
		sum += n
	}
	return finite(sum)
}

// Product calculates the product.
func (s *aggregateOps) Product(operands []float64) (float64, error) {
	product := 1.0
	for _, n := range operands {
		product *= n
	}
	return finite(product)
}

// Mean calculates the arithmetic mean using gonum.
func (s *aggregateOps) Mean(operands []float64) (float64, error) {
	return finite(stat.Mean(operands, nil))
}

// Median calculates the median using gonum quantile. Requires sorted input.
func (s *aggregateOps) Median(operands []float64) (float64, error) {
	sorted := make([]float64, len(operands))
	copy(sorted, operands)
	sort.Float64s(sorted)

	return finite(stat.Quantile(0.5, stat.Empirical, sorted, nil))
}

// Min finds the minimum value.
func (s *aggregateOps) Min(operands []float64) (float64, error) {
	min := operands[0]
	for _, n := range operands[1:] {
		min = gomath.Min(min, n)
	}
	return min, nil
}

// Max finds the maximum value.
func (s *aggregateOps) Max(operands []float64) (float64, error) {
	max := operands[0]
	for _, n := range operands[1:] {
		max = gomath.Max(max, n)
	}
	return max, nil
}

// Stdev calculates the sample standard deviation using gonum.
func (s *aggregateOps) Stdev(operands []float64) (float64, error) {
	return finite(gomath.Sqrt(stat.Variance(operands, nil)))
}

// Variance calculates the sample variance using gonum.
func (s *aggregateOps) Variance(operands []float64) (float64, error) {
	return finite(stat.Variance(operands, nil))
}
