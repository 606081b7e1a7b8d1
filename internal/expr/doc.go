// Package expr evaluates free-form infix arithmetic expressions.
//
// Parsing and evaluation are delegated to github.com/Knetic/govaluate; the
// calculator engine's unary operations are exposed to the expression language
// as functions (sqrt, abs, floor, ceil, round, exp, log, log10, log2) and the
// usual constants (pi, e, tau, phi) are bound as parameters.
package expr
