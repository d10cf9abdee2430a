// Package arith implements a calculator for four-operator arithmetic.
//
// An expression is a sequence of numbers joined by +, -, * and /, with * and /
// binding more tightly than + and -. Operators of equal precedence associate
// to the left, so "8/4/2" is 1. There are no brackets. A number may carry a
// sign, as in "1+-1", and may start with a decimal point, as in ".5*4".
//
// Evaluation happens in three stages, each usable on its own: Tokenize turns
// text into tokens, Build arranges tokens into a tree, and Eval reduces a tree
// to a float64. EvalString runs all three.
//
package arith
