// Package calc implements the core numeric and sequence operations.
//
// All functions are pure: output depends only on input, inputs are never
// mutated, and no call shares state with any other. Every function is total
// except Divide, which returns ErrDivisionByZero for a zero divisor.
package calc
