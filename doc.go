// Package calc implements a floating-point arithmetic calculator.
//
// An expression combines decimal literals with the binary operators
// + - * / % ^, unary negation, and parentheses. "-5^2" is the same as
// "-(5^2)", where "a^b" is exponentiation. Arithmetic is IEEE-754 double
// precision: dividing by zero gives an infinity or NaN rather than an
// error.
//
// Input that ends too early, like "2 * " or "2 * (5+2", is reported as
// ErrIncomplete instead of a syntax error. An interactive caller can use
// that to keep reading lines into one buffer until the expression is
// finished.
package calc
