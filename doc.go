// Package guac implements a stack-based algebraic calculator engine.
//
// The engine keeps a stack of exact symbolic expressions entered in
// reverse-Polish order. An expression is built from arbitrary-precision
// rationals, named constants like π, free variables, and operator
// applications, and is always held in a deterministic canonical form:
// "5 π 2 π² ×××" simplifies to 10π³ no matter the order the factors
// arrive in. Values never lose precision; switching an entry between
// exact and approximate display only changes how it renders.
//
// Numbers parse and render in any radix from 2 to 64 using the digits
// 0-9, a-z, A-Z, ! and @.
package guac
