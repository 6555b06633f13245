// Package interp provides interpolation primitives used by fractional delay
// taps.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear2]:   2-point linear interpolation
//   - [Hermite4]:  4-point cubic Hermite (good default)
//   - [Lagrange4]: 4-point cubic Lagrange
//
// [Mode] selects one of them at run time; [At] dispatches on it.
package interp
