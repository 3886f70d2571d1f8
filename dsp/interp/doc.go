// Package interp provides the fractional-read kernels used by modulated
// delay stages.
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite (default for modulated all-passes)
package interp
