// Package softmath provides transcendental and trigonometric functions over
// softfloat.F32, computed entirely in software float arithmetic so that
// results are bit-identical across platforms.
//
// The functions are approximations, not correctly rounded: the argument is
// reduced to a small range, a fixed polynomial with bit-exact coefficients
// is evaluated, and the result is reconstructed. Absolute error scales with
// the magnitude of the result (about 1e-6 relative for the exponential and
// logarithmic family, 5e-3 for trigonometry). Tan is computed as Sin/Cos
// without a dedicated reduction and degrades near odd multiples of pi/2.
package softmath
