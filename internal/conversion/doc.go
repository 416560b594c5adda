// Package conversion is the miles-to-kilometers conversion engine.
//
// It exposes one exact method and three approximations built on the
// Fibonacci sequence, whose consecutive-term ratio tends to the golden ratio
// (≈1.618, close to the 1.609344 km/mile factor):
//
//   - exact:       miles × 1.609344.
//   - interpolate: walks Fibonacci pairs on the fly and interpolates linearly.
//   - cached:      the same interpolation over a precomputed [Table].
//   - binet:       locates the bracket with Binet's closed form instead of a table.
//
// The three approximations share one bracket-and-interpolate routine; they
// differ only in the [BracketSource] that supplies (F(k), F(k+1), F(k+2)).
// Inputs below [LowRangeThreshold] and brackets that cannot be formed are
// answered with the exact formula, so every method degrades to the ground
// truth instead of failing.
//
// Callers obtain methods through a [ConverterFactory]; the returned
// [Converter] adds input validation, tracing and observer notification around
// the pure algorithm.
package conversion
