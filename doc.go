// Package halfgo provides bit-exact IEEE-754 binary16 (half) and bfloat16
// conversion for Go.
//
// Halfgo treats the 16-bit formats as storage types: values are held as raw
// bit-patterns and widened to float32 or float64 for arithmetic. Every
// conversion is deterministic and bit-exact, including NaN payloads, signed
// zeros, subnormals, and round-to-nearest-even ties.
//
// # Quick Start
//
// Scalar conversion:
//
//	h := halfgo.Float16FromFloat32(1.5)
//	f := h.Float32()          // 1.5, exact
//	b := halfgo.BFloat16FromFloat64(3.14159)
//
// Batch conversion:
//
//	halves := make([]halfgo.Float16, len(floats))
//	halfgo.Encode(halves, floats)            // float32 -> binary16
//	back := halfgo.DecodeSlice(halves)       // fresh aligned []float32
//
// # Single Rounding
//
// The float64 paths round once, directly to 16 bits. Narrowing through
// float32 first can round twice and land one ulp off:
//
//	x := 1 + 0x1p-11 + 0x1p-24
//	halfgo.Float16FromFloat64(x)                   // 0x3C01, correct
//	halfgo.Float16FromFloat32(float32(x))          // 0x3C00, double-rounded
//
// # Zero Copy
//
// Slices of Float16, BFloat16, float32, and float64 can be viewed as their
// raw bit-patterns without copying:
//
//	bits := halfgo.ReinterpretAsBits(halves)   // []uint16 aliasing halves
//	back := halfgo.ReinterpretFromBits[halfgo.Float16](bits)
//
// # Build Modes
//
// The default build carries unrolled group kernels for batch conversion.
// Building with `-tags noasm` falls back to element-at-a-time loops. Both
// produce bit-identical results; Accelerated reports which set a binary
// carries, and the choice never changes at runtime.
//
// # Large Inputs
//
// DecodeParallel and EncodeParallel fan batch conversion out across cores
// for large slices, with output bit-identical to the serial forms.
package halfgo
