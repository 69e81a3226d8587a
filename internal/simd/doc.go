// Package simd provides batched 16-bit float conversion kernels.
//
// # Dispatch
//
// Kernel function pointers are set once at package init. The default build
// installs unrolled group kernels that process eight elements per step with
// a scalar tail; build with -tags noasm to keep the plain scalar loops.
// The selection is fixed for the life of the binary: no conversion path
// branches on CPU capability per call.
//
// # Contract
//
// Every kernel is elementwise-identical to the scalar engine in
// internal/scalar, bit for bit, NaN payloads included, in every build
// configuration.
//
// # Operations
//
//   - binary16 <-> float32 / float64
//   - bfloat16 <-> float32 / float64
package simd
