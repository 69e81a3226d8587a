package simd

import (
	"math"

	"github.com/hupe1980/halfgo/internal/scalar"
)

// GroupWidth is the number of elements a group kernel converts per step.
const GroupWidth = 8

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; the group-kernel init()
// (compiled out under the noasm tag) overrides them.
var (
	kernelF16ToF32  = f16ToF32Generic
	kernelF32ToF16  = f32ToF16Generic
	kernelBF16ToF32 = bf16ToF32Generic
	kernelF32ToBF16 = f32ToBF16Generic
	kernelF16ToF64  = f16ToF64Generic
	kernelF64ToF16  = f64ToF16Generic
	kernelBF16ToF64 = bf16ToF64Generic
	kernelF64ToBF16 = f64ToBF16Generic
)

// Accelerated reports whether the group kernels are compiled in. The choice
// is made at build time (-tags noasm disables them) and never changes at
// runtime.
func Accelerated() bool {
	return accelerated
}

// ============================================================================
// Public API - Zero-overhead dispatch through function pointers
// ============================================================================
//
// All kernels convert src[i] into dst[i] for every i in src.
//
// SAFETY: dst must hold at least len(src) elements. Kernels do not check;
// a short dst stops the process with the runtime's bounds panic.

// F16ToF32s converts binary16 bit patterns to float32 values.
func F16ToF32s(dst []float32, src []uint16) {
	kernelF16ToF32(dst, src)
}

// F32ToF16s converts float32 values to binary16 bit patterns.
func F32ToF16s(dst []uint16, src []float32) {
	kernelF32ToF16(dst, src)
}

// BF16ToF32s converts bfloat16 bit patterns to float32 values.
func BF16ToF32s(dst []float32, src []uint16) {
	kernelBF16ToF32(dst, src)
}

// F32ToBF16s converts float32 values to bfloat16 bit patterns.
func F32ToBF16s(dst []uint16, src []float32) {
	kernelF32ToBF16(dst, src)
}

// F16ToF64s converts binary16 bit patterns to float64 values.
func F16ToF64s(dst []float64, src []uint16) {
	kernelF16ToF64(dst, src)
}

// F64ToF16s converts float64 values to binary16 bit patterns in a single
// rounding step per element.
func F64ToF16s(dst []uint16, src []float64) {
	kernelF64ToF16(dst, src)
}

// BF16ToF64s converts bfloat16 bit patterns to float64 values.
func BF16ToF64s(dst []float64, src []uint16) {
	kernelBF16ToF64(dst, src)
}

// F64ToBF16s converts float64 values to bfloat16 bit patterns in a single
// rounding step per element.
func F64ToBF16s(dst []uint16, src []float64) {
	kernelF64ToBF16(dst, src)
}

func f16ToF32Generic(dst []float32, src []uint16) {
	for i := range src {
		dst[i] = math.Float32frombits(scalar.F16ToF32(src[i]))
	}
}

func f32ToF16Generic(dst []uint16, src []float32) {
	for i := range src {
		dst[i] = scalar.F32ToF16(math.Float32bits(src[i]))
	}
}

func bf16ToF32Generic(dst []float32, src []uint16) {
	for i := range src {
		dst[i] = math.Float32frombits(scalar.BF16ToF32(src[i]))
	}
}

func f32ToBF16Generic(dst []uint16, src []float32) {
	for i := range src {
		dst[i] = scalar.F32ToBF16(math.Float32bits(src[i]))
	}
}

func f16ToF64Generic(dst []float64, src []uint16) {
	for i := range src {
		dst[i] = math.Float64frombits(scalar.F16ToF64(src[i]))
	}
}

func f64ToF16Generic(dst []uint16, src []float64) {
	for i := range src {
		dst[i] = scalar.F64ToF16(math.Float64bits(src[i]))
	}
}

func bf16ToF64Generic(dst []float64, src []uint16) {
	for i := range src {
		dst[i] = math.Float64frombits(scalar.BF16ToF64(src[i]))
	}
}

func f64ToBF16Generic(dst []uint16, src []float64) {
	for i := range src {
		dst[i] = scalar.F64ToBF16(math.Float64bits(src[i]))
	}
}
