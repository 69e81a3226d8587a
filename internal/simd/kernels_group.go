//go:build !noasm

package simd

import (
	"math"

	"github.com/hupe1980/halfgo/internal/scalar"
)

const accelerated = true

func init() {
	kernelF16ToF32 = f16ToF32Groups
	kernelF32ToF16 = f32ToF16Groups
	kernelBF16ToF32 = bf16ToF32Groups
	kernelF32ToBF16 = f32ToBF16Groups
	kernelF16ToF64 = f16ToF64Groups
	kernelF64ToF16 = f64ToF16Groups
	kernelBF16ToF64 = bf16ToF64Groups
	kernelF64ToBF16 = f64ToBF16Groups
}

// The group kernels process GroupWidth elements per step through array
// pointers, which removes per-element bounds checks and keeps the body
// free of loop-carried state so the compiler can vectorize it. The tail
// shorter than a group goes through the scalar engine element by element.

func f16ToF32Groups(dst []float32, src []uint16) {
	n := len(src) &^ (GroupWidth - 1)
	for i := 0; i < n; i += GroupWidth {
		s := (*[GroupWidth]uint16)(src[i:])
		d := (*[GroupWidth]float32)(dst[i:])
		d[0] = math.Float32frombits(scalar.F16ToF32(s[0]))
		d[1] = math.Float32frombits(scalar.F16ToF32(s[1]))
		d[2] = math.Float32frombits(scalar.F16ToF32(s[2]))
		d[3] = math.Float32frombits(scalar.F16ToF32(s[3]))
		d[4] = math.Float32frombits(scalar.F16ToF32(s[4]))
		d[5] = math.Float32frombits(scalar.F16ToF32(s[5]))
		d[6] = math.Float32frombits(scalar.F16ToF32(s[6]))
		d[7] = math.Float32frombits(scalar.F16ToF32(s[7]))
	}
	for i := n; i < len(src); i++ {
		dst[i] = math.Float32frombits(scalar.F16ToF32(src[i]))
	}
}

func f32ToF16Groups(dst []uint16, src []float32) {
	n := len(src) &^ (GroupWidth - 1)
	for i := 0; i < n; i += GroupWidth {
		s := (*[GroupWidth]float32)(src[i:])
		d := (*[GroupWidth]uint16)(dst[i:])
		d[0] = scalar.F32ToF16(math.Float32bits(s[0]))
		d[1] = scalar.F32ToF16(math.Float32bits(s[1]))
		d[2] = scalar.F32ToF16(math.Float32bits(s[2]))
		d[3] = scalar.F32ToF16(math.Float32bits(s[3]))
		d[4] = scalar.F32ToF16(math.Float32bits(s[4]))
		d[5] = scalar.F32ToF16(math.Float32bits(s[5]))
		d[6] = scalar.F32ToF16(math.Float32bits(s[6]))
		d[7] = scalar.F32ToF16(math.Float32bits(s[7]))
	}
	for i := n; i < len(src); i++ {
		dst[i] = scalar.F32ToF16(math.Float32bits(src[i]))
	}
}

func bf16ToF32Groups(dst []float32, src []uint16) {
	n := len(src) &^ (GroupWidth - 1)
	for i := 0; i < n; i += GroupWidth {
		s := (*[GroupWidth]uint16)(src[i:])
		d := (*[GroupWidth]float32)(dst[i:])
		d[0] = math.Float32frombits(scalar.BF16ToF32(s[0]))
		d[1] = math.Float32frombits(scalar.BF16ToF32(s[1]))
		d[2] = math.Float32frombits(scalar.BF16ToF32(s[2]))
		d[3] = math.Float32frombits(scalar.BF16ToF32(s[3]))
		d[4] = math.Float32frombits(scalar.BF16ToF32(s[4]))
		d[5] = math.Float32frombits(scalar.BF16ToF32(s[5]))
		d[6] = math.Float32frombits(scalar.BF16ToF32(s[6]))
		d[7] = math.Float32frombits(scalar.BF16ToF32(s[7]))
	}
	for i := n; i < len(src); i++ {
		dst[i] = math.Float32frombits(scalar.BF16ToF32(src[i]))
	}
}

func f32ToBF16Groups(dst []uint16, src []float32) {
	n := len(src) &^ (GroupWidth - 1)
	for i := 0; i < n; i += GroupWidth {
		s := (*[GroupWidth]float32)(src[i:])
		d := (*[GroupWidth]uint16)(dst[i:])
		d[0] = scalar.F32ToBF16(math.Float32bits(s[0]))
		d[1] = scalar.F32ToBF16(math.Float32bits(s[1]))
		d[2] = scalar.F32ToBF16(math.Float32bits(s[2]))
		d[3] = scalar.F32ToBF16(math.Float32bits(s[3]))
		d[4] = scalar.F32ToBF16(math.Float32bits(s[4]))
		d[5] = scalar.F32ToBF16(math.Float32bits(s[5]))
		d[6] = scalar.F32ToBF16(math.Float32bits(s[6]))
		d[7] = scalar.F32ToBF16(math.Float32bits(s[7]))
	}
	for i := n; i < len(src); i++ {
		dst[i] = scalar.F32ToBF16(math.Float32bits(src[i]))
	}
}

func f16ToF64Groups(dst []float64, src []uint16) {
	n := len(src) &^ (GroupWidth - 1)
	for i := 0; i < n; i += GroupWidth {
		s := (*[GroupWidth]uint16)(src[i:])
		d := (*[GroupWidth]float64)(dst[i:])
		d[0] = math.Float64frombits(scalar.F16ToF64(s[0]))
		d[1] = math.Float64frombits(scalar.F16ToF64(s[1]))
		d[2] = math.Float64frombits(scalar.F16ToF64(s[2]))
		d[3] = math.Float64frombits(scalar.F16ToF64(s[3]))
		d[4] = math.Float64frombits(scalar.F16ToF64(s[4]))
		d[5] = math.Float64frombits(scalar.F16ToF64(s[5]))
		d[6] = math.Float64frombits(scalar.F16ToF64(s[6]))
		d[7] = math.Float64frombits(scalar.F16ToF64(s[7]))
	}
	for i := n; i < len(src); i++ {
		dst[i] = math.Float64frombits(scalar.F16ToF64(src[i]))
	}
}

func f64ToF16Groups(dst []uint16, src []float64) {
	n := len(src) &^ (GroupWidth - 1)
	for i := 0; i < n; i += GroupWidth {
		s := (*[GroupWidth]float64)(src[i:])
		d := (*[GroupWidth]uint16)(dst[i:])
		d[0] = scalar.F64ToF16(math.Float64bits(s[0]))
		d[1] = scalar.F64ToF16(math.Float64bits(s[1]))
		d[2] = scalar.F64ToF16(math.Float64bits(s[2]))
		d[3] = scalar.F64ToF16(math.Float64bits(s[3]))
		d[4] = scalar.F64ToF16(math.Float64bits(s[4]))
		d[5] = scalar.F64ToF16(math.Float64bits(s[5]))
		d[6] = scalar.F64ToF16(math.Float64bits(s[6]))
		d[7] = scalar.F64ToF16(math.Float64bits(s[7]))
	}
	for i := n; i < len(src); i++ {
		dst[i] = scalar.F64ToF16(math.Float64bits(src[i]))
	}
}

func bf16ToF64Groups(dst []float64, src []uint16) {
	n := len(src) &^ (GroupWidth - 1)
	for i := 0; i < n; i += GroupWidth {
		s := (*[GroupWidth]uint16)(src[i:])
		d := (*[GroupWidth]float64)(dst[i:])
		d[0] = math.Float64frombits(scalar.BF16ToF64(s[0]))
		d[1] = math.Float64frombits(scalar.BF16ToF64(s[1]))
		d[2] = math.Float64frombits(scalar.BF16ToF64(s[2]))
		d[3] = math.Float64frombits(scalar.BF16ToF64(s[3]))
		d[4] = math.Float64frombits(scalar.BF16ToF64(s[4]))
		d[5] = math.Float64frombits(scalar.BF16ToF64(s[5]))
		d[6] = math.Float64frombits(scalar.BF16ToF64(s[6]))
		d[7] = math.Float64frombits(scalar.BF16ToF64(s[7]))
	}
	for i := n; i < len(src); i++ {
		dst[i] = math.Float64frombits(scalar.BF16ToF64(src[i]))
	}
}

func f64ToBF16Groups(dst []uint16, src []float64) {
	n := len(src) &^ (GroupWidth - 1)
	for i := 0; i < n; i += GroupWidth {
		s := (*[GroupWidth]float64)(src[i:])
		d := (*[GroupWidth]uint16)(dst[i:])
		d[0] = scalar.F64ToBF16(math.Float64bits(s[0]))
		d[1] = scalar.F64ToBF16(math.Float64bits(s[1]))
		d[2] = scalar.F64ToBF16(math.Float64bits(s[2]))
		d[3] = scalar.F64ToBF16(math.Float64bits(s[3]))
		d[4] = scalar.F64ToBF16(math.Float64bits(s[4]))
		d[5] = scalar.F64ToBF16(math.Float64bits(s[5]))
		d[6] = scalar.F64ToBF16(math.Float64bits(s[6]))
		d[7] = scalar.F64ToBF16(math.Float64bits(s[7]))
	}
	for i := n; i < len(src); i++ {
		dst[i] = scalar.F64ToBF16(math.Float64bits(src[i]))
	}
}
