package halfgo

import (
	"github.com/hupe1980/halfgo/internal/bitcast"
	"github.com/hupe1980/halfgo/internal/mem"
	"github.com/hupe1980/halfgo/internal/simd"
)

// Half is the set of 16-bit floating-point storage formats.
type Half interface {
	Float16 | BFloat16
}

// Decode widens src into dst element by element. dst must hold at least
// len(src) elements or Decode panics. Results are bit-identical to calling
// Float32 on each element.
func Decode[H Half](dst []float32, src []H) {
	bits := bitcast.Slice[uint16](src)
	switch any(src).(type) {
	case []Float16:
		simd.F16ToF32s(dst, bits)
	case []BFloat16:
		simd.BF16ToF32s(dst, bits)
	}
}

// Decode64 widens src into dst as float64. dst must hold at least len(src)
// elements or Decode64 panics.
func Decode64[H Half](dst []float64, src []H) {
	bits := bitcast.Slice[uint16](src)
	switch any(src).(type) {
	case []Float16:
		simd.F16ToF64s(dst, bits)
	case []BFloat16:
		simd.BF16ToF64s(dst, bits)
	}
}

// Encode rounds src into dst element by element, ties to even. dst must
// hold at least len(src) elements or Encode panics.
func Encode[H Half](dst []H, src []float32) {
	bits := bitcast.Slice[uint16](dst)
	switch any(dst).(type) {
	case []Float16:
		simd.F32ToF16s(bits, src)
	case []BFloat16:
		simd.F32ToBF16s(bits, src)
	}
}

// Encode64 rounds src into dst in a single rounding step per element.
// dst must hold at least len(src) elements or Encode64 panics.
func Encode64[H Half](dst []H, src []float64) {
	bits := bitcast.Slice[uint16](dst)
	switch any(dst).(type) {
	case []Float16:
		simd.F64ToF16s(bits, src)
	case []BFloat16:
		simd.F64ToBF16s(bits, src)
	}
}

// DecodeSlice widens src into a freshly allocated float32 slice. The
// destination is cache-line aligned so it also suits vector loads.
func DecodeSlice[H Half](src []H) []float32 {
	dst := mem.AllocAlignedFloat32(len(src))
	Decode(dst, src)
	return dst
}

// Decode64Slice widens src into a freshly allocated float64 slice.
func Decode64Slice[H Half](src []H) []float64 {
	dst := mem.AllocAlignedFloat64(len(src))
	Decode64(dst, src)
	return dst
}

// EncodeSlice rounds src into a freshly allocated slice of H.
func EncodeSlice[H Half](src []float32) []H {
	dst := bitcast.Slice[H](mem.AllocAlignedUint16(len(src)))
	Encode(dst, src)
	return dst
}

// Encode64Slice rounds src into a freshly allocated slice of H, one
// rounding step per element.
func Encode64Slice[H Half](src []float64) []H {
	dst := bitcast.Slice[H](mem.AllocAlignedUint16(len(src)))
	Encode64(dst, src)
	return dst
}

// Accelerated reports whether this build carries the group conversion
// kernels. The choice is fixed at build time; `-tags noasm` disables them.
func Accelerated() bool {
	return simd.Accelerated()
}
