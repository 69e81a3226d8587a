package halfgo

import (
	"math"
	"strconv"

	"github.com/hupe1980/halfgo/internal/scalar"
)

// BFloat16 is the raw bfloat16 bit-pattern: the upper 16 bits of a
// binary32 value.
//
// Layout:
//
//	sign: 1 bit
//	exp:  8 bits (bias 127)
//	frac: 7 bits
//
// bfloat16 keeps the full binary32 exponent range and trades mantissa
// precision for it, which is why widening to float32 is a plain shift.
type BFloat16 uint16

// Limits of the bfloat16 format as ready-made bit patterns.
const (
	// MaxBFloat16 is the largest finite bfloat16 value, about 3.39e38.
	MaxBFloat16 BFloat16 = 0x7F7F
	// MinNormalBFloat16 is the smallest positive normal value, 2^-126.
	MinNormalBFloat16 BFloat16 = 0x0080
	// SmallestNonzeroBFloat16 is the smallest positive subnormal value, 2^-133.
	SmallestNonzeroBFloat16 BFloat16 = 0x0001
	// BFloat16Epsilon is the difference between 1 and the next larger
	// representable value, 2^-7.
	BFloat16Epsilon BFloat16 = 0x3C00
)

const (
	bf16SignMask BFloat16 = 0x8000
	bf16ExpMask  BFloat16 = 0x7F80
	bf16FracMask BFloat16 = 0x007F
)

// BFloat16FromFloat32 rounds f to the nearest bfloat16 value, ties to even.
func BFloat16FromFloat32(f float32) BFloat16 {
	return BFloat16(scalar.F32ToBF16(math.Float32bits(f)))
}

// BFloat16FromFloat64 rounds f to the nearest bfloat16 value in a single
// rounding step, without an intermediate float32.
func BFloat16FromFloat64(f float64) BFloat16 {
	return BFloat16(scalar.F64ToBF16(math.Float64bits(f)))
}

// BFloat16FromBits returns the value for the raw bit-pattern b.
func BFloat16FromBits(b uint16) BFloat16 {
	return BFloat16(b)
}

// BFloat16Inf returns positive infinity if sign >= 0, negative infinity
// if sign < 0.
func BFloat16Inf(sign int) BFloat16 {
	if sign < 0 {
		return bf16SignMask | bf16ExpMask
	}
	return bf16ExpMask
}

// BFloat16NaN returns a quiet NaN.
func BFloat16NaN() BFloat16 {
	return bf16ExpMask | 0x0040
}

// Bits returns the raw bit-pattern.
func (h BFloat16) Bits() uint16 {
	return uint16(h)
}

// Float32 widens h to float32 exactly.
func (h BFloat16) Float32() float32 {
	return math.Float32frombits(scalar.BF16ToF32(uint16(h)))
}

// Float64 widens h to float64 exactly.
func (h BFloat16) Float64() float64 {
	return math.Float64frombits(scalar.BF16ToF64(uint16(h)))
}

// IsNaN reports whether h is an IEEE-754 "not-a-number" value.
func (h BFloat16) IsNaN() bool {
	return h&bf16ExpMask == bf16ExpMask && h&bf16FracMask != 0
}

// IsInf reports whether h is an infinity, according to sign.
// If sign > 0, IsInf reports whether h is positive infinity.
// If sign < 0, IsInf reports whether h is negative infinity.
// If sign == 0, IsInf reports whether h is either infinity.
func (h BFloat16) IsInf(sign int) bool {
	if h&^bf16SignMask != bf16ExpMask {
		return false
	}
	return sign == 0 || (sign > 0) == (h&bf16SignMask == 0)
}

// IsFinite reports whether h is neither infinite nor NaN.
func (h BFloat16) IsFinite() bool {
	return h&bf16ExpMask != bf16ExpMask
}

// IsNormal reports whether h is a normal number: not zero, subnormal,
// infinite, or NaN.
func (h BFloat16) IsNormal() bool {
	exp := h & bf16ExpMask
	return exp != 0 && exp != bf16ExpMask
}

// IsSubnormal reports whether h is a subnormal number.
func (h BFloat16) IsSubnormal() bool {
	return h&bf16ExpMask == 0 && h&bf16FracMask != 0
}

// IsZero reports whether h is zero of either sign.
func (h BFloat16) IsZero() bool {
	return h&^bf16SignMask == 0
}

// Signbit reports whether h is negative or negative zero.
func (h BFloat16) Signbit() bool {
	return h&bf16SignMask != 0
}

// Neg returns h with its sign flipped. Neg of NaN is still NaN.
func (h BFloat16) Neg() BFloat16 {
	return h ^ bf16SignMask
}

// Abs returns h with the sign bit cleared.
func (h BFloat16) Abs() BFloat16 {
	return h &^ bf16SignMask
}

// String formats h with the shortest decimal that round-trips through
// float32.
func (h BFloat16) String() string {
	return strconv.FormatFloat(float64(h.Float32()), 'g', -1, 32)
}
