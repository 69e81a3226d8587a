package halfgo

import (
	"math"
	"strconv"

	"github.com/hupe1980/halfgo/internal/scalar"
)

// Float16 is the raw IEEE-754 binary16 bit-pattern.
//
// Layout:
//
//	sign: 1 bit
//	exp:  5 bits (bias 15)
//	frac: 10 bits
//
// The zero value is positive zero. Float16 is a storage format: arithmetic
// happens in float32 or float64 after widening.
type Float16 uint16

// Limits of the binary16 format as ready-made bit patterns.
const (
	// MaxFloat16 is the largest finite binary16 value, 65504.
	MaxFloat16 Float16 = 0x7BFF
	// MinNormalFloat16 is the smallest positive normal value, 2^-14.
	MinNormalFloat16 Float16 = 0x0400
	// SmallestNonzeroFloat16 is the smallest positive subnormal value, 2^-24.
	SmallestNonzeroFloat16 Float16 = 0x0001
	// Float16Epsilon is the difference between 1 and the next larger
	// representable value, 2^-10.
	Float16Epsilon Float16 = 0x1400
)

const (
	f16SignMask Float16 = 0x8000
	f16ExpMask  Float16 = 0x7C00
	f16FracMask Float16 = 0x03FF
)

// Float16FromFloat32 rounds f to the nearest binary16 value, ties to even.
// Values beyond the finite range become infinity, NaN stays NaN.
func Float16FromFloat32(f float32) Float16 {
	return Float16(scalar.F32ToF16(math.Float32bits(f)))
}

// Float16FromFloat64 rounds f to the nearest binary16 value in a single
// rounding step. Going through float32 first can round twice and land one
// ulp off; this path never does.
func Float16FromFloat64(f float64) Float16 {
	return Float16(scalar.F64ToF16(math.Float64bits(f)))
}

// Float16FromBits returns the value for the raw bit-pattern b.
func Float16FromBits(b uint16) Float16 {
	return Float16(b)
}

// Float16Inf returns positive infinity if sign >= 0, negative infinity
// if sign < 0.
func Float16Inf(sign int) Float16 {
	if sign < 0 {
		return f16SignMask | f16ExpMask
	}
	return f16ExpMask
}

// Float16NaN returns a quiet NaN.
func Float16NaN() Float16 {
	return f16ExpMask | 0x0200
}

// Bits returns the raw bit-pattern.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// Float32 widens h to float32. The conversion is exact: every binary16
// value is representable in binary32.
func (h Float16) Float32() float32 {
	return math.Float32frombits(scalar.F16ToF32(uint16(h)))
}

// Float64 widens h to float64 exactly.
func (h Float16) Float64() float64 {
	return math.Float64frombits(scalar.F16ToF64(uint16(h)))
}

// IsNaN reports whether h is an IEEE-754 "not-a-number" value.
func (h Float16) IsNaN() bool {
	return h&f16ExpMask == f16ExpMask && h&f16FracMask != 0
}

// IsInf reports whether h is an infinity, according to sign.
// If sign > 0, IsInf reports whether h is positive infinity.
// If sign < 0, IsInf reports whether h is negative infinity.
// If sign == 0, IsInf reports whether h is either infinity.
func (h Float16) IsInf(sign int) bool {
	if h&^f16SignMask != f16ExpMask {
		return false
	}
	return sign == 0 || (sign > 0) == (h&f16SignMask == 0)
}

// IsFinite reports whether h is neither infinite nor NaN.
func (h Float16) IsFinite() bool {
	return h&f16ExpMask != f16ExpMask
}

// IsNormal reports whether h is a normal number: not zero, subnormal,
// infinite, or NaN.
func (h Float16) IsNormal() bool {
	exp := h & f16ExpMask
	return exp != 0 && exp != f16ExpMask
}

// IsSubnormal reports whether h is a subnormal number.
func (h Float16) IsSubnormal() bool {
	return h&f16ExpMask == 0 && h&f16FracMask != 0
}

// IsZero reports whether h is zero of either sign.
func (h Float16) IsZero() bool {
	return h&^f16SignMask == 0
}

// Signbit reports whether h is negative or negative zero.
func (h Float16) Signbit() bool {
	return h&f16SignMask != 0
}

// Neg returns h with its sign flipped. Neg of NaN is still NaN.
func (h Float16) Neg() Float16 {
	return h ^ f16SignMask
}

// Abs returns h with the sign bit cleared.
func (h Float16) Abs() Float16 {
	return h &^ f16SignMask
}

// String formats h with the shortest decimal that round-trips through
// float32.
func (h Float16) String() string {
	return strconv.FormatFloat(float64(h.Float32()), 'g', -1, 32)
}
