// Package scalar implements single-value conversions between the 16-bit
// floating-point encodings (IEEE 754 binary16 and bfloat16) and the 32- and
// 64-bit IEEE 754 formats, operating directly on raw bit patterns.
//
// All functions are total: every input bit pattern produces a defined output.
// Narrowing applies round-to-nearest, ties-to-even. Widening is exact.
package scalar

import (
	"math/bits"
)

// binary16: sign(1) | exp(5, bias 15) | frac(10)
const (
	f16SignMask  uint16 = 0x8000
	f16ExpMask   uint16 = 0x7C00
	f16FracMask  uint16 = 0x03FF
	f16QuietBit  uint16 = 0x0200
	f16FracWidth        = 10
	f16Bias             = 15
)

// bfloat16: sign(1) | exp(8, bias 127) | frac(7)
const (
	bf16SignMask  uint16 = 0x8000
	bf16ExpMask   uint16 = 0x7F80
	bf16FracMask  uint16 = 0x007F
	bf16QuietBit  uint16 = 0x0040
	bf16FracWidth        = 7
)

// binary32: sign(1) | exp(8, bias 127) | frac(23)
const (
	f32ExpMask   uint32 = 0x7F800000
	f32FracMask  uint32 = 0x007FFFFF
	f32FracWidth        = 23
	f32Bias             = 127
)

// binary64: sign(1) | exp(11, bias 1023) | frac(52)
const (
	f64ExpMask   uint64 = 0x7FF0000000000000
	f64FracMask  uint64 = 0x000FFFFFFFFFFFFF
	f64FracWidth        = 52
	f64Bias             = 1023
)

// F16ToF32 widens a binary16 bit pattern to a binary32 bit pattern.
// The conversion is exact for every input, including signed zeros,
// subnormals, infinities and NaNs.
func F16ToF32(h uint16) uint32 {
	sign := uint32(h&f16SignMask) << 16
	exp := uint32(h>>f16FracWidth) & 0x1F
	frac := uint32(h & f16FracMask)

	switch exp {
	case 0x1F:
		// Inf keeps a zero fraction; NaN keeps a shifted, nonzero payload.
		return sign | f32ExpMask | frac<<(f32FracWidth-f16FracWidth)
	case 0:
		if frac == 0 {
			return sign
		}
		// Subnormal: value is frac * 2^-24. Shift the leading set bit into
		// the implicit-bit position and rebias.
		l := bits.Len32(frac)
		frac = (frac << uint(f16FracWidth+1-l)) & uint32(f16FracMask)
		return sign | uint32(l+f32Bias-f16Bias-f16FracWidth)<<f32FracWidth |
			frac<<(f32FracWidth-f16FracWidth)
	default:
		return sign | (exp+f32Bias-f16Bias)<<f32FracWidth |
			frac<<(f32FracWidth-f16FracWidth)
	}
}

// F32ToF16 narrows a binary32 bit pattern to a binary16 bit pattern with
// round-to-nearest-even. Overflow saturates to infinity; values below the
// subnormal range round to signed zero. NaN payloads are truncated and kept
// nonzero.
func F32ToF16(b uint32) uint16 {
	sign := uint16(b>>16) & f16SignMask
	exp := int32(b>>f32FracWidth) & 0xFF
	frac := b & f32FracMask

	if exp == 0xFF {
		if frac == 0 {
			return sign | f16ExpMask
		}
		// Truncate the payload so quiet NaNs survive a widen-then-narrow
		// round trip bit for bit. Only when every surviving payload bit is
		// zero does the quiet bit get forced, keeping the result a NaN.
		payload := uint16(frac >> (f32FracWidth - f16FracWidth))
		if payload == 0 {
			payload = f16QuietBit
		}
		return sign | f16ExpMask | payload
	}

	// Zero, and binary32 subnormals: far below the binary16 subnormal
	// range, so they round to signed zero.
	if exp == 0 {
		return sign
	}

	e16 := exp - f32Bias + f16Bias

	if e16 >= 0x1F {
		return sign | f16ExpMask
	}

	if e16 <= 0 {
		// Below the smallest value representable even as a subnormal.
		if e16 < -f16FracWidth {
			return sign
		}
		// Denormalize: re-insert the implicit bit, shift out the excess,
		// round to nearest even on the discarded bits.
		mant := frac | (f32FracMask + 1)
		shift := uint32(f32FracWidth-f16FracWidth) + uint32(1-e16)
		m := uint16(mant >> shift)
		rem := mant & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && m&1 == 1) {
			m++
		}
		// A carry into bit 10 lands exactly on the smallest normal encoding.
		return sign | m
	}

	m := uint16(frac >> (f32FracWidth - f16FracWidth))
	rem := frac & (1<<(f32FracWidth-f16FracWidth) - 1)
	const half = uint32(1) << (f32FracWidth - f16FracWidth - 1)
	if rem > half || (rem == half && m&1 == 1) {
		m++
		if m == f16FracMask+1 {
			m = 0
			e16++
			if e16 >= 0x1F {
				return sign | f16ExpMask
			}
		}
	}
	return sign | uint16(e16)<<f16FracWidth | m
}

// BF16ToF32 widens a bfloat16 bit pattern to a binary32 bit pattern.
// bfloat16 shares the binary32 exponent width and bias, so the mapping is a
// plain shift with no rebiasing and is exact for every input.
func BF16ToF32(b uint16) uint32 {
	return uint32(b) << 16
}

// F32ToBF16 narrows a binary32 bit pattern to a bfloat16 bit pattern,
// rounding the discarded low 16 bits to nearest even. A NaN input keeps a
// forced mantissa bit so the result stays NaN even when the surviving
// payload bits are zero.
func F32ToBF16(b uint32) uint16 {
	if b&f32ExpMask == f32ExpMask && b&f32FracMask != 0 {
		m := uint16(b >> 16)
		if m&bf16FracMask == 0 {
			m |= bf16QuietBit
		}
		return m
	}
	m := uint16(b >> 16)
	rem := b & 0xFFFF
	const half = uint32(0x8000)
	if rem > half || (rem == half && m&1 == 1) {
		// Carry propagates through the exponent; saturation to infinity
		// falls out of the encoding.
		m++
	}
	return m
}

// F16ToF64 widens a binary16 bit pattern to a binary64 bit pattern.
// Exact for every input.
func F16ToF64(h uint16) uint64 {
	sign := uint64(h&f16SignMask) << 48
	exp := uint64(h>>f16FracWidth) & 0x1F
	frac := uint64(h & f16FracMask)

	switch exp {
	case 0x1F:
		return sign | f64ExpMask | frac<<(f64FracWidth-f16FracWidth)
	case 0:
		if frac == 0 {
			return sign
		}
		l := bits.Len64(frac)
		frac = (frac << uint(f16FracWidth+1-l)) & uint64(f16FracMask)
		return sign | uint64(l+f64Bias-f16Bias-f16FracWidth)<<f64FracWidth |
			frac<<(f64FracWidth-f16FracWidth)
	default:
		return sign | (exp+f64Bias-f16Bias)<<f64FracWidth |
			frac<<(f64FracWidth-f16FracWidth)
	}
}

// F64ToF16 narrows a binary64 bit pattern to a binary16 bit pattern in a
// single rounding step. Routing through binary32 would compound two
// roundings; this computes round-to-nearest-even directly on the 64-bit
// mantissa.
func F64ToF16(b uint64) uint16 {
	sign := uint16(b>>48) & f16SignMask
	exp := int64(b>>f64FracWidth) & 0x7FF
	frac := b & f64FracMask

	if exp == 0x7FF {
		if frac == 0 {
			return sign | f16ExpMask
		}
		payload := uint16(frac >> (f64FracWidth - f16FracWidth))
		if payload == 0 {
			payload = f16QuietBit
		}
		return sign | f16ExpMask | payload
	}

	if exp == 0 {
		return sign
	}

	e16 := exp - f64Bias + f16Bias

	if e16 >= 0x1F {
		return sign | f16ExpMask
	}

	if e16 <= 0 {
		if e16 < -f16FracWidth {
			return sign
		}
		mant := frac | (f64FracMask + 1)
		shift := uint64(f64FracWidth-f16FracWidth) + uint64(1-e16)
		m := uint16(mant >> shift)
		rem := mant & (1<<shift - 1)
		half := uint64(1) << (shift - 1)
		if rem > half || (rem == half && m&1 == 1) {
			m++
		}
		return sign | m
	}

	m := uint16(frac >> (f64FracWidth - f16FracWidth))
	rem := frac & (1<<(f64FracWidth-f16FracWidth) - 1)
	const half = uint64(1) << (f64FracWidth - f16FracWidth - 1)
	if rem > half || (rem == half && m&1 == 1) {
		m++
		if m == f16FracMask+1 {
			m = 0
			e16++
			if e16 >= 0x1F {
				return sign | f16ExpMask
			}
		}
	}
	return sign | uint16(e16)<<f16FracWidth | m
}

// BF16ToF64 widens a bfloat16 bit pattern to a binary64 bit pattern.
// Exact for every input.
func BF16ToF64(b uint16) uint64 {
	sign := uint64(b&bf16SignMask) << 48
	exp := uint64(b>>bf16FracWidth) & 0xFF
	frac := uint64(b & bf16FracMask)

	switch exp {
	case 0xFF:
		return sign | f64ExpMask | frac<<(f64FracWidth-bf16FracWidth)
	case 0:
		if frac == 0 {
			return sign
		}
		l := bits.Len64(frac)
		frac = (frac << uint(bf16FracWidth+1-l)) & uint64(bf16FracMask)
		return sign | uint64(l+f64Bias-f32Bias-bf16FracWidth)<<f64FracWidth |
			frac<<(f64FracWidth-bf16FracWidth)
	default:
		return sign | (exp+f64Bias-f32Bias)<<f64FracWidth |
			frac<<(f64FracWidth-bf16FracWidth)
	}
}

// F64ToBF16 narrows a binary64 bit pattern to a bfloat16 bit pattern in a
// single rounding step, never routed through binary32.
func F64ToBF16(b uint64) uint16 {
	sign := uint16(b>>48) & bf16SignMask
	exp := int64(b>>f64FracWidth) & 0x7FF
	frac := b & f64FracMask

	if exp == 0x7FF {
		if frac == 0 {
			return sign | bf16ExpMask
		}
		payload := uint16(frac>>(f64FracWidth-bf16FracWidth)) & bf16FracMask
		if payload == 0 {
			payload = bf16QuietBit
		}
		return sign | bf16ExpMask | payload
	}

	if exp == 0 {
		return sign
	}

	e8 := exp - f64Bias + f32Bias

	if e8 >= 0xFF {
		return sign | bf16ExpMask
	}

	if e8 <= 0 {
		if e8 < -bf16FracWidth {
			return sign
		}
		mant := frac | (f64FracMask + 1)
		shift := uint64(f64FracWidth-bf16FracWidth) + uint64(1-e8)
		m := uint16(mant >> shift)
		rem := mant & (1<<shift - 1)
		half := uint64(1) << (shift - 1)
		if rem > half || (rem == half && m&1 == 1) {
			m++
		}
		return sign | m
	}

	m := uint16(frac >> (f64FracWidth - bf16FracWidth))
	rem := frac & (1<<(f64FracWidth-bf16FracWidth) - 1)
	const half = uint64(1) << (f64FracWidth - bf16FracWidth - 1)
	if rem > half || (rem == half && m&1 == 1) {
		m++
		if m == bf16FracMask+1 {
			m = 0
			e8++
			if e8 >= 0xFF {
				return sign | bf16ExpMask
			}
		}
	}
	return sign | uint16(e8)<<bf16FracWidth | m
}
