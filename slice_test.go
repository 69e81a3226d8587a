package halfgo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sliceLens = []int{0, 1, 7, 8, 9, 63, 64, 65, 1000}

func randomFloat16s(rng *rand.Rand, n int) []Float16 {
	out := make([]Float16, n)
	for i := range out {
		out[i] = Float16FromBits(uint16(rng.Uint32()))
	}
	return out
}

func randomBFloat16s(rng *rand.Rand, n int) []BFloat16 {
	out := make([]BFloat16, n)
	for i := range out {
		out[i] = BFloat16FromBits(uint16(rng.Uint32()))
	}
	return out
}

func TestDecodeMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range sliceLens {
		src := randomFloat16s(rng, n)
		dst := make([]float32, n)
		Decode(dst, src)
		for i, h := range src {
			require.Equal(t, math.Float32bits(h.Float32()), math.Float32bits(dst[i]), "n=%d i=%d", n, i)
		}
	}
}

func TestDecodeBFloat16MatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range sliceLens {
		src := randomBFloat16s(rng, n)
		dst := make([]float32, n)
		Decode(dst, src)
		for i, h := range src {
			require.Equal(t, math.Float32bits(h.Float32()), math.Float32bits(dst[i]), "n=%d i=%d", n, i)
		}
	}
}

func TestDecode64MatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range sliceLens {
		src := randomFloat16s(rng, n)
		dst := make([]float64, n)
		Decode64(dst, src)
		for i, h := range src {
			require.Equal(t, math.Float64bits(h.Float64()), math.Float64bits(dst[i]), "n=%d i=%d", n, i)
		}
	}
}

func TestEncodeMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, n := range sliceLens {
		src := make([]float32, n)
		for i := range src {
			src[i] = math.Float32frombits(rng.Uint32())
		}
		f16s := make([]Float16, n)
		Encode(f16s, src)
		bf16s := make([]BFloat16, n)
		Encode(bf16s, src)
		for i, f := range src {
			require.Equal(t, Float16FromFloat32(f), f16s[i], "n=%d i=%d", n, i)
			require.Equal(t, BFloat16FromFloat32(f), bf16s[i], "n=%d i=%d", n, i)
		}
	}
}

func TestEncode64MatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range sliceLens {
		src := make([]float64, n)
		for i := range src {
			src[i] = math.Float64frombits(rng.Uint64())
		}
		f16s := make([]Float16, n)
		Encode64(f16s, src)
		bf16s := make([]BFloat16, n)
		Encode64(bf16s, src)
		for i, f := range src {
			require.Equal(t, Float16FromFloat64(f), f16s[i], "n=%d i=%d", n, i)
			require.Equal(t, BFloat16FromFloat64(f), bf16s[i], "n=%d i=%d", n, i)
		}
	}
}

func TestDecodeSlice(t *testing.T) {
	src := []Float16{0x3C00, 0xC000, 0x7C00, 0x0001}
	dst := DecodeSlice(src)
	require.Len(t, dst, len(src))
	assert.Equal(t, float32(1), dst[0])
	assert.Equal(t, float32(-2), dst[1])
	assert.True(t, math.IsInf(float64(dst[2]), 1))
	assert.Equal(t, float32(0x1p-24), dst[3])

	assert.Nil(t, DecodeSlice([]Float16(nil)))
}

func TestEncodeSlice(t *testing.T) {
	src := []float32{1, -2, 65504, 0.5}
	f16s := EncodeSlice[Float16](src)
	require.Len(t, f16s, len(src))
	assert.Equal(t, Float16(0x3C00), f16s[0])
	assert.Equal(t, Float16(0xC000), f16s[1])
	assert.Equal(t, MaxFloat16, f16s[2])
	assert.Equal(t, Float16(0x3800), f16s[3])

	bf16s := EncodeSlice[BFloat16](src)
	assert.Equal(t, BFloat16(0x3F80), bf16s[0])
	assert.Equal(t, BFloat16(0xC000), bf16s[1])

	assert.Nil(t, EncodeSlice[Float16](nil))
}

func TestEncode64Slice(t *testing.T) {
	x := 1 + 0x1p-11 + 0x1p-24
	f16s := Encode64Slice[Float16]([]float64{x})
	require.Equal(t, Float16(0x3C01), f16s[0])

	y := 1 + 0x1p-8 + 0x1p-25
	bf16s := Encode64Slice[BFloat16]([]float64{y})
	require.Equal(t, BFloat16(0x3F81), bf16s[0])
}

func TestDecode64Slice(t *testing.T) {
	src := []BFloat16{0x3F80, 0x0001}
	dst := Decode64Slice(src)
	require.Len(t, dst, 2)
	assert.Equal(t, float64(1), dst[0])
	assert.Equal(t, 0x1p-133, dst[1])
}

func TestDecodeShortDestinationPanics(t *testing.T) {
	src := make([]Float16, 16)
	assert.Panics(t, func() { Decode(make([]float32, 8), src) })
}

func TestAcceleratedIsStable(t *testing.T) {
	assert.Equal(t, Accelerated(), Accelerated())
}
