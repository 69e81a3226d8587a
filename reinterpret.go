package halfgo

import "github.com/hupe1980/halfgo/internal/bitcast"

// ReinterpretAsBits views s as its raw bit-patterns without copying.
// The returned slice aliases s: writes through either are visible in both.
func ReinterpretAsBits[H Half](s []H) []uint16 {
	return bitcast.Slice[uint16](s)
}

// ReinterpretFromBits views a slice of raw bit-patterns as a slice of H
// without copying. The returned slice aliases s.
func ReinterpretFromBits[H Half](s []uint16) []H {
	return bitcast.Slice[H](s)
}

// ReinterpretFloat32AsBits views s as raw binary32 bit-patterns without
// copying.
func ReinterpretFloat32AsBits(s []float32) []uint32 {
	return bitcast.Slice[uint32](s)
}

// ReinterpretFloat32FromBits views raw binary32 bit-patterns as float32
// values without copying.
func ReinterpretFloat32FromBits(s []uint32) []float32 {
	return bitcast.Slice[float32](s)
}

// ReinterpretFloat64AsBits views s as raw binary64 bit-patterns without
// copying.
func ReinterpretFloat64AsBits(s []float64) []uint64 {
	return bitcast.Slice[uint64](s)
}

// ReinterpretFloat64FromBits views raw binary64 bit-patterns as float64
// values without copying.
func ReinterpretFloat64FromBits(s []uint64) []float64 {
	return bitcast.Slice[float64](s)
}
