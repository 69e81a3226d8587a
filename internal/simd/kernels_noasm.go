//go:build noasm

package simd

const accelerated = false
