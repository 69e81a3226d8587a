package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of allocated buffers (64 bytes, one cache line).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	// We need enough space to shift the start pointer up to Alignment-1 bytes
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	// Calculate the offset to the first aligned byte
	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Return the slice starting at the aligned offset
	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedUint16 allocates a uint16 slice of the given length with
// 64-byte alignment. Used for 16-bit float storage buffers.
func AllocAlignedUint16(size int) []uint16 {
	if size <= 0 {
		return nil
	}

	byteSlice := AllocAligned(size * 2)
	ptr := unsafe.Pointer(&byteSlice[0])      //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint16)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}

// AllocAlignedFloat32 allocates a float32 slice of the given length with
// 64-byte alignment.
func AllocAlignedFloat32(size int) []float32 {
	if size <= 0 {
		return nil
	}

	byteSlice := AllocAligned(size * 4)
	ptr := unsafe.Pointer(&byteSlice[0])       //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float32)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}

// AllocAlignedFloat64 allocates a float64 slice of the given length with
// 64-byte alignment.
func AllocAlignedFloat64(size int) []float64 {
	if size <= 0 {
		return nil
	}

	byteSlice := AllocAligned(size * 8)
	ptr := unsafe.Pointer(&byteSlice[0])       //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float64)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}
