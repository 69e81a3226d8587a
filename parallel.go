package halfgo

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelChunk is the number of elements each worker converts per task.
// Conversions are memory-bound, so chunks are sized to amortize goroutine
// scheduling while staying small enough to balance across cores.
const parallelChunk = 1 << 16

// parallelThreshold is the minimum input length worth fanning out for.
const parallelThreshold = 4 * parallelChunk

// DecodeParallel widens src into dst using all available cores for large
// inputs. Small inputs run on the calling goroutine. dst must hold at
// least len(src) elements. Output is bit-identical to Decode.
func DecodeParallel[H Half](dst []float32, src []H) {
	if len(src) < parallelThreshold {
		Decode(dst, src)
		return
	}
	workers := runtime.GOMAXPROCS(0)
	logFanOut("decode", len(src), (len(src)+parallelChunk-1)/parallelChunk, workers)
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(src); start += parallelChunk {
		end := min(start+parallelChunk, len(src))
		g.Go(func() error {
			Decode(dst[start:end], src[start:end])
			return nil
		})
	}
	_ = g.Wait()
}

// Decode64Parallel widens src into dst as float64 using all available
// cores for large inputs.
func Decode64Parallel[H Half](dst []float64, src []H) {
	if len(src) < parallelThreshold {
		Decode64(dst, src)
		return
	}
	workers := runtime.GOMAXPROCS(0)
	logFanOut("decode64", len(src), (len(src)+parallelChunk-1)/parallelChunk, workers)
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(src); start += parallelChunk {
		end := min(start+parallelChunk, len(src))
		g.Go(func() error {
			Decode64(dst[start:end], src[start:end])
			return nil
		})
	}
	_ = g.Wait()
}

// EncodeParallel rounds src into dst using all available cores for large
// inputs. Output is bit-identical to Encode.
func EncodeParallel[H Half](dst []H, src []float32) {
	if len(src) < parallelThreshold {
		Encode(dst, src)
		return
	}
	workers := runtime.GOMAXPROCS(0)
	logFanOut("encode", len(src), (len(src)+parallelChunk-1)/parallelChunk, workers)
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(src); start += parallelChunk {
		end := min(start+parallelChunk, len(src))
		g.Go(func() error {
			Encode(dst[start:end], src[start:end])
			return nil
		})
	}
	_ = g.Wait()
}

// Encode64Parallel rounds src into dst in a single rounding step per
// element, using all available cores for large inputs.
func Encode64Parallel[H Half](dst []H, src []float64) {
	if len(src) < parallelThreshold {
		Encode64(dst, src)
		return
	}
	workers := runtime.GOMAXPROCS(0)
	logFanOut("encode64", len(src), (len(src)+parallelChunk-1)/parallelChunk, workers)
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(src); start += parallelChunk {
		end := min(start+parallelChunk, len(src))
		g.Go(func() error {
			Encode64(dst[start:end], src[start:end])
			return nil
		})
	}
	_ = g.Wait()
}
