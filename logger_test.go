package halfgo

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLoggerCapturesFanOut(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	rng := rand.New(rand.NewSource(1))
	src := randomFloat16s(rng, parallelThreshold)
	dst := make([]float32, len(src))
	DecodeParallel(dst, src)

	out := buf.String()
	require.Contains(t, out, "parallel fan-out")
	assert.Contains(t, out, "op=decode")
	assert.Contains(t, out, fmt.Sprintf("count=%d", parallelThreshold))
	assert.Contains(t, out, fmt.Sprintf("chunks=%d", parallelThreshold/parallelChunk))

	// Below the threshold the conversion stays serial and logs nothing.
	buf.Reset()
	DecodeParallel(dst[:10], src[:10])
	assert.Empty(t, buf.String())

	// SetLogger(nil) silences the package again.
	SetLogger(nil)
	DecodeParallel(dst, src)
	assert.Empty(t, buf.String())
}

func TestEncodeParallelLogsOp(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	src := make([]float32, parallelThreshold)
	dst := make([]Float16, len(src))
	EncodeParallel(dst, src)

	assert.Contains(t, buf.String(), "op=encode")
}
