package bitcast

import (
	"testing"
)

type half16 uint16

func TestSlice_RoundTrip(t *testing.T) {
	src := []uint16{0x3C00, 0x8000, 0x7C00, 0x0001}

	view := Slice[half16](src)
	if len(view) != len(src) {
		t.Fatalf("len=%d want=%d", len(view), len(src))
	}
	for i := range src {
		if uint16(view[i]) != src[i] {
			t.Fatalf("view[%d]=%04x want=%04x", i, uint16(view[i]), src[i])
		}
	}

	back := Slice[uint16](view)
	if len(back) != len(src) {
		t.Fatalf("len=%d want=%d", len(back), len(src))
	}
	if &back[0] != &src[0] {
		t.Fatal("round trip does not alias the original storage")
	}
}

func TestSlice_Aliasing(t *testing.T) {
	src := []uint16{0, 0, 0}
	view := Slice[half16](src)

	view[1] = 0x3C00
	if src[1] != 0x3C00 {
		t.Fatalf("write through view not visible in source: %04x", src[1])
	}

	src[2] = 0x7C00
	if view[2] != 0x7C00 {
		t.Fatalf("write through source not visible in view: %04x", uint16(view[2]))
	}
}

func TestSlice_Empty(t *testing.T) {
	if got := Slice[half16]([]uint16{}); got != nil {
		t.Fatalf("empty slice should yield nil, got %v", got)
	}
	if got := Slice[half16]([]uint16(nil)); got != nil {
		t.Fatalf("nil slice should yield nil, got %v", got)
	}
}

func TestSlice_WideFormats(t *testing.T) {
	f := []float32{1, -2, 0.5}
	bits := Slice[uint32](f)
	if bits[0] != 0x3F800000 || bits[1] != 0xC0000000 || bits[2] != 0x3F000000 {
		t.Fatalf("unexpected bits: %08x %08x %08x", bits[0], bits[1], bits[2])
	}

	d := []float64{1}
	bits64 := Slice[uint64](d)
	if bits64[0] != 0x3FF0000000000000 {
		t.Fatalf("unexpected bits: %016x", bits64[0])
	}
}

func TestSlice_LayoutMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on layout mismatch")
		}
	}()
	_ = Slice[uint32]([]uint16{1, 2})
}
