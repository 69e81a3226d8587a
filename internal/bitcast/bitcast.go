// Package bitcast provides zero-copy relabeling between slices of types that
// share an identical memory layout.
//
// A relabeled view aliases the source storage: writes through either slice are
// visible in the other. No per-element work is performed; the layout check
// runs once when the view is constructed.
package bitcast

import (
	"fmt"
	"unsafe"
)

// Slice reinterprets src as a []Dst without copying.
//
// Dst and Src must have identical size and alignment; a mismatch is a caller
// bug and panics at view construction. The returned view has the same length
// and element order as src. An empty src yields nil.
func Slice[Dst, Src any](src []Src) []Dst {
	var d Dst
	var s Src
	if unsafe.Sizeof(d) != unsafe.Sizeof(s) || unsafe.Alignof(d) != unsafe.Alignof(s) {
		panic(fmt.Sprintf("halfgo: bitcast %T -> %T: incompatible layout (size %d/%d, align %d/%d)",
			s, d, unsafe.Sizeof(s), unsafe.Sizeof(d), unsafe.Alignof(s), unsafe.Alignof(d)))
	}
	if len(src) == 0 {
		return nil
	}
	return unsafe.Slice((*Dst)(unsafe.Pointer(&src[0])), len(src)) //nolint:gosec // unsafe is required for zero-copy reinterpretation
}
