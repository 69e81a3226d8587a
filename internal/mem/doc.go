// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation so batch conversion destinations start
// on a full cache line and suit vector loads.
package mem
