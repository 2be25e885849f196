// Package ring provides a growable circular buffer for sequences of
// fixed-size elements.
//
// A Ring keeps its elements in one contiguous allocation and wraps the
// logical sequence around the physical end of the storage, so repeated
// append/drain cycles reuse the same memory instead of reallocating per
// element. Appends at the tail and removals from either end are amortized
// O(1); only growth costs O(n).
//
// The live region may be physically split across the wrap boundary.
// Slices exposes it as at most two storage-backed views in logical order,
// and Contiguous coalesces it into a single view when one is required.
//
// A Ring is single-owner: it performs no internal synchronization and must
// not be mutated concurrently. For shared producer/consumer use, see the
// buffer package, which layers synchronized pipes and windows on top of
// this engine.
//
// Example usage:
//
//	r := ring.WithCapacity[byte](4)
//	r.Append([]byte{1, 2, 3, 4})
//	r.RemoveHead(2)           // live content: [3 4]
//	r.Append([]byte{5, 6, 7}) // grows, content: [3 4 5 6 7]
//
//	for v := range r.Values() {
//		// elements in logical order, wrap handled internally
//		_ = v
//	}
package ring
