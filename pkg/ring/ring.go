package ring

import (
	"fmt"
	"iter"
)

// minCapacity is the smallest storage size allocated on first growth.
// Avoids a cascade of tiny reallocations for small element counts.
const minCapacity = 8

// Ring is a growable circular buffer. The logical sequence of elements
// occupies physical slots [start, start+length) modulo the capacity, so it
// may wrap around the end of the storage without being physically
// contiguous.
//
// The zero value is an empty ring with no allocation; New and WithCapacity
// are the usual constructors. A Ring must not be mutated concurrently.
//
// Views returned by Slices and Contiguous alias the ring's storage and are
// invalidated by any subsequent mutation.
type Ring[T any] struct {
	buf    []T // storage; len(buf) is the capacity
	start  int // physical slot of the first live element, in [0, cap)
	length int // number of live elements, 0 <= length <= cap
}

// New creates an empty ring. No storage is allocated until elements are
// appended.
func New[T any]() *Ring[T] {
	return &Ring[T]{}
}

// WithCapacity creates an empty ring with storage pre-allocated for n
// elements. If n <= 0 the ring does not allocate.
func WithCapacity[T any](n int) *Ring[T] {
	if n <= 0 {
		return &Ring[T]{}
	}
	return &Ring[T]{buf: make([]T, n)}
}

// Len returns the number of elements currently in the ring.
func (r *Ring[T]) Len() int { return r.length }

// Cap returns the number of elements the ring can hold without growing.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// IsEmpty reports whether the ring contains no elements.
func (r *Ring[T]) IsEmpty() bool { return r.length == 0 }

// slot maps a logical offset to a physical storage index.
// All wraparound arithmetic funnels through here.
// Requires 0 <= i <= cap and a non-zero capacity.
func (r *Ring[T]) slot(i int) int {
	i += r.start
	if c := len(r.buf); i >= c {
		i -= c
	}
	return i
}

// span returns the physical storage backing the logical range [off, off+n)
// as at most two slices. The second slice is nil unless the range crosses
// the wrap boundary.
func (r *Ring[T]) span(off, n int) (first, second []T) {
	if n == 0 {
		return nil, nil
	}
	lo := r.slot(off)
	if hi := lo + n; hi <= len(r.buf) {
		return r.buf[lo:hi], nil
	}
	return r.buf[lo:], r.buf[:lo+n-len(r.buf)]
}

// grow reallocates storage for at least need elements, copying the live
// region to offset 0 in logical order. The ring's fields are only updated
// after the new storage is fully populated, so a failed allocation leaves
// the ring untouched.
func (r *Ring[T]) grow(need int) {
	newCap := max(2*len(r.buf), need, minCapacity)
	buf := make([]T, newCap)
	first, second := r.span(0, r.length)
	n := copy(buf, first)
	copy(buf[n:], second)
	r.buf, r.start = buf, 0
}

// Reserve ensures capacity for at least n additional elements. It never
// shrinks the ring and does nothing if capacity is already sufficient.
func (r *Ring[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	if need := r.length + n; need > len(r.buf) {
		r.grow(need)
	}
}

// Push appends a single element at the tail, growing the ring if needed.
func (r *Ring[T]) Push(v T) {
	if r.length == len(r.buf) {
		r.grow(r.length + 1)
	}
	r.buf[r.slot(r.length)] = v
	r.length++
}

// Append appends all elements of p at the tail. The ring grows at most once
// to fit the whole slice; the copy splits into at most two contiguous
// segments when it crosses the wrap boundary. An empty p is a no-op.
func (r *Ring[T]) Append(p []T) {
	if len(p) == 0 {
		return
	}
	if need := r.length + len(p); need > len(r.buf) {
		r.grow(need)
	}
	first, second := r.span(r.length, len(p))
	n := copy(first, p)
	copy(second, p[n:])
	r.length += len(p)
}

// PopHead removes and returns the first element.
// Returns the zero value and false if the ring is empty.
func (r *Ring[T]) PopHead() (T, bool) {
	var zero T
	if r.length == 0 {
		return zero, false
	}
	v := r.buf[r.start]
	r.buf[r.start] = zero
	r.start = r.slot(1)
	r.length--
	if r.length == 0 {
		r.start = 0
	}
	return v, true
}

// PopTail removes and returns the last element.
// Returns the zero value and false if the ring is empty.
func (r *Ring[T]) PopTail() (T, bool) {
	var zero T
	if r.length == 0 {
		return zero, false
	}
	i := r.slot(r.length - 1)
	v := r.buf[i]
	r.buf[i] = zero
	r.length--
	if r.length == 0 {
		r.start = 0
	}
	return v, true
}

// RemoveHead removes the first n elements. If n exceeds the current length
// it is clamped; the count actually removed is returned. Vacated slots are
// cleared so element-owned memory can be reclaimed.
func (r *Ring[T]) RemoveHead(n int) int {
	if n > r.length {
		n = r.length
	}
	if n <= 0 {
		return 0
	}
	first, second := r.span(0, n)
	clear(first)
	clear(second)
	r.start = r.slot(n)
	r.length -= n
	if r.length == 0 {
		r.start = 0
	}
	return n
}

// RemoveTail removes the last n elements. If n exceeds the current length
// it is clamped; the count actually removed is returned. Vacated slots are
// cleared so element-owned memory can be reclaimed.
func (r *Ring[T]) RemoveTail(n int) int {
	if n > r.length {
		n = r.length
	}
	if n <= 0 {
		return 0
	}
	first, second := r.span(r.length-n, n)
	clear(first)
	clear(second)
	r.length -= n
	if r.length == 0 {
		r.start = 0
	}
	return n
}

// Truncate keeps the first n elements and removes the rest.
// It has no effect if n >= Len(). The capacity is unchanged.
func (r *Ring[T]) Truncate(n int) {
	if n < r.length {
		r.RemoveTail(r.length - n)
	}
}

// Clear removes all elements. The storage is retained for reuse, so
// subsequent appends up to the old capacity do not reallocate.
func (r *Ring[T]) Clear() {
	first, second := r.span(0, r.length)
	clear(first)
	clear(second)
	r.start, r.length = 0, 0
}

// Resize changes the length to n: extra elements are removed from the tail,
// missing elements are appended as copies of v.
func (r *Ring[T]) Resize(n int, v T) {
	if n <= r.length {
		r.Truncate(n)
		return
	}
	r.Reserve(n - r.length)
	for r.length < n {
		r.buf[r.slot(r.length)] = v
		r.length++
	}
}

// At returns the element at logical index i, where index 0 is the head.
// It panics if i is out of range.
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.length {
		panic(fmt.Sprintf("ring: index out of range [%d] with length %d", i, r.length))
	}
	return r.buf[r.slot(i)]
}

// SetAt replaces the element at logical index i.
// It panics if i is out of range.
func (r *Ring[T]) SetAt(i int, v T) {
	if i < 0 || i >= r.length {
		panic(fmt.Sprintf("ring: index out of range [%d] with length %d", i, r.length))
	}
	r.buf[r.slot(i)] = v
}

// Slices returns the live region as at most two storage-backed slices in
// logical order. The second slice is nil when the region does not wrap.
// The slices alias the ring's storage and are invalidated by any mutation.
func (r *Ring[T]) Slices() (first, second []T) {
	return r.span(0, r.length)
}

// Contiguous returns the live region as a single storage-backed slice.
// If the region wraps, the ring relocates its contents into fresh storage
// of the same capacity first, which costs O(n); otherwise no copy is made.
// The slice aliases the ring's storage and is invalidated by any mutation.
func (r *Ring[T]) Contiguous() []T {
	first, second := r.span(0, r.length)
	if second == nil {
		return first
	}
	buf := make([]T, len(r.buf))
	n := copy(buf, first)
	copy(buf[n:], second)
	r.buf, r.start = buf, 0
	return r.buf[:r.length]
}

// Values returns an iterator over the elements in logical order.
// The ring must not be mutated during iteration.
func (r *Ring[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		first, second := r.span(0, r.length)
		for _, v := range first {
			if !yield(v) {
				return
			}
		}
		for _, v := range second {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the ring. The copy is unwrapped and sized to
// the current length.
func (r *Ring[T]) Clone() *Ring[T] {
	c := &Ring[T]{}
	if r.length > 0 {
		c.buf = make([]T, r.length)
		first, second := r.span(0, r.length)
		n := copy(c.buf, first)
		copy(c.buf[n:], second)
		c.length = r.length
	}
	return c
}
