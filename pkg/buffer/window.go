package buffer

import (
	"sync"

	"github.com/CasualX/ringbuf/pkg/ring"
)

// Window is a thread-safe fixed-capacity buffer that keeps the most recent
// elements, overwriting the oldest when full. It never blocks and never
// grows, making it suitable for bounded histories such as recent log lines
// or rolling samples.
type Window[T any] struct {
	mu   sync.Mutex
	rb   *ring.Ring[T]
	size int
}

// WindowN creates a new Window holding the last size elements.
// If size <= 0 it is normalized to 1.
func WindowN[T any](size int) *Window[T] {
	if size <= 0 {
		size = 1
	}
	return &Window[T]{
		rb:   ring.WithCapacity[T](size),
		size: size,
	}
}

// Push appends an element, evicting the oldest one if the window is full.
func (w *Window[T]) Push(v T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.rb.Len() == w.size {
		w.rb.RemoveHead(1)
	}
	w.rb.Push(v)
}

// Append appends all elements of p, evicting the oldest as needed.
// If p is larger than the window, only its last size elements are kept.
func (w *Window[T]) Append(p []T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(p) >= w.size {
		w.rb.Clear()
		w.rb.Append(p[len(p)-w.size:])
		return
	}
	if evict := w.rb.Len() + len(p) - w.size; evict > 0 {
		w.rb.RemoveHead(evict)
	}
	w.rb.Append(p)
}

// Last returns a copy of the last n elements, oldest first.
// If n exceeds the number of buffered elements, all of them are returned.
func (w *Window[T]) Last(n int) []T {
	w.mu.Lock()
	defer w.mu.Unlock()
	if n > w.rb.Len() {
		n = w.rb.Len()
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range n {
		out[i] = w.rb.At(w.rb.Len() - n + i)
	}
	return out
}

// Snapshot returns a copy of all buffered elements, oldest first.
func (w *Window[T]) Snapshot() []T {
	w.mu.Lock()
	defer w.mu.Unlock()
	first, second := w.rb.Slices()
	out := make([]T, 0, len(first)+len(second))
	return append(append(out, first...), second...)
}

// Len returns the number of elements currently buffered.
func (w *Window[T]) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rb.Len()
}

// Cap returns the window size.
func (w *Window[T]) Cap() int {
	return w.size
}

// Clear empties the window. Storage is retained.
func (w *Window[T]) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rb.Clear()
}
