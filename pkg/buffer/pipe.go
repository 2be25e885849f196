package buffer

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/CasualX/ringbuf/pkg/ring"
)

// ErrIteratorDone is returned by Next when iteration is complete.
var ErrIteratorDone = errors.New("iterator done")

// Pipe is a thread-safe growable FIFO that connects a producer to a
// consumer. It implements io.Reader and io.Writer semantics over element
// slices: writes never block because the underlying ring grows on demand,
// while reads block until data is available or the write side is closed.
//
// Storage drained by reads is reused by later writes, so a pipe in steady
// state holds one allocation sized to its peak backlog.
type Pipe[T any] struct {
	writeNotify chan struct{}

	mu         sync.Mutex
	rb         *ring.Ring[T]
	closeWrite bool
	closeErr   error
}

// NewPipe creates a new empty Pipe. Storage is allocated on first write.
func NewPipe[T any]() *Pipe[T] {
	return PipeN[T](0)
}

// PipeN creates a new Pipe with storage pre-allocated for n elements.
// The capacity is a hint; the pipe grows beyond it as needed.
func PipeN[T any](n int) *Pipe[T] {
	return &Pipe[T]{
		writeNotify: make(chan struct{}, 1),
		rb:          ring.WithCapacity[T](n),
	}
}

// Write appends all elements of p to the pipe, growing it as needed.
// Returns the number of elements written (always len(p) on success).
// Returns an error if the pipe is closed.
func (p *Pipe[T]) Write(buf []T) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closeErr != nil {
		return 0, fmt.Errorf("buffer: write to closed pipe: %w", p.closeErr)
	}
	if p.closeWrite {
		return 0, fmt.Errorf("buffer: write to closed pipe: %w", io.ErrClosedPipe)
	}
	p.rb.Append(buf)
	select {
	case p.writeNotify <- struct{}{}:
	default:
	}
	return len(buf), nil
}

// Add appends a single element to the pipe.
// Returns an error if the pipe is closed.
func (p *Pipe[T]) Add(v T) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closeErr != nil {
		return fmt.Errorf("buffer: write to closed pipe: %w", p.closeErr)
	}
	if p.closeWrite {
		return fmt.Errorf("buffer: write to closed pipe: %w", io.ErrClosedPipe)
	}
	p.rb.Push(v)
	select {
	case p.writeNotify <- struct{}{}:
	default:
	}
	return nil
}

// Read reads up to len(buf) elements from the pipe in FIFO order.
// It blocks until data is available or the write side is closed.
// Returns io.EOF once the pipe is closed for writing and drained.
func (p *Pipe[T]) Read(buf []T) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closeErr != nil {
		return 0, fmt.Errorf("buffer: read from closed pipe: %w", p.closeErr)
	}

	for p.rb.IsEmpty() {
		if p.closeWrite {
			return 0, io.EOF
		}
		p.mu.Unlock()
		<-p.writeNotify
		p.mu.Lock()
		if p.closeErr != nil {
			return 0, fmt.Errorf("buffer: read from closed pipe: %w", p.closeErr)
		}
	}

	first, second := p.rb.Slices()
	n := copy(buf, first)
	n += copy(buf[n:], second)
	p.rb.RemoveHead(n)
	return n, nil
}

// Next removes and returns the next element in FIFO order.
// It blocks until an element is available or the pipe is closed.
// Returns ErrIteratorDone when the pipe is closed for writing and drained.
func (p *Pipe[T]) Next() (t T, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closeErr != nil {
		err = fmt.Errorf("buffer: read from closed pipe: %w", p.closeErr)
		return
	}
	for p.rb.IsEmpty() {
		if p.closeWrite {
			err = ErrIteratorDone
			return
		}
		p.mu.Unlock()
		<-p.writeNotify
		p.mu.Lock()
		if p.closeErr != nil {
			err = fmt.Errorf("buffer: read from closed pipe: %w", p.closeErr)
			return
		}
	}
	t, _ = p.rb.PopHead()
	return t, nil
}

// Discard removes the next n elements without reading them.
// If n exceeds the available elements, all available data is discarded.
func (p *Pipe[T]) Discard(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closeErr != nil {
		return fmt.Errorf("buffer: discard from closed pipe: %w", p.closeErr)
	}
	p.rb.RemoveHead(n)
	return nil
}

func (p *Pipe[T]) closeWithErrorLocked(err error) error {
	if p.closeErr != nil {
		return nil
	}
	p.closeErr = err
	p.rb.Clear()
	if !p.closeWrite {
		p.closeWrite = true
		close(p.writeNotify)
	}
	return nil
}

// CloseWithError closes both sides of the pipe with the given error.
// All pending operations are unblocked and return this error.
// If err is nil, io.ErrClosedPipe is used.
func (p *Pipe[T]) CloseWithError(err error) error {
	if err == nil {
		err = io.ErrClosedPipe
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeWithErrorLocked(err)
}

// Close closes the pipe. Equivalent to CloseWithError(io.ErrClosedPipe).
func (p *Pipe[T]) Close() error {
	return p.CloseWithError(io.ErrClosedPipe)
}

// CloseWrite closes the write side of the pipe. Reads continue to drain
// buffered data and return io.EOF once the pipe is empty.
func (p *Pipe[T]) CloseWrite() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closeWrite {
		return nil
	}
	p.closeWrite = true
	close(p.writeNotify)
	return nil
}

// Error returns the error the pipe was closed with, if any.
func (p *Pipe[T]) Error() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeErr
}

// Reset discards all buffered data. Storage is retained for reuse.
func (p *Pipe[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rb.Clear()
}

// Len returns the number of elements currently buffered.
func (p *Pipe[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rb.Len()
}

// Cap returns the current storage capacity of the pipe.
func (p *Pipe[T]) Cap() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rb.Cap()
}

// Snapshot returns a copy of all buffered elements in FIFO order.
func (p *Pipe[T]) Snapshot() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	first, second := p.rb.Slices()
	out := make([]T, 0, len(first)+len(second))
	return append(append(out, first...), second...)
}
