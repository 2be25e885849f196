package buffer

import "io"

var (
	_ io.ReadWriteCloser = (*Pipe[byte])(nil)
)

// BytesPipe creates a new byte Pipe with 1KB initial capacity.
func BytesPipe() *Pipe[byte] {
	return PipeN[byte](1 << 10)
}

// BytesPipeN creates a new byte Pipe with the specified initial capacity.
func BytesPipeN(n int) *Pipe[byte] {
	return PipeN[byte](n)
}

// BytesPipe4KB creates a new byte Pipe with 4KB initial capacity.
func BytesPipe4KB() *Pipe[byte] {
	return PipeN[byte](1 << 12)
}

// BytesWindow creates a new byte Window keeping the last size bytes.
func BytesWindow(size int) *Window[byte] {
	return WindowN[byte](size)
}
