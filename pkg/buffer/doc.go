// Package buffer provides synchronized streaming adapters on top of the
// ring package's growable circular buffer engine.
//
// Two adapter types cover the common producer/consumer shapes:
//
//   - Pipe: a growable blocking FIFO. Writes never block (the underlying
//     ring grows as needed), reads block until data arrives or the write
//     side is closed. Drained storage is reused, so steady-state
//     append/drain cycles do not reallocate.
//
//   - Window: a fixed-capacity bounded-history buffer that overwrites the
//     oldest elements when full. Suitable for keeping the last N log lines,
//     samples, or events.
//
// Pipe implements io.Reader, io.Writer and io.Closer when instantiated with
// byte elements, and supports graceful shutdown through CloseWrite (reads
// continue until empty, then io.EOF) or CloseWithError (immediate closure).
// Byte-specific constructors live in bytes.go.
//
// Example usage:
//
//	p := buffer.BytesPipe()
//	go func() {
//		p.Write([]byte("hello"))
//		p.CloseWrite()
//	}()
//	data, _ := io.ReadAll(p)
package buffer
