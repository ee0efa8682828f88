package fixed

import "io"

// Buffer is a bounded byte buffer.
// Writes are all-or-nothing: a write that does not fit fails with
// ErrCapacity and leaves the buffer unchanged.
type Buffer struct {
	Vec[byte]
}

// NewBuffer creates an empty Buffer that holds up to capacity bytes.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{Vec: New[byte](capacity)}
}

// BufferFrom creates an empty Buffer backed by the caller's storage.
func BufferFrom(backing []byte) *Buffer {
	return &Buffer{Vec: From(backing)}
}

// Write appends p. Either all of p is written or none of it.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) > b.Remaining() {
		return 0, ErrCapacity
	}
	b.items = append(b.items, p...)
	return len(p), nil
}

// WriteByte appends c.
func (b *Buffer) WriteByte(c byte) error {
	return b.Push(c)
}

// WriteString appends s. Either all of s is written or none of it.
func (b *Buffer) WriteString(s string) (int, error) {
	if len(s) > b.Remaining() {
		return 0, ErrCapacity
	}
	b.items = append(b.items, s...)
	return len(s), nil
}

// Bytes returns the buffered bytes. The result aliases the buffer storage.
func (b *Buffer) Bytes() []byte { return b.Slice() }

// String returns the buffered bytes as a string copy.
func (b *Buffer) String() string { return string(b.items) }

// Compile-time interface satisfaction checks.
var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.ByteWriter   = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
)
