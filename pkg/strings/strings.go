// Package strings provides pooled string-building utilities for Prism
package strings

import (
	"fmt"
	"strconv"
	"sync"
)

// Builder provides efficient string building over a reusable byte buffer
type Builder struct {
	buf []byte
}

// NewBuilder creates a new string builder
func NewBuilder(capacity int) *Builder {
	return &Builder{
		buf: make([]byte, 0, capacity),
	}
}

// WriteString appends a string to the builder
func (b *Builder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteByte appends a single byte to the builder
func (b *Builder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// WriteFloat appends a float formatted with the given precision.
// A negative precision uses the shortest representation that round-trips.
func (b *Builder) WriteFloat(f float64, precision int) {
	b.buf = strconv.AppendFloat(b.buf, f, 'f', precision, 64)
}

// Write implements io.Writer
func (b *Builder) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// String returns the accumulated string as a stable copy
func (b *Builder) String() string {
	return string(b.buf)
}

// Len returns the current length of the builder
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset clears the builder for reuse without deallocating
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

var builderPool = &sync.Pool{
	New: func() interface{} {
		return NewBuilder(256)
	},
}

// GetBuilder retrieves a pooled builder, reset and ready for use
func GetBuilder() *Builder {
	builder := builderPool.Get().(*Builder)
	builder.Reset()
	return builder
}

// PutBuilder returns a builder to the pool
func PutBuilder(builder *Builder) {
	if builder == nil {
		return
	}
	builder.Reset()
	builderPool.Put(builder)
}

// Sprintf provides a pooled alternative to fmt.Sprintf
func Sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}

	builder := GetBuilder()
	defer PutBuilder(builder)

	fmt.Fprintf(builder, format, args...)
	return builder.String()
}

// Concat concatenates strings using a pooled builder
func Concat(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}

	builder := GetBuilder()
	defer PutBuilder(builder)

	for _, s := range parts {
		builder.WriteString(s)
	}
	return builder.String()
}
