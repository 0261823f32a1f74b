package internal

import (
	"bytes"
	"sync"
)

var bufPool = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// GetBuffer returns a reset buffer from the pool. Pair with PutBuffer.
func GetBuffer() *bytes.Buffer {
	b := bufPool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

// PutBuffer returns b to the pool. Callers must copy out any bytes
// they still need first.
func PutBuffer(b *bytes.Buffer) {
	if b != nil {
		bufPool.Put(b)
	}
}
