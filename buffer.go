package snfmt

import "sync"

// buffer is a pooled scratch slice for the transcoding steps of the float
// bridge.
type buffer struct {
	b []byte
}

var bufPool = sync.Pool{
	New: func() any {
		return &buffer{b: make([]byte, 0, 64)}
	},
}

func getBuffer() *buffer {
	return bufPool.Get().(*buffer)
}

// free returns b to the pool. Large buffers are dropped to bound the memory
// the pool pins.
func (b *buffer) free() {
	if cap(b.b) > 16<<10 {
		return
	}
	b.b = b.b[:0]
	bufPool.Put(b)
}
