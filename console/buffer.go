package console

import "sync"

// buffer is a simple growing byte buffer with manual capacity management.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, 256)} }}

func getBufWithCap(initCap int) *buffer {
	if initCap <= 0 {
		initCap = 256
	}
	buf := bufPool.Get().(*buffer)
	if cap(buf.b) < initCap {
		buf.b = make([]byte, 0, initCap)
	} else {
		buf.b = buf.b[:0]
	}
	return buf
}

func putBuf(buf *buffer) {
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}
