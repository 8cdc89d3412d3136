// Package bufpool wraps bytebufferpool.Pool behind a narrow interface,
// adapted from the teacher's internal/helper/gc, so der can borrow a
// scratch buffer for the handful of spots where it needs to produce a
// normalized copy of a DER span rather than return a zero-copy slice
// into the caller's buffer.
package bufpool

import "github.com/valyala/bytebufferpool"

var pool bytebufferpool.Pool

// Get returns a buffer from the pool, empty and ready to write into.
func Get() *bytebufferpool.ByteBuffer { return pool.Get() }

// Put returns buf to the pool after resetting it.
func Put(buf *bytebufferpool.ByteBuffer) {
	buf.Reset()
	pool.Put(buf)
}
