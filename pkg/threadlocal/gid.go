package threadlocal

import (
	"bytes"
	"runtime"
	"strconv"
)

// GID returns the runtime ID of the calling goroutine, parsed from the
// goroutine's stack header ("goroutine N [running]:"). IDs start at 1 and
// are never reused while the goroutine is alive, which makes them suitable
// as per-goroutine storage keys.
func GID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}
