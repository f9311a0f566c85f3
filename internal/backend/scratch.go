package backend

import "runtime"

// withScratch runs fn with a transient working buffer of the given size and
// zeroizes the buffer on every exit path, including panics. The native
// routines write key-dependent intermediate values into this memory, so the
// wipe is a hard requirement, not tidiness.
func withScratch(size int, fn func(tmp []byte) error) error {
	tmp := make([]byte, size)
	defer Wipe(tmp)
	return fn(tmp)
}

// Wipe overwrites buf with zeros. runtime.KeepAlive keeps the stores from
// being discarded as dead writes (golang/go#33325); the GC may still have
// moved copies around, which is the accepted limit of zeroization in Go.
func Wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
