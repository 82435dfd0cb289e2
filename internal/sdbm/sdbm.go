// Package sdbm implements the SDBM string/byte hash function.
// It is used as the default hash callback for the Device's
// hash-consed descriptor caches.
package sdbm

// Hash computes the SDBM hash of b.
func Hash(b []byte) uint64 {
	var h uint64
	for _, c := range b {
		h = uint64(c) + (h << 6) + (h << 16) - h
	}
	return h
}

// HashString computes the SDBM hash of s.
func HashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = uint64(s[i]) + (h << 6) + (h << 16) - h
	}
	return h
}
