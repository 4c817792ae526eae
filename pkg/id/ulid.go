// Package id generates sortable identifiers for requests and enquiries.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Crockford's Base32 alphabet (excludes I, L, O, U).
const crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// ulidLen is the encoded length: 130 bits in 5-bit groups, top 2 bits always zero.
const ulidLen = 26

// NewULID generates a ULID: 48-bit millisecond timestamp followed by 80 random bits,
// Crockford Base32 encoded into 26 characters. Lexicographic order follows creation time.
func NewULID() string {
	return encodeULID(uint64(time.Now().UnixMilli()), entropy())
}

// entropy returns 80 random bits split into the high 16 and low 64.
func entropy() (hi uint16, lo uint64) {
	var b [10]byte
	if _, err := rand.Read(b[:]); err != nil {
		// degraded but still unique enough per process
		binary.BigEndian.PutUint64(b[2:], uint64(time.Now().UnixNano()))
	}
	return binary.BigEndian.Uint16(b[:2]), binary.BigEndian.Uint64(b[2:])
}

func encodeULID(ms uint64, randHi uint16, randLo uint64) string {
	// value = ms<<80 | randHi<<64 | randLo, held as a 128-bit (hi, lo) pair.
	hi := (ms&0xFFFFFFFFFFFF)<<16 | uint64(randHi)
	lo := randLo

	var out [ulidLen]byte
	for i := range ulidLen {
		shift := uint(5 * (ulidLen - 1 - i))
		var v uint64
		switch {
		case shift >= 64:
			v = hi >> (shift - 64)
		case shift+5 <= 64:
			v = lo >> shift
		default:
			v = lo>>shift | hi<<(64-shift)
		}
		out[i] = crockfordBase32[v&0x1F]
	}
	return string(out[:])
}
