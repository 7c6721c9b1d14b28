// Package entropy supplies fresh seeds for games that are not pinned to one.
// crypto/rand is preferred; the clock is the fallback.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"
)

// Seed returns a positive seed. It never returns 0, which callers use to
// mean "pick one for me".
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		slog.Debug("crypto seed unavailable, using clock", "error", err)
		return clockSeed()
	}
	if s := int64(binary.LittleEndian.Uint64(buf[:]) >> 1); s != 0 {
		return s
	}
	return clockSeed()
}

// Resolve returns seed unchanged unless it is 0, in which case a fresh one
// is drawn.
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return Seed()
}

func clockSeed() int64 {
	if s := time.Now().UnixNano(); s > 0 {
		return s
	}
	return 1
}
