package crypto

import (
	"math/bits"

	"cipherchat/internal/domain"
)

// Transform XORs data against the keystream derived from key and returns a
// new buffer of the same length.
//
// The 64-bit register starts at key on every call. Each byte is XORed with
// the register's low byte, after which the register rotates left by 8. The
// mask therefore repeats every 8 bytes and restarts at the beginning of each
// call. Transform is its own inverse for a given key and call boundary.
func Transform(data []byte, key domain.SharedSecret) []byte {
	out := make([]byte, len(data))
	reg := uint64(key)
	for i, b := range data {
		out[i] = b ^ byte(reg)
		reg = bits.RotateLeft64(reg, 8)
	}
	return out
}
