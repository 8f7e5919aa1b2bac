package crypto

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"

	"cipherchat/internal/domain"
)

// Fingerprint returns a short, human-comparable digest of the shared secret.
//
// It hashes the big-endian secret with BLAKE2b-256 and renders the first
// 8 bytes as four dash-separated hex groups, e.g. "3f2a-91c0-77be-0d14".
// Operators can read it to each other to spot an interposer; the protocol
// itself does not check it.
func Fingerprint(secret domain.SharedSecret) string {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], uint64(secret))
	sum := blake2b.Sum256(raw[:])
	h := hex.EncodeToString(sum[:8])
	groups := make([]string, 0, 4)
	for i := 0; i < len(h); i += 4 {
		groups = append(groups, h[i:i+4])
	}
	return strings.Join(groups, "-")
}
