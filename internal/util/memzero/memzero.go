package memzero

import "crypto/subtle"

// Zero overwrites each buffer with zeros once its contents are no longer
// needed (plaintext lines, decrypted chunks).
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	}
}
