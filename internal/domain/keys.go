package domain

import (
	"encoding/binary"
	"fmt"
)

// PublicKeySize is the number of bytes a public key occupies on the wire.
const PublicKeySize = 8

// PrivateKey is an ephemeral 64-bit exponent. It is never transmitted.
type PrivateKey uint64

// PublicKey is g^private mod p.
type PublicKey uint64

// SharedSecret is peer_public^private mod p. Both peers derive the same value
// and use it directly as the stream cipher key.
type SharedSecret uint64

// Bytes returns the big-endian wire form of the public key.
func (k PublicKey) Bytes() [PublicKeySize]byte {
	var out [PublicKeySize]byte
	binary.BigEndian.PutUint64(out[:], uint64(k))
	return out
}

// PublicKeyFromBytes decodes a big-endian wire public key.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return 0, fmt.Errorf("public key: want %d bytes, got %d", PublicKeySize, len(b))
	}
	return PublicKey(binary.BigEndian.Uint64(b)), nil
}

func (s SharedSecret) String() string { return fmt.Sprintf("%X", uint64(s)) }
