package crypto

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"cipherchat/internal/domain"
)

var ErrBadModulus = errors.New("crypto: modulus must be odd and greater than 2")

// Group holds the public Diffie–Hellman parameters both peers agree on ahead
// of time. They are never negotiated on the wire.
type Group struct {
	P uint64
	G uint64
}

// Fixed parameters every cipherchat peer is built with.
const (
	DefaultP uint64 = 0xD87FA3E291B4C7F3
	DefaultG uint64 = 2
)

// DefaultGroup returns the group built from DefaultP and DefaultG.
func DefaultGroup() Group { return Group{P: DefaultP, G: DefaultG} }

// KeyPair is one side's ephemeral key material for a single session.
type KeyPair struct {
	Private domain.PrivateKey
	Public  domain.PublicKey
}

// Validate reports whether g can be used for an exchange.
func (g Group) Validate() error {
	if g.P <= 2 || g.P&1 == 0 {
		return ErrBadModulus
	}
	return nil
}

// GenerateKeyPair draws a private key uniformly from the full 64-bit range
// and derives its public key. A failing entropy source is returned as an
// error; callers treat it as fatal.
func (g Group) GenerateKeyPair(rand io.Reader) (KeyPair, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return KeyPair{}, fmt.Errorf("reading entropy for private key: %w", err)
	}
	priv := domain.PrivateKey(binary.BigEndian.Uint64(buf[:]))
	return KeyPair{Private: priv, Public: g.PublicKey(priv)}, nil
}

// PublicKey returns g^priv mod p.
func (g Group) PublicKey(priv domain.PrivateKey) domain.PublicKey {
	return domain.PublicKey(ModExp(g.G, uint64(priv), g.P))
}

// ComputeSecret returns peer^priv mod p.
func (g Group) ComputeSecret(peer domain.PublicKey, priv domain.PrivateKey) domain.SharedSecret {
	return domain.SharedSecret(ModExp(uint64(peer), uint64(priv), g.P))
}
