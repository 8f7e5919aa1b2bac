package handshake

import (
	"fmt"
	"io"

	"cipherchat/internal/crypto"
	"cipherchat/internal/domain"
)

// Result is what a completed exchange yields.
type Result struct {
	Local  domain.PublicKey
	Peer   domain.PublicKey
	Secret domain.SharedSecret
}

// Run performs the exchange for role over rw using group and the entropy
// source rand. An unusable group is rejected before anything is sent.
func Run(rw io.ReadWriter, role domain.Role, group crypto.Group, rand io.Reader) (Result, error) {
	if err := group.Validate(); err != nil {
		return Result{}, err
	}
	kp, err := group.GenerateKeyPair(rand)
	if err != nil {
		return Result{}, err
	}

	var peer domain.PublicKey
	switch role {
	case domain.Listener:
		if err := sendPublic(rw, kp.Public); err != nil {
			return Result{}, err
		}
		if peer, err = recvPublic(rw); err != nil {
			return Result{}, err
		}
	case domain.Initiator:
		if peer, err = recvPublic(rw); err != nil {
			return Result{}, err
		}
		if err := sendPublic(rw, kp.Public); err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("unknown role %v", role)
	}

	return Result{
		Local:  kp.Public,
		Peer:   peer,
		Secret: group.ComputeSecret(peer, kp.Private),
	}, nil
}

func sendPublic(w io.Writer, pub domain.PublicKey) error {
	b := pub.Bytes()
	if _, err := w.Write(b[:]); err != nil {
		return fmt.Errorf("send public key: %w", err)
	}
	return nil
}

func recvPublic(r io.Reader) (domain.PublicKey, error) {
	var b [domain.PublicKeySize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("receive public key: %w", err)
	}
	return domain.PublicKeyFromBytes(b[:])
}
