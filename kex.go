// kex.go - Authenticated and unilaterally-authenticated key exchange built
// atop Kyber.KEM.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// kexKeySize is the length, in bytes, of the shared secret a key exchange
// handshake produces. It is also the key size requested from every
// Encapsulate/Decapsulate call made during the handshake.
const kexKeySize = SymSize

// UAKEInitiatorMessageSize returns the size, in bytes, of the initiator's
// unilaterally-authenticated message: an ephemeral public key followed by
// a KEM ciphertext.
func (p *ParameterSet) UAKEInitiatorMessageSize() int {
	return p.publicKeySize + p.cipherTextSize
}

// UAKEResponderMessageSize returns the size, in bytes, of the responder's
// unilaterally-authenticated message: a single KEM ciphertext.
func (p *ParameterSet) UAKEResponderMessageSize() int {
	return p.cipherTextSize
}

// UAKEInitiatorState holds the ephemeral state of a party initiating an
// unilaterally-authenticated key exchange (the responder's long-term key
// is authenticated; the initiator's is not). Each instance must only be
// used for a single exchange.
type UAKEInitiatorState struct {
	// Message is the handshake message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  []byte
}

// NewUAKEInitiatorState begins a UAKE exchange against the responder's
// long-term public key. ekSeed (64 bytes) generates a fresh ephemeral KEM
// keypair; encapsSeed (32 bytes) drives the encapsulation against the
// responder's key. Both seeds must come from a secure entropy source at
// the caller's boundary; nothing in this package samples its own entropy.
func NewUAKEInitiatorState(responderPk *PublicKey, ekSeed, encapsSeed []byte) (*UAKEInitiatorState, error) {
	ps := responderPk.ps

	ePk, eSk, err := GenerateKeyPair(ps, ekSeed)
	if err != nil {
		return nil, err
	}

	ct, tk, err := Encapsulate(responderPk, encapsSeed, kexKeySize)
	if err != nil {
		return nil, err
	}

	s := &UAKEInitiatorState{
		Message: append(append([]byte(nil), ePk.Bytes()...), ct...),
		eSk:     eSk,
		tk:      tk,
	}
	return s, nil
}

// Shared completes the UAKE exchange given the responder's message,
// deriving the session's shared secret.
func (s *UAKEInitiatorState) Shared(recv []byte) ([]byte, error) {
	if len(recv) != s.eSk.ps.cipherTextSize {
		return nil, errors.Wrapf(ErrInvalidCipherTextSize, "UAKEInitiatorState.Shared: want %d bytes, got %d", s.eSk.ps.cipherTextSize, len(recv))
	}

	tk, err := Decapsulate(s.eSk, recv, kexKeySize)
	if err != nil {
		return nil, err
	}

	xof := sha3.NewShake256()
	xof.Write(tk)
	xof.Write(s.tk)
	shared := make([]byte, kexKeySize)
	xof.Read(shared)
	return shared, nil
}

// UAKEResponderShared generates the responder's message and the resulting
// shared secret given the initiator's message and the responder's
// long-term private key. encapsSeed (32 bytes) drives the responder's
// encapsulation against the initiator's ephemeral public key.
func UAKEResponderShared(sk *PrivateKey, recv, encapsSeed []byte) (message, sharedSecret []byte, err error) {
	ps := sk.ps
	pkLen := ps.publicKeySize

	if len(recv) != ps.UAKEInitiatorMessageSize() {
		return nil, nil, errors.Wrapf(ErrInvalidMessageSize, "UAKEResponderShared: want %d bytes, got %d", ps.UAKEInitiatorMessageSize(), len(recv))
	}
	rawPk, ct := recv[:pkLen], recv[pkLen:]

	ePk, err := LoadPublicKey(ps, rawPk)
	if err != nil {
		return nil, nil, err
	}

	message, tkOut, err := Encapsulate(ePk, encapsSeed, kexKeySize)
	if err != nil {
		return nil, nil, err
	}

	tkIn, err := Decapsulate(sk, ct, kexKeySize)
	if err != nil {
		return nil, nil, err
	}

	xof := sha3.NewShake256()
	xof.Write(tkOut)
	xof.Write(tkIn)
	sharedSecret = make([]byte, kexKeySize)
	xof.Read(sharedSecret)
	return message, sharedSecret, nil
}

// AKEInitiatorMessageSize returns the size, in bytes, of the initiator's
// mutually-authenticated message.
func (p *ParameterSet) AKEInitiatorMessageSize() int {
	return p.publicKeySize + p.cipherTextSize
}

// AKEResponderMessageSize returns the size, in bytes, of the responder's
// mutually-authenticated message: two KEM ciphertexts concatenated.
func (p *ParameterSet) AKEResponderMessageSize() int {
	return 2 * p.cipherTextSize
}

// AKEInitiatorState holds the ephemeral state of a party initiating a
// mutually-authenticated key exchange. Each instance must only be used
// for a single exchange.
type AKEInitiatorState struct {
	// Message is the handshake message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  []byte
}

// NewAKEInitiatorState begins an AKE exchange; the initial message is
// identical in shape to the UAKE case, so the construction is shared.
func NewAKEInitiatorState(responderPk *PublicKey, ekSeed, encapsSeed []byte) (*AKEInitiatorState, error) {
	us, err := NewUAKEInitiatorState(responderPk, ekSeed, encapsSeed)
	if err != nil {
		return nil, err
	}
	return &AKEInitiatorState{Message: us.Message, eSk: us.eSk, tk: us.tk}, nil
}

// Shared completes the AKE exchange given the responder's message and the
// initiator's own long-term private key, which binds the initiator's
// identity into the resulting shared secret.
func (s *AKEInitiatorState) Shared(recv []byte, initiatorSk *PrivateKey) ([]byte, error) {
	ps := s.eSk.ps
	if initiatorSk.ps != ps {
		return nil, ErrParameterSetMismatch
	}
	if len(recv) != ps.AKEResponderMessageSize() {
		return nil, errors.Wrapf(ErrInvalidMessageSize, "AKEInitiatorState.Shared: want %d bytes, got %d", ps.AKEResponderMessageSize(), len(recv))
	}
	ctLen := ps.cipherTextSize

	tk1, err := Decapsulate(s.eSk, recv[:ctLen], kexKeySize)
	if err != nil {
		return nil, err
	}
	tk2, err := Decapsulate(initiatorSk, recv[ctLen:], kexKeySize)
	if err != nil {
		return nil, err
	}

	xof := sha3.NewShake256()
	xof.Write(tk1)
	xof.Write(tk2)
	xof.Write(s.tk)
	shared := make([]byte, kexKeySize)
	xof.Read(shared)
	return shared, nil
}

// AKEResponderShared generates the responder's message and the resulting
// shared secret, binding both the initiator's ephemeral key and its
// long-term identity key into the session secret. encapsSeed1 drives the
// encapsulation against the initiator's ephemeral key, encapsSeed2 the
// encapsulation against the initiator's long-term public key.
func AKEResponderShared(sk *PrivateKey, recv []byte, peerPk *PublicKey, encapsSeed1, encapsSeed2 []byte) (message, sharedSecret []byte, err error) {
	ps := sk.ps
	pkLen := ps.publicKeySize

	if peerPk.ps != ps {
		return nil, nil, ErrParameterSetMismatch
	}
	if len(recv) != ps.AKEInitiatorMessageSize() {
		return nil, nil, errors.Wrapf(ErrInvalidMessageSize, "AKEResponderShared: want %d bytes, got %d", ps.AKEInitiatorMessageSize(), len(recv))
	}
	rawPk, ct := recv[:pkLen], recv[pkLen:]

	ePk, err := LoadPublicKey(ps, rawPk)
	if err != nil {
		return nil, nil, err
	}

	ct1, tk1, err := Encapsulate(ePk, encapsSeed1, kexKeySize)
	if err != nil {
		return nil, nil, err
	}
	ct2, tk2, err := Encapsulate(peerPk, encapsSeed2, kexKeySize)
	if err != nil {
		return nil, nil, err
	}

	tk3, err := Decapsulate(sk, ct, kexKeySize)
	if err != nil {
		return nil, nil, err
	}

	xof := sha3.NewShake256()
	xof.Write(tk1)
	xof.Write(tk2)
	xof.Write(tk3)
	sharedSecret = make([]byte, kexKeySize)
	xof.Read(sharedSecret)

	message = append(append([]byte(nil), ct1...), ct2...)
	return message, sharedSecret, nil
}
