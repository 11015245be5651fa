// kem.go - Kyber.KEM: IND-CCA2-secure key encapsulation via the
// Fujisaki-Okamoto transform.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/subtle"

	"github.com/pkg/errors"
)

// PublicKey is a Kyber KEM public key, wrapping the underlying CPAPKE
// public key verbatim.
type PublicKey struct {
	ps *ParameterSet
	b  []byte
}

// PrivateKey is a Kyber KEM private key: the CPAPKE private key with the
// public key, a hash of the public key, and an implicit-rejection seed
// appended, per §4.8 of the Kyber design.
type PrivateKey struct {
	ps *ParameterSet
	b  []byte
}

// ParameterSet returns the ParameterSet a key was generated under.
func (pk *PublicKey) ParameterSet() *ParameterSet { return pk.ps }

// Bytes returns the packed byte representation of a public key.
func (pk *PublicKey) Bytes() []byte { return append([]byte(nil), pk.b...) }

// ParameterSet returns the ParameterSet a key was generated under.
func (sk *PrivateKey) ParameterSet() *ParameterSet { return sk.ps }

// Bytes returns the packed byte representation of a private key.
func (sk *PrivateKey) Bytes() []byte { return append([]byte(nil), sk.b...) }

// LoadPublicKey parses a previously-serialized public key under the given
// ParameterSet.
func LoadPublicKey(ps *ParameterSet, b []byte) (*PublicKey, error) {
	if len(b) != ps.publicKeySize {
		return nil, errors.Wrapf(ErrInvalidKeySize, "LoadPublicKey: want %d bytes, got %d", ps.publicKeySize, len(b))
	}
	return &PublicKey{ps: ps, b: append([]byte(nil), b...)}, nil
}

// LoadPrivateKey parses a previously-serialized private key under the given
// ParameterSet.
func LoadPrivateKey(ps *ParameterSet, b []byte) (*PrivateKey, error) {
	if len(b) != ps.secretKeySize {
		return nil, errors.Wrapf(ErrInvalidKeySize, "LoadPrivateKey: want %d bytes, got %d", ps.secretKeySize, len(b))
	}
	pkEnd := ps.indcpaSecretKeySize + ps.publicKeySize
	h := hH(b[ps.indcpaSecretKeySize:pkEnd])
	if subtle.ConstantTimeCompare(h[:], b[pkEnd:pkEnd+SymSize]) != 1 {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{ps: ps, b: append([]byte(nil), b...)}, nil
}

func (sk *PrivateKey) split() (cpaSk, pk, h, z []byte) {
	ps := sk.ps
	cpaSk = sk.b[:ps.indcpaSecretKeySize]
	pk = sk.b[ps.indcpaSecretKeySize : ps.indcpaSecretKeySize+ps.publicKeySize]
	h = sk.b[ps.indcpaSecretKeySize+ps.publicKeySize : ps.indcpaSecretKeySize+ps.publicKeySize+SymSize]
	z = sk.b[ps.indcpaSecretKeySize+ps.publicKeySize+SymSize:]
	return
}

// GenerateKeyPair implements Kyber.KEM.KeyGen from a 64-byte seed, split
// into a 32-byte CPAPKE seed d and a 32-byte implicit-rejection seed z.
func GenerateKeyPair(ps *ParameterSet, seed []byte) (*PublicKey, *PrivateKey, error) {
	if len(seed) != 2*SymSize {
		return nil, nil, errors.Wrapf(ErrInvalidSeedSize, "GenerateKeyPair: want %d bytes, got %d", 2*SymSize, len(seed))
	}
	d, z := seed[:SymSize], seed[SymSize:]

	cpaPk, cpaSk, err := cpapkeKeyGen(ps, d)
	if err != nil {
		return nil, nil, err
	}

	h := hH(cpaPk)

	skBytes := make([]byte, 0, ps.secretKeySize)
	skBytes = append(skBytes, cpaSk...)
	skBytes = append(skBytes, cpaPk...)
	skBytes = append(skBytes, h[:]...)
	skBytes = append(skBytes, z...)

	pk := &PublicKey{ps: ps, b: cpaPk}
	sk := &PrivateKey{ps: ps, b: skBytes}
	return pk, sk, nil
}

// Encapsulate implements Kyber.KEM.Encaps: given a uniformly random
// SymSize-byte seed (supplied by the caller so the operation remains a
// deterministic function of its inputs) and a requested key length,
// produces a ciphertext and shared secret.
func Encapsulate(pk *PublicKey, seed []byte, keySize int) (ct, sharedSecret []byte, err error) {
	if len(seed) != SymSize {
		return nil, nil, errors.Wrapf(ErrInvalidSeedSize, "Encapsulate: want %d bytes, got %d", SymSize, len(seed))
	}

	m := hH(seed)

	hpk := hH(pk.b)
	kBar, r := hG(append(append([]byte(nil), m[:]...), hpk[:]...))

	ct, err = cpapkeEncrypt(pk.ps, pk.b, m[:], r[:])
	if err != nil {
		return nil, nil, err
	}

	hc := hH(ct)
	sharedSecret = kdf(append(append([]byte(nil), kBar[:]...), hc[:]...), keySize)
	return ct, sharedSecret, nil
}

// Decapsulate implements Kyber.KEM.Decaps. It returns an error only when ct
// is not CipherTextSize bytes long; for every ciphertext of that length it
// returns keySize bytes, relying on implicit rejection (keyed by the private key's
// z seed) rather than an error to mask ciphertext tampering, which is
// essential to the IND-CCA2 security proof.
func Decapsulate(sk *PrivateKey, ct []byte, keySize int) ([]byte, error) {
	ps := sk.ps
	if len(ct) != ps.cipherTextSize {
		return nil, errors.Wrapf(ErrInvalidCipherTextSize, "Decapsulate: want %d bytes, got %d", ps.cipherTextSize, len(ct))
	}

	cpaSk, pk, h, z := sk.split()

	mPrime, err := cpapkeDecrypt(ps, cpaSk, ct)
	if err != nil {
		return nil, err
	}

	kBarPrime, rPrime := hG(append(append([]byte(nil), mPrime...), h...))

	ctPrime, err := cpapkeEncrypt(ps, pk, mPrime, rPrime[:])
	if err != nil {
		return nil, err
	}

	hc := hH(ct)

	// Constant-time ciphertext comparison: combine the result across all
	// bytes before branching so that the comparison's timing does not leak
	// which byte, if any, first differed.
	match := subtle.ConstantTimeCompare(ct, ctPrime) == 1

	var preimage []byte
	if match {
		preimage = append(append([]byte(nil), kBarPrime[:]...), hc[:]...)
	} else {
		preimage = append(append([]byte(nil), z...), hc[:]...)
	}
	return kdf(preimage, keySize), nil
}
