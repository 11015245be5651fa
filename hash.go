// hash.go - Hash adapter: G, H, XOF, PRF/KDF.
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

// hG is SHA3-512 split into two SymSize-byte halves (rho, sigma), used by
// CPAPKE.KeyGen and by the KEM's FO-transform derivation step.
func hG(in []byte) (rho, sigma [SymSize]byte) {
	sum := sha3.Sum512(in)
	copy(rho[:], sum[:SymSize])
	copy(sigma[:], sum[SymSize:])
	return rho, sigma
}

// hH is SHA3-256, used to bind a public key into the KEM's FO transform and
// to derive the ciphertext tag folded into KDF.
func hH(in []byte) [SymSize]byte {
	return sha3.Sum256(in)
}

// xofSqueeze primes SHAKE128 with seed‖a‖b and squeezes n bytes. Kyber calls
// this once per matrix entry with a conservative n that makes rejection
// sampling exhaustion statistically negligible (see parse in sample.go).
func xofSqueeze(seed []byte, a, b byte, n int) []byte {
	xof := sha3.NewShake128()
	xof.Write(seed)
	xof.Write([]byte{a, b})
	out := make([]byte, n)
	xof.Read(out)
	return out
}

// xofExtend re-primes SHAKE128 with seed‖a‖b and returns the first
// prior+extra bytes of its output, i.e. the prior bytes already squeezed
// followed by extra new ones; used only on the rare path where parse runs
// out of candidate bytes before producing 256 coefficients.
func xofExtend(seed []byte, a, b byte, prior, extra int) []byte {
	xof := sha3.NewShake128()
	xof.Write(seed)
	xof.Write([]byte{a, b})
	out := make([]byte, prior+extra)
	xof.Read(out)
	return out
}

// prf is SHAKE256 keyed by a SymSize-byte seed and a single nonce byte, used
// throughout CPAPKE.KeyGen/Enc to derive the CBD input streams. Per the
// Kyber specification, the concatenation of key and nonce must be exactly
// 33 bytes; anything else is a programmer error.
func prf(key []byte, nonce byte, outLen int) ([]byte, error) {
	if len(key) != SymSize {
		return nil, errors.Wrapf(ErrInvalidKeySize, "prf: key must be %d bytes, got %d", SymSize, len(key))
	}
	xof := sha3.NewShake256()
	xof.Write(key)
	xof.Write([]byte{nonce})
	out := make([]byte, outLen)
	xof.Read(out)
	return out, nil
}

// kdf is SHAKE256 producing a caller-chosen number of bytes, used by the KEM
// to derive the final shared secret from Kbar‖H(c).
func kdf(in []byte, keySize int) []byte {
	xof := sha3.NewShake256()
	xof.Write(in)
	out := make([]byte, keySize)
	xof.Read(out)
	return out
}
