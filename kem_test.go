// kem_test.go - Kyber.KEM property and concrete scenario tests.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var allParams = []*ParameterSet{Kyber512, Kyber768, Kyber1024}

func TestKEMRoundTrip(t *testing.T) {
	for _, ps := range allParams {
		ps := ps
		t.Run(ps.Name(), func(t *testing.T) {
			require := require.New(t)
			rng := rand.New(rand.NewSource(7))

			for trial := 0; trial < 8; trial++ {
				kgSeed := randBytes(rng, 2*SymSize)
				pk, sk, err := GenerateKeyPair(ps, kgSeed)
				require.NoError(err)
				require.Len(pk.Bytes(), ps.PublicKeySize())
				require.Len(sk.Bytes(), ps.PrivateKeySize())

				encSeed := randBytes(rng, SymSize)
				ct, k1, err := Encapsulate(pk, encSeed, 32)
				require.NoError(err)
				require.Len(ct, ps.CipherTextSize())
				require.Len(k1, 32)

				k2, err := Decapsulate(sk, ct, 32)
				require.NoError(err)
				require.Equal(k1, k2, "trial %d: decapsulated key mismatch", trial)
			}
		})
	}
}

func TestKEMKeySerialization(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, 2*SymSize)
	pk, sk, err := GenerateKeyPair(Kyber768, seed)
	require.NoError(err)

	pk2, err := LoadPublicKey(Kyber768, pk.Bytes())
	require.NoError(err)
	require.Equal(pk.Bytes(), pk2.Bytes())

	sk2, err := LoadPrivateKey(Kyber768, sk.Bytes())
	require.NoError(err)
	require.Equal(sk.Bytes(), sk2.Bytes())
}

// TestKEMImplicitRejection is scenario S6: flipping one byte of a valid
// ciphertext produces a key unrelated to the original, but Decaps remains
// deterministic for the tampered ciphertext (implicit rejection keyed by
// z, not randomness).
func TestKEMImplicitRejection(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, 2*SymSize)
	pk, sk, err := GenerateKeyPair(Kyber512, seed)
	require.NoError(err)

	encSeed := make([]byte, SymSize)
	encSeed[0] = 0x42
	ct, legitKey, err := Encapsulate(pk, encSeed, 32)
	require.NoError(err)

	tampered := append([]byte(nil), ct...)
	tampered[0] ^= 0x01

	rejectedKey1, err := Decapsulate(sk, tampered, 32)
	require.NoError(err)
	require.NotEqual(legitKey, rejectedKey1, "tampered ciphertext should not decapsulate to the legitimate key")

	rejectedKey2, err := Decapsulate(sk, tampered, 32)
	require.NoError(err)
	require.Equal(rejectedKey1, rejectedKey2, "implicit rejection must be deterministic for the same tampered ciphertext")
}

func TestKEMDecapsulateRejectsWrongCipherTextLength(t *testing.T) {
	seed := make([]byte, 2*SymSize)
	_, sk, err := GenerateKeyPair(Kyber512, seed)
	require.NoError(t, err)

	_, err = Decapsulate(sk, make([]byte, 1), 32)
	require.ErrorIs(t, err, ErrInvalidCipherTextSize)
}
