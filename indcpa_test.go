// indcpa_test.go - Kyber.CPAPKE concrete scenario and property tests.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCPAPKEKeyGenZeroSeed is scenario S3: Kyber512 keygen from a 32-byte
// zero seed produces a pk of 800 bytes and sk of 768 bytes, with pk ending
// in rho from the S1 scenario.
func TestCPAPKEKeyGenZeroSeed(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	pk, sk, err := CPAPKEKeyGen(Kyber512, seed)
	require.NoError(err)
	require.Len(pk, 800)
	require.Len(sk, 768)

	rho, _ := hG(seed)
	require.Equal(hex.EncodeToString(rho[:]), hex.EncodeToString(pk[len(pk)-SymSize:]), "pk must end with rho")
}

// TestCPAPKERoundTrip is scenario S4: Dec(Enc("Telecom PARIS" zero-padded))
// recovers the original message under a zero seed and zero coins.
func TestCPAPKERoundTrip(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	pk, sk, err := CPAPKEKeyGen(Kyber512, seed)
	require.NoError(err)

	msg := make([]byte, SymSize)
	copy(msg, []byte("Telecom PARIS"))

	coin := make([]byte, SymSize)

	ct, err := CPAPKEEncrypt(Kyber512, pk, msg, coin)
	require.NoError(err)

	got, err := CPAPKEDecrypt(Kyber512, sk, ct)
	require.NoError(err)
	require.True(bytes.Equal(msg, got), "decrypted message mismatch")
}

func TestCPAPKERoundTripRandom(t *testing.T) {
	for _, ps := range []*ParameterSet{Kyber512, Kyber768, Kyber1024} {
		ps := ps
		t.Run(ps.Name(), func(t *testing.T) {
			require := require.New(t)
			rng := rand.New(rand.NewSource(42))

			for trial := 0; trial < 8; trial++ {
				seed := randBytes(rng, SymSize)
				pk, sk, err := CPAPKEKeyGen(ps, seed)
				require.NoError(err)

				msg := randBytes(rng, SymSize)
				coin := randBytes(rng, SymSize)

				ct, err := CPAPKEEncrypt(ps, pk, msg, coin)
				require.NoError(err)
				require.Len(ct, ps.CipherTextSize())

				got, err := CPAPKEDecrypt(ps, sk, ct)
				require.NoError(err)
				require.Equal(msg, got, "trial %d", trial)
			}
		})
	}
}

func randBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}
