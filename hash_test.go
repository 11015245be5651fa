// hash_test.go - Hash adapter concrete vector tests.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGSplitZeroSeed is scenario S1: G(32 zero bytes) splits into the given
// rho and sigma.
func TestGSplitZeroSeed(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymSize)
	rho, sigma := hG(seed)

	require.Equal("ad56c35cab5063b9e7ea568314ec81c40ba577aae630de902004009e88f18da5", hex.EncodeToString(rho[:]))
	require.Equal("7bbdfdaaa0fc189c66c8d853248b6b118844d53f7d0ba11de0f3bfaf4cdd9b3f", hex.EncodeToString(sigma[:]))
}

// TestPRFDeterminism is scenario S2: PRF(0x41*32, 0x42, 10) matches the
// given output exactly.
func TestPRFDeterminism(t *testing.T) {
	require := require.New(t)

	key := make([]byte, SymSize)
	for i := range key {
		key[i] = 0x41
	}

	out, err := prf(key, 0x42, 10)
	require.NoError(err)
	require.Equal("1aef8fd492d01f8e69a3", hex.EncodeToString(out))
}

func TestPRFRejectsWrongKeyLength(t *testing.T) {
	_, err := prf(make([]byte, SymSize-1), 0x00, 10)
	require.ErrorIs(t, err, ErrInvalidKeySize)
}
