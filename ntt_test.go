// ntt_test.go - Number-Theoretic Transform tests.
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

// TestNTTSelfTest exercises the concrete scenario: a polynomial with
// coefficients 1,2,3 at degrees 0-2, 9 at degree 128, 10 at degree 210, has
// forward-NTT pair 0 equal to (1298, 2), and the inverse NTT recovers the
// original polynomial exactly.
func TestNTTSelfTest(t *testing.T) {
	require := require.New(t)

	var p poly
	p.coeffs[0] = 1
	p.coeffs[1] = 2
	p.coeffs[2] = 3
	p.coeffs[128] = 9
	p.coeffs[210] = 10

	orig := p

	p.ntt()
	require.Equal(fq(1298), p.coeffs[0], "forward NTT pair 0, first entry")
	require.Equal(fq(2), p.coeffs[1], "forward NTT pair 0, second entry")

	p.invntt()
	require.Equal(orig, p, "invntt(ntt(f)) must equal f exactly")
}

func TestNTTZero(t *testing.T) {
	var p poly
	p.ntt()
	require.True(t, p.isZero(), "NTT of the zero polynomial must be zero")
}

func TestNTTRoundTripRandom(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 64; trial++ {
		var p poly
		for i := range p.coeffs {
			p.coeffs[i] = fq(rng.Intn(kyberQ))
		}
		orig := p
		p.ntt()
		p.invntt()
		require.Equal(orig, p, "round-trip mismatch on trial %d", trial)
	}
}

// schoolbookMul multiplies two polynomials mod X^256+1 the naive way, used
// only to cross-check NTT-domain multiplication.
func schoolbookMul(a, b *poly) poly {
	var wide [2 * kyberN]fq
	for i := 0; i < kyberN; i++ {
		for j := 0; j < kyberN; j++ {
			wide[i+j] = wide[i+j].add(a.coeffs[i].mul(b.coeffs[j]))
		}
	}
	var out poly
	for i := 0; i < kyberN; i++ {
		out.coeffs[i] = wide[i].sub(wide[i+kyberN])
	}
	return out
}

func TestNTTMultiplicationMatchesSchoolbook(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 16; trial++ {
		var a, b poly
		for i := range a.coeffs {
			a.coeffs[i] = fq(rng.Intn(kyberQ))
			b.coeffs[i] = fq(rng.Intn(kyberQ))
		}

		want := schoolbookMul(&a, &b)

		aHat, bHat := a, b
		aHat.ntt()
		bHat.ntt()

		var hHat poly
		hHat.multiplyNTT(&aHat, &bHat)
		hHat.invntt()

		require.Equal(want, hHat, "NTT multiplication mismatch on trial %d", trial)
	}
}
