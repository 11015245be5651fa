// bits_test.go - Bit/byte packing and compress/decompress tests.
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

func TestBytesToBitsMSBFirst(t *testing.T) {
	require := require.New(t)

	bits := bytesToBits([]byte{0x02, 0x03})
	require.Equal([]byte{0, 0, 0, 0, 0, 0, 1, 0}, bits[:8], "byte 0x02 should expand MSB-first")
	require.Equal([]byte{0, 0, 0, 0, 0, 0, 1, 1}, bits[8:], "byte 0x03 should expand MSB-first")

	out := make([]byte, 2)
	bitsToBytes(bits, out)
	require.Equal([]byte{0x02, 0x03}, out)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(3))

	for _, l := range []int{1, 4, 5, 10, 11, 12} {
		var p poly
		mask := (1 << uint(l)) - 1
		for i := range p.coeffs {
			p.coeffs[i] = fq(rng.Intn(min(mask+1, kyberQ)))
		}

		enc := encodeL(&p, l)
		require.Len(enc, 32*l)

		dec := decodeL(enc, l)
		require.Equal(p, dec, "decodeL(encodeL(p)) mismatch for l=%d", l)
	}
}

func TestCompressDecompressBound(t *testing.T) {
	require := require.New(t)

	for _, d := range []int{1, 4, 5, 10, 11} {
		bound := (kyberQ + (1 << uint(d+1)) - 1) / (1 << uint(d+1))
		for x := 0; x < kyberQ; x += 7 {
			c := compressD(fq(x), d)
			require.Less(int(c), 1<<uint(d))

			y := decompressD(c, d)
			diff := int(y) - x
			if diff < 0 {
				diff = -diff
			}
			wrapped := kyberQ - diff
			if wrapped < diff {
				diff = wrapped
			}
			require.LessOrEqual(diff, bound, "Decompress(Compress(%d)) too far for d=%d", x, d)
		}
	}
}

func TestCompress1MessageBit(t *testing.T) {
	require := require.New(t)

	require.EqualValues(0, compressD(decompressD(0, 1), 1))
	require.EqualValues(1, compressD(decompressD(1, 1), 1))
	require.Equal(fq((kyberQ+1)/2), decompressD(1, 1))
}
