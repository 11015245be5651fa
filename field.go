// field.go - Z_q field element, q = 3329.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// fq is an element of Z_q, always held reduced to the canonical range
// [0, kyberQ). Kyber's q=3329 comfortably fits arithmetic in machine words
// without the Montgomery/Barrett tricks needed for larger moduli, so
// reduction here is the plain schoolbook kind.
type fq uint16

// newFq constructs an fq from a signed integer using Euclidean remainder,
// so that e.g. -1 maps to kyberQ-1 rather than a negative residue.
func newFq(x int) fq {
	m := x % kyberQ
	if m < 0 {
		m += kyberQ
	}
	return fq(m)
}

func (a fq) add(b fq) fq {
	return fq((uint32(a) + uint32(b)) % kyberQ)
}

func (a fq) sub(b fq) fq {
	return fq((uint32(a) + kyberQ - uint32(b)) % kyberQ)
}

func (a fq) mul(b fq) fq {
	return fq((uint32(a) * uint32(b)) % kyberQ)
}

func (a fq) neg() fq {
	if a == 0 {
		return 0
	}
	return kyberQ - a
}
