// poly.go - Kyber polynomial, R_q = Z_q[X]/(X^256 + 1).
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// poly is an element of R_q: coeffs[0] + X*coeffs[1] + ... +
// X^255*coeffs[255]. A poly can hold either a normal-domain or an
// NTT-domain representation; the domain is tracked by the caller and is
// documented on every method that cares (ntt, invntt, multiplyNTT).
type poly struct {
	coeffs [kyberN]fq
}

func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i].add(b.coeffs[i])
	}
}

func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i].sub(b.coeffs[i])
	}
}

func (p *poly) isZero() bool {
	for _, c := range p.coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

func (p *poly) equal(o *poly) bool {
	for i := range p.coeffs {
		if p.coeffs[i] != o.coeffs[i] {
			return false
		}
	}
	return true
}

// fromMsg converts a SymSize-byte message to its degree-255 polynomial
// representation: each bit, MSB of each byte first, selects between 0 and
// Decompress_1(1) = ceil(q/2) for the corresponding coefficient.
func (p *poly) fromMsg(msg []byte) {
	bits := bytesToBits(msg)
	for i := 0; i < kyberN; i++ {
		p.coeffs[i] = decompressD(uint16(bits[i]), 1)
	}
}

// toMsg is the approximate inverse of fromMsg, via Compress_1.
func (p *poly) toMsg(msg []byte) {
	var bits [kyberN]byte
	for i := 0; i < kyberN; i++ {
		bits[i] = byte(compressD(p.coeffs[i], 1))
	}
	bitsToBytes(bits[:], msg)
}
