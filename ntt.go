// ntt.go - Number-Theoretic Transform over Z_3329, n=256.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// zeta is a primitive 256th root of unity mod kyberQ. Since q-1 = 3328 =
// 13*256, Z_q has 256th but no 512th roots of unity, so Kyber's NTT is
// negacyclic and operates on 128 degree-1 polynomials rather than 256
// scalars.
const zeta = 17

// zetaPowers[i] = zeta^i mod kyberQ, for i in [0, 256). Indexing is by
// br7(zetaIndex) at each butterfly layer, per the Kyber specification;
// entries beyond index 127 are reached by the inverse twiddle
// (256 - br7(zetaIndex)) mod 256 and by multiplyNTT's zeta^{2*br7(i)+1}.
var zetaPowers [256]uint16

func init() {
	zetaPowers[0] = 1
	for i := 1; i < 256; i++ {
		zetaPowers[i] = uint16((uint32(zetaPowers[i-1]) * zeta) % kyberQ)
	}
}

// br7 reverses the low 7 bits of i.
func br7(i uint8) uint8 {
	i &= 0x7f
	var r uint8
	for b := 0; b < 7; b++ {
		r = (r << 1) | (i & 1)
		i >>= 1
	}
	return r
}

// ntt computes the forward negacyclic NTT of p in place. Input is assumed
// to be in normal order; output is 128 pairs of coefficients, pair i being
// the image of p in Z_q[X]/(X^2 - zeta^{2*br7(i)+1}).
func (p *poly) ntt() {
	nttLayer(p.coeffs[:], 1, 128)
}

func nttLayer(c []fq, zetaIndex uint8, length int) {
	if length < 2 {
		return
	}

	z := fq(zetaPowers[br7(zetaIndex)])
	for i := 0; i < length; i++ {
		t := c[length+i].mul(z)
		c[length+i] = c[i].sub(t)
		c[i] = c[i].add(t)
	}

	nttLayer(c[:length], zetaIndex*2, length/2)
	nttLayer(c[length:], zetaIndex*2+1, length/2)
}

// invTwo is the multiplicative inverse of 2 mod kyberQ. Absorbing it into
// every one of the 7 inverse-NTT layers yields the correct overall scaling
// of 2^-7 without a separate final normalization pass.
const invTwo = fq((kyberQ + 1) / 2)

// invntt computes the inverse negacyclic NTT of p in place. Input is
// assumed to be in the 128-pair NTT-domain representation produced by ntt;
// output is in normal order. invntt(ntt(f)) == f exactly for all f.
func (p *poly) invntt() {
	invNTTLayer(p.coeffs[:], 1, 128)
}

func invNTTLayer(c []fq, zetaIndex uint8, length int) {
	if length != 2 {
		invNTTLayer(c[:length], zetaIndex*2, length/2)
		invNTTLayer(c[length:], zetaIndex*2+1, length/2)
	}

	zIdxInv := uint8((256 - int(br7(zetaIndex))) % 256)
	zInv := fq(zetaPowers[zIdxInv])

	for i := 0; i < length; i++ {
		u := c[i]
		v := c[length+i]
		c[i] = invTwo.mul(u.add(v))
		c[length+i] = invTwo.mul(zInv.mul(u.sub(v)))
	}
}

// multiplyNTT performs NTT-domain (pointwise, basecase) multiplication of
// two polynomials, both assumed to be in the 128-pair NTT-domain
// representation. For each pair i, with zeta' = zeta^{2*br7(i)+1}:
//
//	h_2i   = a_2i*b_2i + a_2i+1*b_2i+1*zeta'
//	h_2i+1 = a_2i*b_2i+1 + a_2i+1*b_2i
func (p *poly) multiplyNTT(a, b *poly) {
	for i := 0; i < 128; i++ {
		a0, a1 := a.coeffs[2*i], a.coeffs[2*i+1]
		b0, b1 := b.coeffs[2*i], b.coeffs[2*i+1]

		zp := fq(zetaPowers[(2*int(br7(uint8(i)))+1)%256])

		p.coeffs[2*i] = a0.mul(b0).add(a1.mul(b1).mul(zp))
		p.coeffs[2*i+1] = a0.mul(b1).add(a1.mul(b0))
	}
}
