// polyvec.go - Vector of Kyber polynomials, R_q^k.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// polyVec is a k-dimensional vector of ring elements, k in {2,3,4}.
type polyVec struct {
	polys []poly
}

func (v *polyVec) add(a, b *polyVec) {
	for i := range v.polys {
		v.polys[i].add(&a.polys[i], &b.polys[i])
	}
}

func (v *polyVec) ntt() {
	for i := range v.polys {
		v.polys[i].ntt()
	}
}

func (v *polyVec) invntt() {
	for i := range v.polys {
		v.polys[i].invntt()
	}
}

// dotNTT computes the NTT-domain dot product of two vectors, accumulating
// basecase products coefficient-pair-wise into a single polynomial.
func dotNTT(a, b *polyVec) poly {
	var acc, tmp poly
	for i := range a.polys {
		tmp.multiplyNTT(&a.polys[i], &b.polys[i])
		acc.add(&acc, &tmp)
	}
	return acc
}

// encode12 serializes every polynomial of v at full (12-bit) precision.
func (v *polyVec) encode12() []byte {
	out := make([]byte, 0, len(v.polys)*polySize)
	for i := range v.polys {
		out = append(out, encodeL(&v.polys[i], 12)...)
	}
	return out
}

// decode12Vec is the inverse of encode12.
func decode12Vec(b []byte, k int) polyVec {
	v := polyVec{polys: make([]poly, k)}
	for i := 0; i < k; i++ {
		v.polys[i] = decodeL(b[i*polySize:(i+1)*polySize], 12)
	}
	return v
}

// compress serializes Compress_du(v) for every polynomial in v.
func (v *polyVec) compress(du int) []byte {
	chunk := du * kyberN / 8
	out := make([]byte, 0, len(v.polys)*chunk)
	for i := range v.polys {
		var c poly
		for j := 0; j < kyberN; j++ {
			c.coeffs[j] = fq(compressD(v.polys[i].coeffs[j], du))
		}
		out = append(out, encodeL(&c, du)...)
	}
	return out
}

// decompressVec is the inverse of polyVec.compress.
func decompressVec(b []byte, du, k int) polyVec {
	chunk := du * kyberN / 8
	v := polyVec{polys: make([]poly, k)}
	for i := 0; i < k; i++ {
		packed := decodeL(b[i*chunk:(i+1)*chunk], du)
		for j := 0; j < kyberN; j++ {
			v.polys[i].coeffs[j] = decompressD(uint16(packed.coeffs[j]), du)
		}
	}
	return v
}
