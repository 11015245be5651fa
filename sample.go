// sample.go - XOF-driven rejection sampling and centered binomial sampling.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// xofDefaultStreamSize is the number of bytes initially requested from the
// XOF per matrix entry. It is large enough (3 candidate bytes per 2
// coefficients, 256 coefficients needed) that exhaustion before producing
// all 256 coefficients is statistically negligible; parse extends the
// stream rather than biasing the output on the rare occasion it happens.
const xofDefaultStreamSize = 672

// parse implements the Kyber uniform sampler: given bytes squeezed from
// SHAKE128(seed‖a‖b), produce 256 coefficients uniform in [0, q) by
// rejecting 12-bit candidates that fall outside the field, 3 stream bytes
// producing up to 2 coefficients at a time.
func parse(seed []byte, a, b byte) poly {
	buf := xofSqueeze(seed, a, b, xofDefaultStreamSize)

	var p poly
	i, j := 0, 0
	for j < kyberN {
		for i+3 > len(buf) {
			buf = xofExtend(seed, a, b, len(buf), xofDefaultStreamSize)
		}

		b0 := int(buf[i])
		b1 := int(buf[i+1])
		b2 := int(buf[i+2])

		d1 := b0 + kyberN*(b1%16)
		d2 := b1/16 + 16*b2

		if d1 < kyberQ {
			p.coeffs[j] = fq(d1)
			j++
		}
		if d2 < kyberQ && j < kyberN {
			p.coeffs[j] = fq(d2)
			j++
		}
		i += 3
	}
	return p
}

// cbdEta implements CBD_eta: given a bit stream of length 512*eta (i.e.
// 64*eta bytes) derived from PRF(seed, nonce), compute 256 coefficients
// each distributed as a centered binomial with support [-eta, eta].
func cbdEta(buf []byte, eta int) poly {
	bits := bytesToBits(buf)

	var p poly
	for i := 0; i < kyberN; i++ {
		var a, b int
		base := 2 * i * eta
		for k := 0; k < eta; k++ {
			a += int(bits[base+k])
			b += int(bits[base+eta+k])
		}
		p.coeffs[i] = newFq(a - b)
	}
	return p
}

// sampleNoisePoly derives one CBD_eta-distributed polynomial from
// PRF(seed, nonce).
func sampleNoisePoly(seed []byte, nonce byte, eta int) (poly, error) {
	buf, err := prf(seed, nonce, 64*eta)
	if err != nil {
		return poly{}, err
	}
	return cbdEta(buf, eta), nil
}

// sampleNoiseVec derives a k-dimensional vector of CBD_eta-distributed
// polynomials from PRF(seed, n), PRF(seed, n+1), ..., consuming and
// advancing the shared nonce counter n as the Kyber specification requires.
func sampleNoiseVec(seed []byte, n *byte, eta, k int) (polyVec, error) {
	v := polyVec{polys: make([]poly, k)}
	for i := 0; i < k; i++ {
		p, err := sampleNoisePoly(seed, *n, eta)
		if err != nil {
			return polyVec{}, err
		}
		v.polys[i] = p
		*n++
	}
	return v, nil
}
