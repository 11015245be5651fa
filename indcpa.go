// indcpa.go - Kyber.CPAPKE: IND-CPA-secure public-key encryption.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "github.com/pkg/errors"

// cpapkeKeyGen implements Kyber.CPAPKE.KeyGen: deterministic key generation
// from a SymSize-byte seed d. Returns the packed public key
// (Encode_12(t̂)‖ρ) and packed private key (Encode_12(ŝ)).
func cpapkeKeyGen(ps *ParameterSet, d []byte) (pk, sk []byte, err error) {
	if len(d) != SymSize {
		return nil, nil, errors.Wrapf(ErrInvalidSeedSize, "cpapkeKeyGen: want %d bytes, got %d", SymSize, len(d))
	}

	rho, sigma := hG(d)

	aHat := genMatrix(rho[:], ps.k, false)

	var n byte
	s, err := sampleNoiseVec(sigma[:], &n, ps.eta1, ps.k)
	if err != nil {
		return nil, nil, err
	}
	e, err := sampleNoiseVec(sigma[:], &n, ps.eta1, ps.k)
	if err != nil {
		return nil, nil, err
	}

	s.ntt()
	e.ntt()

	tHat := aHat.mulVecNTT(&s)
	tHat.add(&tHat, &e)

	pk = append(tHat.encode12(), rho[:]...)
	sk = s.encode12()
	return pk, sk, nil
}

// cpapkeEncrypt implements Kyber.CPAPKE.Enc: deterministic encryption of a
// SymSize-byte message under coins r, both SymSize bytes.
func cpapkeEncrypt(ps *ParameterSet, pk, m, r []byte) ([]byte, error) {
	if len(pk) != ps.indcpaPublicKeySize {
		return nil, errors.Wrapf(ErrInvalidKeySize, "cpapkeEncrypt: want pk of %d bytes, got %d", ps.indcpaPublicKeySize, len(pk))
	}
	if len(m) != SymSize {
		return nil, errors.Wrapf(ErrInvalidMessageSize, "cpapkeEncrypt: want %d-byte message, got %d", SymSize, len(m))
	}
	if len(r) != SymSize {
		return nil, errors.Wrapf(ErrInvalidMessageSize, "cpapkeEncrypt: want %d-byte coin, got %d", SymSize, len(r))
	}

	tHat := decode12Vec(pk[:ps.polyVecSize], ps.k)
	rho := pk[ps.polyVecSize:]

	aHat := genMatrix(rho, ps.k, true)

	var n byte
	rVec, err := sampleNoiseVec(r, &n, ps.eta1, ps.k)
	if err != nil {
		return nil, err
	}
	e1, err := sampleNoiseVec(r, &n, ps.eta2, ps.k)
	if err != nil {
		return nil, err
	}
	e2p, err := sampleNoisePoly(r, n, ps.eta2)
	if err != nil {
		return nil, err
	}

	rVec.ntt()

	u := aHat.mulVecNTT(&rVec)
	u.invntt()
	u.add(&u, &e1)

	vPoly := dotNTT(&tHat, &rVec)
	vPoly.invntt()

	var msgPoly poly
	msgPoly.fromMsg(m)

	var v poly
	v.add(&vPoly, &e2p)
	v.add(&v, &msgPoly)

	c1 := u.compress(ps.du)
	var vc poly
	for i := 0; i < kyberN; i++ {
		vc.coeffs[i] = fq(compressD(v.coeffs[i], ps.dv))
	}
	c2 := encodeL(&vc, ps.dv)

	return append(c1, c2...), nil
}

// cpapkeDecrypt implements Kyber.CPAPKE.Dec, recovering the SymSize-byte
// message encrypted into c under the private key sk.
func cpapkeDecrypt(ps *ParameterSet, sk, c []byte) ([]byte, error) {
	if len(sk) != ps.indcpaSecretKeySize {
		return nil, errors.Wrapf(ErrInvalidKeySize, "cpapkeDecrypt: want sk of %d bytes, got %d", ps.indcpaSecretKeySize, len(sk))
	}
	if len(c) != ps.indcpaCipherTextSize {
		return nil, errors.Wrapf(ErrInvalidCipherTextSize, "cpapkeDecrypt: want ct of %d bytes, got %d", ps.indcpaCipherTextSize, len(c))
	}

	uSize := ps.k * ps.du * kyberN / 8
	c1, c2 := c[:uSize], c[uSize:]

	u := decompressVec(c1, ps.du, ps.k)

	packedV := decodeL(c2, ps.dv)
	var v poly
	for i := 0; i < kyberN; i++ {
		v.coeffs[i] = decompressD(uint16(packedV.coeffs[i]), ps.dv)
	}

	sHat := decode12Vec(sk, ps.k)

	u.ntt()
	sv := dotNTT(&sHat, &u)
	sv.invntt()

	var diff poly
	diff.sub(&v, &sv)

	msg := make([]byte, SymSize)
	diff.toMsg(msg)
	return msg, nil
}
