// api.go - Public programmatic surface for CPAPKE and KEM, per parameter
// set.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// CPAPKEKeyGen deterministically derives a CPAPKE keypair from a 32-byte
// seed. The returned public and private keys are raw, unwrapped byte
// strings (no KEM framing).
func CPAPKEKeyGen(ps *ParameterSet, seed []byte) (pk, sk []byte, err error) {
	return cpapkeKeyGen(ps, seed)
}

// CPAPKEEncrypt deterministically encrypts a 32-byte message under a raw
// CPAPKE public key and 32 bytes of coins.
func CPAPKEEncrypt(ps *ParameterSet, pk, msg, coin []byte) ([]byte, error) {
	return cpapkeEncrypt(ps, pk, msg, coin)
}

// CPAPKEDecrypt recovers the 32-byte message from a CPAPKE ciphertext
// under a raw CPAPKE private key.
func CPAPKEDecrypt(ps *ParameterSet, sk, ct []byte) ([]byte, error) {
	return cpapkeDecrypt(ps, sk, ct)
}
