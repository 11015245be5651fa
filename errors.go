// errors.go - Kyber error values.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "errors"

var (
	// ErrInvalidSeedSize is the error returned when a seed is not the size
	// mandated by the operation consuming it.
	ErrInvalidSeedSize = errors.New("kyber: invalid seed size")

	// ErrInvalidMessageSize is the error returned when a plaintext message
	// or coin is not exactly SymSize bytes, or when a key exchange
	// handshake message has the wrong size.
	ErrInvalidMessageSize = errors.New("kyber: invalid message size")

	// ErrInvalidKeySize is the error returned when a byte serialized key is
	// an invalid size.
	ErrInvalidKeySize = errors.New("kyber: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte serialized
	// ciphertext is an invalid size.
	ErrInvalidCipherTextSize = errors.New("kyber: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed (the embedded hash of the public key does
	// not match).
	ErrInvalidPrivateKey = errors.New("kyber: invalid private key")

	// ErrParameterSetMismatch is the error returned when two keys or states
	// constructed under different ParameterSets are combined.
	ErrParameterSetMismatch = errors.New("kyber: parameter set mismatch")
)
