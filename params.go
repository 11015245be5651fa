// params.go - Kyber parameterization.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size in bytes of the shared secret, seeds, coins, and
	// the various hash outputs used throughout Kyber.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329

	// polySize is the number of bytes produced by Encode_12 of a single
	// polynomial (the precision used for public/private keys).
	polySize = 12 * kyberN / 8
)

var (
	// Kyber512 is the Kyber-512 parameter set, targeting security roughly
	// equivalent to AES-128.
	Kyber512 = newParameterSet("Kyber-512", 2, 3, 2, 10, 4)

	// Kyber768 is the Kyber-768 parameter set, targeting security roughly
	// equivalent to AES-192.
	Kyber768 = newParameterSet("Kyber-768", 3, 2, 2, 10, 4)

	// Kyber1024 is the Kyber-1024 parameter set, targeting security roughly
	// equivalent to AES-256.
	Kyber1024 = newParameterSet("Kyber-1024", 4, 2, 2, 11, 5)
)

// ParameterSet is an immutable Kyber parameter set. A ParameterSet fully
// determines the behavior of every operation in this package; there is no
// other source of configuration.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	polyVecSize           int
	polyVecCompressedSize int
	polyCompressedSize    int

	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaCipherTextSize int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	p := &ParameterSet{
		name: name,
		k:    k,
		eta1: eta1,
		eta2: eta2,
		du:   du,
		dv:   dv,
	}

	p.polyVecSize = k * polySize
	p.polyVecCompressedSize = k * du * kyberN / 8
	p.polyCompressedSize = dv * kyberN / 8

	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaCipherTextSize = p.polyVecCompressedSize + p.polyCompressedSize

	p.publicKeySize = p.indcpaPublicKeySize
	// KEM private key appends the public key, H(pk), and the implicit
	// rejection seed z to the CPAPKE private key.
	p.secretKeySize = p.indcpaSecretKeySize + p.publicKeySize + 2*SymSize
	p.cipherTextSize = p.indcpaCipherTextSize

	return p
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank (the dimension of vectors/matrices of
// polynomials) used by this ParameterSet.
func (p *ParameterSet) K() int {
	return p.k
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a KEM private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a KEM/CPAPKE ciphertext in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

// ParameterSetByName returns one of Kyber512, Kyber768 or Kyber1024 given
// its numeric security level (512, 768 or 1024), or nil if v is not one of
// those three values.
func ParameterSetByName(v int) *ParameterSet {
	switch v {
	case 512:
		return Kyber512
	case 768:
		return Kyber768
	case 1024:
		return Kyber1024
	default:
		return nil
	}
}
