// matrix.go - Deterministic k×k matrix of ring elements, generated from seed.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// matrix is a k×k grid of ring elements in row-major order.
type matrix struct {
	rows []polyVec
}

// genMatrix deterministically generates Â (or its transpose) from a
// 32-byte seed via rejection sampling on SHAKE128 output. KeyGen calls this
// with transposed=false, priming the XOF with seed‖j‖i for entry [i][j].
// Encrypt calls this with transposed=true, priming with seed‖i‖j instead,
// which directly yields Âᵀ without ever materializing and transposing Â
// itself - matching the Kyber reference convention.
func genMatrix(seed []byte, k int, transposed bool) matrix {
	m := matrix{rows: make([]polyVec, k)}
	for i := 0; i < k; i++ {
		m.rows[i] = polyVec{polys: make([]poly, k)}
		for j := 0; j < k; j++ {
			var a, b byte
			if transposed {
				a, b = byte(i), byte(j)
			} else {
				a, b = byte(j), byte(i)
			}
			m.rows[i].polys[j] = parse(seed, a, b)
		}
	}
	return m
}

// mulVecNTT computes Â·v̂ (NTT-domain), returning a k-dimensional vector
// whose i-th entry is the dot product of row i with v̂.
func (m *matrix) mulVecNTT(v *polyVec) polyVec {
	out := polyVec{polys: make([]poly, len(m.rows))}
	for i := range m.rows {
		out.polys[i] = dotNTT(&m.rows[i], v)
	}
	return out
}
