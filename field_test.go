// field_test.go - Z_q field element tests.
//
// To the extent possible under law, the authors of this package have waived
// all copyright and related or neighboring rights to the software, using
// the Creative Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldArithmetic(t *testing.T) {
	require := require.New(t)

	require.Equal(fq(kyberQ-1), newFq(-1), "newFq(-1) should map to q-1")
	require.Equal(fq(0), newFq(kyberQ), "newFq(q) should reduce to 0")
	require.Equal(fq(3), newFq(3))

	a, b := fq(3000), fq(1000)
	require.Equal(fq(3000+1000-kyberQ), a.add(b))
	require.Equal(fq(2000), a.sub(b))
	require.Equal(fq((3000*1000)%kyberQ), a.mul(b))

	require.Equal(fq(0), fq(0).neg())
	require.Equal(fq(kyberQ-5), fq(5).neg())
}
