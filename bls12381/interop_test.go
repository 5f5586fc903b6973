package bls12381

import (
	"math/big"
	"testing"

	kilicbls "github.com/kilic/bls12-381"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cross-checks the compressed wire format against an independent BLS12-381
// implementation.

func TestCompressedInteropWithKilic(t *testing.T) {
	group := NewG2Group(NewGnarkArithmetic())
	gen := g2GeneratorPoint()
	g2 := kilicbls.NewG2()

	for _, k := range []int64{1, 2, 5, 97, 30203} {
		p, err := group.ScalarMul(gen, big.NewInt(k))
		require.NoError(t, err)

		enc := p.SerializeCompressed()

		point, err := g2.FromCompressed(enc[:])
		require.NoError(t, err, "independent implementation must accept our encoding")
		assert.Equal(t, enc[:], g2.ToCompressed(point), "re-encoding must be byte-identical")
	}
}

func TestAdditionInteropWithKilic(t *testing.T) {
	group := NewG2Group(NewGnarkArithmetic())
	gen := g2GeneratorPoint()
	g2 := kilicbls.NewG2()

	a, err := group.ScalarMul(gen, big.NewInt(11))
	require.NoError(t, err)
	b, err := group.ScalarMul(gen, big.NewInt(31))
	require.NoError(t, err)

	sum, err := group.Add(a, b)
	require.NoError(t, err)

	encA := a.SerializeCompressed()
	encB := b.SerializeCompressed()

	pa, err := g2.FromCompressed(encA[:])
	require.NoError(t, err)
	pb, err := g2.FromCompressed(encB[:])
	require.NoError(t, err)

	acc := g2.Zero()
	g2.Add(acc, acc, pa)
	g2.Add(acc, acc, pb)

	encSum := sum.SerializeCompressed()
	assert.Equal(t, encSum[:], g2.ToCompressed(acc))
}

func TestInfinityInteropWithKilic(t *testing.T) {
	g2 := kilicbls.NewG2()

	enc := NewG2Infinity().SerializeCompressed()
	point, err := g2.FromCompressed(enc[:])
	require.NoError(t, err)
	assert.Equal(t, enc[:], g2.ToCompressed(point))
}
