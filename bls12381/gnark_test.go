package bls12381

import (
	"encoding/hex"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGnarkArithmeticFromCompressed(t *testing.T) {
	arith := NewGnarkArithmetic()

	compressed, err := hex.DecodeString(g2GeneratorCompressedHex)
	require.NoError(t, err)

	p, err := arith.G2FromCompressed(compressed)
	require.NoError(t, err)
	assert.True(t, p.Equal(g2GeneratorPoint()))

	// garbage x has no matching y on the curve
	bad := make([]byte, G2CompressedSize)
	copy(bad, compressed)
	bad[G2CompressedSize-1] ^= 0x01
	_, err = arith.G2FromCompressed(bad)
	assert.Error(t, err)
}

func TestGnarkArithmeticAddMatchesLibrary(t *testing.T) {
	arith := NewGnarkArithmetic()
	gen := g2GeneratorPoint()

	raw, err := arith.G2Add(gen, gen)
	require.NoError(t, err)

	_, _, _, g2 := curve.Generators()
	var want curve.G2Affine
	want.Add(&g2, &g2)
	assert.Equal(t, RawFromPoint(pointFromAffine(&want)), raw)
}

func TestGnarkArithmeticRejectsOffCurve(t *testing.T) {
	arith := NewGnarkArithmetic()
	offCurve := &G2Point{
		X: Fp2{A0: feFromInt64(2), A1: feFromInt64(3)},
		Y: Fp2{A0: feFromInt64(4), A1: feFromInt64(5)},
	}

	_, err := arith.G2Add(offCurve, g2GeneratorPoint())
	assert.Error(t, err)
}

func TestGnarkArithmeticMapToCurveMatchesLibrary(t *testing.T) {
	arith := NewGnarkArithmetic()

	u := &Fp2{A0: feFromInt64(314159), A1: feFromInt64(271828)}
	raw, err := arith.G2MapToCurve(u)
	require.NoError(t, err)
	p, err := FromRaw(raw)
	require.NoError(t, err)

	var aff curve.G2Affine
	e := aff.X
	e.A0.Set(&u.A0)
	e.A1.Set(&u.A1)
	want := curve.MapToG2(e)
	assert.True(t, p.Equal(pointFromAffine(&want)))
}

func TestGnarkArithmeticNilOperands(t *testing.T) {
	arith := NewGnarkArithmetic()
	gen := g2GeneratorPoint()

	_, err := arith.G2Add(nil, gen)
	assert.Error(t, err)

	_, err = arith.G2MapToCurve(nil)
	assert.Error(t, err)
}
