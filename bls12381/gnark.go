package bls12381

import (
	"errors"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GnarkArithmetic backs the Arithmetic interface with gnark-crypto's
// BLS12-381 implementation. Operands must be on the twist and in the
// r-torsion subgroup; the infinity sentinel maps to the zero affine point.
type GnarkArithmetic struct{}

var _ Arithmetic = (*GnarkArithmetic)(nil)

func NewGnarkArithmetic() *GnarkArithmetic {
	return &GnarkArithmetic{}
}

func (GnarkArithmetic) G2Add(p, q *G2Point) (*RawG2, error) {
	a, err := affineFromPoint(p)
	if err != nil {
		return nil, err
	}
	b, err := affineFromPoint(q)
	if err != nil {
		return nil, err
	}
	var r curve.G2Affine
	r.Add(&a, &b)
	return rawFromAffine(&r), nil
}

func (GnarkArithmetic) G2ScalarMul(p *G2Point, k *big.Int) (*RawG2, error) {
	if k == nil || k.Sign() < 0 {
		return nil, errors.New("scalar must be a non-negative integer")
	}
	a, err := affineFromPoint(p)
	if err != nil {
		return nil, err
	}
	var r curve.G2Affine
	r.ScalarMultiplication(&a, k)
	return rawFromAffine(&r), nil
}

func (GnarkArithmetic) G2MapToCurve(u *Fp2) (*RawG2, error) {
	if u == nil {
		return nil, errors.New("nil field element")
	}
	var a curve.G2Affine
	e := a.X
	e.A0.Set(&u.A0)
	e.A1.Set(&u.A1)
	r := curve.MapToG2(e)
	return rawFromAffine(&r), nil
}

func (GnarkArithmetic) G2FromCompressed(data []byte) (*G2Point, error) {
	var aff curve.G2Affine
	if _, err := aff.SetBytes(data); err != nil {
		return nil, err
	}
	return pointFromAffine(&aff), nil
}

func affineFromPoint(p *G2Point) (curve.G2Affine, error) {
	var aff curve.G2Affine
	if p == nil {
		return aff, errors.New("nil point")
	}
	if p.IsInfinity() {
		// gnark-crypto represents infinity as the zero affine point.
		return aff, nil
	}
	aff.X.A0.Set(&p.X.A0)
	aff.X.A1.Set(&p.X.A1)
	aff.Y.A0.Set(&p.Y.A0)
	aff.Y.A1.Set(&p.Y.A1)
	if !aff.IsOnCurve() {
		return aff, errors.New("point is not on the G2 twist")
	}
	if !aff.IsInSubGroup() {
		return aff, errors.New("point is not in the r-torsion subgroup")
	}
	return aff, nil
}

func pointFromAffine(aff *curve.G2Affine) *G2Point {
	p := &G2Point{}
	p.X.A0.Set(&aff.X.A0)
	p.X.A1.Set(&aff.X.A1)
	p.Y.A0.Set(&aff.Y.A0)
	p.Y.A1.Set(&aff.Y.A1)
	return p
}

func rawFromAffine(aff *curve.G2Affine) *RawG2 {
	return RawFromPoint(pointFromAffine(aff))
}
