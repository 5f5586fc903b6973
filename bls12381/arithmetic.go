package bls12381

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// Arithmetic is the curve arithmetic backend the group operations delegate
// to. Implementations enforce their own operand rules (curve and subgroup
// membership); failures are returned as-is and surfaced to callers wrapped
// in ErrArithmetic.
type Arithmetic interface {
	// G2Add returns the raw affine sum of two points.
	G2Add(p, q *G2Point) (*RawG2, error)
	// G2ScalarMul returns the raw affine product of a point and a
	// non-negative scalar.
	G2ScalarMul(p *G2Point, k *big.Int) (*RawG2, error)
	// G2MapToCurve deterministically maps an extension field element onto
	// the G2 subgroup.
	G2MapToCurve(u *Fp2) (*RawG2, error)
	// G2FromCompressed recovers a point from its 96-byte compressed
	// encoding, including the square root of the y-coordinate.
	G2FromCompressed(data []byte) (*G2Point, error)
}

// RawFe is one base field value as the backend emits it: the high 128 bits
// and the low 256 bits of the same big-endian integer.
type RawFe struct {
	A [FeHighSize]byte
	B [FeLowSize]byte
}

func (f *RawFe) bytes() [FeSize]byte {
	var out [FeSize]byte
	copy(out[:FeHighSize], f.A[:])
	copy(out[FeHighSize:], f.B[:])
	return out
}

// RawG2 is the backend's raw affine output: the four coordinate components
// x.c0, x.c1, y.c0, y.c1, each split into its two halves.
type RawG2 struct {
	XC0 RawFe
	XC1 RawFe
	YC0 RawFe
	YC1 RawFe
}

// FromRaw converts a raw backend result into a point, validating that every
// component is below the modulus. All-zero coordinates convert to the
// infinity sentinel; this path permits it.
func FromRaw(raw *RawG2) (*G2Point, error) {
	xc0 := raw.XC0.bytes()
	xRe, err := parseFieldElement(xc0[:])
	if err != nil {
		return nil, err
	}
	xc1 := raw.XC1.bytes()
	xIm, err := parseFieldElement(xc1[:])
	if err != nil {
		return nil, err
	}
	yc0 := raw.YC0.bytes()
	yRe, err := parseFieldElement(yc0[:])
	if err != nil {
		return nil, err
	}
	yc1 := raw.YC1.bytes()
	yIm, err := parseFieldElement(yc1[:])
	if err != nil {
		return nil, err
	}
	return &G2Point{
		X: Fp2{A0: xRe, A1: xIm},
		Y: Fp2{A0: yRe, A1: yIm},
	}, nil
}

// RawFromPoint splits a point back into the backend's half-limb layout. It
// is the inverse of FromRaw and exists so callers can compare facade output
// against raw backend output bit for bit.
func RawFromPoint(p *G2Point) *RawG2 {
	return &RawG2{
		XC0: rawFromFe(&p.X.A0),
		XC1: rawFromFe(&p.X.A1),
		YC0: rawFromFe(&p.Y.A0),
		YC1: rawFromFe(&p.Y.A1),
	}
}

func rawFromFe(e *fp.Element) RawFe {
	b := e.Bytes()
	var raw RawFe
	copy(raw.A[:], b[:FeHighSize])
	copy(raw.B[:], b[FeHighSize:])
	return raw
}
