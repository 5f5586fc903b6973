package bls12381

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/utils"
)

const (
	// FeSize is the byte size of a base field element on the wire.
	FeSize = 48
	// FeHighSize and FeLowSize are the two halves of a field element as the
	// arithmetic backend emits them: the high 128 bits and the low 256 bits
	// of the same big-endian integer.
	FeHighSize = 16
	FeLowSize  = 32
	// Fp2Size is the byte size of an extension field element on the wire.
	Fp2Size = 2 * FeSize
)

// Fp2 is an element of the quadratic extension field, A0 + A1*u.
type Fp2 struct {
	A0 fp.Element // real component
	A1 fp.Element // imaginary component
}

// NewFp2FromBytes parses the canonical 96-byte encoding of an extension
// field element: imaginary component in the first 48 bytes, real component
// in the last 48, both big-endian. Each component must be below the modulus.
func NewFp2FromBytes(data []byte) (*Fp2, error) {
	if len(data) != Fp2Size {
		return nil, utils.WrapError(ErrInvalidLength, lengthDetail(Fp2Size, len(data)))
	}
	a1, err := parseFieldElement(data[:FeSize])
	if err != nil {
		return nil, err
	}
	a0, err := parseFieldElement(data[FeSize:])
	if err != nil {
		return nil, err
	}
	return &Fp2{A0: a0, A1: a1}, nil
}

// Bytes returns the canonical 96-byte encoding, imaginary component first.
func (e *Fp2) Bytes() [Fp2Size]byte {
	var out [Fp2Size]byte
	a1 := e.A1.Bytes()
	a0 := e.A0.Bytes()
	copy(out[:FeSize], a1[:])
	copy(out[FeSize:], a0[:])
	return out
}

// IsZero reports whether both components are zero.
func (e *Fp2) IsZero() bool {
	return e.A0.IsZero() && e.A1.IsZero()
}

// Equal reports componentwise equality.
func (e *Fp2) Equal(other *Fp2) bool {
	return e.A0.Equal(&other.A0) && e.A1.Equal(&other.A1)
}

// G2Point is an affine point on the G2 twist. The zero value, with both
// coordinates zero, is the point at infinity.
type G2Point struct {
	X Fp2
	Y Fp2
}

// NewG2Point constructs a point from already-validated affine coordinates.
func NewG2Point(x, y *Fp2) *G2Point {
	return &G2Point{X: *x, Y: *y}
}

// NewG2Infinity returns the point at infinity.
func NewG2Infinity() *G2Point {
	return &G2Point{}
}

// IsInfinity reports whether the point is the infinity sentinel.
func (p *G2Point) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Equal reports whether both coordinate pairs are componentwise equal.
func (p *G2Point) Equal(q *G2Point) bool {
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y)
}

// parseFieldElement reads a 48-byte big-endian block and rejects values that
// are not below the field modulus.
func parseFieldElement(block []byte) (fp.Element, error) {
	v := new(big.Int).SetBytes(block)
	if v.Cmp(fp.Modulus()) >= 0 {
		return fp.Element{}, utils.WrapError(ErrOutOfRange, "field element value is not below the modulus")
	}
	var e fp.Element
	e.SetBigInt(v)
	return e, nil
}
