package bls12381

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/utils"
)

const (
	// G2UncompressedSize is the raw wire encoding accepted by
	// DeserializeUncompressed: four 48-byte field blocks.
	G2UncompressedSize = 4 * FeSize
	// G2CompressedSize is the compressed wire encoding produced by
	// SerializeCompressed: the x-coordinate plus flag bits.
	G2CompressedSize = 2 * FeSize
)

// Control bits in the top of byte 0, ZCash serialization convention.
const (
	maskCompressed = byte(1 << 7) // 0x80
	maskInfinity   = byte(1 << 6) // 0x40
	maskYSign      = byte(1 << 5) // 0x20
	maskFlags      = maskCompressed | maskInfinity | maskYSign
)

// DeserializeUncompressed decodes the 192-byte raw encoding of a G2 point:
// x_imaginary || x_real || y_imaginary || y_real, each a 48-byte big-endian
// block. This path accepts only flag-clear input; the compressed form, the
// encoded infinity and the y ordinate flag are all rejected. The decoded
// point must not be the infinity sentinel.
//
// The input buffer is never mutated.
func DeserializeUncompressed(data []byte) (*G2Point, error) {
	if len(data) != G2UncompressedSize {
		return nil, utils.WrapError(ErrInvalidLength, lengthDetail(G2UncompressedSize, len(data)))
	}
	switch {
	case data[0]&maskCompressed != 0:
		return nil, utils.WrapError(ErrUnsupportedCompression, "compression flag set on raw encoding")
	case data[0]&maskInfinity != 0:
		return nil, utils.WrapError(ErrUnsupportedInfinity, "infinity flag set on raw encoding")
	case data[0]&maskYSign != 0:
		return nil, utils.WrapError(ErrUnsupportedYFlag, "y ordinate flag set on raw encoding")
	}

	// The flag bits are verified clear, so masking the leading block is a
	// copy rather than an in-place clear; the source buffer stays intact.
	var head [FeSize]byte
	copy(head[:], data[:FeSize])
	head[0] &^= maskFlags

	xIm, err := parseFieldElement(head[:])
	if err != nil {
		return nil, err
	}
	xRe, err := parseFieldElement(data[FeSize : 2*FeSize])
	if err != nil {
		return nil, err
	}
	yIm, err := parseFieldElement(data[2*FeSize : 3*FeSize])
	if err != nil {
		return nil, err
	}
	yRe, err := parseFieldElement(data[3*FeSize:])
	if err != nil {
		return nil, err
	}

	p := &G2Point{
		X: Fp2{A0: xRe, A1: xIm},
		Y: Fp2{A0: yRe, A1: yIm},
	}
	if p.IsInfinity() {
		return nil, utils.WrapError(ErrUnexpectedInfinity, "raw encoding resolves to the point at infinity")
	}
	return p, nil
}

// SerializeCompressed encodes the point in the 96-byte compressed form: the
// canonical x-coordinate bytes with the compression bit always set, and the
// y sign bit set when y is the lexicographically larger of the two square
// roots. Infinity encodes as 0xC0 followed by zeros.
func (p *G2Point) SerializeCompressed() [G2CompressedSize]byte {
	var out [G2CompressedSize]byte
	if p.IsInfinity() {
		out[0] = maskCompressed | maskInfinity
		return out
	}
	xb := p.X.Bytes()
	copy(out[:], xb[:])
	if yInUpperHalf(&p.Y) {
		out[0] |= maskYSign
	}
	out[0] |= maskCompressed
	return out
}

// DeserializeCompressed decodes the 96-byte compressed encoding. Length,
// flag and range validation happen here; recovery of the y-coordinate is
// delegated to the arithmetic backend, which also enforces curve and
// subgroup membership. This is a superset capability next to the raw-only
// DeserializeUncompressed path, which is kept unchanged.
func DeserializeCompressed(data []byte, arith Arithmetic) (*G2Point, error) {
	if len(data) != G2CompressedSize {
		return nil, utils.WrapError(ErrInvalidLength, lengthDetail(G2CompressedSize, len(data)))
	}
	if data[0]&maskCompressed == 0 {
		return nil, utils.WrapError(ErrUnsupportedCompression, "compression flag not set on compressed encoding")
	}
	if data[0]&maskInfinity != 0 {
		if data[0] != maskCompressed|maskInfinity {
			return nil, utils.WrapError(ErrUnexpectedInfinity, "encoded infinity carries extra flag bits")
		}
		for _, b := range data[1:] {
			if b != 0 {
				return nil, utils.WrapError(ErrUnexpectedInfinity, "encoded infinity carries a non-zero payload")
			}
		}
		return NewG2Infinity(), nil
	}

	// Range-check the x blocks before handing the buffer to the backend so
	// out-of-range input reports as such rather than as a backend failure.
	var head [FeSize]byte
	copy(head[:], data[:FeSize])
	head[0] &^= maskFlags
	if _, err := parseFieldElement(head[:]); err != nil {
		return nil, err
	}
	if _, err := parseFieldElement(data[FeSize:]); err != nil {
		return nil, err
	}

	p, err := arith.G2FromCompressed(data)
	if err != nil {
		return nil, utils.WrapError(ErrArithmetic, err)
	}
	return p, nil
}

// yInUpperHalf implements the sign convention for the compressed encoding:
// the imaginary component decides when it is non-zero, the real component
// breaks the tie. Upper half means 2*v > q, strictly.
func yInUpperHalf(y *Fp2) bool {
	if !y.A1.IsZero() {
		return doubleExceedsModulus(&y.A1)
	}
	return doubleExceedsModulus(&y.A0)
}

func doubleExceedsModulus(e *fp.Element) bool {
	v := e.BigInt(new(big.Int))
	return v.Lsh(v, 1).Cmp(fp.Modulus()) > 0
}
