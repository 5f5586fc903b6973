package bls12381

import (
	"math/big"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/utils"
)

// G2Group exposes the group operations on validated points. It performs no
// validation of its own: operands are expected to come out of the codec or
// another trusted constructor, and the arithmetic backend enforces its own
// operand rules. Backend failures propagate unchanged under ErrArithmetic.
type G2Group struct {
	arith Arithmetic
}

func NewG2Group(arith Arithmetic) *G2Group {
	return &G2Group{arith: arith}
}

// Add returns p + q.
func (g *G2Group) Add(p, q *G2Point) (*G2Point, error) {
	raw, err := g.arith.G2Add(p, q)
	if err != nil {
		return nil, utils.WrapError(ErrArithmetic, err)
	}
	return FromRaw(raw)
}

// ScalarMul returns k * p for a non-negative scalar k.
func (g *G2Group) ScalarMul(p *G2Point, k *big.Int) (*G2Point, error) {
	raw, err := g.arith.G2ScalarMul(p, k)
	if err != nil {
		return nil, utils.WrapError(ErrArithmetic, err)
	}
	return FromRaw(raw)
}

// MapToCurve deterministically maps an extension field element onto the G2
// subgroup, the building block for hash-to-curve.
func (g *G2Group) MapToCurve(u *Fp2) (*G2Point, error) {
	raw, err := g.arith.G2MapToCurve(u)
	if err != nil {
		return nil, utils.WrapError(ErrArithmetic, err)
	}
	return FromRaw(raw)
}
