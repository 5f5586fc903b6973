package point

import (
	"fmt"
	"math/big"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/bls12381"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/logger"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/metrics/indicators/g2codec"
	"github.com/satlayer/satlayer-bvs/bvs-crypto/utils"
)

// Decode validates a 192-byte raw encoding and prints the affine
// coordinates.
func Decode(rawHex string) {
	s := NewService()
	p := s.decodeRaw(rawHex)
	printCoordinates(p)
}

// Compress converts a 192-byte raw encoding to the 96-byte compressed form.
func Compress(rawHex string) {
	s := NewService()
	p := s.decodeRaw(rawHex)
	enc := p.SerializeCompressed()
	s.Indicators.AddSerializeTotal()
	fmt.Printf("compressed: %s\n", utils.EncodeHex(enc[:]))
}

// Decompress recovers the affine coordinates from a 96-byte compressed
// encoding.
func Decompress(compressedHex string) {
	s := NewService()
	p := s.decodeCompressed(compressedHex)
	printCoordinates(p)
}

// Add prints the compressed sum of two compressed points.
func Add(aHex, bHex string) {
	s := NewService()
	a := s.decodeCompressed(aHex)
	b := s.decodeCompressed(bHex)

	sum, err := s.Group.Add(a, b)
	if err != nil {
		s.Indicators.AddGroupOpTotal("add", g2codec.ResultRejected)
		s.Logger.Error("point addition failed", logger.WithField("error", err))
		panic(err)
	}
	s.Indicators.AddGroupOpTotal("add", g2codec.ResultOK)
	enc := sum.SerializeCompressed()
	fmt.Printf("sum: %s\n", utils.EncodeHex(enc[:]))
}

// Mul prints the compressed product of a compressed point and a scalar
// (decimal, or hex with an 0x prefix).
func Mul(pHex, scalar string) {
	s := NewService()
	p := s.decodeCompressed(pHex)

	k, ok := new(big.Int).SetString(scalar, 0)
	if !ok {
		panic(fmt.Errorf("invalid scalar %q", scalar))
	}

	product, err := s.Group.ScalarMul(p, k)
	if err != nil {
		s.Indicators.AddGroupOpTotal("mul", g2codec.ResultRejected)
		s.Logger.Error("scalar multiplication failed", logger.WithField("error", err))
		panic(err)
	}
	s.Indicators.AddGroupOpTotal("mul", g2codec.ResultOK)
	enc := product.SerializeCompressed()
	fmt.Printf("product: %s\n", utils.EncodeHex(enc[:]))
}

// Map maps a 96-byte extension field element onto the curve and prints the
// compressed result.
func Map(feHex string) {
	s := NewService()
	data, err := utils.DecodeHex(feHex)
	if err != nil {
		panic(err)
	}
	u, err := bls12381.NewFp2FromBytes(data)
	if err != nil {
		panic(err)
	}

	p, err := s.Group.MapToCurve(u)
	if err != nil {
		s.Indicators.AddGroupOpTotal("map", g2codec.ResultRejected)
		s.Logger.Error("map-to-curve failed", logger.WithField("error", err))
		panic(err)
	}
	s.Indicators.AddGroupOpTotal("map", g2codec.ResultOK)
	enc := p.SerializeCompressed()
	fmt.Printf("point: %s\n", utils.EncodeHex(enc[:]))
}

func (s *Service) decodeRaw(rawHex string) *bls12381.G2Point {
	data, err := utils.DecodeHex(rawHex)
	if err != nil {
		panic(err)
	}
	p, err := bls12381.DeserializeUncompressed(data)
	if err != nil {
		s.Indicators.AddDeserializeTotal("uncompressed", g2codec.ResultRejected)
		s.Logger.Error("raw encoding rejected", logger.WithField("error", err))
		panic(err)
	}
	s.Indicators.AddDeserializeTotal("uncompressed", g2codec.ResultOK)
	return p
}

func (s *Service) decodeCompressed(compressedHex string) *bls12381.G2Point {
	data, err := utils.DecodeHex(compressedHex)
	if err != nil {
		panic(err)
	}
	p, err := bls12381.DeserializeCompressed(data, s.Arith)
	if err != nil {
		s.Indicators.AddDeserializeTotal("compressed", g2codec.ResultRejected)
		s.Logger.Error("compressed encoding rejected", logger.WithField("error", err))
		panic(err)
	}
	s.Indicators.AddDeserializeTotal("compressed", g2codec.ResultOK)
	return p
}

func printCoordinates(p *bls12381.G2Point) {
	if p.IsInfinity() {
		fmt.Println("point at infinity")
		return
	}
	x := p.X.Bytes()
	y := p.Y.Bytes()
	fmt.Printf("x: %s\ny: %s\n", utils.EncodeHex(x[:]), utils.EncodeHex(y[:]))
}
