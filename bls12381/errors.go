package bls12381

import (
	"errors"
	"fmt"
)

// Decoding and group-operation failures. Every failure is surfaced to the
// caller as one of these kinds, wrapped with detail; nothing is ever
// downgraded to a default point.
var (
	ErrInvalidLength          = errors.New("bls12381: invalid encoding length")
	ErrUnsupportedCompression = errors.New("bls12381: unsupported compression flag")
	ErrUnsupportedInfinity    = errors.New("bls12381: unsupported infinity flag")
	ErrUnsupportedYFlag       = errors.New("bls12381: unsupported y ordinate flag")
	ErrOutOfRange             = errors.New("bls12381: field element out of range")
	ErrUnexpectedInfinity     = errors.New("bls12381: unexpected point at infinity")
	ErrArithmetic             = errors.New("bls12381: arithmetic backend failure")
)

func lengthDetail(want, got int) string {
	return fmt.Sprintf("expected %d bytes, got %d", want, got)
}
