package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	kind := errors.New("kind")

	testCases := []struct {
		name    string
		main    interface{}
		sub     interface{}
		want    string
		wantNil bool
	}{
		{"error and string", kind, "detail", "kind: detail", false},
		{"error and error", kind, errors.New("detail"), "kind: detail", false},
		{"string and error", "kind", errors.New("detail"), "kind: detail", false},
		{"main only", kind, "", "kind", false},
		{"sub only", "", "detail", "detail", false},
		{"both empty", "", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := WrapError(tc.main, tc.sub)
			if tc.wantNil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestWrapErrorKeepsKindMatchable(t *testing.T) {
	kind := errors.New("kind")
	err := WrapError(kind, "some detail")
	assert.ErrorIs(t, err, kind)
}

func TestTypedErr(t *testing.T) {
	assert.NoError(t, TypedErr(""))
	assert.NoError(t, TypedErr(42))
	assert.EqualError(t, TypedErr("boom"), "boom")
	orig := errors.New("boom")
	assert.Same(t, orig, TypedErr(orig))
}

func TestDecodeHex(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{"plain", "c0ffee", []byte{0xc0, 0xff, 0xee}, false},
		{"0x prefix", "0xc0ffee", []byte{0xc0, 0xff, 0xee}, false},
		{"0X prefix", "0Xc0ffee", []byte{0xc0, 0xff, 0xee}, false},
		{"empty", "", []byte{}, false},
		{"odd length", "c0f", nil, true},
		{"not hex", "zz", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeHex(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeHex(t *testing.T) {
	assert.Equal(t, "0xc0ffee", EncodeHex([]byte{0xc0, 0xff, 0xee}))
	assert.Equal(t, "0x", EncodeHex(nil))
}
