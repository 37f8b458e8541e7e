package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -timeout 30s -run ^TestBytesFor$ github.com/LdDl/bitmirror/utils
func TestBytesFor(t *testing.T) {
	tests := []struct {
		bits     uint
		expected int
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
		{64, 8},
		{65, 9},
		{^uint(0) - 6, int(^uint(0)>>3) + 1},
		{^uint(0) &^ 7, int(^uint(0) >> 3)},
		{^uint(0), int(^uint(0)>>3) + 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BytesFor(tt.bits), "bits: %d", tt.bits)
	}
}

// go test -timeout 30s -run ^TestReverseBytesInPlace$ github.com/LdDl/bitmirror/utils
func TestReverseBytesInPlace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0102030405060708", "0807060504030201"},
		{"aabbccdd", "ddccbbaa"},
		{"aabbcc", "ccbbaa"},
		{"00", "00"},
		{"", ""},
	}

	for _, tt := range tests {
		data, err := hex.DecodeString(tt.input)
		require.NoError(t, err)

		expected, err := hex.DecodeString(tt.expected)
		require.NoError(t, err)

		ReverseBytesInPlace(data)
		assert.Equal(t, expected, data, "input: %s", tt.input)
	}
}

// go test -timeout 30s -run ^TestReverseBytesInPlace_Subslice$ github.com/LdDl/bitmirror/utils
func TestReverseBytesInPlace_Subslice(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	ReverseBytesInPlace(data[:3])
	assert.Equal(t, []byte{0x03, 0x02, 0x01, 0x04, 0x05}, data, "Bytes past the subslice must stay in place")
}
