package reflection

import (
	"fmt"
	"slices"

	"github.com/LdDl/bitmirror/utils"
	"github.com/pkg/errors"
)

// Sentinel errors
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// Bits reflects the first n bits of src into dst.
//
// Bits are consumed from bit 0 of src[0] upwards. Complete bytes are
// reflected through the table, a trailing partial byte of r < 8 bits is
// reflected inside an r-bit field and right-aligned (its high 8-r bits are
// zero), and finally the order of the ceil(n/8) written bytes is reversed so
// the whole span reads as one reversed bit string.
//
// Bits does not validate its arguments: both dst and src must hold at least
// ceil(n/8) bytes, otherwise it panics with an index out of range. Use
// CheckedBits to get an error instead. When n is 0, dst is left untouched.
// dst and src may be the same slice; any other overlap is not supported.
func Bits(dst, src []byte, n uint) {
	i := 0
	for ; n >= 8; n -= 8 {
		dst[i] = lookup[src[i]]
		i++
	}
	if n > 0 {
		// Reflected byte holds bit k at 7-k, shifting down by 8-n moves it to
		// n-1-k and drops the bits above n
		dst[i] = lookup[src[i]] >> (8 - n)
		i++
	}
	utils.ReverseBytesInPlace(dst[:i])
}

// CheckedBits is Bits with the buffer lengths validated first. It returns an
// error wrapping ErrInvalidArgument, without writing to dst, when either
// buffer is shorter than ceil(n/8) bytes.
func CheckedBits(dst, src []byte, n uint) error {
	need := utils.BytesFor(n)
	if len(src) < need {
		return errors.Wrapf(ErrInvalidArgument, "source has %d bytes, %d bits need %d", len(src), n, need)
	}
	if len(dst) < need {
		return errors.Wrapf(ErrInvalidArgument, "destination has %d bytes, %d bits need %d", len(dst), n, need)
	}
	Bits(dst, src, n)
	return nil
}

// AppendBits appends the reflection of the first n bits of src to dst and
// returns the extended slice. src must hold at least ceil(n/8) bytes.
//
// src may be dst itself or any part of dst[:len(dst)]: the reflection is
// written past len(dst), so those bytes are read intact. src must not lie in
// the spare capacity dst[len(dst):cap(dst)], which is overwritten before it is
// read.
func AppendBits(dst, src []byte, n uint) []byte {
	need := utils.BytesFor(n)
	dst = slices.Grow(dst, need)
	tail := dst[len(dst) : len(dst)+need]
	Bits(tail, src, n)
	return dst[:len(dst)+need]
}
