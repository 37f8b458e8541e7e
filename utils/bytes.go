// Package utils provides byte-slice helpers shared by the bit reflection routines.
package utils

// BytesFor returns the number of bytes needed to hold n bits, i.e. ceil(n/8).
// Exact for every n, including values close to the maximum uint.
func BytesFor(n uint) int {
	full := int(n >> 3)
	if n&7 != 0 {
		return full + 1
	}
	return full
}

// ReverseBytesInPlace swaps b end for end, so b[0] and b[len(b)-1] trade places.
// The reflection routines use it as their last step, turning a run of
// individually reflected bytes into one reflected bit string.
func ReverseBytesInPlace(b []byte) {
	for lo, hi := 0, len(b)-1; lo < hi; lo, hi = lo+1, hi-1 {
		b[lo], b[hi] = b[hi], b[lo]
	}
}
