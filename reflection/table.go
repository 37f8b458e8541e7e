// Package reflection implements bit-order reversal ("reflection") of
// fixed-width integers and of arbitrary-length bit strings.
//
// Reflection is the building block of the reflected CRC variants
// (CRC-32/IEEE, CRC-16/ARC and friends), which process data least
// significant bit first. Every function here is pure and safe for
// concurrent use.
package reflection

// lookup maps every byte value to its bit-reversed value.
// Built during package initialisation, read-only afterwards.
var lookup = buildTable()

// buildTable moves bit i of every byte value to bit 7-i
func buildTable() [256]byte {
	var t [256]byte
	for b := 0; b < 256; b++ {
		var r byte
		for i := 0; i < 8; i++ {
			if b&(1<<i) != 0 {
				r |= 1 << (7 - i)
			}
		}
		t[b] = r
	}
	return t
}

// Table returns a copy of the 256-entry reflection table.
func Table() [256]byte {
	return lookup
}

// Byte returns b with its 8 bits in reverse order.
func Byte(b byte) byte {
	return lookup[b]
}
