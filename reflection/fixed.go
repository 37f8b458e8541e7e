package reflection

// Integer is the set of fixed-width integer types Value accepts
type Integer interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64
}

// Uint8 reverses the bit order of an 8 bit value.
func Uint8(v uint8) uint8 {
	return lookup[v]
}

// Uint16 reverses the bit order of a 16 bit value.
func Uint16(v uint16) uint16 {
	return uint16(lookup[byte(v)])<<8 |
		uint16(lookup[byte(v>>8)])
}

// Uint32 reverses the bit order of a 32 bit value.
func Uint32(v uint32) uint32 {
	return uint32(lookup[byte(v)])<<24 |
		uint32(lookup[byte(v>>8)])<<16 |
		uint32(lookup[byte(v>>16)])<<8 |
		uint32(lookup[byte(v>>24)])
}

// Uint64 reverses the bit order of a 64 bit value.
func Uint64(v uint64) uint64 {
	// Low half becomes high half, each half reflected on its own
	return uint64(Uint32(uint32(v)))<<32 |
		uint64(Uint32(uint32(v>>32)))
}

// Int8 reverses the two's-complement bit pattern of v.
// No sign adjustment is applied: the reversed pattern is read back as signed.
func Int8(v int8) int8 {
	return int8(Uint8(uint8(v)))
}

// Int16 is the signed counterpart of Uint16, see Int8.
func Int16(v int16) int16 {
	return int16(Uint16(uint16(v)))
}

// Int32 is the signed counterpart of Uint32, see Int8.
func Int32(v int32) int32 {
	return int32(Uint32(uint32(v)))
}

// Int64 is the signed counterpart of Uint64, see Int8.
func Int64(v int64) int64 {
	return int64(Uint64(uint64(v)))
}

// Value reverses all bits of v across the full width of T.
// It dispatches to the width-specific function, for callers which are
// generic over the integer width themselves.
func Value[T Integer](v T) T {
	switch x := any(v).(type) {
	case uint8:
		return any(Uint8(x)).(T)
	case uint16:
		return any(Uint16(x)).(T)
	case uint32:
		return any(Uint32(x)).(T)
	case uint64:
		return any(Uint64(x)).(T)
	case int8:
		return any(Int8(x)).(T)
	case int16:
		return any(Int16(x)).(T)
	case int32:
		return any(Int32(x)).(T)
	case int64:
		return any(Int64(x)).(T)
	}
	panic("reflection: unsupported integer type")
}
