package sieve

// Cursor is a logical position in a Buffer: a byte index paired with a bit
// offset inside that byte. The integer the position stands for is
// 8*Byte + Bit.
//
// We thread plain indices instead of raw pointers so that every bound check
// is ordinary integer comparison against len(buffer).
type Cursor struct {
	// Index of the byte within the buffer
	Byte uint64
	// Offset of the bit within the byte, counted from the most
	// significant bit. Always in [0, 7] for a normalized cursor.
	Bit uint8
}

// Value returns the integer the cursor represents.
func (c Cursor) Value() uint64 {
	return 8*c.Byte + uint64(c.Bit)
}

// norm folds an out-of-range bit offset into the byte index. The crosser's
// starting offset can be as large as 49 (7*7), so this divides rather than
// assuming a single-byte carry.
func (c Cursor) norm() Cursor {
	c.Byte += uint64(c.Bit) / 8
	c.Bit %= 8
	return c
}
