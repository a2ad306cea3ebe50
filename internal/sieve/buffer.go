package sieve

// Buffer is a bit-packed view of the integers [0, 8*len(buffer)). Each bit
// stands for one integer: a set bit means composite (or the sentinels 0 and
// 1), a clear bit means the integer is still a prime candidate.
//
// The bits are ordered from most-significant (left) to least-significant
// (right), so integer n lives in byte n/8 under the mask 0x80 >> (n % 8).
// For n = 10 (byte 1, bit 2) the mask is 00100000.
type Buffer []byte

// NewBuffer returns a zeroed buffer covering [0, 2^power). The caller is
// responsible for keeping power >= 3; smaller values would round to zero
// bytes.
func NewBuffer(power uint) Buffer {
	return make(Buffer, 1<<(power-3))
}

// Limit returns the exclusive upper bound of the range the buffer covers.
func (b Buffer) Limit() uint64 {
	return 8 * uint64(len(b))
}

// Set marks the bit at c. No bounds check; callers keep the cursor inside
// the buffer.
func (b Buffer) Set(c Cursor) {
	b[c.Byte] |= 0x80 >> c.Bit
}

// Test reports whether the bit at c is set. No bounds check.
func (b Buffer) Test(c Cursor) bool {
	return b[c.Byte]&(0x80>>c.Bit) != 0
}
