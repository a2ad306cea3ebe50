package sieve

// nextClear advances the cursor one position past c, then scans forward for
// the first clear bit before byte index end. It returns ok=false when the
// scan runs off the end without finding one; the returned cursor is only
// meaningful when ok is true.
//
// The advance-before-scan discipline means the position c itself is never
// tested, which lets callers seed the very first scan with a cursor at the
// position before the range they care about.
func (b Buffer) nextClear(c Cursor, end uint64) (Cursor, bool) {
	c.Bit++
	c = c.norm()

	for c.Byte < end {
		if !b.Test(c) {
			return c, true
		}

		c.Bit++
		c = c.norm()
	}

	return Cursor{}, false
}
