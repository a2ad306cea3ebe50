package sieve

// eliminateMultiples sets the bit of every multiple of the prime at p,
// starting from its square. Earlier multiples are necessarily multiples of
// smaller primes and have been crossed out already.
//
// With p = 8q + r (q the byte index, r the bit offset), the square
// decomposes without ever materializing p² as a bit count:
//
//	p² = 64q² + 16qr + r² = 8*(8q² + 2qr) + r²
//
// so the start is 8q² + 2qr whole bytes plus r² bits. From there each step
// adds p, i.e. q bytes and r bits; because r <= 7 the running bit offset can
// overflow its byte by at most one, so a single conditional carry keeps the
// cursor normalized.
//
// The byte offset 8q² + 2qr is computed in uint64, which holds it for every
// power the shell admits.
func (b Buffer) eliminateMultiples(p Cursor) {
	q, r := p.Byte, uint64(p.Bit)

	cur := Cursor{Byte: 8*q*q + 2*q*r, Bit: p.Bit * p.Bit}.norm()
	end := uint64(len(b))

	// A prime whose square is past the end contributes nothing; the loop
	// body never runs.
	for cur.Byte < end {
		b.Set(cur)

		cur.Byte += q
		cur.Bit += p.Bit
		if cur.Bit >= 8 {
			cur.Byte++
			cur.Bit -= 8
		}
	}
}
