package sieve

// Sieve crosses out every composite in the buffer. Afterwards a clear bit
// means its index is prime; a set bit means 0, 1, or composite.
func (b Buffer) Sieve() {
	b.sieve(nil)
}

// SieveObserved is Sieve with a callback invoked once per discovered prime
// after its multiples have been crossed out. scanned and total report the
// elimination cursor's byte offset against the cutoff, for progress display;
// the callback runs on the calling goroutine.
func (b Buffer) SieveObserved(observe func(p, scanned, total uint64)) {
	b.sieve(observe)
}

// Primes walks the sieved buffer and reports each clear bit's value in
// ascending order. The walk stops early if yield returns false.
//
// The scan is seeded at position zero, which the sieve left set, so the
// first position actually tested is 1 and the first value reported is 2.
func (b Buffer) Primes(yield func(p uint64) bool) {
	end := uint64(len(b))

	cur, ok := b.nextClear(Cursor{}, end)
	for ok {
		if !yield(cur.Value()) {
			return
		}
		cur, ok = b.nextClear(cur, end)
	}
}

/////////////// Private ///////////////

func (b Buffer) sieve(observe func(p, scanned, total uint64)) {
	// 0 and 1 are neither prime nor composite; marking them keeps the
	// scanners honest.
	b.Set(Cursor{Byte: 0, Bit: 0})
	b.Set(Cursor{Byte: 0, Bit: 1})

	// No prime past the square root of the limit can cross anything out,
	// so elimination only scans up to there. The cutoff is taken at byte
	// granularity from the byte count: √(len) + 1 bytes covers √(8*len)
	// with room to spare, and the crossers it admits beyond the true root
	// start past the end and do nothing.
	endsqrt := isqrt(uint64(len(b))) + 1
	// For one- and two-byte buffers the +1 would point past the end;
	// clamping changes nothing else since every candidate is below the
	// cutoff anyway.
	if endsqrt > uint64(len(b)) {
		endsqrt = uint64(len(b))
	}

	cur := Cursor{Byte: 0, Bit: 2}
	ok := true
	for ok {
		b.eliminateMultiples(cur)
		if observe != nil {
			observe(cur.Value(), cur.Byte, endsqrt)
		}
		cur, ok = b.nextClear(cur, endsqrt)
	}
}

// isqrt returns the integer square root of n by Newton iteration.
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}

	guess := n / 2
	for {
		next := (guess + n/guess) / 2
		if next >= guess {
			return guess
		}
		guess = next
	}
}
