package sieve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// isPrimeTrial is the independent oracle: plain trial division.
func isPrimeTrial(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func primesBelowTrial(limit uint64) []uint64 {
	var out []uint64
	for n := uint64(2); n < limit; n++ {
		if isPrimeTrial(n) {
			out = append(out, n)
		}
	}
	return out
}

func sievedPrimes(power uint) []uint64 {
	b := NewBuffer(power)
	b.Sieve()

	var out []uint64
	b.Primes(func(p uint64) bool {
		out = append(out, p)
		return true
	})
	return out
}

func TestSieveMatchesTrialDivision(t *testing.T) {
	for power := uint(3); power <= 16; power++ {
		got := sievedPrimes(power)
		want := primesBelowTrial(1 << power)
		require.Equal(t, want, got, "power %d", power)
	}
}

func TestKnownPrimeCounts(t *testing.T) {
	counts := map[uint]int{
		3:  4,   // pi(7)
		4:  6,   // pi(15)
		5:  11,  // pi(31)
		6:  18,  // pi(63)
		7:  31,  // pi(127)
		8:  54,  // pi(255)
		10: 172, // pi(1023)
	}

	for power, want := range counts {
		require.Len(t, sievedPrimes(power), want, "power %d", power)
	}
}

func TestFirstPrimes(t *testing.T) {
	for power := uint(3); power <= 10; power++ {
		got := sievedPrimes(power)
		require.GreaterOrEqual(t, len(got), 4)
		require.Equal(t, []uint64{2, 3, 5, 7}, got[:4], "power %d", power)
	}
}

func TestBoundariesExcluded(t *testing.T) {
	for power := uint(3); power <= 12; power++ {
		got := sievedPrimes(power)

		require.NotContains(t, got, uint64(0))
		require.NotContains(t, got, uint64(1))
		for _, p := range got {
			require.Less(t, p, uint64(1)<<power)
		}
	}
}

func TestPrimesStrictlyAscending(t *testing.T) {
	got := sievedPrimes(12)
	for i := 1; i < len(got); i++ {
		require.Greater(t, got[i], got[i-1])
	}
}

func TestPrimesStopsOnFalseYield(t *testing.T) {
	b := NewBuffer(8)
	b.Sieve()

	var seen []uint64
	b.Primes(func(p uint64) bool {
		seen = append(seen, p)
		return len(seen) < 3
	})

	require.Equal(t, []uint64{2, 3, 5}, seen)
}

func TestSieveObservedReportsCrossedPrimes(t *testing.T) {
	b := NewBuffer(6)

	var observed []uint64
	b.SieveObserved(func(p, scanned, total uint64) {
		observed = append(observed, p)
		require.LessOrEqual(t, scanned, total)
	})

	// The cutoff for power 6 is isqrt(8)+1 = 3 bytes, so elimination is
	// driven by every prime below 24.
	require.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23}, observed)
}

func TestSieveIsIdempotent(t *testing.T) {
	once := NewBuffer(8)
	once.Sieve()

	twice := NewBuffer(8)
	twice.Sieve()
	twice.Sieve()

	require.Equal(t, []byte(once), []byte(twice))
}

func TestIsqrt(t *testing.T) {
	cases := map[uint64]uint64{
		0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 8: 2, 9: 3,
		15: 3, 16: 4, 24: 4, 25: 5, 1 << 20: 1 << 10,
		(1 << 20) - 1: (1 << 10) - 1,
	}

	for n, want := range cases {
		require.Equal(t, want, isqrt(n), "isqrt(%d)", n)
	}
}
