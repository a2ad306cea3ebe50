package run

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tmarsh/eratos/internal/primesio"
	"github.com/tmarsh/eratos/internal/sieve"
)

// Status represents the phases a sieve run moves through.
type Status string

const (
	StatusStarted   Status = "started"
	StatusSieving   Status = "sieving"
	StatusWriting   Status = "writing"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Session holds the live state of one sieve run: which phase it is in and
// how far along. Execute mutates it from its own goroutine; front-ends read
// consistent snapshots from any other.
type Session struct {
	mu sync.RWMutex
	// Exponent of the run's upper bound 2^power
	power uint
	// Where the prime list is written
	outputPath string
	// Current phase
	status Status
	// Last prime whose multiples were crossed out
	currentPrime uint64
	// Elimination progress, in cutoff bytes scanned / total
	scanned, total uint64
	// Number of primes written to the output so far
	primesWritten uint64
	// Terminal error, set iff status is StatusFailed
	err error
	// Wall-clock bounds of the run
	startedAt  time.Time
	finishedAt time.Time
}

// Snapshot is a read-only view of a session at one instant.
type Snapshot struct {
	Power         uint
	OutputPath    string
	Status        Status
	CurrentPrime  uint64
	SieveFraction float64
	PrimesWritten uint64
	Err           error
	Elapsed       time.Duration
}

func NewSession(power uint, outputPath string) *Session {
	return &Session{
		power:      power,
		outputPath: outputPath,
		status:     StatusStarted,
	}
}

// Execute performs the whole run: allocate the bit buffer, sieve it, then
// stream the surviving candidates to the output file. It returns the first
// error encountered, which is also recorded on the session.
func (s *Session) Execute() error {
	s.transition(StatusSieving)

	buf := sieve.NewBuffer(s.power)
	buf.SieveObserved(s.observeCrossing)

	s.transition(StatusWriting)

	if err := s.writePrimes(buf); err != nil {
		s.fail(err)
		return err
	}

	s.transition(StatusCompleted)
	return nil
}

// Snapshot returns a consistent view of the session's state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var fraction float64
	if s.total > 0 {
		fraction = float64(s.scanned) / float64(s.total)
	}
	if s.status == StatusCompleted {
		fraction = 1
	}

	elapsed := time.Duration(0)
	if !s.startedAt.IsZero() {
		end := s.finishedAt
		if end.IsZero() {
			end = time.Now()
		}
		elapsed = end.Sub(s.startedAt)
	}

	return Snapshot{
		Power:         s.power,
		OutputPath:    s.outputPath,
		Status:        s.status,
		CurrentPrime:  s.currentPrime,
		SieveFraction: fraction,
		PrimesWritten: s.primesWritten,
		Err:           s.err,
		Elapsed:       elapsed,
	}
}

/////////////// Private ///////////////

func (s *Session) writePrimes(buf sieve.Buffer) error {
	f, err := os.Create(s.outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.outputPath, err)
	}

	w := primesio.NewWriter(f)

	var werr error
	buf.Primes(func(p uint64) bool {
		if werr = w.WritePrime(p); werr != nil {
			return false
		}

		s.mu.Lock()
		s.primesWritten = w.Count()
		s.mu.Unlock()

		return true
	})

	if werr == nil {
		werr = w.Flush()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}

	if werr != nil {
		return fmt.Errorf("write %s: %w", s.outputPath, werr)
	}
	return nil
}

func (s *Session) observeCrossing(p, scanned, total uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentPrime = p
	s.scanned = scanned
	s.total = total
}

func (s *Session) transition(next Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.startedAt.IsZero() {
		s.startedAt = time.Now()
	}
	if next == StatusCompleted {
		s.finishedAt = time.Now()
	}

	s.status = next
}

func (s *Session) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusFailed
	s.err = err
	s.finishedAt = time.Now()
}
