// Package cli is the batch shell around the sieve: it selects the exponent
// from argv, runs one session, and maps failures to exit codes.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tmarsh/eratos/internal/run"
)

const (
	// DefaultPower is used whenever argv does not carry a usable exponent.
	DefaultPower uint = 20

	// MinPower keeps the buffer at least one byte.
	MinPower uint = 3

	// MaxPower caps the buffer at 128 MiB and keeps the crosser's start
	// offset arithmetic comfortably inside uint64.
	MaxPower uint = 30
)

// OutputPath is where the prime list lands, relative to the working
// directory.
const OutputPath = "./primes.txt"

// Run executes one batch run and returns the process exit code. Diagnostics
// go to stderr; the prime list goes to OutputPath.
func Run(args []string, stderr io.Writer) int {
	power := SelectPower(args, stderr)
	fmt.Fprintf(stderr, "power = %d\n", power)

	session := run.NewSession(power, OutputPath)
	if err := session.Execute(); err != nil {
		fmt.Fprintf(stderr, "eratos: %v\n", err)
		return 1
	}

	return 0
}

// SelectPower decides the exponent for a run. Exactly one argument that
// parses as an integer in [MinPower, MaxPower] wins; any other shape of
// argv falls back to DefaultPower, with a one-line diagnostic when an
// argument was supplied but unusable.
func SelectPower(args []string, stderr io.Writer) uint {
	if len(args) == 0 {
		return DefaultPower
	}
	if len(args) > 1 {
		fmt.Fprintln(stderr, "expected a single power argument")
		return DefaultPower
	}

	power, err := strconv.Atoi(args[0])
	if err != nil || power < int(MinPower) {
		fmt.Fprintln(stderr, "invalid value for power")
		return DefaultPower
	}
	if power > int(MaxPower) {
		fmt.Fprintf(stderr, "power %d exceeds maximum %d\n", power, MaxPower)
		return DefaultPower
	}

	return uint(power)
}
