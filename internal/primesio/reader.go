package primesio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	ErrNotAscending = errors.New("primesio: values not strictly ascending")
	ErrBlankLine    = errors.New("primesio: blank line")
)

// Reader parses a primes.txt stream and enforces the format's ordering rule
// as it goes.
type Reader struct {
	r    *bufio.Reader
	last uint64
	seen bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadPrime returns the next value, io.EOF at a clean end of stream, or an
// error describing the first malformed or out-of-order line.
func (r *Reader) ReadPrime() (uint64, error) {
	line, err := r.r.ReadString('\n')
	if err == io.EOF && line == "" {
		return 0, io.EOF
	}
	if err != nil {
		if err == io.EOF {
			return 0, fmt.Errorf("primesio: missing final newline on %q", line)
		}
		return 0, err
	}

	line = line[:len(line)-1]
	if line == "" {
		return 0, ErrBlankLine
	}

	v, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("primesio: bad line %q: %w", line, err)
	}

	if r.seen && v <= r.last {
		return 0, ErrNotAscending
	}
	r.last = v
	r.seen = true

	return v, nil
}

// ReadAll drains the stream into a slice.
func ReadAll(src io.Reader) ([]uint64, error) {
	r := NewReader(src)

	var out []uint64
	for {
		v, err := r.ReadPrime()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}
