// Package primesio reads and writes the primes.txt wire format: decimal
// ASCII integers in strictly ascending order, one per line, terminated by a
// single '\n', with no header, trailer, or blank lines.
package primesio

import (
	"bufio"
	"io"
	"strconv"
)

type Writer struct {
	w     *bufio.Writer
	count uint64
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WritePrime appends one line for p. Writes are buffered; nothing is
// guaranteed on disk until Flush.
func (w *Writer) WritePrime(p uint64) error {
	var buf [21]byte // fits a uint64 plus the newline

	line := strconv.AppendUint(buf[:0], p, 10)
	line = append(line, '\n')

	if _, err := w.w.Write(line); err != nil {
		return err
	}

	w.count++
	return nil
}

// Flush drains the buffer to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Count returns the number of lines written so far.
func (w *Writer) Count() uint64 {
	return w.count
}
