package primesio

import (
	"bytes"
	"testing"
)

func TestWriter(t *testing.T) {
	testCases := []struct {
		name     string
		input    []uint64
		expected string
	}{
		{
			name:     "no values",
			input:    nil,
			expected: "",
		},
		{
			name:     "single value",
			input:    []uint64{2},
			expected: "2\n",
		},
		{
			name:     "first primes",
			input:    []uint64{2, 3, 5, 7},
			expected: "2\n3\n5\n7\n",
		},
		{
			name:     "large value",
			input:    []uint64{18446744073709551557},
			expected: "18446744073709551557\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)

			for _, p := range tc.input {
				if err := w.WritePrime(p); err != nil {
					t.Fatalf("WritePrime(%d): %v", p, err)
				}
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush: %v", err)
			}

			if got := buf.String(); got != tc.expected {
				t.Errorf("output = %q, want %q", got, tc.expected)
			}
			if got := w.Count(); got != uint64(len(tc.input)) {
				t.Errorf("Count() = %d, want %d", got, len(tc.input))
			}
		})
	}
}

func TestWriterBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WritePrime(2); err != nil {
		t.Fatalf("WritePrime: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no bytes before Flush, got %d", buf.Len())
	}

	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := buf.String(); got != "2\n" {
		t.Errorf("output = %q, want %q", got, "2\n")
	}
}
