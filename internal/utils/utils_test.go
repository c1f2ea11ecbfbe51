package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		// Valid cases
		{"500", 500, false},
		{"500B", 500, false},
		{"10k", 10 * 1024, false},
		{"10K", 10 * 1024, false},
		{"10kb", 10 * 1024, false},
		{"10KB", 10 * 1024, false},
		{"4m", 4 * 1024 * 1024, false},
		{"4MB", 4 * 1024 * 1024, false},
		{"1g", 1 * 1024 * 1024 * 1024, false},
		{"1GB", 1 * 1024 * 1024 * 1024, false},
		{" 1048580 ", 1048580, false},
		{"0", 0, false},
		{"0KB", 0, false},

		// Invalid cases
		{"", 0, true},
		{"-100", 0, true},
		{"10P", 0, true},
		{"KB", 0, true},
		{"10.5K", 0, true},
		{"abc", 0, true},
		{"10 M B", 0, true},
		{"1 0 K B", 0, true},
		{"99999999999999999999", 0, true},
		{"9999999999999G", 0, true},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Input_%s", tc.input), func(t *testing.T) {
			got, err := ParseSize(tc.input)

			if (err != nil) != tc.wantErr {
				t.Errorf("ParseSize(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
				return
			}
			if !tc.wantErr && got != tc.expected {
				t.Errorf("ParseSize(%q) = %d, want %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestLegacyGBToBytes(t *testing.T) {
	tests := []struct {
		gb   float64
		want int64
	}{
		{1, 1048576}, // MiB, not GiB
		{0.5, 524288},
		{0, 0},
		{2, 2 * MiB},
	}
	for _, tc := range tests {
		if got := LegacyGBToBytes(tc.gb); got != tc.want {
			t.Errorf("LegacyGBToBytes(%v) = %d, want %d", tc.gb, got, tc.want)
		}
	}
}

func TestFormatGB(t *testing.T) {
	tests := map[float64]string{1: "1", 0.5: "0.5", 0: "0", 2.25: "2.25"}
	for in, want := range tests {
		if got := FormatGB(in); got != want {
			t.Errorf("FormatGB(%v) = %q, want %q", in, got, want)
		}
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, errors.New("write failed") }

func TestWriteRandomBytes(t *testing.T) {
	sizes := []int64{0, 1, 64 * 1024, 64*1024 + 3}
	for _, n := range sizes {
		t.Run(fmt.Sprintf("Size_%d", n), func(t *testing.T) {
			var buf bytes.Buffer
			src := strings.NewReader(strings.Repeat("z", int(n)))
			if err := WriteRandomBytes(&buf, src, n); err != nil {
				t.Fatalf("WriteRandomBytes: %v", err)
			}
			if int64(buf.Len()) != n {
				t.Errorf("wrote %d bytes, want %d", buf.Len(), n)
			}
		})
	}

	t.Run("SourceExhausted", func(t *testing.T) {
		err := WriteRandomBytes(&bytes.Buffer{}, strings.NewReader("abc"), 10)
		if err == nil {
			t.Error("expected error when source runs dry")
		}
	})

	t.Run("WriterFails", func(t *testing.T) {
		err := WriteRandomBytes(errWriter{}, strings.NewReader("abc"), 3)
		if err == nil {
			t.Error("expected writer error")
		}
	})
}
