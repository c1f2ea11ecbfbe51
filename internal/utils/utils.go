package utils

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	KiB int64 = 1024
	MiB       = 1024 * KiB
	GiB       = 1024 * MiB
)

// LegacyGBToBytes converts a "GB" figure the way the legacy fixture script
// did: gb * 1024 * 1024. That is the mebibyte formula, so 1 "GB" yields 1 MiB.
// Kept as-is so default output stays byte-identical; use ParseSize for exact sizes.
func LegacyGBToBytes(gb float64) int64 {
	return int64(gb * 1024 * 1024)
}

// FormatGB renders a GB figure for the confirmation message ("1", "0.5").
func FormatGB(gb float64) string {
	return strconv.FormatFloat(gb, 'f', -1, 64)
}

// ParseSize parses strings like "500", "10K", "4MB", "1G" into a number of bytes.
func ParseSize(sizeStr string) (int64, error) {
	sizeStr = strings.ToUpper(strings.TrimSpace(sizeStr))
	if sizeStr == "" {
		return 0, errors.New("size string is empty")
	}
	// Suffix multipliers
	suffixes := map[string]int64{
		"":  1,
		"B": 1,
		"K": KiB, "KB": KiB,
		"M": MiB, "MB": MiB,
		"G": GiB, "GB": GiB,
	}
	i := strings.IndexFunc(sizeStr, func(r rune) bool { return r < '0' || r > '9' })
	if i < 0 {
		i = len(sizeStr)
	}
	numPart, suffix := sizeStr[:i], sizeStr[i:]
	if numPart == "" {
		return 0, fmt.Errorf("invalid size number in %q", sizeStr)
	}
	mult, ok := suffixes[suffix]
	if !ok {
		return 0, fmt.Errorf("unknown size suffix '%s'", suffix)
	}
	baseVal, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %w", err)
	}
	if baseVal > (1<<63-1)/mult {
		return 0, fmt.Errorf("size %q overflows int64", sizeStr)
	}
	return baseVal * mult, nil
}

// WriteRandomBytes copies n bytes from src to w in 64 KiB chunks.
func WriteRandomBytes(w io.Writer, src io.Reader, n int64) error {
	bufSize := 64 * 1024
	buf := make([]byte, bufSize)
	var written int64
	for written < n {
		toWrite := bufSize
		if n-written < int64(bufSize) {
			toWrite = int(n - written)
		}
		if _, err := io.ReadFull(src, buf[:toWrite]); err != nil {
			return fmt.Errorf("read random bytes: %w", err)
		}
		if _, err := w.Write(buf[:toWrite]); err != nil {
			return err
		}
		written += int64(toWrite)
	}
	return nil
}
