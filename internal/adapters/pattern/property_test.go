package pattern

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

func TestWriteBlocks_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pat := rapid.SliceOfN(rapid.Byte(), 1, 8).Draw(t, "pattern")
		reps := rapid.IntRange(1, 16).Draw(t, "reps")
		size := rapid.Int64Range(0, 2048).Draw(t, "size")

		block, err := NewBlock(pat, len(pat)*reps)
		if err != nil {
			t.Fatalf("NewBlock: %v", err)
		}

		var buf bytes.Buffer
		n, err := WriteBlocks(context.Background(), &buf, block, size)
		if err != nil {
			t.Fatalf("WriteBlocks: %v", err)
		}
		if n != size || int64(buf.Len()) != size {
			t.Fatalf("wrote %d bytes (buffer %d), want %d", n, buf.Len(), size)
		}
		for i, b := range buf.Bytes() {
			if want := pat[i%len(pat)]; b != want {
				t.Fatalf("byte %d = %#x, want %#x", i, b, want)
			}
		}
	})
}

func TestGenerate_LengthAndContent(t *testing.T) {
	dir := t.TempDir()
	generator, err := NewWithBlock(DefaultPattern, 64, false)
	if err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "prop.bin")

	rapid.Check(t, func(t *rapid.T) {
		size := rapid.Int64Range(0, 1000).Draw(t, "size")
		if err := generator.Generate(context.Background(), outPath, size); err != nil {
			t.Fatalf("Generate: %v", err)
		}
		got, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}
		if int64(len(got)) != size {
			t.Fatalf("file length %d, want %d", len(got), size)
		}
		for i, b := range got {
			if b != "abcd"[i%4] {
				t.Fatalf("byte %d = %q, want %q", i, b, "abcd"[i%4])
			}
		}
	})
}
