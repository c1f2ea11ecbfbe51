package disk

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

const fileMode = 0o644

// File is an exclusively owned output file. Callers write to it, then Commit
// on success. Close is always safe to defer and releases the handle on every
// path; in atomic mode an uncommitted temp file is removed.
type File struct {
	f      *os.File
	target string
	atomic bool
	closed bool
}

// Create opens path for writing. Without atomic the target is created or
// truncated in place. With atomic the bytes go to a temp file next to the
// target and only replace it on Commit.
func Create(path string, atomic bool) (*File, error) {
	if !atomic {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
		if err != nil {
			return nil, errors.Wrapf(err, "create %s", path)
		}
		return &File{f: f, target: path}, nil
	}

	f, err := createTemp(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create temp for %s", path)
	}
	return &File{f: f, target: path, atomic: true}, nil
}

// createTemp opens a fresh file next to path with the same mode (and umask)
// as the in-place path. os.CreateTemp would fix the mode at 0600.
func createTemp(path string) (*os.File, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	for range 100 {
		name := filepath.Join(dir, "."+base+"."+strconv.FormatUint(rand.Uint64(), 36)+".tmp")
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
		if os.IsExist(err) {
			continue
		}
		return f, err
	}
	return nil, errors.Errorf("no unused temp name in %s", dir)
}

// Name returns the path currently being written.
func (w *File) Name() string {
	return w.f.Name()
}

func (w *File) Write(p []byte) (int, error) {
	n, err := w.f.Write(p)
	if err != nil {
		return n, errors.Wrap(err, "write")
	}
	return n, nil
}

// Commit flushes the file to stable storage and closes it. In atomic mode the
// temp file is then renamed over the target.
func (w *File) Commit() error {
	if w.closed {
		return errors.Errorf("commit %s: file already closed", w.target)
	}
	w.closed = true
	if err := w.f.Sync(); err != nil {
		w.f.Close()
		w.discard()
		return errors.Wrap(err, "fsync")
	}
	if err := w.f.Close(); err != nil {
		w.discard()
		return errors.Wrap(err, "close")
	}
	if w.atomic {
		if err := os.Rename(w.f.Name(), w.target); err != nil {
			w.discard()
			return errors.Wrapf(err, "rename to %s", w.target)
		}
	}
	return nil
}

// Close releases the file if Commit has not run. It is a no-op afterwards.
func (w *File) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.f.Close()
	w.discard()
	return err
}

func (w *File) discard() {
	if w.atomic {
		os.Remove(w.f.Name())
	}
}
