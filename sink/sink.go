// Package sink writes rendered skylines and animation frames out of the
// process: PNG encoding, numbered frame files, a GIF preview and progress.
package sink

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// ErrLocked means another run holds the frames directory.
var ErrLocked = errors.New("frames directory is locked by another run")

const lockName = ".lock"

var encoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(encoder.Encode(w, img), "encode png")
}

// WriteImage encodes img as PNG into the file at path and returns the
// number of bytes written.
func WriteImage(path string, img image.Image) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "could not create file")
	}
	cw := &countingWriter{w: f}
	bw := bufio.NewWriter(cw)

	if err := EncodePNG(bw, img); err != nil {
		f.Close()
		return 0, errors.Wrapf(err, "write %s", path)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return 0, errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return 0, errors.Wrapf(err, "close %s", path)
	}
	return cw.n, nil
}

// FrameName is the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("Frame%04d.png", i)
}

// Dir writes frames as numbered PNG files into one directory. It holds an
// exclusive lock on the directory until Close. Write is safe for concurrent
// use with distinct indices.
type Dir struct {
	path string
	lock *flock.Flock

	frames atomic.Int64
	bytes  atomic.Int64
}

// OpenDir creates path if needed and locks it.
func OpenDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create frames directory %s", path)
	}

	lock := flock.New(filepath.Join(path, lockName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "lock %s", path)
	}
	if !ok {
		return nil, errors.Wrap(ErrLocked, path)
	}
	return &Dir{path: path, lock: lock}, nil
}

func (d *Dir) Path() string {
	return d.path
}

// Write stores frame i, replacing any earlier file for the same index.
func (d *Dir) Write(i int, img image.Image) error {
	n, err := WriteImage(filepath.Join(d.path, FrameName(i)), img)
	if err != nil {
		return errors.Wrapf(err, "frame %d", i)
	}
	d.frames.Add(1)
	d.bytes.Add(n)
	return nil
}

// Stats reports frames and bytes written so far.
func (d *Dir) Stats() (frames, bytes int64) {
	return d.frames.Load(), d.bytes.Load()
}

// Close releases the directory lock.
func (d *Dir) Close() error {
	return errors.Wrap(d.lock.Unlock(), "unlock frames directory")
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
