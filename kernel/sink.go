package kernel

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// DenseFileScoreSink writes each named score vector to its own flat
// binary file inside Dir: slot i lives at byte offset 4*i, encoded as a
// little-endian float32, so the file can be read back with a plain
// mmap-and-cast without any framing. Writes are atomic: the vector is
// built in a temp file and renamed into place only once fully written.
type DenseFileScoreSink struct {
	Dir string
}

// WriteVector implements ScoreSink.
func (s *DenseFileScoreSink) WriteVector(name string, v []float32) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("dense file score sink: create dir %s: %w", s.Dir, err)
	}

	path := filepath.Join(s.Dir, name+".f32")
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("dense file score sink: create %s: %w", tmp, err)
	}
	defer f.Close()

	buf := make([]byte, 4*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(x))
	}
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("dense file score sink: write %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("dense file score sink: close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("dense file score sink: rename %s to %s: %w", tmp, path, err)
	}
	return nil
}
