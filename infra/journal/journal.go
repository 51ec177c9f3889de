// Package journal is the engine's append-only log of committed state
// transitions. Records are CRC-framed and written to size-rotated
// segment files; replaying every surviving record rebuilds the order
// table exactly.
package journal

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

type Config struct {
	Dir         string
	SegmentSize int64
}

type Journal struct {
	dir      string
	segSize  int64
	current  *segment
	segIndex int
}

func Open(cfg Config) (*Journal, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create journal dir")
	}

	// Resume appending to the newest existing segment. The index comes
	// from its filename: truncation removes a prefix of segments, so
	// the file count can lag the numbering.
	index := 0
	if files, err := segmentFiles(cfg.Dir); err == nil && len(files) > 0 {
		last := filepath.Base(files[len(files)-1])
		if _, err := fmt.Sscanf(last, "segment-%d.jnl", &index); err != nil {
			return nil, errors.Wrapf(err, "parse segment name %s", last)
		}
	}

	seg, err := openSegment(cfg.Dir, index)
	if err != nil {
		return nil, err
	}

	return &Journal{
		dir:      cfg.Dir,
		segSize:  cfg.SegmentSize,
		current:  seg,
		segIndex: index,
	}, nil
}

// Append frames and writes one record:
// [type:1][seq:8][time:8][len:4][payload][crc:4]
func (j *Journal) Append(r *Record) error {
	payloadLen := uint32(len(r.Data))

	buf := make([]byte, 1+8+8+4+payloadLen+4)
	buf[0] = byte(r.Type)
	binary.BigEndian.PutUint64(buf[1:9], r.Seq)
	binary.BigEndian.PutUint64(buf[9:17], uint64(r.Time))
	binary.BigEndian.PutUint32(buf[17:21], payloadLen)
	copy(buf[21:], r.Data)

	crc := CRC32(buf[:21+payloadLen])
	binary.BigEndian.PutUint32(buf[21+payloadLen:], crc)

	if err := j.current.append(buf); err != nil {
		return errors.Wrap(err, "journal append")
	}

	if j.current.offset >= j.segSize {
		return j.rotate()
	}
	return nil
}

func (j *Journal) rotate() error {
	_ = j.current.close()
	j.segIndex++

	seg, err := openSegment(j.dir, j.segIndex)
	if err != nil {
		return err
	}
	j.current = seg
	return nil
}

// TruncateBefore removes whole segments whose records all have
// seq <= seq. Called after a snapshot covering that sequence.
func (j *Journal) TruncateBefore(seq uint64) error {
	files, err := segmentFiles(j.dir)
	if err != nil {
		return err
	}

	for _, path := range files {
		if path == j.current.file.Name() {
			continue
		}
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			_ = os.Remove(path)
		}
	}
	return nil
}

func (j *Journal) Close() error {
	return j.current.close()
}

func segmentFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "segment-*.jnl"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
