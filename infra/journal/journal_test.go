package journal

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestJournal(t *testing.T, dir string) *Journal {
	t.Helper()
	j, err := Open(Config{Dir: dir, SegmentSize: 1 << 20})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return j
}

func TestAppendReplayRoundtrip(t *testing.T) {
	dir := t.TempDir()
	j := openTestJournal(t, dir)

	create := CreatePayload{
		OrderID: 1, Maker: "alice",
		SellAsset: "X", BuyAsset: "Y",
		SellAmount: 100, BuyAmount: 50,
	}
	if err := j.Append(NewRecord(RecordCreate, 1, create.Encode())); err != nil {
		t.Fatalf("append create: %v", err)
	}
	if err := j.Append(NewRecord(RecordFill, 2, EncodeOrderRef(1))); err != nil {
		t.Fatalf("append fill: %v", err)
	}
	_ = j.Close()

	var got []*Record
	last, err := Replay(dir, 0, func(r *Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if last != 2 || len(got) != 2 {
		t.Fatalf("replay lastSeq=%d records=%d", last, len(got))
	}

	p, err := DecodeCreate(got[0].Data)
	if err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if p != create {
		t.Errorf("create payload got=%+v want=%+v", p, create)
	}
	id, err := DecodeOrderRef(got[1].Data)
	if err != nil || id != 1 {
		t.Errorf("order ref got=%d err=%v", id, err)
	}
}

func TestReplaySkipsSnapshottedRecords(t *testing.T) {
	dir := t.TempDir()
	j := openTestJournal(t, dir)
	for seq := uint64(1); seq <= 5; seq++ {
		if err := j.Append(NewRecord(RecordCancel, seq, EncodeOrderRef(seq))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	_ = j.Close()

	var seqs []uint64
	_, err := Replay(dir, 3, func(r *Record) error {
		seqs = append(seqs, r.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != 4 || seqs[1] != 5 {
		t.Errorf("expected seqs [4 5], got %v", seqs)
	}
}

func TestReplayDetectsCorruption(t *testing.T) {
	dir := t.TempDir()
	j := openTestJournal(t, dir)
	if err := j.Append(NewRecord(RecordFill, 1, EncodeOrderRef(7))); err != nil {
		t.Fatalf("append: %v", err)
	}
	_ = j.Close()

	files, _ := filepath.Glob(filepath.Join(dir, "segment-*.jnl"))
	if len(files) != 1 {
		t.Fatalf("expected one segment, got %v", files)
	}
	raw, _ := os.ReadFile(files[0])
	raw[len(raw)-6] ^= 0xff // flip a payload bit
	_ = os.WriteFile(files[0], raw, 0o644)

	_, err := Replay(dir, 0, func(*Record) error { return nil })
	if err == nil {
		t.Error("expected crc error, got nil")
	}
}

func TestReopenResumesSegment(t *testing.T) {
	dir := t.TempDir()
	j := openTestJournal(t, dir)
	_ = j.Append(NewRecord(RecordFill, 1, EncodeOrderRef(1)))
	_ = j.Close()

	j = openTestJournal(t, dir)
	_ = j.Append(NewRecord(RecordFill, 2, EncodeOrderRef(2)))
	_ = j.Close()

	var n int
	last, err := Replay(dir, 0, func(*Record) error { n++; return nil })
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if n != 2 || last != 2 {
		t.Errorf("after reopen: records=%d lastSeq=%d", n, last)
	}
}

func TestReopenAfterTruncateKeepsSegmentOrder(t *testing.T) {
	dir := t.TempDir()
	// Tiny segments so every record rotates.
	j, err := Open(Config{Dir: dir, SegmentSize: 1})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for seq := uint64(1); seq <= 3; seq++ {
		_ = j.Append(NewRecord(RecordCancel, seq, EncodeOrderRef(seq)))
	}
	// Drops the two oldest segments; the survivors keep their numbers.
	if err := j.TruncateBefore(2); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	_ = j.Close()

	// A restart must resume numbering past the survivors, not restart
	// from the file count: a lower-numbered segment would sort before
	// the old records and break replay ordering.
	j = openTestJournal(t, dir)
	if err := j.Append(NewRecord(RecordCancel, 4, EncodeOrderRef(4))); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	_ = j.Close()

	var seqs []uint64
	last, err := Replay(dir, 0, func(r *Record) error {
		seqs = append(seqs, r.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if last != 4 || len(seqs) != 2 || seqs[0] != 3 || seqs[1] != 4 {
		t.Errorf("expected seqs [3 4], got %v (last=%d)", seqs, last)
	}
}

func TestTruncateBefore(t *testing.T) {
	dir := t.TempDir()
	// Tiny segments so every record rotates.
	j, err := Open(Config{Dir: dir, SegmentSize: 1})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	for seq := uint64(1); seq <= 3; seq++ {
		_ = j.Append(NewRecord(RecordCancel, seq, EncodeOrderRef(seq)))
	}
	if err := j.TruncateBefore(2); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	_ = j.Close()

	var seqs []uint64
	if _, err := Replay(dir, 0, func(r *Record) error {
		seqs = append(seqs, r.Seq)
		return nil
	}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(seqs) != 1 || seqs[0] != 3 {
		t.Errorf("expected only seq 3 to survive, got %v", seqs)
	}
}
