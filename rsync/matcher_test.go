package rsync

import (
	"errors"
	"testing"
)

// computeDelta runs the full Sign -> Index -> Match -> Extend pipeline,
// mirroring the CLI's delta pass.
func computeDelta(t *testing.T, old, new []byte, chunkSize uint64) DeltaStore {
	t.Helper()

	store, err := Sign(old, chunkSize)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	index := Index(store)

	matches, err := Match(new, index, chunkSize)
	if err != nil {
		t.Fatalf("match failed: %v", err)
	}

	return Extend(matches, store, chunkSize)
}

func expectLiterals(t *testing.T, delta DeltaStore, index uint64, literals string) {
	t.Helper()

	block, ok := delta[index]
	if !ok {
		t.Fatalf("expected a diff block at index %d", index)
	}
	if block.Missing {
		t.Fatalf("diff block at index %d is marked missing", index)
	}
	if string(block.Literals) != literals {
		t.Fatalf("diff block at index %d: got literals %q, want %q", index, block.Literals, literals)
	}
}

// TestScenarioChunkChange covers a chunk whose interior bytes changed.
func TestScenarioChunkChange(t *testing.T) {
	old := []byte("i am here guys how are you doing this is a small test for chunk split and rolling hash")
	new := []byte("i here guys how are you doing this is a mall test chunk split and rolling hash")

	delta := computeDelta(t, old, new, 16)

	expectLiterals(t, delta, 1, "i here guys h")
	expectLiterals(t, delta, 4, " this is a mall test chunk ")
}

// TestScenarioInsertion covers bytes inserted at a chunk boundary.
func TestScenarioInsertion(t *testing.T) {
	old := []byte("i am here guys how are you doing this is a small test for chunk split and rolling hash")
	new := []byte("i am here guys how are you doingadded this is a small test for chunk split and rolling hash")

	delta := computeDelta(t, old, new, 16)

	expectLiterals(t, delta, 2, "added")
}

// TestScenarioDeletion covers whole chunks removed from the start and the
// middle of the file: the blocks for the removed chunks come back missing.
func TestScenarioDeletion(t *testing.T) {
	old := []byte("i am here guys how are you doing this is a small test for chunk split and rolling hash")
	new := []byte("ow are you doing this is a small split and rolling hash")

	delta := computeDelta(t, old, new, 16)

	first, ok := delta[0]
	if !ok {
		t.Fatal("expected a diff block at index 0")
	}
	third, ok := delta[3]
	if !ok {
		t.Fatal("expected a diff block at index 3")
	}

	if !first.Missing || first.Start != 0 || first.End != 16 {
		t.Fatalf("index 0: got %+v, want missing=true start=0 end=16", first)
	}
	if !third.Missing || third.Start != 48 || third.End != 64 {
		t.Fatalf("index 3: got %+v, want missing=true start=48 end=64", third)
	}
}

// TestScenarioShift covers bytes inserted and removed at different points,
// shifting some chunks out of alignment while leaving others intact.
func TestScenarioShift(t *testing.T) {
	old := []byte("i am here guys how are you doing this is a small test for chunk split and rolling hash")
	new := []byte("i am here guys   how are you doing    test for chunk split and rolling hash")

	delta := computeDelta(t, old, new, 16)

	expectLiterals(t, delta, 1, "i am here guys   h")
	expectLiterals(t, delta, 3, "   ")
}

// TestScenarioIdentity covers the case where new and old are identical.
func TestScenarioIdentity(t *testing.T) {
	data := []byte("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ+/")
	if len(data) != 64 {
		t.Fatalf("test fixture must be 64 bytes, got %d", len(data))
	}

	delta := computeDelta(t, data, data, 16)

	if len(delta) != 4 {
		t.Fatalf("got %d diff blocks, want 4", len(delta))
	}
	for i := uint64(0); i < 4; i++ {
		block, ok := delta[i]
		if !ok {
			t.Fatalf("expected a diff block at index %d", i)
		}
		if block.Missing {
			t.Fatalf("index %d: unexpectedly missing", i)
		}
		if len(block.Literals) != 0 {
			t.Fatalf("index %d: got literals %q, want empty", i, block.Literals)
		}
		if block.Start != i*16 || block.End != i*16+16 {
			t.Fatalf("index %d: got start=%d end=%d, want start=%d end=%d", i, block.Start, block.End, i*16, i*16+16)
		}
	}
}

// TestScenarioChunkSizeMismatch covers a delta pass invoked with a chunk
// size that doesn't match the one recorded in the signature.
func TestScenarioChunkSizeMismatch(t *testing.T) {
	old := []byte("i am here guys how are you doing this is a small test for chunk split and rolling hash")

	signature, err := NewSignature(old, 16)
	if err != nil {
		t.Fatalf("unexpected error building signature: %v", err)
	}

	err = signature.CheckChunkSize(32)
	if err == nil {
		t.Fatal("expected a chunk size mismatch error")
	}

	var rsErr *Error
	if !errors.As(err, &rsErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if rsErr.Kind != KindIncompatibleChunkSize {
		t.Fatalf("got kind %v, want IncompatibleChunkSize", rsErr.Kind)
	}
}

// TestIndexCorruptedOnDuplicateChunks exercises the documented
// IndexCorrupted path: two chunks sharing both weak and strong hashes
// (identical bytes) make the matcher's bucket filter ambiguous.
func TestIndexCorruptedOnDuplicateChunks(t *testing.T) {
	chunk := []byte("0123456789abcdef")
	old := append(append([]byte{}, chunk...), chunk...)
	new := append(append([]byte{}, chunk...), chunk...)

	store, err := Sign(old, 16)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	index := Index(store)

	_, err = Match(new, index, 16)
	if err == nil {
		t.Fatal("expected IndexCorrupted error for duplicate chunks")
	}

	var rsErr *Error
	if !errors.As(err, &rsErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if rsErr.Kind != KindIndexCorrupted {
		t.Fatalf("got kind %v, want IndexCorrupted", rsErr.Kind)
	}
}
