package rsync

import "testing"

// TestIndexRoundTrip verifies invariant 6: indexing a ChecksumStore yields a
// WeakIndex whose union of values equals the set of (strong, index) pairs in
// the store.
func TestIndexRoundTrip(t *testing.T) {
	data := []byte("hello world I am testing index creation")
	store, err := Sign(data, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	index := Index(store)

	for i, checksum := range store {
		bucket, ok := index.lookup(checksum.Weak)
		if !ok {
			t.Fatalf("checksum %d: weak hash %d not present in index", i, checksum.Weak)
		}

		found := false
		for _, entry := range bucket {
			if entry.strong == checksum.Strong && entry.index == uint64(i) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("checksum %d: (strong, index) pair not found in its bucket", i)
		}
	}
}
