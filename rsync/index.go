package rsync

// weakIndexEntry is a single bucket entry: the strong hash and originating
// chunk index of one ChunkChecksum sharing a weak hash with others in the
// same bucket.
type weakIndexEntry struct {
	strong [strongSize]byte
	index  uint64
}

// WeakIndex is a multimap from weak hash to the set of (strong hash, chunk
// index) pairs sharing that weak hash. Multiple entries per bucket are
// expected (weak-hash collisions) and are preserved in insertion order. It
// is produced by Index and consulted read-only by Match.
type WeakIndex struct {
	buckets map[uint32][]weakIndexEntry
}

// Index builds a WeakIndex from a ChecksumStore, inserting (strong_i, i) into
// the bucket keyed by weak_i for every entry at position i.
func Index(store ChecksumStore) *WeakIndex {
	buckets := make(map[uint32][]weakIndexEntry, len(store))
	for i, checksum := range store {
		buckets[checksum.Weak] = append(buckets[checksum.Weak], weakIndexEntry{
			strong: checksum.Strong,
			index:  uint64(i),
		})
	}
	return &WeakIndex{buckets: buckets}
}

// lookup returns the bucket for a weak hash, and whether any entry exists
// for it at all.
func (w *WeakIndex) lookup(weak uint32) ([]weakIndexEntry, bool) {
	entries, ok := w.buckets[weak]
	return entries, ok
}
