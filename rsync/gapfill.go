package rsync

// Extend fills in a DiffBlock marked Missing for every chunk index in store
// that delta does not already cover, completing the DeltaStore so its keys
// span exactly [0, len(store)). Extend does not mutate delta; it returns a
// new, complete DeltaStore. It is idempotent: calling it again on its own
// output (against the same store and chunkSize) is a no-op.
func Extend(delta DeltaStore, store ChecksumStore, chunkSize uint64) DeltaStore {
	complete := make(DeltaStore, len(store))
	for k, v := range delta {
		complete[k] = v
	}

	for i := range store {
		index := uint64(i)
		if _, ok := complete[index]; !ok {
			complete[index] = DiffBlock{
				Start:   index * chunkSize,
				End:     index*chunkSize + chunkSize,
				Missing: true,
			}
		}
	}
	return complete
}
