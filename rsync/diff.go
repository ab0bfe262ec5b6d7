package rsync

// DiffBlock describes, for a single chunk index of the old file, either the
// literal bytes of the new file that preceded a confirmed match of that
// chunk, or that the chunk has no counterpart in the new file at all.
type DiffBlock struct {
	// Start is the byte offset of this chunk within the old file (i*C).
	Start uint64
	// End is Start + the chunk size.
	End uint64
	// Missing is true if no matching chunk was found in the new file.
	Missing bool
	// Literals are the new-file bytes immediately preceding this chunk's
	// match that weren't covered by any earlier match. Always empty when
	// Missing is true.
	Literals []byte
}

// DeltaStore maps old-file chunk index to the DiffBlock describing it. Keys
// cover exactly [0, N) once Extend has run; before that, only matched
// chunks are present.
type DeltaStore map[uint64]DiffBlock
