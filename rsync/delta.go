package rsync

// Delta is the persistent form of a completed DeltaStore plus the chunk
// size it was computed against. It must match the ChunkSize of the
// Signature it was computed from.
type Delta struct {
	// ChunkSize is the chunk size used to compute this delta.
	ChunkSize uint64
	// Blocks maps old-file chunk index to its DiffBlock.
	Blocks DeltaStore
}

// Compute runs the Match/Extend stages against signature and new, producing
// a complete Delta: every chunk index in signature's checksum store will
// have an entry, either a confirmed match (with its preceding literals) or
// one marked Missing.
func Compute(signature *Signature, new []byte) (*Delta, error) {
	matches, err := Match(new, signature.Index(), signature.ChunkSize)
	if err != nil {
		return nil, err
	}

	complete := Extend(matches, signature.Checksums, signature.ChunkSize)
	return &Delta{ChunkSize: signature.ChunkSize, Blocks: complete}, nil
}

// EnsureValid verifies that the Delta's invariants are respected: a nil
// Delta is invalid, and every block must satisfy the start/end/missing
// invariants from the package-level specification.
func (d *Delta) EnsureValid() error {
	if d == nil {
		return newError(KindSerializeError, nil, "nil delta")
	}
	if d.ChunkSize == 0 {
		return newError(KindIncompatibleChunkSize, nil, "delta has zero chunk size")
	}
	for index, block := range d.Blocks {
		if block.End != block.Start+d.ChunkSize {
			return newError(
				KindSerializeError, nil,
				"diff block end does not equal start plus chunk size",
			)
		}
		if block.Start != index*d.ChunkSize {
			return newError(
				KindSerializeError, nil,
				"diff block start does not match its chunk index",
			)
		}
		if block.Missing && len(block.Literals) != 0 {
			return newError(
				KindSerializeError, nil,
				"missing diff block carries non-empty literals",
			)
		}
	}
	return nil
}
