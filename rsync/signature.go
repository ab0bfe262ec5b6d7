package rsync

// Signature is the persistent form of a ChecksumStore plus the chunk size
// used to produce it. It is what a signature-pass invocation writes to disk
// and a delta-pass invocation reads back.
type Signature struct {
	// ChunkSize is the chunk size used to partition the old file.
	ChunkSize uint64
	// Checksums is the ordered per-chunk checksum sequence.
	Checksums ChecksumStore
}

// NewSignature computes a Signature for old, partitioning it into chunks of
// chunkSize bytes.
func NewSignature(old []byte, chunkSize uint64) (*Signature, error) {
	checksums, err := Sign(old, chunkSize)
	if err != nil {
		return nil, err
	}
	return &Signature{ChunkSize: chunkSize, Checksums: checksums}, nil
}

// EnsureValid verifies that the Signature's invariants are respected: a nil
// Signature is invalid, and a non-zero chunk size must have produced at
// least one checksum.
func (s *Signature) EnsureValid() error {
	if s == nil {
		return newError(KindSerializeError, nil, "nil signature")
	}
	if s.ChunkSize == 0 {
		return newError(KindIncompatibleChunkSize, nil, "signature has zero chunk size")
	}
	if len(s.Checksums) == 0 {
		return newError(KindIncompatibleDataSize, nil, "signature has no checksums")
	}
	return nil
}

// CheckChunkSize verifies that chunkSize matches the chunk size recorded in
// the signature, returning a KindIncompatibleChunkSize error if not. This is
// the check a delta-pass invocation must perform before calling Match.
func (s *Signature) CheckChunkSize(chunkSize uint64) error {
	if chunkSize != s.ChunkSize {
		return newError(
			KindIncompatibleChunkSize, nil,
			"chunk size does not match the one recorded in the signature",
		)
	}
	return nil
}

// Index builds the WeakIndex for this signature's checksums.
func (s *Signature) Index() *WeakIndex {
	return Index(s.Checksums)
}
