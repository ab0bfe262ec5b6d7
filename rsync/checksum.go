package rsync

// ChunkChecksum identifies one chunk of an old file by its weak (rolling)
// hash and its strong (cryptographic) hash. Strong is the Keccak-256 digest
// of the exact bytes whose rolling hash is Weak.
type ChunkChecksum struct {
	// Weak is the 32-bit rolling checksum of the chunk.
	Weak uint32
	// Strong is the Keccak-256 digest of the chunk.
	Strong [strongSize]byte
}

// ChecksumStore is an ordered sequence of ChunkChecksum values. Entry i
// describes bytes [i*C, min((i+1)*C, len)) of the old file that produced it,
// where C is the chunk size recorded alongside the store (see Signature).
// It is produced by Sign and consumed by Index and Extend.
type ChecksumStore []ChunkChecksum

// Sign partitions data into non-overlapping chunks of chunkSize bytes and
// computes a weak/strong checksum pair for each, preserving chunk order.
//
// Sign requires len(data) >= 2*chunkSize, matching the signature-compute
// precondition shared by Match; smaller inputs yield a KindIncompatibleDataSize
// error.
func Sign(data []byte, chunkSize uint64) (ChecksumStore, error) {
	if uint64(len(data)) < 2*chunkSize {
		return nil, newError(
			KindIncompatibleDataSize, nil,
			"input buffer shorter than twice the chunk size",
		)
	}

	var store ChecksumStore
	iterator := newBlockIterator(data, chunkSize)
	for {
		chunk, ok := iterator.next()
		if !ok {
			break
		}

		weak, _, _ := weakHash(chunk)
		strong, err := strongHash(chunk)
		if err != nil {
			return nil, err
		}

		store = append(store, ChunkChecksum{Weak: weak, Strong: strong})
	}
	return store, nil
}
