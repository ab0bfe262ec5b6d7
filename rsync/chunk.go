package rsync

// blockIterator yields non-overlapping chunks of a buffer, in block mode:
// B[i*C : min((i+1)*C, len(B))] for i = 0, 1, ... while i*C < len(B). The
// final chunk may be shorter than C and is still yielded.
type blockIterator struct {
	data      []byte
	chunkSize uint64
	index     uint64
}

// newBlockIterator creates a block-mode iterator over data with the given
// chunk size.
func newBlockIterator(data []byte, chunkSize uint64) *blockIterator {
	return &blockIterator{data: data, chunkSize: chunkSize}
}

// next returns the next chunk and true, or nil and false once the buffer is
// exhausted.
func (b *blockIterator) next() ([]byte, bool) {
	start := b.index * b.chunkSize
	if start >= uint64(len(b.data)) {
		return nil, false
	}
	b.index++

	end := start + b.chunkSize
	if end > uint64(len(b.data)) {
		end = uint64(len(b.data))
	}
	return b.data[start:end], true
}

// slidingIterator yields overlapping, fixed-size windows of a buffer with a
// step of one byte: B[i : i+C] for i = 0, 1, ... while i+C <= len(B).
// Windows are always exactly C bytes. skip advances the cursor by whole
// chunks, used by the Matcher to jump past a confirmed match.
type slidingIterator struct {
	data      []byte
	chunkSize uint64
	index     uint64
}

// newSlidingIterator creates a sliding-mode iterator over data with the
// given chunk size.
func newSlidingIterator(data []byte, chunkSize uint64) *slidingIterator {
	return &slidingIterator{data: data, chunkSize: chunkSize}
}

// next returns the next window and its start offset, plus true, or nil/0/
// false once fewer than chunkSize bytes remain.
func (s *slidingIterator) next() ([]byte, uint64, bool) {
	start := s.index
	end := start + s.chunkSize
	if end > uint64(len(s.data)) {
		return nil, 0, false
	}
	s.index++
	return s.data[start:end], start, true
}

// skip advances the cursor by n whole chunks (n*chunkSize positions), minus
// the single-byte step that next() would otherwise take, so that the
// following call to next() yields the window starting immediately after the
// n skipped chunks.
func (s *slidingIterator) skip(n uint64) {
	s.index += n*s.chunkSize - 1
}
