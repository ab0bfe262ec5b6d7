package rsync

import "bytes"

// Match scans newData byte-by-byte using a rolling weak hash, confirms
// candidates against index with a strong hash, and returns a DeltaStore
// recording the literal bytes preceding each confirmed match.
//
// Match requires len(newData) >= 2*chunkSize, matching Sign's precondition;
// smaller inputs yield a KindIncompatibleDataSize error.
//
// A weak hit whose bucket has no strong-hash survivor is treated as a miss.
// A weak hit whose bucket filters down to more than one strong-hash survivor
// is a KindIndexCorrupted error: the design assumes distinct (weak, strong)
// pairs per old-file chunk, and a real file
// containing two identical chunks will violate that and trigger this error
// (see the package-level discussion of this open question in DESIGN.md).
// This is deliberate, not a gap: a "pick the lowest surviving index"
// alternative was considered and rejected in favor of surfacing the
// violation to the caller.
func Match(newData []byte, index *WeakIndex, chunkSize uint64) (DeltaStore, error) {
	if uint64(len(newData)) < 2*chunkSize {
		return nil, newError(
			KindIncompatibleDataSize, nil,
			"input buffer shorter than twice the chunk size",
		)
	}

	store := make(DeltaStore)
	var literals []byte

	iterator := newSlidingIterator(newData, chunkSize)
	window, _, ok := iterator.next()
	if !ok {
		return store, nil
	}
	weak, r1, r2 := weakHash(window)

	for {
		matched := false
		var matchedIndex uint64

		if bucket, present := index.lookup(weak); present {
			strong, err := strongHash(window)
			if err != nil {
				return nil, err
			}

			survivors := 0
			for _, entry := range bucket {
				if bytes.Equal(entry.strong[:], strong[:]) {
					survivors++
					matchedIndex = entry.index
				}
			}

			switch {
			case survivors == 1:
				matched = true
			case survivors == 0:
				// Weak hit, strong miss: treated the same as a weak miss.
			default:
				return nil, newError(
					KindIndexCorrupted, nil,
					"weak-hit bucket yielded more than one strong-hash survivor",
				)
			}
		}

		if matched {
			store[matchedIndex] = DiffBlock{
				Start:    matchedIndex * chunkSize,
				End:      matchedIndex*chunkSize + chunkSize,
				Missing:  false,
				Literals: append([]byte(nil), literals...),
			}
			literals = nil

			iterator.skip(1)
			window, _, ok = iterator.next()
			if !ok {
				break
			}
			weak, r1, r2 = weakHash(window)
			continue
		}

		// Weak (or confirmed) miss: the leftmost byte of the window becomes
		// a literal, and we advance by a single byte.
		literals = append(literals, window[0])

		nextWindow, _, ok := iterator.next()
		if !ok {
			break
		}
		weak, r1, r2 = rollWeakHash(r1, r2, chunkSize, window[0], nextWindow[chunkSize-1])
		window = nextWindow
	}

	// Trailing literals with no following match are discarded; see the
	// open-question discussion in DESIGN.md.
	return store, nil
}
