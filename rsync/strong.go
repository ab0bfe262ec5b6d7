package rsync

import (
	"golang.org/x/crypto/sha3"
)

// strongSize is the length in bytes of a strong hash digest.
const strongSize = 32

// strongHash computes the strong (cryptographic) hash of a chunk of bytes,
// used to confirm weak-hash candidates. An error is returned only if the
// underlying hasher ever produces a digest of unexpected length, which
// should not happen in practice.
func strongHash(data []byte) ([strongSize]byte, error) {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)

	var digest [strongSize]byte
	sum := hasher.Sum(nil)
	if len(sum) != strongSize {
		return digest, newError(KindTryFromSliceError, nil, "strong hash produced unexpected digest length")
	}
	copy(digest[:], sum)
	return digest, nil
}
