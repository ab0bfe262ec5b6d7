package rsync

// weakModulus is the modulus used by the weak rolling checksum of Andrew
// Tridgell's rsync thesis (https://www.samba.org/~tridge/phd_thesis.pdf,
// page 55). It is the classical Adler-32 modulus (the largest prime less than
// 2^16), in place of the thesis's modulus of 2^16.
const weakModulus = 65521

// weakHash computes the two-component rolling checksum (an Adler-32-family
// hash) over an arbitrary window of bytes, returning the combined 32-bit
// value along with its r1/r2 components so that the result can later be
// rolled via rollWeakHash without rescanning the window.
func weakHash(data []byte) (sum uint32, r1 uint32, r2 uint32) {
	var a, b uint64
	for i, c := range data {
		a += uint64(c)
		b += uint64(len(data)-i) * uint64(c)
	}
	a %= weakModulus
	b %= weakModulus
	return uint32(a) + uint32(b)<<16, uint32(a), uint32(b)
}

// rollWeakHash updates a previously computed weak hash by removing the byte
// leaving the window (out) and adding the byte entering it (in). Both bytes
// must correspond to a window of the same fixed length used to derive r1/r2
// originally. This runs in O(1) regardless of window size. Arithmetic is
// carried out in uint64 to avoid underflow/overflow regardless of chunk size
// or modulus choice.
func rollWeakHash(r1, r2 uint32, windowSize uint64, out, in byte) (sum uint32, newR1 uint32, newR2 uint32) {
	a := (uint64(r1) + weakModulus - uint64(out) + uint64(in)) % weakModulus
	b := (uint64(r2) + weakModulus*weakModulus - (windowSize%weakModulus)*uint64(out) + a) % weakModulus
	return uint32(a) + uint32(b)<<16, uint32(a), uint32(b)
}
