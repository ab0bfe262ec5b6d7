// Package rsync provides an implementation of the rsync algorithm as described
// in Andrew Tridgell's thesis (https://www.samba.org/~tridge/phd_thesis.pdf)
// and the rsync technical report (https://rsync.samba.org/tech_report).
//
// The package is organized as a four-stage pipeline, each stage consuming the
// previous stage's output by value: Sign partitions an old buffer into
// fixed-size chunks and produces a ChecksumStore; Index turns a ChecksumStore
// into a WeakIndex for O(1) weak-hash lookup; Match scans a new buffer against
// a WeakIndex and produces a DeltaStore of confirmed matches; Extend fills in
// the chunks Match didn't cover. There is no reverse transition.
package rsync
