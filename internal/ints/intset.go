// Package ints implements a bit set over small non-negative integers.
package ints

const (
	chunkShift = 6
	chunkBits  = 64
)

// Set is a dense bit set. The zero value is an empty set; storage grows on
// first Add of a larger item. Lookups never allocate, which is what the
// recognizer needs for its per-call (non-terminal, position) visited arena.
type Set struct {
	chunks []uint64
}

// NewSize creates a set with capacity preallocated for items 0..size-1.
func NewSize(size int) *Set {
	return &Set{chunks: make([]uint64, (size+chunkBits-1)>>chunkShift)}
}

func (s *Set) grow(item int) {
	need := (item >> chunkShift) + 1
	if need <= len(s.chunks) {
		return
	}
	chunks := make([]uint64, need)
	copy(chunks, s.chunks)
	s.chunks = chunks
}

func (s *Set) Add(item int) {
	s.grow(item)
	s.chunks[item>>chunkShift] |= 1 << (uint(item) & (chunkBits - 1))
}

func (s *Set) Remove(item int) {
	if item>>chunkShift < len(s.chunks) {
		s.chunks[item>>chunkShift] &^= 1 << (uint(item) & (chunkBits - 1))
	}
}

func (s *Set) Contains(item int) bool {
	i := item >> chunkShift
	return i < len(s.chunks) && s.chunks[i]&(1<<(uint(item)&(chunkBits-1))) != 0
}
