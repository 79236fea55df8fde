// Package arena provides typed bump allocators for AST construction.
//
// Parsing allocates a large number of small, identically-typed nodes whose
// lifetimes all end together when the tree is discarded. Allocating them
// individually puts heavy pressure on the garbage collector; an arena
// amortizes that cost by carving nodes out of large chunks. Pointers
// returned by Make remain valid for the lifetime of the arena because
// chunks are never reallocated, only appended.
package arena

// chunkSize is the number of elements per chunk. Chunks are sized in
// elements rather than bytes so a chunk of large nodes is still a
// single allocation.
const chunkSize = 64

// Arena is a typed bump allocator. The zero value is ready to use.
type Arena[T any] struct {
	chunks [][]T
	n      int // total elements allocated
}

// Make returns a pointer to a new zero-valued T owned by the arena. The
// pointer stays valid until the arena itself is unreachable.
func (a *Arena[T]) Make() *T {
	if len(a.chunks) == 0 || len(a.chunks[len(a.chunks)-1]) == cap(a.chunks[len(a.chunks)-1]) {
		a.chunks = append(a.chunks, make([]T, 0, chunkSize))
	}
	last := len(a.chunks) - 1
	a.chunks[last] = append(a.chunks[last], *new(T))
	a.n++
	return &a.chunks[last][len(a.chunks[last])-1]
}

// New returns a pointer to a copy of v owned by the arena.
func (a *Arena[T]) New(v T) *T {
	p := a.Make()
	*p = v
	return p
}

// Len returns the number of elements allocated so far.
func (a *Arena[T]) Len() int {
	return a.n
}

// Reset discards all allocations but retains the chunk storage for reuse.
// Pointers obtained before Reset must no longer be used.
func (a *Arena[T]) Reset() {
	for i := range a.chunks {
		a.chunks[i] = a.chunks[i][:0]
	}
	a.n = 0
}
