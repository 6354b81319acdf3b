// Package tape implements the node arena that backs reverse-mode
// automatic differentiation.
//
// Nodes are bump-allocated in creation order into fixed-size chunks, so an
// Index never moves and a pointer returned by At stays valid until the node is
// discarded. Memory is reclaimed only in bulk: Mark captures the current size,
// Rewind drops everything allocated after it. Chunks are kept for reuse, which
// makes a mark/compose/rewind cycle allocation-free once the arena is warm.
//
// Every rewind that discards nodes bumps the arena generation. Nodes are
// stamped with the generation they were allocated in, which lets handle types
// detect that the slot they point to has been reused (see Valid).
package tape

import (
	"context"
	"log/slog"
	"math/bits"

	"github.com/pkg/errors"
)

var (
	// ErrExhausted is the panic value when the arena exceeds its node limit.
	ErrExhausted = errors.New("tape: arena exhausted")

	// ErrStaleMark is returned when rewinding to a position that no longer exists.
	ErrStaleMark = errors.New("tape: stale mark")
)

// Mark is a captured arena size.
type Mark struct {
	size int
	gen  uint32
}

// Size returns the number of nodes that were live when the mark was taken.
func (m Mark) Size() int {
	return m.size
}

// Arena is an append-only store of nodes. It is not safe for concurrent use.
type Arena struct {
	chunks    [][]Node
	chunkBits uint
	chunkMask int
	size      int
	gen       uint32
	maxNodes  int
	logger    *slog.Logger
}

// New creates an empty arena.
func New(opts ...Option) *Arena {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Arena{
		chunkBits: uint(bits.TrailingZeros(uint(o.chunkSize))),
		chunkMask: o.chunkSize - 1,
		maxNodes:  o.maxNodes,
		logger:    o.logger.With(slog.String("component", "tape")),
	}
}

// Len returns the number of live nodes.
func (a *Arena) Len() int {
	return a.size
}

// Cap returns the number of nodes the allocated chunks can hold.
func (a *Arena) Cap() int {
	return len(a.chunks) << a.chunkBits
}

// Generation returns the current generation.
func (a *Arena) Generation() uint32 {
	return a.gen
}

// Alloc appends n and returns its index.
//
// Operands must refer to nodes that already exist; this is what makes a
// single reverse pass over the arena a valid backward traversal. Alloc panics
// if the invariant is violated or if the node limit is reached.
func (a *Arena) Alloc(n Node) Index {
	idx := a.size
	for k := uint8(0); k < n.Arity; k++ {
		if op := int(n.Operands[k]); op < 0 || op >= idx {
			panic(errors.Errorf("tape: operand %d of node %d refers to index %d", k, idx, op))
		}
	}
	if a.maxNodes > 0 && idx >= a.maxNodes {
		panic(errors.Wrapf(ErrExhausted, "limit %d nodes", a.maxNodes))
	}
	if idx == a.Cap() {
		a.grow()
	}

	n.gen = a.gen
	a.chunks[idx>>a.chunkBits][idx&a.chunkMask] = n
	a.size++
	return Index(idx)
}

func (a *Arena) grow() {
	a.chunks = append(a.chunks, make([]Node, a.chunkMask+1))
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "arena grown",
		slog.Int("chunks", len(a.chunks)),
		slog.Int("capacity", a.Cap()),
	)
}

// At returns the node at i. It panics if i is not live.
func (a *Arena) At(i Index) *Node {
	if i < 0 || int(i) >= a.size {
		panic(errors.Errorf("tape: index %d out of range [0, %d)", i, a.size))
	}
	return &a.chunks[int(i)>>a.chunkBits][int(i)&a.chunkMask]
}

// Valid reports whether i is live and was allocated in generation gen.
func (a *Arena) Valid(i Index, gen uint32) bool {
	if i < 0 || int(i) >= a.size {
		return false
	}
	return a.chunks[int(i)>>a.chunkBits][int(i)&a.chunkMask].gen == gen
}

// Mark captures the current size.
func (a *Arena) Mark() Mark {
	return Mark{size: a.size, gen: a.gen}
}

// Rewind discards every node allocated after m was taken.
//
// A mark is stale if the arena has since been rewound below it; rewinding to
// it would resurrect reused slots, so ErrStaleMark is returned instead.
func (a *Arena) Rewind(m Mark) error {
	if m.size > a.size {
		return errors.Wrapf(ErrStaleMark, "mark at %d beyond size %d", m.size, a.size)
	}
	if m.size > 0 && a.At(Index(m.size-1)).gen > m.gen {
		return errors.Wrapf(ErrStaleMark, "position %d was reused", m.size)
	}
	if m.size == a.size {
		return nil
	}

	from := a.size
	a.size = m.size
	a.gen++
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "arena rewound",
		slog.Int("from", from),
		slog.Int("to", a.size),
		slog.Uint64("generation", uint64(a.gen)),
	)
	return nil
}

// Reset discards every node.
func (a *Arena) Reset() {
	if a.size == 0 {
		return
	}
	a.size = 0
	a.gen++
}

// Release frees chunks that hold no live nodes.
func (a *Arena) Release() {
	keep := (a.size + a.chunkMask) >> a.chunkBits
	if keep == len(a.chunks) {
		return
	}
	for i := keep; i < len(a.chunks); i++ {
		a.chunks[i] = nil
	}
	a.chunks = a.chunks[:keep]
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "arena released",
		slog.Int("chunks", keep),
	)
}

// ZeroAdjoints clears the adjoints of the first n nodes.
func (a *Arena) ZeroAdjoints(n int) {
	n = min(n, a.size)
	for c := 0; n > 0; c++ {
		chunk := a.chunks[c]
		m := min(n, len(chunk))
		for i := range m {
			chunk[i].Adjoint = 0
		}
		n -= m
	}
}
