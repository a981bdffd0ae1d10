// Package search implements the feasibility DFS and the parallel pick
// that decides the next game the outer draw loop should commit.
package search

import (
	"sync/atomic"

	"github.com/charleschow/uefa-draw-sim/internal/drawstate"
)

// Context is a single DFS worker's private view: a cloned DrawState it
// is free to mutate, the variant whose rules govern it, the sort mode
// that diversifies its candidate ordering, whether strong pruning is
// enabled, and the shared cancellation flag for the test_candidate call
// it belongs to.
type Context struct {
	State     *drawstate.DrawState
	Variant   drawstate.Variant
	SortMode  int
	Strong    bool
	Stop      *atomic.Bool
}

// NewContext clones base for worker isolation. Workers never mutate the
// outer DrawState.
func NewContext(base *drawstate.DrawState, v drawstate.Variant, sortMode int, strong bool, stop *atomic.Bool) *Context {
	return &Context{
		State:    base.Clone(),
		Variant:  v,
		SortMode: sortMode,
		Strong:   strong,
		Stop:     stop,
	}
}
