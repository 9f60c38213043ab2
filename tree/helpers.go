package tree

import (
	"fmt"
	"sync"
)

var errRankOfNullNode = fmt.Errorf("cannot determine rank of null-node")

// rankMap counts per-node events during a concurrent tree walk, e.g. how
// many children of a node have already been processed by a bottom-up pass.
type rankMap[T comparable] struct {
	lock  sync.RWMutex
	count map[*Node[T]]uint32
}

func newRankMap[T comparable]() *rankMap[T] {
	return &rankMap[T]{
		count: make(map[*Node[T]]uint32),
	}
}

func (rmap *rankMap[T]) Get(n *Node[T]) uint32 {
	if n == nil || rmap == nil {
		return 0
	}
	rmap.lock.RLock()
	defer rmap.lock.RUnlock()
	return rmap.count[n]
}

func (rmap *rankMap[T]) Inc(n *Node[T]) (uint32, error) {
	if n == nil {
		return 0, errRankOfNullNode
	}
	rmap.lock.Lock()
	defer rmap.lock.Unlock()
	rank := rmap.count[n]
	rmap.count[n] = rank + 1
	return rank, nil
}

// --------------------------------------------------------------------------------

// a helper struct for ordering the resulting nodes and their serials
type resultSlices[T comparable] struct {
	nodes   []*Node[T]
	serials []uint32
}

func (rs resultSlices[T]) Len() int           { return len(rs.nodes) }
func (rs resultSlices[T]) Less(i, j int) bool { return rs.serials[i] < rs.serials[j] }
func (rs resultSlices[T]) Swap(i, j int) {
	rs.nodes[i], rs.nodes[j] = rs.nodes[j], rs.nodes[i]
	rs.serials[i], rs.serials[j] = rs.serials[j], rs.serials[i]
}
