package voxel

import (
	"container/heap"
	"fmt"

	"github.com/memmaker/smoothterrain/engine/util"
)

type queuedChunk struct {
	chunk    *Chunk
	priority int32
	index    int
}

// rebuildQueue is a min-heap of chunks ordered by priority, ties broken by
// chunk coordinate so the order is deterministic.
type rebuildQueue []*queuedChunk

func (pq rebuildQueue) Len() int { return len(pq) }

func (pq rebuildQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].chunk.position.Less(pq[j].chunk.position)
}

func (pq rebuildQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *rebuildQueue) Push(x any) {
	item := x.(*queuedChunk)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *rebuildQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// RebuildDirtyNear is RebuildDirty with a budget: at most budget dirty chunks
// are rebuilt, nearest to the focus chunk first. The remaining chunks stay
// dirty for the next call. A budget below 1 rebuilds everything.
func (v *Volume) RebuildDirtyNear(renderer ChunkRenderer, focus Int3, budget int) (int, error) {
	v.releaseRemoved(renderer)

	pq := rebuildQueue{}
	v.chunks.Range(func(_, value any) bool {
		c := value.(*Chunk)
		if c.IsDirty() {
			pq = append(pq, &queuedChunk{chunk: c, priority: ManhattanDistance3(c.position, focus), index: len(pq)})
		}
		return true
	})
	heap.Init(&pq)

	if budget < 1 {
		budget = pq.Len()
	}
	var firstErr error
	rebuilt := 0
	for pq.Len() > 0 && rebuilt < budget {
		item := heap.Pop(&pq).(*queuedChunk)
		if err := item.chunk.BuildGeometry(renderer); err != nil {
			util.LogMeshError(fmt.Sprintf("[Volume] %v", err))
			if firstErr == nil {
				firstErr = err
			}
		}
		rebuilt++
	}
	if pq.Len() > 0 {
		util.LogMeshDebug(fmt.Sprintf("[Volume] %d dirty chunks deferred", pq.Len()))
	}
	return rebuilt, firstErr
}
