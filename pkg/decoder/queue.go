package decoder

import "container/heap"

// priorityQueue is a binary max-heap over *Hypothesis ordered by
// descending score, with ties broken by ascending insertion order for
// determinism (spec.md §4.1 "Ordering and tie-breaks", §5 "given identical
// oracle answers and identical input, the N-best output is bit-identical
// across runs"). Grounded on container/heap usage in
// pkg/reality/pcst/pcst.go; no third-party priority-queue library appears
// anywhere in the retrieved pack.
type priorityQueue []*Hypothesis

func (q priorityQueue) Len() int { return len(q) }

func (q priorityQueue) Less(i, j int) bool {
	if q[i].score != q[j].score {
		return q[i].score > q[j].score
	}
	return q[i].insertionOrder < q[j].insertionOrder
}

func (q priorityQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *priorityQueue) Push(x any) {
	*q = append(*q, x.(*Hypothesis))
}

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// hypQueue wraps priorityQueue with the push/pop/empty surface spec.md
// §4.4 names directly, and owns the insertion-order counter.
type hypQueue struct {
	heap priorityQueue
	next int
}

func newHypQueue() *hypQueue {
	q := &hypQueue{}
	heap.Init(&q.heap)
	return q
}

func (q *hypQueue) push(h *Hypothesis) {
	h.insertionOrder = q.next
	q.next++
	heap.Push(&q.heap, h)
}

func (q *hypQueue) pop() *Hypothesis {
	return heap.Pop(&q.heap).(*Hypothesis)
}

func (q *hypQueue) empty() bool {
	return q.heap.Len() == 0
}
