package astar

// nodeState tracks where a node is in its unseen → open → closed lifecycle.
type nodeState uint8

const (
	unseen nodeState = iota
	open
	closed
)

// noNode marks an absent predecessor or heap slot.
const noNode = -1

// record is the per-node search bookkeeping, stored densely by node ID.
// g and f are meaningful only once state != unseen.
type record struct {
	g     int
	f     int
	prev  int
	index int // position in the frontier while open
	state nodeState
}

// frontier is a min-heap of open node IDs. Its ordering key is read from the
// shared record slice on every comparison, so a cost improvement only needs
// a heap.Fix at the node's recorded index.
//
// Order: lower f first, then lower node ID. Every queued node has f set, so
// the "unset f sorts last" rule never has to be applied explicitly.
type frontier struct {
	ids  []int
	recs []record
}

// Len returns the number of open nodes.
func (q *frontier) Len() int { return len(q.ids) }

// Less orders by f, breaking ties on the smaller node ID.
func (q *frontier) Less(i, j int) bool {
	a, b := q.ids[i], q.ids[j]
	if fa, fb := q.recs[a].f, q.recs[b].f; fa != fb {
		return fa < fb
	}

	return a < b
}

// Swap exchanges two entries and keeps their recorded indices current.
func (q *frontier) Swap(i, j int) {
	q.ids[i], q.ids[j] = q.ids[j], q.ids[i]
	q.recs[q.ids[i]].index = i
	q.recs[q.ids[j]].index = j
}

// Push appends a node ID. Called by heap.Push; x must be an int.
func (q *frontier) Push(x interface{}) {
	id := x.(int)
	q.recs[id].index = len(q.ids)
	q.ids = append(q.ids, id)
}

// Pop removes and returns the last node ID. Called by heap.Pop.
func (q *frontier) Pop() interface{} {
	n := len(q.ids)
	id := q.ids[n-1]
	q.ids = q.ids[:n-1]
	q.recs[id].index = noNode

	return id
}
