package scenetree

import "go.uber.org/zap"

// EditKind tags an EditRequest.
type EditKind uint8

const (
	EditAddChild   EditKind = iota // append a default child under Target
	EditDeleteNode                 // remove Target and its subtree
)

func (k EditKind) String() string {
	switch k {
	case EditAddChild:
		return "add_child"
	case EditDeleteNode:
		return "delete_node"
	default:
		return "unknown"
	}
}

// EditRequest is a deferred structural change to the forest. Target is the
// parent id for EditAddChild and the doomed node id for EditDeleteNode.
type EditRequest struct {
	Kind   EditKind
	Target uint32
}

// AddChildRequest returns a request to add a default child under parentID.
func AddChildRequest(parentID uint32) EditRequest {
	return EditRequest{Kind: EditAddChild, Target: parentID}
}

// DeleteNodeRequest returns a request to delete nodeID.
func DeleteNodeRequest(nodeID uint32) EditRequest {
	return EditRequest{Kind: EditDeleteNode, Target: nodeID}
}

// EditResult reports the outcome of one applied request.
type EditResult struct {
	Request EditRequest
	// Applied is false when the target no longer existed.
	Applied bool
	// NewID is the id of the created node for an applied EditAddChild.
	NewID uint32
}

// EditQueue collects edit requests raised by UI handlers during a frame.
// The forest is never mutated while the queue is being filled; Apply
// drains it once per frame after all UI interaction is done.
type EditQueue struct {
	pending []EditRequest
	results []EditResult
}

// Push appends a request. It is applied on the next Apply.
func (q *EditQueue) Push(r EditRequest) {
	q.pending = append(q.pending, r)
}

// Len returns the number of pending requests.
func (q *EditQueue) Len() int {
	return len(q.pending)
}

// Pending returns the queued requests. The returned slice MUST NOT be mutated.
func (q *EditQueue) Pending() []EditRequest {
	return q.pending
}

// Apply drains the queue in enqueue order, mutating f. New nodes take their
// ids from ids. Requests whose target is gone are no-ops. The returned
// results are reused by the next Apply.
func (q *EditQueue) Apply(f *Forest, ids *IDSource) []EditResult {
	q.results = q.results[:0]
	for _, r := range q.pending {
		res := EditResult{Request: r}
		switch r.Kind {
		case EditAddChild:
			if child := f.AddChild(r.Target, ids); child != nil {
				res.Applied = true
				res.NewID = child.ID
			}
		case EditDeleteNode:
			res.Applied = f.Delete(r.Target)
		}
		q.results = append(q.results, res)
	}
	clear(q.pending)
	q.pending = q.pending[:0]
	return q.results
}

// logEditResults writes one debug entry per applied or skipped request and
// warns when an added node makes the tree unusually deep or wide.
func logEditResults(log *zap.Logger, f Forest, results []EditResult) {
	for _, res := range results {
		log.Debug("edit",
			zap.Stringer("kind", res.Request.Kind),
			zap.Uint32("target", res.Request.Target),
			zap.Bool("applied", res.Applied),
			zap.Uint32("new_id", res.NewID))
		if res.Request.Kind == EditAddChild && res.Applied {
			checkTreeDepth(log, f, res.NewID)
			checkChildCount(log, f.Find(res.Request.Target))
		}
	}
}
