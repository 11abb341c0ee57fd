package scenetree

// DefaultHitRadius is the pick radius around a node anchor, in world units.
const DefaultHitRadius = 20.0

// HitTest returns the id of the first node, in depth-first pre-order, whose
// anchor lies strictly within radius of (wx, wy). Nodes missing from the
// layout are skipped. ok is false when nothing matches.
func HitTest(f Forest, layout LayoutMap, wx, wy, radius float64) (id uint32, ok bool) {
	r2 := radius * radius
	for _, n := range f {
		if id, ok = hitNode(n, layout, wx, wy, r2); ok {
			return id, true
		}
	}
	return 0, false
}

func hitNode(n *SceneNode, layout LayoutMap, wx, wy, r2 float64) (uint32, bool) {
	if p, found := layout[n.ID]; found {
		dx := wx - p.X
		dy := wy - p.Y
		if dx*dx+dy*dy < r2 {
			return n.ID, true
		}
	}
	for _, c := range n.Children {
		if id, ok := hitNode(c, layout, wx, wy, r2); ok {
			return id, true
		}
	}
	return 0, false
}
