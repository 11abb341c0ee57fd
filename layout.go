package scenetree

import "math"

// LayoutMap maps node ids to world-space anchor positions. It is rebuilt
// every frame and treated as read-only once built.
type LayoutMap map[uint32]Vec2

// Bounds returns the axis-aligned rectangle enclosing every anchor.
// An empty map yields the zero Rect.
func (m LayoutMap) Bounds() Rect {
	if len(m) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range m {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Layouter places nodes left to right by depth, with each parent vertically
// centered against its subtree.
type Layouter struct {
	// OriginX is the horizontal position of root nodes.
	OriginX float64
	// OriginY is the starting vertical cursor for the first root.
	OriginY float64
	// HSpacing is the horizontal distance between depth levels.
	HSpacing float64
	// RowHeight is the minimum vertical extent of any subtree.
	RowHeight float64
}

// DefaultLayouter returns the standard spacing.
func DefaultLayouter() Layouter {
	return Layouter{OriginX: 200, OriginY: 100, HSpacing: 250, RowHeight: 120}
}

// Layout computes an anchor for every node in f. Roots are stacked
// vertically; each root's subtree starts where the previous one ended.
func (l Layouter) Layout(f Forest) LayoutMap {
	m := make(LayoutMap, 16)
	cursor := l.OriginY
	for _, n := range f {
		cursor += l.place(n, l.OriginX, cursor, m)
	}
	return m
}

// place lays out the subtree rooted at n with its top edge at cursor and
// returns the vertical extent it consumed (never less than RowHeight).
// A leaf sits at the cursor. A parent sits at the midpoint between its
// first and last child rows.
func (l Layouter) place(n *SceneNode, x, cursor float64, m LayoutMap) float64 {
	var total float64
	cy := cursor
	for _, c := range n.Children {
		h := l.place(c, x+l.HSpacing, cy, m)
		total += h
		cy += h
	}
	if len(n.Children) > 0 {
		m[n.ID] = Vec2{X: x, Y: cursor + total/2 - l.RowHeight/2}
	} else {
		m[n.ID] = Vec2{X: x, Y: cursor}
	}
	return math.Max(total, l.RowHeight)
}
