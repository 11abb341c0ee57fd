package scenetree

// SceneStyle controls how the forest is drawn.
type SceneStyle struct {
	// ShapeSize is the side length / diameter of a node shape in world units.
	ShapeSize float64
	// LabelSize is the label font size in screen pixels.
	LabelSize  float64
	EdgeColor  Color
	LabelColor Color
	RingColor  Color
}

// SceneStyleFromConfig derives the scene style from cfg.
func SceneStyleFromConfig(cfg Config) SceneStyle {
	return SceneStyle{
		ShapeSize:  cfg.ShapeSize,
		LabelSize:  cfg.LabelSize,
		EdgeColor:  ColorGray,
		LabelColor: ColorWhite,
		RingColor:  Color{1, 0.85, 0.3, 1},
	}
}

// DrawForest records the forest into list: first every parent-child edge,
// then each node's shape and label in depth-first pre-order. Nodes missing
// from layout are skipped.
func DrawForest(list *DrawList, f Forest, layout LayoutMap, cam *Camera, style SceneStyle) {
	f.Walk(func(n *SceneNode, _ int) bool {
		p, ok := layout[n.ID]
		if !ok {
			return true
		}
		sx, sy := cam.WorldToScreen(p.X, p.Y)
		for _, c := range n.Children {
			cp, ok := layout[c.ID]
			if !ok {
				continue
			}
			cx, cy := cam.WorldToScreen(cp.X, cp.Y)
			list.Line(Vec2{sx, sy}, Vec2{cx, cy}, 1, style.EdgeColor)
		}
		return true
	})

	size := style.ShapeSize * cam.Zoom
	var outline []Vec2
	f.Walk(func(n *SceneNode, _ int) bool {
		p, ok := layout[n.ID]
		if !ok {
			return true
		}
		sx, sy := cam.WorldToScreen(p.X, p.Y)
		switch n.Shape {
		case ShapeSquare:
			outline = transformOutline(outline, unitSquare, shapeTransform(sx, sy, size, n.Rotation))
			list.FillPolygon(outline, n.Color)
		case ShapeCircle:
			list.FillCircle(Vec2{sx, sy}, size/2, n.Color)
		case ShapeTriangle:
			outline = transformOutline(outline, unitTriangle, shapeTransform(sx, sy, size, n.Rotation))
			list.FillPolygon(outline, n.Color)
		}
		list.Text(n.Name, Vec2{sx, sy + size*0.65}, style.LabelSize, TextAlignCenter, style.LabelColor)
		return true
	})
}

// drawSelection records a pulsing ring around the selected node.
func (e *Editor) drawSelection() {
	if !e.hasSelection {
		return
	}
	p, ok := e.layout[e.selected]
	if !ok {
		return
	}
	sx, sy := e.camera.WorldToScreen(p.X, p.Y)
	base := e.style.ShapeSize * e.camera.Zoom * 0.75
	r := base + 4*e.pulse.Value()
	e.list.StrokeCircle(Vec2{sx, sy}, r, 2, e.style.RingColor)
}
