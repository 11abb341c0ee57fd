package scenetree

import "testing"

func testSceneStyle() SceneStyle {
	return SceneStyleFromConfig(DefaultConfig())
}

func TestDrawForestEdgesBeforeShapes(t *testing.T) {
	f := SampleForest(NewIDSource(0))
	layout := DefaultLayouter().Layout(f)
	cam := NewCamera(400, 450, Rect{Width: 1280, Height: 800})
	l := NewDrawList()
	DrawForest(l, f, layout, cam, testSceneStyle())

	cmds := l.Commands()
	lines := 0
	for lines < len(cmds) && cmds[lines].Type == CommandLine {
		lines++
	}
	if lines != 5 {
		t.Fatalf("leading edges = %d, want 5", lines)
	}
	counts := map[CommandType]int{}
	for _, cmd := range cmds[lines:] {
		counts[cmd.Type]++
	}
	if counts[CommandLine] != 0 {
		t.Error("edge drawn after a shape")
	}
	if counts[CommandFillPolygon] != 4 || counts[CommandFillCircle] != 2 || counts[CommandText] != 6 {
		t.Errorf("counts = %v, want 4 polygons, 2 circles, 6 labels", counts)
	}
}

func TestDrawForestScreenPositions(t *testing.T) {
	f := SampleForest(NewIDSource(0))
	layout := DefaultLayouter().Layout(f)
	cam := NewCamera(400, 450, Rect{Width: 1280, Height: 800})
	style := testSceneStyle()
	l := NewDrawList()
	DrawForest(l, f, layout, cam, style)

	// Data (id 2) is a circle at world (450, 160) -> screen (690, 110).
	var circle *DrawCommand
	for i, cmd := range l.Commands() {
		if cmd.Type == CommandFillCircle {
			circle = &l.Commands()[i]
			break
		}
	}
	if circle == nil {
		t.Fatal("no circle recorded")
	}
	if circle.Center != (Vec2{690, 110}) || circle.Radius != style.ShapeSize/2 {
		t.Errorf("circle = %v r=%v, want (690,110) r=%v", circle.Center, circle.Radius, style.ShapeSize/2)
	}

	for _, cmd := range l.Commands() {
		if cmd.Type == CommandText && cmd.Text == "Data" {
			if cmd.Align != TextAlignCenter || cmd.Center.X != 690 || cmd.Center.Y <= 110 {
				t.Errorf("label = %+v, want centered below the shape", cmd)
			}
		}
	}
}

func TestDrawForestScalesWithZoom(t *testing.T) {
	f := Forest{NewSceneNode(1, "c", ShapeCircle, ColorWhite)}
	layout := LayoutMap{1: {0, 0}}
	cam := NewCamera(0, 0, Rect{Width: 100, Height: 100})
	cam.ZoomBy(-0.5)
	style := testSceneStyle()
	l := NewDrawList()
	DrawForest(l, f, layout, cam, style)
	if r := l.Commands()[0].Radius; !approxEqual(r, style.ShapeSize/4, epsilon) {
		t.Errorf("radius at zoom 0.5 = %v, want %v", r, style.ShapeSize/4)
	}
}

func TestDrawForestSkipsUnplacedNodes(t *testing.T) {
	f := SampleForest(NewIDSource(0))
	cam := NewCamera(0, 0, Rect{Width: 100, Height: 100})
	l := NewDrawList()
	DrawForest(l, f, LayoutMap{}, cam, testSceneStyle())
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestDrawForestRotatesSquare(t *testing.T) {
	n := NewSceneNode(1, "s", ShapeSquare, ColorWhite)
	n.Rotation = 45
	cam := NewCamera(0, 0, Rect{Width: 200, Height: 200})
	l := NewDrawList()
	DrawForest(l, Forest{n}, LayoutMap{1: {0, 0}}, cam, testSceneStyle())
	pts := l.Commands()[0].Points
	// A square turned 45 degrees has a corner straight above its center.
	half := 40 * 0.5 * 1.4142135623730951
	if !approxEqual(pts[0].X, 100, 1e-6) || !approxEqual(pts[0].Y, 100-half, 1e-6) {
		t.Errorf("first corner = %v", pts[0])
	}
}
