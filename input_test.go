package scenetree

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestPointerTrackerClick(t *testing.T) {
	tr := newPointerTracker()
	press := InputState{CursorX: 10, CursorY: 10, Primary: true}
	tr.derive(&press)
	if !press.PrimaryPressed || press.Click {
		t.Fatalf("press frame: pressed=%v click=%v", press.PrimaryPressed, press.Click)
	}
	release := InputState{CursorX: 12, CursorY: 11}
	tr.derive(&release)
	if !release.PrimaryReleased || !release.Click {
		t.Errorf("release frame: released=%v click=%v, want both", release.PrimaryReleased, release.Click)
	}
}

func TestPointerTrackerDragIsNotClick(t *testing.T) {
	tr := newPointerTracker()
	frames := []InputState{
		{CursorX: 10, CursorY: 10, Primary: true},
		{CursorX: 30, CursorY: 10, Primary: true},
		{CursorX: 10, CursorY: 10},
	}
	for i := range frames {
		tr.derive(&frames[i])
	}
	if frames[2].Click {
		t.Error("drag that returned to start counted as click")
	}
}

func TestPointerTrackerSecondaryEdges(t *testing.T) {
	tr := newPointerTracker()
	frames := []InputState{{Secondary: true}, {Secondary: true}, {}}
	for i := range frames {
		tr.derive(&frames[i])
	}
	if !frames[0].SecondaryPressed || frames[1].SecondaryPressed || !frames[2].SecondaryReleased {
		t.Errorf("edges = %v/%v/%v", frames[0].SecondaryPressed, frames[1].SecondaryPressed, frames[2].SecondaryReleased)
	}
}

func TestKeyRepeated(t *testing.T) {
	tests := []struct {
		d    int
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{keyRepeatDelay - 1, false},
		{keyRepeatDelay, true},
		{keyRepeatDelay + 1, false},
		{keyRepeatDelay + keyRepeatInterval, true},
	}
	for _, tt := range tests {
		if got := keyRepeated(tt.d); got != tt.want {
			t.Errorf("keyRepeated(%d) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestInputStateKeyPressed(t *testing.T) {
	in := InputState{Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeyEnter}}
	if !in.KeyPressed(ebiten.KeyEnter) {
		t.Error("KeyPressed(Enter) = false")
	}
	if in.KeyPressed(ebiten.KeyEscape) {
		t.Error("KeyPressed(Escape) = true")
	}
}

// runPan feeds frames through a tracker and controller.
func runPan(p *PanController, cam *Camera, blocked bool, frames ...InputState) []PanState {
	tr := newPointerTracker()
	states := make([]PanState, 0, len(frames))
	for _, in := range frames {
		in.DeviceScale = 1
		tr.derive(&in)
		p.Update(&in, cam, blocked)
		states = append(states, p.State())
	}
	return states
}

func TestPanControllerDrag(t *testing.T) {
	cam := NewCamera(100, 100, Rect{Width: 800, Height: 600})
	p := NewPanController(DefaultZoomSensitivity)
	states := runPan(p, cam, false,
		InputState{CursorX: 50, CursorY: 50, Secondary: true},
		InputState{CursorX: 60, CursorY: 45, Secondary: true},
		InputState{CursorX: 70, CursorY: 40, Secondary: true},
		InputState{CursorX: 70, CursorY: 40},
	)
	want := []PanState{PanPanning, PanPanning, PanPanning, PanIdle}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("frame %d state = %v, want %v", i, states[i], want[i])
		}
	}
	if !approxEqual(cam.X, 80, epsilon) || !approxEqual(cam.Y, 110, epsilon) {
		t.Errorf("camera = (%v, %v), want (80, 110)", cam.X, cam.Y)
	}
}

func TestPanControllerBlockedByUI(t *testing.T) {
	cam := NewCamera(0, 0, Rect{Width: 800, Height: 600})
	p := NewPanController(DefaultZoomSensitivity)
	states := runPan(p, cam, true,
		InputState{CursorX: 50, CursorY: 50, Secondary: true},
		InputState{CursorX: 90, CursorY: 50, Secondary: true},
	)
	if states[0] != PanIdle || states[1] != PanIdle {
		t.Errorf("states = %v, want idle", states)
	}
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("camera moved to (%v, %v)", cam.X, cam.Y)
	}
}

func TestPanControllerHeldButtonDoesNotStartPan(t *testing.T) {
	cam := NewCamera(0, 0, Rect{Width: 800, Height: 600})
	p := NewPanController(DefaultZoomSensitivity)
	tr := newPointerTracker()
	first := InputState{Secondary: true, DeviceScale: 1}
	tr.derive(&first)
	p.Update(&first, cam, true) // pressed over UI
	second := InputState{CursorX: 40, Secondary: true, DeviceScale: 1}
	tr.derive(&second)
	p.Update(&second, cam, false)
	if p.State() != PanIdle {
		t.Error("pan started without a press edge")
	}
}

func TestPanControllerZoom(t *testing.T) {
	tests := []struct {
		name  string
		wheel float64
		scale float64
		want  float64
	}{
		{"one notch in", 1, 1, 1.05},
		{"one notch out", -1, 1, 0.95},
		{"hidpi", 1, 2, 1.1},
		{"clamped high", 100, 1, MaxZoom},
		{"clamped low", -100, 1, MinZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(0, 0, Rect{Width: 800, Height: 600})
			p := NewPanController(DefaultZoomSensitivity)
			in := InputState{WheelY: tt.wheel, DeviceScale: tt.scale}
			p.Update(&in, cam, false)
			if !approxEqual(cam.Zoom, tt.want, 1e-9) {
				t.Errorf("Zoom = %v, want %v", cam.Zoom, tt.want)
			}
		})
	}
}
