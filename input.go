package scenetree

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	defaultDragDeadZone = 4.0 // pixels

	// DefaultZoomSensitivity converts wheel offsets (about 1 per notch) into
	// zoom change, before device scale is applied.
	DefaultZoomSensitivity = 0.05

	keyRepeatDelay    = 30 // frames before a held key repeats
	keyRepeatInterval = 3  // frames between repeats
)

// editorKeys are the keys the editor and its widgets react to.
var editorKeys = []ebiten.Key{
	ebiten.KeyBackspace,
	ebiten.KeyEnter,
	ebiten.KeyNumpadEnter,
	ebiten.KeyEscape,
	ebiten.KeyDelete,
	ebiten.KeyF,
	ebiten.KeyHome,
	ebiten.KeyTab,
}

// InputState is one frame of pointer and keyboard input in screen space.
// The raw fields are filled from Ebitengine or from an injected event; the
// edge fields are derived by a pointerTracker.
type InputState struct {
	CursorX, CursorY float64
	Primary          bool // primary button held
	Secondary        bool // secondary button held
	WheelY           float64
	DeviceScale      float64
	// Chars holds text typed this frame.
	Chars []rune
	// Keys holds keys pressed this frame, including key repeats.
	Keys []ebiten.Key

	// Derived edges.
	PrimaryPressed    bool
	PrimaryReleased   bool
	SecondaryPressed  bool
	SecondaryReleased bool
	// Click is true on the frame the primary button is released within the
	// drag dead zone of where it was pressed.
	Click bool
}

// KeyPressed reports whether k is in Keys.
func (in *InputState) KeyPressed(k ebiten.Key) bool {
	for _, key := range in.Keys {
		if key == k {
			return true
		}
	}
	return false
}

// pointerTracker derives button edges and clicks across frames.
type pointerTracker struct {
	primary   bool
	secondary bool
	startX    float64
	startY    float64
	dragging  bool
	deadZone  float64
}

func newPointerTracker() pointerTracker {
	return pointerTracker{deadZone: defaultDragDeadZone}
}

// derive fills the edge fields of in from the previous frame's state.
func (t *pointerTracker) derive(in *InputState) {
	in.PrimaryPressed = in.Primary && !t.primary
	in.PrimaryReleased = !in.Primary && t.primary
	in.SecondaryPressed = in.Secondary && !t.secondary
	in.SecondaryReleased = !in.Secondary && t.secondary
	in.Click = false

	switch {
	case in.PrimaryPressed:
		t.startX, t.startY = in.CursorX, in.CursorY
		t.dragging = false
	case in.Primary:
		if !t.dragging {
			dx := in.CursorX - t.startX
			dy := in.CursorY - t.startY
			if math.Sqrt(dx*dx+dy*dy) > t.deadZone {
				t.dragging = true
			}
		}
	case in.PrimaryReleased:
		dx := in.CursorX - t.startX
		dy := in.CursorY - t.startY
		in.Click = !t.dragging && math.Sqrt(dx*dx+dy*dy) <= t.deadZone
		t.dragging = false
	}

	t.primary = in.Primary
	t.secondary = in.Secondary
}

// readInput samples Ebitengine's input state. chars and keys are reused
// buffers.
func readInput(chars []rune, keys []ebiten.Key) InputState {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	in := InputState{
		CursorX:     float64(mx),
		CursorY:     float64(my),
		Primary:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Secondary:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		WheelY:      wy,
		DeviceScale: 1,
		Chars:       ebiten.AppendInputChars(chars[:0]),
		Keys:        keys[:0],
	}
	if m := ebiten.Monitor(); m != nil {
		in.DeviceScale = m.DeviceScaleFactor()
	}
	for _, k := range editorKeys {
		if keyRepeated(inpututil.KeyPressDuration(k)) {
			in.Keys = append(in.Keys, k)
		}
	}
	return in
}

// keyRepeated reports whether a key held for d frames fires this frame.
func keyRepeated(d int) bool {
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// --- Camera controller ---

// PanState is the state of the PanController.
type PanState uint8

const (
	PanIdle    PanState = iota // secondary button up
	PanPanning                 // secondary button held, camera follows pointer
)

// PanController drives the camera from pointer input: secondary-button drag
// pans, the wheel zooms.
type PanController struct {
	// Sensitivity scales wheel offsets into zoom change.
	Sensitivity float64

	state        PanState
	lastX, lastY float64
}

// NewPanController returns an idle controller with the given sensitivity.
func NewPanController(sensitivity float64) *PanController {
	return &PanController{Sensitivity: sensitivity}
}

// State returns the current state.
func (p *PanController) State() PanState {
	return p.state
}

// Update applies one frame of input to cam. When blocked is true (the
// pointer is over a UI panel) a new pan does not start, but a pan already
// in progress continues. Zoom is clamped every frame.
func (p *PanController) Update(in *InputState, cam *Camera, blocked bool) {
	scale := in.DeviceScale
	if scale <= 0 {
		scale = 1
	}
	cam.ZoomBy(in.WheelY * p.Sensitivity * scale)

	switch p.state {
	case PanIdle:
		if in.SecondaryPressed && !blocked {
			p.state = PanPanning
			p.lastX, p.lastY = in.CursorX, in.CursorY
		}
	case PanPanning:
		cam.PanScreen(in.CursorX-p.lastX, in.CursorY-p.lastY)
		p.lastX, p.lastY = in.CursorX, in.CursorY
		if !in.Secondary {
			p.state = PanIdle
		}
	}
}
