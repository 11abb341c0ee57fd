package scenetree

import "github.com/hajimehoshi/ebiten/v2"

// syntheticEvent is one frame of injected input. Screen coordinates are used
// (matching what a screenshot shows), identical to real mouse input.
type syntheticEvent struct {
	screenX, screenY float64
	primary          bool
	secondary        bool
	wheelY           float64
	keys             []ebiten.Key
	chars            []rune
}

// InjectPress queues a primary press at the given screen coordinates.
// Each injected event is consumed by one Update, replacing real input.
func (e *Editor) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{screenX: x, screenY: y, primary: true})
}

// InjectRelease queues a primary release at the given screen coordinates.
func (e *Editor) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{screenX: x, screenY: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectPan queues a secondary-button drag from (fromX, fromY) to (toX, toY)
// over the given number of frames (minimum 2: press and release).
func (e *Editor) InjectPan(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.injectQueue = append(e.injectQueue, syntheticEvent{screenX: fromX, screenY: fromY, secondary: true})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.injectQueue = append(e.injectQueue, syntheticEvent{
			screenX:   fromX + (toX-fromX)*t,
			screenY:   fromY + (toY-fromY)*t,
			secondary: true,
		})
	}
	e.injectQueue = append(e.injectQueue, syntheticEvent{screenX: toX, screenY: toY})
}

// InjectScroll queues one frame of vertical wheel input at the last
// injected pointer position.
func (e *Editor) InjectScroll(dy float64) {
	x, y := e.lastInjectedPosition()
	e.injectQueue = append(e.injectQueue, syntheticEvent{screenX: x, screenY: y, wheelY: dy})
}

// InjectKey queues one frame with key pressed.
func (e *Editor) InjectKey(key ebiten.Key) {
	x, y := e.lastInjectedPosition()
	e.injectQueue = append(e.injectQueue, syntheticEvent{screenX: x, screenY: y, keys: []ebiten.Key{key}})
}

// InjectText queues one frame in which s is typed.
func (e *Editor) InjectText(s string) {
	x, y := e.lastInjectedPosition()
	e.injectQueue = append(e.injectQueue, syntheticEvent{screenX: x, screenY: y, chars: []rune(s)})
}

// lastInjectedPosition returns where the pointer will be when the queue
// reaches its end, so keyboard-only events do not move the pointer.
func (e *Editor) lastInjectedPosition() (float64, float64) {
	if n := len(e.injectQueue); n > 0 {
		last := e.injectQueue[n-1]
		return last.screenX, last.screenY
	}
	return e.input.CursorX, e.input.CursorY
}

// popInjected removes the next injected event and converts it into input.
func (e *Editor) popInjected() (InputState, bool) {
	if len(e.injectQueue) == 0 {
		return InputState{}, false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue[len(e.injectQueue)-1] = syntheticEvent{}
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	return InputState{
		CursorX:     evt.screenX,
		CursorY:     evt.screenY,
		Primary:     evt.primary,
		Secondary:   evt.secondary,
		WheelY:      evt.wheelY,
		DeviceScale: 1,
		Keys:        evt.keys,
		Chars:       evt.chars,
	}, true
}
