package scenetree

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// backgroundColor is the canvas clear color.
var backgroundColor = Color{0.106, 0.106, 0.118, 1}

// Camera scroll animation settings for the focus shortcuts.
const (
	focusDuration = 0.4 // seconds
)

// Editor is the top-level object: it owns the forest, the id counter, the
// edit queue, the camera and the UI, and drives them once per frame. It
// implements ebiten.Game.
type Editor struct {
	cfg Config
	log *zap.Logger

	// Scene state
	forest   Forest
	ids      *IDSource
	edits    EditQueue
	layouter Layouter
	layout   LayoutMap

	// View state
	camera  *Camera
	pan     *PanController
	pointer pointerTracker
	style   SceneStyle

	// Selection
	selected     uint32
	hasSelection bool
	pulse        *Pulse

	// UI and render state
	ui   *UI
	font *Font
	list *DrawList

	// Input state
	input InputState
	chars []rune
	keys  []ebiten.Key

	// Scripting and capture
	injectQueue     []syntheticEvent
	runner          *ScriptRunner
	screenshotQueue []string
	quit            bool

	frame uint64
	debug bool
	stats debugStats
}

// NewEditor creates an editor from cfg. The initial forest is built from
// cfg.Scene (or the sample scene) with ids from the editor's counter.
func NewEditor(cfg Config) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	font, err := DefaultFont()
	if err != nil {
		return nil, err
	}
	ids := NewIDSource(0)
	forest, err := cfg.BuildForest(ids)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	vp := Rect{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	e := &Editor{
		cfg:      cfg,
		log:      zap.NewNop(),
		forest:   forest,
		ids:      ids,
		layouter: cfg.Layouter(),
		camera:   NewCamera(cfg.Camera.X, cfg.Camera.Y, vp),
		pan:      NewPanController(cfg.ZoomSensitivity),
		pointer:  newPointerTracker(),
		style:    SceneStyleFromConfig(cfg),
		pulse:    NewPulse(0, 1, 0.6, ease.InOutSine),
		ui:       NewUI(DefaultUIStyle(), font),
		font:     font,
		list:     NewDrawList(),
		debug:    cfg.Debug,
	}
	e.layout = e.layouter.Layout(e.forest)
	return e, nil
}

// SetLogger replaces the logger. nil restores the no-op logger.
func (e *Editor) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	e.log = log
}

// SetDebugMode enables or disables per-second frame timing logs.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Forest returns the scene. Callers may read it between frames.
func (e *Editor) Forest() Forest {
	return e.forest
}

// LayoutMap returns the layout computed in the last frame.
func (e *Editor) LayoutMap() LayoutMap {
	return e.layout
}

// Camera returns the editor camera.
func (e *Editor) Camera() *Camera {
	return e.camera
}

// IDs returns the shared id counter.
func (e *Editor) IDs() *IDSource {
	return e.ids
}

// Edits returns the edit queue. Requests pushed here are applied at the end
// of the next frame.
func (e *Editor) Edits() *EditQueue {
	return &e.edits
}

// DrawList returns the commands recorded in the last frame.
func (e *Editor) DrawList() *DrawList {
	return e.list
}

// Selected returns the selected node id, if any.
func (e *Editor) Selected() (uint32, bool) {
	return e.selected, e.hasSelection
}

// Select makes id the selection. Unknown ids clear the selection.
func (e *Editor) Select(id uint32) {
	if !e.forest.Contains(id) {
		e.ClearSelection()
		return
	}
	if e.hasSelection && e.selected == id {
		return
	}
	e.selected = id
	e.hasSelection = true
	e.pulse.Restart()
	e.log.Debug("select", zap.Uint32("id", id))
}

// ClearSelection deselects the current node.
func (e *Editor) ClearSelection() {
	if !e.hasSelection {
		return
	}
	e.log.Debug("deselect", zap.Uint32("id", e.selected))
	e.selected = 0
	e.hasSelection = false
}

// --- ebiten.Game ---

// Update runs one frame using injected input if any is queued, otherwise
// the real mouse and keyboard.
func (e *Editor) Update() error {
	if e.runner != nil {
		e.runner.step(e)
	}
	if e.quit {
		return ebiten.Termination
	}
	in, ok := e.popInjected()
	if !ok {
		in = readInput(e.chars, e.keys)
		e.chars, e.keys = in.Chars, in.Keys
	}
	e.Step(in)
	return nil
}

// Draw replays the commands recorded by the last Update onto screen.
func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor.toRGBA())
	e.list.Submit(screen, e.font)
	if e.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	e.flushScreenshots(screen)
}

// Layout tracks the window size as the camera viewport.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.camera.SetViewport(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// Step runs one frame with the given raw input: camera, animation, layout
// and draw, click selection, inspector, and finally the edit queue drain.
func (e *Editor) Step(in InputState) {
	const dt = 1.0 / FramesPerSecond

	e.frame++
	e.pointer.derive(&in)
	e.input = in

	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	overUI := e.ui.WantsPointer(in.CursorX, in.CursorY)
	e.pan.Update(&e.input, e.camera, overUI)
	e.camera.update(dt)
	if !e.ui.WantsKeyboard() {
		e.handleKeys()
	}

	e.forest.Animate(dt)
	e.pulse.Update(dt)

	if e.debug {
		stats.animateTime = time.Since(t0)
		t0 = time.Now()
	}

	e.layout = e.layouter.Layout(e.forest)

	if e.debug {
		stats.layoutTime = time.Since(t0)
		t0 = time.Now()
	}

	e.list.Reset()
	DrawForest(e.list, e.forest, e.layout, e.camera, e.style)
	e.drawSelection()
	if in.Click && !overUI {
		e.selectAt(in.CursorX, in.CursorY)
	}

	if e.debug {
		stats.drawTime = time.Since(t0)
		t0 = time.Now()
	}

	e.ui.BeginFrame(&e.input, e.list)
	e.inspector()
	e.ui.EndFrame()

	if e.debug {
		stats.uiTime = time.Since(t0)
		t0 = time.Now()
	}

	results := e.edits.Apply(&e.forest, e.ids)
	logEditResults(e.log, e.forest, results)
	if e.hasSelection && !e.forest.Contains(e.selected) {
		e.ClearSelection()
	}

	if e.debug {
		stats.editTime = time.Since(t0)
		stats.commandCount = e.list.Len()
		stats.nodeCount = e.forest.Len()
		stats.editCount = len(results)
		e.stats = stats
		if e.frame%debugLogInterval == 0 {
			debugLog(e.log, stats)
		}
	}
}

// selectAt resolves a click at screen (sx, sy) to a node. A miss clears the
// selection.
func (e *Editor) selectAt(sx, sy float64) {
	wx, wy := e.camera.ScreenToWorld(sx, sy)
	if id, ok := HitTest(e.forest, e.layout, wx, wy, e.cfg.HitRadius); ok {
		e.Select(id)
		return
	}
	e.ClearSelection()
}

// handleKeys applies the keyboard shortcuts.
func (e *Editor) handleKeys() {
	in := &e.input
	switch {
	case in.KeyPressed(ebiten.KeyEscape):
		e.ClearSelection()
	case in.KeyPressed(ebiten.KeyF):
		e.FocusSelection()
	case in.KeyPressed(ebiten.KeyHome):
		e.FocusAll()
	case in.KeyPressed(ebiten.KeyDelete):
		if e.hasSelection {
			e.edits.Push(DeleteNodeRequest(e.selected))
			e.ClearSelection()
		}
	}
}

// FocusSelection scrolls the camera to the selected node.
func (e *Editor) FocusSelection() {
	if !e.hasSelection {
		return
	}
	if p, ok := e.layout[e.selected]; ok {
		e.camera.ScrollTo(p.X, p.Y, focusDuration, ease.OutCubic)
	}
}

// FocusAll scrolls the camera to the center of the laid-out forest.
func (e *Editor) FocusAll() {
	if len(e.layout) == 0 {
		return
	}
	b := e.layout.Bounds()
	e.camera.ScrollTo(b.X+b.Width/2, b.Y+b.Height/2, focusDuration, ease.OutCubic)
}

// Run opens a window sized by the editor's config and blocks until it is
// closed or a script quits. A scripted quit is not an error.
func Run(e *Editor) error {
	w := e.cfg.Window
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(FramesPerSecond)
	e.log.Info("starting editor",
		zap.String("title", w.Title),
		zap.Int("width", w.Width),
		zap.Int("height", w.Height),
		zap.Int("nodes", e.forest.Len()))
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
