package scenetree

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Key    string  `json:"key,omitempty"`
	Text   string  `json:"text,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script actions.
const (
	actionClick      = "click"
	actionPan        = "pan"
	actionScroll     = "scroll"
	actionKey        = "key"
	actionType       = "type"
	actionWait       = "wait"
	actionScreenshot = "screenshot"
	actionQuit       = "quit"
)

// ScriptRunner sequences injected input, screenshots and waits across frames
// for automated runs of the editor. Attach it with Editor.SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script and returns a runner ready to be
// attached to an Editor.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case actionClick, actionPan, actionScroll, actionType, actionWait, actionScreenshot, actionQuit:
		return nil
	case actionKey:
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(st.Key)); err != nil {
			return fmt.Errorf("unknown key %q: %w", st.Key, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// SetScriptRunner attaches a runner. Its step method is called at the start
// of every Update, before input is read.
func (e *Editor) SetScriptRunner(r *ScriptRunner) {
	e.runner = r
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(e *Editor) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	e.log.Debug("script step", zap.Int("index", r.cursor-1), zap.String("action", st.Action))

	switch st.Action {
	case actionScreenshot:
		e.Screenshot(st.Label)
	case actionClick:
		e.InjectClick(st.X, st.Y)
	case actionPan:
		e.InjectPan(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case actionScroll:
		e.InjectScroll(st.DY)
	case actionKey:
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(st.Key)); err == nil {
			e.InjectKey(k)
		}
	case actionType:
		e.InjectText(st.Text)
	case actionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case actionQuit:
		e.quit = true
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
