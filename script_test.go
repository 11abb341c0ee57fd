package scenetree

import (
	"strings"
	"testing"
)

// runScript steps e the way Update does, without reading real input.
// Returns the number of frames run before the script quit or finished.
func runScript(e *Editor, r *ScriptRunner, maxFrames int) int {
	e.SetScriptRunner(r)
	for i := range maxFrames {
		r.step(e)
		if e.quit || r.Done() {
			return i
		}
		in, ok := e.popInjected()
		if !ok {
			in = InputState{CursorX: e.input.CursorX, CursorY: e.input.CursorY, DeviceScale: 1}
		}
		e.Step(in)
	}
	return maxFrames
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"not json", `{`, "parse script"},
		{"no steps", `{"steps":[]}`, "no steps"},
		{"unknown action", `{"steps":[{"action":"dance"}]}`, "unknown action"},
		{"unknown key", `{"steps":[{"action":"key","key":"Hyper"}]}`, "unknown key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadScript() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestScriptClickSelects(t *testing.T) {
	e := newTestEditor(t)
	// Root is drawn at (440, 170) with the default camera.
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"click","x":440,"y":170},
		{"action":"screenshot","label":"selected"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(e, r, 20)
	if got, ok := e.Selected(); !ok || got != 1 {
		t.Errorf("Selected() = (%d, %v), want (1, true)", got, ok)
	}
	if len(e.screenshotQueue) != 1 || e.screenshotQueue[0] != "selected" {
		t.Errorf("screenshot queue = %v", e.screenshotQueue)
	}
}

func TestScriptWaitsForInjection(t *testing.T) {
	e := newTestEditor(t)
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"pan","fromX":300,"fromY":300,"toX":400,"toY":300,"frames":5},
		{"action":"wait","frames":10},
		{"action":"key","key":"Home"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	frames := runScript(e, r, 100)
	if !r.Done() {
		t.Fatal("script did not finish")
	}
	// 1 pan step + 5 pan frames + 10 wait frames + key step.
	if frames < 16 {
		t.Errorf("finished after %d frames, want at least 16", frames)
	}
	if !approxEqual(e.Camera().X, 300, 1e-9) {
		t.Errorf("camera X = %v, want 300", e.Camera().X)
	}
}

func TestScriptTypeAndKey(t *testing.T) {
	e := newTestEditor(t)
	selectNode(t, e, 1)
	field := findText(t, e, "Root", TextAlignLeft)
	e.InjectClick(field.X+2, field.Y)
	drain(e)

	r, err := LoadScript([]byte(`{"steps":[
		{"action":"type","text":" Node"},
		{"action":"key","key":"Enter"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(e, r, 20)
	if got := e.Forest().Find(1).Name; got != "Root Node" {
		t.Errorf("Name = %q, want %q", got, "Root Node")
	}
}

func TestScriptQuit(t *testing.T) {
	e := newTestEditor(t)
	r, err := LoadScript([]byte(`{"steps":[{"action":"wait","frames":3},{"action":"quit"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	frames := runScript(e, r, 50)
	if !e.quit {
		t.Fatal("quit not requested")
	}
	if frames != 3 {
		t.Errorf("quit after %d frames, want 3", frames)
	}
}

func TestInjectPanFrameCount(t *testing.T) {
	e := newTestEditor(t)
	e.InjectPan(0, 0, 10, 0, 1)
	if len(e.injectQueue) != 2 {
		t.Errorf("queue = %d, want press and release only", len(e.injectQueue))
	}
	e.injectQueue = e.injectQueue[:0]
	e.InjectPan(0, 0, 10, 0, 5)
	if len(e.injectQueue) != 5 {
		t.Errorf("queue = %d, want 5", len(e.injectQueue))
	}
}

func TestInjectKeepsPointerPosition(t *testing.T) {
	e := newTestEditor(t)
	e.InjectClick(100, 200)
	e.InjectScroll(1)
	last := e.injectQueue[len(e.injectQueue)-1]
	if last.screenX != 100 || last.screenY != 200 || last.wheelY != 1 {
		t.Errorf("scroll event = %+v", last)
	}
	in, ok := e.popInjected()
	if !ok || !in.Primary || in.DeviceScale != 1 {
		t.Errorf("first event = %+v, %v", in, ok)
	}
	if len(e.injectQueue) != 2 {
		t.Errorf("queue = %d after pop, want 2", len(e.injectQueue))
	}
}
