package scenetree

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// UIStyle holds the metrics and colors of the widget kit.
type UIStyle struct {
	Padding     float64
	Spacing     float64
	RowHeight   float64
	TitleHeight float64
	TextSize    float64
	PanelWidth  float64

	PanelColor  Color
	TitleColor  Color
	WidgetColor Color
	HoverColor  Color
	AccentColor Color
	TextColor   Color
	BorderColor Color
}

// DefaultUIStyle returns the dark theme used by the inspector.
func DefaultUIStyle() UIStyle {
	return UIStyle{
		Padding:     8,
		Spacing:     6,
		RowHeight:   22,
		TitleHeight: 26,
		TextSize:    14,
		PanelWidth:  260,

		PanelColor:  Color{0.11, 0.11, 0.13, 0.96},
		TitleColor:  Color{0.19, 0.19, 0.24, 1},
		WidgetColor: Color{0.22, 0.22, 0.27, 1},
		HoverColor:  Color{0.30, 0.30, 0.37, 1},
		AccentColor: Color{0.30, 0.55, 0.95, 1},
		TextColor:   ColorWhite,
		BorderColor: Color{0.35, 0.35, 0.42, 1},
	}
}

// FieldResult is the per-frame outcome of a TextField.
type FieldResult struct {
	// Changed is true when the buffer was edited this frame.
	Changed bool
	// LostFocus is true on the frame the field lost keyboard focus.
	LostFocus bool
	// Submitted is true when focus was lost by pressing Enter.
	Submitted bool
}

// UI is a small immediate-mode widget kit. Widgets are declared every frame
// between BeginFrame and EndFrame; each call draws the widget into the frame's
// DrawList and returns what the user did to it this frame.
type UI struct {
	style   UIStyle
	measure TextMeasurer

	in  *InputState
	out *DrawList
	win *DrawList

	windowID string
	title    string
	panel    Rect
	cursorX  float64
	cursorY  float64
	contentW float64
	last     Rect
	sameLine bool

	panels   []Rect // windows of the last finished frame
	building []Rect

	focus     string // focused text field
	seenFocus bool
	active    string // slider being dragged
	pressed   string // widget under the pointer when the primary button went down
}

// NewUI creates a widget kit that measures text with m.
func NewUI(style UIStyle, m TextMeasurer) *UI {
	return &UI{style: style, measure: m, win: NewDrawList()}
}

// Style returns the style in use.
func (u *UI) Style() UIStyle {
	return u.style
}

// BeginFrame starts declaring widgets for one frame. Widget commands are
// appended to out.
func (u *UI) BeginFrame(in *InputState, out *DrawList) {
	u.in = in
	u.out = out
	u.building = u.building[:0]
	u.seenFocus = false
}

// EndFrame finishes the frame. Focus held by a field that was not declared
// this frame is dropped.
func (u *UI) EndFrame() {
	if !u.seenFocus {
		u.focus = ""
	}
	u.panels, u.building = u.building, u.panels
	if u.in.PrimaryReleased {
		u.pressed = ""
		u.active = ""
	}
	u.in = nil
	u.out = nil
}

// WantsPointer reports whether the pointer at (x, y) belongs to the UI:
// it is over a window declared in the last finished frame, or a slider drag
// is in progress.
func (u *UI) WantsPointer(x, y float64) bool {
	if u.active != "" {
		return true
	}
	for _, r := range u.panels {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// WantsKeyboard reports whether a text field has keyboard focus.
func (u *UI) WantsKeyboard() bool {
	return u.focus != ""
}

// --- Windows ---

// BeginWindow opens a window with its top-left corner at (x, y). id scopes
// the ids of the widgets declared inside it.
func (u *UI) BeginWindow(id, title string, x, y float64) {
	u.windowID = id
	u.title = title
	u.panel = Rect{X: x, Y: y, Width: u.style.PanelWidth}
	u.cursorX = x + u.style.Padding
	u.cursorY = y + u.style.TitleHeight + u.style.Padding
	u.contentW = u.style.PanelWidth - 2*u.style.Padding
	u.sameLine = false
	u.win.Reset()
}

// EndWindow closes the window opened by BeginWindow and emits its
// background, title bar and widgets.
func (u *UI) EndWindow() {
	st := u.style
	u.panel.Height = u.cursorY - u.panel.Y - st.Spacing + st.Padding
	u.out.FillRect(u.panel, st.PanelColor)
	u.out.FillRect(Rect{X: u.panel.X, Y: u.panel.Y, Width: u.panel.Width, Height: st.TitleHeight}, st.TitleColor)
	u.out.Text(u.title, Vec2{u.panel.X + st.Padding, u.panel.Y + st.TitleHeight/2}, st.TextSize, TextAlignLeft, st.TextColor)
	u.out.StrokeRect(u.panel, 1, st.BorderColor)
	u.out.Append(u.win)
	u.building = append(u.building, u.panel)
	u.windowID = ""
}

// SameLine places the next widget to the right of the previous one.
func (u *UI) SameLine() {
	u.sameLine = true
}

func (u *UI) allocate(w, h float64) Rect {
	var r Rect
	if u.sameLine {
		r = Rect{X: u.last.X + u.last.Width + u.style.Spacing, Y: u.last.Y, Width: w, Height: h}
		u.sameLine = false
	} else {
		r = Rect{X: u.cursorX, Y: u.cursorY, Width: w, Height: h}
	}
	u.cursorY = math.Max(u.cursorY, r.Y+h+u.style.Spacing)
	u.last = r
	return r
}

func (u *UI) widgetID(name string) string {
	return u.windowID + "/" + name
}

func (u *UI) hovered(r Rect) bool {
	return r.Contains(u.in.CursorX, u.in.CursorY)
}

// press records which widget the primary button went down on and reports
// whether it was this one.
func (u *UI) press(id string, r Rect) bool {
	if u.in.PrimaryPressed && u.hovered(r) {
		u.pressed = id
		return true
	}
	return false
}

// --- Widgets ---

// Label draws a line of text.
func (u *UI) Label(s string) {
	r := u.allocate(u.contentW, u.style.RowHeight)
	u.win.Text(s, Vec2{r.X, r.Y + r.Height/2}, u.style.TextSize, TextAlignLeft, u.style.TextColor)
}

// Separator draws a horizontal rule.
func (u *UI) Separator() {
	r := u.allocate(u.contentW, 1)
	u.win.Line(Vec2{r.X, r.Y}, Vec2{r.X + r.Width, r.Y}, 1, u.style.BorderColor)
}

// Button draws a button sized to its label and reports whether it was
// clicked (pressed and released over it) this frame.
func (u *UI) Button(label string) bool {
	tw, _ := u.measure.Measure(label, u.style.TextSize)
	r := u.allocate(tw+2*u.style.Padding, u.style.RowHeight)
	id := u.widgetID("button:" + label)
	u.press(id, r)

	clicked := u.in.PrimaryReleased && u.pressed == id && u.hovered(r)

	bg := u.style.WidgetColor
	if u.hovered(r) {
		bg = u.style.HoverColor
	}
	if u.pressed == id && u.in.Primary {
		bg = u.style.AccentColor
	}
	u.win.FillRect(r, bg)
	u.win.Text(label, Vec2{r.X + r.Width/2, r.Y + r.Height/2}, u.style.TextSize, TextAlignCenter, u.style.TextColor)
	return clicked
}

// Radio draws a radio button and reports whether it was clicked this frame.
// The caller owns the selection state.
func (u *UI) Radio(label string, selected bool) bool {
	r := u.allocate(u.contentW, u.style.RowHeight)
	id := u.widgetID("radio:" + label)
	u.press(id, r)
	clicked := u.in.PrimaryReleased && u.pressed == id && u.hovered(r)

	radius := u.style.RowHeight/2 - 4
	center := Vec2{r.X + radius + 2, r.Y + r.Height/2}
	ring := u.style.BorderColor
	if u.hovered(r) {
		ring = u.style.HoverColor
	}
	u.win.StrokeCircle(center, radius, 1.5, ring)
	if selected {
		u.win.FillCircle(center, radius-3, u.style.AccentColor)
	}
	u.win.Text(label, Vec2{center.X + radius + u.style.Spacing, center.Y}, u.style.TextSize, TextAlignLeft, u.style.TextColor)
	return clicked
}

// TextField edits buf in place. A click focuses the field; typing and
// Backspace edit it; Enter or a click elsewhere drops focus.
func (u *UI) TextField(name string, buf *string) FieldResult {
	var res FieldResult
	r := u.allocate(u.contentW, u.style.RowHeight)
	id := u.widgetID("field:" + name)

	if u.press(id, r) {
		u.focus = id
	}
	focused := u.focus == id
	if focused {
		u.seenFocus = true
		if u.in.PrimaryPressed && !u.hovered(r) {
			u.focus = ""
			res.LostFocus = true
		} else {
			for _, ch := range u.in.Chars {
				if unicode.IsPrint(ch) {
					*buf += string(ch)
					res.Changed = true
				}
			}
			if u.in.KeyPressed(ebiten.KeyBackspace) && *buf != "" {
				_, size := utf8.DecodeLastRuneInString(*buf)
				*buf = (*buf)[:len(*buf)-size]
				res.Changed = true
			}
			if u.in.KeyPressed(ebiten.KeyEnter) || u.in.KeyPressed(ebiten.KeyNumpadEnter) {
				u.focus = ""
				res.LostFocus = true
				res.Submitted = true
			}
		}
	}

	u.win.FillRect(r, u.style.WidgetColor)
	border := u.style.BorderColor
	if u.focus == id {
		border = u.style.AccentColor
	}
	u.win.StrokeRect(r, 1, border)
	shown := *buf
	if u.focus == id {
		shown += "|"
	}
	u.win.Text(shown, Vec2{r.X + 4, r.Y + r.Height/2}, u.style.TextSize, TextAlignLeft, u.style.TextColor)
	return res
}

// Slider edits v within [lo, hi]. Pressing on the track jumps to the pointer
// and dragging keeps tracking it, even outside the track. Reports whether
// the value changed this frame.
func (u *UI) Slider(name string, v *float64, lo, hi float64) bool {
	r := u.allocate(u.contentW, u.style.RowHeight)
	return u.slider(u.widgetID("slider:"+name), r, v, lo, hi, fmt.Sprintf("%.1f", *v))
}

func (u *UI) slider(id string, r Rect, v *float64, lo, hi float64, label string) bool {
	if u.press(id, r) {
		u.active = id
	}
	changed := false
	if u.active == id && u.in.Primary && r.Width > 0 {
		t := clamp01((u.in.CursorX - r.X) / r.Width)
		nv := lo + t*(hi-lo)
		if nv != *v {
			*v = nv
			changed = true
		}
		label = fmt.Sprintf("%.1f", *v)
	}

	u.win.FillRect(r, u.style.WidgetColor)
	if hi > lo {
		t := clamp01((*v - lo) / (hi - lo))
		hx := r.X + t*r.Width
		u.win.FillRect(Rect{X: hx - 3, Y: r.Y, Width: 6, Height: r.Height}, u.style.AccentColor)
	}
	u.win.Text(label, Vec2{r.X + r.Width/2, r.Y + r.Height/2}, u.style.TextSize, TextAlignCenter, u.style.TextColor)
	return changed
}

// ColorEdit edits c with a preview swatch and one slider per channel.
// Reports whether any channel changed this frame.
func (u *UI) ColorEdit(name string, c *Color) bool {
	swatch := u.allocate(u.contentW, u.style.RowHeight)
	u.win.FillRect(swatch, *c)
	u.win.StrokeRect(swatch, 1, u.style.BorderColor)

	channels := [4]struct {
		label string
		v     *float64
	}{{"R", &c.R}, {"G", &c.G}, {"B", &c.B}, {"A", &c.A}}

	changed := false
	for _, ch := range channels {
		r := u.allocate(u.contentW, u.style.RowHeight)
		id := u.widgetID("color:" + name + ":" + ch.label)
		if u.slider(id, r, ch.v, 0, 1, fmt.Sprintf("%s %.0f", ch.label, *ch.v*255)) {
			changed = true
		}
	}
	return changed
}
