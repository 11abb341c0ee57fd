package scenetree

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandType identifies the kind of a DrawCommand.
type CommandType uint8

const (
	CommandLine         CommandType = iota // segment From -> To
	CommandFillRect                        // filled Rect
	CommandStrokeRect                      // outlined Rect
	CommandFillCircle                      // filled circle at Center
	CommandStrokeCircle                    // outlined circle at Center
	CommandFillPolygon                     // filled convex polygon
	CommandText                            // text label
)

// TextAlign controls horizontal text alignment relative to the anchor.
// Text is always vertically centered on the anchor.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // anchor is the left edge
	TextAlignCenter                  // anchor is the horizontal center
)

// DrawCommand is a single screen-space drawing operation. Only the fields
// relevant to Type are set.
type DrawCommand struct {
	Type   CommandType
	Color  Color
	Width  float64 // stroke width
	From   Vec2
	To     Vec2
	Rect   Rect
	Center Vec2
	Radius float64
	Points []Vec2
	Text   string
	Size   float64
	Align  TextAlign
}

// DrawList records drawing commands during Update and replays them onto an
// image during Draw. Reset reuses the backing storage.
type DrawList struct {
	commands []DrawCommand
	points   []Vec2
	verts    []ebiten.Vertex
	indices  []uint16
}

const defaultCommandCap = 256

// NewDrawList creates an empty list with preallocated storage.
func NewDrawList() *DrawList {
	return &DrawList{commands: make([]DrawCommand, 0, defaultCommandCap)}
}

// Reset discards all commands.
func (l *DrawList) Reset() {
	clear(l.commands)
	l.commands = l.commands[:0]
	l.points = l.points[:0]
}

// Commands returns the recorded commands. The returned slice MUST NOT be mutated.
func (l *DrawList) Commands() []DrawCommand {
	return l.commands
}

// Len returns the number of recorded commands.
func (l *DrawList) Len() int {
	return len(l.commands)
}

// Append copies every command of other onto the end of l.
func (l *DrawList) Append(other *DrawList) {
	for _, cmd := range other.commands {
		if cmd.Type == CommandFillPolygon {
			cmd.Points = l.copyPoints(cmd.Points)
		}
		l.commands = append(l.commands, cmd)
	}
}

// Line records a line segment.
func (l *DrawList) Line(from, to Vec2, width float64, c Color) {
	l.commands = append(l.commands, DrawCommand{Type: CommandLine, From: from, To: to, Width: width, Color: c})
}

// FillRect records a filled rectangle.
func (l *DrawList) FillRect(r Rect, c Color) {
	l.commands = append(l.commands, DrawCommand{Type: CommandFillRect, Rect: r, Color: c})
}

// StrokeRect records a rectangle outline.
func (l *DrawList) StrokeRect(r Rect, width float64, c Color) {
	l.commands = append(l.commands, DrawCommand{Type: CommandStrokeRect, Rect: r, Width: width, Color: c})
}

// FillCircle records a filled circle.
func (l *DrawList) FillCircle(center Vec2, radius float64, c Color) {
	l.commands = append(l.commands, DrawCommand{Type: CommandFillCircle, Center: center, Radius: radius, Color: c})
}

// StrokeCircle records a circle outline.
func (l *DrawList) StrokeCircle(center Vec2, radius, width float64, c Color) {
	l.commands = append(l.commands, DrawCommand{
		Type: CommandStrokeCircle, Center: center, Radius: radius, Width: width, Color: c,
	})
}

// FillPolygon records a filled convex polygon. The points are copied.
// Fewer than three points are ignored.
func (l *DrawList) FillPolygon(points []Vec2, c Color) {
	if len(points) < 3 {
		return
	}
	l.commands = append(l.commands, DrawCommand{Type: CommandFillPolygon, Points: l.copyPoints(points), Color: c})
}

// Text records a single-line text label of the given pixel size.
func (l *DrawList) Text(s string, at Vec2, size float64, align TextAlign, c Color) {
	if s == "" {
		return
	}
	l.commands = append(l.commands, DrawCommand{Type: CommandText, Text: s, Center: at, Size: size, Align: align, Color: c})
}

func (l *DrawList) copyPoints(points []Vec2) []Vec2 {
	start := len(l.points)
	l.points = append(l.points, points...)
	return l.points[start:len(l.points):len(l.points)]
}

// --- Submission ---

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(ColorWhite.toRGBA())
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Submit replays the list onto dst. Text is rendered with font.
func (l *DrawList) Submit(dst *ebiten.Image, font *Font) {
	for i := range l.commands {
		cmd := &l.commands[i]
		clr := cmd.Color.toRGBA()
		switch cmd.Type {
		case CommandLine:
			vector.StrokeLine(dst,
				float32(cmd.From.X), float32(cmd.From.Y), float32(cmd.To.X), float32(cmd.To.Y),
				float32(cmd.Width), clr, true)
		case CommandFillRect:
			r := cmd.Rect
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
		case CommandStrokeRect:
			r := cmd.Rect
			vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
				float32(cmd.Width), clr, false)
		case CommandFillCircle:
			vector.DrawFilledCircle(dst, float32(cmd.Center.X), float32(cmd.Center.Y), float32(cmd.Radius), clr, true)
		case CommandStrokeCircle:
			vector.StrokeCircle(dst, float32(cmd.Center.X), float32(cmd.Center.Y), float32(cmd.Radius),
				float32(cmd.Width), clr, true)
		case CommandFillPolygon:
			l.fillPolygon(dst, cmd.Points, cmd.Color)
		case CommandText:
			if font != nil {
				drawText(dst, font, cmd)
			}
		}
	}
}

// fillPolygon triangulates a convex polygon as a fan and draws it with
// premultiplied vertex colors.
func (l *DrawList) fillPolygon(dst *ebiten.Image, points []Vec2, c Color) {
	cr := float32(c.R * c.A)
	cg := float32(c.G * c.A)
	cb := float32(c.B * c.A)
	ca := float32(c.A)

	l.verts = l.verts[:0]
	for _, p := range points {
		l.verts = append(l.verts, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	l.indices = l.indices[:0]
	for i := 1; i < len(points)-1; i++ {
		l.indices = append(l.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	dst.DrawTriangles(l.verts, l.indices, whiteSubImage, op)
}

func drawText(dst *ebiten.Image, font *Font, cmd *DrawCommand) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.Center.X, cmd.Center.Y)
	op.ColorScale.ScaleWithColor(cmd.Color.toRGBA())
	op.SecondaryAlign = text.AlignCenter
	if cmd.Align == TextAlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, cmd.Text, font.Face(cmd.Size), op)
}
