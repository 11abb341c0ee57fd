package scenetree

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animate advances every node's Rotation by RotationSpeed*dt, recursing into
// all descendants. dt is in seconds.
func (f Forest) Animate(dt float64) {
	for _, n := range f {
		n.animate(dt)
	}
}

func (n *SceneNode) animate(dt float64) {
	n.Rotation += n.RotationSpeed * dt
	for _, c := range n.Children {
		c.animate(dt)
	}
}

// Pulse oscillates between two values forever, easing out and back. It drives
// the highlight ring around the selected node.
type Pulse struct {
	from, to float32
	period   float32
	fn       ease.TweenFunc
	seq      *gween.Sequence
	value    float64
}

// NewPulse creates a pulse that eases from -> to over period seconds and
// then back again.
func NewPulse(from, to float64, period float32, fn ease.TweenFunc) *Pulse {
	p := &Pulse{from: float32(from), to: float32(to), period: period, fn: fn}
	p.Restart()
	return p
}

// Update advances the pulse by dt seconds and returns the current value.
func (p *Pulse) Update(dt float32) float64 {
	val, _, _ := p.seq.Update(dt)
	p.value = float64(val)
	return p.value
}

// Value returns the value computed by the last Update.
func (p *Pulse) Value() float64 {
	return p.value
}

// Restart rewinds the pulse to its starting value.
func (p *Pulse) Restart() {
	p.seq = gween.NewSequence(gween.New(p.from, p.to, p.period, p.fn))
	p.seq.SetYoyo(true)
	p.seq.SetLoop(-1)
	p.value = float64(p.from)
}
