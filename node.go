package scenetree

// --- ID allocation ---

// IDSource hands out node ids. It is a plain counter (no atomic, the editor
// is single-threaded) owned by the Editor and passed by pointer into every
// operation that creates nodes. Ids are never derived from the current tree,
// so an id freed by a deletion is never handed out again.
type IDSource struct {
	last uint32
}

// NewIDSource returns a source whose first id is last+1.
func NewIDSource(last uint32) *IDSource {
	return &IDSource{last: last}
}

// Next increments the counter and returns the new id.
func (s *IDSource) Next() uint32 {
	s.last++
	return s.last
}

// Last returns the most recently issued id (0 if none).
func (s *IDSource) Last() uint32 {
	return s.last
}

// --- SceneNode ---

// Default values for nodes created by AddChild.
const (
	DefaultNodeName      = "New Node"
	DefaultRotationSpeed = 20.0
)

// SceneNode is one element of the scene tree. Children are owned exclusively
// by their parent; a node never appears twice in a Forest.
type SceneNode struct {
	ID uint32

	// Name is the committed display name. NameDraft is the inspector's edit
	// buffer and only reaches Name through ApplyName.
	Name      string
	NameDraft string

	Shape ShapeKind
	Color Color

	// RotationSpeed is in degrees per second and may be negative.
	RotationSpeed float64
	// Rotation is the accumulated angle in degrees. It is never wrapped.
	Rotation float64

	Children []*SceneNode
}

// NewSceneNode creates a childless node with the default rotation speed.
func NewSceneNode(id uint32, name string, shape ShapeKind, c Color) *SceneNode {
	return &SceneNode{
		ID:            id,
		Name:          name,
		NameDraft:     name,
		Shape:         shape,
		Color:         c,
		RotationSpeed: DefaultRotationSpeed,
	}
}

// AddChild appends child as the last child of n.
// Panics if child is nil.
func (n *SceneNode) AddChild(child *SceneNode) {
	if child == nil {
		panic("scenetree: cannot add nil child")
	}
	n.Children = append(n.Children, child)
}

// ApplyName commits the draft buffer to Name.
func (n *SceneNode) ApplyName() {
	n.Name = n.NameDraft
}

// --- Forest ---

// Forest is the ordered list of root nodes that makes up the scene.
type Forest []*SceneNode

// Find returns the first node with the given id in depth-first pre-order,
// or nil. The returned pointer may be used to mutate the node in place.
func (f Forest) Find(id uint32) *SceneNode {
	for _, n := range f {
		if n.ID == id {
			return n
		}
		if found := Forest(n.Children).Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether a node with the given id exists.
func (f Forest) Contains(id uint32) bool {
	return f.Find(id) != nil
}

// Delete removes the node with the given id together with its subtree.
// Each sibling list is scanned before descending into the siblings'
// children, so the shallowest match wins. Reports whether a node was removed.
func (f *Forest) Delete(id uint32) bool {
	return deleteFrom((*[]*SceneNode)(f), id)
}

func deleteFrom(list *[]*SceneNode, id uint32) bool {
	s := *list
	for i, n := range s {
		if n.ID == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			*list = s[:len(s)-1]
			return true
		}
	}
	for _, n := range s {
		if deleteFrom(&n.Children, id) {
			return true
		}
	}
	return false
}

// AddChild creates a default node under the parent with the given id, using
// a fresh id from ids. Returns the new node, or nil (without consuming an id)
// if the parent does not exist.
func (f Forest) AddChild(parentID uint32, ids *IDSource) *SceneNode {
	parent := f.Find(parentID)
	if parent == nil {
		return nil
	}
	child := NewSceneNode(ids.Next(), DefaultNodeName, ShapeSquare, ColorWhite)
	parent.AddChild(child)
	return child
}

// Walk calls fn for every node in depth-first pre-order with its depth
// (roots are depth 0). Returning false from fn skips that node's children.
func (f Forest) Walk(fn func(n *SceneNode, depth int) bool) {
	for _, n := range f {
		walk(n, 0, fn)
	}
}

func walk(n *SceneNode, depth int, fn func(*SceneNode, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Len returns the total number of nodes.
func (f Forest) Len() int {
	count := 0
	f.Walk(func(*SceneNode, int) bool {
		count++
		return true
	})
	return count
}

// IDs returns every node id in depth-first pre-order.
func (f Forest) IDs() []uint32 {
	ids := make([]uint32, 0, 16)
	f.Walk(func(n *SceneNode, _ int) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// Depth returns the depth of the node with the given id (roots are 0), or -1.
func (f Forest) Depth(id uint32) int {
	found := -1
	f.Walk(func(n *SceneNode, depth int) bool {
		if found >= 0 {
			return false
		}
		if n.ID == id {
			found = depth
			return false
		}
		return true
	})
	return found
}

// SampleForest builds the default demo scene using ids from ids.
func SampleForest(ids *IDSource) Forest {
	root := NewSceneNode(ids.Next(), "Root", ShapeSquare, ColorRed)
	data := NewSceneNode(ids.Next(), "Data", ShapeCircle, ColorBlue)
	render := NewSceneNode(ids.Next(), "Render", ShapeTriangle, ColorGreen)

	data.AddChild(NewSceneNode(ids.Next(), "Mesh", ShapeSquare, ColorYellow))
	data.AddChild(NewSceneNode(ids.Next(), "Texture", ShapeTriangle, RGB8(255, 128, 0)))
	render.AddChild(NewSceneNode(ids.Next(), "Shader", ShapeCircle, RGB8(128, 0, 255)))

	root.AddChild(data)
	root.AddChild(render)
	return Forest{root}
}
