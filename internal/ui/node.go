package ui

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Node is a single laid-out element: the panel box, its title, or one control row.
// Class and ID are matched against stylesheet selectors (.class, #id).
type Node struct {
	Type   string // "panel", "label", "control"
	Class  string
	ID     string
	Bounds Rect
	Text   string
	Style  ComputedStyle
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
		Style: DefaultComputedStyle(),
	}
}
