package ui

import (
	"image/color"

	"cubeview/internal/cube"
)

// Kind is the widget type of a control.
type Kind int

const (
	KindRange Kind = iota
	KindBool
	KindColor
	KindAction
)

// Control is one labelled row of the settings panel. Only the value field matching Kind is used.
type Control struct {
	Name  string // property key, also the row's #id
	Label string
	Kind  Kind

	Min, Max float32
	Value    float32
	Checked  bool
	Color    color.RGBA

	Node *Node

	onRange  func(float32) cube.Event
	onBool   func(bool) cube.Event
	onColor  func(color.RGBA) cube.Event
	onAction func() cube.Event
}

// Panel is a property panel: a titled column of controls. Every change made through the
// Set methods publishes exactly one typed event; setting a control to its current value publishes nothing.
type Panel struct {
	pub      cube.Publisher
	sheet    *Stylesheet
	controls []*Control
	byName   map[string]*Control
	root     *Node
	title    *Node

	laidOut      bool
	lastW, lastH int32
}

// NewPanel returns an empty panel that publishes to pub. A nil sheet uses DefaultStylesheet.
func NewPanel(title string, sheet *Stylesheet, pub cube.Publisher) *Panel {
	if sheet == nil {
		sheet = DefaultStylesheet()
	}
	return &Panel{
		pub:    pub,
		sheet:  sheet,
		byName: make(map[string]*Control),
		root:   NewNode("panel", "panel", "", ""),
		title:  NewNode("label", "panel-title", "", title),
	}
}

func (p *Panel) add(c *Control) *Control {
	c.Node = NewNode("control", "control", c.Name, c.Label)
	p.controls = append(p.controls, c)
	p.byName[c.Name] = c
	p.laidOut = false
	return c
}

// AddRange adds a numeric slider limited to [min, max].
func (p *Panel) AddRange(name, label string, min, max, value float32, ev func(float32) cube.Event) *Control {
	return p.add(&Control{Name: name, Label: label, Kind: KindRange, Min: min, Max: max, Value: clamp(value, min, max), onRange: ev})
}

// AddBool adds a checkbox.
func (p *Panel) AddBool(name, label string, value bool, ev func(bool) cube.Event) *Control {
	return p.add(&Control{Name: name, Label: label, Kind: KindBool, Checked: value, onBool: ev})
}

// AddColor adds a colour picker.
func (p *Panel) AddColor(name, label string, value color.RGBA, ev func(color.RGBA) cube.Event) *Control {
	return p.add(&Control{Name: name, Label: label, Kind: KindColor, Color: value, onColor: ev})
}

// AddAction adds a button.
func (p *Panel) AddAction(name, label string, ev func() cube.Event) *Control {
	return p.add(&Control{Name: name, Label: label, Kind: KindAction, onAction: ev})
}

// Control returns the control called name, or nil.
func (p *Panel) Control(name string) *Control {
	return p.byName[name]
}

// Controls returns the controls in display order.
func (p *Panel) Controls() []*Control {
	return p.controls
}

// SetRange sets a range control, clamped to its limits. It reports whether an event was published.
func (p *Panel) SetRange(name string, v float32) bool {
	c := p.byName[name]
	if c == nil || c.Kind != KindRange {
		return false
	}
	v = clamp(v, c.Min, c.Max)
	if v == c.Value {
		return false
	}
	c.Value = v
	p.pub.Publish(c.onRange(v))
	return true
}

// SetBool sets a checkbox. It reports whether an event was published.
func (p *Panel) SetBool(name string, v bool) bool {
	c := p.byName[name]
	if c == nil || c.Kind != KindBool || v == c.Checked {
		return false
	}
	c.Checked = v
	p.pub.Publish(c.onBool(v))
	return true
}

// SetColor sets a colour picker. Alpha is forced opaque. It reports whether an event was published.
func (p *Panel) SetColor(name string, v color.RGBA) bool {
	c := p.byName[name]
	if c == nil || c.Kind != KindColor {
		return false
	}
	v.A = 255
	if v == c.Color {
		return false
	}
	c.Color = v
	p.pub.Publish(c.onColor(v))
	return true
}

// Trigger presses a button. It reports whether an event was published.
func (p *Panel) Trigger(name string) bool {
	c := p.byName[name]
	if c == nil || c.Kind != KindAction {
		return false
	}
	p.pub.Publish(c.onAction())
	return true
}

// SetStylesheet replaces the stylesheet; the next Layout recomputes every node.
func (p *Panel) SetStylesheet(sheet *Stylesheet) {
	p.sheet = sheet
	p.laidOut = false
}

// Layout resolves styles and bounds for a screenW×screenH screen. Work is skipped when
// neither the screen size nor the panel changed since the last call.
func (p *Panel) Layout(screenW, screenH int32) {
	if p.laidOut && screenW == p.lastW && screenH == p.lastH {
		return
	}
	p.layout(screenW, screenH)
	p.laidOut = true
	p.lastW, p.lastH = screenW, screenH
}

// Root returns the panel box node.
func (p *Panel) Root() *Node {
	return p.root
}

// Title returns the title label node.
func (p *Panel) Title() *Node {
	return p.title
}

// Contains reports whether a screen point falls on the panel.
func (p *Panel) Contains(x, y float32) bool {
	return p.root.Bounds.Contains(x, y)
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// Control names of the cube settings panel.
const (
	Elevation  = "elevation"
	Visibility = "visibility"
	Wireframe  = "wireframe"
	Color      = "color"
	Spin       = "spin"
)

// Elevation slider limits.
const (
	ElevationMin = -200
	ElevationMax = 200
)

// NewCubePanel builds the settings panel for the cube from its current properties.
// rotateSpeed is part of the properties but has no control.
func NewCubePanel(props cube.Properties, sheet *Stylesheet, pub cube.Publisher) *Panel {
	p := NewPanel("Cube", sheet, pub)
	p.AddRange(Elevation, "Elevation", ElevationMin, ElevationMax, props.Elevation, func(v float32) cube.Event {
		return cube.ElevationChanged{Value: v}
	})
	p.AddBool(Visibility, "Visibility", props.Visibility, func(v bool) cube.Event {
		return cube.VisibilityChanged{Visible: v}
	})
	p.AddBool(Wireframe, "Wireframe", props.Wireframe, func(v bool) cube.Event {
		return cube.WireframeChanged{Enabled: v}
	})
	p.AddColor(Color, "Color", props.Color, func(c color.RGBA) cube.Event {
		return cube.ColorChanged{Color: c}
	})
	p.AddAction(Spin, "Spin", func() cube.Event {
		return cube.SpinToggled{}
	})
	return p
}
