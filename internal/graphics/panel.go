package graphics

import (
	"fmt"

	"cubeview/internal/ui"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	labelWidthRatio = 0.35
	// colorPickerHueBar leaves room on the right for raygui's hue strip.
	colorPickerHueBar = 30
)

func rect(r ui.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.Width, r.Height)
}

func drawBox(n *ui.Node) {
	s := n.Style
	x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
	w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)
	if s.Background.A > 0 {
		rl.DrawRectangle(x, y, w, h, s.Background)
	}
	if s.HasBorder && w > 0 && h > 0 {
		rl.DrawRectangleLines(x, y, w, h, s.Border)
	}
}

func drawText(n *ui.Node, text string, x float32) {
	s := n.Style
	y := n.Bounds.Y + (n.Bounds.Height-float32(s.FontSize))/2
	if s.AlignTop {
		y = n.Bounds.Y + float32(s.Padding)
	}
	rl.DrawText(text, int32(x), int32(y), s.FontSize, s.Color)
}

// DrawPanel lays out p for the current screen, draws it, and pushes widget changes back into
// the panel, which publishes them as events.
func DrawPanel(p *ui.Panel) {
	p.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

	drawBox(p.Root())
	title := p.Title()
	drawText(title, title.Text, title.Bounds.X)

	for _, c := range p.Controls() {
		n := c.Node
		drawBox(n)
		labelW := n.Bounds.Width * labelWidthRatio
		widget := n.Bounds
		widget.X += labelW
		widget.Width -= labelW
		pad := float32(n.Style.Padding)
		widget.Y += pad / 2
		widget.Height -= pad

		switch c.Kind {
		case ui.KindRange:
			drawText(n, c.Label, n.Bounds.X)
			v := gui.Slider(rect(widget), "", fmt.Sprintf("%.0f", c.Value), c.Value, c.Min, c.Max)
			p.SetRange(c.Name, v)
		case ui.KindBool:
			drawText(n, c.Label, n.Bounds.X)
			box := widget
			box.Width = box.Height
			p.SetBool(c.Name, gui.CheckBox(rect(box), "", c.Checked))
		case ui.KindColor:
			drawText(n, c.Label, n.Bounds.X)
			widget.Width -= colorPickerHueBar
			picked := gui.ColorPicker(rect(widget), "", c.Color)
			// The picker round-trips through HSV every frame; only take its value while it is being dragged.
			hit := widget
			hit.Width += colorPickerHueBar
			if rl.IsMouseButtonDown(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(rl.GetMousePosition(), rect(hit)) {
				p.SetColor(c.Name, picked)
			}
		case ui.KindAction:
			if gui.Button(rect(n.Bounds), c.Label) {
				p.Trigger(c.Name)
			}
		}
	}
}
