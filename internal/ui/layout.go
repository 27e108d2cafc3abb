package ui

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed default.css
var defaultCSS string

// DefaultStylesheet returns the built-in panel stylesheet.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: embedded stylesheet: %v", err))
	}
	return sheet
}

// LoadCSS loads and parses a CSS file from path.
func LoadCSS(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse stylesheet %s: %w", path, err)
	}
	return sheet, nil
}

// resolve returns the computed style for n: matching .class and #id rules merged in order, last wins.
func (s *Stylesheet) resolve(n *Node) ComputedStyle {
	merged := make(map[string]string)
	if s != nil {
		for _, rule := range s.Rules {
			sel := rule.Selector
			if len(sel) < 2 {
				continue
			}
			if (sel[0] == '.' && n.Class == sel[1:]) || (sel[0] == '#' && n.ID == sel[1:]) {
				for k, v := range rule.Props {
					merged[k] = v
				}
			}
		}
	}
	return ResolveProps(merged)
}

const (
	defaultTitleHeight = 24
	defaultRowHeight   = 24
)

// place positions a box of size w×h on a screenW×screenH screen using Left/Top or their percentages.
func place(style ComputedStyle, w, h, screenW, screenH int32) (x, y int32) {
	x, y = style.Left, style.Top
	if style.LeftPct >= 0 {
		x = (screenW - w) * style.LeftPct / 100
	}
	if style.TopPct >= 0 {
		y = (screenH - h) * style.TopPct / 100
	}
	return x, y
}

// layout resolves styles and bounds for the panel box, its title and its control rows.
// Rows are stacked top to bottom inside the panel's padding; the panel grows to fit them
// unless the stylesheet gives it a larger height.
func (p *Panel) layout(screenW, screenH int32) {
	p.root.Style = p.sheet.resolve(p.root)
	p.title.Style = p.sheet.resolve(p.title)
	for _, c := range p.controls {
		c.Node.Style = p.sheet.resolve(c.Node)
	}

	pad := p.root.Style.Padding
	titleH := p.title.Style.Height
	if titleH <= 0 {
		titleH = defaultTitleHeight
	}
	total := pad + titleH
	for _, c := range p.controls {
		total += rowHeight(c.Node.Style)
	}
	total += pad

	w := p.root.Style.Width
	h := max(p.root.Style.Height, total)
	x, y := place(p.root.Style, w, h, screenW, screenH)
	p.root.Bounds = Rect{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}

	inner := float32(w - 2*pad)
	cy := y + pad
	p.title.Bounds = Rect{X: float32(x + pad), Y: float32(cy), Width: inner, Height: float32(titleH)}
	cy += titleH
	for _, c := range p.controls {
		rh := rowHeight(c.Node.Style)
		c.Node.Bounds = Rect{X: float32(x + pad), Y: float32(cy), Width: inner, Height: float32(rh)}
		cy += rh
	}
}

func rowHeight(style ComputedStyle) int32 {
	if style.Height > 0 {
		return style.Height
	}
	return defaultRowHeight
}
