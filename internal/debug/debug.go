package debug

import (
	"fmt"
	"runtime"

	"cubeview/internal/cube"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
	logFontSize    = 10
	logLineHeight  = logFontSize + 2
	// LogLines is how many recent log records the overlay shows.
	LogLines = 8
)

// Overlay draws runtime counters in the top-left corner, away from the settings panel, and
// the tail of the log in the bottom-left. All lines are off by default.
type Overlay struct {
	ShowFPS   bool
	ShowMem   bool
	ShowState bool
	ShowLog   bool

	state      *cube.State
	logLines   func() []string
	logTail    []string
	frameCount uint32
	fpsText    string
	memText    string
	stateText  string
	memStats   runtime.MemStats
}

// New returns an overlay that can report on state and on the records returned by logLines.
func New(state *cube.State, logLines func() []string) *Overlay {
	return &Overlay{state: state, logLines: logLines}
}

func (o *Overlay) refresh() {
	if o.ShowFPS {
		o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if o.ShowMem {
		runtime.ReadMemStats(&o.memStats)
		o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
	}
	if o.ShowState {
		c := o.state.Cube
		o.stateText = fmt.Sprintf("Size: %.0f (min %.0f)  Scale: %.3f  Spin: %t",
			c.Size, o.state.Options().MinSize, c.Scale(), o.state.Spinning)
	}
	if o.ShowLog && o.logLines != nil {
		o.logTail = tail(o.logLines(), LogLines)
	}
}

func tail(lines []string, n int) []string {
	if len(lines) > n {
		return lines[len(lines)-n:]
	}
	return lines
}

// Draw renders the enabled lines. Call after the scene so the text is on top.
func (o *Overlay) Draw() {
	o.frameCount++
	if o.frameCount%updateInterval == 1 {
		o.refresh()
	}
	y := int32(padding)
	for _, line := range []struct {
		on   bool
		text string
	}{
		{o.ShowFPS, o.fpsText},
		{o.ShowMem, o.memText},
		{o.ShowState, o.stateText},
	} {
		if !line.on || line.text == "" {
			continue
		}
		rl.DrawText(line.text, padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if !o.ShowLog {
		return
	}
	y = int32(rl.GetScreenHeight()) - padding - int32(len(o.logTail))*logLineHeight
	for _, line := range o.logTail {
		rl.DrawText(line, padding, y, logFontSize, rl.LightGray)
		y += logLineHeight
	}
}
