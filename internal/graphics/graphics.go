package graphics

import (
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	// raylib (GLFW underneath) must be driven from the main OS thread.
	runtime.LockOSThread()
}

// Window configures the output surface.
type Window struct {
	Width, Height int32
	Title         string
	TargetFPS     int32
	Resizable     bool
}

// Hooks are called by Run. Resize gets the new screen size once before the first frame
// and again whenever the window is resized. Update runs before drawing; Draw runs between
// BeginDrawing and EndDrawing on a cleared screen.
type Hooks struct {
	Resize func(width, height int32)
	Update func()
	Draw   func()
}

// Run opens the window and runs the frame loop until the window is closed.
func Run(w Window, h Hooks) {
	if w.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	} else {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)

	h.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			h.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		h.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		h.Draw()
		rl.EndDrawing()
	}
}
