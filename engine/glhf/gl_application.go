package glhf

import (
	"fmt"
	"math"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/smoothterrain/engine/util"
	"github.com/pkg/errors"
)

// GlApplication drives a GLFW window. Run must be called from the function
// passed to mainthread.Run: UpdateFunc runs on the calling goroutine and may use
// mainthread.Call itself, DrawFunc and all input handlers run on the main thread.
type GlApplication struct {
	Window             *glfw.Window
	TerminateFunc      func()
	UpdateFunc         func(elapsed float64)
	DrawFunc           func(elapsed float64)
	KeyHandler         func(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	MousePosHandler    func(xpos float64, ypos float64)
	MouseButtonHandler func(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)
	ScrollHandler      func(xoff float64, yoff float64)
	WindowWidth        int
	WindowHeight       int
	Title              string
	ClearColor         [3]float32
	ticks              uint64
	FramesPerSecond    float64
	FPSRunningAvg      float64
	FPSMin             float64
	FPSMax             float64
}

func (a *GlApplication) KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if a.KeyHandler != nil {
		a.KeyHandler(key, scancode, action, mods)
	}
}

func (a *GlApplication) MousePosCallback(w *glfw.Window, xpos float64, ypos float64) {
	if a.MousePosHandler != nil {
		a.MousePosHandler(xpos, ypos)
	}
}

func (a *GlApplication) ScrollCallback(w *glfw.Window, xoff float64, yoff float64) {
	if a.ScrollHandler != nil {
		a.ScrollHandler(xoff, yoff)
	}
}

func (a *GlApplication) MouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if a.MouseButtonHandler != nil {
		a.MouseButtonHandler(button, action, mods)
	}
}

// RegisterCallbacks wires the window's input callbacks to the handlers. Main thread only.
func (a *GlApplication) RegisterCallbacks() {
	a.Window.SetKeyCallback(a.KeyCallback)
	a.Window.SetCursorPosCallback(a.MousePosCallback)
	a.Window.SetMouseButtonCallback(a.MouseButtonCallback)
	a.Window.SetScrollCallback(a.ScrollCallback)
}

func (a *GlApplication) Run() {
	defer func() {
		if a.TerminateFunc != nil {
			mainthread.Call(a.TerminateFunc)
		}
	}()
	a.FPSMin = math.MaxFloat64
	previousTime := mainthread.CallVal(func() interface{} { return glfw.GetTime() }).(float64)
	shouldQuit := false
	for !shouldQuit {
		var now float64
		mainthread.Call(func() {
			now = glfw.GetTime()
		})
		elapsed := now - previousTime
		previousTime = now

		if a.UpdateFunc != nil {
			a.UpdateFunc(elapsed)
		}

		mainthread.Call(func() {
			if a.Window.ShouldClose() {
				shouldQuit = true
			}
			gl.ClearColor(a.ClearColor[0], a.ClearColor[1], a.ClearColor[2], 1)
			gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

			if a.DrawFunc != nil {
				a.DrawFunc(elapsed)
			}
			a.updateFrameStats(elapsed)

			a.Window.SwapBuffers()
			glfw.PollEvents()
		})
		a.ticks++
	}
}

func (a *GlApplication) updateFrameStats(elapsed float64) {
	if elapsed <= 0 {
		return
	}
	a.FramesPerSecond = 1.0 / elapsed
	if a.ticks%60 == 0 {
		sixtyTicksAverage := a.FPSRunningAvg
		a.Window.SetTitle(fmt.Sprintf("%s - FPS: %.0f (Avg: %.0f, Min: %.0f, Max: %.0f)", a.Title, a.FramesPerSecond, sixtyTicksAverage, a.FPSMin, a.FPSMax))
		a.FPSRunningAvg = a.FramesPerSecond * (1.0 / 60.0)
		a.FPSMin = math.MaxFloat64
		a.FPSMax = 0
		return
	}
	a.FPSRunningAvg += a.FramesPerSecond * (1.0 / 60.0)
	a.FPSMin = math.Min(a.FPSMin, a.FramesPerSecond)
	a.FPSMax = math.Max(a.FPSMax, a.FramesPerSecond)
}

// InitOpenGL opens a window with a 3.3 core context. Call it on the main thread.
func InitOpenGL(title string, width, height int) (*glfw.Window, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, errors.Wrap(err, "glfw init")
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, errors.Wrap(err, "create window")
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // enable (1) vsync

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, errors.Wrap(err, "gl init")
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	util.LogGlInfo(fmt.Sprintf("[GlApplication] OpenGL version %s", version))

	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.DEPTH_TEST)

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	return win, func() {
		glfw.Terminate()
	}, nil
}

// CheckForGLError logs and returns the pending GL error, if any.
func CheckForGLError(context string) bool {
	errorCodeOfGL := gl.GetError()
	if errorCodeOfGL != gl.NO_ERROR {
		util.LogGlError(fmt.Sprintf("[GL] %s: error 0x%x", context, errorCodeOfGL))
		return true
	}
	return false
}
