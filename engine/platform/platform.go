package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/spincube/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Platform owns the application window. A headless platform has no window:
// it never asks to close and swapping buffers does nothing.
type Platform struct {
	Window   *glfw.Window
	headless bool
}

func New(headless bool) *Platform {
	return &Platform{
		Window:   nil,
		headless: headless,
	}
}

func (p *Platform) Headless() bool {
	return p.headless
}

// Startup opens a window with a current OpenGL 2.1 context.
func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if p.headless {
		core.LogInfo("platform running headless")
		return nil
	}
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		glfw.Terminate()
		return err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	p.Window = window

	p.Window.SetKeyCallback(keyCallback)
	p.Window.SetFramebufferSizeCallback(framebufferSizeCallback)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window == nil {
		return nil
	}
	p.Window.Destroy()
	p.Window = nil
	glfw.Terminate()
	return nil
}

// PumpMessages processes pending window events. It returns false once the
// window has been asked to close.
func (p *Platform) PumpMessages() bool {
	if p.Window == nil {
		return true
	}
	glfw.PollEvents()
	return !p.Window.ShouldClose()
}

func (p *Platform) SwapBuffers() {
	if p.Window != nil {
		p.Window.SwapBuffers()
	}
}

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size on high density displays.
func (p *Platform) FramebufferSize() (uint32, uint32, error) {
	if p.Window == nil {
		return 0, 0, core.ErrWindowUnavailable
	}
	w, h := p.Window.GetFramebufferSize()
	return uint32(w), uint32(h), nil
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	code, ok := translateKey(key, mods)
	if !ok {
		return
	}
	_ = core.InputProcessKey(code, action == glfw.Press)
}

// translateKey maps the keys the application reacts to. '+' has no key of
// its own on most layouts, so shift+'=' reports KEY_PLUS.
func translateKey(key glfw.Key, mods glfw.ModifierKey) (core.KeyCode, bool) {
	switch key {
	case glfw.KeyEscape:
		return core.KEY_ESCAPE, true
	case glfw.KeyEnter:
		return core.KEY_ENTER, true
	case glfw.KeySpace:
		return core.KEY_SPACE, true
	case glfw.KeyEqual:
		if mods&glfw.ModShift != 0 {
			return core.KEY_PLUS, true
		}
		return core.KEY_EQUAL, true
	case glfw.KeyMinus:
		return core.KEY_MINUS, true
	case glfw.KeyKPAdd:
		return core.KEY_ADD, true
	case glfw.KeyKPSubtract:
		return core.KEY_SUBTRACT, true
	}
	return 0, false
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: &core.SystemEvent{
			WindowWidth:  uint32(width),
			WindowHeight: uint32(height),
		},
	})
}
