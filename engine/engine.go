package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/spaghettifunk/spincube/engine/config"
	"github.com/spaghettifunk/spincube/engine/core"
	"github.com/spaghettifunk/spincube/engine/platform"
	"github.com/spaghettifunk/spincube/engine/renderer"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	config       *config.Config
	watcher      *config.Watcher
	isRunning    atomic.Bool
	isSuspended  bool
	platform     *platform.Platform
	backend      renderer.Backend
	runID        uuid.UUID
	width        uint32
	height       uint32
	clock        *core.Clock
	lastTime     float64
	frameNumber  uint64
}

// New boots an engine for g. watcher may be nil when the configuration does
// not come from a file.
func New(g *Game, watcher *config.Watcher) (*Engine, error) {
	if g == nil || g.Config == nil {
		return nil, fmt.Errorf("%w: game has no configuration", core.ErrInvalidConfig)
	}
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		currentStage: EngineStageBooting,
		gameInstance: g,
		config:       g.Config,
		watcher:      watcher,
		runID:        uuid.New(),
		clock:        core.NewClock(),
		isSuspended:  false,
		width:        g.Config.Window.Width,
		height:       g.Config.Window.Height,
		lastTime:     0,
	}

	backend, err := newBackend(g.Config, e.runID)
	if err != nil {
		return nil, err
	}
	e.backend = backend
	e.platform = platform.New(g.Config.Output.Backend != config.BackendWindow)

	core.SetLogLevel(g.Config.LogLevel())
	core.LogInfo("booting %q (run %s, backend %s)", g.Config.Application.Name, e.runID, g.Config.Output.Backend)

	e.currentStage = EngineStageBootComplete
	return e, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageBootComplete {
		return core.ErrEngineNotInitialized
	}
	e.currentStage = EngineStageInitializing

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e, e.onResized)

	cfg := e.config
	if err := e.platform.Startup(cfg.Application.Name, cfg.Window.PosX, cfg.Window.PosY, cfg.Window.Width, cfg.Window.Height); err != nil {
		return err
	}
	if w, h, err := e.platform.FramebufferSize(); err == nil {
		e.width, e.height = w, h
	}

	if err := e.backend.Initialize(cfg.Application.Name, e.width, e.height); err != nil {
		return err
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	e.isRunning.Store(true)
	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return core.ErrEngineNotInitialized
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning.Load() {
		if !e.platform.PumpMessages() {
			e.isRunning.Store(false)
			break
		}

		e.drainConfigUpdates()

		if e.isSuspended {
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("game update failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}

		packet := &renderer.RenderPacket{
			DeltaTime:   delta,
			FrameNumber: e.frameNumber,
			ClearColour: e.config.Camera.ClearColour,
		}
		if err := e.gameInstance.FnRender(packet, delta); err != nil {
			core.LogError("game render failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}

		if err := e.backend.DrawFrame(packet); err != nil {
			core.LogError("draw frame failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}
		e.platform.SwapBuffers()

		core.MetricsUpdate(delta)
		e.frameNumber++
		if e.frameNumber%600 == 0 {
			fps, frameTime := core.MetricsFrame()
			core.LogDebug("FPS: %5.1f (%4.1fms)", fps, frameTime)
		}

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		if err := core.InputUpdate(delta); err != nil {
			return err
		}

		e.lastTime = currentTime

		if limit := e.config.Output.Frames; limit > 0 && e.frameNumber >= limit {
			core.LogInfo("rendered %d frames, stopping", e.frameNumber)
			e.isRunning.Store(false)
		}
	}

	return nil
}

// Stop asks the run loop to exit after the current frame. It is safe to
// call from any goroutine.
func (e *Engine) Stop() {
	e.isRunning.Store(false)
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning.Store(false)

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError("game shutdown failed: %s", err)
		}
	}
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			core.LogWarn("closing config watcher: %s", err)
		}
	}
	if err := e.backend.Shutdown(); err != nil {
		return err
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	core.LogInfo("shut down after %d frames", core.MetricsTotalFrames())
	return nil
}

// FrameNumber returns how many frames have been drawn.
func (e *Engine) FrameNumber() uint64 {
	return e.frameNumber
}

// GetFramebufferSize returns the width and height (in this order) of the
// application framebuffer.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

// drainConfigUpdates applies every pending reload on the main loop.
func (e *Engine) drainConfigUpdates() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case cfg := <-e.watcher.Updates():
			e.applyConfig(cfg)
		default:
			return
		}
	}
}

func (e *Engine) applyConfig(cfg *config.Config) {
	// Output settings are fixed for the lifetime of the backend; they may
	// also come from command line overrides the file does not know about.
	if cfg.Output != e.config.Output {
		core.LogWarn("[output] changes need a restart, keeping the current settings")
		cfg.Output = e.config.Output
	}
	core.SetLogLevel(cfg.LogLevel())
	e.config = cfg
	e.gameInstance.Config = cfg
	core.LogInfo("configuration reloaded")
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_CONFIG_RELOADED,
		Data: cfg,
	})
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning.Store(false)
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	if ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	if err := e.backend.Resized(width, height); err != nil {
		core.LogError(err.Error())
	}
	return false
}
