package game

import (
	"github.com/spaghettifunk/spincube/engine"
	"github.com/spaghettifunk/spincube/engine/config"
	"github.com/spaghettifunk/spincube/engine/core"
	"github.com/spaghettifunk/spincube/engine/renderer"
	"github.com/spaghettifunk/spincube/engine/scene"
)

type CubeGame struct {
	*engine.Game
}

type gameState struct {
	scene  *scene.Scene
	width  uint32
	height uint32
}

func NewCubeGame(cfg *config.Config) *CubeGame {
	g := &CubeGame{
		Game: &engine.Game{
			Config: cfg,
			State: &gameState{
				width:  cfg.Window.Width,
				height: cfg.Window.Height,
			},
		},
	}

	g.FnInitialize = g.Initialize
	g.FnUpdate = g.Update
	g.FnRender = g.Render
	g.FnOnResize = g.OnResize
	g.FnShutdown = g.Shutdown

	return g
}

func (g *CubeGame) state() *gameState {
	return g.State.(*gameState)
}

// Scene returns the animated scene, nil before Initialize.
func (g *CubeGame) Scene() *scene.Scene {
	return g.state().scene
}

func (g *CubeGame) Initialize() error {
	core.LogDebug("CubeGame Initialize fn....")

	state := g.state()
	state.scene = scene.New(g.Config)

	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, g, g.onKey)
	core.EventRegister(core.EVENT_CODE_CONFIG_RELOADED, g, g.onConfigReloaded)
	return nil
}

func (g *CubeGame) Update(deltaTime float64) error {
	g.state().scene.Advance()
	return nil
}

func (g *CubeGame) Render(packet *renderer.RenderPacket, deltaTime float64) error {
	state := g.state()
	aspect := float32(1)
	if state.height != 0 {
		aspect = float32(state.width) / float32(state.height)
	}
	packet.SetScene(state.scene, aspect)
	return nil
}

func (g *CubeGame) OnResize(width uint32, height uint32) error {
	state := g.state()
	state.width = width
	state.height = height
	return nil
}

func (g *CubeGame) Shutdown() error {
	core.EventUnregister(core.EVENT_CODE_KEY_PRESSED, g)
	core.EventUnregister(core.EVENT_CODE_CONFIG_RELOADED, g)
	return nil
}

func (g *CubeGame) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return false
	}
	switch ke.KeyCode {
	case core.KEY_PLUS, core.KEY_EQUAL, core.KEY_ADD:
		g.state().scene.IncreaseStep()
		return true
	case core.KEY_MINUS, core.KEY_SUBTRACT:
		g.state().scene.DecreaseStep()
		return true
	}
	return false
}

func (g *CubeGame) onConfigReloaded(context core.EventContext) bool {
	cfg, ok := context.Data.(*config.Config)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	g.state().scene.Apply(cfg)
	return false
}
