package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/spincube/engine"
	"github.com/spaghettifunk/spincube/engine/config"
	"github.com/spaghettifunk/spincube/engine/core"
	"github.com/spaghettifunk/spincube/engine/math"
	"github.com/spaghettifunk/spincube/engine/renderer"
	"github.com/spaghettifunk/spincube/engine/scene"
)

const delta = 1e-7

func setup(t *testing.T) *CubeGame {
	t.Helper()
	require.True(t, core.EventSystemInitialize())
	require.NoError(t, core.InputInitialize())
	t.Cleanup(func() {
		_ = core.InputShutdown()
		_ = core.EventSystemShutdown()
	})

	g := NewCubeGame(config.Default())
	require.NoError(t, g.Initialize())
	return g
}

func press(t *testing.T, key core.KeyCode) {
	t.Helper()
	require.NoError(t, core.InputProcessKey(key, true))
	require.NoError(t, core.InputProcessKey(key, false))
}

func TestKeysChangeStep(t *testing.T) {
	g := setup(t)
	s := g.Scene()
	require.InDelta(t, 0.0001, s.Step, delta)

	press(t, core.KEY_PLUS)
	require.InDelta(t, 0.0002, s.Step, delta)
	press(t, core.KEY_EQUAL)
	press(t, core.KEY_ADD)
	require.InDelta(t, 0.0004, s.Step, delta)

	press(t, core.KEY_MINUS)
	press(t, core.KEY_SUBTRACT)
	require.InDelta(t, 0.0002, s.Step, delta)

	for i := 0; i < 5; i++ {
		press(t, core.KEY_MINUS)
	}
	require.Equal(t, float32(0), s.Step)

	for i := 0; i < 20; i++ {
		press(t, core.KEY_PLUS)
	}
	require.InDelta(t, 0.001, s.Step, delta)

	press(t, core.KEY_SPACE)
	require.InDelta(t, 0.001, s.Step, delta)
}

func TestUpdateAdvancesRotation(t *testing.T) {
	g := setup(t)
	for i := 0; i < 10; i++ {
		require.NoError(t, g.Update(0.016))
	}
	require.InDelta(t, 0.001, g.Scene().Rotation, 1e-6)
}

func TestRenderFillsPacket(t *testing.T) {
	g := setup(t)
	require.NoError(t, g.OnResize(200, 100))

	packet := &renderer.RenderPacket{}
	require.NoError(t, g.Render(packet, 0.016))
	require.Len(t, packet.Models, scene.CubeCount)
	require.NotNil(t, packet.Geometry)

	want := math.NewMatrixPerspective(math.DegToRad(60), 2, 0.1, 80)
	for i := range want.Data {
		require.InDelta(t, want.Data[i], packet.Projection.Data[i], 1e-5)
	}
}

func TestConfigReloadUpdatesScene(t *testing.T) {
	g := setup(t)
	g.Scene().Rotation = 1.5

	cfg := config.Default()
	cfg.Animation.MaxStep = 0.01
	cfg.Animation.RotationStep = 0.005
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: cfg})

	require.InDelta(t, 0.005, g.Scene().Step, delta)
	require.InDelta(t, 0.01, g.Scene().MaxStep, delta)
	require.InDelta(t, 1.5, g.Scene().Rotation, delta)
}

func TestShutdownUnregisters(t *testing.T) {
	g := setup(t)
	require.NoError(t, g.Shutdown())
	press(t, core.KEY_PLUS)
	require.InDelta(t, 0.0001, g.Scene().Step, delta)
}

// Full headless run: the engine drives the game into the software renderer.
func TestHeadlessRun(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Backend = config.BackendSoftware
	cfg.Output.Frames = 3
	cfg.Window.Width = 64
	cfg.Window.Height = 64

	g := NewCubeGame(cfg)
	e, err := engine.New(g.Game, nil)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run())
	require.NoError(t, e.Shutdown())
	require.Equal(t, uint64(3), e.FrameNumber())
	require.InDelta(t, 0.0003, g.Scene().Rotation, 1e-6)
}
