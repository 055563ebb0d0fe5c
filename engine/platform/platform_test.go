package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/spincube/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		key  glfw.Key
		mods glfw.ModifierKey
		want core.KeyCode
		ok   bool
	}{
		{"escape", glfw.KeyEscape, 0, core.KEY_ESCAPE, true},
		{"equal", glfw.KeyEqual, 0, core.KEY_EQUAL, true},
		{"shifted equal is plus", glfw.KeyEqual, glfw.ModShift, core.KEY_PLUS, true},
		{"minus", glfw.KeyMinus, 0, core.KEY_MINUS, true},
		{"keypad add", glfw.KeyKPAdd, 0, core.KEY_ADD, true},
		{"keypad subtract", glfw.KeyKPSubtract, 0, core.KEY_SUBTRACT, true},
		{"unmapped", glfw.KeyA, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.key, tt.mods)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHeadlessPlatform(t *testing.T) {
	p := New(true)
	require.True(t, p.Headless())
	require.NoError(t, p.Startup("test", 0, 0, 10, 10))
	require.True(t, p.PumpMessages())
	p.SwapBuffers()

	_, _, err := p.FramebufferSize()
	require.ErrorIs(t, err, core.ErrWindowUnavailable)
	require.NoError(t, p.Shutdown())
}

func TestKeyCallbackFeedsInput(t *testing.T) {
	require.True(t, core.EventSystemInitialize())
	defer core.EventSystemShutdown()
	require.NoError(t, core.InputInitialize())
	defer core.InputShutdown()

	var pressed []core.KeyCode
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, t, func(ctx core.EventContext) bool {
		pressed = append(pressed, ctx.Data.(*core.KeyEvent).KeyCode)
		return true
	})

	keyCallback(nil, glfw.KeyKPAdd, 0, glfw.Press, 0)
	keyCallback(nil, glfw.KeyKPAdd, 0, glfw.Repeat, 0)
	require.True(t, core.InputIsKeyDown(core.KEY_ADD))
	keyCallback(nil, glfw.KeyKPAdd, 0, glfw.Release, 0)
	require.False(t, core.InputIsKeyDown(core.KEY_ADD))
	keyCallback(nil, glfw.KeyEscape, 0, glfw.Press, 0)

	require.Equal(t, []core.KeyCode{core.KEY_ADD, core.KEY_ESCAPE}, pressed)
}
