package core

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEvents_RegisterFireUnregister(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()
	require.False(t, EventSystemInitialize(), "second initialization is rejected")

	var order []string
	first, second := "first", "second"
	require.True(t, EventRegister(EVENT_CODE_APPLICATION_QUIT, first, func(EventContext) bool {
		order = append(order, first)
		return false
	}))
	require.True(t, EventRegister(EVENT_CODE_APPLICATION_QUIT, second, func(EventContext) bool {
		order = append(order, second)
		return true
	}))
	require.False(t, EventRegister(EVENT_CODE_APPLICATION_QUIT, first, func(EventContext) bool { return true }))

	require.True(t, EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}))
	require.Equal(t, []string{first, second}, order)

	require.False(t, EventFire(EventContext{Type: EVENT_CODE_RESIZED}), "no listeners")

	require.True(t, EventUnregister(EVENT_CODE_APPLICATION_QUIT, second))
	require.False(t, EventUnregister(EVENT_CODE_APPLICATION_QUIT, second))
	order = nil
	require.False(t, EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}))
	require.Equal(t, []string{first}, order)
}

func TestInput_ProcessKeyFiresOnChange(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()
	require.NoError(t, InputInitialize())
	defer InputShutdown()

	var pressed, released []KeyCode
	EventRegister(EVENT_CODE_KEY_PRESSED, "test", func(ctx EventContext) bool {
		pressed = append(pressed, ctx.Data.(*KeyEvent).KeyCode)
		return true
	})
	EventRegister(EVENT_CODE_KEY_RELEASED, "test", func(ctx EventContext) bool {
		released = append(released, ctx.Data.(*KeyEvent).KeyCode)
		return true
	})

	require.NoError(t, InputProcessKey(KEY_PLUS, true))
	require.NoError(t, InputProcessKey(KEY_PLUS, true))
	require.True(t, InputIsKeyDown(KEY_PLUS))
	require.False(t, InputWasKeyDown(KEY_PLUS))

	require.NoError(t, InputUpdate(0))
	require.True(t, InputWasKeyDown(KEY_PLUS))

	require.NoError(t, InputProcessKey(KEY_PLUS, false))
	require.Equal(t, []KeyCode{KEY_PLUS}, pressed, "repeated press does not refire")
	require.Equal(t, []KeyCode{KEY_PLUS}, released)
}

func TestMetrics_AverageAndFPS(t *testing.T) {
	require.NoError(t, MetricsInitialize())

	for i := 0; i < int(AVG_COUNT); i++ {
		MetricsUpdate(0.010)
	}
	_, avg := MetricsFrame()
	require.InDelta(t, 10.0, avg, 1e-9)

	for i := 0; i < int(AVG_COUNT); i++ {
		MetricsUpdate(0.020)
	}
	_, avg = MetricsFrame()
	require.InDelta(t, 20.0, avg, 1e-9, "average is recomputed, not accumulated")

	for i := 0; i < 100; i++ {
		MetricsUpdate(0.020)
	}
	fps, _ := MetricsFrame()
	require.InDelta(t, 50, fps, 1)
	require.Equal(t, uint64(160), MetricsTotalFrames())
}

func TestClock_Elapsed(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewClock()
	c.now = func() time.Time { return now }

	c.Update()
	require.Zero(t, c.Elapsed(), "not started")

	c.Start()
	now = now.Add(1500 * time.Millisecond)
	c.Update()
	require.InDelta(t, 1.5, c.Elapsed(), 1e-9)

	c.Stop()
	now = now.Add(time.Second)
	c.Update()
	require.InDelta(t, 1.5, c.Elapsed(), 1e-9)
}

func TestLogging_LevelAndOutput(t *testing.T) {
	lvl, err := ParseLogLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, WarnLevel, lvl)

	_, err = ParseLogLevel("chatty")
	require.ErrorIs(t, err, ErrInvalidConfig)

	var buf bytes.Buffer
	prev := GetLogLevel()
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)
	defer SetLogLevel(prev)

	SetLogLevel(WarnLevel)
	LogInfo("hidden %d", 1)
	require.Empty(t, buf.String())
	LogWarn("shown %d", 2)
	require.Contains(t, buf.String(), "shown 2")
}
