package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerOnce(t *testing.T) {
	timer := NewTimer(1, TimerOnce)

	assert.Equal(t, 0, timer.Tick(0.5))
	assert.False(t, timer.Finished())
	assert.Equal(t, 1, timer.Tick(0.75))
	assert.True(t, timer.Finished())
	assert.Equal(t, 1.0, timer.Elapsed())
	assert.Equal(t, 0, timer.Tick(5))

	timer.Reset()
	assert.False(t, timer.Finished())
	assert.Equal(t, 0.0, timer.Elapsed())
}

func TestTimerRepeating(t *testing.T) {
	timer := NewTimer(0.1, TimerRepeating)

	assert.Equal(t, 0, timer.Tick(0.05))
	assert.Equal(t, 2, timer.Tick(0.2))
	assert.InDelta(t, 0.05, timer.Elapsed(), 1e-9)
}

func TestTimerPaused(t *testing.T) {
	timer := NewTimer(1, TimerRepeating)
	timer.Pause()

	assert.Equal(t, 0, timer.Tick(3))
	assert.Equal(t, 0.0, timer.Elapsed())

	timer.Unpause()
	assert.Equal(t, 3, timer.Tick(3))
}

func TestTimerIgnoresNonPositiveDelta(t *testing.T) {
	timer := NewTimer(1, TimerOnce)
	assert.Equal(t, 0, timer.Tick(-1))
	assert.Equal(t, 0.0, timer.Elapsed())
}

func TestRoundTimerLifecycle(t *testing.T) {
	rt := NewRoundTimer(BallFreezeDurationSeconds)
	assert.True(t, rt.Running())

	assert.False(t, rt.Tick(1.0))
	assert.True(t, rt.Running())

	assert.True(t, rt.Tick(1.0))
	assert.False(t, rt.Running())
	assert.Equal(t, 0.0, rt.Elapsed())

	// 暫停中不再累加
	assert.False(t, rt.Tick(5))
	assert.False(t, rt.Running())

	rt.Arm()
	assert.True(t, rt.Running())
	assert.Equal(t, 0.0, rt.Elapsed())
}
