package main

import (
	"PongSim/core"
	"testing"
	"time"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
)

func TestHeldKeysExpireAfterHoldWindow(t *testing.T) {
	keys := newHeldKeys(100 * time.Millisecond)
	now := time.Now()

	keys.press(KeyLeftUp, now)
	keys.press(KeyRightDown, now.Add(50*time.Millisecond))

	assert.Equal(t, core.Input{LeftUp: true, RightDown: true}, keys.input(now.Add(80*time.Millisecond)))
	assert.Equal(t, core.Input{RightDown: true}, keys.input(now.Add(120*time.Millisecond)))
	assert.Equal(t, core.Input{}, keys.input(now.Add(time.Second)))
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, KeyLeftUp, keyName(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone)))
	assert.Equal(t, KeyRestart, keyName(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.Equal(t, KeyRightUp, keyName(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.Equal(t, KeyQuit, keyName(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestFrameDelta(t *testing.T) {
	now := time.Now()
	assert.InDelta(t, 0.016, frameDelta(now, now.Add(16*time.Millisecond), 50*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.05, frameDelta(now, now.Add(time.Second), 50*time.Millisecond), 1e-9)
	assert.Equal(t, 0.0, frameDelta(now, now.Add(-time.Second), 50*time.Millisecond))
}

func TestToCells(t *testing.T) {
	arena := core.Box{Width: core.ArenaWidth, Height: core.ArenaHeight}

	full := toCells(arena, arena, 120, 40)
	assert.Equal(t, cellRect{row: 0, col: 0, width: 120, height: 40}, full)

	paddle := core.NewPaddle(core.PaddleLeft)
	r := toCells(paddle.Box(), arena, 120, 40)
	assert.Equal(t, 6, r.col)
	assert.Equal(t, 4, r.width)
	assert.Equal(t, 16, r.row)
	assert.Equal(t, 8, r.height)
}

func TestScoreSinkPayload(t *testing.T) {
	examples := []struct {
		Name     string
		Event    core.Event
		Score    core.Score
		Expected string
	}{
		{Name: "Goal", Event: core.GoalEvent(true), Score: core.Score{Left: 1}, Expected: "GLtrue~SC1,0~"},
		{Name: "Game end", Event: core.GameEndEvent(5, 2), Score: core.Score{}, Expected: "GE5,2~SC0,0~"},
		{Name: "Restart", Event: core.Event{Kind: core.EventRestart}, Score: core.Score{}, Expected: "RS~SC0,0~"},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			payload, err := scoreSinkPayload(example.Event, example.Score)
			assert.NoError(t, err)
			assert.Equal(t, example.Expected, payload)
		})
	}
}

func TestScoreSinkPayloadRejectsLossyEvent(t *testing.T) {
	// 進球事件不帶最終比分，編碼後會遺失這些欄位
	e := core.GoalEvent(false)
	e.FinalLeft = 3

	_, err := scoreSinkPayload(e, core.Score{})
	assert.Error(t, err)
}
