package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionFromKeys(t *testing.T) {
	assert.Equal(t, PaddleUp, DirectionFromKeys(true, false))
	assert.Equal(t, PaddleDown, DirectionFromKeys(false, true))
	assert.Equal(t, PaddleNone, DirectionFromKeys(false, false))
	assert.Equal(t, PaddleNone, DirectionFromKeys(true, true))
}

func TestNewPaddlePlacement(t *testing.T) {
	left := NewPaddle(PaddleLeft)
	right := NewPaddle(PaddleRight)

	assert.Equal(t, Vec2{X: -260, Y: 0}, left.Position)
	assert.Equal(t, Vec2{X: 260, Y: 0}, right.Position)
	assert.Equal(t, PaddleMinSpeed, left.Speed)
	assert.Equal(t, PaddleNone, right.Direction)
}

func TestPaddleClampTop(t *testing.T) {
	p := NewPaddle(PaddleLeft)
	p.Position.Y = 150
	p.Speed = 300
	p.SetDirection(true, false)

	p.Move(1)
	assert.Equal(t, 450.0, p.Position.Y)

	p.ClampToArena()
	assert.Equal(t, 160.0, p.Position.Y)
	assert.Equal(t, ArenaHeightHalf, p.Box().Top())
}

func TestPaddleClampBottom(t *testing.T) {
	p := NewPaddle(PaddleRight)
	p.SetDirection(false, true)

	p.Move(2)
	p.ClampToArena()

	assert.Equal(t, -160.0, p.Position.Y)
	assert.Equal(t, -ArenaHeightHalf, p.Box().Bottom())
}

func TestPaddleConflictingKeysDoNotMove(t *testing.T) {
	p := NewPaddle(PaddleLeft)
	p.SetDirection(true, true)
	p.Move(1)
	assert.Equal(t, 0.0, p.Position.Y)
}

func TestPaddleRamp(t *testing.T) {
	p := NewPaddle(PaddleLeft)

	p.SetDirection(true, false)
	p.Ramp()
	assert.Equal(t, PaddleMinSpeed+PaddleAcceleration, p.Speed)

	for i := 0; i < 50; i++ {
		p.Ramp()
	}
	assert.Equal(t, PaddleMaxSpeed, p.Speed)

	p.SetDirection(false, false)
	p.Ramp()
	assert.Equal(t, PaddleMaxSpeed-PaddleAcceleration, p.Speed)

	for i := 0; i < 50; i++ {
		p.Ramp()
	}
	assert.Equal(t, PaddleMinSpeed, p.Speed)
}
