package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ballAt(x, y float64) Box {
	return Box{Center: Vec2{X: x, Y: y}, Width: BallSize, Height: BallSize}
}

func rightPaddleBox() Box {
	return Box{Center: Vec2{X: ArenaWidthHalf - PaddleWallOffset, Y: 0}, Width: PaddleWidth, Height: PaddleHeight}
}

func TestCollide(t *testing.T) {
	paddle := rightPaddleBox() // x: 250..270, y: -40..40

	examples := []struct {
		Name     string
		Ball     Box
		Expected Collision
	}{
		{Name: "Should miss when far away", Ball: ballAt(0, 0), Expected: CollisionNone},
		{Name: "Should miss when edges only touch", Ball: ballAt(235, 0), Expected: CollisionNone},
		{Name: "Should hit the left face", Ball: ballAt(240, 0), Expected: CollisionLeft},
		{Name: "Should hit the right face", Ball: ballAt(280, 0), Expected: CollisionRight},
		{Name: "Should land on the top face", Ball: ballAt(260, 50), Expected: CollisionTop},
		{Name: "Should hit the bottom face", Ball: ballAt(260, -50), Expected: CollisionBottom},
		{Name: "Should prefer the shallower axis", Ball: ballAt(242, 53), Expected: CollisionTop},
		{Name: "Should break corner ties on the x axis", Ball: ballAt(240, 50), Expected: CollisionLeft},
		{Name: "Should report inside when straddling the paddle", Ball: ballAt(259, 0), Expected: CollisionInside},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			assert.Equal(t, example.Expected, Collide(example.Ball, paddle))
		})
	}
}

func TestNormalizeFallsBackOnDegenerateVector(t *testing.T) {
	for _, v := range []Vec2{{}, {X: math.NaN(), Y: 1}, {X: math.Inf(1), Y: 0}} {
		dir := Normalize(v)
		assert.InDelta(t, 1.0, dir.Length(), 1e-9)
		assert.InDelta(t, BallDefaultAngle, AngleOf(dir), 1e-9)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	dir := Normalize(Vec2{X: 3, Y: -4})
	assert.InDelta(t, 0.6, dir.X, 1e-12)
	assert.InDelta(t, -0.8, dir.Y, 1e-12)
}

func TestAngleRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, 30, 90, 150, -30, -120, 179} {
		assert.InDelta(t, angle, AngleOf(DirectionFromAngle(angle)), 1e-9)
	}
	assert.InDelta(t, 180, math.Abs(AngleOf(DirectionFromAngle(180))), 1e-9)
}
