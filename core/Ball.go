package core

type Ball struct {
	Position  Vec2
	Direction Vec2
}

// NewBall 方向在第一次 Respawn 前為零向量
func NewBall() *Ball {
	return &Ball{}
}

// SpawnDirection 一半機率朝右邊球拍 [-45°, 45°]，一半朝左邊球拍 [135°, 225°]
func SpawnDirection(r Randomizer) Vec2 {
	var angle float64
	if r.Float64() < 0.5 {
		angle = uniform(r, -45, 45)
	} else {
		angle = uniform(r, 135, 225)
	}
	return DirectionFromAngle(angle)
}

// Respawn 回到場地中心並重新決定方向
func (b *Ball) Respawn(r Randomizer) {
	b.Position = Vec2{}
	b.Direction = SpawnDirection(r)
}

func (b *Ball) Box() Box {
	return Box{Center: b.Position, Width: BallSize, Height: BallSize}
}

func (b *Ball) Angle() float64 {
	return AngleOf(b.Direction)
}

func (b *Ball) SetAngle(degrees float64) {
	b.Direction = DirectionFromAngle(degrees)
}

func (b *Ball) Move(dt float64) {
	b.Position = b.Position.Add(b.Direction.Scale(BallSpeed * dt))
}

// BounceWalls 碰到上下牆時反彈並把球貼回牆邊，回傳是否有反彈。
// 已經往牆外離開的球只貼回牆邊，不再反轉。
func (b *Ball) BounceWalls() bool {
	bounced := false

	if b.Position.Y+BallSizeHalf > ArenaHeightHalf {
		b.Position.Y = ArenaHeightHalf - BallSizeHalf
		if b.Direction.Y > 0 {
			b.SetAngle(-b.Angle())
			bounced = true
		}
	}

	if b.Position.Y-BallSizeHalf < -ArenaHeightHalf {
		b.Position.Y = -ArenaHeightHalf + BallSizeHalf
		if b.Direction.Y < 0 {
			b.SetAngle(-b.Angle())
			bounced = true
		}
	}

	return bounced
}

// BouncePaddle 處理球與單一球拍的碰撞，回傳撞到的面(CollisionNone 表示沒碰到)
func (b *Ball) BouncePaddle(p *Paddle) Collision {
	paddle := p.Box()
	collision := Collide(b.Box(), paddle)

	switch collision {
	case CollisionTop:
		b.Position.Y = paddle.Top() + BallSizeHalf
		if b.Direction.Y < 0 {
			b.SetAngle(-b.Angle())
		}

	case CollisionBottom:
		b.Position.Y = paddle.Bottom() - BallSizeHalf
		if b.Direction.Y > 0 {
			b.SetAngle(-b.Angle())
		}

	case CollisionLeft:
		b.Position.X = paddle.Left() - BallSizeHalf
		if b.Direction.X > 0 {
			b.SetAngle(180 - b.Angle())
		}

	case CollisionRight:
		b.Position.X = paddle.Right() + BallSizeHalf
		if b.Direction.X < 0 {
			b.SetAngle(180 - b.Angle())
		}

	case CollisionInside:
		// 球整個卡進球拍：一律移到朝向場中的那一側，往 x=0 送回
		if p.Side == PaddleLeft {
			b.Position.X = paddle.Right() + BallSizeHalf
			b.SetAngle(0)
		} else {
			b.Position.X = paddle.Left() - BallSizeHalf
			b.SetAngle(180)
		}
		b.Position.Y = 0
	}

	return collision
}

// CheckGoal 球完全離開左右邊界時回傳 scored=true。
// leftScored=false 表示右邊玩家得分。
func (b *Ball) CheckGoal() (scored bool, leftScored bool) {
	ballLeft := b.Position.X - BallSizeHalf
	ballRight := b.Position.X + BallSizeHalf

	if ballRight < -ArenaWidthHalf {
		return true, false
	}
	if ballLeft > ArenaWidthHalf {
		return true, true
	}
	return false, false
}
