package core

type PaddleSide int

const (
	PaddleLeft PaddleSide = iota
	PaddleRight
)

func (s PaddleSide) String() string {
	if s == PaddleLeft {
		return "Left"
	}
	return "Right"
}

type PaddleDirection int

const (
	PaddleNone PaddleDirection = iota // 不動
	PaddleUp
	PaddleDown
)

func (d PaddleDirection) String() string {
	switch d {
	case PaddleUp:
		return "Up"
	case PaddleDown:
		return "Down"
	}
	return "None"
}

// Sign 往上 +1，往下 -1，不動 0
func (d PaddleDirection) Sign() float64 {
	switch d {
	case PaddleUp:
		return 1
	case PaddleDown:
		return -1
	}
	return 0
}

type Paddle struct {
	Side      PaddleSide
	Position  Vec2
	Speed     float64
	Direction PaddleDirection
}

func NewPaddle(side PaddleSide) *Paddle {
	p := &Paddle{Side: side}
	p.Reset()
	return p
}

// Reset 回到起始位置與最低速度
func (p *Paddle) Reset() {
	x := -ArenaWidthHalf + PaddleWallOffset
	if p.Side == PaddleRight {
		x = ArenaWidthHalf - PaddleWallOffset
	}
	p.Position = Vec2{X: x, Y: 0}
	p.Speed = PaddleMinSpeed
	p.Direction = PaddleNone
}

func (p *Paddle) Box() Box {
	return Box{Center: p.Position, Width: PaddleWidth, Height: PaddleHeight}
}

// DirectionFromKeys 同時按住上下視為不動
func DirectionFromKeys(up, down bool) PaddleDirection {
	if up && !down {
		return PaddleUp
	}
	if down && !up {
		return PaddleDown
	}
	return PaddleNone
}

// SetDirection 依照這一幀按住的按鍵決定方向
func (p *Paddle) SetDirection(up, down bool) {
	p.Direction = DirectionFromKeys(up, down)
}

// Ramp 加減速一次：有方向就加速，沒方向就減速，限制在 [PaddleMinSpeed, PaddleMaxSpeed]
func (p *Paddle) Ramp() {
	if p.Direction == PaddleNone {
		p.Speed -= PaddleAcceleration
	} else {
		p.Speed += PaddleAcceleration
	}
	p.Speed = clamp(p.Speed, PaddleMinSpeed, PaddleMaxSpeed)
}

func (p *Paddle) Move(dt float64) {
	p.Position.Y += p.Direction.Sign() * p.Speed * dt
}

// ClampToArena 球拍不能超出上下牆
func (p *Paddle) ClampToArena() {
	if p.Position.Y+PaddleHeightHalf > ArenaHeightHalf {
		p.Position.Y = ArenaHeightHalf - PaddleHeightHalf
	}
	if p.Position.Y-PaddleHeightHalf < -ArenaHeightHalf {
		p.Position.Y = -ArenaHeightHalf + PaddleHeightHalf
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
