package core

import "math"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box 以中心點與寬高描述的 AABB
type Box struct {
	Center Vec2
	Width  float64
	Height float64
}

func (b Box) Left() float64   { return b.Center.X - b.Width/2 }
func (b Box) Right() float64  { return b.Center.X + b.Width/2 }
func (b Box) Top() float64    { return b.Center.Y + b.Height/2 }
func (b Box) Bottom() float64 { return b.Center.Y - b.Height/2 }

// Overlaps 邊緣剛好相貼不算重疊
func (b Box) Overlaps(o Box) bool {
	return b.Left() < o.Right() && b.Right() > o.Left() &&
		b.Bottom() < o.Top() && b.Top() > o.Bottom()
}

// Collision 從 a 的角度描述撞到 b 的哪一面
type Collision int

const (
	CollisionNone Collision = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
	CollisionInside
)

func (c Collision) String() string {
	switch c {
	case CollisionTop:
		return "Top"
	case CollisionBottom:
		return "Bottom"
	case CollisionLeft:
		return "Left"
	case CollisionRight:
		return "Right"
	case CollisionInside:
		return "Inside"
	}
	return "None"
}

// Collide 判斷 a 撞到 b 的哪一面。
// Left 表示 a 在 b 的左邊撞上 b 的左側，Top 表示 a 從上方壓在 b 上，以此類推。
// 兩軸都有穿透時取穿透較淺的那軸，相等時以 x 軸為準；
// 某一軸完全跨過或被包住時該軸視為 Inside，兩軸都是 Inside 才回傳 CollisionInside。
func Collide(a, b Box) Collision {
	if !a.Overlaps(b) {
		return CollisionNone
	}

	xCollision, xDepth := CollisionInside, math.Inf(1)
	if a.Left() < b.Left() && a.Right() > b.Left() && a.Right() < b.Right() {
		xCollision, xDepth = CollisionLeft, a.Right()-b.Left()
	} else if a.Left() > b.Left() && a.Left() < b.Right() && a.Right() > b.Right() {
		xCollision, xDepth = CollisionRight, b.Right()-a.Left()
	}

	yCollision, yDepth := CollisionInside, math.Inf(1)
	if a.Bottom() < b.Bottom() && a.Top() > b.Bottom() && a.Top() < b.Top() {
		yCollision, yDepth = CollisionBottom, a.Top()-b.Bottom()
	} else if a.Bottom() > b.Bottom() && a.Bottom() < b.Top() && a.Top() > b.Top() {
		yCollision, yDepth = CollisionTop, b.Top()-a.Bottom()
	}

	if yDepth < xDepth {
		return yCollision
	}
	return xCollision
}

// AngleOf 回傳方向向量的角度(度)，範圍 (-180, 180]
func AngleOf(direction Vec2) float64 {
	return math.Atan2(direction.Y, direction.X) * 180 / math.Pi
}

// DirectionFromAngle 角度(度)轉單位向量
func DirectionFromAngle(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Normalize(Vec2{X: math.Cos(rad), Y: math.Sin(rad)})
}

// Normalize 轉為單位向量，零向量或 NaN 時退回 BallDefaultAngle
func Normalize(v Vec2) Vec2 {
	length := v.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		rad := BallDefaultAngle * math.Pi / 180
		return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}
