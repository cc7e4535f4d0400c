package core

import (
	"PongSim/logger"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Room 一場雙人對局的全部模擬狀態，只由呼叫 Step 的 goroutine 持有
type Room struct {
	RoomId string

	LeftPaddle  *Paddle
	RightPaddle *Paddle
	Ball        *Ball

	Freeze           *RoundTimer
	PaddleSpeedTimer *Timer
	Scores           *ScoreKeeper

	machine     GameStateMachine
	events      EventQueue
	rng         Randomizer
	log         *logger.Logger
	prevRestart bool
}

func NewRoom(rng Randomizer) *Room {
	r := &Room{
		LeftPaddle:       NewPaddle(PaddleLeft),
		RightPaddle:      NewPaddle(PaddleRight),
		Ball:             NewBall(),
		Freeze:           NewRoundTimer(BallFreezeDurationSeconds),
		PaddleSpeedTimer: NewTimer(PaddleSpeedInterval, TimerRepeating),
		Scores:           NewScoreKeeper(ScoreToWin),
		rng:              rng,
	}
	r.Ball.Respawn(rng)
	r.newRoomId()
	return r
}

func (r *Room) newRoomId() {
	r.RoomId = uuid.New().String()
	r.log = logger.Log.WithRoom(r.RoomId)
	r.log.Info(logger.RoomCreatedMsg)
}

func (r *Room) State() GameState {
	return r.machine.State()
}

func (r *Room) Paddles() []*Paddle {
	return []*Paddle{r.LeftPaddle, r.RightPaddle}
}

// Step 推進一幀。順序固定：
// 球拍方向 -> 球拍加減速 -> 球拍移動 -> 球拍邊界 -> 球移動 -> 球碰撞 -> 進球判定
// -> 計時器 -> 比分 -> 勝負 -> 狀態轉換。
// 回傳這一幀依序發生的事件。
func (r *Room) Step(in Input, dt float64) []Event {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	restartPressed := in.Restart && !r.prevRestart
	r.prevRestart = in.Restart

	if r.machine.State() == GameOngoing {
		r.updatePaddles(in, dt)
		r.updateBall(dt)
		if r.Freeze.Tick(dt) {
			r.log.Debug(logger.RoundUnfreezeMsg)
		}
	}

	r.updateScore()
	r.updateState(restartPressed)

	return r.events.Drain()
}

func (r *Room) updatePaddles(in Input, dt float64) {
	r.LeftPaddle.SetDirection(in.LeftUp, in.LeftDown)
	r.RightPaddle.SetDirection(in.RightUp, in.RightDown)

	// 加減速間隔與幀率無關，一幀可能跨過多個間隔
	for n := r.PaddleSpeedTimer.Tick(dt); n > 0; n-- {
		for _, p := range r.Paddles() {
			p.Ramp()
		}
	}

	for _, p := range r.Paddles() {
		p.Move(dt)
		p.ClampToArena()
	}
}

func (r *Room) updateBall(dt float64) {
	if !r.Freeze.Running() {
		r.Ball.Move(dt)
	}

	if r.Ball.BounceWalls() {
		r.events.Push(Event{Kind: EventWallBounce})
	}

	for _, p := range r.Paddles() {
		collision := r.Ball.BouncePaddle(p)
		if collision == CollisionNone {
			continue
		}
		if collision == CollisionInside {
			r.log.Warn(fmt.Sprintf(logger.BallInsidePaddleMsg, p.Side))
		}
		r.events.Push(Event{Kind: EventPaddleHit, Side: p.Side, Face: collision})
	}

	if scored, leftScored := r.Ball.CheckGoal(); scored {
		r.events.Push(GoalEvent(leftScored))
		r.Ball.Respawn(r.rng)
		r.Freeze.Arm()
	}
}

func (r *Room) updateScore() {
	for _, goal := range r.events.Of(EventGoal) {
		r.Scores.Tally(goal)
		scorer := PaddleRight
		if goal.LeftScored {
			scorer = PaddleLeft
		}
		r.log.Debug(fmt.Sprintf(logger.GoalMsg, scorer, r.Scores.Score.Left, r.Scores.Score.Right))

		end, won := r.Scores.CheckWinner()
		if !won {
			continue
		}
		r.events.Push(end)
		r.log.Info(fmt.Sprintf(logger.GameEndMsg, Winner(end), end.FinalLeft, end.FinalRight))
	}
}

func (r *Room) updateState(restartPressed bool) {
	if r.events.Has(EventGameEnd) {
		r.machine.End()
		return
	}

	if restartPressed && r.machine.Restart() {
		r.events.Push(Event{Kind: EventRestart})
		r.log.Info(logger.RestartMsg)
		r.Scores.Reset()
		r.enterOngoing()
	}
}

// enterOngoing 新的一局：球拍歸位、球靜止計時重新開始、換新的 RoomId
func (r *Room) enterOngoing() {
	for _, p := range r.Paddles() {
		p.Reset()
	}
	r.PaddleSpeedTimer.Reset()
	r.Freeze.Arm()
	r.newRoomId()
}
