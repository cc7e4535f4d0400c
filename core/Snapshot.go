package core

// Snapshot 給畫面與比分顯示用的唯讀資料
type Snapshot struct {
	RoomId      string
	Arena       Box
	LeftPaddle  Box
	RightPaddle Box
	Ball        Box
	Score       Score
	State       GameState

	Frozen          bool
	FreezeRemaining float64
}

func (r *Room) Snapshot() Snapshot {
	s := Snapshot{
		RoomId:      r.RoomId,
		Arena:       Box{Width: ArenaWidth, Height: ArenaHeight},
		LeftPaddle:  r.LeftPaddle.Box(),
		RightPaddle: r.RightPaddle.Box(),
		Ball:        r.Ball.Box(),
		Score:       r.Scores.Score,
		State:       r.machine.State(),
		Frozen:      r.Freeze.Running(),
	}
	if s.Frozen {
		s.FreezeRemaining = r.Freeze.Duration() - r.Freeze.Elapsed()
	}
	return s
}
