package core

type Score struct {
	Left  int
	Right int
}

// ScoreKeeper 記錄比分並判斷勝負
type ScoreKeeper struct {
	Score  Score
	Target int
}

func NewScoreKeeper(target int) *ScoreKeeper {
	return &ScoreKeeper{Target: target}
}

// Tally 每個進球加一分
func (sk *ScoreKeeper) Tally(goal Event) {
	if goal.LeftScored {
		sk.Score.Left += 1
	} else {
		sk.Score.Right += 1
	}
}

// CheckWinner 任一方達到目標分數時回傳 GameEnd 事件並將比分歸零
func (sk *ScoreKeeper) CheckWinner() (Event, bool) {
	if sk.Score.Left < sk.Target && sk.Score.Right < sk.Target {
		return Event{}, false
	}
	end := GameEndEvent(sk.Score.Left, sk.Score.Right)
	sk.Reset()
	return end, true
}

func (sk *ScoreKeeper) Reset() {
	sk.Score = Score{}
}

// Winner 依照結束時的比分判斷勝方
func Winner(end Event) PaddleSide {
	if end.FinalLeft > end.FinalRight {
		return PaddleLeft
	}
	return PaddleRight
}
