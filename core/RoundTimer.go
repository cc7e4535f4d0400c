package core

// RoundTimer 每回合開始與每次得分後讓球靜止一段時間。
// 計時中(Running)球不會移動；時間到後暫停並歸零，球才開始移動。
type RoundTimer struct {
	timer *Timer
}

func NewRoundTimer(duration float64) *RoundTimer {
	rt := &RoundTimer{timer: NewTimer(duration, TimerOnce)}
	rt.Arm()
	return rt
}

// Arm 歸零並重新開始計時
func (rt *RoundTimer) Arm() {
	rt.timer.Reset()
	rt.timer.Unpause()
}

// Running 計時中 => 球被凍結
func (rt *RoundTimer) Running() bool {
	return !rt.timer.Paused()
}

// Tick 回傳這一幀是否剛好到期
func (rt *RoundTimer) Tick(dt float64) bool {
	if !rt.Running() {
		return false
	}
	rt.timer.Tick(dt)
	if !rt.timer.Finished() {
		return false
	}
	rt.timer.Pause()
	rt.timer.Reset()
	return true
}

func (rt *RoundTimer) Elapsed() float64 {
	return rt.timer.Elapsed()
}

func (rt *RoundTimer) Duration() float64 {
	return rt.timer.Duration
}
