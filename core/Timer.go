package core

type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer 以模擬時間(秒)累加的計時器，不依賴實際時鐘
type Timer struct {
	Duration float64
	Mode     TimerMode

	elapsed float64
	paused  bool
	done    bool
}

func NewTimer(duration float64, mode TimerMode) *Timer {
	return &Timer{Duration: duration, Mode: mode}
}

// Tick 累加 dt，回傳這一次跨過了幾次 Duration。
// Once 模式最多回傳 1，到期後停在 Duration 直到 Reset。
func (t *Timer) Tick(dt float64) int {
	if t.paused || dt <= 0 {
		return 0
	}
	if t.Mode == TimerOnce {
		if t.done {
			return 0
		}
		t.elapsed += dt
		if t.elapsed >= t.Duration {
			t.elapsed = t.Duration
			t.done = true
			return 1
		}
		return 0
	}

	if t.Duration <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := 0
	for t.elapsed >= t.Duration {
		t.elapsed -= t.Duration
		fired++
	}
	return fired
}

func (t *Timer) Reset() {
	t.elapsed = 0
	t.done = false
}

func (t *Timer) Pause()         { t.paused = true }
func (t *Timer) Unpause()       { t.paused = false }
func (t *Timer) Paused() bool   { return t.paused }
func (t *Timer) Finished() bool { return t.done }
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}
