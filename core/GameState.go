package core

type GameState int

const (
	GameOngoing GameState = iota
	GameEnd
)

func (s GameState) String() string {
	if s == GameEnd {
		return "End"
	}
	return "Ongoing"
}

// GameStateMachine Ongoing 時模擬運作；End 時只等待重新開始
type GameStateMachine struct {
	state GameState
}

func (m *GameStateMachine) State() GameState {
	return m.state
}

// End 收到 GameEnd 事件時呼叫，回傳狀態是否改變
func (m *GameStateMachine) End() bool {
	if m.state == GameEnd {
		return false
	}
	m.state = GameEnd
	return true
}

// Restart 只在 End 狀態有效，回傳是否回到 Ongoing
func (m *GameStateMachine) Restart() bool {
	if m.state != GameEnd {
		return false
	}
	m.state = GameOngoing
	return true
}
