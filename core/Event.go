package core

type EventKind int

const (
	EventGoal EventKind = iota
	EventGameEnd
	EventRestart
	EventWallBounce
	EventPaddleHit
)

func (k EventKind) String() string {
	switch k {
	case EventGoal:
		return "Goal"
	case EventGameEnd:
		return "GameEnd"
	case EventRestart:
		return "Restart"
	case EventWallBounce:
		return "WallBounce"
	case EventPaddleHit:
		return "PaddleHit"
	}
	return "Unknown"
}

// Event 一幀之中發生的離散事件，依發生順序放進 EventQueue。
// 只有與 Kind 對應的欄位有意義。
type Event struct {
	Kind EventKind

	// EventGoal: false 表示右邊玩家得分
	LeftScored bool

	// EventGameEnd: 結束時的比分
	FinalLeft  int
	FinalRight int

	// EventPaddleHit
	Side PaddleSide
	Face Collision
}

func GoalEvent(leftScored bool) Event {
	return Event{Kind: EventGoal, LeftScored: leftScored}
}

func GameEndEvent(left, right int) Event {
	return Event{Kind: EventGameEnd, FinalLeft: left, FinalRight: right}
}

// EventQueue 每幀清空一次的事件佇列
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Has 這一幀是否已有該種事件
func (q *EventQueue) Has(kind EventKind) bool {
	for _, e := range q.events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Of 依序回傳該種事件
func (q *EventQueue) Of(kind EventKind) []Event {
	var out []Event
	for _, e := range q.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Drain 取出全部事件並清空
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
