package core

import (
	"fmt"
	"strconv"
	"strings"
)

const PayloadTerminator = "~"

const GoalHeader = "GL"       // Goal 進球
const GameEndHeader = "GE"    // Game End 遊戲結束
const RestartHeader = "RS"    // Restart 重新開始
const WallBounceHeader = "WB" // Wall Bounce 撞牆
const PaddleHitHeader = "PH"  // Paddle Hit 撞到球拍
const ScoreHeader = "SC"      // Score 目前比分

// EncodePayload 事件轉成 header + 內容 + 結尾符號
func EncodePayload(e Event) string {
	var payload string
	switch e.Kind {
	case EventGoal:
		payload = GoalHeader + strconv.FormatBool(e.LeftScored)
	case EventGameEnd:
		payload = fmt.Sprintf("%s%d,%d", GameEndHeader, e.FinalLeft, e.FinalRight)
	case EventRestart:
		payload = RestartHeader
	case EventWallBounce:
		payload = WallBounceHeader
	case EventPaddleHit:
		payload = fmt.Sprintf("%s%d,%d", PaddleHitHeader, e.Side, e.Face)
	}
	return payload + PayloadTerminator
}

func GenerateScorePayload(s Score) string {
	return fmt.Sprintf("%s%d,%d%s", ScoreHeader, s.Left, s.Right, PayloadTerminator)
}

// DecodePayload EncodePayload 的反向
func DecodePayload(payload string) (Event, error) {
	if len(payload) < 3 || !strings.HasSuffix(payload, PayloadTerminator) {
		return Event{}, fmt.Errorf("malformed payload %q", payload)
	}
	header := payload[0:2]
	body := removeHeaderTerminator(payload)

	switch header {
	case GoalHeader:
		leftScored, err := strconv.ParseBool(body)
		if err != nil {
			return Event{}, fmt.Errorf("goal payload %q: %w", payload, err)
		}
		return GoalEvent(leftScored), nil

	case GameEndHeader:
		left, right, err := parsePair(body)
		if err != nil {
			return Event{}, fmt.Errorf("game end payload %q: %w", payload, err)
		}
		return GameEndEvent(left, right), nil

	case RestartHeader:
		return Event{Kind: EventRestart}, nil

	case WallBounceHeader:
		return Event{Kind: EventWallBounce}, nil

	case PaddleHitHeader:
		side, face, err := parsePair(body)
		if err != nil {
			return Event{}, fmt.Errorf("paddle hit payload %q: %w", payload, err)
		}
		return Event{Kind: EventPaddleHit, Side: PaddleSide(side), Face: Collision(face)}, nil
	}

	return Event{}, fmt.Errorf("unknown payload header %q", header)
}

func parsePair(body string) (int, int, error) {
	split := strings.Split(body, ",")
	if len(split) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(split))
	}
	a, err := strconv.Atoi(split[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(split[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func removeHeaderTerminator(payload string) string {
	return payload[2 : len(payload)-1]
}
