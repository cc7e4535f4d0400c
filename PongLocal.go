package main

import (
	"PongSim/core"
	"PongSim/logger"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell"
)

var screen tcell.Screen

const KeyLeftUp = "Rune[w]"
const KeyLeftDown = "Rune[s]"
const KeyRightUp = "Up"
const KeyRightDown = "Down"
const KeyRestart = "Rune[r]"
const KeyQuit = "Quit"
const KeyResize = "Resize"

// heldKeys 終端機只收得到按下，收不到放開：按下後 hold 時間內都算按住
type heldKeys struct {
	hold      time.Duration
	lastPress map[string]time.Time
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{hold: hold, lastPress: make(map[string]time.Time)}
}

func (k *heldKeys) press(key string, at time.Time) {
	k.lastPress[key] = at
}

func (k *heldKeys) held(key string, now time.Time) bool {
	at, ok := k.lastPress[key]
	return ok && now.Sub(at) <= k.hold
}

func (k *heldKeys) input(now time.Time) core.Input {
	return core.Input{
		LeftUp:    k.held(KeyLeftUp, now),
		LeftDown:  k.held(KeyLeftDown, now),
		RightUp:   k.held(KeyRightUp, now),
		RightDown: k.held(KeyRightDown, now),
		Restart:   k.held(KeyRestart, now),
	}
}

// keyName 統一大小寫，W 與 w 視為同一個鍵
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		return "Rune[" + strings.ToLower(string(ev.Rune())) + "]"
	}
	return ev.Name()
}

func initScreen() error {
	var err error
	screen, err = tcell.NewScreen()
	if err != nil {
		return err
	}
	if e := screen.Init(); e != nil {
		return e
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
	return nil
}

func initUserInput() chan string {
	//初始化channel，去接另一個goroutine丟回來的資料
	inputChan := make(chan string, 16)

	//建立一個goroutine去監聽鍵盤的事件
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				//畫面已關閉
				return
			case *tcell.EventResize:
				inputChan <- KeyResize
			case *tcell.EventKey:
				inputChan <- keyName(ev)
			}
		}
	}()

	return inputChan
}

func startGameLoop(room *core.Room, props core.Properties) {
	inputChan := initUserInput()
	keys := newHeldKeys(props.KeyHold)

	ticker := time.NewTicker(props.FramePeriod())
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case key := <-inputChan:
			switch key {
			case KeyQuit:
				logger.Log.WithRoom(room.RoomId).Info(logger.QuitMsg)
				return
			case KeyResize:
				screen.Sync()
			default:
				keys.press(key, time.Now())
			}

		case now := <-ticker.C:
			dt := frameDelta(last, now, props.MaxFrameTime)
			last = now

			events := room.Step(keys.input(now), dt)
			reportEvents(room, events)
			drawView(room.Snapshot())
		}
	}
}

// frameDelta 兩幀之間經過的秒數，超過上限時截斷
func frameDelta(last, now time.Time, limit time.Duration) float64 {
	dt := now.Sub(last)
	if dt < 0 {
		dt = 0
	}
	if limit > 0 && dt > limit {
		dt = limit
	}
	return dt.Seconds()
}

// reportEvents 把進球、結束與重新開始寫進日誌
func reportEvents(room *core.Room, events []core.Event) {
	log := logger.Log.WithRoom(room.RoomId)
	for _, e := range events {
		switch e.Kind {
		case core.EventGoal, core.EventGameEnd, core.EventRestart:
			payload, err := scoreSinkPayload(e, room.Scores.Score)
			if err != nil {
				log.Error(fmt.Sprintf(logger.PayloadMismatchMsg, err))
				continue
			}
			log.Info(fmt.Sprintf(logger.ScoreSinkMsg, payload))
		}
	}
}

// scoreSinkPayload 事件 payload 加上目前比分，寫出前先解碼確認與原事件相同
func scoreSinkPayload(e core.Event, s core.Score) (string, error) {
	payload := core.EncodePayload(e)
	decoded, err := core.DecodePayload(payload)
	if err != nil {
		return "", err
	}
	if decoded != e {
		return "", fmt.Errorf("payload %q decodes to %+v, want %+v", payload, decoded, e)
	}
	return payload + core.GenerateScorePayload(s), nil
}

func start(props core.Properties) {
	if err := initScreen(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		logger.Log.Fatal(fmt.Sprintf(logger.ScreenInitFailedMsg, err))
	}
	defer screen.Fini()

	room := core.NewRoom(core.NewRandomizer(props.Seed))
	startGameLoop(room, props)
}
