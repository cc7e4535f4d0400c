package main

import (
	"PongSim/core"
	"fmt"
	"math"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const NetSymbol = 0x2590    // 中線符號

// cellRect 把場地座標(原點在中心、y 朝上)換成終端機格子的範圍
type cellRect struct {
	row, col, width, height int
}

func toCells(b core.Box, arena core.Box, screenWidth, screenHeight int) cellRect {
	scaleX := float64(screenWidth) / arena.Width
	scaleY := float64(screenHeight) / arena.Height

	left := int(math.Floor((b.Left() - arena.Left()) * scaleX))
	right := int(math.Ceil((b.Right() - arena.Left()) * scaleX))
	top := int(math.Floor((arena.Top() - b.Top()) * scaleY))
	bottom := int(math.Ceil((arena.Top() - b.Bottom()) * scaleY))

	return cellRect{
		row:    top,
		col:    left,
		width:  max(right-left, 1),
		height: max(bottom-top, 1),
	}
}

func drawView(s core.Snapshot) {
	screen.Clear()
	windowWidth, windowHeight := screen.Size()

	//中線
	Print(0, windowWidth/2, 1, windowHeight, NetSymbol)

	//兩個球拍
	for _, paddle := range []core.Box{s.LeftPaddle, s.RightPaddle} {
		r := toCells(paddle, s.Arena, windowWidth, windowHeight)
		Print(r.row, r.col, r.width, r.height, PaddleSymbol)
	}

	//球
	r := toCells(s.Ball, s.Arena, windowWidth, windowHeight)
	Print(r.row, r.col, r.width, r.height, BallSymbol)

	//分數更新
	drawLetters(windowWidth/4, 0, fmt.Sprintf("%d", s.Score.Left))
	drawLetters((windowWidth/4)*3, 0, fmt.Sprintf("%d", s.Score.Right))

	switch {
	case s.State == core.GameEnd:
		drawLetters(windowWidth/2, windowHeight/2, "Press 'R' to restart")
	case s.Frozen:
		drawLetters(windowWidth/2, windowHeight-1, fmt.Sprintf("%.1f", s.FreezeRemaining))
	}

	screen.Show()
}

func Print(row, col, width, height int, ch rune) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, tcell.StyleDefault)
		}
	}
}

// drawLetters 以 x 為中心畫一行文字
func drawLetters(x int, y int, word string) {
	runes := []rune(word)
	startX := x - len(runes)/2
	for i, letter := range runes {
		screen.SetContent(startX+i, y, letter, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
}
