package core

import (
	"time"

	"golang.org/x/exp/rand"
)

// Randomizer 只需要 [0,1) 的亂數，測試時可換成固定序列
type Randomizer interface {
	Float64() float64
}

// NewRandomizer seed 為 0 時使用目前時間
func NewRandomizer(seed uint64) Randomizer {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// uniform 回傳 [lo, hi] 之間的亂數
func uniform(r Randomizer, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
