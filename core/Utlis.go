package core

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Properties 終端機主程式的執行設定，模擬本身的常數在 Constants.go
type Properties struct {
	FrameRate    int           // 每秒幾幀
	KeyHold      time.Duration // 按鍵按下後視為持續按住的時間
	MaxFrameTime time.Duration // 單幀 dt 上限，避免卡頓後球穿過球拍
	Seed         uint64        // 0 表示使用目前時間
}

func DefaultProperties() Properties {
	return Properties{
		FrameRate:    60,
		KeyHold:      120 * time.Millisecond,
		MaxFrameTime: 50 * time.Millisecond,
		Seed:         0,
	}
}

// ReadProperties 讀取 <dir>/properties/<env>.properties，缺少的欄位使用預設值
func ReadProperties(dir, env string) (Properties, error) {
	props := DefaultProperties()

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("FRAME_RATE", props.FrameRate)
	v.SetDefault("KEY_HOLD_MS", props.KeyHold.Milliseconds())
	v.SetDefault("MAX_FRAME_MS", props.MaxFrameTime.Milliseconds())
	v.SetDefault("SEED", props.Seed)

	if err := v.ReadInConfig(); err != nil {
		return props, fmt.Errorf("read properties %s: %w", env, err)
	}

	frameRate := cast.ToInt(v.Get("FRAME_RATE"))
	if frameRate > 0 {
		props.FrameRate = frameRate
	}
	if ms := cast.ToInt64(v.Get("KEY_HOLD_MS")); ms > 0 {
		props.KeyHold = time.Duration(ms) * time.Millisecond
	}
	if ms := cast.ToInt64(v.Get("MAX_FRAME_MS")); ms > 0 {
		props.MaxFrameTime = time.Duration(ms) * time.Millisecond
	}
	props.Seed = cast.ToUint64(v.Get("SEED"))

	return props, nil
}

func (p Properties) FramePeriod() time.Duration {
	return time.Second / time.Duration(p.FrameRate)
}
