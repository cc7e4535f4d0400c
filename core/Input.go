package core

// Input 這一幀各按鍵是否被按住
type Input struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool

	// Restart 按住即為 true，Room 只在剛按下的那一幀觸發
	Restart bool
}
