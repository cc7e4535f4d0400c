package core

// 場地 (以原點為中心)
const ArenaWidth = 600.0
const ArenaHeight = 400.0
const ArenaWidthHalf = ArenaWidth / 2
const ArenaHeightHalf = ArenaHeight / 2

// 球拍
const PaddleWidth = 20.0
const PaddleHeight = 80.0
const PaddleWidthHalf = PaddleWidth / 2
const PaddleHeightHalf = PaddleHeight / 2
const PaddleWallOffset = 40.0   // 球拍中心與左右牆的距離
const PaddleMinSpeed = 300.0    // 放開按鍵時的最低速度
const PaddleMaxSpeed = 800.0    // 持續按住時的最高速度
const PaddleAcceleration = 50.0 // 每次加減速的幅度
const PaddleSpeedInterval = 0.1 // 加減速的間隔(秒)

// 球
const BallSize = 30.0
const BallSizeHalf = BallSize / 2
const BallSpeed = 300.0
const BallFreezeDurationSeconds = 2.0 // 每回合開始時球靜止的時間
const BallDefaultAngle = 45.0         // 方向向量退化時使用的角度

// 分數
const ScoreToWin = 5 // 遊戲結束分數
