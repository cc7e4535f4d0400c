package logger

const RoomCreatedMsg = "新的對局開始！"
const GoalMsg = "%s 玩家得分！ Left: %d, Right: %d"
const GameEndMsg = "%s 玩家獲勝！ 最終比分 Left: %d, Right: %d"
const RestartMsg = "重新開始遊戲"
const BallInsidePaddleMsg = "球卡進 %s 球拍中，強制移回場內"
const RoundUnfreezeMsg = "回合開始，球開始移動"

const ScoreSinkMsg = "比分更新 %s"
const PayloadMismatchMsg = "事件 payload 編碼錯誤: %v"

const ScreenInitFailedMsg = "終端機畫面初始化失敗: %v"
const ConfigFallbackMsg = "讀取設定檔失敗，使用預設值: %v"
const QuitMsg = "玩家離開遊戲"
