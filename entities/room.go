package entities

type GameStatus string

const (
	GameStatusWaiting    GameStatus = "waiting"  // 等待玩家加入
	GameStatusInProgress GameStatus = "playing"  // 游戏进行中
	GameStatusFinished   GameStatus = "finished" // 游戏已结束
)

// GameInfo is the lobby summary of a game.
type GameInfo struct {
	GameID   string     `json:"gameID"`
	HostID   string     `json:"hostID"`
	Status   GameStatus `json:"status"`
	Players  []string   `json:"players"`
	MaxSeats int        `json:"maxSeats"`
}
