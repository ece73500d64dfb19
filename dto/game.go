package dto

import "go-splendor/game"

type ActionResponse struct {
	State  *game.GameState `json:"state"`
	Events []game.Event    `json:"events"`
}

type EventListResponse struct {
	Events []game.Event `json:"events"`
}

// 服务端推送的消息类型
const (
	MessageSync   = "sync"   // full state, sent on connect and on request
	MessageEvents = "events" // committed events plus the resulting state
	MessageError  = "error"  // rejection of this client's last message
)

// ClientMessage is what a websocket client sends: an action type plus its fields.
type ClientMessage struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}

type ServerMessage struct {
	Type   string          `json:"type"`
	GameID string          `json:"gameID"`
	State  *game.GameState `json:"state,omitempty"`
	Events []game.Event    `json:"events,omitempty"`
	Error  *game.Rejection `json:"error,omitempty"`
}
