package game

import "go-splendor/entities"

type EventType string

const (
	EventGameStarted     EventType = "GameStarted"
	EventTokensTaken     EventType = "TokensTaken"
	EventCardReserved    EventType = "CardReserved"
	EventCardPurchased   EventType = "CardPurchased"
	EventNobleAwarded    EventType = "NobleAwarded"
	EventDiscardRequired EventType = "DiscardRequired"
	EventTokensDiscarded EventType = "TokensDiscarded"
	EventTurnAdvanced    EventType = "TurnAdvanced"
	EventGameFinished    EventType = "GameFinished"
)

// Event records one state delta. Seq is unique and increasing within a game.
// Only the fields relevant to Type are set.
type Event struct {
	Seq      int64     `json:"seq"`
	Type     EventType `json:"type"`
	Seat     int       `json:"seat"`
	PlayerID string    `json:"playerID,omitempty"`
	Round    int       `json:"round"`

	// Tokens moved between the player and the bank. For purchases gold is keyed as gold.
	Tokens      map[entities.Resource]int `json:"tokens,omitempty"`
	CardID      string                    `json:"cardID,omitempty"`
	Level       int                       `json:"level,omitempty"`
	FromDeck    bool                      `json:"fromDeck,omitempty"`
	Source      string                    `json:"source,omitempty"`      // board or reserve
	Replacement string                    `json:"replacement,omitempty"` // card dealt into the vacated slot
	NobleID     string                    `json:"nobleID,omitempty"`
	Points      int                       `json:"points,omitempty"`
	Score       int                       `json:"score,omitempty"`
	Excess      int                       `json:"excess,omitempty"`
	NextSeat    int                       `json:"nextSeat,omitempty"`
	WinnerID    string                    `json:"winnerID,omitempty"`
	Seed        int64                     `json:"seed,omitempty"`
}

const (
	SourceBoard   = "board"
	SourceReserve = "reserve"
)
