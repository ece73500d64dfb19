package game

import (
	"go-splendor/const_data"
	"go-splendor/entities"
)

type PlayerState struct {
	PlayerID  string                    `json:"playerID"`
	Seat      int                       `json:"seat"`
	Tokens    entities.Tokens           `json:"tokens"`
	Bonuses   map[entities.Resource]int `json:"bonuses"` // purchased cards per bonus color
	Purchased []string                  `json:"purchased"`
	Reserved  []string                  `json:"reserved"`
	Nobles    []string                  `json:"nobles"`
	Score     int                       `json:"score"`
}

func newPlayer(playerID string, seat int) *PlayerState {
	return &PlayerState{
		PlayerID:  playerID,
		Seat:      seat,
		Tokens:    entities.NewTokens(),
		Bonuses:   map[entities.Resource]int{},
		Purchased: []string{},
		Reserved:  []string{},
		Nobles:    []string{},
	}
}

// GameState is the aggregate root of one game. Levels are indexed 0..2 in Decks and Boards.
type GameState struct {
	ID             string                        `json:"id"`
	HostID         string                        `json:"hostID"`
	Status         entities.GameStatus           `json:"status"`
	Config         Config                        `json:"config"`
	Seed           int64                         `json:"seed"`
	Supply         entities.Tokens               `json:"supply"`
	Bank           entities.Tokens               `json:"bank"`
	Decks          [const_data.MaxLevel][]string `json:"decks"`  // draw from the end
	Boards         [const_data.MaxLevel][]string `json:"boards"` // face-up cards
	Nobles         []string                      `json:"nobles"` // unclaimed pool
	Players        []*PlayerState                `json:"players"`
	TurnPointer    int                           `json:"turnPointer"`
	Round          int                           `json:"round"`
	Finishing      bool                          `json:"finishing"`
	FinishingSeat  int                           `json:"finishingSeat"`
	PendingDiscard bool                          `json:"pendingDiscard"`
	WinnerID       string                        `json:"winnerID,omitempty"`
	Version        int64                         `json:"version"`
	EventSeq       int64                         `json:"eventSeq"`
}

// New creates a game waiting for players.
func New(id, hostID string, cfg Config) *GameState {
	return &GameState{
		ID:            id,
		HostID:        hostID,
		Status:        entities.GameStatusWaiting,
		Config:        cfg.clone(),
		Supply:        entities.NewTokens(),
		Bank:          entities.NewTokens(),
		Nobles:        []string{},
		Players:       []*PlayerState{},
		FinishingSeat: -1,
	}
}

// Join seats a player. Seat order is join order.
func (s *GameState) Join(playerID string) error {
	if s.Status != entities.GameStatusWaiting {
		return reject(KindAlreadyStarted, "game already started", "status", s.Status)
	}
	if _, ok := s.SeatOf(playerID); ok {
		return reject(KindAlreadyJoined, "player already joined", "playerID", playerID)
	}
	if len(s.Players) >= s.Config.MaxSeats {
		return reject(KindSeatsFull, "game is full", "maxSeats", s.Config.MaxSeats)
	}
	s.Players = append(s.Players, newPlayer(playerID, len(s.Players)))
	return nil
}

func (s *GameState) SeatOf(playerID string) (int, bool) {
	for _, p := range s.Players {
		if p.PlayerID == playerID {
			return p.Seat, true
		}
	}
	return -1, false
}

func (s *GameState) Info() entities.GameInfo {
	players := make([]string, len(s.Players))
	for i, p := range s.Players {
		players[i] = p.PlayerID
	}
	return entities.GameInfo{
		GameID:   s.ID,
		HostID:   s.HostID,
		Status:   s.Status,
		Players:  players,
		MaxSeats: s.Config.MaxSeats,
	}
}

// Clone returns a deep copy.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	out := *s
	out.Config = s.Config.clone()
	out.Supply = s.Supply.Clone()
	out.Bank = s.Bank.Clone()
	for i := range s.Decks {
		out.Decks[i] = cloneIDs(s.Decks[i])
		out.Boards[i] = cloneIDs(s.Boards[i])
	}
	out.Nobles = cloneIDs(s.Nobles)
	out.Players = make([]*PlayerState, len(s.Players))
	for i, p := range s.Players {
		out.Players[i] = p.clone()
	}
	return &out
}

func (p *PlayerState) clone() *PlayerState {
	out := *p
	out.Tokens = p.Tokens.Clone()
	out.Bonuses = make(map[entities.Resource]int, len(p.Bonuses))
	for c, n := range p.Bonuses {
		out.Bonuses[c] = n
	}
	out.Purchased = cloneIDs(p.Purchased)
	out.Reserved = cloneIDs(p.Reserved)
	out.Nobles = cloneIDs(p.Nobles)
	return &out
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	return append(make([]string, 0, len(ids)), ids...)
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
