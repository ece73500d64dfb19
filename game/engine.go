package game

import (
	"go-splendor/const_data"
	"go-splendor/entities"

	"golang.org/x/exp/rand"
)

// Engine applies the rules. It holds no per-game state and is safe for concurrent use.
type Engine struct {
	catalog *const_data.Catalog
}

func NewEngine(catalog *const_data.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

func (e *Engine) Catalog() *const_data.Catalog {
	return e.catalog
}

// NewGame seats playerIDs in order and starts the game. The first player is the host.
func (e *Engine) NewGame(id string, playerIDs []string, seed int64, cfg Config) (*GameState, []Event, error) {
	if len(playerIDs) < cfg.MinSeats || len(playerIDs) > cfg.MaxSeats {
		return nil, nil, reject(KindInvalidSeatCount, "seat count out of bounds",
			"min", cfg.MinSeats, "max", cfg.MaxSeats, "actual", len(playerIDs))
	}
	state := New(id, playerIDs[0], cfg)
	for _, pid := range playerIDs {
		if err := state.Join(pid); err != nil {
			return nil, nil, err
		}
	}
	return e.Start(state, seed)
}

// Start deals a waiting game. The same seed and seating always produce the same deal.
func (e *Engine) Start(state *GameState, seed int64) (*GameState, []Event, error) {
	if state.Status != entities.GameStatusWaiting {
		return nil, nil, reject(KindAlreadyStarted, "game already started", "status", state.Status)
	}
	cfg := state.Config
	seats := len(state.Players)
	perColor, ok := cfg.TokenSupply[seats]
	if seats < cfg.MinSeats || seats > cfg.MaxSeats || !ok {
		return nil, nil, reject(KindInvalidSeatCount, "seat count out of bounds",
			"min", cfg.MinSeats, "max", cfg.MaxSeats, "actual", seats)
	}

	next := state.Clone()
	r := rand.New(rand.NewSource(uint64(seed)))

	// 洗牌：每个等级的牌堆，末尾是牌顶
	for level := const_data.MinLevel; level <= const_data.MaxLevel; level++ {
		deck := e.catalog.CardsByLevel(level)
		r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
		board := make([]string, 0, cfg.BoardSize)
		for len(board) < cfg.BoardSize && len(deck) > 0 {
			board = append(board, deck[len(deck)-1])
			deck = deck[:len(deck)-1]
		}
		next.Decks[level-1] = deck
		next.Boards[level-1] = board
	}

	nobles := e.catalog.NobleIDs()
	r.Shuffle(len(nobles), func(i, j int) { nobles[i], nobles[j] = nobles[j], nobles[i] })
	if n := seats + 1; n < len(nobles) {
		nobles = nobles[:n]
	}
	next.Nobles = nobles

	next.Supply = entities.NewTokens()
	for _, c := range entities.GemColors {
		next.Supply[c] = perColor
	}
	next.Supply[entities.Gold] = cfg.GoldSupply
	next.Bank = next.Supply.Clone()
	for i, p := range next.Players {
		next.Players[i] = newPlayer(p.PlayerID, i)
	}

	next.Seed = seed
	next.Status = entities.GameStatusInProgress
	next.TurnPointer = 0
	next.Round = 1
	next.Finishing = false
	next.FinishingSeat = -1
	next.PendingDiscard = false
	next.WinnerID = ""

	next.EventSeq++
	ev := Event{Seq: next.EventSeq, Type: EventGameStarted, Seat: 0, Round: 1, Seed: seed}
	if len(next.Players) > 0 {
		ev.PlayerID = next.Players[0].PlayerID
	}
	return next, []Event{ev}, nil
}

// Apply validates action for the player at seat and returns the resulting state and events.
// The input state is never modified.
func (e *Engine) Apply(state *GameState, seat int, action Action) (*GameState, []Event, error) {
	if state == nil || state.Status != entities.GameStatusInProgress {
		var status entities.GameStatus
		if state != nil {
			status = state.Status
		}
		return nil, nil, reject(KindGameNotActive, "game is not in progress", "status", status)
	}
	if seat != state.TurnPointer {
		return nil, nil, reject(KindNotYourTurn, "not your turn", "expected", state.TurnPointer, "actual", seat)
	}
	if state.PendingDiscard && action.Type != ActionDiscard {
		player := state.Players[seat]
		return nil, nil, reject(KindDiscardRequired, "discard tokens before anything else",
			"held", player.Tokens.Total(), "cap", state.Config.TokenCap)
	}

	next := state.Clone()
	m := &move{
		catalog: e.catalog,
		state:   next,
		seat:    seat,
		player:  next.Players[seat],
	}

	var err error
	switch action.Type {
	case ActionTakeThree:
		err = m.takeThree(action.Colors)
	case ActionTakeTwo:
		err = m.takeTwo(action.Color)
	case ActionReserveBoard:
		err = m.reserveFromBoard(action.CardID)
	case ActionReserveDeck:
		err = m.reserveFromDeck(action.Level)
	case ActionBuyBoard:
		err = m.buyFromBoard(action.CardID, action.Payment)
	case ActionBuyReserved:
		err = m.buyFromReserve(action.CardID, action.Payment)
	case ActionDiscard:
		err = m.discard(action.Discard)
	default:
		err = reject(KindInvalidAction, "unknown action type", "type", action.Type)
	}
	if err != nil {
		return nil, nil, err
	}

	if action.Type != ActionDiscard {
		m.awardNobles()
	}
	m.endTurn()
	return next, m.events, nil
}

// move is the working context of one Apply call.
type move struct {
	catalog *const_data.Catalog
	state   *GameState
	seat    int
	player  *PlayerState
	events  []Event
}

func (m *move) emit(ev Event) {
	m.state.EventSeq++
	ev.Seq = m.state.EventSeq
	ev.Seat = m.seat
	ev.PlayerID = m.player.PlayerID
	ev.Round = m.state.Round
	m.events = append(m.events, ev)
}

// transfer moves n tokens of r from the bank to the player; negative n moves them back.
func (m *move) transfer(r entities.Resource, n int) {
	m.state.Bank[r] -= n
	m.player.Tokens[r] += n
}
