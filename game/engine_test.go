package game

import (
	"testing"

	"go-splendor/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartDeal(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		seats    int
		perColor int
	}{
		{seats: 2, perColor: 4},
		{seats: 3, perColor: 5},
		{seats: 4, perColor: 7},
	}
	for _, tt := range tests {
		s := startTestGame(t, e, tt.seats, 42)

		assert.Equal(t, entities.GameStatusInProgress, s.Status)
		assert.Equal(t, int64(42), s.Seed)
		assert.Equal(t, 0, s.TurnPointer)
		assert.Equal(t, 1, s.Round)
		assert.False(t, s.Finishing)
		assert.Len(t, s.Nobles, tt.seats+1)
		for _, c := range entities.GemColors {
			assert.Equal(t, tt.perColor, s.Bank[c], "seats %d color %s", tt.seats, c)
		}
		assert.Equal(t, 5, s.Bank[entities.Gold])
		assert.Equal(t, s.Supply, s.Bank)

		assert.Len(t, s.Boards[0], 4)
		assert.Len(t, s.Boards[1], 4)
		assert.Len(t, s.Boards[2], 4)
		assert.Len(t, s.Decks[0], 36)
		assert.Len(t, s.Decks[1], 26)
		assert.Len(t, s.Decks[2], 16)

		for _, p := range s.Players {
			assert.Zero(t, p.Tokens.Total())
			assert.Zero(t, p.Score)
			assert.Empty(t, p.Purchased)
			assert.Empty(t, p.Reserved)
		}
	}
}

func TestStartRejections(t *testing.T) {
	e := newTestEngine(t)

	solo := New("g1", "p0", DefaultConfig())
	require.NoError(t, solo.Join("p0"))
	_, _, err := e.Start(solo, 1)
	requireKind(t, err, ErrInvalidSeatCount)

	_, _, err = e.NewGame("g2", []string{"a", "b", "c", "d", "e"}, 1, DefaultConfig())
	requireKind(t, err, ErrInvalidSeatCount)

	_, _, err = e.NewGame("g3", []string{"a", "a"}, 1, DefaultConfig())
	requireKind(t, err, ErrAlreadyJoined)

	started := startTestGame(t, e, 2, 1)
	_, _, err = e.Start(started, 1)
	requireKind(t, err, ErrAlreadyStarted)
}

func TestJoin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSeats = 2
	s := New("g1", "host", cfg)

	require.NoError(t, s.Join("host"))
	requireKind(t, s.Join("host"), ErrAlreadyJoined)
	require.NoError(t, s.Join("guest"))
	requireKind(t, s.Join("late"), ErrSeatsFull)

	seat, ok := s.SeatOf("guest")
	assert.True(t, ok)
	assert.Equal(t, 1, seat)

	info := s.Info()
	assert.Equal(t, []string{"host", "guest"}, info.Players)
	assert.Equal(t, entities.GameStatusWaiting, info.Status)

	e := newTestEngine(t)
	started, _, err := e.Start(s, 7)
	require.NoError(t, err)
	requireKind(t, started.Join("late"), ErrAlreadyStarted)
	assert.Equal(t, entities.GameStatusWaiting, s.Status, "start must not modify its input")
}

func TestSameSeedSameDeal(t *testing.T) {
	e := newTestEngine(t)
	a := startTestGame(t, e, 3, 99)
	b := startTestGame(t, e, 3, 99)
	c := startTestGame(t, e, 3, 100)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Decks, c.Decks)
}

func TestApplyPreconditions(t *testing.T) {
	e := newTestEngine(t)

	waiting := New("g1", "p0", DefaultConfig())
	_, _, err := e.Apply(waiting, 0, TakeTwo(entities.Red))
	requireKind(t, err, ErrGameNotActive)

	s := startTestGame(t, e, 2, 1)
	_, _, err = e.Apply(s, 1, TakeTwo(entities.Red))
	requireKind(t, err, ErrNotYourTurn)
	rej, ok := AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, 0, rej.Metadata["expected"])
	assert.Equal(t, 1, rej.Metadata["actual"])

	giveTokens(t, s, 0, map[entities.Resource]int{entities.White: 4, entities.Blue: 4, entities.Green: 2})
	s, _ = mustApply(t, e, s, TakeThree(entities.Red, entities.Black, entities.Green))
	require.True(t, s.PendingDiscard)

	_, _, err = e.Apply(s, 0, TakeTwo(entities.Red))
	requireKind(t, err, ErrDiscardRequired)
	// turn order is checked before the pending discard
	_, _, err = e.Apply(s, 1, Discard(map[entities.Resource]int{entities.White: 3}))
	requireKind(t, err, ErrNotYourTurn)

	_, _, err = e.Apply(s, 0, Action{Type: "pass"})
	requireKind(t, err, ErrDiscardRequired)
}

func TestUnknownActionType(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 1)
	_, _, err := e.Apply(s, 0, Action{Type: "pass"})
	requireKind(t, err, ErrInvalidAction)
}

func TestRejectionLeavesStateUntouched(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 3)
	giveTokens(t, s, 0, map[entities.Resource]int{entities.White: 1, entities.Gold: 1})
	before := s.Clone()

	actions := []Action{
		TakeThree(entities.White, entities.White, entities.Blue),
		TakeTwo(entities.Gold),
		ReserveBoard("no_such_card"),
		ReserveDeck(4),
		BuyBoard(s.Boards[2][0], Payment{Tokens: map[entities.Resource]int{entities.White: 1}}),
		BuyReserved("1_3_4", Payment{}),
		Discard(map[entities.Resource]int{entities.White: 1}),
	}
	for _, action := range actions {
		next, events, err := e.Apply(s, 0, action)
		assert.Error(t, err, "action %s", action.Type)
		assert.Nil(t, next)
		assert.Nil(t, events)
		assert.Equal(t, before, s, "action %s", action.Type)
	}
}

func TestSuccessfulApplyDoesNotModifyInput(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 3)
	before := s.Clone()

	next, _ := mustApply(t, e, s, ReserveBoard(s.Boards[0][0]))
	assert.Equal(t, before, s)
	assert.NotEqual(t, before.Boards, next.Boards)
}

func TestTakeThree(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 5)

	next, events := mustApply(t, e, s, TakeThree(entities.White, entities.Blue, entities.Green))
	p := next.Players[0]
	assert.Equal(t, 1, p.Tokens[entities.White])
	assert.Equal(t, 1, p.Tokens[entities.Blue])
	assert.Equal(t, 1, p.Tokens[entities.Green])
	assert.Equal(t, 3, next.Bank[entities.White])
	require.Len(t, events, 2)
	assert.Equal(t, EventTokensTaken, events[0].Type)
	assert.Equal(t, map[entities.Resource]int{entities.White: 1, entities.Blue: 1, entities.Green: 1}, events[0].Tokens)
	assert.Equal(t, EventTurnAdvanced, events[1].Type)
	assert.Equal(t, 1, events[1].NextSeat)
	assert.Equal(t, 1, next.TurnPointer)

	tests := []struct {
		name   string
		colors []entities.Resource
		want   *Rejection
	}{
		{name: "two colors", colors: []entities.Resource{entities.White, entities.Blue}, want: ErrInvalidAction},
		{name: "duplicate", colors: []entities.Resource{entities.White, entities.White, entities.Blue}, want: ErrInvalidAction},
		{name: "gold", colors: []entities.Resource{entities.White, entities.Gold, entities.Blue}, want: ErrInvalidAction},
		{name: "unknown", colors: []entities.Resource{entities.White, "pink", entities.Blue}, want: ErrInvalidAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := e.Apply(s, 0, Action{Type: ActionTakeThree, Colors: tt.colors})
			requireKind(t, err, tt.want)
		})
	}

	empty := s.Clone()
	giveTokens(t, empty, 1, map[entities.Resource]int{entities.Red: 4})
	_, _, err := e.Apply(empty, 0, TakeThree(entities.White, entities.Red, entities.Green))
	requireKind(t, err, ErrInsufficientBankSupply)
	rej, _ := AsRejection(err)
	assert.Equal(t, entities.Red, rej.Metadata["color"])
}

// 2 players, supply 4: the second take two of the same color fails.
func TestTakeTwoNeedsFourInBank(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 11)
	require.Equal(t, 4, s.Bank[entities.White])

	s, _ = mustApply(t, e, s, TakeTwo(entities.White))
	assert.Equal(t, 2, s.Bank[entities.White])
	assert.Equal(t, 2, s.Players[0].Tokens[entities.White])

	_, _, err := e.Apply(s, 1, TakeTwo(entities.White))
	requireKind(t, err, ErrInsufficientBankSupply)

	_, _, err = e.Apply(s, 1, TakeTwo(entities.Gold))
	requireKind(t, err, ErrInvalidAction)
}

func TestReserveFromBoard(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 8)
	cardID := s.Boards[0][1]
	top := s.Decks[0][len(s.Decks[0])-1]

	next, events := mustApply(t, e, s, ReserveBoard(cardID))
	assert.Len(t, next.Boards[0], 4)
	assert.Equal(t, top, next.Boards[0][1], "refill goes into the vacated slot")
	assert.Len(t, next.Decks[0], 35)
	assert.Equal(t, []string{cardID}, next.Players[0].Reserved)
	assert.Equal(t, 1, next.Players[0].Tokens[entities.Gold])
	assert.Equal(t, 4, next.Bank[entities.Gold])
	require.NotEmpty(t, events)
	assert.Equal(t, EventCardReserved, events[0].Type)
	assert.Equal(t, top, events[0].Replacement)
	assert.Equal(t, map[entities.Resource]int{entities.Gold: 1}, events[0].Tokens)

	// deck empty: the slot stays vacant
	drained := s.Clone()
	drained.Decks[0] = []string{}
	next, _ = mustApply(t, e, drained, ReserveBoard(cardID))
	assert.Len(t, next.Boards[0], 3)
	assert.NotContains(t, next.Boards[0], cardID)

	// no gold left: reserve still succeeds
	noGold := s.Clone()
	giveTokens(t, noGold, 1, map[entities.Resource]int{entities.Gold: 5})
	next, events = mustApply(t, e, noGold, ReserveBoard(cardID))
	assert.Zero(t, next.Players[0].Tokens[entities.Gold])
	assert.Nil(t, events[0].Tokens)

	_, _, err := e.Apply(s, 0, ReserveBoard(s.Decks[0][0]))
	requireKind(t, err, ErrCardNotFound)
}

func TestReserveLimit(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 8)
	s.Players[0].Reserved = []string{s.Decks[0][0], s.Decks[0][1], s.Decks[0][2]}
	s.Decks[0] = s.Decks[0][3:]

	_, _, err := e.Apply(s, 0, ReserveBoard(s.Boards[1][0]))
	requireKind(t, err, ErrReserveLimitExceeded)
	_, _, err = e.Apply(s, 0, ReserveDeck(2))
	requireKind(t, err, ErrReserveLimitExceeded)
}

func TestReserveFromDeck(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 9)
	top := s.Decks[2][len(s.Decks[2])-1]
	board := append([]string(nil), s.Boards[2]...)

	next, events := mustApply(t, e, s, ReserveDeck(3))
	assert.Equal(t, []string{top}, next.Players[0].Reserved)
	assert.Equal(t, board, next.Boards[2])
	assert.Len(t, next.Decks[2], 15)
	assert.True(t, events[0].FromDeck)
	assert.Equal(t, 3, events[0].Level)

	s.Decks[2] = []string{}
	_, _, err := e.Apply(s, 0, ReserveDeck(3))
	requireKind(t, err, ErrDeckExhausted)
	_, _, err = e.Apply(s, 0, ReserveDeck(0))
	requireKind(t, err, ErrInvalidAction)
}

// Card 1_3_4 costs white 3. One white bonus makes the effective cost white 2.
func TestBuyWithBonusRequiresExactPayment(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 13)
	placeOnBoard(t, e, s, "1_3_4")
	givePurchased(t, e, s, 0, "1_3_0")
	giveTokens(t, s, 0, map[entities.Resource]int{entities.White: 3, entities.Gold: 1})

	white := func(n int) map[entities.Resource]int { return map[entities.Resource]int{entities.White: n} }

	_, _, err := e.Apply(s, 0, BuyBoard("1_3_4", Payment{Tokens: white(3)}))
	requireKind(t, err, ErrOverpaymentNotAllowed)
	_, _, err = e.Apply(s, 0, BuyBoard("1_3_4", Payment{Tokens: white(1)}))
	requireKind(t, err, ErrInsufficientPayment)
	_, _, err = e.Apply(s, 0, BuyBoard("1_3_4", Payment{Tokens: white(2), Gold: map[entities.Resource]int{entities.Red: 1}}))
	requireKind(t, err, ErrOverpaymentNotAllowed)

	next, events := mustApply(t, e, s, BuyBoard("1_3_4", Payment{Tokens: white(2)}))
	p := next.Players[0]
	assert.Equal(t, 1, p.Tokens[entities.White])
	assert.Equal(t, []string{"1_3_0", "1_3_4"}, p.Purchased)
	assert.Equal(t, 1, p.Bonuses[entities.Red])
	assert.Equal(t, s.Bank[entities.White]+2, next.Bank[entities.White])
	assert.Len(t, next.Boards[0], 4)
	assert.NotContains(t, next.Boards[0], "1_3_4")
	assert.Equal(t, EventCardPurchased, events[0].Type)
	assert.Equal(t, SourceBoard, events[0].Source)
	assert.Equal(t, white(2), events[0].Tokens)

	// gold stands in for a missing white
	next, events = mustApply(t, e, s, BuyBoard("1_3_4", Payment{Tokens: white(1), Gold: white(1)}))
	assert.Zero(t, next.Players[0].Tokens[entities.Gold])
	assert.Equal(t, 2, next.Players[0].Tokens[entities.White])
	assert.Equal(t, map[entities.Resource]int{entities.White: 1, entities.Gold: 1}, events[0].Tokens)
}

func TestBuyChecksHoldings(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 13)
	placeOnBoard(t, e, s, "1_3_4")
	giveTokens(t, s, 0, map[entities.Resource]int{entities.White: 2})

	_, _, err := e.Apply(s, 0, BuyBoard("1_3_4", Payment{Tokens: map[entities.Resource]int{entities.White: 3}}))
	requireKind(t, err, ErrInsufficientPayment)
	_, _, err = e.Apply(s, 0, BuyBoard("1_3_4", Payment{
		Tokens: map[entities.Resource]int{entities.White: 2},
		Gold:   map[entities.Resource]int{entities.White: 1},
	}))
	requireKind(t, err, ErrInsufficientPayment)
	_, _, err = e.Apply(s, 0, BuyBoard("1_3_4", Payment{Tokens: map[entities.Resource]int{entities.White: -1}}))
	requireKind(t, err, ErrInvalidAction)
	_, _, err = e.Apply(s, 0, BuyBoard("1_3_4", Payment{Tokens: map[entities.Resource]int{entities.Gold: 3}}))
	requireKind(t, err, ErrInvalidAction)
}

func TestBuyFromReserve(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 21)
	pullCard(t, s, "1_3_4")
	s.Players[0].Reserved = []string{"1_3_4"}
	pullCard(t, s, "1_3_0")
	s.Players[1].Reserved = []string{"1_3_0"}
	giveTokens(t, s, 0, map[entities.Resource]int{entities.White: 3, entities.Blue: 3})

	_, _, err := e.Apply(s, 0, BuyReserved("1_3_0", Payment{Tokens: map[entities.Resource]int{entities.Blue: 3}}))
	requireKind(t, err, ErrNotYourReservedCard)
	_, _, err = e.Apply(s, 0, BuyReserved("nope", Payment{}))
	requireKind(t, err, ErrCardNotFound)
	_, _, err = e.Apply(s, 0, BuyBoard("1_3_4", Payment{Tokens: map[entities.Resource]int{entities.White: 3}}))
	requireKind(t, err, ErrCardNotFound)

	boards := s.Boards
	next, events := mustApply(t, e, s, BuyReserved("1_3_4", Payment{Tokens: map[entities.Resource]int{entities.White: 3}}))
	assert.Empty(t, next.Players[0].Reserved)
	assert.Equal(t, []string{"1_3_4"}, next.Players[0].Purchased)
	assert.Equal(t, boards, next.Boards)
	assert.Equal(t, SourceReserve, events[0].Source)
}

func TestNoblesAwardedInIDOrder(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 17)
	s.Nobles = []string{"mary_stuart", "henry_viii", "charles_v"}

	// red reaches 4 with the purchase
	p := s.Players[0]
	p.Bonuses = map[entities.Resource]int{entities.Red: 3, entities.Black: 4, entities.Green: 4, entities.White: 3}
	placeOnBoard(t, e, s, "1_3_4") // red bonus, costs white 3; covered by white bonus
	next, events := mustApply(t, e, s, BuyBoard("1_3_4", Payment{}))

	var awarded []string
	for _, ev := range events {
		if ev.Type == EventNobleAwarded {
			awarded = append(awarded, ev.NobleID)
		}
	}
	assert.Equal(t, []string{"charles_v", "henry_viii", "mary_stuart"}, awarded)
	assert.Empty(t, next.Nobles)
	assert.Equal(t, 9, next.Players[0].Score)
	assert.Equal(t, awarded, next.Players[0].Nobles)

	// the pool is empty now, so the other player cannot receive them
	next.Players[1].Bonuses = map[entities.Resource]int{entities.Red: 5, entities.Black: 5, entities.Green: 5, entities.White: 5}
	after, events := mustApply(t, e, next, TakeTwo(entities.Blue))
	assert.Empty(t, after.Players[1].Nobles)
	for _, ev := range events {
		assert.NotEqual(t, EventNobleAwarded, ev.Type)
	}
}

func TestNobleNotAwardedWhenShort(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 17)
	s.Nobles = []string{"henry_viii"}
	s.Players[0].Bonuses = map[entities.Resource]int{entities.Red: 4, entities.Black: 3}

	next, _ := mustApply(t, e, s, TakeTwo(entities.Blue))
	assert.Equal(t, []string{"henry_viii"}, next.Nobles)
	assert.Empty(t, next.Players[0].Nobles)
}

func TestTokenCapAndDiscard(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 23)
	giveTokens(t, s, 0, map[entities.Resource]int{entities.White: 4, entities.Blue: 3, entities.Gold: 2})

	s, events := mustApply(t, e, s, TakeThree(entities.Red, entities.Black, entities.Green))
	assert.True(t, s.PendingDiscard)
	assert.Equal(t, 0, s.TurnPointer)
	last := events[len(events)-1]
	assert.Equal(t, EventDiscardRequired, last.Type)
	assert.Equal(t, 2, last.Excess)

	tests := []struct {
		name    string
		discard map[entities.Resource]int
	}{
		{name: "too few", discard: map[entities.Resource]int{entities.White: 1}},
		{name: "too many", discard: map[entities.Resource]int{entities.White: 3}},
		{name: "more than held", discard: map[entities.Resource]int{entities.Red: 2}},
		{name: "negative", discard: map[entities.Resource]int{entities.White: 3, entities.Blue: -1}},
		{name: "unknown", discard: map[entities.Resource]int{"pink": 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := e.Apply(s, 0, Discard(tt.discard))
			requireKind(t, err, ErrInvalidAction)
		})
	}

	next, events := mustApply(t, e, s, Discard(map[entities.Resource]int{entities.White: 1, entities.Gold: 1}))
	assert.False(t, next.PendingDiscard)
	assert.Equal(t, 10, next.Players[0].Tokens.Total())
	assert.Equal(t, 1, next.TurnPointer)
	assert.Equal(t, EventTokensDiscarded, events[0].Type)
	assert.Equal(t, EventTurnAdvanced, events[1].Type)
	assert.Equal(t, 4, next.Bank[entities.Gold])

	_, _, err := e.Apply(next, 1, Discard(map[entities.Resource]int{}))
	requireKind(t, err, ErrInvalidAction)
}

func TestExactlyTenNeedsNoDiscard(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 23)
	giveTokens(t, s, 0, map[entities.Resource]int{entities.White: 4, entities.Blue: 3})

	next, _ := mustApply(t, e, s, TakeThree(entities.Red, entities.Black, entities.Green))
	assert.False(t, next.PendingDiscard)
	assert.Equal(t, 1, next.TurnPointer)
}

func TestRoundIncrementsOnWrap(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 3, 2)

	s, _ = mustApply(t, e, s, TakeTwo(entities.White))
	s, _ = mustApply(t, e, s, TakeTwo(entities.Blue))
	assert.Equal(t, 1, s.Round)
	s, events := mustApply(t, e, s, TakeTwo(entities.Green))
	assert.Equal(t, 2, s.Round)
	assert.Equal(t, 0, s.TurnPointer)
	assert.Equal(t, 1, events[0].Round, "events carry the round they happened in")
}

func TestFinalRound(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name        string
		seats       int
		triggerSeat int
	}{
		{name: "two seats, first triggers", seats: 2, triggerSeat: 0},
		{name: "three seats, middle triggers", seats: 3, triggerSeat: 1},
		{name: "four seats, last triggers", seats: 4, triggerSeat: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startTestGame(t, e, tt.seats, 31)
			for s.TurnPointer != tt.triggerSeat {
				s, _ = mustApply(t, e, s, ReserveDeck(3))
			}
			// 1_4_0 is worth one point and costs green 4
			placeOnBoard(t, e, s, "1_4_0")
			s.Players[tt.triggerSeat].Score = 14
			s.Players[tt.triggerSeat].Bonuses[entities.Green] = 4
			s, _ = mustApply(t, e, s, BuyBoard("1_4_0", Payment{}))
			require.True(t, s.Finishing)
			require.Equal(t, tt.triggerSeat, s.FinishingSeat)

			turns := 0
			for s.Status == entities.GameStatusInProgress {
				var events []Event
				s, events = mustApply(t, e, s, ReserveDeck(2))
				turns++
				if s.Status == entities.GameStatusFinished {
					assert.Equal(t, EventGameFinished, events[len(events)-1].Type)
				}
			}
			assert.Equal(t, tt.seats-1, turns)
			assert.Equal(t, s.Players[tt.triggerSeat].PlayerID, s.WinnerID)

			_, _, err := e.Apply(s, s.TurnPointer, TakeTwo(entities.White))
			requireKind(t, err, ErrGameNotActive)
		})
	}
}

func TestWinnerTieBreaks(t *testing.T) {
	players := func(standings ...[2]int) []*PlayerState {
		out := make([]*PlayerState, len(standings))
		for i, st := range standings {
			p := newPlayer(string(rune('a'+i)), i)
			p.Score = st[0]
			p.Purchased = make([]string, st[1])
			out[i] = p
		}
		return out
	}

	assert.Equal(t, "b", Winner(players([2]int{15, 5}, [2]int{16, 9})).PlayerID)
	assert.Equal(t, "b", Winner(players([2]int{16, 9}, [2]int{16, 7}, [2]int{12, 1})).PlayerID)
	assert.Equal(t, "a", Winner(players([2]int{16, 7}, [2]int{16, 7})).PlayerID)
	assert.Equal(t, "c", Winner(players([2]int{15, 7}, [2]int{16, 8}, [2]int{16, 6})).PlayerID)
}

func TestEventSequenceIsMonotonic(t *testing.T) {
	e := newTestEngine(t)
	s := startTestGame(t, e, 2, 4)
	assert.Equal(t, int64(1), s.EventSeq)

	s, events := mustApply(t, e, s, TakeTwo(entities.Red))
	require.Len(t, events, 2)
	assert.Equal(t, int64(2), events[0].Seq)
	assert.Equal(t, int64(3), events[1].Seq)
	assert.Equal(t, int64(3), s.EventSeq)
	assert.Equal(t, "p0", events[0].PlayerID)
}
