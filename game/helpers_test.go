package game

import (
	"fmt"
	"testing"

	"go-splendor/const_data"
	"go-splendor/entities"

	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	catalog, err := const_data.LoadCatalog()
	require.NoError(t, err)
	return NewEngine(catalog)
}

func startTestGame(t *testing.T, e *Engine, seats int, seed int64) *GameState {
	t.Helper()
	ids := make([]string, seats)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i)
	}
	s, events, err := e.NewGame("g1", ids, seed, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, events, 1)
	return s
}

// mustApply applies action for the seat on turn.
func mustApply(t *testing.T, e *Engine, s *GameState, action Action) (*GameState, []Event) {
	t.Helper()
	next, events, err := e.Apply(s, s.TurnPointer, action)
	require.NoError(t, err)
	return next, events
}

// giveTokens moves tokens from the bank to a player, keeping conservation intact.
func giveTokens(t *testing.T, s *GameState, seat int, tokens map[entities.Resource]int) {
	t.Helper()
	for r, n := range tokens {
		require.GreaterOrEqual(t, s.Bank[r], n, "bank %s", r)
		s.Bank[r] -= n
		s.Players[seat].Tokens[r] += n
	}
}

// pullCard removes a card from wherever it sits in the decks or boards. A board slot is
// refilled from the deck.
func pullCard(t *testing.T, s *GameState, cardID string) {
	t.Helper()
	for i := range s.Decks {
		if idx := indexOf(s.Decks[i], cardID); idx >= 0 {
			s.Decks[i] = append(s.Decks[i][:idx], s.Decks[i][idx+1:]...)
			return
		}
		if idx := indexOf(s.Boards[i], cardID); idx >= 0 {
			deck := s.Decks[i]
			s.Boards[i][idx] = deck[len(deck)-1]
			s.Decks[i] = deck[:len(deck)-1]
			return
		}
	}
	t.Fatalf("card %s is neither in a deck nor on a board", cardID)
}

// givePurchased hands a player an already bought card.
func givePurchased(t *testing.T, e *Engine, s *GameState, seat int, cardID string) {
	t.Helper()
	card, ok := e.Catalog().Card(cardID)
	require.True(t, ok)
	pullCard(t, s, cardID)
	p := s.Players[seat]
	p.Purchased = append(p.Purchased, cardID)
	p.Bonuses[card.Bonus]++
	p.Score += card.Points
}

// placeOnBoard makes cardID visible by swapping it with the first board card of its level.
func placeOnBoard(t *testing.T, e *Engine, s *GameState, cardID string) {
	t.Helper()
	card, ok := e.Catalog().Card(cardID)
	require.True(t, ok)
	level := card.Level - 1
	if indexOf(s.Boards[level], cardID) >= 0 {
		return
	}
	idx := indexOf(s.Decks[level], cardID)
	require.GreaterOrEqual(t, idx, 0, "card %s not in deck", cardID)
	s.Decks[level][idx], s.Boards[level][0] = s.Boards[level][0], s.Decks[level][idx]
}

// autoPay builds the exact payment for a card, spending gold only where tokens run short.
func autoPay(e *Engine, s *GameState, seat int, cardID string) (Payment, bool) {
	card, ok := e.Catalog().Card(cardID)
	if !ok {
		return Payment{}, false
	}
	p := s.Players[seat]
	payment := Payment{Tokens: map[entities.Resource]int{}, Gold: map[entities.Resource]int{}}
	gold := p.Tokens[entities.Gold]
	for _, c := range entities.GemColors {
		need := card.Cost[c] - p.Bonuses[c]
		if need <= 0 {
			continue
		}
		use := min(need, p.Tokens[c])
		if use > 0 {
			payment.Tokens[c] = use
		}
		if short := need - use; short > 0 {
			if short > gold {
				return Payment{}, false
			}
			gold -= short
			payment.Gold[c] = short
		}
	}
	return payment, true
}

func totalTokens(s *GameState, r entities.Resource) int {
	total := s.Bank[r]
	for _, p := range s.Players {
		total += p.Tokens[r]
	}
	return total
}

func requireKind(t *testing.T, err error, target *Rejection) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, target)
}
