package game

import (
	"sort"

	"go-splendor/entities"
)

// awardNobles gives the acting player every noble their bonuses satisfy, in id order.
func (m *move) awardNobles() {
	pool := append([]string(nil), m.state.Nobles...)
	sort.Strings(pool)
	for _, id := range pool {
		noble, ok := m.catalog.Noble(id)
		if !ok || !m.satisfies(noble) {
			continue
		}
		m.state.Nobles = removeID(m.state.Nobles, id)
		m.player.Nobles = append(m.player.Nobles, id)
		m.player.Score += noble.Points
		m.emit(Event{Type: EventNobleAwarded, NobleID: id, Points: noble.Points, Score: m.player.Score})
	}
}

func (m *move) satisfies(noble entities.NobleCard) bool {
	for c, n := range noble.Requirement {
		if m.player.Bonuses[c] < n {
			return false
		}
	}
	return true
}

// discard is only legal while a discard is pending and must leave exactly TokenCap tokens.
func (m *move) discard(tokens map[entities.Resource]int) error {
	if !m.state.PendingDiscard {
		return reject(KindInvalidAction, "no discard is pending")
	}
	total := 0
	for r, n := range tokens {
		if !r.Valid() {
			return reject(KindInvalidAction, "unknown token", "resource", r)
		}
		if n < 0 {
			return reject(KindInvalidAction, "discard amounts must not be negative", "resource", r, "amount", n)
		}
		if n > m.player.Tokens[r] {
			return reject(KindInvalidAction, "cannot discard more than held",
				"resource", r, "discard", n, "held", m.player.Tokens[r])
		}
		total += n
	}
	held := m.player.Tokens.Total()
	if held-total != m.state.Config.TokenCap {
		return reject(KindInvalidAction, "discard must leave exactly the token cap",
			"held", held, "discard", total, "cap", m.state.Config.TokenCap)
	}

	discarded := make(map[entities.Resource]int)
	for _, r := range entities.AllResources {
		if n := tokens[r]; n > 0 {
			m.transfer(r, -n)
			discarded[r] = n
		}
	}
	m.emit(Event{Type: EventTokensDiscarded, Tokens: discarded})
	return nil
}

// endTurn applies the token cap, the final-round trigger and the turn pointer.
func (m *move) endTurn() {
	s := m.state
	cfg := s.Config
	if total := m.player.Tokens.Total(); total > cfg.TokenCap {
		s.PendingDiscard = true
		m.emit(Event{Type: EventDiscardRequired, Excess: total - cfg.TokenCap})
		return
	}
	s.PendingDiscard = false

	// 达到胜利分数：本轮结束后游戏结束
	if !s.Finishing && m.player.Score >= cfg.WinningScore {
		s.Finishing = true
		s.FinishingSeat = m.seat
	}

	next := (s.TurnPointer + 1) % len(s.Players)
	if s.Finishing && next == s.FinishingSeat {
		m.finish()
		return
	}
	if next == 0 {
		s.Round++
	}
	s.TurnPointer = next
	m.emit(Event{Type: EventTurnAdvanced, NextSeat: next})
}

func (m *move) finish() {
	winner := Winner(m.state.Players)
	m.state.Status = entities.GameStatusFinished
	m.state.WinnerID = winner.PlayerID
	m.emit(Event{Type: EventGameFinished, WinnerID: winner.PlayerID, Score: winner.Score})
}

// Winner picks the highest score, then fewest purchased cards, then lowest seat.
func Winner(players []*PlayerState) *PlayerState {
	var best *PlayerState
	for _, p := range players {
		switch {
		case best == nil,
			p.Score > best.Score,
			p.Score == best.Score && len(p.Purchased) < len(best.Purchased):
			best = p
		}
	}
	return best
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
