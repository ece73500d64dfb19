package game

import (
	"go-splendor/const_data"
	"go-splendor/entities"
)

func (m *move) checkReserveLimit() error {
	if len(m.player.Reserved) >= m.state.Config.ReserveLimit {
		return reject(KindReserveLimitExceeded, "reserve limit reached",
			"limit", m.state.Config.ReserveLimit, "reserved", len(m.player.Reserved))
	}
	return nil
}

func (m *move) reserveFromBoard(cardID string) error {
	if err := m.checkReserveLimit(); err != nil {
		return err
	}
	card, idx, err := m.findOnBoard(cardID)
	if err != nil {
		return err
	}

	replacement := m.takeFromBoard(card.Level, idx)
	m.player.Reserved = append(m.player.Reserved, card.ID)
	m.emit(Event{
		Type:        EventCardReserved,
		CardID:      card.ID,
		Level:       card.Level,
		Source:      SourceBoard,
		Replacement: replacement,
		Tokens:      m.grantGold(),
	})
	return nil
}

func (m *move) reserveFromDeck(level int) error {
	if level < const_data.MinLevel || level > const_data.MaxLevel {
		return reject(KindInvalidAction, "level out of range", "level", level)
	}
	if err := m.checkReserveLimit(); err != nil {
		return err
	}
	deck := m.state.Decks[level-1]
	if len(deck) == 0 {
		return reject(KindDeckExhausted, "deck is empty", "level", level)
	}

	cardID := deck[len(deck)-1]
	m.state.Decks[level-1] = deck[:len(deck)-1]
	m.player.Reserved = append(m.player.Reserved, cardID)
	m.emit(Event{
		Type:     EventCardReserved,
		CardID:   cardID,
		Level:    level,
		FromDeck: true,
		Tokens:   m.grantGold(),
	})
	return nil
}

// grantGold gives one gold to the player when the bank has any left.
func (m *move) grantGold() map[entities.Resource]int {
	if m.state.Bank[entities.Gold] == 0 {
		return nil
	}
	m.transfer(entities.Gold, 1)
	return map[entities.Resource]int{entities.Gold: 1}
}

func (m *move) findOnBoard(cardID string) (entities.NormalCard, int, error) {
	card, ok := m.catalog.Card(cardID)
	if !ok {
		return entities.NormalCard{}, -1, reject(KindCardNotFound, "unknown card", "cardID", cardID)
	}
	idx := indexOf(m.state.Boards[card.Level-1], cardID)
	if idx < 0 {
		return entities.NormalCard{}, -1, reject(KindCardNotFound, "card is not on the board",
			"cardID", cardID, "level", card.Level)
	}
	return card, idx, nil
}

// takeFromBoard removes the card at idx and refills the slot from the deck. It returns the
// refill card id, or "" when the deck is empty and the slot is dropped.
func (m *move) takeFromBoard(level, idx int) string {
	board := m.state.Boards[level-1]
	deck := m.state.Decks[level-1]
	if len(deck) == 0 {
		m.state.Boards[level-1] = append(board[:idx], board[idx+1:]...)
		return ""
	}
	top := deck[len(deck)-1]
	m.state.Decks[level-1] = deck[:len(deck)-1]
	board[idx] = top
	return top
}
