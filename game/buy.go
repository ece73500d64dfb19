package game

import "go-splendor/entities"

func (m *move) buyFromBoard(cardID string, payment Payment) error {
	card, idx, err := m.findOnBoard(cardID)
	if err != nil {
		return err
	}
	if err := m.checkPayment(card, payment); err != nil {
		return err
	}

	paid := m.pay(payment)
	replacement := m.takeFromBoard(card.Level, idx)
	m.gainCard(card)
	m.emit(Event{
		Type:        EventCardPurchased,
		CardID:      card.ID,
		Level:       card.Level,
		Source:      SourceBoard,
		Replacement: replacement,
		Tokens:      paid,
		Points:      card.Points,
		Score:       m.player.Score,
	})
	return nil
}

func (m *move) buyFromReserve(cardID string, payment Payment) error {
	card, ok := m.catalog.Card(cardID)
	if !ok {
		return reject(KindCardNotFound, "unknown card", "cardID", cardID)
	}
	idx := indexOf(m.player.Reserved, cardID)
	if idx < 0 {
		return reject(KindNotYourReservedCard, "card is not in your reserve", "cardID", cardID)
	}
	if err := m.checkPayment(card, payment); err != nil {
		return err
	}

	paid := m.pay(payment)
	m.player.Reserved = append(m.player.Reserved[:idx], m.player.Reserved[idx+1:]...)
	m.gainCard(card)
	m.emit(Event{
		Type:   EventCardPurchased,
		CardID: card.ID,
		Level:  card.Level,
		Source: SourceReserve,
		Tokens: paid,
		Points: card.Points,
		Score:  m.player.Score,
	})
	return nil
}

// effectiveCost is the card cost per gem color after the player's bonuses.
func (m *move) effectiveCost(card entities.NormalCard) map[entities.Resource]int {
	cost := make(map[entities.Resource]int, len(entities.GemColors))
	for _, c := range entities.GemColors {
		if n := card.Cost[c] - m.player.Bonuses[c]; n > 0 {
			cost[c] = n
		}
	}
	return cost
}

// checkPayment requires the declared payment to match the effective cost exactly per color
// and to be covered by the player's holdings. No change is given.
func (m *move) checkPayment(card entities.NormalCard, payment Payment) error {
	for _, part := range []map[entities.Resource]int{payment.Tokens, payment.Gold} {
		for c, n := range part {
			if !c.IsGem() {
				return reject(KindInvalidAction, "payment must be keyed by gem color", "color", c)
			}
			if n < 0 {
				return reject(KindInvalidAction, "payment amounts must not be negative", "color", c, "amount", n)
			}
		}
	}

	cost := m.effectiveCost(card)
	for _, c := range entities.GemColors {
		declared := payment.Tokens[c] + payment.Gold[c]
		switch {
		case declared < cost[c]:
			return reject(KindInsufficientPayment, "payment does not cover the cost",
				"color", c, "required", cost[c], "declared", declared)
		case declared > cost[c]:
			return reject(KindOverpaymentNotAllowed, "payment exceeds the cost",
				"color", c, "required", cost[c], "declared", declared)
		}
	}

	for _, c := range entities.GemColors {
		if payment.Tokens[c] > m.player.Tokens[c] {
			return reject(KindInsufficientPayment, "not enough tokens held",
				"color", c, "required", payment.Tokens[c], "held", m.player.Tokens[c])
		}
	}
	if gold := payment.goldTotal(); gold > m.player.Tokens[entities.Gold] {
		return reject(KindInsufficientPayment, "not enough gold held",
			"color", entities.Gold, "required", gold, "held", m.player.Tokens[entities.Gold])
	}
	return nil
}

// pay returns the declared tokens to the bank and reports what was paid.
func (m *move) pay(payment Payment) map[entities.Resource]int {
	paid := make(map[entities.Resource]int)
	for _, c := range entities.GemColors {
		if n := payment.Tokens[c]; n > 0 {
			m.transfer(c, -n)
			paid[c] = n
		}
	}
	if gold := payment.goldTotal(); gold > 0 {
		m.transfer(entities.Gold, -gold)
		paid[entities.Gold] = gold
	}
	return paid
}

func (m *move) gainCard(card entities.NormalCard) {
	m.player.Purchased = append(m.player.Purchased, card.ID)
	m.player.Bonuses[card.Bonus]++
	m.player.Score += card.Points
}
