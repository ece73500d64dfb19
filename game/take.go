package game

import "go-splendor/entities"

const takeTwoMinBank = 4

func (m *move) takeThree(colors []entities.Resource) error {
	if len(colors) != 3 {
		return reject(KindInvalidAction, "take three needs exactly 3 colors", "colors", colors)
	}
	seen := make(map[entities.Resource]bool, 3)
	for _, c := range colors {
		if !c.IsGem() {
			return reject(KindInvalidAction, "only gem colors can be taken", "color", c)
		}
		if seen[c] {
			return reject(KindInvalidAction, "colors must be distinct", "color", c)
		}
		seen[c] = true
	}
	for _, c := range colors {
		if m.state.Bank[c] < 1 {
			return reject(KindInsufficientBankSupply, "no tokens left of this color",
				"color", c, "required", 1, "available", m.state.Bank[c])
		}
	}

	taken := make(map[entities.Resource]int, 3)
	for _, c := range colors {
		m.transfer(c, 1)
		taken[c] = 1
	}
	m.emit(Event{Type: EventTokensTaken, Tokens: taken})
	return nil
}

// takeTwo needs at least 4 tokens of the color in the bank before the take.
func (m *move) takeTwo(color entities.Resource) error {
	if !color.IsGem() {
		return reject(KindInvalidAction, "only gem colors can be taken", "color", color)
	}
	if m.state.Bank[color] < takeTwoMinBank {
		return reject(KindInsufficientBankSupply, "take two needs 4 tokens in the bank",
			"color", color, "required", takeTwoMinBank, "available", m.state.Bank[color])
	}
	m.transfer(color, 2)
	m.emit(Event{Type: EventTokensTaken, Tokens: map[entities.Resource]int{color: 2}})
	return nil
}
