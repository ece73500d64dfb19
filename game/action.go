package game

import "go-splendor/entities"

type ActionType string

const (
	ActionTakeThree    ActionType = "take_three"
	ActionTakeTwo      ActionType = "take_two"
	ActionReserveBoard ActionType = "reserve_board"
	ActionReserveDeck  ActionType = "reserve_deck"
	ActionBuyBoard     ActionType = "buy_board"
	ActionBuyReserved  ActionType = "buy_reserved"
	ActionDiscard      ActionType = "discard"
)

// Payment declares how a purchase is paid. Gold maps a gem color to the gold tokens
// standing in for it.
type Payment struct {
	Tokens map[entities.Resource]int `json:"tokens,omitempty" mapstructure:"tokens"`
	Gold   map[entities.Resource]int `json:"gold,omitempty" mapstructure:"gold"`
}

func (p Payment) goldTotal() int {
	total := 0
	for _, n := range p.Gold {
		total += n
	}
	return total
}

// Action is one player move. Type selects which of the other fields are read.
type Action struct {
	Type    ActionType                `json:"type" mapstructure:"type"`
	Colors  []entities.Resource       `json:"colors,omitempty" mapstructure:"colors"`
	Color   entities.Resource         `json:"color,omitempty" mapstructure:"color"`
	CardID  string                    `json:"cardID,omitempty" mapstructure:"cardID"`
	Level   int                       `json:"level,omitempty" mapstructure:"level"`
	Payment Payment                   `json:"payment,omitempty" mapstructure:"payment"`
	Discard map[entities.Resource]int `json:"discard,omitempty" mapstructure:"discard"`
}

func TakeThree(a, b, c entities.Resource) Action {
	return Action{Type: ActionTakeThree, Colors: []entities.Resource{a, b, c}}
}

func TakeTwo(color entities.Resource) Action {
	return Action{Type: ActionTakeTwo, Color: color}
}

func ReserveBoard(cardID string) Action {
	return Action{Type: ActionReserveBoard, CardID: cardID}
}

func ReserveDeck(level int) Action {
	return Action{Type: ActionReserveDeck, Level: level}
}

func BuyBoard(cardID string, payment Payment) Action {
	return Action{Type: ActionBuyBoard, CardID: cardID, Payment: payment}
}

func BuyReserved(cardID string, payment Payment) Action {
	return Action{Type: ActionBuyReserved, CardID: cardID, Payment: payment}
}

func Discard(tokens map[entities.Resource]int) Action {
	return Action{Type: ActionDiscard, Discard: tokens}
}
