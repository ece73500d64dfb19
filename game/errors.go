package game

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable reason an action or lifecycle call was rejected.
type Kind string

const (
	KindGameNotActive          Kind = "GameNotActive"
	KindNotYourTurn            Kind = "NotYourTurn"
	KindInvalidSeatCount       Kind = "InvalidSeatCount"
	KindAlreadyStarted         Kind = "AlreadyStarted"
	KindInsufficientBankSupply Kind = "InsufficientBankSupply"
	KindDeckExhausted          Kind = "DeckExhausted"
	KindCardNotFound           Kind = "CardNotFound"
	KindNotYourReservedCard    Kind = "NotYourReservedCard"
	KindInsufficientPayment    Kind = "InsufficientPayment"
	KindOverpaymentNotAllowed  Kind = "OverpaymentNotAllowed"
	KindDiscardRequired        Kind = "DiscardRequired"
	KindReserveLimitExceeded   Kind = "ReserveLimitExceeded"
	KindInvalidAction          Kind = "InvalidAction"
	KindSeatsFull              Kind = "SeatsFull"
	KindAlreadyJoined          Kind = "AlreadyJoined"
	KindNotHost                Kind = "NotHost"
	KindNotInGame              Kind = "NotInGame"
	KindConcurrentModification Kind = "ConcurrentModification"
)

// Rejection is returned for every refused action. State is never mutated when one is returned.
type Rejection struct {
	Kind     Kind           `json:"kind"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"` // expected vs actual values
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Kind, r.Message)
}

// Is reports whether target is a Rejection of the same kind.
func (r *Rejection) Is(target error) bool {
	if t, ok := target.(*Rejection); ok {
		return r.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is comparisons.
var (
	ErrGameNotActive          = &Rejection{Kind: KindGameNotActive, Message: "game is not in progress"}
	ErrNotYourTurn            = &Rejection{Kind: KindNotYourTurn, Message: "not your turn"}
	ErrInvalidSeatCount       = &Rejection{Kind: KindInvalidSeatCount, Message: "seat count out of bounds"}
	ErrAlreadyStarted         = &Rejection{Kind: KindAlreadyStarted, Message: "game already started"}
	ErrInsufficientBankSupply = &Rejection{Kind: KindInsufficientBankSupply, Message: "not enough tokens in the bank"}
	ErrDeckExhausted          = &Rejection{Kind: KindDeckExhausted, Message: "deck is empty"}
	ErrCardNotFound           = &Rejection{Kind: KindCardNotFound, Message: "card not found"}
	ErrNotYourReservedCard    = &Rejection{Kind: KindNotYourReservedCard, Message: "card is not in your reserve"}
	ErrInsufficientPayment    = &Rejection{Kind: KindInsufficientPayment, Message: "payment does not cover the cost"}
	ErrOverpaymentNotAllowed  = &Rejection{Kind: KindOverpaymentNotAllowed, Message: "payment exceeds the cost"}
	ErrDiscardRequired        = &Rejection{Kind: KindDiscardRequired, Message: "discard tokens before anything else"}
	ErrReserveLimitExceeded   = &Rejection{Kind: KindReserveLimitExceeded, Message: "reserve limit reached"}
	ErrInvalidAction          = &Rejection{Kind: KindInvalidAction, Message: "invalid action"}
	ErrSeatsFull              = &Rejection{Kind: KindSeatsFull, Message: "game is full"}
	ErrAlreadyJoined          = &Rejection{Kind: KindAlreadyJoined, Message: "player already joined"}
	ErrNotHost                = &Rejection{Kind: KindNotHost, Message: "only the host can do this"}
	ErrNotInGame              = &Rejection{Kind: KindNotInGame, Message: "player is not seated in this game"}
	ErrConcurrentModification = &Rejection{Kind: KindConcurrentModification, Message: "game was modified concurrently"}
)

// reject builds a Rejection. kv is read as key, value pairs.
func reject(kind Kind, message string, kv ...any) *Rejection {
	r := &Rejection{Kind: kind, Message: message}
	if len(kv) > 1 {
		r.Metadata = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			r.Metadata[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return r
}

// AsRejection unwraps err to a Rejection if it is one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
