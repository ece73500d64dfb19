package ws

import (
	"context"
	"time"

	"go-splendor/dto"
	"go-splendor/game"

	"go.uber.org/zap"
)

const handlerTimeout = 10 * time.Second

type messageHandler func(ctx context.Context, h *Hub, c *client, msg dto.ClientMessage)

var messageHandlers map[string]messageHandler

func init() {
	messageHandlers = map[string]messageHandler{
		dto.MessageSync: handleSync,
	}
	for _, t := range []game.ActionType{
		game.ActionTakeThree,
		game.ActionTakeTwo,
		game.ActionReserveBoard,
		game.ActionReserveDeck,
		game.ActionBuyBoard,
		game.ActionBuyReserved,
		game.ActionDiscard,
	} {
		messageHandlers[string(t)] = handleAction
	}
}

func handleSync(ctx context.Context, h *Hub, c *client, _ dto.ClientMessage) {
	ctx, cancel := context.WithTimeout(ctx, handlerTimeout)
	defer cancel()
	state, err := h.sessions.GetState(ctx, c.gameID)
	if err != nil {
		h.log.Error("sync failed", zap.String("gameID", c.gameID), zap.Error(err))
		return
	}
	h.sendTo(c, dto.ServerMessage{Type: dto.MessageSync, GameID: c.gameID, State: state})
}

// handleAction submits the action as the connected player. Success reaches every client
// through Publish; a rejection goes back to the sender only.
func handleAction(ctx context.Context, h *Hub, c *client, msg dto.ClientMessage) {
	action, err := decodeAction(game.ActionType(msg.Type), msg.Payload)
	if err != nil {
		h.sendError(c, &game.Rejection{
			Kind:     game.KindInvalidAction,
			Message:  "malformed action payload",
			Metadata: map[string]any{"reason": err.Error()},
		})
		return
	}

	ctx, cancel := context.WithTimeout(ctx, handlerTimeout)
	defer cancel()
	if _, err := h.sessions.ApplyAsPlayer(ctx, c.gameID, c.playerID, action); err != nil {
		if rej, ok := game.AsRejection(err); ok {
			h.sendError(c, rej)
			return
		}
		h.log.Error("apply action failed", zap.String("gameID", c.gameID), zap.String("playerID", c.playerID), zap.Error(err))
		h.sendError(c, &game.Rejection{Kind: game.KindInvalidAction, Message: "internal error"})
	}
}
