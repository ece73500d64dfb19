package controller

import (
	"net/http"

	"go-splendor/dto"
	"go-splendor/game"
	"go-splendor/middleware"
	"go-splendor/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GameController struct {
	sessions *service.SessionManager
	log      *zap.Logger
}

func NewGameController(sessions *service.SessionManager, log *zap.Logger) *GameController {
	return &GameController{sessions: sessions, log: log}
}

func (g *GameController) CreateGame(c *gin.Context) {
	state, err := g.sessions.CreateGame(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		failWith(c, g.log, err)
		return
	}
	ok(c, "game created", dto.CreateGameResponse{GameID: state.ID})
}

func (g *GameController) GetGameList(c *gin.Context) {
	games, err := g.sessions.ListGames(c.Request.Context())
	if err != nil {
		failWith(c, g.log, err)
		return
	}
	ok(c, "ok", dto.GameListResponse{Games: games})
}

func (g *GameController) JoinGame(c *gin.Context) {
	res, err := g.sessions.Join(c.Request.Context(), c.Param("gameID"), middleware.UserID(c))
	if err != nil {
		failWith(c, g.log, err)
		return
	}
	ok(c, "joined", res.State.Info())
}

func (g *GameController) StartGame(c *gin.Context) {
	res, err := g.sessions.Start(c.Request.Context(), c.Param("gameID"), middleware.UserID(c))
	if err != nil {
		failWith(c, g.log, err)
		return
	}
	ok(c, "game started", dto.ActionResponse{State: res.State, Events: res.Events})
}

func (g *GameController) ApplyAction(c *gin.Context) {
	var action game.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		fail(c, http.StatusBadRequest, "invalid action body")
		return
	}
	res, err := g.sessions.ApplyAsPlayer(c.Request.Context(), c.Param("gameID"), middleware.UserID(c), action)
	if err != nil {
		failWith(c, g.log, err)
		return
	}
	ok(c, "ok", dto.ActionResponse{State: res.State, Events: res.Events})
}

func (g *GameController) GetGame(c *gin.Context) {
	state, err := g.sessions.GetState(c.Request.Context(), c.Param("gameID"))
	if err != nil {
		failWith(c, g.log, err)
		return
	}
	ok(c, "ok", state)
}

func (g *GameController) GetEvents(c *gin.Context) {
	events, err := g.sessions.ListEvents(c.Request.Context(), c.Param("gameID"))
	if err != nil {
		failWith(c, g.log, err)
		return
	}
	ok(c, "ok", dto.EventListResponse{Events: events})
}
