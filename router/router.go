package router

import (
	"net/http"

	"go-splendor/controller"
	"go-splendor/middleware"
	"go-splendor/utils"
	"go-splendor/ws"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Game   *controller.GameController
	Auth   *controller.AuthController
	Hub    *ws.Hub
	Issuer *utils.TokenIssuer
}

func InitRouter(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/token", h.Auth.IssueToken)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	requireAuth := middleware.AuthMiddleware(h.Issuer)

	// 游戏接口路由
	api := r.Group("/game", requireAuth)
	{
		api.POST("/create", h.Game.CreateGame)
		api.GET("/list", h.Game.GetGameList)
		api.GET("/:gameID", h.Game.GetGame)
		api.GET("/:gameID/events", h.Game.GetEvents)
		api.POST("/:gameID/join", h.Game.JoinGame)
		api.POST("/:gameID/start", h.Game.StartGame)
		api.POST("/:gameID/action", h.Game.ApplyAction)
	}

	// WebSocket 路由
	r.GET("/ws", requireAuth, h.Hub.HandleWebSocket)
}
