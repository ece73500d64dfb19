package controller

import (
	"errors"
	"net/http"

	"go-splendor/game"
	"go-splendor/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ok(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"msg":         msg,
		"data":        data,
	})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"status_code": status,
		"msg":         msg,
	})
}

// failWith maps a service error onto a status: rejections are 409, unknown games 404.
func failWith(c *gin.Context, log *zap.Logger, err error) {
	if rej, isRej := game.AsRejection(err); isRej {
		c.JSON(http.StatusConflict, gin.H{
			"status_code": http.StatusConflict,
			"msg":         rej.Message,
			"error":       rej,
		})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		fail(c, http.StatusNotFound, "game not found")
		return
	}
	log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	fail(c, http.StatusInternalServerError, "internal error")
}
