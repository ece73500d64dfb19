package controller

import (
	"net/http"

	"go-splendor/dto"
	"go-splendor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthController hands out player identities. There are no accounts: any user id is accepted.
type AuthController struct {
	issuer *utils.TokenIssuer
	log    *zap.Logger
}

func NewAuthController(issuer *utils.TokenIssuer, log *zap.Logger) *AuthController {
	return &AuthController{issuer: issuer, log: log}
}

func (a *AuthController) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "missing userID")
		return
	}
	access, err := a.issuer.GenerateAccessToken(req.UserID)
	if err != nil {
		failWith(c, a.log, err)
		return
	}
	refresh, err := a.issuer.GenerateRefreshToken(req.UserID)
	if err != nil {
		failWith(c, a.log, err)
		return
	}
	ok(c, "token issued", dto.TokenResponse{AccessToken: access, RefreshToken: refresh})
}

func (a *AuthController) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "missing refreshToken")
		return
	}
	claims, err := a.issuer.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		fail(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	access, err := a.issuer.GenerateAccessToken(claims.UserID)
	if err != nil {
		failWith(c, a.log, err)
		return
	}
	ok(c, "token refreshed", dto.TokenResponse{AccessToken: access})
}
