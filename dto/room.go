package dto

import "go-splendor/entities"

type CreateGameResponse struct {
	GameID string `json:"gameID"`
}

type GameListResponse struct {
	Games []entities.GameInfo `json:"games"`
}

type TokenRequest struct {
	UserID string `json:"userID" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}
