package helpers

import (
	model "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/models"
)

// Request/Response DTOs
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Pincode  string `json:"pincode" binding:"required"`
}

type UserResponse struct {
	Username string `json:"username"`
	Pincode  string `json:"pincode"`
	Medals   int    `json:"medals"`
	Tier     string `json:"tier"`
}

// NewUserResponse builds the session view of a user, tier included
func NewUserResponse(user model.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Pincode:  user.Pincode,
		Medals:   user.Medals,
		Tier:     user.MedalTier(),
	}
}

type AddPostRequest struct {
	Text  string `json:"text" binding:"required"`
	Image string `json:"image"`
}

type AddItemRequest struct {
	Name        string             `json:"name" binding:"required"`
	Image       string             `json:"image"`
	Quantity    int                `json:"quantity" binding:"required,gte=1"`
	Quality     int                `json:"quality" binding:"required,gte=1,lte=10"`
	DamageLevel int                `json:"damage_level" binding:"gte=0,lte=10"`
	Duration    model.LendDuration `json:"duration"`
}

type ConfirmReturnRequest struct {
	// pointer so an explicit false still passes the required check
	IsOwner *bool `json:"is_owner" binding:"required"`
}

type AddRequestRequest struct {
	ItemName string `json:"item_name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gte=1"`
	Quality  int    `json:"quality" binding:"required,gte=1,lte=10"`
	Timeline string `json:"timeline"`
}

type NavigateRequest struct {
	Page string `json:"page" binding:"required"`
}

type PageResponse struct {
	Page string `json:"page"`
}
