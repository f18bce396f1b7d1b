package api

import (
	"time"

	"github.com/phrazzld/adboard-api/internal/domain"
)

// UserResponse is the public projection of a user. The password hash is never exposed.
type UserResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registered_at"`
}

// AdvertisementResponse is the public projection of an advertisement.
type AdvertisementResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse defines the successful response of POST /login.
type LoginResponse struct {
	AuthToken string `json:"auth_token"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, RegisteredAt: u.RegisteredAt}
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = userToResponse(&users[i])
	}
	return out
}

func advertisementToResponse(a *domain.Advertisement) AdvertisementResponse {
	return AdvertisementResponse{
		ID:        a.ID,
		OwnerID:   a.UserID,
		Title:     a.Title,
		Text:      a.Text,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func advertisementsToResponse(ads []domain.Advertisement) []AdvertisementResponse {
	out := make([]AdvertisementResponse, len(ads))
	for i := range ads {
		out[i] = advertisementToResponse(&ads[i])
	}
	return out
}
