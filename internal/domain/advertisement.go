package domain

import (
	"time"
)

// Advertisement is a titled text posted by a user. Titles are globally unique.
type Advertisement struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"owner_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAdvertisementInput carries the fields needed to create an advertisement.
type NewAdvertisementInput struct {
	OwnerID int64
	Title   string
	Text    string
}

// AdvertisementPatch is a partial update of an advertisement. Nil fields are left untouched.
type AdvertisementPatch struct {
	Title *string
	Text  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p AdvertisementPatch) IsEmpty() bool {
	return p.Title == nil && p.Text == nil
}

// Validate checks the invariants that must hold for a stored advertisement.
func (a *Advertisement) Validate() error {
	if a.UserID <= 0 {
		return ErrInvalidID
	}
	if a.Title == "" {
		return ErrEmptyTitle
	}
	if a.Text == "" {
		return ErrEmptyText
	}
	if a.UpdatedAt.Before(a.CreatedAt) {
		return ErrValidation
	}
	return nil
}

// OwnerID implements Ownable.
func (a *Advertisement) OwnerID() int64 {
	return a.UserID
}
