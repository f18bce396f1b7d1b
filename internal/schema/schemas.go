package schema

import (
	"github.com/phrazzld/adboard-api/internal/domain"
)

// CreateUser is the body of POST /user.
type CreateUser struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72,password"`
}

// Output implements Schema.
func (s CreateUser) Output() domain.NewUserInput {
	return domain.NewUserInput{Username: s.Username, Password: s.Password}
}

// UpdateUser is the body of PATCH /user/{id}. Absent and null fields are left unchanged.
type UpdateUser struct {
	Username *string `json:"username" validate:"omitnil,min=1,max=50"`
	Password *string `json:"password" validate:"omitnil,max=72,password"`
}

// Output implements Schema.
func (s UpdateUser) Output() domain.UserPatch {
	return domain.UserPatch{Username: s.Username, Password: s.Password}
}

// CreateAdvertisement is the body of POST /advertisement. The owner is the caller.
type CreateAdvertisement struct {
	Title string `json:"title" validate:"required,max=50"`
	Text  string `json:"text" validate:"required"`
}

// Output implements Schema. OwnerID is filled in by the handler.
func (s CreateAdvertisement) Output() domain.NewAdvertisementInput {
	return domain.NewAdvertisementInput{Title: s.Title, Text: s.Text}
}

// UpdateAdvertisement is the body of PATCH /advertisement/{id}.
type UpdateAdvertisement struct {
	Title *string `json:"title" validate:"omitnil,min=1,max=50"`
	Text  *string `json:"text" validate:"omitnil,min=1"`
}

// Output implements Schema.
func (s UpdateAdvertisement) Output() domain.AdvertisementPatch {
	return domain.AdvertisementPatch{Title: s.Title, Text: s.Text}
}
