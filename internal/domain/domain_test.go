package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOwnership(t *testing.T) {
	var owners = []struct {
		name string
		res  Ownable
		want int64
	}{
		{"user owns itself", &User{ID: 3}, 3},
		{"user ref", UserRef(9), 9},
		{"advertisement owner", &Advertisement{ID: 1, UserID: 4}, 4},
	}

	for _, tt := range owners {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.OwnerID())
		})
	}
}

func TestPatchIsEmpty(t *testing.T) {
	name := "alice"
	assert.True(t, UserPatch{}.IsEmpty())
	assert.False(t, UserPatch{Username: &name}.IsEmpty())
	assert.True(t, AdvertisementPatch{}.IsEmpty())
	assert.False(t, AdvertisementPatch{Text: &name}.IsEmpty())
}

func TestUserValidate(t *testing.T) {
	assert.ErrorIs(t, (&User{HashedPassword: "x"}).Validate(), ErrEmptyUsername)
	assert.ErrorIs(t, (&User{Username: "alice"}).Validate(), ErrEmptyHashedPassword)
	assert.NoError(t, (&User{Username: "alice", HashedPassword: "x"}).Validate())
}

func TestAdvertisementValidate(t *testing.T) {
	now := time.Now().UTC()
	valid := Advertisement{UserID: 1, Title: "Bike", Text: "Red bike", CreatedAt: now, UpdatedAt: now}

	assert.NoError(t, valid.Validate())

	noOwner := valid
	noOwner.UserID = 0
	assert.ErrorIs(t, noOwner.Validate(), ErrInvalidID)

	noTitle := valid
	noTitle.Title = ""
	assert.ErrorIs(t, noTitle.Validate(), ErrEmptyTitle)

	noText := valid
	noText.Text = ""
	assert.ErrorIs(t, noText.Validate(), ErrEmptyText)

	backwards := valid
	backwards.UpdatedAt = now.Add(-time.Minute)
	assert.ErrorIs(t, backwards.Validate(), ErrValidation)
}
