package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		notFound  bool
		duplicate bool
	}{
		{"nil", nil, false, false},
		{"generic", errors.New("boom"), false, false},
		{"not found", ErrNotFound, true, false},
		{"user not found", ErrUserNotFound, true, false},
		{"wrapped advertisement not found", fmt.Errorf("get: %w", ErrAdvertisementNotFound), true, false},
		{"duplicate", ErrDuplicate, false, true},
		{"username exists", ErrUsernameExists, false, true},
		{"wrapped title exists", fmt.Errorf("create: %w", ErrTitleExists), false, true},
		{"store error", NewStoreError("user", "update", ErrUsernameExists), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.duplicate, IsDuplicateError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	err := NewStoreError("advertisement", "create", ErrTitleExists)

	assert.Equal(t, "create advertisement: entity already exists: title", err.Error())
	assert.ErrorIs(t, err, ErrTitleExists)
	assert.ErrorIs(t, err, ErrDuplicate)
}
