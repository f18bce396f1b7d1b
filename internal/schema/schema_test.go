package schema

import (
	"strings"
	"testing"

	"github.com/phrazzld/adboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	names := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		names[i] = f.Field
	}
	return names
}

func TestDecodeCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in, err := Decode[CreateUser, domain.NewUserInput](strings.NewReader(`{"username":"alice","password":"QWErty123"}`))
		require.NoError(t, err)
		assert.Equal(t, domain.NewUserInput{Username: "alice", Password: "QWErty123"}, in)
	})

	t.Run("simple password", func(t *testing.T) {
		_, err := Decode[CreateUser, domain.NewUserInput](strings.NewReader(`{"username":"alice","password":"simple password"}`))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "password", verr.Fields[0].Field)
		assert.Equal(t, PasswordMessage, verr.Fields[0].Message)
	})

	t.Run("collects every violation", func(t *testing.T) {
		_, err := Decode[CreateUser, domain.NewUserInput](strings.NewReader(`{}`))
		assert.ElementsMatch(t, []string{"username", "password"}, fieldNames(t, err))
	})

	t.Run("username too long", func(t *testing.T) {
		body := `{"username":"` + strings.Repeat("a", 51) + `","password":"QWErty123"}`
		_, err := Decode[CreateUser, domain.NewUserInput](strings.NewReader(body))
		assert.Equal(t, []string{"username"}, fieldNames(t, err))
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := Decode[CreateUser, domain.NewUserInput](strings.NewReader(`{"username":42,"password":"QWErty123"}`))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "username", verr.Fields[0].Field)
		assert.Equal(t, "must be of type string", verr.Fields[0].Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode[CreateUser, domain.NewUserInput](strings.NewReader(`{"username":`))
		assert.Equal(t, []string{"body"}, fieldNames(t, err))
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := Decode[CreateUser, domain.NewUserInput](strings.NewReader(``))
		assert.Equal(t, []string{"body"}, fieldNames(t, err))
	})

	t.Run("trailing data", func(t *testing.T) {
		for _, body := range []string{
			`{"username":"carol","password":"Abc123xy"} garbage`,
			`{"username":"carol","password":"Abc123xy"}{}`,
			`{"username":"carol","password":"Abc123xy"} {"username":"dave"}`,
		} {
			_, err := Decode[CreateUser, domain.NewUserInput](strings.NewReader(body))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, body)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, "body", verr.Fields[0].Field)
			assert.Equal(t, "Invalid JSON", verr.Fields[0].Message)
		}
	})

	t.Run("trailing whitespace", func(t *testing.T) {
		in, err := Decode[CreateUser, domain.NewUserInput](strings.NewReader("{\"username\":\"carol\",\"password\":\"Abc123xy\"}\n \t"))
		require.NoError(t, err)
		assert.Equal(t, "carol", in.Username)
	})
}

func TestDecodeUpdateUser(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		patch, err := Decode[UpdateUser, domain.UserPatch](strings.NewReader(`{"password":"QWErty123"}`))
		require.NoError(t, err)
		assert.Nil(t, patch.Username)
		require.NotNil(t, patch.Password)
		assert.Equal(t, "QWErty123", *patch.Password)
	})

	t.Run("null treated as absent", func(t *testing.T) {
		patch, err := Decode[UpdateUser, domain.UserPatch](strings.NewReader(`{"username":null}`))
		require.NoError(t, err)
		assert.True(t, patch.IsEmpty())
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := Decode[UpdateUser, domain.UserPatch](strings.NewReader(`{"password":"alllowercase1"}`))
		assert.Equal(t, []string{"password"}, fieldNames(t, err))
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := Decode[UpdateUser, domain.UserPatch](strings.NewReader(`{"username":""}`))
		assert.Equal(t, []string{"username"}, fieldNames(t, err))
	})
}

func TestDecodeAdvertisement(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		in, err := Decode[CreateAdvertisement, domain.NewAdvertisementInput](strings.NewReader(`{"title":"Bike","text":"Red bike"}`))
		require.NoError(t, err)
		assert.Equal(t, "Bike", in.Title)
		assert.Zero(t, in.OwnerID)
	})

	t.Run("create missing text", func(t *testing.T) {
		_, err := Decode[CreateAdvertisement, domain.NewAdvertisementInput](strings.NewReader(`{"title":"Bike"}`))
		assert.Equal(t, []string{"text"}, fieldNames(t, err))
	})

	t.Run("update title only", func(t *testing.T) {
		patch, err := Decode[UpdateAdvertisement, domain.AdvertisementPatch](strings.NewReader(`{"title":"Car"}`))
		require.NoError(t, err)
		require.NotNil(t, patch.Title)
		assert.Nil(t, patch.Text)
	})
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"QWErty123", true},
		{"aB3", true},
		{"simple password", false},
		{"NoDigitsHere", false},
		{"ALLUPPER123", false},
		{"alllower123", false},
		{"Has Space1", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := Validate(CreateUser{Username: "u", Password: tt.password})
			assert.Equal(t, tt.ok, err == nil, "error: %v", err)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{{Field: "a", Message: "x"}, {Field: "b", Message: "y"}}}
	assert.Equal(t, "validation failed: a: x; b: y", err.Error())
}
