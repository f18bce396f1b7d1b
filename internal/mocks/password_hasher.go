package mocks

import "errors"

// PlainHasher is a reversible stand-in for bcrypt so tests stay fast.
type PlainHasher struct{}

// Hash implements auth.PasswordHasher.
func (PlainHasher) Hash(password string) (string, error) {
	return "plain:" + password, nil
}

// Compare implements auth.PasswordHasher.
func (PlainHasher) Compare(hashedPassword, password string) error {
	if hashedPassword != "plain:"+password {
		return errors.New("password mismatch")
	}
	return nil
}
