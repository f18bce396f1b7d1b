//go:build integration

package testdb

import (
	"net/url"
	"os"
)

// Environment variables checked for the test database URL, in order.
const (
	EnvTestDatabaseURL = "ADBOARD_TEST_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// GetTestDatabaseURL returns the first configured test database URL, or "".
func GetTestDatabaseURL() string {
	for _, name := range []string{EnvTestDatabaseURL, EnvDatabaseURL} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// maskDatabaseURL hides the password of a URL-style connection string.
func maskDatabaseURL(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil || u.User == nil {
		return dbURL
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
