// Package domain defines the core business entities: users, advertisements,
// their partial-update patches and the ownership contract used for authorization.
package domain
