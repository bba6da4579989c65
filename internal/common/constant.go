// Package common contains shared constants used across novelreader
// components.
package common

const (
	// TokenStorageKey is the local-store key holding the bearer token.
	TokenStorageKey = "authToken"

	// UserStorageKey is the local-store key holding the serialized user
	// record. Token and user are always written and cleared together.
	UserStorageKey = "user"
)
