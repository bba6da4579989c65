// Package session owns the client's durable authentication state: the bearer
// token and the cached user record, persisted in a local SQLite key-value
// store so they survive process restarts.
//
// # Invariant
//
// Token and user are set and cleared together. SaveSession and ClearAuth run
// both writes inside one transaction, so no reader ever observes a token
// without its user or vice versa.
//
// # Who mutates it
//
// The authentication flow writes on login/signup and logout; the request
// dispatcher clears the session when the server answers 401. Everything else
// only reads.
package session
