// Package services contains the typed domain façades of the novel platform
// API, grouped the way the backend groups its resources:
//
//   - AuthService:   signup, login, password reset, logout, current user.
//   - PublicService: novel and chapter reads, chapter navigation.
//   - AdminService:  dashboard stats and full CRUD on novels and chapters.
//
// The services translate application intents into dispatcher calls with the
// correct path, verb, and abort-key convention; they carry no business logic
// beyond path construction, parameter shaping, and pre-flight payload
// validation.
//
// # Abort keys
//
// Reads that can be superseded by a newer read of the same resource use a
// stable resource-derived key, so rapid repeated navigation cancels stale
// in-flight fetches. Writes use no key: a create, update, or delete must
// never be silently canceled by an unrelated subsequent read.
//
// Role enforcement for admin operations is server-side; these services only
// reflect the resulting 401/403.
package services
