// Package health probes the backend before and during a client session.
// The checks are advisory: an unreachable backend is reported, never
// returned as an error, so the caller can keep running and retry later.
package health
