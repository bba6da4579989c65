// Package api contains the HTTP request dispatcher: the single choke point
// for every call the client makes to the novel platform backend.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) with one method per
//     HTTP verb, used by the domain services in internal/client/services.
//  2. A concrete implementation (see Dispatcher) that attaches the bearer
//     token from the session store, tags requests for tracing, enforces the
//     platform's {success, message, data, errors} response envelope, and
//     maps every failure to a normalized *Error.
//  3. A keyed cancellation registry: a call issued with a non-empty abort
//     key cancels any in-flight call registered under the same key
//     (last-writer-wins), and AbortRequest/AbortAllRequests cancel calls
//     explicitly.
//
// # Error Handling
//
// Every failed call settles as either *Error (match with errors.As or the
// IsUnauthorized/IsForbidden/IsNotFound/IsTimeout helpers) or the sentinel
// ErrRequestAborted (match with errors.Is). The dispatcher never retries.
//
// Two failure classes carry a side effect: a 401 clears the persisted
// session and fires the OnSessionInvalidated hook; a 403 fires OnForbidden.
// The dispatcher itself never touches any view or navigation state.
//
// Concurrency & Contexts
//
// The Dispatcher is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
