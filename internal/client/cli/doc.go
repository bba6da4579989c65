// Package cli provides the interactive novel reader command-line client.
//
// It wires configuration, the local session store, the API dispatcher, and an
// interactive REPL. Typical flow: verify the backend on startup, restore any
// persisted session, and execute user commands.
//
// Key features:
//   - Login / Signup / Logout against the platform backend
//   - Browse and search novels, read chapters with prev/next navigation
//   - Admin commands: dashboard stats, novel and chapter management
//   - Network diagnostics via the diag command
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
