// Package cli provides the interactive terminal client for the blood-donation
// membership backend.
//
// It wires configuration, the token store, the REST API client, the session
// gate, and one service per resource into a REPL of guarded screens. Typical
// flow: restore a stored session (or prompt for login), then navigate between
// the users, ranks, office and diary screens, each backed by its own cached
// collection.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
