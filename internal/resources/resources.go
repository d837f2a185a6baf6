// Package resources holds one service per backend collection: the client-side
// cache of that collection plus its CRUD operations. Each service owns its
// state exclusively; the REPL runs commands one at a time, so no
// synchronization is needed and overlapping operations cannot occur.
//
// Shared failure rules, uniform across all four services:
//
//   - Every operation requires a bearer token. Its absence is a session
//     error: the operation fails with api.ErrNoToken before any network
//     call is made.
//   - Fetch failures are stored in the service's error field (for the screen
//     to render inline with a retry hint) and emit one error notice.
//   - Mutation failures are not stored; they emit one error notice and are
//     returned to the caller so an open form stays open.
//   - Nothing is retried automatically.
package resources

import (
	"context"

	"github.com/bloodlink/admincli/internal/api"
	"github.com/bloodlink/admincli/internal/tokenstore"
)

// requireToken reads the bearer token, treating absence as an error.
func requireToken(ctx context.Context, tokens *tokenstore.Store) (string, error) {
	token, err := tokens.Get(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", api.ErrNoToken
	}
	return token, nil
}
