// Package tokenstore persists the single bearer token that proves a completed
// admin login.
//
// Two backends exist behind one interface: a durable one (SQLite file in the
// state directory, used when the operator asks to be remembered) and a
// session-scoped one that lives only as long as the REPL process. At most one
// backend holds a token at a time; writing to one clears the other.
//
// No network or token-validation logic lives here.
package tokenstore

import "context"

// Backend is a single storage slot for the token.
type Backend interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Store wraps the durable and session-scoped backends.
type Store struct {
	durable Backend
	session Backend
}

func New(durable, session Backend) *Store {
	return &Store{durable: durable, session: session}
}

// Set writes the token to the durable backend when persistent is true and to
// the session backend otherwise. The other backend is cleared so both are
// never populated at once.
func (s *Store) Set(ctx context.Context, token string, persistent bool) error {
	if persistent {
		if err := s.durable.Set(ctx, token); err != nil {
			return err
		}
		return s.session.Clear(ctx)
	}
	if err := s.session.Set(ctx, token); err != nil {
		return err
	}
	return s.durable.Clear(ctx)
}

// Get returns the stored token, checking the durable backend first. An empty
// string with a nil error means no token is stored.
func (s *Store) Get(ctx context.Context) (string, error) {
	token, err := s.durable.Get(ctx)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}
	return s.session.Get(ctx)
}

// Clear empties both backends unconditionally. Used on logout and when an
// expired or undecodable token is detected.
func (s *Store) Clear(ctx context.Context) error {
	errDurable := s.durable.Clear(ctx)
	errSession := s.session.Clear(ctx)
	if errDurable != nil {
		return errDurable
	}
	return errSession
}
