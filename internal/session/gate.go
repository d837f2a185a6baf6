// Package session owns authentication state: the current admin identity
// derived from the stored bearer token, and the login/logout/register
// operations that change it. No other package may mutate the session user.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink/admincli/internal/api"
	"github.com/bloodlink/admincli/internal/logging"
	"github.com/bloodlink/admincli/internal/models"
	"github.com/bloodlink/admincli/internal/nav"
	"github.com/bloodlink/admincli/internal/tokenstore"
)

// ErrRegistrationNotSupported is returned by Register unconditionally. Admin
// accounts are provisioned out of band; the operation exists only to keep the
// auth contract uniform.
var ErrRegistrationNotSupported = errors.New("registration not supported for admin accounts")

// fallbackEmail is used when a restored token carries no email claim.
const fallbackEmail = "admin@example.com"

// Navigator switches the visible screen. The router implements it.
type Navigator interface {
	NavigateTo(path string)
}

// Gate holds the session state. It starts in the loading state and stays
// there until Initialize has examined the token store, so the guard can
// suppress every screen in the meantime.
type Gate struct {
	tokens *tokenstore.Store
	api    api.Client
	nav    Navigator
	log    logging.Logger
	now    func() time.Time

	user    *models.SessionUser
	loading bool
}

func New(tokens *tokenstore.Store, client api.Client, navigator Navigator, log logging.Logger) *Gate {
	return &Gate{
		tokens:  tokens,
		api:     client,
		nav:     navigator,
		log:     log,
		now:     time.Now,
		loading: true,
	}
}

func (g *Gate) User() *models.SessionUser { return g.user }
func (g *Gate) IsAuthenticated() bool     { return g.user != nil }
func (g *Gate) IsLoading() bool           { return g.loading }

// Initialize restores the session from a previously stored token. Runs once
// at application start. A token that cannot be decoded or whose exp is in the
// past is not an error the user sees: both stores are cleared silently and
// the gate ends up unauthenticated. Always ends the loading state.
func (g *Gate) Initialize(ctx context.Context) {
	defer func() { g.loading = false }()

	token, err := g.tokens.Get(ctx)
	if err != nil {
		g.log.Warn(ctx, "reading stored token", "err", err)
		return
	}
	if token == "" {
		return
	}

	claims, err := DecodeToken(token)
	if err != nil {
		g.log.Warn(ctx, "stored token undecodable, clearing", "err", err)
		g.clearTokens(ctx)
		return
	}
	if claims.Expired(g.now()) {
		g.log.Info(ctx, "stored token expired, clearing")
		g.clearTokens(ctx)
		return
	}

	email := claims.Email
	if email == "" {
		email = fallbackEmail
	}
	g.user = &models.SessionUser{ID: claims.ID, Email: email, Role: claims.Role}
	g.log.Info(ctx, "session restored", "user", g.user.ID, "role", g.user.Role)
}

// Login exchanges credentials for a token, stores it according to remember,
// and navigates to the default authenticated screen. On failure the gate
// stays unauthenticated and the error carries the server's message when one
// was provided. The session user's email is the address the operator typed,
// not whatever the token claims.
func (g *Gate) Login(ctx context.Context, email, password string, remember bool) error {
	g.loading = true
	defer func() { g.loading = false }()

	token, err := g.api.Login(ctx, email, password)
	if err != nil {
		g.log.Warn(ctx, "login failed", "email", email, "err", err)
		return err
	}

	claims, err := DecodeToken(token)
	if err != nil {
		return err
	}

	g.user = &models.SessionUser{ID: claims.ID, Email: email, Role: claims.Role}

	if err := g.tokens.Set(ctx, token, remember); err != nil {
		return err
	}

	g.log.Info(ctx, "login successful", "user", g.user.ID, "remember", remember)
	g.nav.NavigateTo(nav.PathDefault)
	return nil
}

// Logout drops the session user, empties both token stores, and navigates to
// the login screen. It cannot fail; store errors are logged and swallowed.
func (g *Gate) Logout() {
	g.user = nil
	g.clearTokens(context.Background())
	g.nav.NavigateTo(nav.PathLogin)
}

// Register always fails: admins are not self-service.
func (g *Gate) Register(ctx context.Context, form models.RegisterForm) error {
	g.loading = true
	defer func() { g.loading = false }()
	return ErrRegistrationNotSupported
}

func (g *Gate) clearTokens(ctx context.Context) {
	if err := g.tokens.Clear(ctx); err != nil {
		g.log.Warn(ctx, "clearing token stores", "err", err)
	}
}
