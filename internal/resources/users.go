package resources

import (
	"context"
	"fmt"

	"github.com/bloodlink/admincli/internal/api"
	"github.com/bloodlink/admincli/internal/logging"
	"github.com/bloodlink/admincli/internal/models"
	"github.com/bloodlink/admincli/internal/notify"
	"github.com/bloodlink/admincli/internal/tokenstore"
)

// UsersService caches the donor collection and mutates it through the
// backend. Create and Update refetch the whole list afterwards: the list
// response carries the joined rank_name/office_name fields, which the
// create/update responses do not.
type UsersService interface {
	Items() []models.User
	Err() error
	IsLoading() bool

	Fetch(ctx context.Context) error
	Create(ctx context.Context, form models.UserForm) error
	Update(ctx context.Context, id int64, form models.UserForm) error
	Delete(ctx context.Context, id int64) error

	// ResetPassword triggers a backend password reset for one user and
	// returns the server's confirmation message. Overlapping resets for the
	// same user are refused.
	ResetPassword(ctx context.Context, id int64) (string, error)
}

type usersService struct {
	api    api.Client
	tokens *tokenstore.Store
	notify notify.Notifier
	log    logging.Logger

	items     []models.User
	loading   bool
	err       error
	resetting map[int64]bool
}

func NewUsersService(client api.Client, tokens *tokenstore.Store, notifier notify.Notifier, log logging.Logger) UsersService {
	return &usersService{
		api:       client,
		tokens:    tokens,
		notify:    notifier,
		log:       log,
		resetting: make(map[int64]bool),
	}
}

func (s *usersService) Items() []models.User { return s.items }
func (s *usersService) Err() error           { return s.err }
func (s *usersService) IsLoading() bool      { return s.loading }

func (s *usersService) Fetch(ctx context.Context) error {
	s.loading = true
	s.err = nil
	defer func() { s.loading = false }()

	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.err = err
		s.notify.Error("Error", err.Error())
		return err
	}

	items, err := s.api.ListUsers(ctx, token)
	if err != nil {
		s.err = err
		s.notify.Error("Error", err.Error())
		return err
	}

	s.items = items
	return nil
}

func (s *usersService) Create(ctx context.Context, form models.UserForm) error {
	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	if _, err := s.api.CreateUser(ctx, token, form); err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	// Pick up the joined fields for the new row.
	_ = s.Fetch(ctx)
	s.notify.Success("Success", "User added successfully")
	return nil
}

func (s *usersService) Update(ctx context.Context, id int64, form models.UserForm) error {
	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	if _, err := s.api.UpdateUser(ctx, token, id, form); err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	_ = s.Fetch(ctx)
	s.notify.Success("Success", "User updated successfully")
	return nil
}

func (s *usersService) Delete(ctx context.Context, id int64) error {
	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	if err := s.api.DeleteUser(ctx, token, id); err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	kept := s.items[:0:0]
	for _, u := range s.items {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.items = kept
	s.notify.Success("Success", "User deleted successfully")
	return nil
}

func (s *usersService) ResetPassword(ctx context.Context, id int64) (string, error) {
	if s.resetting[id] {
		return "", fmt.Errorf("password reset already in progress for user %d", id)
	}
	s.resetting[id] = true
	defer delete(s.resetting, id)

	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return "", err
	}

	msg, err := s.api.ResetUserPassword(ctx, token, id)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return "", err
	}

	s.notify.Success("Success", msg)
	return msg, nil
}
