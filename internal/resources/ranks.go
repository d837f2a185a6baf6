package resources

import (
	"context"

	"github.com/bloodlink/admincli/internal/api"
	"github.com/bloodlink/admincli/internal/logging"
	"github.com/bloodlink/admincli/internal/models"
	"github.com/bloodlink/admincli/internal/notify"
	"github.com/bloodlink/admincli/internal/tokenstore"
)

// RanksService caches the rank collection. Ranks have no joined fields, so
// mutations patch the local slice with the server's returned record instead
// of refetching.
type RanksService interface {
	Items() []models.Rank
	Err() error
	IsLoading() bool

	Fetch(ctx context.Context) error
	Create(ctx context.Context, form models.RankForm) error
	Update(ctx context.Context, id int64, form models.RankForm) error
	Delete(ctx context.Context, id int64) error
}

type ranksService struct {
	api    api.Client
	tokens *tokenstore.Store
	notify notify.Notifier
	log    logging.Logger

	items   []models.Rank
	loading bool
	err     error
}

func NewRanksService(client api.Client, tokens *tokenstore.Store, notifier notify.Notifier, log logging.Logger) RanksService {
	return &ranksService{api: client, tokens: tokens, notify: notifier, log: log}
}

func (s *ranksService) Items() []models.Rank { return s.items }
func (s *ranksService) Err() error           { return s.err }
func (s *ranksService) IsLoading() bool      { return s.loading }

func (s *ranksService) Fetch(ctx context.Context) error {
	s.loading = true
	s.err = nil
	defer func() { s.loading = false }()

	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.err = err
		s.notify.Error("Error", err.Error())
		return err
	}

	items, err := s.api.ListRanks(ctx, token)
	if err != nil {
		s.err = err
		s.notify.Error("Error", err.Error())
		return err
	}

	s.items = items
	return nil
}

func (s *ranksService) Create(ctx context.Context, form models.RankForm) error {
	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	created, err := s.api.CreateRank(ctx, token, form)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	s.items = append(s.items, created)
	s.notify.Success("Success", "Rank added successfully")
	return nil
}

func (s *ranksService) Update(ctx context.Context, id int64, form models.RankForm) error {
	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	updated, err := s.api.UpdateRank(ctx, token, id, form)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	for i, r := range s.items {
		if r.ID == id {
			s.items[i] = updated
			break
		}
	}
	s.notify.Success("Success", "Rank updated successfully")
	return nil
}

func (s *ranksService) Delete(ctx context.Context, id int64) error {
	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	if err := s.api.DeleteRank(ctx, token, id); err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	kept := s.items[:0:0]
	for _, r := range s.items {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.items = kept
	s.notify.Success("Success", "Rank deleted successfully")
	return nil
}
