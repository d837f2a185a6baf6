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

// OfficesService caches the office collection. Like ranks, offices carry no
// joined fields and mutations patch the local slice. Its notices name the
// office that was changed.
type OfficesService interface {
	Items() []models.Office
	Err() error
	IsLoading() bool

	Fetch(ctx context.Context) error
	Create(ctx context.Context, form models.OfficeForm) error
	Update(ctx context.Context, id int64, form models.OfficeForm) error
	Delete(ctx context.Context, id int64) error
}

type officesService struct {
	api    api.Client
	tokens *tokenstore.Store
	notify notify.Notifier
	log    logging.Logger

	items   []models.Office
	loading bool
	err     error
}

func NewOfficesService(client api.Client, tokens *tokenstore.Store, notifier notify.Notifier, log logging.Logger) OfficesService {
	return &officesService{api: client, tokens: tokens, notify: notifier, log: log}
}

func (s *officesService) Items() []models.Office { return s.items }
func (s *officesService) Err() error             { return s.err }
func (s *officesService) IsLoading() bool        { return s.loading }

func (s *officesService) Fetch(ctx context.Context) error {
	s.loading = true
	s.err = nil
	defer func() { s.loading = false }()

	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.err = err
		s.notify.Error("Error", err.Error())
		return err
	}

	items, err := s.api.ListOffices(ctx, token)
	if err != nil {
		s.err = err
		s.notify.Error("Error", err.Error())
		return err
	}

	s.items = items
	return nil
}

func (s *officesService) Create(ctx context.Context, form models.OfficeForm) error {
	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	created, err := s.api.CreateOffice(ctx, token, form)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	s.items = append(s.items, created)
	s.notify.Success("Office Added", fmt.Sprintf("%s has been added successfully.", form.Name))
	return nil
}

func (s *officesService) Update(ctx context.Context, id int64, form models.OfficeForm) error {
	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	updated, err := s.api.UpdateOffice(ctx, token, id, form)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	for i, o := range s.items {
		if o.ID == id {
			s.items[i] = updated
			break
		}
	}
	s.notify.Success("Office Updated", fmt.Sprintf("%s has been updated successfully.", form.Name))
	return nil
}

func (s *officesService) Delete(ctx context.Context, id int64) error {
	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	if err := s.api.DeleteOffice(ctx, token, id); err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	kept := s.items[:0:0]
	for _, o := range s.items {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.items = kept
	s.notify.Success("Office Deleted", "The office has been removed.")
	return nil
}
