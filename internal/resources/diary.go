package resources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bloodlink/admincli/internal/api"
	"github.com/bloodlink/admincli/internal/logging"
	"github.com/bloodlink/admincli/internal/models"
	"github.com/bloodlink/admincli/internal/notify"
	"github.com/bloodlink/admincli/internal/tokenstore"
)

// ErrNoDiary is returned when a download is requested before any diary PDF
// exists.
var ErrNoDiary = errors.New("no diary PDF has been uploaded yet")

// DiaryService manages the organization's single diary document. The backend
// keeps at most one record, so the cache is a nullable singleton rather than
// a slice: Fetch takes the first element of the response, or nothing.
type DiaryService interface {
	Item() *models.DiaryPDF
	Err() error
	IsLoading() bool

	Fetch(ctx context.Context) error
	// Upload sends the PDF at path, replacing the current document. customName
	// optionally overrides the displayed file name.
	Upload(ctx context.Context, path, customName string) error
	// Download streams the current document into dst.
	Download(ctx context.Context, dst io.Writer) error
	// FileName is the name to save a download under, falling back to
	// diary_<id>.pdf when the record has none.
	FileName() string
}

type diaryService struct {
	api    api.Client
	tokens *tokenstore.Store
	notify notify.Notifier
	log    logging.Logger

	item    *models.DiaryPDF
	loading bool
	err     error
}

func NewDiaryService(client api.Client, tokens *tokenstore.Store, notifier notify.Notifier, log logging.Logger) DiaryService {
	return &diaryService{api: client, tokens: tokens, notify: notifier, log: log}
}

func (s *diaryService) Item() *models.DiaryPDF { return s.item }
func (s *diaryService) Err() error             { return s.err }
func (s *diaryService) IsLoading() bool        { return s.loading }

func (s *diaryService) Fetch(ctx context.Context) error {
	s.loading = true
	s.err = nil
	defer func() { s.loading = false }()

	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.err = err
		s.notify.Error("Error", err.Error())
		return err
	}

	items, err := s.api.ListDiaryPDFs(ctx, token)
	if err != nil {
		s.err = err
		s.notify.Error("Error", err.Error())
		return err
	}

	if len(items) > 0 {
		s.item = &items[0]
	} else {
		s.item = nil
	}
	return nil
}

func (s *diaryService) Upload(ctx context.Context, path, customName string) error {
	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}
	defer f.Close()

	uploaded, err := s.api.UploadDiaryPDF(ctx, token, filepath.Base(path), customName, f)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	s.item = &uploaded
	s.notify.Success("Success", "Diary PDF uploaded successfully")
	return nil
}

func (s *diaryService) Download(ctx context.Context, dst io.Writer) error {
	if s.item == nil {
		s.notify.Error("Error", ErrNoDiary.Error())
		return ErrNoDiary
	}

	token, err := requireToken(ctx, s.tokens)
	if err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}

	if err := s.api.DownloadDiaryPDF(ctx, token, s.item.ID, dst); err != nil {
		s.notify.Error("Error", err.Error())
		return err
	}
	return nil
}

func (s *diaryService) FileName() string {
	if s.item == nil {
		return ""
	}
	if s.item.FileName != "" {
		return s.item.FileName
	}
	return fmt.Sprintf("diary_%d.pdf", s.item.ID)
}
