// Package api is the transport layer: a typed client for the membership
// backend's REST interface. It carries no state beyond the base URL; tokens
// are passed in explicitly by the caller so that ownership of the credential
// stays with the token store.
package api

import (
	"context"
	"io"

	"github.com/bloodlink/admincli/internal/models"
)

type Client interface {
	// Login exchanges admin credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	ListUsers(ctx context.Context, token string) ([]models.User, error)
	CreateUser(ctx context.Context, token string, form models.UserForm) (models.User, error)
	UpdateUser(ctx context.Context, token string, id int64, form models.UserForm) (models.User, error)
	DeleteUser(ctx context.Context, token string, id int64) error
	// ResetUserPassword asks the backend to reset the user's password and
	// returns the server's confirmation message.
	ResetUserPassword(ctx context.Context, token string, id int64) (string, error)

	ListRanks(ctx context.Context, token string) ([]models.Rank, error)
	CreateRank(ctx context.Context, token string, form models.RankForm) (models.Rank, error)
	UpdateRank(ctx context.Context, token string, id int64, form models.RankForm) (models.Rank, error)
	DeleteRank(ctx context.Context, token string, id int64) error

	ListOffices(ctx context.Context, token string) ([]models.Office, error)
	CreateOffice(ctx context.Context, token string, form models.OfficeForm) (models.Office, error)
	UpdateOffice(ctx context.Context, token string, id int64, form models.OfficeForm) (models.Office, error)
	DeleteOffice(ctx context.Context, token string, id int64) error

	// ListDiaryPDFs returns every diary record; the backend keeps at most one.
	ListDiaryPDFs(ctx context.Context, token string) ([]models.DiaryPDF, error)
	// UploadDiaryPDF sends the file as multipart form data. customName is the
	// optional display name; empty keeps the original file name.
	UploadDiaryPDF(ctx context.Context, token, fileName, customName string, file io.Reader) (models.DiaryPDF, error)
	// DownloadDiaryPDF streams the binary document into dst. The endpoint
	// requires the bearer header, so a plain link would not do.
	DownloadDiaryPDF(ctx context.Context, token string, id int64, dst io.Writer) error
}
