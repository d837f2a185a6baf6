package resources

import (
	"context"
	"io"
	"testing"

	"github.com/bloodlink/admincli/internal/logging"
	"github.com/bloodlink/admincli/internal/models"
	"github.com/bloodlink/admincli/internal/notify"
	"github.com/bloodlink/admincli/internal/tokenstore"
	"github.com/stretchr/testify/require"
)

// fakeClient implements api.Client with canned responses and call counters.
type fakeClient struct {
	err error // returned by every call when set

	users   []models.User
	ranks   []models.Rank
	offices []models.Office
	diary   []models.DiaryPDF

	createdUser  models.User
	updatedUser  models.User
	createdRank  models.Rank
	updatedRank  models.Rank
	createdOff   models.Office
	updatedOff   models.Office
	uploaded     models.DiaryPDF
	resetMessage string
	download     []byte

	calls      map[string]int
	lastToken  string
	lastUpload string
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: make(map[string]int)}
}

func (f *fakeClient) record(name, token string) error {
	f.calls[name]++
	f.lastToken = token
	return f.err
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	return "", f.record("Login", "")
}

func (f *fakeClient) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	return f.users, f.record("ListUsers", token)
}

func (f *fakeClient) CreateUser(ctx context.Context, token string, form models.UserForm) (models.User, error) {
	return f.createdUser, f.record("CreateUser", token)
}

func (f *fakeClient) UpdateUser(ctx context.Context, token string, id int64, form models.UserForm) (models.User, error) {
	return f.updatedUser, f.record("UpdateUser", token)
}

func (f *fakeClient) DeleteUser(ctx context.Context, token string, id int64) error {
	return f.record("DeleteUser", token)
}

func (f *fakeClient) ResetUserPassword(ctx context.Context, token string, id int64) (string, error) {
	return f.resetMessage, f.record("ResetUserPassword", token)
}

func (f *fakeClient) ListRanks(ctx context.Context, token string) ([]models.Rank, error) {
	return f.ranks, f.record("ListRanks", token)
}

func (f *fakeClient) CreateRank(ctx context.Context, token string, form models.RankForm) (models.Rank, error) {
	return f.createdRank, f.record("CreateRank", token)
}

func (f *fakeClient) UpdateRank(ctx context.Context, token string, id int64, form models.RankForm) (models.Rank, error) {
	return f.updatedRank, f.record("UpdateRank", token)
}

func (f *fakeClient) DeleteRank(ctx context.Context, token string, id int64) error {
	return f.record("DeleteRank", token)
}

func (f *fakeClient) ListOffices(ctx context.Context, token string) ([]models.Office, error) {
	return f.offices, f.record("ListOffices", token)
}

func (f *fakeClient) CreateOffice(ctx context.Context, token string, form models.OfficeForm) (models.Office, error) {
	return f.createdOff, f.record("CreateOffice", token)
}

func (f *fakeClient) UpdateOffice(ctx context.Context, token string, id int64, form models.OfficeForm) (models.Office, error) {
	return f.updatedOff, f.record("UpdateOffice", token)
}

func (f *fakeClient) DeleteOffice(ctx context.Context, token string, id int64) error {
	return f.record("DeleteOffice", token)
}

func (f *fakeClient) ListDiaryPDFs(ctx context.Context, token string) ([]models.DiaryPDF, error) {
	return f.diary, f.record("ListDiaryPDFs", token)
}

func (f *fakeClient) UploadDiaryPDF(ctx context.Context, token, fileName, customName string, file io.Reader) (models.DiaryPDF, error) {
	f.lastUpload = fileName
	return f.uploaded, f.record("UploadDiaryPDF", token)
}

func (f *fakeClient) DownloadDiaryPDF(ctx context.Context, token string, id int64, dst io.Writer) error {
	if err := f.record("DownloadDiaryPDF", token); err != nil {
		return err
	}
	_, err := dst.Write(f.download)
	return err
}

func (f *fakeClient) totalCalls() int {
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

type fixture struct {
	client  *fakeClient
	tokens  *tokenstore.Store
	notices *notify.Recorder
	log     logging.Logger
}

// newFixture builds the service dependencies with a token already stored.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		client:  newFakeClient(),
		tokens:  tokenstore.New(tokenstore.NewMemory(), tokenstore.NewMemory()),
		notices: &notify.Recorder{},
		log:     logging.NewNop(),
	}
	require.NoError(t, f.tokens.Set(context.Background(), "tok", true))
	return f
}

func (f *fixture) clearToken(t *testing.T) {
	t.Helper()
	require.NoError(t, f.tokens.Clear(context.Background()))
}
