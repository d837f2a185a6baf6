package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/bloodlink/admincli/internal/logging"
	"github.com/bloodlink/admincli/internal/models"
)

// RESTClient talks JSON over HTTP with bearer-token auth.
//
// No request timeout is configured and no call is retried; the user retries
// manually from the REPL.
type RESTClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func NewRESTClient(baseURL string, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     log,
	}
}

// errorBody covers both shapes the backend uses: user and rank handlers
// respond {"message": ...}, office and diary handlers {"error": ...}.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues a request and decodes a JSON response into out (out may be nil).
// token may be empty for unauthenticated endpoints. fallback is the generic
// error message used when a non-2xx body carries no server message.
func (c *RESTClient) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out any, fallback string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.log.Debug(ctx, "api request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *RESTClient) doJSON(ctx context.Context, method, path, token string, body any, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}
	return c.do(ctx, method, path, token, reader, "application/json", out, fallback)
}

func (c *RESTClient) decodeError(resp *http.Response, fallback string) error {
	msg := fallback
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
		if eb.Message != "" {
			msg = eb.Message
		} else if eb.Error != "" {
			msg = eb.Error
		}
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}

// Auth --------------------------------------------------------------------

func (c *RESTClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/admin/login", "", body, &out, "Login failed"); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Users -------------------------------------------------------------------

func (c *RESTClient) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	err := c.doJSON(ctx, http.MethodGet, "/api/users", token, nil, &out, "Failed to fetch users")
	return out, err
}

func (c *RESTClient) CreateUser(ctx context.Context, token string, form models.UserForm) (models.User, error) {
	var out models.User
	err := c.doJSON(ctx, http.MethodPost, "/api/users", token, form, &out, "Failed to add user")
	return out, err
}

func (c *RESTClient) UpdateUser(ctx context.Context, token string, id int64, form models.UserForm) (models.User, error) {
	var out models.User
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), token, form, &out, "Failed to update user")
	return out, err
}

func (c *RESTClient) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), token, nil, nil, "Failed to delete user")
}

func (c *RESTClient) ResetUserPassword(ctx context.Context, token string, id int64) (string, error) {
	body := map[string]int64{"userId": id}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/reset-password", token, body, &out, "Failed to reset password"); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Ranks -------------------------------------------------------------------

func (c *RESTClient) ListRanks(ctx context.Context, token string) ([]models.Rank, error) {
	var out []models.Rank
	err := c.doJSON(ctx, http.MethodGet, "/api/ranks", token, nil, &out, "Failed to fetch ranks")
	return out, err
}

func (c *RESTClient) CreateRank(ctx context.Context, token string, form models.RankForm) (models.Rank, error) {
	var out models.Rank
	err := c.doJSON(ctx, http.MethodPost, "/api/ranks", token, form, &out, "Failed to add rank")
	return out, err
}

func (c *RESTClient) UpdateRank(ctx context.Context, token string, id int64, form models.RankForm) (models.Rank, error) {
	var out models.Rank
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/ranks/%d", id), token, form, &out, "Failed to update rank")
	return out, err
}

func (c *RESTClient) DeleteRank(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/ranks/%d", id), token, nil, nil, "Failed to delete rank")
}

// Offices -----------------------------------------------------------------

func (c *RESTClient) ListOffices(ctx context.Context, token string) ([]models.Office, error) {
	var out []models.Office
	err := c.doJSON(ctx, http.MethodGet, "/api/offices", token, nil, &out, "Failed to fetch offices")
	return out, err
}

func (c *RESTClient) CreateOffice(ctx context.Context, token string, form models.OfficeForm) (models.Office, error) {
	var out models.Office
	err := c.doJSON(ctx, http.MethodPost, "/api/offices", token, form, &out, "Failed to add office")
	return out, err
}

func (c *RESTClient) UpdateOffice(ctx context.Context, token string, id int64, form models.OfficeForm) (models.Office, error) {
	var out models.Office
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/offices/%d", id), token, form, &out, "Failed to update office")
	return out, err
}

func (c *RESTClient) DeleteOffice(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/offices/%d", id), token, nil, nil, "Failed to delete office")
}

// Diary PDFs --------------------------------------------------------------

// The diary endpoints wrap their payloads in a {"data": ...} envelope,
// unlike the rest of the API.

func (c *RESTClient) ListDiaryPDFs(ctx context.Context, token string) ([]models.DiaryPDF, error) {
	var out struct {
		Data []models.DiaryPDF `json:"data"`
	}
	err := c.doJSON(ctx, http.MethodGet, "/api/diary-pdfs", token, nil, &out, "Failed to fetch diary PDF")
	return out.Data, err
}

func (c *RESTClient) UploadDiaryPDF(ctx context.Context, token, fileName, customName string, file io.Reader) (models.DiaryPDF, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("diary_pdf", fileName)
	if err != nil {
		return models.DiaryPDF{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return models.DiaryPDF{}, err
	}
	if customName != "" {
		if err := mw.WriteField("file_name", customName); err != nil {
			return models.DiaryPDF{}, err
		}
	}
	if err := mw.Close(); err != nil {
		return models.DiaryPDF{}, err
	}

	var out struct {
		Data models.DiaryPDF `json:"data"`
	}
	err = c.do(ctx, http.MethodPost, "/api/diary-pdfs", token, &buf, mw.FormDataContentType(), &out, "Failed to upload diary PDF")
	return out.Data, err
}

func (c *RESTClient) DownloadDiaryPDF(ctx context.Context, token string, id int64, dst io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/diary-pdfs/%d", c.baseURL, id), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp, "Failed to download PDF")
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return fmt.Errorf("saving download: %w", err)
	}
	return nil
}
