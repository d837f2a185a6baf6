package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloodlink/admincli/internal/logging"
	"github.com/bloodlink/admincli/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *RESTClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRESTClient(srv.URL, logging.NewNop())
}

func TestLogin(t *testing.T) {
	var gotBody map[string]string
	var gotPath, gotContentType, gotRequestID string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"token": "jwt-token"})
	}))

	token, err := client.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "jwt-token", token)
	require.Equal(t, "POST /api/auth/admin/login", gotPath)
	require.Equal(t, "application/json", gotContentType)
	require.NotEmpty(t, gotRequestID)
	require.Equal(t, map[string]string{"email": "a@b.com", "password": "secret"}, gotBody)
}

func TestLogin_ServerMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))

	_, err := client.Login(context.Background(), "a@b.com", "wrong")

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestLogin_FallbackMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Login(context.Background(), "a@b.com", "x")

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "Login failed", apiErr.Message)
}

func TestServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewRESTClient(srv.URL, logging.NewNop())

	_, err := client.Login(context.Background(), "a@b.com", "x")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestListUsers_BearerHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.User{{ID: 1, FullName: "Alice", RankName: "Captain"}})
	}))

	users, err := client.ListUsers(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, "Bearer tok", gotAuth)
	require.Len(t, users, 1)
	require.Equal(t, "Alice", users[0].FullName)
	require.Equal(t, "Captain", users[0].RankName)
}

func TestUpdateUser_PathAndMethod(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/users/42", r.URL.Path)
		json.NewEncoder(w).Encode(models.User{ID: 42, FullName: "Bob"})
	}))

	u, err := client.UpdateUser(context.Background(), "tok", 42, models.UserForm{FullName: "Bob"})
	require.NoError(t, err)
	require.Equal(t, int64(42), u.ID)
}

func TestDeleteUser_ErrorMessageKey(t *testing.T) {
	// User handlers report errors under "message".
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "User not found"})
	}))

	err := client.DeleteUser(context.Background(), "tok", 7)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "User not found", apiErr.Message)
}

func TestResetUserPassword(t *testing.T) {
	var gotBody map[string]int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/api/users/reset-password", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"message": "Password reset to mobile number"})
	}))

	msg, err := client.ResetUserPassword(context.Background(), "tok", 5)
	require.NoError(t, err)
	require.Equal(t, "Password reset to mobile number", msg)
	require.Equal(t, map[string]int64{"userId": 5}, gotBody)
}

func TestDeleteOffice_ErrorKey(t *testing.T) {
	// Office handlers report errors under "error", not "message".
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Office has assigned members"})
	}))

	err := client.DeleteOffice(context.Background(), "tok", 3)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "Office has assigned members", apiErr.Message)
}

func TestCreateRank(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/api/ranks", r.URL.Path)
		var form models.RankForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		json.NewEncoder(w).Encode(models.Rank{ID: 2, Name: form.Name})
	}))

	rank, err := client.CreateRank(context.Background(), "tok", models.RankForm{Name: "Major"})
	require.NoError(t, err)
	require.Equal(t, models.Rank{ID: 2, Name: "Major"}, rank)
}

func TestListDiaryPDFs_DataEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/diary-pdfs", r.URL.Path)
		fmt.Fprint(w, `{"data":[{"id":4,"file_name":"diary.pdf"}]}`)
	}))

	items, err := client.ListDiaryPDFs(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(4), items[0].ID)
	require.Equal(t, "diary.pdf", items[0].FileName)
}

func TestUploadDiaryPDF(t *testing.T) {
	var gotFile []byte
	var gotFileName, gotCustomName string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("diary_pdf")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		buf := new(bytes.Buffer)
		_, err = buf.ReadFrom(file)
		require.NoError(t, err)
		gotFile = buf.Bytes()
		gotCustomName = r.FormValue("file_name")
		fmt.Fprint(w, `{"data":{"id":9,"file_name":"annual.pdf"}}`)
	}))

	got, err := client.UploadDiaryPDF(context.Background(), "tok", "report.pdf", "annual.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	require.Equal(t, int64(9), got.ID)
	require.Equal(t, "report.pdf", gotFileName)
	require.Equal(t, "annual.pdf", gotCustomName)
	require.Equal(t, []byte("%PDF-1.4"), gotFile)
}

func TestUploadDiaryPDF_OmitsEmptyCustomName(t *testing.T) {
	var hasField bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, hasField = r.MultipartForm.Value["file_name"]
		fmt.Fprint(w, `{"data":{"id":9}}`)
	}))

	_, err := client.UploadDiaryPDF(context.Background(), "tok", "report.pdf", "", strings.NewReader("x"))
	require.NoError(t, err)
	require.False(t, hasField)
}

func TestDownloadDiaryPDF(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/diary-pdfs/4", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte("binary-pdf"))
	}))

	var buf bytes.Buffer
	require.NoError(t, client.DownloadDiaryPDF(context.Background(), "tok", 4, &buf))
	require.Equal(t, "binary-pdf", buf.String())
}

func TestDownloadDiaryPDF_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Diary not found"})
	}))

	var buf bytes.Buffer
	err := client.DownloadDiaryPDF(context.Background(), "tok", 4, &buf)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "Diary not found", apiErr.Message)
	require.Zero(t, buf.Len())
}
