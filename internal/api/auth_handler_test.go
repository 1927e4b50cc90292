package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdw-edu/questions-api/internal/catalog"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/service"
)

type fakeLogin struct {
	username, password string
	result             *service.LoginResult
	err                error
}

func (f *fakeLogin) Login(_ context.Context, username, password string) (*service.LoginResult, error) {
	f.username, f.password = username, password
	return f.result, f.err
}

func TestAuthHandler_Login(t *testing.T) {
	user := &domain.User{ID: 1, Username: "ana", Email: "ana@example.com", Questions: []int64{}}
	failure := service.NewOutcomeError(catalog.OpLogin, http.StatusNotFound, service.ErrInvalidCredentials)

	tests := []struct {
		name        string
		contentType string
		body        string
		svcErr      error
		wantStatus  int
		wantCalled  bool
	}{
		{
			name:        "json credentials",
			contentType: "application/json",
			body:        `{"username":"ana","password":"pw"}`,
			wantStatus:  http.StatusOK,
			wantCalled:  true,
		},
		{
			name:        "form credentials",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"username": {"ana"}, "password": {"pw"}}.Encode(),
			wantStatus:  http.StatusOK,
			wantCalled:  true,
		},
		{
			name:        "wrong credentials",
			contentType: "application/json",
			body:        `{"username":"ana","password":"bad"}`,
			svcErr:      failure,
			wantStatus:  http.StatusNotFound,
			wantCalled:  true,
		},
		{
			name:        "missing password",
			contentType: "application/json",
			body:        `{"username":"ana"}`,
			wantStatus:  http.StatusNotFound,
		},
		{
			name:        "malformed body",
			contentType: "application/json",
			body:        `{"username":`,
			wantStatus:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeLogin{result: &service.LoginResult{Token: "tok", User: user}, err: tt.svcErr}
			h := NewAuthHandler(svc, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()

			h.Login(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCalled {
				assert.Equal(t, "ana", svc.username)
			} else {
				assert.Empty(t, svc.username)
			}

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "tok", w.Header().Get("X-Token"))
				var body map[string]json.RawMessage
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.JSONEq(t, `"tok"`, string(body["X-Token"]))
				assert.Contains(t, string(body["User"]), `"username":"ana"`)
				assert.NotContains(t, w.Body.String(), "password")
				return
			}

			assert.JSONEq(t,
				`{"code":404,"message":"User not found or password does not match"}`,
				w.Body.String())
		})
	}
}

func TestAuthHandler_LoginInternalError(t *testing.T) {
	svc := &fakeLogin{err: errors.New("db down")}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(`{"username":"a","password":"b"}`))
	w := httptest.NewRecorder()

	NewAuthHandler(svc, nil).Login(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":500,"message":"Internal server error"}`, w.Body.String())
}
