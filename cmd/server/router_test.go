package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdw-edu/questions-api/internal/config"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/service/auth"
	"github.com/tdw-edu/questions-api/internal/testdb"
)

const (
	testPrefix   = "/api/v1"
	testPassword = "rootpass"
)

type testServer struct {
	t   *testing.T
	srv *httptest.Server
	app *application
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error", APIPrefix: testPrefix},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			URL:    "file::memory:",
		},
		Auth: config.AuthConfig{
			JWTSecret:            "0123456789abcdef0123456789abcdef",
			TokenLifetimeMinutes: 60,
			BCryptCost:           4,
		},
	}

	app, err := newApplication(cfg, slog.New(slog.DiscardHandler), testdb.GetTestDBWithT(t))
	require.NoError(t, err)

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)

	return &testServer{t: t, srv: srv, app: app}
}

// seedAdmin stores an enabled admin directly, bypassing the API.
func (s *testServer) seedAdmin() *domain.User {
	s.t.Helper()

	hash, err := auth.NewBcrypt(4).Hash(testPassword)
	require.NoError(s.t, err)

	u := &domain.User{
		Username:       "root",
		Email:          "root@example.com",
		HashedPassword: hash,
		Enabled:        true,
		IsTeacher:      true,
		IsAdmin:        true,
	}
	require.NoError(s.t, s.app.stores.Users.Create(context.Background(), u))
	return u
}

func (s *testServer) do(method, path, token string, body any) (*http.Response, []byte) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, s.srv.URL+path, reader)
	require.NoError(s.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.srv.Client().Do(req)
	require.NoError(s.t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp, data
}

func (s *testServer) login(username, password string) (*http.Response, []byte) {
	s.t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	resp, err := s.srv.Client().Post(s.srv.URL+testPrefix+"/login",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(s.t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp, data
}

func (s *testServer) adminToken() string {
	s.t.Helper()
	s.seedAdmin()

	resp, _ := s.login("root", testPassword)
	require.Equal(s.t, http.StatusOK, resp.StatusCode)
	token := resp.Header.Get("X-Token")
	require.NotEmpty(s.t, token)
	return token
}

func decodeInto[T any](t *testing.T, data []byte, key string) T {
	t.Helper()

	var out T
	if key == "" {
		require.NoError(t, json.Unmarshal(data, &out))
		return out
	}

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &env))
	require.Contains(t, env, key)
	require.NoError(t, json.Unmarshal(env[key], &out))
	return out
}

func assertEnvelope(t *testing.T, data []byte, code int, message string) {
	t.Helper()
	assert.JSONEq(t, fmt.Sprintf(`{"code":%d,"message":%q}`, code, message), string(data))
}

func TestEndToEndScenario(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken()

	resp, data := s.do(http.MethodPost, testPrefix+"/users", token, map[string]any{
		"username":  "teacher",
		"email":     "teacher@example.com",
		"password":  "pw",
		"enabled":   true,
		"isTeacher": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	teacher := decodeInto[domain.User](t, data, "user")

	resp, data = s.do(http.MethodPost, testPrefix+"/questions", token, map[string]any{
		"description": "What is 2+2?",
		"available":   true,
		"creator":     teacher.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	question := decodeInto[domain.Question](t, data, "question")
	assert.Equal(t, domain.QuestionOpen, question.State)
	require.NotNil(t, question.CreatorID)
	assert.Equal(t, teacher.ID, *question.CreatorID)

	resp, data = s.do(http.MethodPost, testPrefix+"/solutions", token, map[string]any{
		"questionId":       question.ID,
		"student":          "bob",
		"questionTitle":    "Sum",
		"proposedSolution": "4",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	solution := decodeInto[domain.Solution](t, data, "solution")

	resp, data = s.do(http.MethodPost, testPrefix+"/rationales", token, map[string]any{
		"solutionId": solution.ID,
		"title":      "Counting",
		"justify":    true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	questionPath := fmt.Sprintf("%s/questions/%d", testPrefix, question.ID)

	resp, data = s.do(http.MethodPut, questionPath, token, map[string]any{"available": false})
	require.Equal(t, 209, resp.StatusCode, string(data))
	updated := decodeInto[domain.Question](t, data, "")
	assert.False(t, updated.Available)
	assert.Equal(t, domain.QuestionClosed, updated.State)

	resp, data = s.do(http.MethodDelete, questionPath, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, data)

	resp, data = s.do(http.MethodGet, questionPath, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assertEnvelope(t, data, http.StatusNotFound, "Resource not found")

	resp, _ = s.do(http.MethodGet, fmt.Sprintf("%s/solutions/%d", testPrefix, solution.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmptyListsAreNotFound(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken()

	tests := []struct {
		path    string
		message string
	}{
		{"/questions", "Question object not found"},
		{"/categories", "Category object not found"},
		{"/solutions", "Solution object not found"},
		{"/rationales", "Rationale object not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, data := s.do(http.MethodGet, testPrefix+tt.path, token, nil)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assertEnvelope(t, data, http.StatusNotFound, tt.message)
		})
	}

	resp, data := s.do(http.MethodGet, testPrefix+"/users", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	users := decodeInto[[]domain.User](t, data, "users")
	assert.Len(t, users, 1)
}

func TestOptionsAllowHeaders(t *testing.T) {
	s := newTestServer(t)

	for _, collection := range []string{"users", "questions", "categories", "solutions", "rationales"} {
		t.Run(collection, func(t *testing.T) {
			resp, data := s.do(http.MethodOptions, testPrefix+"/"+collection, "", nil)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "GET, POST", resp.Header.Get("Allow"))
			assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
			assert.Empty(t, data)

			resp, data = s.do(http.MethodOptions, testPrefix+"/"+collection+"/7", "", nil)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "GET, PUT, DELETE", resp.Header.Get("Allow"))
			assert.Equal(t, "GET, PUT, DELETE, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
			assert.Empty(t, data)
		})
	}
}

func TestLoginOptions(t *testing.T) {
	s := newTestServer(t)

	resp, data := s.do(http.MethodOptions, testPrefix+"/login", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "POST", resp.Header.Get("Allow"))
	assert.Equal(t, "POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Empty(t, data)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	root := s.seedAdmin()

	resp, data := s.login("root", testPassword)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Token"))
	assert.Equal(t, "X-Token", resp.Header.Get("Access-Control-Expose-Headers"))

	body := decodeInto[string](t, data, "X-Token")
	assert.Equal(t, resp.Header.Get("X-Token"), body)
	user := decodeInto[domain.User](t, data, "User")
	assert.Equal(t, root.ID, user.ID)
	assert.NotContains(t, string(data), root.HashedPassword)

	wrongPassword, wrongBody := s.login("root", "nope")
	unknownUser, unknownBody := s.login("nobody", testPassword)

	assert.Equal(t, http.StatusNotFound, wrongPassword.StatusCode)
	assert.Equal(t, http.StatusNotFound, unknownUser.StatusCode)
	assert.Equal(t, wrongBody, unknownBody)
	assertEnvelope(t, wrongBody, http.StatusNotFound, "User not found or password does not match")
	assert.Empty(t, wrongPassword.Header.Get("X-Token"))
}

func TestAuthenticationRequired(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := s.do(http.MethodGet, testPrefix+"/users", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assertEnvelope(t, data, http.StatusUnauthorized, "UNAUTHORIZED: invalid X-Token header")
		})
	}
}

func TestLegacyTokenHeader(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken()

	req, err := http.NewRequest(http.MethodGet, s.srv.URL+testPrefix+"/users", nil)
	require.NoError(t, err)
	req.Header.Set("X-Token", token)

	resp, err := s.srv.Client().Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutingErrors(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken()

	tests := []struct {
		name    string
		method  string
		path    string
		status  int
		message string
	}{
		{"unknown path", http.MethodGet, testPrefix + "/teachers", http.StatusNotFound, "Path not found"},
		{"non-numeric id", http.MethodGet, testPrefix + "/users/abc", http.StatusNotFound, "Path not found"},
		{"unsupported method", http.MethodPatch, testPrefix + "/users", http.StatusMethodNotAllowed, "Method not allowed"},
		{"put on collection", http.MethodPut, testPrefix + "/questions", http.StatusMethodNotAllowed, "Method not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := s.do(tt.method, tt.path, token, nil)
			assert.Equal(t, tt.status, resp.StatusCode)
			assertEnvelope(t, data, tt.status, tt.message)
		})
	}
}

func TestCategoryQuestionLinks(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken()
	root, err := s.app.stores.Users.GetByUsername(context.Background(), "root")
	require.NoError(t, err)

	_, data := s.do(http.MethodPost, testPrefix+"/questions", token, map[string]any{
		"description": "Define a prime",
		"available":   true,
		"creator":     root.ID,
	})
	question := decodeInto[domain.Question](t, data, "question")

	resp, data := s.do(http.MethodPost, testPrefix+"/categories", token, map[string]any{
		"description": "Numbers",
		"available":   true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))
	category := decodeInto[domain.Category](t, data, "category")

	linkPath := fmt.Sprintf("%s/categories/%d/questions/%d", testPrefix, category.ID, question.ID)

	resp, data = s.do(http.MethodPut, linkPath, token, nil)
	require.Equal(t, 209, resp.StatusCode, string(data))
	assert.Equal(t, []int64{question.ID}, decodeInto[domain.Category](t, data, "").Questions)

	resp, data = s.do(http.MethodDelete, linkPath, token, nil)
	require.Equal(t, 209, resp.StatusCode, string(data))
	assert.Empty(t, decodeInto[domain.Category](t, data, "").Questions)

	missing := fmt.Sprintf("%s/categories/%d/questions/999", testPrefix, category.ID)
	resp, data = s.do(http.MethodPut, missing, token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assertEnvelope(t, data, http.StatusBadRequest, "`Bad Request` Question does not exist")
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	resp, data := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(data))

	s.do(http.MethodGet, testPrefix+"/users", "", nil)

	resp, data = s.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), `questions_api_http_requests_total{method="GET",route="/api/v1/users",status="401"} 1`)
}
