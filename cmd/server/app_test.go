package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/api"
	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/mocks"
	"github.com/taskdeck/taskdeck-api/internal/service"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
)

// newTestApplication wires the full application against in-memory stores so
// the router can be exercised end to end without a database.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			LogLevel:        "error",
		},
		Auth: config.AuthConfig{
			JWTSecret:       "test-jwt-secret-that-is-32-chars!",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	userStore := mocks.NewMockUserStore()
	taskStore := mocks.NewMockTaskStore()

	return &application{
		config:     cfg,
		logger:     logger,
		userStore:  userStore,
		taskStore:  taskStore,
		jwtService: jwtService,
		authService: service.NewAuthService(
			userStore, jwtService, auth.NewBcryptHasher(), mocks.NewFakeDB(), logger),
		taskService: service.NewTaskService(taskStore, logger),
	}
}

type testClient struct {
	t      *testing.T
	router http.Handler
}

func (c *testClient) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(c.t, err)
	}

	r := httptest.NewRequest(method, path, bytes.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, r)
	return w
}

func (c *testClient) registerAndLogin(email, name, password string) api.LoginResponse {
	c.t.Helper()

	w := c.do(http.MethodPost, "/api/auth/register", "", api.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: password,
	})
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())

	w = c.do(http.MethodPost, "/api/auth/login", "", api.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())

	var resp api.LoginResponse
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	client := &testClient{t: t, router: app.setupRouter()}

	w := client.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestTaskRoutesRequireAuthentication(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	client := &testClient{t: t, router: app.setupRouter()}

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/tasks"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodGet, "/api/tasks/9d2c71f0-4f9e-4c5b-8a9d-000000000000"},
		{http.MethodPut, "/api/tasks/9d2c71f0-4f9e-4c5b-8a9d-000000000000"},
		{http.MethodDelete, "/api/tasks/9d2c71f0-4f9e-4c5b-8a9d-000000000000"},
	} {
		w := client.do(route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code,
			"%s %s should require authentication", route.method, route.path)
	}
}

func TestUserTaskLifecycle(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	client := &testClient{t: t, router: app.setupRouter()}

	alice := client.registerAndLogin("alice@example.com", "Alice", "password123")
	bob := client.registerAndLogin("bob@example.com", "Bob", "password456")

	// Alice creates a task; it starts as todo.
	w := client.do(http.MethodPost, "/api/tasks", alice.AccessToken, api.CreateTaskRequest{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Priority:    2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created api.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "todo", created.Status)

	// Alice sees her task in the list.
	w = client.do(http.MethodGet, "/api/tasks", alice.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var alicePage domain.PaginatedResponse[api.TaskResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alicePage))
	assert.Equal(t, 1, alicePage.Total)

	// Bob's list is empty; Alice's tasks are invisible to him.
	w = client.do(http.MethodGet, "/api/tasks", bob.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bobPage domain.PaginatedResponse[api.TaskResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bobPage))
	assert.Equal(t, 0, bobPage.Total)

	// Bob cannot read, update, or delete Alice's task.
	taskPath := "/api/tasks/" + created.ID.String()
	w = client.do(http.MethodGet, taskPath, bob.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	title := "Hijacked"
	w = client.do(http.MethodPut, taskPath, bob.AccessToken, api.UpdateTaskRequest{Title: &title})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = client.do(http.MethodDelete, taskPath, bob.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Alice moves the task to done.
	done := "done"
	w = client.do(http.MethodPut, taskPath, alice.AccessToken, api.UpdateTaskRequest{Status: &done})
	require.Equal(t, http.StatusOK, w.Code)

	var updated api.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "done", updated.Status)
	assert.Equal(t, "Write report", updated.Title)

	// And finally deletes it.
	w = client.do(http.MethodDelete, taskPath, alice.AccessToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = client.do(http.MethodGet, taskPath, alice.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDuplicateRegistrationConflict(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	client := &testClient{t: t, router: app.setupRouter()}

	req := api.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "password123",
	}
	w := client.do(http.MethodPost, "/api/auth/register", "", req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = client.do(http.MethodPost, "/api/auth/register", "", req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRefreshTokenRejectedOnProtectedRoutes(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	client := &testClient{t: t, router: app.setupRouter()}

	alice := client.registerAndLogin("alice@example.com", "Alice", "password123")

	// A refresh token is not an access token and must not open task routes.
	w := client.do(http.MethodGet, "/api/tasks", alice.RefreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServerShutdownClosesDatabase(t *testing.T) {
	app := newTestApplication(t)
	app.db = mocks.NewFakeDB()
	app.config.Server.Port = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.startHTTPServer(ctx, app.setupRouter())
	require.NoError(t, err)

	assert.EqualError(t, app.db.Ping(), "sql: database is closed")
}
