package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thelist/internal/application/services"
	"thelist/internal/infrastructure"
	"thelist/internal/infrastructure/db/postgres"
)

type noopMailer struct{}

func (noopMailer) Send(context.Context, string, string, string, string) error { return nil }

type memoryResetStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func (s *memoryResetStore) Set(_ context.Context, token, userID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *memoryResetStore) Get(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token], nil
}

func (s *memoryResetStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

type testEnv struct {
	t  *testing.T
	e  *echo.Echo
	db *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	jwtService := infrastructure.NewJWTService("test-secret")
	userService := services.NewUserService(
		postgres.NewUserRepository(db),
		jwtService,
		noopMailer{},
		&memoryResetStore{tokens: make(map[string]string)},
		infrastructure.NewRateLimiter(time.Minute, 100),
		"The List",
		"http://localhost:8080",
	)
	todoService := services.NewTodoService(
		postgres.NewTodoListRepository(db),
		postgres.NewTaskRepository(db),
	)

	return &testEnv{t: t, e: NewRouter(userService, todoService, jwtService), db: db}
}

func (env *testEnv) request(method, path, token string, body interface{}) (*httptest.ResponseRecorder, *Response) {
	env.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(env.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	var resp Response
	require.NoError(env.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, &resp
}

func (env *testEnv) signupAndLogin(username string) string {
	env.t.Helper()

	rec, _ := env.request(http.MethodPost, "/api/signup", "", map[string]string{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "secret12",
		"password_confirm": "secret12",
		"first_name":       "Test",
	})
	require.Equal(env.t, http.StatusCreated, rec.Code)

	rec, resp := env.request(http.MethodPost, "/api/login", "", map[string]string{
		"username": username,
		"password": "secret12",
	})
	require.Equal(env.t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	raw, err := json.Marshal(resp.Data)
	require.NoError(env.t, err)
	require.NoError(env.t, json.Unmarshal(raw, &login))
	require.NotEmpty(env.t, login.Token)
	return login.Token
}

// dataField re-decodes the untyped data envelope into out.
func dataField(t *testing.T, resp *Response, out interface{}) {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestSignupValidationAndConflict(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.request(http.MethodPost, "/api/signup", "", map[string]string{
		"username": "x",
		"email":    "bad",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", resp.Status)
	assert.NotEmpty(t, resp.Errors)

	env.signupAndLogin("alice")

	rec, resp = env.request(http.MethodPost, "/api/signup", "", map[string]string{
		"username":         "alice",
		"email":            "other@example.com",
		"password":         "secret12",
		"password_confirm": "secret12",
		"first_name":       "Test",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Errors, "username already exists")
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	env.signupAndLogin("alice")

	rec, _ := env.request(http.MethodPost, "/api/login", "", map[string]string{
		"username": "alice",
		"password": "wrong000",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, resp := env.request(http.MethodPost, "/api/login", "", map[string]string{
		"username": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "please fill in all fields", resp.Message)
}

func TestRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := env.request(http.MethodGet, "/api/lists", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = env.request(http.MethodGet, "/api/lists", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin("alice")

	rec, resp := env.request(http.MethodPost, "/api/lists", token, map[string]string{
		"title":       "Groceries",
		"description": "weekly",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Result struct {
			Id    uuid.UUID `json:"id"`
			Title string    `json:"title"`
		} `json:"result"`
	}
	dataField(t, resp, &created)
	assert.Equal(t, "Groceries", created.Result.Title)
	listPath := "/api/lists/" + created.Result.Id.String()

	// Empty titles are rejected with the violation listed.
	rec, resp = env.request(http.MethodPost, "/api/lists", token, map[string]string{"title": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Errors, "title is required")

	rec, resp = env.request(http.MethodPost, listPath+"/tasks", token, map[string]string{"title": "Milk"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var task struct {
		Result struct {
			Id uuid.UUID `json:"id"`
		} `json:"result"`
	}
	dataField(t, resp, &task)

	rec, _ = env.request(http.MethodPost, listPath+"/tasks/"+task.Result.Id.String()+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = env.request(http.MethodGet, listPath+"/tasks", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks struct {
		List struct {
			CompletionPercentage float64 `json:"completion_percentage"`
		} `json:"list"`
		TotalTasks     int64 `json:"total_tasks"`
		CompletedTasks int64 `json:"completed_tasks"`
	}
	dataField(t, resp, &tasks)
	assert.Equal(t, int64(1), tasks.TotalTasks)
	assert.Equal(t, int64(1), tasks.CompletedTasks)
	assert.InDelta(t, 100.0, tasks.List.CompletionPercentage, 1e-9)

	// Patch keeps the stored description when the body omits it.
	rec, resp = env.request(http.MethodPatch, listPath, token, map[string]string{"title": "Food"})
	require.Equal(t, http.StatusOK, rec.Code)

	var patched struct {
		Result struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"result"`
	}
	dataField(t, resp, &patched)
	assert.Equal(t, "Food", patched.Result.Title)
	assert.Equal(t, "weekly", patched.Result.Description)

	rec, _ = env.request(http.MethodDelete, listPath, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.request(http.MethodGet, listPath+"/tasks", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOtherOwnersListsReadAsMissing(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.signupAndLogin("alice")
	malloryToken := env.signupAndLogin("mallory")

	rec, resp := env.request(http.MethodPost, "/api/lists", aliceToken, map[string]string{"title": "Private"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Result struct {
			Id uuid.UUID `json:"id"`
		} `json:"result"`
	}
	dataField(t, resp, &created)
	listPath := "/api/lists/" + created.Result.Id.String()

	rec, _ = env.request(http.MethodGet, listPath+"/tasks", malloryToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = env.request(http.MethodDelete, listPath, malloryToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A garbage id answers the same way as someone else's list.
	rec, _ = env.request(http.MethodDelete, "/api/lists/not-a-uuid", malloryToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The owner still sees the list untouched.
	rec, _ = env.request(http.MethodGet, listPath+"/tasks", aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesNeedAdminFlag(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin("alice")

	rec, _ := env.request(http.MethodGet, "/api/admin/lists", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	require.NoError(t, env.db.Exec("UPDATE users SET is_admin = ? WHERE username = ?", true, "alice").Error)

	rec, _ = env.request(http.MethodGet, "/api/admin/lists", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.request(http.MethodGet, "/api/admin/tasks", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.signupAndLogin("alice")

	rec, resp := env.request(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me struct {
		Result struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"result"`
	}
	dataField(t, resp, &me)
	assert.Equal(t, "alice", me.Result.Username)
	assert.Equal(t, "alice@example.com", me.Result.Email)
}
