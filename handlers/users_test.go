package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/biosecret/go-crud/events"
	"github.com/biosecret/go-crud/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, e *env, email, password string) models.User {
	t.Helper()
	resp, raw := do(t, e.app, http.MethodPost, "/api/v1/user", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	return decode[envelope[models.User]](t, raw).Data
}

func TestUsers_Create(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	resp, raw := do(t, e.app, http.MethodPost, "/api/v1/user", map[string]string{"email": "a@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret1")

	user := decode[envelope[models.User]](t, raw).Data
	assert.Equal(t, "a@example.com", user.Email)

	stored, err := e.users.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret1", stored.Password)

	assert.Equal(t, []events.Event{{Action: events.ActionCreated, Resource: "users", ID: user.ID}}, e.events.all())
}

func TestUsers_CreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    map[string]string
		wantMsg string
	}{
		{"short password", map[string]string{"email": "a@example.com", "password": "12345"}, "password: length must be at least 6 characters"},
		{"long password", map[string]string{"email": "a@example.com", "password": strings.Repeat("p", 129)}, "password: length must be at most 128 characters"},
		{"missing email", map[string]string{"password": "secret1"}, "email: must not be empty"},
		{"bad email", map[string]string{"email": "not-an-email", "password": "secret1"}, "email: must be a valid address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t)

			resp, raw := do(t, e.app, http.MethodPost, "/api/v1/user", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, string(raw), tt.wantMsg)
		})
	}
}

func TestUsers_CreateFailures(t *testing.T) {
	t.Parallel()

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		createUser(t, e, "a@example.com", "secret1")

		resp, raw := do(t, e.app, http.MethodPost, "/api/v1/user", map[string]string{"email": "a@example.com", "password": "secret2"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "User with email already exists", string(raw))
	})

	t.Run("hash failure", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.hasher.hashErr = errors.New("rng failure")

		resp, raw := do(t, e.app, http.MethodPost, "/api/v1/user", map[string]string{"email": "a@example.com", "password": "secret1"})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Failed to hash password", string(raw))
	})

	t.Run("database failure", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.users.err = errDB

		resp, raw := do(t, e.app, http.MethodPost, "/api/v1/user", map[string]string{"email": "a@example.com", "password": "secret1"})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Failed to create user", string(raw))
		assert.Empty(t, e.events.all())
	})
}

func TestUsers_Get(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	user := createUser(t, e, "a@example.com", "secret1")

	resp, raw := do(t, e.app, http.MethodGet, "/api/v1/user/"+user.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, user.ID, decode[envelope[models.User]](t, raw).Data.ID)
	assert.NotContains(t, string(raw), "hashed:")

	resp, raw = do(t, e.app, http.MethodGet, "/api/v1/user/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "The requested user could not be found", string(raw))
}

func TestUsers_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		email      string
		password   string
		verifyErr  error
		wantStatus int
		wantBody   string
	}{
		{"correct credentials", "a@example.com", "secret1", nil, http.StatusOK, `{"status":"success"}`},
		{"wrong password", "a@example.com", "wrong-pw", nil, http.StatusUnauthorized, "Invalid password"},
		{"unknown email", "b@example.com", "secret1", nil, http.StatusNotFound, "User with email does not exist"},
		{"hash verification failure", "a@example.com", "secret1", errors.New("malformed hash"), http.StatusInternalServerError, "Failed to verify password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t)
			createUser(t, e, "a@example.com", "secret1")
			e.hasher.verifyErr = tt.verifyErr

			resp, raw := do(t, e.app, http.MethodPost, "/api/v1/user/login", map[string]string{"email": tt.email, "password": tt.password})
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, tt.wantBody, string(raw))
			} else {
				assert.Equal(t, tt.wantBody, string(raw))
			}
		})
	}
}

func TestUsers_LoginValidation(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	resp, _ := do(t, e.app, http.MethodPost, "/api/v1/user/login", map[string]string{"email": "a@example.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	e.users.err = errDB
	resp, raw := do(t, e.app, http.MethodPost, "/api/v1/user/login", map[string]string{"email": "a@example.com", "password": "x"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to fetch user", string(raw))
}
