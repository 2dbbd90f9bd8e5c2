package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionworks/go-auth-api/internal/application"
	"github.com/sessionworks/go-auth-api/internal/domain/entity"
	repo "github.com/sessionworks/go-auth-api/internal/domain/repository"
	"github.com/sessionworks/go-auth-api/pkg/validation"
)

type stubUserRepo struct {
	nextID int64
	users  []*entity.User
	err    error
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	if s.err != nil {
		return s.err
	}
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repo.ErrEmailTaken
		}
	}
	s.nextID++
	u.ID = s.nextID
	u.CreatedAt = time.Now()
	cp := *u
	s.users = append(s.users, &cp)
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

type stubSessionRepo struct {
	nextID int64
	err    error
}

func (s *stubSessionRepo) Create(_ context.Context, sess *entity.Session) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	sess.ID = s.nextID
	sess.CreatedAt = time.Now()
	return nil
}

func newTestRouter(users *stubUserRepo, sessions *stubSessionRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	svc := application.NewService(users, sessions, nil, 4, time.Hour)
	h := NewAuthHandler(svc, logger)

	r := gin.New()
	auth := r.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/signin", h.Signin)
	auth.GET("/user/:userId", h.GetUser)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSignupCreated(t *testing.T) {
	r := newTestRouter(&stubUserRepo{}, &stubSessionRepo{})

	rec := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"email": "a@b.com", "password": "secret1", "name": "A",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Message string `json:"message"`
		UserID  int64  `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User created", body.Message)
	assert.Equal(t, int64(1), body.UserID)
}

func TestSignupValidationFailures(t *testing.T) {
	r := newTestRouter(&stubUserRepo{}, &stubSessionRepo{})

	rec := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"email": "not-an-email", "password": "abc",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 3)
	assert.Equal(t, "email", body.Errors[0].Field)
	assert.Equal(t, "password", body.Errors[1].Field)
	assert.Equal(t, "name", body.Errors[2].Field)
}

func TestSignupDuplicateEmailConflict(t *testing.T) {
	r := newTestRouter(&stubUserRepo{}, &stubSessionRepo{})

	payload := gin.H{"email": "a@b.com", "password": "secret1", "name": "A"}
	rec := doJSON(t, r, http.MethodPost, "/auth/signup", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/auth/signup", payload)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Email already in use"}`, rec.Body.String())
}

func TestSignupStoreFailure(t *testing.T) {
	users := &stubUserRepo{err: errors.New("connection refused")}
	r := newTestRouter(users, &stubSessionRepo{})

	rec := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"email": "a@b.com", "password": "secret1", "name": "A",
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Something went wrong"}`, rec.Body.String())
}

func TestSigninLoggedIn(t *testing.T) {
	users := &stubUserRepo{}
	r := newTestRouter(users, &stubSessionRepo{})

	rec := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"email": "a@b.com", "password": "secret1", "name": "A",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/auth/signin", gin.H{
		"email": "a@b.com", "password": "secret1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Message   string `json:"message"`
		SessionID int64  `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Logged in", body.Message)
	assert.Equal(t, int64(1), body.SessionID)
}

func TestSigninRejectionsAreIndistinguishable(t *testing.T) {
	users := &stubUserRepo{}
	r := newTestRouter(users, &stubSessionRepo{})

	rec := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"email": "a@b.com", "password": "secret1", "name": "A",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPass := doJSON(t, r, http.MethodPost, "/auth/signin", gin.H{
		"email": "a@b.com", "password": "wrong-pass",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/auth/signin", gin.H{
		"email": "nobody@b.com", "password": "secret1",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPass.Body.String(), unknownEmail.Body.String())
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, wrongPass.Body.String())
}

func TestSigninMissingPassword(t *testing.T) {
	r := newTestRouter(&stubUserRepo{}, &stubSessionRepo{})

	rec := doJSON(t, r, http.MethodPost, "/auth/signin", gin.H{"email": "a@b.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"errors"`)
}

func TestGetUserInvalidID(t *testing.T) {
	r := newTestRouter(&stubUserRepo{}, &stubSessionRepo{})

	rec := doJSON(t, r, http.MethodGet, "/auth/user/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid userId"}`, rec.Body.String())
}

func TestGetUserNotFound(t *testing.T) {
	r := newTestRouter(&stubUserRepo{}, &stubSessionRepo{})

	rec := doJSON(t, r, http.MethodGet, "/auth/user/42", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}

func TestGetUserOmitsPasswordHash(t *testing.T) {
	users := &stubUserRepo{}
	r := newTestRouter(users, &stubSessionRepo{})

	rec := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"email": "a@b.com", "password": "secret1", "name": "A",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/auth/user/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		User map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body.User["id"])
	assert.Equal(t, "a@b.com", body.User["email"])
	assert.Equal(t, "A", body.User["name"])
	assert.NotContains(t, body.User, "password")
	assert.NotContains(t, rec.Body.String(), "$2")
}

func TestGetUserIdempotent(t *testing.T) {
	users := &stubUserRepo{}
	r := newTestRouter(users, &stubSessionRepo{})

	rec := doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{
		"email": "a@b.com", "password": "secret1", "name": "A",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	first := doJSON(t, r, http.MethodGet, "/auth/user/1", nil)
	second := doJSON(t, r, http.MethodGet, "/auth/user/1", nil)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}
