package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/bibliotech/catalog-api/internal/api/metrics"
	"github.com/bibliotech/catalog-api/internal/api/middleware"
	"github.com/bibliotech/catalog-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, displayName, email, password, role string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	profileFn  func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, displayName, email, password, role string) (*domain.User, error) {
	return s.registerFn(ctx, displayName, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.profileFn(ctx, id)
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, displayName, email, password, role string) (*domain.User, error) {
			if displayName != "alice" || email != "alice@example.com" || role != "" {
				t.Fatalf("unexpected args: %s %s %s", displayName, email, role)
			}
			return &domain.User{ID: "u1", DisplayName: displayName, Email: email, Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"displayName":"alice","email":"alice@example.com","password":"secret1"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["displayName"] != "alice" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, present := user["passwordHash"]; present {
		t.Fatalf("password hash leaked into response")
	}
}

func TestAuthHandler_Register_ValidationMessagesComplete(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, displayName, email, password, role string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	// displayName too short, email invalid, password too short
	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"displayName":"ab","email":"not-an-email","password":"123"}`)

	err := handler.Register(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected all 3 violations reported, got %v", verr.Fields)
	}
}

func TestAuthHandler_Register_PaddedDisplayNameRejected(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, displayName, email, password, role string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	// trims to "a", below the 3-char minimum
	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"displayName":"  a  ","email":"a@example.com","password":"secret1"}`)

	err := handler.Register(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthHandler_Register_CountsRegistrations(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, displayName, email, password, role string) (*domain.User, error) {
			return &domain.User{ID: "u1", DisplayName: displayName}, nil
		},
	}
	handler := NewAuthHandler(stub)

	before := testutil.ToFloat64(metrics.RegistrationsTotal)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"displayName":"alice","email":"alice@example.com","password":"secret1"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := testutil.ToFloat64(metrics.RegistrationsTotal); got != before+1 {
		t.Fatalf("expected registrations counter to increment, before=%v after=%v", before, got)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, displayName, email, password, role string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"displayName":"bob","email":"bob@example.com","password":"secret1"}`)

	if err := handler.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "tok123", &domain.User{ID: "u1", Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["token"] != "tok123" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
}

func TestAuthHandler_Login_UnknownUserIsClientError(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"ghost@example.com","password":"secret1"}`)

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("login must not reveal 404 for unknown accounts, got %d", he.Code)
	}
}

func TestAuthHandler_Login_BadPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrBadPassword
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong1"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrBadPassword) {
		t.Fatalf("expected ErrBadPassword, got %v", err)
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "u1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{ID: "u1", DisplayName: "alice"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/auth/profile", "")
	c.Set(middleware.CtxUserID, "u1")

	if err := handler.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Profile_MissingClaims(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodGet, "/auth/profile", "")

	err := handler.Profile(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
