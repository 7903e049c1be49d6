package auth

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/mamaghar/go-admin/internal/apiclient"
	"github.com/mamaghar/go-admin/internal/logging"
	"github.com/mamaghar/go-admin/pkg/interfaces"
)

// LoginAPI is the slice of the API client the auth service needs.
type LoginAPI interface {
	Login(ctx context.Context, email, password string) (*apiclient.Credentials, error)
}

// Service drives the operator's login lifecycle against the backend and the
// in-memory token store.
type Service struct {
	api    LoginAPI
	store  interfaces.TokenStore
	logger interfaces.Logger
}

// Option configures the service.
type Option func(*Service)

// WithLogger injects the auth logger namespace.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs an auth service around the given API and token store.
func New(api LoginAPI, store interfaces.TokenStore, opts ...Option) *Service {
	s := &Service{
		api:    api,
		store:  store,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login authenticates with the backend and stashes the returned token for
// subsequent requests. Blank credentials fail locally without a request.
func (s *Service) Login(ctx context.Context, email, password string) (*apiclient.Credentials, error) {
	errs := validation.Errors{}
	if strings.TrimSpace(email) == "" {
		errs["email"] = validation.NewError("validation_required", "email is required")
	}
	if strings.TrimSpace(password) == "" {
		errs["password"] = validation.NewError("validation_required", "password is required")
	}
	if len(errs) > 0 {
		return nil, goerrors.Wrap(errs, goerrors.CategoryValidation, "auth: invalid login input")
	}

	creds, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("auth.login.failed", "email", email)
		return nil, err
	}
	if creds.Token == "" {
		return nil, goerrors.New("auth: login response missing token", goerrors.CategoryExternal)
	}

	s.store.Set(creds.Token)
	s.logger.Info("auth.login.success", "email", email)
	return creds, nil
}

// Logout drops the stored token. The backend keeps no session state to
// invalidate.
func (s *Service) Logout() {
	s.store.Clear()
	s.logger.Info("auth.logout")
}

// Authenticated reports whether a token is currently held.
func (s *Service) Authenticated() bool {
	_, ok := s.store.Token()
	return ok
}
