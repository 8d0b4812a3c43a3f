package sessionservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ringside-club/ringside/app/modules/gateway"
	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
	"go.opentelemetry.io/otel/trace"
)

// service implements the Service interface.
type service struct {
	api    AuthAPI
	logger *slog.Logger
	tracer trace.Tracer

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService creates a new session service.
func NewService(api AuthAPI, logger *slog.Logger, tracer trace.Tracer) Service {
	return &service{
		api:      api,
		logger:   logger,
		tracer:   tracer,
		inFlight: make(map[string]struct{}),
	}
}

// Resolve rehydrates a session from a persisted credential.
func (s *service) Resolve(ctx context.Context, credential string) (*sessiondomain.Session, error) {
	ctx, span := s.tracer.Start(ctx, "SessionService.Resolve")
	defer span.End()

	if credential == "" {
		return sessiondomain.Anonymous(), nil
	}

	identity, err := s.api.Me(gateway.WithCredential(ctx, credential))
	if err != nil {
		// Any failure path discards the credential: a dead credential is
		// never carried forward silently.
		s.logger.InfoContext(ctx, "Credential rehydration failed, discarding",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", ErrStaleCredential, err)
	}

	return &sessiondomain.Session{
		Identity:   identity,
		Credential: credential,
	}, nil
}

// Login exchanges credentials for a populated session.
func (s *service) Login(ctx context.Context, username, password string) (*sessiondomain.Session, error) {
	ctx, span := s.tracer.Start(ctx, "SessionService.Login")
	defer span.End()

	if !s.begin(username) {
		return nil, ErrLoginInFlight
	}
	defer s.end(username)

	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrUnauthorized), errors.Is(err, gateway.ErrBadRequest):
			s.logger.InfoContext(ctx, "Login rejected",
				slog.String("username", username),
			)
			return nil, ErrInvalidCredentials
		default:
			s.logger.WarnContext(ctx, "Login failed",
				slog.String("username", username),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
		}
	}

	s.logger.InfoContext(ctx, "Login succeeded",
		slog.String("username", username),
		slog.String("role", result.Identity.Role.String()),
	)

	return &sessiondomain.Session{
		Identity:   result.Identity,
		Credential: result.Credential,
	}, nil
}

// Logout clears local session state. The persisted credential is removed by
// the HTTP layer; no network call is required to succeed.
func (s *service) Logout(ctx context.Context) {
	s.logger.InfoContext(ctx, "Logged out")
}

func (s *service) begin(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, pending := s.inFlight[username]; pending {
		return false
	}
	s.inFlight[username] = struct{}{}
	return true
}

func (s *service) end(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, username)
}
