package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/elegance/storefront/internal/domain"
	"go.uber.org/zap"
)

const minPasswordLength = 6

// AuthService simulates sign-in: any well-formed credentials succeed after
// a delay and produce the same demo user.
type AuthService struct {
	loginDelay time.Duration
	logger     *zap.Logger
}

// NewAuthService creates an auth service that waits loginDelay before answering
func NewAuthService(loginDelay time.Duration, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		loginDelay: loginDelay,
		logger:     logger.Named("auth"),
	}
}

// Login validates the credentials' shape and returns the demo user.
// It returns ctx.Err() if ctx ends before the simulated delay does.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("%w: please enter a valid email address", domain.ErrInvalidRequest)
	}
	email = addr.Address
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidRequest, minPasswordLength)
	}

	if err := simulateLatency(ctx, s.loginDelay); err != nil {
		return nil, err
	}

	s.logger.Info("login succeeded", zap.String("email", email))
	return &domain.User{
		ID:    "1",
		Name:  "John Doe",
		Email: email,
	}, nil
}

// simulateLatency stands in for a network round trip
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
