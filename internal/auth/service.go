package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/frahmantamala/timeclock/internal"
)

type Repository interface {
	// GetCredentialsByEmail returns nil, nil when no employee matches.
	GetCredentialsByEmail(ctx context.Context, email string) (*Credentials, error)
}

// Service is the main auth service with dependencies
type Service struct {
	repo           Repository
	tokenGenerator TokenGenerator
	logger         *slog.Logger
}

func NewService(repo Repository, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		repo:           repo,
		tokenGenerator: tokenGen,
		logger:         logger,
	}
}

// Authenticate checks the credential against the stored hash and issues a token.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (*LoginResponse, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	creds, err := s.repo.GetCredentialsByEmail(ctx, dto.Email)
	if err != nil {
		s.logger.Error("failed to load credentials", "error", err)
		return nil, internal.NewInternalError("failed to load credentials", err)
	}
	if creds == nil || creds.PasswordHash == "" {
		s.logger.Warn("login rejected: unknown email", "email", dto.Email)
		return nil, internal.ErrInvalidCredentials
	}

	if err := VerifyPassword(creds.PasswordHash, dto.Password); err != nil {
		s.logger.Warn("login rejected: password mismatch", "employee_id", creds.EmployeeID)
		return nil, internal.ErrInvalidCredentials
	}

	user := User{
		ID:         creds.EmployeeID,
		Email:      creds.Email,
		Role:       creds.Role,
		Name:       strings.TrimSpace(creds.FirstName + " " + creds.LastName),
		EmployeeID: creds.EmployeeID,
	}

	token, expiresAt, err := s.tokenGenerator.GenerateAccessToken(user)
	if err != nil {
		s.logger.Error("failed to sign token", "error", err, "employee_id", user.ID)
		return nil, internal.NewInternalError("failed to sign token", err)
	}

	s.logger.Info("login succeeded", "employee_id", user.ID, "role", user.Role)
	return &LoginResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}
