package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type ctxKey string

const ContextUserKey ctxKey = "user"

// User is the authenticated identity attached to each protected request.
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Name       string `json:"nom"`
	EmployeeID int64  `json:"employee_id"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}

// Credentials is what the store returns for a login attempt.
type Credentials struct {
	EmployeeID   int64
	Email        string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// Claims represents JWT token claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates signed access tokens.
type TokenGenerator interface {
	GenerateAccessToken(u User) (token string, expiresAt time.Time, err error)
	ValidateToken(tokenString string) (*Claims, error)
}
