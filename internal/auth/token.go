package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/golang-jwt/jwt/v5"
)

type JWTTokenGenerator struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
	now    func() time.Time
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = internal.DefaultAccessTokenDuration
	}
	return &JWTTokenGenerator{
		Secret: []byte(secret),
		TTL:    ttl,
		Issuer: "timeclock",
		now:    time.Now,
	}
}

// GenerateAccessToken signs an HS256 token embedding identity, role and display name.
func (j *JWTTokenGenerator) GenerateAccessToken(u User) (string, time.Time, error) {
	issuedAt := j.now()
	expiresAt := issuedAt.Add(j.TTL)
	subject := strconv.FormatInt(u.ID, 10)

	claims := &Claims{
		UserID: subject,
		Email:  u.Email,
		Role:   u.Role,
		Name:   u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}
	if _, err := strconv.ParseInt(claims.UserID, 10, 64); err != nil {
		return nil, internal.ErrInvalidToken
	}

	return claims, nil
}

// UserFromClaims rebuilds the request identity from validated claims.
func UserFromClaims(c *Claims) *User {
	id, _ := strconv.ParseInt(c.UserID, 10, 64)
	return &User{
		ID:         id,
		Email:      c.Email,
		Role:       c.Role,
		Name:       c.Name,
		EmployeeID: id,
	}
}
