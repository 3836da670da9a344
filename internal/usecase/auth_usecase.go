package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

const (
	adminRole        = "admin"
	sessionLifetime  = 2 * time.Hour
	defaultPasscode  = "1234"
	defaultJWTSecret = "your-super-secret-jwt-key-change-in-production"
)

// IAuthUseCase is the admin session guard: a fixed-passcode login that
// issues a signed, time-limited bearer token, and verification for the
// middleware gating mutating admin endpoints.

type IAuthUseCase interface {
	Login(ctx context.Context, password string) (token string, err error)
	Verify(ctx context.Context, token string) (role string, err error)
}

type AuthUseCase struct {
	passcode string
	secret   []byte
	now      func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase() *AuthUseCase {
	return &AuthUseCase{
		passcode: getenvDefault("ADMIN_PASSCODE", defaultPasscode),
		secret:   []byte(getenvDefault("JWT_SECRET", defaultJWTSecret)),
		now:      time.Now,
	}
}

func (u *AuthUseCase) Login(_ context.Context, password string) (string, error) {
	if password != u.passcode {
		log.Printf("[auth][usecase] login rejected")
		return "", ErrInvalidCredentials
	}

	now := u.now().UTC()
	claims := jwt.MapClaims{
		"role": adminRole,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(sessionLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", err
	}
	log.Printf("[auth][usecase] admin session issued")
	return token, nil
}

func (u *AuthUseCase) Verify(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return u.now() }))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	if role != adminRole {
		return "", ErrInvalidToken
	}
	return role, nil
}
