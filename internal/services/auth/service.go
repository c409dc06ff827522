// Package auth issues and validates the JWTs that protect the admin and
// onboarding surfaces. The signing secret is injected at construction, never
// read from process globals at call time.
package auth

import (
	"context"
	"errors"
	"time"

	apperr "creditcall/internal/errors"
	"creditcall/internal/models"
	"creditcall/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 15 * time.Minute

var ErrInvalidCredentials = &apperr.DomainError{
	Kind:    apperr.KindClient,
	Code:    "INVALID_CREDENTIALS",
	Message: "invalid email or password",
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ParseToken(tokenStr string) (*models.UserClaims, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

type service struct {
	users  repositories.UserRepository
	secret []byte
	issuer string
}

func NewService(users repositories.UserRepository, secret string) Service {
	if users == nil {
		panic("user repository is required")
	}
	if secret == "" {
		panic("jwt secret is required")
	}
	return &service{users: users, secret: []byte(secret), issuer: "creditcall-api"}
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &LoginResult{Token: token, User: user}, nil
}

func (s *service) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   user.ID,
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *service) ParseToken(tokenStr string) (*models.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func (s *service) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}
	return user, nil
}
