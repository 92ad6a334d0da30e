// Package auth logs admins, clients and technicians in and resolves the user
// behind an access token.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
	"github.com/caffeine-junky/jobconnect/internal/pkg/jwt"

	"github.com/google/uuid"
)

type TokenService interface {
	GenerateToken(userID uuid.UUID, email, role string) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}

type Service struct {
	admins      Account
	clients     Account
	technicians Account
	tokens      TokenService
}

func NewService(admins, clients, technicians Account, tokens TokenService) *Service {
	return &Service{admins: admins, clients: clients, technicians: technicians, tokens: tokens}
}

func (s *Service) accountFor(role Role) Account {
	switch role {
	case RoleAdmin:
		return s.admins
	case RoleClient:
		return s.clients
	case RoleTechnician:
		return s.technicians
	}
	return nil
}

// Login checks credentials against the store of the given role. Every
// rejection carries the same message.
func (s *Service) Login(ctx context.Context, email, password, role string) (*Token, error) {
	r, ok := ParseRole(role)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	id, err := s.accountFor(r).Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) || errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !id.Account.IsActive {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(id.Account.ID, id.Account.Email, r.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &Token{AccessToken: token, TokenType: "bearer"}, nil
}

// CurrentUser resolves a token to its still-existing, active account.
func (s *Service) CurrentUser(ctx context.Context, token string) (*CurrentUser, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	r, ok := ParseRole(claims.Role)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, err := s.accountFor(r).ReadOneByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !id.Account.IsActive {
		return nil, ErrInvalidToken
	}
	return &CurrentUser{Role: r, User: id.Profile}, nil
}
