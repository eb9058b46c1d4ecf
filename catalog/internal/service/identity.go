package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

// Login checks the credentials and issues a token carrying the admin claim.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if s.tokens == nil {
		return model.LoginResponse{}, errors.New("token issuer is not configured")
	}
	user, err := s.repo.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.LoginResponse{}, errs.ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.LoginResponse{}, errs.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(auth.Session{UserID: user.ID, Email: user.Email, IsAdmin: user.Admin})
	if err != nil {
		return model.LoginResponse{}, err
	}
	return model.LoginResponse{Token: token, Email: user.Email, IsAdmin: user.Admin}, nil
}

func (s *Service) AddUser(ctx context.Context, email, password string, admin bool) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return model.User{}, errs.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "bcrypt")
	}
	user := model.User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: string(hash),
		Admin:        admin,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// GrantAdmin sets the admin claim of an existing account.
func (s *Service) GrantAdmin(ctx context.Context, email string) error {
	return s.repo.SetAdmin(ctx, strings.TrimSpace(email), true)
}
