package service

import (
	"context"
	"errors"

	"github.com/hirebase/hirebase-go/internal/crypto"
	"github.com/hirebase/hirebase-go/internal/model"
	"github.com/hirebase/hirebase-go/internal/repository"
)

// ErrInvalidCredentials covers unknown usernames and wrong passwords alike,
// so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError is a registration outcome whose text travels to the client
// verbatim. It is a 401-class failure, not an infrastructure error.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// UserStore is the slice of the credential store the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService verifies credentials and creates accounts.
type AuthService struct {
	store UserStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore) *AuthService {
	return &AuthService{store: store}
}

// Login verifies a username/password pair against the store. Unknown users
// and wrong passwords both come back as ErrInvalidCredentials; infrastructure
// failures pass through unchanged. Login performs no writes.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Register validates the candidate fields, hashes the password with a fresh
// salt and persists a new person with the applicant role. Missing fields and
// duplicate username/email come back as ValidationError; exactly one store
// write happens on success.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Surname:      req.Surname,
		Pnr:          req.Pnr,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		RoleID:       model.RoleApplicant,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ValidationError("username or email is already registered")
		}
		return nil, err
	}

	return user, nil
}

func validateRegistration(req model.RegisterRequest) error {
	switch {
	case req.Name == "":
		return ValidationError("name is required")
	case req.Surname == "":
		return ValidationError("surname is required")
	case req.Email == "":
		return ValidationError("email is required")
	case req.Username == "":
		return ValidationError("username is required")
	case req.Password == "":
		return ValidationError("password is required")
	}
	return nil
}
