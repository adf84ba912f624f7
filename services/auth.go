package services

import (
	"context"
	"errors"
	"strings"

	"github.com/junaidrashid-git/storefront-api/apperr"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

// errInvalidCredentials is returned for an unknown email and for a wrong
// password alike.
var errInvalidCredentials = apperr.NewAuth("Invalid credentials")

type AuthService struct {
	store  store.Store
	tokens *auth.TokenIssuer
}

func NewAuthService(s store.Store, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{store: s, tokens: tokens}
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is what a successful register or login hands back.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates a customer account and signs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return Session{}, apperr.NewValidation("All fields required")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return Session{}, unavailable(err, "Registration failed")
	}

	user := models.User{
		Email:        email,
		Name:         name,
		Role:         models.RoleCustomer,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return Session{}, apperr.NewConflict("Email already registered")
		}
		return Session{}, unavailable(err, "Registration failed")
	}
	return s.session(user)
}

// Login checks credentials. An unknown email and a wrong password fail
// with the same error.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return Session{}, apperr.NewValidation("Email and password required")
	}

	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return Session{}, errInvalidCredentials
		}
		return Session{}, unavailable(err, "Login failed")
	}

	ok, err := auth.CheckPassword(user.PasswordHash, in.Password)
	if err != nil {
		return Session{}, unavailable(err, "Login failed")
	}
	if !ok {
		return Session{}, errInvalidCredentials
	}
	return s.session(user)
}

// Authenticate verifies an Authorization header value.
func (s *AuthService) Authenticate(header string) (auth.Principal, error) {
	return s.tokens.Authenticate(header)
}

// Me reloads the caller's account.
func (s *AuthService) Me(ctx context.Context, caller auth.Principal) (models.User, error) {
	user, err := s.store.UserByID(ctx, caller.UserID)
	if err != nil {
		if isNotFound(err) {
			return models.User{}, apperr.NewNotFound("User not found")
		}
		return models.User{}, unavailable(err, "Failed to fetch user")
	}
	return safe(user), nil
}

func (s *AuthService) session(user models.User) (Session, error) {
	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return Session{}, unavailable(err, "Token generation failed")
	}
	return Session{User: safe(user), Token: token}, nil
}

// safe strips the password hash before a user leaves the service.
func safe(user models.User) models.User {
	user.PasswordHash = ""
	return user
}

// ProvisionAdmin creates an admin account directly in the store when no
// account uses email yet. It is a start-up task; no request path can grant
// the admin role.
func ProvisionAdmin(ctx context.Context, s store.Store, email, password, name string) (bool, error) {
	if _, err := s.UserByEmail(ctx, email); err == nil {
		return false, nil
	} else if !isNotFound(err) {
		return false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	user := models.User{Email: email, Name: name, Role: models.RoleAdmin, PasswordHash: hash}
	if err := s.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
