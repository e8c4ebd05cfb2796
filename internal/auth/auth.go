package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/edwincheahmp4/questboard/internal/storage"
)

const minPasswordLen = 6

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", minPasswordLen)
	ErrBadEmail           = errors.New("email address is not valid")
)

// Identity is the authenticated principal threaded through the rest of the
// system. It carries no profile data; that lives in the profile store.
type Identity struct {
	UserID string
	Email  string
}

type Auth struct {
	users  *storage.UserRepo
	tokens *TokenSigner
}

func New(users *storage.UserRepo, tokens *TokenSigner) *Auth {
	return &Auth{users: users, tokens: tokens}
}

// SignUp creates the auth identity only. Profile bootstrap is the caller's
// second step.
func (a *Auth) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrBadEmail
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	existing, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &storage.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return &Identity{UserID: u.ID, Email: u.Email}, nil
}

// SignIn checks credentials and returns the identity plus a signed session
// token the caller can persist.
func (a *Auth) SignIn(ctx context.Context, email, password string) (*Identity, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return &Identity{UserID: u.ID, Email: u.Email}, token, nil
}

// Verify resolves a persisted session token back to an identity.
func (a *Auth) Verify(token string) (*Identity, error) {
	return a.tokens.Verify(token)
}
