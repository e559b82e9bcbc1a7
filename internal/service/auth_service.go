package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

const minPasswordLen = 6

// AuthService handles signup, sign-in and password changes.
type AuthService struct {
	users  repository.UserRepository
	issuer *token.Issuer
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repository.UserRepository, issuer *token.Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// SignupInput is the payload for account creation.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Signup creates an account. Username and email are normalized to lower
// case before insert; the store's unique indexes decide conflicts, so two
// concurrent signups with the same name yield exactly one success.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" || email == "" {
		return nil, fmt.Errorf("username and email are required: %w", apperr.ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, apperr.ErrInvalidInput)
	}
	if !model.ValidRole(in.Role) {
		return nil, fmt.Errorf("role must be student or owner: %w", apperr.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	u := &model.User{
		ID:                      primitive.NewObjectID(),
		Username:                username,
		Email:                   email,
		PasswordHash:            string(hash),
		Role:                    in.Role,
		FavoriteListingIDs:      []primitive.ObjectID{},
		FavoriteRoommatePostIDs: []primitive.ObjectID{},
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignIn verifies credentials and returns the user plus a session token
// carrying a snapshot of their claims.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("incorrect username or password: %w", apperr.ErrUnauthenticated)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", fmt.Errorf("incorrect password: %w", apperr.ErrUnauthenticated)
	}

	tok, err := s.issuer.Issue(u.ID.Hex(), u.Username, u.Email, u.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, tok, nil
}

// Me returns the live user record for a session id.
func (s *AuthService) Me(ctx context.Context, actorID string) (*model.User, error) {
	id, err := parseID(actorID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// ChangePassword re-verifies the current password before storing a new
// hash. This is the only way a password is ever mutated.
func (s *AuthService) ChangePassword(ctx context.Context, actorID, current, next string) error {
	id, err := parseID(actorID)
	if err != nil {
		return err
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
		return fmt.Errorf("incorrect password: %w", apperr.ErrUnauthenticated)
	}
	if len(next) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, apperr.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePasswordHash(ctx, id, string(hash))
}
