package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaustubhgharat/rentify-sub000/internal/apperr"
	"github.com/kaustubhgharat/rentify-sub000/internal/model"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository/memory"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

func newAuthService() *service.AuthService {
	db := memory.New()
	return service.NewAuthService(db.Users(), token.NewIssuer("test-secret", time.Hour))
}

func TestSignupNormalizesAndHashes(t *testing.T) {
	svc := newAuthService()

	u, err := svc.Signup(context.Background(), service.SignupInput{
		Username: "  Priya_99 ",
		Email:    "Priya@Example.COM",
		Password: "hunter22",
		Role:     model.RoleStudent,
	})
	require.NoError(t, err)

	assert.Equal(t, "priya_99", u.Username)
	assert.Equal(t, "priya@example.com", u.Email)
	assert.NotEqual(t, "hunter22", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotNil(t, u.FavoriteListingIDs)
	assert.NotNil(t, u.FavoriteRoommatePostIDs)
}

func TestSignupRejectsBadInput(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, service.SignupInput{Username: "a", Email: "a@b.c", Password: "short", Role: model.RoleStudent})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Signup(ctx, service.SignupInput{Username: "a", Email: "a@b.c", Password: "longenough", Role: "admin"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Signup(ctx, service.SignupInput{Username: "", Email: "a@b.c", Password: "longenough", Role: model.RoleOwner})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestSignupDuplicateIsConflict(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, service.SignupInput{Username: "ravi", Email: "ravi@example.com", Password: "secret1", Role: model.RoleOwner})
	require.NoError(t, err)

	// Same username in different case still collides after normalization.
	_, err = svc.Signup(ctx, service.SignupInput{Username: "RAVI", Email: "other@example.com", Password: "secret1", Role: model.RoleOwner})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = svc.Signup(ctx, service.SignupInput{Username: "other", Email: "Ravi@example.com", Password: "secret1", Role: model.RoleOwner})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestSignInVerifiesPassword(t *testing.T) {
	db := memory.New()
	svc := service.NewAuthService(db.Users(), token.NewIssuer("test-secret", time.Hour))
	ctx := context.Background()

	created, err := svc.Signup(ctx, service.SignupInput{Username: "ravi", Email: "ravi@example.com", Password: "secret1", Role: model.RoleStudent})
	require.NoError(t, err)

	u, tok, err := svc.SignIn(ctx, "Ravi", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
	assert.NotEmpty(t, tok)

	_, _, err = svc.SignIn(ctx, "ravi", "wrongpass")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, _, err = svc.SignIn(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	u, err := svc.Signup(ctx, service.SignupInput{Username: "ravi", Email: "ravi@example.com", Password: "secret1", Role: model.RoleStudent})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, u.ID.Hex(), "wrongpass", "newsecret")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	err = svc.ChangePassword(ctx, u.ID.Hex(), "secret1", "tiny")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	require.NoError(t, svc.ChangePassword(ctx, u.ID.Hex(), "secret1", "newsecret"))

	_, _, err = svc.SignIn(ctx, "ravi", "secret1")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	_, _, err = svc.SignIn(ctx, "ravi", "newsecret")
	assert.NoError(t, err)
}
