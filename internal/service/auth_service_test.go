package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/model"
	"careercompass/internal/repository"
)

// memUserRepo is an in-memory UserRepo for service tests.
type memUserRepo struct {
	byID    map[string]*model.User
	byEmail map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")
	ctx := context.Background()

	registered, err := svc.Register(ctx, &model.RegisterRequest{
		Email:    "  Student@Example.COM ",
		Password: "correct horse",
		Name:     "Student",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	// Email is normalized before storage.
	assert.Equal(t, "student@example.com", registered.User.Email)
	assert.NotEqual(t, "correct horse", registered.User.PasswordHash)

	logged, err := svc.Login(ctx, &model.LoginRequest{
		Email:    "student@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, logged.User.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &model.RegisterRequest{Email: "A@B.C", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsEmptyCredentials(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Email: "", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(context.Background(), &model.RegisterRequest{Email: "a@b.c", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{Email: "a@b.c", Password: "right"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &model.LoginRequest{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &model.LoginRequest{Email: "nobody@b.c", Password: "right"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")
	ctx := context.Background()

	registered, err := svc.Register(ctx, &model.RegisterRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Tokens signed with a different secret are rejected.
	other := NewAuthService(newMemUserRepo(), "other-secret")
	_, err = other.ValidateToken(registered.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
