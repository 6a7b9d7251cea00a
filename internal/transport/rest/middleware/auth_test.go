package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/model"
	"careercompass/internal/repository"
	"careercompass/internal/service"
)

type singleUserRepo struct {
	user *model.User
}

func (r *singleUserRepo) Create(ctx context.Context, user *model.User) error {
	r.user = user
	return nil
}

func (r *singleUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, repository.ErrNotFound
}

func (r *singleUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, repository.ErrNotFound
}

func setupMiddleware(t *testing.T) (*AuthMiddleware, string, string) {
	t.Helper()
	authSvc := service.NewAuthService(&singleUserRepo{}, "test-secret")
	resp, err := authSvc.Register(context.Background(), &model.RegisterRequest{
		Email:    "user@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	return NewAuthMiddleware(authSvc), resp.Token, resp.User.ID
}

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(GetUserID(r.Context())))
	})
}

func TestRequireUserAcceptsValidToken(t *testing.T) {
	mw, token, userID := setupMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireUser(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, rec.Body.String())
}

func TestRequireUserRejectsMissingHeader(t *testing.T) {
	mw, _, _ := setupMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := httptest.NewRecorder()

	mw.RequireUser(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUserRejectsMalformedHeader(t *testing.T) {
	mw, token, _ := setupMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Authorization", token) // no Bearer prefix
	rec := httptest.NewRecorder()

	mw.RequireUser(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUserRejectsForgedToken(t *testing.T) {
	mw, _, _ := setupMiddleware(t)
	otherSvc := service.NewAuthService(&singleUserRepo{}, "other-secret")
	forged, err := otherSvc.Register(context.Background(), &model.RegisterRequest{
		Email:    "forger@example.com",
		Password: "pw",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+forged.Token)
	rec := httptest.NewRecorder()

	mw.RequireUser(protectedEcho(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
