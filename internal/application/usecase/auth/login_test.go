package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/internal/testutil"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func newLogin(t *testing.T) (*LoginUseCase, *auth.JWTService, *user.User) {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	admin := &user.User{ID: uuid.New(), Email: "admin@example.com", PasswordHash: hash}
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewLoginUseCase(testutil.NewUserRepo(admin), jwtSvc, logger.NewNopLogger()), jwtSvc, admin
}

func TestLogin_Success(t *testing.T) {
	uc, jwtSvc, admin := newLogin(t)

	out, err := uc.Execute(context.Background(), LoginInput{Email: " admin@example.com ", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, admin.Email, out.Email)

	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
}

func TestLogin_BadCredentialsAreUnauthorized(t *testing.T) {
	uc, _, _ := newLogin(t)

	_, err := uc.Execute(context.Background(), LoginInput{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = uc.Execute(context.Background(), LoginInput{Email: "ghost@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.NotErrorIs(t, err, apperror.ErrNotFound)
}
