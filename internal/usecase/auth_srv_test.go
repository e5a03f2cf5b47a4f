package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(users *fakeUserRepo) AuthService {
	config := &utils.Config{
		App: utils.AppConfig{AdminKey: "let-me-in"},
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}
	return NewAuthService(&repository.Repository{User: users}, config, nopLog)
}

func TestRegisterAndLogin(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &request.RegisterRequest{Username: "ana", Email: "Ana@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", reg.User.Email)
	assert.Equal(t, string(entity.RoleUser), reg.User.Role)
	assert.True(t, reg.User.NotificationPreferences.Email)

	identity, err := utils.ParseToken("test-secret", reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, identity.UserID.String())

	_, err = svc.Register(ctx, &request.RegisterRequest{Username: "other", Email: "ana@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "User already exists", utils.AsAppError(err).Message)

	login, err := svc.Login(ctx, &request.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.Equal(t, utils.KindValidation, utils.ErrorKindOf(err))
	assert.Equal(t, "Invalid credentials", utils.AsAppError(err).Message)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.Equal(t, "Invalid credentials", utils.AsAppError(err).Message)
}

func TestRegisterAdminNeedsKey(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{Username: "root", Email: "root@example.com", Password: "secret1", Role: "admin", AdminKey: "guess"})
	assert.Equal(t, utils.KindForbidden, utils.ErrorKindOf(err))

	got, err := svc.Register(ctx, &request.RegisterRequest{Username: "root", Email: "root@example.com", Password: "secret1", Role: "admin", AdminKey: "let-me-in"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleAdmin), got.User.Role)
}
