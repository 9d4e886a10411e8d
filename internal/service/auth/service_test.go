package auth

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/util/jwt"
)

func newTestService(t *testing.T) (*authService, *repository.Repositories) {
	t.Helper()
	jwt.Init("test-signing-secret", 24)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Member{}))

	repos := repository.NewRepositories(db)
	require.NoError(t, repos.Member.Create(&model.Member{
		ID:          "PHSC2601001",
		Name:        "Thabo Mokoena",
		IDNumber:    "9001015800087",
		Email:       "thabo@example.com",
		RawPassword: "admin123",
		Role:        model.RoleAdmin,
	}))
	return NewAuthService(repos), repos
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _ := newTestService(t)

	data, err := svc.Login(request.LoginRequest{Email: "thabo@example.com", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, data.Token)
	assert.Equal(t, "PHSC2601001", data.Member.ID)

	claims, err := jwt.ParseToken(data.Token)
	require.NoError(t, err)
	assert.Equal(t, "PHSC2601001", claims.MemberID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, "Thabo Mokoena", claims.Name)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)

	_, badPassword := svc.Login(request.LoginRequest{Email: "thabo@example.com", Password: "wrong"})
	require.Error(t, badPassword)

	_, badEmail := svc.Login(request.LoginRequest{Email: "nobody@example.com", Password: "admin123"})
	require.Error(t, badEmail)

	// Same code and message, so responses never reveal which emails exist.
	assert.Equal(t, errorx.CodeUnauthenticated, errorx.GetCode(badPassword))
	assert.Equal(t, errorx.CodeUnauthenticated, errorx.GetCode(badEmail))
	assert.Equal(t, badPassword.Error(), badEmail.Error())
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	svc, _ := newTestService(t)
	principal := model.Principal{ID: "PHSC2601001", Role: model.RoleAdmin}

	err := svc.ChangePassword(principal, request.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword1",
	})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeUnauthenticated, errorx.GetCode(err))
}

func TestChangePasswordRejectsShortPassword(t *testing.T) {
	svc, _ := newTestService(t)
	principal := model.Principal{ID: "PHSC2601001", Role: model.RoleAdmin}

	err := svc.ChangePassword(principal, request.ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "short",
	})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidArgument, errorx.GetCode(err))
}

func TestChangePasswordRotatesHash(t *testing.T) {
	svc, repos := newTestService(t)
	principal := model.Principal{ID: "PHSC2601001", Role: model.RoleAdmin}

	err := svc.ChangePassword(principal, request.ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "newpassword1",
	})
	require.NoError(t, err)

	stored, err := repos.Member.FindByID("PHSC2601001")
	require.NoError(t, err)
	assert.True(t, stored.CheckPassword("newpassword1"))
	assert.False(t, stored.CheckPassword("admin123"))

	_, err = svc.Login(request.LoginRequest{Email: "thabo@example.com", Password: "newpassword1"})
	assert.NoError(t, err)
}
