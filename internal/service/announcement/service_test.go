package announcement

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
)

var (
	admin  = model.Principal{ID: "PHSC2601001", Role: model.RoleAdmin}
	member = model.Principal{ID: "PHSC2601002", Role: model.RoleMember}
)

func newTestService(t *testing.T) (*announcementService, *repository.Repositories) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Announcement{}))
	repos := repository.NewRepositories(db)
	return NewAnnouncementService(repos), repos
}

func TestCreateAnnouncementDefaults(t *testing.T) {
	svc, repos := newTestService(t)

	id, err := svc.CreateAnnouncement(admin, request.CreateAnnouncementRequest{
		Title:   "Meeting",
		Message: "Monthly meeting this Saturday.",
	})
	require.NoError(t, err)

	rows, err := repos.Announcement.FindAllByDateDesc()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, model.PriorityNormal, rows[0].Priority)
	assert.False(t, rows[0].AnnouncementDate.IsZero())
}

func TestCreateAnnouncementRequiresAdmin(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateAnnouncement(member, request.CreateAnnouncementRequest{
		Title:   "Nope",
		Message: "members cannot post",
	})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestDeleteAnnouncement(t *testing.T) {
	svc, repos := newTestService(t)

	id, err := svc.CreateAnnouncement(admin, request.CreateAnnouncementRequest{
		Title:    "Urgent",
		Message:  "Contribution deadline moved.",
		Priority: model.PriorityHigh,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAnnouncement(admin, id))

	rows, err := repos.Announcement.FindAllByDateDesc()
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Deleting again is a no-op.
	assert.NoError(t, svc.DeleteAnnouncement(admin, id))
}

func TestDeleteAnnouncementRequiresAdmin(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteAnnouncement(member, 1)
	require.Error(t, err)
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}
