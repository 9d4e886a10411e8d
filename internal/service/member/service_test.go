package member

import (
	"fmt"
	"sync"
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

// fakeUploader records stores and deletes without touching disk.
type fakeUploader struct {
	stored  map[string][]byte
	deleted []string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{stored: make(map[string][]byte)}
}

func (f *fakeUploader) Store(folder, name string, data []byte) (string, error) {
	url := "/static/uploads/" + folder + "/" + name
	f.stored[url] = data
	return url, nil
}

func (f *fakeUploader) Delete(url string) error {
	f.deleted = append(f.deleted, url)
	delete(f.stored, url)
	return nil
}

// newTestRepos opens a fresh shared in-memory database so every pooled
// connection sees the same data.
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Member{},
		&model.Contribution{},
		&model.Announcement{},
		&model.ChatMessage{},
	))
	return repository.NewRepositories(db)
}

func newTestService(t *testing.T) (*memberService, *repository.Repositories, *fakeUploader) {
	t.Helper()
	repos := newTestRepos(t)
	uploader := newFakeUploader()
	return NewMemberService(repos, uploader), repos, uploader
}

func createRequest(n int) request.CreateMemberRequest {
	return request.CreateMemberRequest{
		Name:     fmt.Sprintf("Member %d", n),
		IDNumber: fmt.Sprintf("900101%07d", n),
		Email:    fmt.Sprintf("member%d@example.com", n),
	}
}

func TestCreateMemberAllocatesSequentialIDs(t *testing.T) {
	svc, _, _ := newTestService(t)

	for i, want := range []string{"PHSC2601001", "PHSC2601002", "PHSC2601003"} {
		id, err := svc.CreateMember(admin, createRequest(i))
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestCreateMemberReusesFreedNumber(t *testing.T) {
	svc, _, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateMember(admin, createRequest(i))
		require.NoError(t, err)
	}
	require.NoError(t, svc.DeleteMember(admin, "PHSC2601002"))

	id, err := svc.CreateMember(admin, createRequest(9))
	require.NoError(t, err)
	assert.Equal(t, "PHSC2601002", id, "freed sequence number should be reallocated")
}

func TestCreateMemberDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateMember(admin, createRequest(1))
	require.NoError(t, err)

	dup := createRequest(2)
	dup.Email = "member1@example.com"
	_, err = svc.CreateMember(admin, dup)
	require.Error(t, err)
	assert.Equal(t, errorx.CodeConflict, errorx.GetCode(err))
}

func TestCreateMemberRequiresAdmin(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateMember(member, createRequest(1))
	require.Error(t, err)
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestCreateMemberDefaultsPassword(t *testing.T) {
	svc, repos, _ := newTestService(t)

	id, err := svc.CreateMember(admin, createRequest(1))
	require.NoError(t, err)

	stored, err := repos.Member.FindByID(id)
	require.NoError(t, err)
	assert.True(t, stored.CheckPassword("member123"))
	assert.Equal(t, model.RoleMember, stored.Role)
	assert.Equal(t, "Active", stored.Status)
}

func TestConcurrentCreatesAllocateDistinctIDs(t *testing.T) {
	svc, _, _ := newTestService(t)

	const workers = 5
	ids := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = svc.CreateMember(admin, createRequest(i))
		}(i)
	}
	wg.Wait()

	seen := make(map[string]struct{}, workers)
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		_, dup := seen[ids[i]]
		assert.False(t, dup, "identifier %s allocated twice", ids[i])
		seen[ids[i]] = struct{}{}
	}
}

func TestGetMemberGating(t *testing.T) {
	svc, _, _ := newTestService(t)

	id, err := svc.CreateMember(admin, createRequest(1))
	require.NoError(t, err)

	self := model.Principal{ID: id, Role: model.RoleMember}
	got, err := svc.GetMember(self, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = svc.GetMember(member, id)
	require.Error(t, err)
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	_, err = svc.GetMember(admin, id)
	assert.NoError(t, err)
}

func TestGetMemberNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetMember(admin, "PHSC2601999")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestUpdateMemberMissingIDIsNoOp(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.UpdateMember(admin, "PHSC2601999", request.UpdateMemberRequest{
		Name:     "Ghost",
		IDNumber: "9001010000000",
		Email:    "ghost@example.com",
	})
	assert.NoError(t, err)
}

func TestUpdateMemberOverwritesFields(t *testing.T) {
	svc, repos, _ := newTestService(t)

	id, err := svc.CreateMember(admin, createRequest(1))
	require.NoError(t, err)

	err = svc.UpdateMember(admin, id, request.UpdateMemberRequest{
		Name:     "Renamed",
		IDNumber: "9001010000001",
		Email:    "renamed@example.com",
		BankName: "Capitec",
	})
	require.NoError(t, err)

	stored, err := repos.Member.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, "renamed@example.com", stored.Email)
	assert.Equal(t, "Capitec", stored.BankName)
}

func TestDeleteMemberRemovesContributions(t *testing.T) {
	svc, repos, _ := newTestService(t)

	id, err := svc.CreateMember(admin, createRequest(1))
	require.NoError(t, err)
	require.NoError(t, repos.Contribution.Create(&model.Contribution{
		MemberID: id, Month: "January 2026", Amount: 500,
	}))

	require.NoError(t, svc.DeleteMember(admin, id))

	rows, err := repos.Contribution.FindByMember(id)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// newEnforcedFKRepos migrates the way production does, with foreign key
// constraints created and enforced, so deletes hit the real sender
// constraint on chat_messages.
func newEnforcedFKRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Member{},
		&model.Contribution{},
		&model.Announcement{},
		&model.ChatMessage{},
	))
	return repository.NewRepositories(db)
}

func TestDeleteMemberRemovesChatMessages(t *testing.T) {
	repos := newEnforcedFKRepos(t)
	svc := NewMemberService(repos, newFakeUploader())

	id, err := svc.CreateMember(admin, createRequest(1))
	require.NoError(t, err)
	require.NoError(t, repos.ChatMessage.Create(&model.ChatMessage{
		SenderID: id, Content: "hello all",
	}))

	require.NoError(t, svc.DeleteMember(admin, id))

	messages, err := repos.ChatMessage.FindRecent(10, 0)
	require.NoError(t, err)
	assert.Empty(t, messages)
	_, err = repos.Member.FindByID(id)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestDeleteMemberNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.DeleteMember(admin, "PHSC2601999")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestUploadProfilePhotoRejectsBadType(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UploadProfilePhoto(admin, []byte("plain text"), "text/plain")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidArgument, errorx.GetCode(err))
}

func TestUploadProfilePhotoRecordsURL(t *testing.T) {
	svc, repos, uploader := newTestService(t)

	id, err := svc.CreateMember(admin, createRequest(1))
	require.NoError(t, err)
	self := model.Principal{ID: id, Role: model.RoleMember}

	url, err := svc.UploadProfilePhoto(self, []byte{0xFF, 0xD8, 0xFF}, "image/jpeg")
	require.NoError(t, err)
	assert.Contains(t, uploader.stored, url)

	stored, err := repos.Member.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, url, stored.PhotoURL)
}

func TestDeleteProfilePhotoClearsReference(t *testing.T) {
	svc, repos, uploader := newTestService(t)

	id, err := svc.CreateMember(admin, createRequest(1))
	require.NoError(t, err)
	self := model.Principal{ID: id, Role: model.RoleMember}

	url, err := svc.UploadProfilePhoto(self, []byte{0xFF, 0xD8, 0xFF}, "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfilePhoto(self))
	assert.Contains(t, uploader.deleted, url)

	stored, err := repos.Member.FindByID(id)
	require.NoError(t, err)
	assert.Empty(t, stored.PhotoURL)
}

func TestListMembersRequiresAdmin(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ListMembers(member)
	require.Error(t, err)
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}
