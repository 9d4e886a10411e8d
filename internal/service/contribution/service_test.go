package contribution

import (
	"bytes"
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
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/constants"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
)

var (
	admin = model.Principal{ID: "PHSC2601001", Role: model.RoleAdmin}
	owner = model.Principal{ID: "PHSC2601002", Role: model.RoleMember}
	other = model.Principal{ID: "PHSC2601003", Role: model.RoleMember}
)

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

func newTestService(t *testing.T) (*contributionService, *repository.Repositories, *fakeUploader) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Member{}, &model.Contribution{}))

	repos := repository.NewRepositories(db)
	for i, p := range []model.Principal{admin, owner, other} {
		require.NoError(t, repos.Member.Create(&model.Member{
			ID:          p.ID,
			Name:        fmt.Sprintf("Member %d", i),
			IDNumber:    fmt.Sprintf("900101%07d", i),
			Email:       fmt.Sprintf("member%d@example.com", i),
			RawPassword: "member123",
			Role:        p.Role,
		}))
	}

	uploader := newFakeUploader()
	return NewContributionService(repos, uploader), repos, uploader
}

func TestCreateContributionPaidSetsPaymentDate(t *testing.T) {
	svc, repos, _ := newTestService(t)

	id, err := svc.CreateContribution(admin, request.CreateContributionRequest{
		MemberID: owner.ID, Month: "January 2026", Amount: 500, Status: model.ContributionPaid,
	})
	require.NoError(t, err)

	row, err := repos.Contribution.FindByID(id)
	require.NoError(t, err)
	assert.True(t, row.PaymentDate.Valid)
}

func TestCreateContributionDefaultsPending(t *testing.T) {
	svc, repos, _ := newTestService(t)

	id, err := svc.CreateContribution(admin, request.CreateContributionRequest{
		MemberID: owner.ID, Month: "January 2026", Amount: 500,
	})
	require.NoError(t, err)

	row, err := repos.Contribution.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.ContributionPending, row.Status)
	assert.False(t, row.PaymentDate.Valid)
}

func TestCreateContributionUnknownMember(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateContribution(admin, request.CreateContributionRequest{
		MemberID: "PHSC2601999", Month: "January 2026", Amount: 500,
	})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestCreateContributionRequiresAdmin(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateContribution(owner, request.CreateContributionRequest{
		MemberID: owner.ID, Month: "January 2026", Amount: 500,
	})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))
}

func TestUpdateStatusTogglesPaymentDate(t *testing.T) {
	svc, _, _ := newTestService(t)

	id, err := svc.CreateContribution(admin, request.CreateContributionRequest{
		MemberID: owner.ID, Month: "January 2026", Amount: 500,
	})
	require.NoError(t, err)

	row, err := svc.UpdateStatus(admin, id, model.ContributionPaid)
	require.NoError(t, err)
	assert.True(t, row.PaymentDate.Valid)

	row, err = svc.UpdateStatus(admin, id, model.ContributionPending)
	require.NoError(t, err)
	assert.False(t, row.PaymentDate.Valid, "reverting to Pending should clear the payment date")
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UpdateStatus(admin, 999, model.ContributionPaid)
	require.Error(t, err)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestAttachProofRejectsWrongType(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.AttachProof(owner, 1, []byte("hello"), "text/plain", "note.txt")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidArgument, errorx.GetCode(err))
}

func TestAttachProofRejectsOversize(t *testing.T) {
	svc, _, _ := newTestService(t)

	big := bytes.Repeat([]byte{0xFF}, int(constants.PROOF_MAX_SIZE)+1)
	_, err := svc.AttachProof(owner, 1, big, "image/jpeg", "huge.jpg")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidArgument, errorx.GetCode(err))
}

func TestAttachProofMissingRow(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.AttachProof(owner, 999, []byte{0xFF, 0xD8, 0xFF}, "image/jpeg", "slip.jpg")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestAttachProofOpenToAnyAuthenticatedCaller(t *testing.T) {
	svc, _, _ := newTestService(t)

	id, err := svc.CreateContribution(admin, request.CreateContributionRequest{
		MemberID: owner.ID, Month: "January 2026", Amount: 500,
	})
	require.NoError(t, err)

	for _, principal := range []model.Principal{owner, other, admin} {
		_, err = svc.AttachProof(principal, id, []byte{0xFF, 0xD8, 0xFF}, "image/jpeg", "slip.jpg")
		assert.NoError(t, err, principal.ID)
	}
}

func TestAttachProofResetsStatusToPending(t *testing.T) {
	svc, _, uploader := newTestService(t)

	id, err := svc.CreateContribution(admin, request.CreateContributionRequest{
		MemberID: owner.ID, Month: "January 2026", Amount: 500, Status: model.ContributionPaid,
	})
	require.NoError(t, err)

	row, err := svc.AttachProof(owner, id, []byte{0xFF, 0xD8, 0xFF}, "image/jpeg", "slip.jpg")
	require.NoError(t, err)

	assert.Equal(t, model.ContributionPending, row.Status, "a fresh proof waits for admin review")
	assert.False(t, row.PaymentDate.Valid)
	assert.Equal(t, "slip.jpg", row.Proof.Name)
	assert.Equal(t, "image/jpeg", row.Proof.Type)
	assert.True(t, row.Proof.UploadedAt.Valid)
	assert.Contains(t, uploader.stored, row.Proof.URL)
}

func TestAttachProofReplacesPreviousUpload(t *testing.T) {
	svc, _, uploader := newTestService(t)

	id, err := svc.CreateContribution(admin, request.CreateContributionRequest{
		MemberID: owner.ID, Month: "January 2026", Amount: 500,
	})
	require.NoError(t, err)

	first, err := svc.AttachProof(owner, id, []byte{0xFF, 0xD8, 0xFF}, "image/jpeg", "slip1.jpg")
	require.NoError(t, err)
	second, err := svc.AttachProof(owner, id, []byte{0x89, 0x50, 0x4E}, "image/png", "slip2.png")
	require.NoError(t, err)

	assert.NotEqual(t, first.Proof.URL, second.Proof.URL)
	assert.Contains(t, uploader.deleted, first.Proof.URL, "superseded proof should be removed from storage")
}

func TestListContributionsGating(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, memberID := range []string{owner.ID, other.ID} {
		_, err := svc.CreateContribution(admin, request.CreateContributionRequest{
			MemberID: memberID, Month: "January 2026", Amount: 500,
		})
		require.NoError(t, err)
	}

	all, err := svc.ListContributions(admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListContributions(owner)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, owner.ID, own[0].MemberID)
}
