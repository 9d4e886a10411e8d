package chat

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/respond"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
)

var (
	admin  = model.Principal{ID: "PHSC2601001", Role: model.RoleAdmin}
	sender = model.Principal{ID: "PHSC2601002", Role: model.RoleMember}
	other  = model.Principal{ID: "PHSC2601003", Role: model.RoleMember}
)

func newTestService(t *testing.T) (*chatService, *Hub) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Member{}, &model.ChatMessage{}))

	repos := repository.NewRepositories(db)
	names := map[string]string{
		admin.ID:  "Thabo Mokoena",
		sender.ID: "Zanele Dlamini",
		other.ID:  "Sipho Ndlovu",
	}
	i := 0
	for _, p := range []model.Principal{admin, sender, other} {
		require.NoError(t, repos.Member.Create(&model.Member{
			ID:          p.ID,
			Name:        names[p.ID],
			IDNumber:    fmt.Sprintf("900101%07d", i),
			Email:       fmt.Sprintf("member%d@example.com", i),
			RawPassword: "member123",
			Role:        p.Role,
		}))
		i++
	}

	hub := NewHub()
	return NewChatService(repos, hub), hub
}

// nextFrame pops one queued broadcast off the hub without running its loop.
func nextFrame(t *testing.T, hub *Hub) respond.ChatEventRespond {
	t.Helper()
	select {
	case cmd := <-hub.cmds:
		f, ok := cmd.(frameCmd)
		require.True(t, ok, "queued command is not a broadcast")
		var evt respond.ChatEventRespond
		require.NoError(t, json.Unmarshal(f.payload, &evt))
		return evt
	default:
		t.Fatal("no broadcast queued")
		return respond.ChatEventRespond{}
	}
}

func TestPostMessageRejectsWhitespace(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.PostMessage(sender, "   \n\t ")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidArgument, errorx.GetCode(err))
}

func TestPostMessagePersistsAndBroadcasts(t *testing.T) {
	svc, hub := newTestService(t)

	message, err := svc.PostMessage(sender, "  Sanibonani nonke  ")
	require.NoError(t, err)
	assert.Equal(t, "Sanibonani nonke", message.Content, "content is trimmed before storage")
	assert.Equal(t, sender.ID, message.SenderID)
	assert.Equal(t, "Zanele Dlamini", message.SenderName)

	evt := nextFrame(t, hub)
	assert.Equal(t, respond.EventNewMessage, evt.Event)
	require.NotNil(t, evt.Message)
	assert.Equal(t, message.ID, evt.Message.ID)
	assert.Equal(t, "Sanibonani nonke", evt.Message.Content)
}

func TestDeleteMessagePermissions(t *testing.T) {
	svc, hub := newTestService(t)

	message, err := svc.PostMessage(sender, "for deletion")
	require.NoError(t, err)
	nextFrame(t, hub) // consume the new_message broadcast

	err = svc.DeleteMessage(other, message.ID)
	require.Error(t, err)
	assert.Equal(t, errorx.CodeForbidden, errorx.GetCode(err))

	require.NoError(t, svc.DeleteMessage(sender, message.ID))
	evt := nextFrame(t, hub)
	assert.Equal(t, respond.EventMessageDeleted, evt.Event)
	assert.Equal(t, message.ID, evt.MessageID)
}

func TestDeleteMessageAdminOverride(t *testing.T) {
	svc, hub := newTestService(t)

	message, err := svc.PostMessage(sender, "admin removes this")
	require.NoError(t, err)
	nextFrame(t, hub)

	assert.NoError(t, svc.DeleteMessage(admin, message.ID))
}

func TestDeleteMessageNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteMessage(admin, 999)
	require.Error(t, err)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

func TestListMessagesChronologicalOrder(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 1; i <= 3; i++ {
		_, err := svc.PostMessage(sender, fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}

	messages, err := svc.ListMessages(0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "message 1", messages[0].Content)
	assert.Equal(t, "message 3", messages[2].Content)
}

func TestListMessagesHonoursLimit(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 1; i <= 5; i++ {
		_, err := svc.PostMessage(sender, fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}

	messages, err := svc.ListMessages(2, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	// The window holds the most recent messages, oldest first.
	assert.Equal(t, "message 4", messages[0].Content)
	assert.Equal(t, "message 5", messages[1].Content)
}
