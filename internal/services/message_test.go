package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectus-hq/connectus-backend/internal/types"
)

func (env *testEnv) seedMessage(t *testing.T, authorID, recipientID uuid.UUID, content string, at time.Time) *types.Message {
	t.Helper()
	message := &types.Message{
		ID:          uuid.New(),
		Content:     content,
		AuthorID:    authorID,
		RecipientID: recipientID,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
	require.NoError(t, env.db.Create(message).Error)
	return message
}

func TestMessageSend(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "Alice Admin", "alice@example.com", types.AuthorityAdmin, true)
	bob := env.createUser(t, "Bob Builder", "bob@example.com", types.AuthorityStaff, true)

	t.Run("requires content", func(t *testing.T) {
		_, err := env.messageService.Send(ctx, alice.ID, bob.ID, "   ")
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		_, err := env.messageService.Send(ctx, alice.ID, uuid.New(), "hello")
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("stores trimmed content", func(t *testing.T) {
		message, err := env.messageService.Send(ctx, alice.ID, bob.ID, "  hey Bob  ")
		require.NoError(t, err)
		assert.Equal(t, "hey Bob", message.Content)
		assert.Equal(t, alice.ID, message.AuthorID)
		assert.Equal(t, bob.ID, message.RecipientID)
		assert.False(t, message.Deleted)
	})
}

func TestMessageThreadIsSymmetricAndAscending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "Alice Admin", "alice@example.com", types.AuthorityAdmin, true)
	bob := env.createUser(t, "Bob Builder", "bob@example.com", types.AuthorityStaff, true)
	carol := env.createUser(t, "Carol Clerk", "carol@example.com", types.AuthorityStaff, true)

	base := time.Now().UTC().Add(-time.Hour)
	env.seedMessage(t, alice.ID, bob.ID, "hi bob", base)
	env.seedMessage(t, bob.ID, alice.ID, "hi alice", base.Add(time.Minute))
	env.seedMessage(t, alice.ID, bob.ID, "how are you", base.Add(2*time.Minute))
	env.seedMessage(t, alice.ID, carol.ID, "unrelated", base.Add(3*time.Minute))

	fromAlice, err := env.messageService.ListThread(ctx, alice.ID, bob.ID, 1)
	require.NoError(t, err)
	require.Len(t, fromAlice.Messages, 3)
	assert.Equal(t, "hi bob", fromAlice.Messages[0].Content)
	assert.Equal(t, "hi alice", fromAlice.Messages[1].Content)
	assert.Equal(t, "how are you", fromAlice.Messages[2].Content)
	assert.Equal(t, 1, fromAlice.Page)
	assert.Equal(t, 1, fromAlice.Pages)

	fromBob, err := env.messageService.ListThread(ctx, bob.ID, alice.ID, 1)
	require.NoError(t, err)
	require.Len(t, fromBob.Messages, 3)
	assert.Equal(t, fromAlice.Messages[0].ID, fromBob.Messages[0].ID)
}

func TestMessageSoftDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "Alice Admin", "alice@example.com", types.AuthorityAdmin, true)
	bob := env.createUser(t, "Bob Builder", "bob@example.com", types.AuthorityStaff, true)
	message := env.seedMessage(t, alice.ID, bob.ID, "secret plans", time.Now().UTC())

	t.Run("unknown message", func(t *testing.T) {
		_, err := env.messageService.SoftDelete(ctx, alice.ID, uuid.New())
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("recipient cannot delete", func(t *testing.T) {
		_, err := env.messageService.SoftDelete(ctx, bob.ID, message.ID)
		requireStatus(t, err, http.StatusForbidden)
	})

	t.Run("author delete blanks content with placeholder", func(t *testing.T) {
		deleted, err := env.messageService.SoftDelete(ctx, alice.ID, message.ID)
		require.NoError(t, err)
		assert.True(t, deleted.Deleted)
		assert.Equal(t, types.DeletedMessageContent, deleted.Content)
		assert.Equal(t, alice.ID, deleted.AuthorID)
		assert.Equal(t, bob.ID, deleted.RecipientID)
	})

	t.Run("row stays in the thread", func(t *testing.T) {
		page, err := env.messageService.ListThread(ctx, alice.ID, bob.ID, 1)
		require.NoError(t, err)
		require.Len(t, page.Messages, 1)
		assert.Equal(t, types.DeletedMessageContent, page.Messages[0].Content)
	})

	t.Run("deleting twice conflicts", func(t *testing.T) {
		_, err := env.messageService.SoftDelete(ctx, alice.ID, message.ID)
		requireStatus(t, err, http.StatusConflict)
	})
}
