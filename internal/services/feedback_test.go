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

func TestFeedbackSubmit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("requires content", func(t *testing.T) {
		_, err := env.feedbackService.Submit(ctx, "   ")
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("stores trimmed content with no author", func(t *testing.T) {
		feedback, err := env.feedbackService.Submit(ctx, "  the coffee machine is broken  ")
		require.NoError(t, err)
		assert.Equal(t, "the coffee machine is broken", feedback.Content)
	})
}

func TestFeedbackListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i, content := range []string{"oldest", "middle", "newest"} {
		item := &types.Feedback{
			ID:        uuid.New(),
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, env.db.Create(item).Error)
	}

	page, err := env.feedbackService.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Feedback, 3)
	assert.Equal(t, "newest", page.Feedback[0].Content)
	assert.Equal(t, "oldest", page.Feedback[2].Content)
	assert.Equal(t, 1, page.Pages)
}

func TestFeedbackDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	feedback, err := env.feedbackService.Submit(ctx, "too many meetings")
	require.NoError(t, err)

	require.NoError(t, env.feedbackService.Delete(ctx, feedback.ID))

	t.Run("row is gone", func(t *testing.T) {
		stored, err := env.feedback.GetByID(ctx, nil, feedback.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("deleting again is not found", func(t *testing.T) {
		err := env.feedbackService.Delete(ctx, feedback.ID)
		requireStatus(t, err, http.StatusNotFound)
	})
}
