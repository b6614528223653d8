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

func (env *testEnv) seedNotice(t *testing.T, authorID uuid.UUID, title string, system bool, at time.Time) *types.Notice {
	t.Helper()
	notice := &types.Notice{
		ID:        uuid.New(),
		Title:     title,
		Content:   title + " content",
		UserID:    authorID,
		System:    system,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, env.db.Create(notice).Error)
	return notice
}

func TestNoticeCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "Alice Admin", "alice@example.com", types.AuthorityAdmin, true)

	t.Run("requires title and content", func(t *testing.T) {
		_, err := env.noticeService.Create(ctx, admin.ID, "   ", "body")
		requireStatus(t, err, http.StatusBadRequest)
		_, err = env.noticeService.Create(ctx, admin.ID, "title", "   ")
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("trims and stores", func(t *testing.T) {
		notice, err := env.noticeService.Create(ctx, admin.ID, "  Team meeting  ", "  Friday at noon  ")
		require.NoError(t, err)
		assert.Equal(t, "Team meeting", notice.Title)
		assert.Equal(t, "Friday at noon", notice.Content)
		assert.Equal(t, admin.ID, notice.UserID)
		assert.False(t, notice.System)
	})
}

func TestNoticeUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "Alice Admin", "alice@example.com", types.AuthorityAdmin, true)

	now := time.Now().UTC()
	regular := env.seedNotice(t, admin.ID, "Planning", false, now)
	system := env.seedNotice(t, admin.ID, "New staff member", true, now)

	t.Run("unknown notice", func(t *testing.T) {
		_, err := env.noticeService.Update(ctx, uuid.New(), "title", "content")
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("system notices are immutable", func(t *testing.T) {
		_, err := env.noticeService.Update(ctx, system.ID, "title", "content")
		requireStatus(t, err, http.StatusForbidden)
	})

	t.Run("updates in place", func(t *testing.T) {
		updated, err := env.noticeService.Update(ctx, regular.ID, "Planning v2", "Moved to Monday")
		require.NoError(t, err)
		assert.Equal(t, "Planning v2", updated.Title)
		assert.Equal(t, "Moved to Monday", updated.Content)
	})
}

func TestNoticeListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "Alice Admin", "alice@example.com", types.AuthorityAdmin, true)

	base := time.Now().UTC().Add(-time.Hour)
	env.seedNotice(t, admin.ID, "oldest", false, base)
	env.seedNotice(t, admin.ID, "middle", false, base.Add(10*time.Minute))
	env.seedNotice(t, admin.ID, "newest", false, base.Add(20*time.Minute))

	page, err := env.noticeService.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Notices, 3)
	assert.Equal(t, "newest", page.Notices[0].Title)
	assert.Equal(t, "middle", page.Notices[1].Title)
	assert.Equal(t, "oldest", page.Notices[2].Title)
	assert.Equal(t, 1, page.Pages)
}

func TestNoticeView(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createUser(t, "Alice Admin", "alice@example.com", types.AuthorityAdmin, true)
	staff := env.createUser(t, "Bob Builder", "bob@example.com", types.AuthorityStaff, true)

	notice := env.seedNotice(t, admin.ID, "Announcement", false, time.Now().UTC())

	t.Run("unknown notice", func(t *testing.T) {
		_, err := env.noticeService.View(ctx, uuid.New())
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("includes responses with author names, oldest first", func(t *testing.T) {
		base := time.Now().UTC().Add(-time.Hour)
		env.seedResponse(t, staff.ID, notice.ID, "first", false, base)
		env.seedResponse(t, admin.ID, notice.ID, "second", false, base.Add(time.Minute))
		env.seedResponse(t, staff.ID, notice.ID, "hidden", true, base.Add(2*time.Minute))

		view, err := env.noticeService.View(ctx, notice.ID)
		require.NoError(t, err)
		assert.Equal(t, notice.ID, view.Notice.ID)
		require.Len(t, view.Responses, 2)
		assert.Equal(t, "first", view.Responses[0].Content)
		assert.Equal(t, "Bob Builder", view.Responses[0].AuthorFullName)
		assert.Equal(t, "second", view.Responses[1].Content)
		assert.Equal(t, "Alice Admin", view.Responses[1].AuthorFullName)
	})
}
