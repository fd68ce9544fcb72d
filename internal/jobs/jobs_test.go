package job

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	config "github.com/maheshrc27/content-pipeline/configs"
	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/queue"
	"github.com/maheshrc27/content-pipeline/internal/repository"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
}

func (r *recordingEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func TestAutopilotJob(t *testing.T) {
	enq := &recordingEnqueuer{}
	NewAutopilotJob(config.Config{PublishMaxBatch: 5}, enq).PublishReady()

	require.Len(t, enq.tasks, 1)
	assert.Equal(t, queue.TaskTypePublishPosts, enq.tasks[0].Type())
	assert.JSONEq(t, `{"max_batch":5}`, string(enq.tasks[0].Payload()))
}

func TestRecurringJob(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryPostRepository()

	add := func(p *models.Post) {
		_, err := repo.Create(ctx, transfer.FieldsFromPost(p))
		require.NoError(t, err)
	}
	add(&models.Post{Caption: "monday tip", Platform: models.PlatformLinkedIn, PostType: models.PostTypeFeed, AIStatus: models.StatusPublished, Posted: true, IsRecurring: true, RepeatDay: models.RepeatMonday})
	add(&models.Post{Caption: "friday tip", Platform: models.PlatformLinkedIn, PostType: models.PostTypeFeed, AIStatus: models.StatusPublished, Posted: true, IsRecurring: true, RepeatDay: models.RepeatFriday})
	add(&models.Post{Caption: "unapproved", Platform: models.PlatformX, PostType: models.PostTypeFeed, AIStatus: models.StatusNeedsReview, IsRecurring: true, RepeatDay: models.RepeatMonday})

	job := NewRecurringJob(repo)
	job.now = func() time.Time { return time.Date(2026, 10, 12, 6, 0, 0, 0, time.UTC) }

	created, err := job.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	drafts, err := repo.List(ctx, repository.ListOptions{Status: repository.StatusIs(models.StatusNeedsReview)})
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	draft := drafts[0]
	assert.Equal(t, "monday tip", draft.Caption)
	assert.False(t, draft.IsRecurring)
	assert.False(t, draft.Posted)
	assert.Equal(t, models.RepeatNone, draft.RepeatDay)
}
