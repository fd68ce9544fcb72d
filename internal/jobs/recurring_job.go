package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/repository"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
)

// RecurringJob turns published recurring templates into fresh drafts on their
// repeat day. The drafts go through review like any other post.
type RecurringJob struct {
	pr  repository.PostRepository
	now func() time.Time
}

func NewRecurringJob(pr repository.PostRepository) *RecurringJob {
	return &RecurringJob{pr: pr, now: time.Now}
}

func (j *RecurringJob) CreateDrafts() {
	if _, err := j.Run(context.Background()); err != nil {
		slog.Error("recurring job failed", "error", err)
	}
}

// Run returns the number of drafts created.
func (j *RecurringJob) Run(ctx context.Context) (int, error) {
	day := models.RepeatDayOf(j.now())

	templates, err := j.pr.List(ctx, repository.ListOptions{
		Status:      repository.StatusIs(models.StatusPublished),
		RecurringOn: day,
	})
	if err != nil {
		return 0, err
	}

	created := 0
	for _, t := range templates {
		draft := models.Duplicate(t)
		draft.IsRecurring = false
		draft.RepeatDay = models.RepeatNone

		id, err := j.pr.Create(ctx, transfer.FieldsFromPost(draft))
		if err != nil {
			slog.Error("unable to create recurring draft", "template", t.ID, "error", err)
			continue
		}
		slog.Info("recurring draft created", "template", t.ID, "id", id, "day", day)
		created++
	}
	return created, nil
}
