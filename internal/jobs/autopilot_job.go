package job

import (
	"log/slog"

	config "github.com/maheshrc27/content-pipeline/configs"
	"github.com/maheshrc27/content-pipeline/internal/queue"
)

// AutopilotJob hands a publish run to the queue on every tick.
type AutopilotJob struct {
	cfg config.Config
	enq queue.Enqueuer
}

func NewAutopilotJob(cfg config.Config, enq queue.Enqueuer) *AutopilotJob {
	return &AutopilotJob{cfg: cfg, enq: enq}
}

func (j *AutopilotJob) PublishReady() {
	err := queue.EnqueuePublishPosts(j.enq, queue.PublishPostsPayload{MaxBatch: j.cfg.PublishMaxBatch})
	if err != nil {
		slog.Error("unable to enqueue publish run", "error", err)
	}
}
