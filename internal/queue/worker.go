package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
)

func (j *Queue) HandleGeneratePostsTask(ctx context.Context, task *asynq.Task) error {
	var payload GeneratePostsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid %s payload: %w", TaskTypeGeneratePosts, err)
	}

	count, err := j.cs.Generate(ctx, transfer.GenerateRequest{
		Topic:    payload.Topic,
		Audience: payload.Audience,
		Count:    payload.Count,
	})
	if err != nil {
		slog.Error("scheduled generation failed", "error", err)
		return err
	}

	slog.Info("scheduled generation finished", "count", count)
	return nil
}

func (j *Queue) HandlePublishPostsTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid %s payload: %w", TaskTypePublishPosts, err)
	}

	summary, err := j.ps.PublishReady(ctx, payload.MaxBatch)
	if err != nil {
		slog.Error("scheduled publish failed", "error", err)
		return err
	}

	slog.Info("scheduled publish finished", "found", summary.Found, "published", summary.Published, "failed", summary.Failed, "skipped", summary.Skipped)
	return nil
}
