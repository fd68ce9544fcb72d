package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	config "github.com/maheshrc27/content-pipeline/configs"
	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/repository"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
)

type PublishService interface {
	PublishReady(ctx context.Context, maxBatch int) (*transfer.PublishSummary, error)
}

type publishService struct {
	cfg config.Config
	pr  repository.PostRepository
	ph  repository.PostingHistoryRepository
	ay  AyrshareService
}

func NewPublishService(
	cfg config.Config,
	pr repository.PostRepository,
	ph repository.PostingHistoryRepository,
	ay AyrshareService) PublishService {
	return &publishService{
		cfg: cfg,
		pr:  pr,
		ph:  ph,
		ay:  ay,
	}
}

var errNotReady = errors.New("post is no longer ready to post")

func (s *publishService) PublishReady(ctx context.Context, maxBatch int) (*transfer.PublishSummary, error) {
	if maxBatch <= 0 {
		maxBatch = s.cfg.PublishMaxBatch
	}

	posts, err := s.pr.List(ctx, repository.ListOptions{
		Status:        repository.StatusIs(models.StatusReady),
		ExcludePosted: true,
		MaxRecords:    maxBatch,
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching ready posts: %w", err)
	}

	summary := &transfer.PublishSummary{Found: len(posts)}
	if len(posts) == 0 {
		slog.Info("no posts found with status", "status", models.StatusReady)
		return summary, nil
	}

	for _, p := range posts {
		err := s.publishOne(ctx, p.ID)
		switch {
		case err == nil:
			summary.Published++
		case errors.Is(err, errNotReady):
			summary.Skipped++
			slog.Info("skipping post", "id", p.ID, "reason", err)
		default:
			summary.Failed++
			slog.Error("failed to publish post", "id", p.ID, "platform", p.Platform, "error", err)
		}
	}

	return summary, nil
}

func (s *publishService) publishOne(ctx context.Context, id string) error {
	// Re-read right before acting. This narrows but does not close the race
	// with a concurrent editor.
	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AIStatus != models.StatusReady || post.Posted {
		return errNotReady
	}

	resp, err := s.ay.Post(ctx, BuildPublishPayload(post))
	if err != nil {
		s.recordAttempt(ctx, post, "", err)
		return err
	}

	externalID := JoinPostIDs(resp)
	s.recordAttempt(ctx, post, externalID, nil)

	posted := true
	status := models.StatusPublished
	err = s.pr.Update(ctx, id, &transfer.PostFields{
		Posted:   &posted,
		AIStatus: &status,
		PostID:   &externalID,
	})
	if err != nil {
		return fmt.Errorf("post went out as %s but the record was not updated: %w", externalID, err)
	}

	slog.Info("published post", "id", id, "platform", post.Platform, "postId", externalID)
	return nil
}

func (s *publishService) recordAttempt(ctx context.Context, post *models.Post, externalID string, err error) {
	ph := &models.PostingHistory{
		RecordID:   post.ID,
		Platform:   string(post.Platform),
		ExternalID: externalID,
	}
	if err != nil {
		ph.ErrorMessage = err.Error()
	}
	if _, err := s.ph.Create(ctx, ph); err != nil {
		slog.Error("error saving posting history", "id", post.ID, "error", err)
	}
}
