package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/repository"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
)

const (
	ViewAll     = "all"
	ViewQueue   = "queue"
	ViewHistory = "history"
)

var ErrInvalidView = errors.New("view must be one of all, queue, history")

type PostService interface {
	List(ctx context.Context, view string) ([]*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, fields *transfer.PostFields) (string, error)
	Update(ctx context.Context, id string, fields *transfer.PostFields) error
	SetStatus(ctx context.Context, id string, status models.Status) error
	Archive(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (string, error)
	History(ctx context.Context, id string) ([]*models.PostingHistory, error)
}

type postService struct {
	pr repository.PostRepository
	ph repository.PostingHistoryRepository
}

func NewPostService(pr repository.PostRepository, ph repository.PostingHistoryRepository) PostService {
	return &postService{pr: pr, ph: ph}
}

func (s *postService) List(ctx context.Context, view string) ([]*models.Post, error) {
	opts := repository.ListOptions{}
	switch view {
	case "", ViewAll:
	case ViewQueue:
		opts.Status = repository.StatusNotIn(models.InactiveStatuses...)
	case ViewHistory:
		opts.Status = repository.StatusIn(models.InactiveStatuses...)
	default:
		return nil, ErrInvalidView
	}
	return s.pr.List(ctx, opts)
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.ErrMissingPostID
	}
	return s.pr.GetByID(ctx, id)
}

// Create stores a manual post. Status always starts at review regardless of
// what the caller sent.
func (s *postService) Create(ctx context.Context, fields *transfer.PostFields) (string, error) {
	if fields == nil {
		return "", errors.New("post data is required")
	}
	if err := validateFields(fields); err != nil {
		return "", err
	}
	if fields.Platform == nil {
		return "", fmt.Errorf("%w: platform is required", models.ErrInvalidPlatform)
	}
	if fields.PostType == nil {
		return "", fmt.Errorf("%w: postType is required", models.ErrInvalidPostType)
	}

	post := &models.Post{
		Platform:     *fields.Platform,
		PostType:     *fields.PostType,
		ImageConcept: models.ManualImageConcept,
		ImageURL:     models.PlaceholderImageURL,
		AIStatus:     models.StatusNeedsReview,
		RepeatDay:    models.RepeatNone,
	}
	if fields.Caption != nil {
		post.Caption = *fields.Caption
	}
	if fields.ImageConcept != nil && strings.TrimSpace(*fields.ImageConcept) != "" {
		post.ImageConcept = *fields.ImageConcept
	}
	if fields.ImageOptions != nil {
		post.ImageOptions = *fields.ImageOptions
	}
	switch {
	case fields.ImageURL != nil && strings.TrimSpace(*fields.ImageURL) != "":
		post.ImageURL = *fields.ImageURL
	case len(post.ImageOptions) > 0:
		post.ImageURL = post.ImageOptions[0].URL
	}
	if fields.IsRecurring != nil {
		post.IsRecurring = *fields.IsRecurring
	}
	if fields.RepeatDay != nil {
		post.RepeatDay = *fields.RepeatDay
	}

	id, err := s.pr.Create(ctx, transfer.FieldsFromPost(post))
	if err != nil {
		return "", err
	}
	slog.Info("manual post created", "id", id)
	return id, nil
}

// Update writes the fields present in the request. Publish state belongs to
// the publication worker and is never taken from a client.
func (s *postService) Update(ctx context.Context, id string, fields *transfer.PostFields) error {
	if strings.TrimSpace(id) == "" {
		return models.ErrMissingPostID
	}
	if fields == nil {
		return errors.New("post data is required")
	}
	if err := validateFields(fields); err != nil {
		return err
	}
	if fields.AIStatus != nil && *fields.AIStatus == models.StatusPublished {
		return models.ErrPublishedByWorkerOnly
	}

	current, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if fields.AIStatus != nil {
		if current.AIStatus == models.StatusPublished {
			return models.ErrAlreadyPublished
		}
		if !models.CanTransition(current.AIStatus, *fields.AIStatus) {
			slog.Warn("status transition outside workflow", "id", id, "from", current.AIStatus, "to", *fields.AIStatus)
		}
	}
	// A new selection must come from the stored options unless the request
	// replaces them too.
	if fields.ImageURL != nil && fields.ImageOptions == nil && len(current.ImageOptions) > 0 && !current.HasImageOption(*fields.ImageURL) {
		return models.ErrImageNotInOptions
	}

	f := *fields
	f.Posted = nil
	f.PostID = nil
	return s.pr.Update(ctx, id, &f)
}

func (s *postService) SetStatus(ctx context.Context, id string, status models.Status) error {
	if strings.TrimSpace(id) == "" {
		return models.ErrMissingPostID
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	if status == models.StatusPublished {
		return models.ErrPublishedByWorkerOnly
	}

	current, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.AIStatus == models.StatusPublished {
		return models.ErrAlreadyPublished
	}
	if !models.CanTransition(current.AIStatus, status) {
		slog.Warn("status transition outside workflow", "id", id, "from", current.AIStatus, "to", status)
	}

	return s.pr.UpdatePostStatus(ctx, id, status)
}

func (s *postService) Archive(ctx context.Context, id string) error {
	return s.SetStatus(ctx, id, models.StatusArchived)
}

func (s *postService) Duplicate(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", models.ErrMissingPostID
	}

	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	newID, err := s.pr.Create(ctx, transfer.FieldsFromPost(models.Duplicate(post)))
	if err != nil {
		return "", err
	}
	slog.Info("post duplicated", "source", id, "id", newID)
	return newID, nil
}

func (s *postService) History(ctx context.Context, id string) ([]*models.PostingHistory, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.ErrMissingPostID
	}
	return s.ph.ListByRecordID(ctx, id)
}

func validateFields(f *transfer.PostFields) error {
	if f.Platform != nil && !f.Platform.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidPlatform, *f.Platform)
	}
	if f.PostType != nil && !f.PostType.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidPostType, *f.PostType)
	}
	if f.AIStatus != nil && !f.AIStatus.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, *f.AIStatus)
	}
	if f.RepeatDay != nil && !f.RepeatDay.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidRepeatDay, *f.RepeatDay)
	}
	if f.ImageOptions != nil && len(*f.ImageOptions) > 0 && f.ImageURL != nil {
		p := models.Post{ImageOptions: *f.ImageOptions}
		if !p.HasImageOption(*f.ImageURL) {
			return models.ErrImageNotInOptions
		}
	}
	return nil
}
