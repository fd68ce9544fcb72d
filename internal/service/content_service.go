package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	config "github.com/maheshrc27/content-pipeline/configs"
	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/repository"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	maxPostsPerRun     = 10
	maxImageOptions    = 4
	defaultImageChoice = 1
)

type ContentService interface {
	Generate(ctx context.Context, req transfer.GenerateRequest) (int, error)
	RegenerateImages(ctx context.Context, id string) (*models.Post, error)
}

type contentService struct {
	cfg   config.Config
	pr    repository.PostRepository
	ai    OpenAIService
	media MediaService
}

func NewContentService(
	cfg config.Config,
	pr repository.PostRepository,
	ai OpenAIService,
	media MediaService) ContentService {
	return &contentService{
		cfg:   cfg,
		pr:    pr,
		ai:    ai,
		media: media,
	}
}

// BuildGenerationPrompt asks for a strict JSON object with a posts list and
// pins every enum value the model may use.
func BuildGenerationPrompt(topic, audience string, count int) string {
	platforms := make([]string, len(models.Platforms))
	for i, p := range models.Platforms {
		platforms[i] = string(p)
	}
	postTypes := make([]string, len(models.PostTypes))
	for i, t := range models.PostTypes {
		postTypes[i] = string(t)
	}

	return fmt.Sprintf(
		`You are a social media marketing expert for %s. Generate %d unique social media posts for the topic: "%s". `+
			`Respond with a strict JSON object of the form {"posts": [...]}. Each post must have the properties: `+
			`platform (exactly one of: %s), postType (exactly one of: %s), caption, and imageConcept. `+
			`imageConcept is a visual description for an image generator and must not contain text overlays.`,
		audience, count, topic, strings.Join(platforms, ", "), strings.Join(postTypes, ", "),
	)
}

func (s *contentService) normalize(req transfer.GenerateRequest) transfer.GenerateRequest {
	if strings.TrimSpace(req.Topic) == "" {
		req.Topic = s.cfg.TargetTopic
	}
	if strings.TrimSpace(req.Audience) == "" {
		req.Audience = s.cfg.TargetAudience
	}
	if req.Count <= 0 {
		req.Count = s.cfg.PostsPerRun
	}
	if req.Count <= 0 {
		req.Count = 3
	}
	if req.Count > maxPostsPerRun {
		req.Count = maxPostsPerRun
	}
	return req
}

func (s *contentService) Generate(ctx context.Context, req transfer.GenerateRequest) (int, error) {
	req = s.normalize(req)
	slog.Info("generating posts", "topic", req.Topic, "audience", req.Audience, "count", req.Count)

	content, err := s.ai.Complete(ctx, BuildGenerationPrompt(req.Topic, req.Audience, req.Count))
	if err != nil {
		return 0, fmt.Errorf("error generating post copy: %w", err)
	}

	var generated transfer.GeneratedPosts
	if err := json.Unmarshal([]byte(content), &generated); err != nil {
		slog.Warn("language model returned malformed JSON", "error", err)
		return 0, nil
	}
	if len(generated.Posts) == 0 {
		slog.Info("language model did not return any posts")
		return 0, nil
	}

	created := 0
	for i, item := range generated.Posts {
		post, err := s.draftFromItem(ctx, item)
		if err != nil {
			slog.Warn("skipping generated post", "index", i, "error", err)
			continue
		}

		id, err := s.pr.Create(ctx, transfer.FieldsFromPost(post))
		if err != nil {
			slog.Error("error saving generated post", "index", i, "error", err)
			continue
		}
		slog.Info("generated post saved", "id", id, "platform", post.Platform, "postType", post.PostType)
		created++
	}

	return created, nil
}

func (s *contentService) draftFromItem(ctx context.Context, item transfer.GeneratedPost) (*models.Post, error) {
	platform, ok := models.ParsePlatform(item.Platform)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidPlatform, item.Platform)
	}
	postType, ok := models.ParsePostType(item.PostType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidPostType, item.PostType)
	}
	if strings.TrimSpace(item.Caption) == "" {
		return nil, errors.New("empty caption")
	}

	concept := strings.TrimSpace(item.ImageConcept)
	if concept == "" {
		concept = item.Caption
	}

	options, err := s.imageOptions(ctx, concept, postType, defaultImageChoice)
	if err != nil {
		return nil, err
	}

	return &models.Post{
		Caption:      item.Caption,
		Platform:     platform,
		PostType:     postType,
		ImageConcept: concept,
		ImageURL:     options[0].URL,
		ImageOptions: options,
		AIStatus:     models.StatusNeedsReview,
		RepeatDay:    models.RepeatNone,
	}, nil
}

// imageOptions requests n images and keeps the ones that succeed. It fails
// only when none do.
func (s *contentService) imageOptions(ctx context.Context, concept string, postType models.PostType, n int) ([]models.ImageOption, error) {
	size := models.ImageSizeFor(postType)

	var options []models.ImageOption
	var lastErr error
	for i := 0; i < n; i++ {
		url, err := s.ai.GenerateImage(ctx, concept, size)
		if err != nil {
			lastErr = err
			slog.Warn("image generation failed", "error", err)
			continue
		}

		stored, err := s.media.Persist(ctx, url)
		if err != nil {
			slog.Warn("could not persist generated image, keeping provider url", "error", err)
			stored = url
		}

		id, err := gonanoid.New()
		if err != nil {
			return nil, err
		}
		options = append(options, models.ImageOption{ID: "img_" + id, URL: stored})
	}

	if len(options) == 0 {
		return nil, fmt.Errorf("error generating image: %w", lastErr)
	}
	return options, nil
}

func (s *contentService) RegenerateImages(ctx context.Context, id string) (*models.Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.ErrMissingPostID
	}

	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AIStatus == models.StatusPublished {
		return nil, models.ErrAlreadyPublished
	}
	if !models.CanTransition(post.AIStatus, models.StatusNeedsImage) {
		slog.Warn("status transition outside workflow", "id", id, "from", post.AIStatus, "to", models.StatusNeedsImage)
	}

	n := len(post.ImageOptions)
	if n < 1 {
		n = 1
	}
	if n > maxImageOptions {
		n = maxImageOptions
	}

	concept := strings.TrimSpace(post.ImageConcept)
	if concept == "" || concept == models.ManualImageConcept {
		concept = post.Caption
	}

	options, err := s.imageOptions(ctx, concept, post.PostType, n)
	if err != nil {
		return nil, err
	}

	status := models.StatusNeedsImage
	imageURL := options[0].URL
	err = s.pr.Update(ctx, id, &transfer.PostFields{
		ImageOptions: &options,
		ImageURL:     &imageURL,
		AIStatus:     &status,
	})
	if err != nil {
		return nil, err
	}

	post.ImageOptions = options
	post.ImageURL = imageURL
	post.AIStatus = status
	return post, nil
}
