package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	config "github.com/maheshrc27/content-pipeline/configs"
	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
)

// AyrshareService submits posts to the multi-platform posting API.
type AyrshareService interface {
	Post(ctx context.Context, payload *transfer.AyrsharePostRequest) (*transfer.AyrsharePostResponse, error)
}

type ayrshareService struct {
	cfg    config.Config
	client *http.Client
}

func NewAyrshareService(cfg config.Config, client *http.Client) AyrshareService {
	if client == nil {
		client = http.DefaultClient
	}
	return &ayrshareService{cfg: cfg, client: client}
}

var platformIdentifiers = map[models.Platform]string{
	models.PlatformLinkedIn:  "linkedin",
	models.PlatformInstagram: "instagram",
	models.PlatformX:         "twitter",
	models.PlatformFacebook:  "facebook",
}

// PlatformIdentifier is the name the posting API uses for a platform.
func PlatformIdentifier(p models.Platform) string {
	if id, ok := platformIdentifiers[p]; ok {
		return id
	}
	return strings.ToLower(string(p))
}

// BuildPublishPayload shapes the request for one post. Instagram stories must
// carry instagramOptions.stories; any other field name publishes to the feed.
func BuildPublishPayload(p *models.Post) *transfer.AyrsharePostRequest {
	payload := &transfer.AyrsharePostRequest{
		Post:      p.Caption,
		Platforms: []string{PlatformIdentifier(p.Platform)},
	}

	if url := strings.TrimSpace(p.ImageURL); url != "" {
		payload.MediaURLs = []string{url}
	}

	if strings.EqualFold(string(p.Platform), string(models.PlatformInstagram)) && p.PostType == models.PostTypeStory {
		payload.InstagramOptions = &transfer.InstagramOptions{Stories: true}
	}

	return payload
}

func (s *ayrshareService) Post(ctx context.Context, payload *transfer.AyrsharePostRequest) (*transfer.AyrsharePostResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshalling payload: %w", err)
	}

	url := strings.TrimRight(s.cfg.Ayrshare.BaseURL, "/") + "/post"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Ayrshare.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("HTTP request error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var result transfer.AyrsharePostResponse
	parseErr := json.Unmarshal(respBody, &result)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || result.Status == "error" {
		return nil, fmt.Errorf("posting API error (status %d): %s", resp.StatusCode, ayrshareErrorMessage(&result, respBody))
	}
	if parseErr != nil {
		return nil, fmt.Errorf("error parsing response: %w", parseErr)
	}

	return &result, nil
}

func ayrshareErrorMessage(r *transfer.AyrsharePostResponse, raw []byte) string {
	var parts []string
	if r.Message != "" {
		parts = append(parts, r.Message)
	}
	for _, e := range r.Errors {
		if e.Platform != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", e.Platform, e.Message))
		} else {
			parts = append(parts, e.Message)
		}
	}
	if len(parts) == 0 {
		return strings.TrimSpace(string(raw))
	}
	return strings.Join(parts, "; ")
}

// JoinPostIDs renders the returned identifiers for the Post ID column.
func JoinPostIDs(r *transfer.AyrsharePostResponse) string {
	var ids []string
	if r != nil {
		for _, p := range r.PostIDs {
			if p.ID != "" {
				ids = append(ids, p.ID)
			}
		}
	}
	if len(ids) == 0 {
		return models.NoPostID
	}
	return strings.Join(ids, ",")
}
