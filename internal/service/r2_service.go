package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	cfg "github.com/maheshrc27/content-pipeline/configs"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const maxImageBytes = 20 * 1024 * 1024

// MediaService copies generated images somewhere durable. Model image URLs
// expire after about an hour.
type MediaService interface {
	Persist(ctx context.Context, sourceURL string) (string, error)
}

// NewMediaService returns an R2-backed store when the bucket is configured and
// a pass-through one otherwise.
func NewMediaService(c cfg.Config, client *http.Client) MediaService {
	if !c.R2.Enabled() {
		return passthroughMedia{}
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &R2Service{config: c, client: client}
}

type passthroughMedia struct{}

func (passthroughMedia) Persist(_ context.Context, sourceURL string) (string, error) {
	return sourceURL, nil
}

type R2Service struct {
	config cfg.Config
	client *http.Client
}

func (r *R2Service) R2Client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.R2.AccessKey, r.config.R2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.R2.AccountID))
	}), nil
}

// UploadToR2 stores file under key in the configured bucket.
func (r *R2Service) UploadToR2(ctx context.Context, key string, file []byte, filetype string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(filetype),
	}

	r2Client, err := r.R2Client(ctx)
	if err != nil {
		return err
	}

	if _, err := r2Client.PutObject(ctx, input); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *R2Service) Persist(ctx context.Context, sourceURL string) (string, error) {
	data, err := r.download(ctx, sourceURL)
	if err != nil {
		return "", err
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return "", fmt.Errorf("unsupported file type: %w", err)
	}
	if !filetype.IsImage(data) {
		return "", fmt.Errorf("downloaded file is not an image: %s", kind.MIME.Value)
	}

	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("generated/%s.%s", id, kind.Extension)

	if err := r.UploadToR2(ctx, key, data, kind.MIME.Value); err != nil {
		return "", fmt.Errorf("error uploading image: %w", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimRight(r.config.R2.PublicURL, "/"), key), nil
}

func (r *R2Service) download(ctx context.Context, sourceURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code downloading image: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}
	return data, nil
}
