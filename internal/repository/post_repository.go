package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	config "github.com/maheshrc27/content-pipeline/configs"
	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
)

type PostRepository interface {
	List(ctx context.Context, opts ListOptions) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, fields *transfer.PostFields) (string, error)
	Update(ctx context.Context, id string, fields *transfer.PostFields) error
	UpdatePostStatus(ctx context.Context, id string, status models.Status) error
}

type postRepository struct {
	c *airtableClient
}

// NewPostRepository returns an Airtable-backed store. A nil client means
// http.DefaultClient.
func NewPostRepository(cfg config.Config, client *http.Client) PostRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &postRepository{c: &airtableClient{
		baseURL: cfg.Airtable.BaseURL,
		baseID:  cfg.Airtable.BaseID,
		table:   cfg.Airtable.Table,
		token:   cfg.Airtable.Token,
		http:    client,
	}}
}

func (r *postRepository) List(ctx context.Context, opts ListOptions) ([]*models.Post, error) {
	maxRecords := opts.MaxRecords
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}

	query := url.Values{}
	query.Set("maxRecords", strconv.Itoa(maxRecords))
	query.Set("sort[0][field]", fieldCreated)
	query.Set("sort[0][direction]", "desc")
	if formula := buildFormula(opts); formula != "" {
		query.Set("filterByFormula", formula)
	}

	posts := []*models.Post{}
	for {
		var page transfer.AirtableListResponse
		if err := r.c.do(ctx, http.MethodGet, r.c.tableURL()+"?"+query.Encode(), nil, &page); err != nil {
			return nil, err
		}
		for _, rec := range page.Records {
			posts = append(posts, toPost(rec))
		}
		if page.Offset == "" || len(posts) >= maxRecords {
			break
		}
		query.Set("offset", page.Offset)
	}

	if len(posts) > maxRecords {
		posts = posts[:maxRecords]
	}
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if id == "" {
		return nil, models.ErrMissingPostID
	}

	var rec transfer.AirtableRecord
	err := r.c.do(ctx, http.MethodGet, r.c.tableURL()+"/"+url.PathEscape(id), nil, &rec)
	if err != nil {
		return nil, notFound(err, id)
	}
	return toPost(rec), nil
}

func (r *postRepository) Create(ctx context.Context, fields *transfer.PostFields) (string, error) {
	af, err := toAirtableFields(fields)
	if err != nil {
		return "", err
	}

	var resp transfer.AirtableListResponse
	req := transfer.AirtableWriteRequest{
		Records:  []transfer.AirtableRecord{{Fields: af}},
		Typecast: true,
	}
	if err := r.c.do(ctx, http.MethodPost, r.c.tableURL(), req, &resp); err != nil {
		return "", err
	}
	if len(resp.Records) == 0 || resp.Records[0].ID == "" {
		return "", errors.New("record store returned no record id")
	}
	return resp.Records[0].ID, nil
}

func (r *postRepository) Update(ctx context.Context, id string, fields *transfer.PostFields) error {
	if id == "" {
		return models.ErrMissingPostID
	}

	af, err := toAirtableFields(fields)
	if err != nil {
		return err
	}

	req := transfer.AirtableWriteRequest{
		Records:  []transfer.AirtableRecord{{ID: id, Fields: af}},
		Typecast: true,
	}
	if err := r.c.do(ctx, http.MethodPatch, r.c.tableURL(), req, nil); err != nil {
		return notFound(err, id)
	}
	return nil
}

func (r *postRepository) UpdatePostStatus(ctx context.Context, id string, status models.Status) error {
	return r.Update(ctx, id, &transfer.PostFields{AIStatus: &status})
}

func notFound(err error, id string) error {
	var se *StoreError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s: %s", models.ErrPostNotFound, id, se.Message)
	}
	return err
}
