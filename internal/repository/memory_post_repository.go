package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// memoryPostRepository keeps posts in process memory. It backs local runs
// without Airtable credentials and the service tests.
type memoryPostRepository struct {
	mu    sync.Mutex
	posts map[string]*memoryRecord
	seq   int
	now   func() time.Time
}

type memoryRecord struct {
	post models.Post
	seq  int
}

func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{
		posts: map[string]*memoryRecord{},
		now:   time.Now,
	}
}

func (r *memoryPostRepository) List(_ context.Context, opts ListOptions) ([]*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxRecords := opts.MaxRecords
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}

	var recs []*memoryRecord
	for _, rec := range r.posts {
		if matches(&rec.post, opts) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq > recs[j].seq })

	posts := []*models.Post{}
	for _, rec := range recs {
		if len(posts) == maxRecords {
			break
		}
		posts = append(posts, clonePost(&rec.post))
	}
	return posts, nil
}

func matches(p *models.Post, opts ListOptions) bool {
	if opts.ExcludePosted && p.Posted {
		return false
	}
	if opts.RecurringOn != "" && (!p.IsRecurring || p.RepeatDay != opts.RecurringOn) {
		return false
	}
	in := false
	for _, s := range opts.Status.Statuses {
		if p.AIStatus == s {
			in = true
			break
		}
	}
	switch opts.Status.Op {
	case FilterEquals:
		return in
	case FilterNotIn:
		return !in
	}
	return true
}

func (r *memoryPostRepository) GetByID(_ context.Context, id string) (*models.Post, error) {
	if id == "" {
		return nil, models.ErrMissingPostID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrPostNotFound, id)
	}
	return clonePost(&rec.post), nil
}

func (r *memoryPostRepository) Create(_ context.Context, fields *transfer.PostFields) (string, error) {
	suffix, err := gonanoid.Generate("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", 14)
	if err != nil {
		return "", err
	}
	id := "rec" + suffix

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	rec := &memoryRecord{seq: r.seq}
	rec.post = models.Post{
		ID:           id,
		ImageOptions: []models.ImageOption{},
		RepeatDay:    models.RepeatNone,
		CreatedAt:    r.now().UTC(),
	}
	apply(&rec.post, fields)
	r.posts[id] = rec
	return id, nil
}

func (r *memoryPostRepository) Update(_ context.Context, id string, fields *transfer.PostFields) error {
	if id == "" {
		return models.ErrMissingPostID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.posts[id]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrPostNotFound, id)
	}
	apply(&rec.post, fields)
	return nil
}

func (r *memoryPostRepository) UpdatePostStatus(ctx context.Context, id string, status models.Status) error {
	return r.Update(ctx, id, &transfer.PostFields{AIStatus: &status})
}

func apply(p *models.Post, f *transfer.PostFields) {
	if f == nil {
		return
	}
	if f.Caption != nil {
		p.Caption = *f.Caption
	}
	if f.Platform != nil {
		p.Platform = *f.Platform
	}
	if f.PostType != nil {
		p.PostType = *f.PostType
	}
	if f.ImageConcept != nil {
		p.ImageConcept = *f.ImageConcept
	}
	if f.ImageURL != nil {
		p.ImageURL = *f.ImageURL
	}
	if f.ImageOptions != nil {
		p.ImageOptions = append([]models.ImageOption{}, (*f.ImageOptions)...)
	}
	if f.AIStatus != nil {
		p.AIStatus = *f.AIStatus
	}
	if f.IsRecurring != nil {
		p.IsRecurring = *f.IsRecurring
	}
	if f.RepeatDay != nil {
		p.RepeatDay = *f.RepeatDay
	}
	if f.Posted != nil {
		p.Posted = *f.Posted
	}
	if f.PostID != nil {
		id := *f.PostID
		p.PostID = &id
	}
}

func clonePost(p *models.Post) *models.Post {
	c := *p
	c.ImageOptions = append([]models.ImageOption{}, p.ImageOptions...)
	if p.PostID != nil {
		id := *p.PostID
		c.PostID = &id
	}
	return &c
}
