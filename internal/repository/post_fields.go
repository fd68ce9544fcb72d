package repository

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
)

// Column names of the posts table.
const (
	fieldCaption      = "Caption"
	fieldPlatform     = "Platform"
	fieldPostType     = "Post Type"
	fieldImageConcept = "Image Concept"
	fieldImageURL     = "Image URL"
	fieldImageOptions = "Image Options"
	fieldAIStatus     = "AI Status"
	fieldIsRecurring  = "Is Recurring"
	fieldRepeatDay    = "Repeat Day"
	fieldPosted       = "Posted"
	fieldPostID       = "Post ID"
	fieldCreated      = "Created"
)

func toAirtableFields(f *transfer.PostFields) (transfer.AirtablePostFields, error) {
	var out transfer.AirtablePostFields
	if f == nil {
		return out, nil
	}
	out.Caption = f.Caption
	out.ImageConcept = f.ImageConcept
	out.ImageURL = f.ImageURL
	out.IsRecurring = f.IsRecurring
	out.Posted = f.Posted
	out.PostID = f.PostID
	if f.Platform != nil {
		s := string(*f.Platform)
		out.Platform = &s
	}
	if f.PostType != nil {
		s := string(*f.PostType)
		out.PostType = &s
	}
	if f.AIStatus != nil {
		s := string(*f.AIStatus)
		out.AIStatus = &s
	}
	if f.RepeatDay != nil {
		s := string(*f.RepeatDay)
		out.RepeatDay = &s
	}
	if f.ImageOptions != nil {
		raw, err := encodeImageOptions(*f.ImageOptions)
		if err != nil {
			return out, err
		}
		out.ImageOptions = raw
	}
	return out, nil
}

func toPost(r transfer.AirtableRecord) *models.Post {
	f := r.Fields
	p := &models.Post{
		ID:           r.ID,
		Caption:      deref(f.Caption),
		Platform:     models.Platform(deref(f.Platform)),
		PostType:     models.PostType(deref(f.PostType)),
		ImageConcept: deref(f.ImageConcept),
		ImageURL:     deref(f.ImageURL),
		AIStatus:     models.Status(deref(f.AIStatus)),
		RepeatDay:    models.RepeatDay(deref(f.RepeatDay)),
	}
	if f.IsRecurring != nil {
		p.IsRecurring = *f.IsRecurring
	}
	if f.Posted != nil {
		p.Posted = *f.Posted
	}
	if f.PostID != nil && *f.PostID != "" {
		id := *f.PostID
		p.PostID = &id
	}
	if p.RepeatDay == "" {
		p.RepeatDay = models.RepeatNone
	}
	if t, err := time.Parse(time.RFC3339, r.CreatedTime); err == nil {
		p.CreatedAt = t
	}

	options, err := decodeImageOptions(f.ImageOptions)
	if err != nil {
		slog.Warn("unreadable image options", "record", r.ID, "error", err)
	}
	p.ImageOptions = options
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// encodeImageOptions stores the list as JSON text inside a single text column.
func encodeImageOptions(options []models.ImageOption) (json.RawMessage, error) {
	if options == nil {
		options = []models.ImageOption{}
	}
	list, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(list))
}

// decodeImageOptions accepts the text-encoded list, a native array, or nothing.
// The returned slice is never nil.
func decodeImageOptions(raw json.RawMessage) ([]models.ImageOption, error) {
	options := []models.ImageOption{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return options, nil
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return options, err
		}
		raw = bytes.TrimSpace([]byte(text))
		if len(raw) == 0 {
			return options, nil
		}
	}

	if err := json.Unmarshal(raw, &options); err != nil {
		return []models.ImageOption{}, err
	}
	if options == nil {
		options = []models.ImageOption{}
	}
	return options, nil
}
