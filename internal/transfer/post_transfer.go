package transfer

import "github.com/maheshrc27/content-pipeline/internal/models"

// PostFields is a partial post keyed by internal names. Nil fields are left
// untouched on update.
type PostFields struct {
	Caption      *string               `json:"caption"`
	Platform     *models.Platform      `json:"platform"`
	PostType     *models.PostType      `json:"postType"`
	ImageConcept *string               `json:"imageConcept"`
	ImageURL     *string               `json:"imageUrl"`
	ImageOptions *[]models.ImageOption `json:"imageOptions"`
	AIStatus     *models.Status        `json:"aiStatus"`
	IsRecurring  *bool                 `json:"isRecurring"`
	RepeatDay    *models.RepeatDay     `json:"repeatDay"`
	Posted       *bool                 `json:"posted"`
	PostID       *string               `json:"postId"`
}

// FieldsFromPost returns every writable field of p.
func FieldsFromPost(p *models.Post) *PostFields {
	options := p.ImageOptions
	if options == nil {
		options = []models.ImageOption{}
	}
	f := &PostFields{
		Caption:      &p.Caption,
		Platform:     &p.Platform,
		PostType:     &p.PostType,
		ImageConcept: &p.ImageConcept,
		ImageURL:     &p.ImageURL,
		ImageOptions: &options,
		AIStatus:     &p.AIStatus,
		IsRecurring:  &p.IsRecurring,
		RepeatDay:    &p.RepeatDay,
		Posted:       &p.Posted,
	}
	if p.PostID != nil {
		f.PostID = p.PostID
	}
	return f
}

type GenerateRequest struct {
	Topic    string `json:"topic"`
	Audience string `json:"audience"`
	Count    int    `json:"count"`
}

type StatusUpdate struct {
	Status models.Status `json:"status"`
}

type PublishSummary struct {
	Found     int `json:"found"`
	Published int `json:"published"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}
