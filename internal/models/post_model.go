package models

import (
	"errors"
	"strings"
	"time"
)

type Platform string

const (
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformInstagram Platform = "Instagram"
	PlatformX         Platform = "X"
	PlatformFacebook  Platform = "Facebook"
)

var Platforms = []Platform{PlatformLinkedIn, PlatformInstagram, PlatformX, PlatformFacebook}

func (p Platform) Valid() bool {
	for _, v := range Platforms {
		if p == v {
			return true
		}
	}
	return false
}

type PostType string

const (
	PostTypeFeed  PostType = "Feed Post"
	PostTypeStory PostType = "Story"
	PostTypeReel  PostType = "Reel"
)

var PostTypes = []PostType{PostTypeFeed, PostTypeStory, PostTypeReel}

func (t PostType) Valid() bool {
	for _, v := range PostTypes {
		if t == v {
			return true
		}
	}
	return false
}

type RepeatDay string

const (
	RepeatNone      RepeatDay = "N/A"
	RepeatMonday    RepeatDay = "Monday"
	RepeatTuesday   RepeatDay = "Tuesday"
	RepeatWednesday RepeatDay = "Wednesday"
	RepeatThursday  RepeatDay = "Thursday"
	RepeatFriday    RepeatDay = "Friday"
	RepeatSaturday  RepeatDay = "Saturday"
	RepeatSunday    RepeatDay = "Sunday"
)

func (d RepeatDay) Valid() bool {
	if d == RepeatNone {
		return true
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if string(d) == wd.String() {
			return true
		}
	}
	return false
}

// RepeatDayOf returns the repeat day matching the weekday of t.
func RepeatDayOf(t time.Time) RepeatDay {
	return RepeatDay(t.Weekday().String())
}

type ImageOption struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Post struct {
	ID           string        `json:"id"`
	Caption      string        `json:"caption"`
	Platform     Platform      `json:"platform"`
	PostType     PostType      `json:"postType"`
	ImageConcept string        `json:"imageConcept"`
	ImageURL     string        `json:"imageUrl"`
	ImageOptions []ImageOption `json:"imageOptions"`
	AIStatus     Status        `json:"aiStatus"`
	IsRecurring  bool          `json:"isRecurring"`
	RepeatDay    RepeatDay     `json:"repeatDay"`
	Posted       bool          `json:"posted"`
	PostID       *string       `json:"postId"`
	CreatedAt    time.Time     `json:"createdAt"`
}

const (
	PlaceholderImageURL = "https://placehold.co/1024x1024/333333/ffffff?text=Manual+Post"
	ManualImageConcept  = "Manual post - no AI concept"
	NoPostID            = "N/A"
)

const (
	SquareImageSize   = "1024x1024"
	PortraitImageSize = "1024x1792"
)

// ImageSizeFor maps a post type to the canvas requested from the image model.
func ImageSizeFor(t PostType) string {
	if t == PostTypeStory {
		return PortraitImageSize
	}
	return SquareImageSize
}

// HasImageOption reports whether url is one of the post's image options.
func (p *Post) HasImageOption(url string) bool {
	for _, o := range p.ImageOptions {
		if o.URL == url {
			return true
		}
	}
	return false
}

// Duplicate copies a post into a fresh draft with no identity or publish state.
func Duplicate(p *Post) *Post {
	c := *p
	c.ID = ""
	c.AIStatus = StatusNeedsReview
	c.Posted = false
	c.PostID = nil
	c.CreatedAt = time.Time{}
	if p.ImageOptions != nil {
		c.ImageOptions = append([]ImageOption(nil), p.ImageOptions...)
	}
	return &c
}

var (
	ErrPostNotFound          = errors.New("post not found")
	ErrMissingPostID         = errors.New("post id is required")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPlatform       = errors.New("invalid platform")
	ErrInvalidPostType       = errors.New("invalid post type")
	ErrInvalidRepeatDay      = errors.New("invalid repeat day")
	ErrPublishedByWorkerOnly = errors.New("only the publication worker can mark a post as published")
	ErrAlreadyPublished      = errors.New("post is already published")
	ErrImageNotInOptions     = errors.New("image url must be one of the image options")
)

// ParsePlatform matches s against the platform names, ignoring case.
func ParsePlatform(s string) (Platform, bool) {
	s = strings.TrimSpace(s)
	for _, p := range Platforms {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

// ParsePostType matches s against the post type names, ignoring case.
func ParsePostType(s string) (PostType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range PostTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}
