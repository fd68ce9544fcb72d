package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageSizeFor(t *testing.T) {
	for _, pt := range PostTypes {
		want := SquareImageSize
		if pt == PostTypeStory {
			want = PortraitImageSize
		}
		assert.Equal(t, want, ImageSizeFor(pt), pt)
	}
	assert.Equal(t, SquareImageSize, ImageSizeFor(""))
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, PlatformX.Valid())
	assert.False(t, Platform("Twitter").Valid())
	assert.True(t, PostTypeReel.Valid())
	assert.False(t, PostType("Carousel").Valid())
	assert.True(t, RepeatNone.Valid())
	assert.True(t, RepeatSunday.Valid())
	assert.False(t, RepeatDay("Someday").Valid())
	assert.True(t, StatusArchived.Valid())
	assert.False(t, Status("Draft").Valid())
}

func TestRepeatDayOf(t *testing.T) {
	monday := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, RepeatMonday, RepeatDayOf(monday))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusNeedsReview, StatusReady))
	assert.True(t, CanTransition(StatusReady, StatusPublished))
	assert.True(t, CanTransition(StatusReady, StatusReady))
	assert.False(t, CanTransition(StatusNeedsReview, StatusPublished))
	assert.False(t, CanTransition(StatusPublished, StatusArchived))
	assert.False(t, CanTransition(StatusPublished, StatusReady))
	assert.True(t, CanTransition(StatusArchived, StatusNeedsReview))
	assert.False(t, CanTransition(Status("bogus"), Status("bogus")))

	for _, s := range Statuses {
		if s == StatusPublished || s == StatusArchived {
			continue
		}
		assert.True(t, CanTransition(s, StatusArchived), s)
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(StatusNeedsReview))
	assert.True(t, IsActive(StatusReady))
	assert.False(t, IsActive(StatusPublished))
	assert.False(t, IsActive(StatusArchived))
}

func TestDuplicate(t *testing.T) {
	id := "ayr_1"
	p := &Post{
		ID:           "rec1",
		Caption:      "hello",
		Platform:     PlatformLinkedIn,
		PostType:     PostTypeFeed,
		ImageOptions: []ImageOption{{ID: "a", URL: "https://img/a"}},
		AIStatus:     StatusPublished,
		IsRecurring:  true,
		RepeatDay:    RepeatFriday,
		Posted:       true,
		PostID:       &id,
	}

	c := Duplicate(p)

	assert.Empty(t, c.ID)
	assert.Equal(t, StatusNeedsReview, c.AIStatus)
	assert.False(t, c.Posted)
	assert.Nil(t, c.PostID)
	assert.Equal(t, "hello", c.Caption)
	assert.True(t, c.IsRecurring)

	c.ImageOptions[0].URL = "changed"
	assert.Equal(t, "https://img/a", p.ImageOptions[0].URL)
}

func TestHasImageOption(t *testing.T) {
	p := &Post{ImageOptions: []ImageOption{{ID: "a", URL: "https://img/a"}}}
	assert.True(t, p.HasImageOption("https://img/a"))
	assert.False(t, p.HasImageOption("https://img/b"))
}

func TestParseEnums(t *testing.T) {
	p, ok := ParsePlatform(" instagram ")
	assert.True(t, ok)
	assert.Equal(t, PlatformInstagram, p)

	_, ok = ParsePlatform("TikTok")
	assert.False(t, ok)

	pt, ok := ParsePostType("feed post")
	assert.True(t, ok)
	assert.Equal(t, PostTypeFeed, pt)

	_, ok = ParsePostType("Carousel")
	assert.False(t, ok)
}

func TestPostJSONCreatedAt(t *testing.T) {
	created := time.Date(2026, 10, 12, 6, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(Post{ID: "rec1", CreatedAt: created})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "2026-10-12T06:00:00Z", out["createdAt"])
}
