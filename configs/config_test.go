package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("AIRTABLE_TABLE", "")
	t.Setenv("POSTS_PER_RUN", "")
	t.Setenv("PUBLISH_MAX_BATCH", "")

	cfg := LoadConfig()

	assert.Equal(t, "Social Media Posts", cfg.Airtable.Table)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.ChatModel)
	assert.Equal(t, 3, cfg.PostsPerRun)
	assert.Equal(t, 5, cfg.PublishMaxBatch)
	assert.False(t, cfg.R2.Enabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("AIRTABLE_TABLE", "Posts")
	t.Setenv("PUBLISH_MAX_BATCH", "2")
	t.Setenv("POSTS_PER_RUN", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, "Posts", cfg.Airtable.Table)
	assert.Equal(t, 2, cfg.PublishMaxBatch)
	assert.Equal(t, 3, cfg.PostsPerRun)
}

func TestR2Enabled(t *testing.T) {
	r := R2{AccountID: "a", AccessKey: "k", SecretKey: "s", BucketName: "b", PublicURL: "https://pub.example"}
	assert.True(t, r.Enabled())

	r.PublicURL = ""
	assert.False(t, r.Enabled())
}
