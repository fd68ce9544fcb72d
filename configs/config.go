package config

import (
	"os"
	"strconv"
)

type Airtable struct {
	Token   string
	BaseID  string
	Table   string
	BaseURL string
}

type OpenAI struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	ImageModel string
}

type Ayrshare struct {
	APIKey  string
	BaseURL string
}

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

// Enabled reports whether generated images should be mirrored to the bucket.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != "" && r.PublicURL != ""
}

type Config struct {
	Airtable          Airtable
	OpenAI            OpenAI
	Ayrshare          Ayrshare
	R2                R2
	PostgresURI       string
	RedisURI          string
	FrontendURL       string
	DashboardDir      string
	Port              string
	SecretKey         string
	CookieName        string
	TargetTopic       string
	TargetAudience    string
	PostsPerRun       int
	PublishMaxBatch   int
	AutopilotInterval string
	RecurringSchedule string
}

func LoadConfig() *Config {
	return &Config{
		Airtable: Airtable{
			Token:   getEnv("AIRTABLE_PAT", ""),
			BaseID:  getEnv("AIRTABLE_BASE_ID", ""),
			Table:   getEnv("AIRTABLE_TABLE", "Social Media Posts"),
			BaseURL: getEnv("AIRTABLE_BASE_URL", "https://api.airtable.com/v0"),
		},
		OpenAI: OpenAI{
			APIKey:     getEnv("OPENAI_API_KEY", ""),
			BaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			ChatModel:  getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			ImageModel: getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),
		},
		Ayrshare: Ayrshare{
			APIKey:  getEnv("AYRSHARE_API_KEY", ""),
			BaseURL: getEnv("AYRSHARE_BASE_URL", "https://app.ayrshare.com/api"),
		},
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		PostgresURI:       getEnv("POSTGRES_URI", ""),
		RedisURI:          getEnv("REDIS_URI", ""),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:5173"),
		DashboardDir:      getEnv("DASHBOARD_DIR", ""),
		Port:              getEnv("PORT", "3001"),
		SecretKey:         getEnv("SECRET_KEY", ""),
		CookieName:        getEnv("COOKIE_NAME", "pipeline_session"),
		TargetTopic:       getEnv("TARGET_TOPIC", "New tax changes affecting small business owners."),
		TargetAudience:    getEnv("TARGET_AUDIENCE", "Small local accounting firms."),
		PostsPerRun:       getEnvInt("POSTS_PER_RUN", 3),
		PublishMaxBatch:   getEnvInt("PUBLISH_MAX_BATCH", 5),
		AutopilotInterval: getEnv("AUTOPILOT_INTERVAL", ""),
		RecurringSchedule: getEnv("RECURRING_SCHEDULE", "0 0 6 * * *"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
