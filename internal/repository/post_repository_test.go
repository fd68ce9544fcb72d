package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/maheshrc27/content-pipeline/configs"
	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/maheshrc27/content-pipeline/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, h http.HandlerFunc) PostRepository {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := config.Config{Airtable: config.Airtable{
		Token:   "pat-test",
		BaseID:  "appBase",
		Table:   "Social Media Posts",
		BaseURL: srv.URL,
	}}
	return NewPostRepository(cfg, srv.Client())
}

func TestBuildFormula(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want string
	}{
		{"empty", ListOptions{}, ""},
		{
			"ready and not posted",
			ListOptions{Status: StatusIs(models.StatusReady), ExcludePosted: true},
			"AND({AI Status} = 'Ready to Post', {Posted} != TRUE())",
		},
		{
			"not in",
			ListOptions{Status: StatusNotIn(models.StatusPublished, models.StatusArchived)},
			"AND({AI Status} != 'Published', {AI Status} != 'Archived')",
		},
		{
			"in",
			ListOptions{Status: StatusIn(models.StatusPublished, models.StatusArchived)},
			"OR({AI Status} = 'Published', {AI Status} = 'Archived')",
		},
		{
			"recurring templates",
			ListOptions{Status: StatusIs(models.StatusPublished), RecurringOn: models.RepeatMonday},
			"AND({AI Status} = 'Published', {Is Recurring} = TRUE(), {Repeat Day} = 'Monday')",
		},
		{
			"quotes escaped",
			ListOptions{Status: StatusIs(models.Status("it's"))},
			`{AI Status} = 'it\'s'`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildFormula(tt.opts))
		})
	}
}

func TestImageOptionsCodec(t *testing.T) {
	opts := []models.ImageOption{{ID: "a", URL: "https://img/a"}, {ID: "b", URL: "https://img/b"}}

	raw, err := encodeImageOptions(opts)
	require.NoError(t, err)

	var text string
	require.NoError(t, json.Unmarshal(raw, &text), "encoded value must be a JSON string")

	decoded, err := decodeImageOptions(raw)
	require.NoError(t, err)
	assert.Equal(t, opts, decoded)

	native, err := decodeImageOptions(json.RawMessage(`[{"id":"a","url":"https://img/a"}]`))
	require.NoError(t, err)
	assert.Equal(t, opts[:1], native)

	for _, empty := range []string{"", "null", `""`, `"[]"`} {
		got, err := decodeImageOptions(json.RawMessage(empty))
		require.NoError(t, err, empty)
		assert.NotNil(t, got, empty)
		assert.Empty(t, got, empty)
	}

	bad, err := decodeImageOptions(json.RawMessage(`"not json"`))
	assert.Error(t, err)
	assert.NotNil(t, bad)
}

func TestList(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/appBase/Social Media Posts", r.URL.Path)
		assert.Equal(t, "Bearer pat-test", r.Header.Get("Authorization"))
		assert.Equal(t, "AND({AI Status} = 'Ready to Post', {Posted} != TRUE())", r.URL.Query().Get("filterByFormula"))
		assert.Equal(t, "5", r.URL.Query().Get("maxRecords"))
		assert.Equal(t, "Created", r.URL.Query().Get("sort[0][field]"))
		assert.Equal(t, "desc", r.URL.Query().Get("sort[0][direction]"))

		w.Write([]byte(`{"records":[{"id":"rec1","createdTime":"2026-10-01T10:00:00.000Z","fields":{
			"Caption":"Hello","Platform":"Instagram","Post Type":"Story","AI Status":"Ready to Post",
			"Image URL":"https://img/a","Image Options":"[{\"id\":\"a\",\"url\":\"https://img/a\"}]"}}]}`))
	})

	posts, err := repo.List(context.Background(), ListOptions{
		Status:        StatusIs(models.StatusReady),
		ExcludePosted: true,
		MaxRecords:    5,
	})
	require.NoError(t, err)
	require.Len(t, posts, 1)

	p := posts[0]
	assert.Equal(t, "rec1", p.ID)
	assert.Equal(t, models.PlatformInstagram, p.Platform)
	assert.Equal(t, models.PostTypeStory, p.PostType)
	assert.Equal(t, models.StatusReady, p.AIStatus)
	assert.Equal(t, models.RepeatNone, p.RepeatDay)
	assert.False(t, p.Posted)
	assert.Nil(t, p.PostID)
	assert.Equal(t, []models.ImageOption{{ID: "a", URL: "https://img/a"}}, p.ImageOptions)
	assert.Equal(t, 2026, p.CreatedAt.Year())
}

func TestList_FollowsOffset(t *testing.T) {
	calls := 0
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("offset") == "" {
			w.Write([]byte(`{"records":[{"id":"rec1","fields":{}}],"offset":"next"}`))
			return
		}
		w.Write([]byte(`{"records":[{"id":"rec2","fields":{}}]}`))
	})

	posts, err := repo.List(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, posts, 2)
	assert.Equal(t, "rec2", posts[1].ID)
	assert.NotNil(t, posts[0].ImageOptions)
}

func TestCreate(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)

		var req struct {
			Records []struct {
				Fields map[string]any `json:"fields"`
			} `json:"records"`
			Typecast bool `json:"typecast"`
		}
		if !assert.NoError(t, json.Unmarshal(body, &req)) || !assert.Len(t, req.Records, 1) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.True(t, req.Typecast)

		f := req.Records[0].Fields
		assert.Equal(t, "Hi", f["Caption"])
		assert.Equal(t, "Feed Post", f["Post Type"])
		assert.Equal(t, "Generated - Needs Review", f["AI Status"])
		assert.Equal(t, false, f["Is Recurring"])
		assert.Equal(t, `[{"id":"a","url":"https://img/a"}]`, f["Image Options"])
		assert.NotContains(t, f, "Post ID")

		w.Write([]byte(`{"records":[{"id":"recNew","fields":{}}]}`))
	})

	p := &models.Post{
		Caption:      "Hi",
		Platform:     models.PlatformX,
		PostType:     models.PostTypeFeed,
		ImageOptions: []models.ImageOption{{ID: "a", URL: "https://img/a"}},
		AIStatus:     models.StatusNeedsReview,
		RepeatDay:    models.RepeatNone,
	}
	id, err := repo.Create(context.Background(), transfer.FieldsFromPost(p))
	require.NoError(t, err)
	assert.Equal(t, "recNew", id)
}

func TestUpdatePostStatus(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"records":[{"id":"rec1","fields":{"AI Status":"Archived"}}],"typecast":true}`, string(body))
		w.Write([]byte(`{"records":[{"id":"rec1","fields":{}}]}`))
	})

	require.NoError(t, repo.UpdatePostStatus(context.Background(), "rec1", models.StatusArchived))
}

func TestUpdate_MissingID(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	err := repo.Update(context.Background(), "", &transfer.PostFields{})
	assert.ErrorIs(t, err, models.ErrMissingPostID)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appBase/Social Media Posts/recMissing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"NOT_FOUND"}`))
	})

	_, err := repo.GetByID(context.Background(), "recMissing")
	assert.ErrorIs(t, err, models.ErrPostNotFound)
}

func TestStoreErrorCarriesRawMessage(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"type":"INVALID_VALUE_FOR_COLUMN","message":"Field \"Platform\" cannot accept the provided value"}}`))
	})

	_, err := repo.List(context.Background(), ListOptions{})
	var se *StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnprocessableEntity, se.StatusCode)
	assert.Contains(t, se.Message, "INVALID_VALUE_FOR_COLUMN")
	assert.Contains(t, err.Error(), "cannot accept the provided value")
}
