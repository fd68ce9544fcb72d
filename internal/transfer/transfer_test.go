package transfer

import (
	"encoding/json"
	"testing"

	"github.com/maheshrc27/content-pipeline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirtableErrorShapes(t *testing.T) {
	var a AirtableErrorResponse
	require.NoError(t, json.Unmarshal([]byte(`{"error":"NOT_FOUND"}`), &a))
	assert.Equal(t, "NOT_FOUND", a.Error.Type)
	assert.Equal(t, "NOT_FOUND", a.Error.String())

	var b AirtableErrorResponse
	require.NoError(t, json.Unmarshal([]byte(`{"error":{"type":"INVALID_REQUEST","message":"bad field"}}`), &b))
	assert.Equal(t, "INVALID_REQUEST: bad field", b.Error.String())
}

func TestAyrsharePostIDShapes(t *testing.T) {
	var resp AyrsharePostResponse
	body := `{"status":"success","postIds":["abc",{"id":"def","platform":"instagram","status":"success"}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.PostIDs, 2)
	assert.Equal(t, "abc", resp.PostIDs[0].ID)
	assert.Equal(t, "def", resp.PostIDs[1].ID)
	assert.Equal(t, "instagram", resp.PostIDs[1].Platform)
}

func TestFieldsFromPost(t *testing.T) {
	p := &models.Post{Caption: "c", Platform: models.PlatformX, PostType: models.PostTypeFeed, AIStatus: models.StatusNeedsReview}
	f := FieldsFromPost(p)

	require.NotNil(t, f.ImageOptions)
	assert.Empty(t, *f.ImageOptions)
	assert.Equal(t, models.PlatformX, *f.Platform)
	assert.Nil(t, f.PostID)
}
