package transfer

import (
	"encoding/json"
	"fmt"
)

// AirtablePostFields uses the column names of the posts table.
type AirtablePostFields struct {
	Caption      *string         `json:"Caption,omitempty"`
	Platform     *string         `json:"Platform,omitempty"`
	PostType     *string         `json:"Post Type,omitempty"`
	ImageConcept *string         `json:"Image Concept,omitempty"`
	ImageURL     *string         `json:"Image URL,omitempty"`
	ImageOptions json.RawMessage `json:"Image Options,omitempty"`
	AIStatus     *string         `json:"AI Status,omitempty"`
	IsRecurring  *bool           `json:"Is Recurring,omitempty"`
	RepeatDay    *string         `json:"Repeat Day,omitempty"`
	Posted       *bool           `json:"Posted,omitempty"`
	PostID       *string         `json:"Post ID,omitempty"`
}

type AirtableRecord struct {
	ID          string             `json:"id,omitempty"`
	CreatedTime string             `json:"createdTime,omitempty"`
	Fields      AirtablePostFields `json:"fields"`
}

type AirtableWriteRequest struct {
	Records  []AirtableRecord `json:"records"`
	Typecast bool             `json:"typecast"`
}

type AirtableListResponse struct {
	Records []AirtableRecord `json:"records"`
	Offset  string           `json:"offset,omitempty"`
}

// AirtableErrorResponse accepts both error shapes the API returns:
// {"error":"NOT_FOUND"} and {"error":{"type":"...","message":"..."}}.
type AirtableErrorResponse struct {
	Error AirtableError `json:"error"`
}

type AirtableError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *AirtableError) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Type = s
		return nil
	}
	type plain AirtableError
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = AirtableError(p)
	return nil
}

func (e AirtableError) String() string {
	if e.Message == "" {
		return e.Type
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}
