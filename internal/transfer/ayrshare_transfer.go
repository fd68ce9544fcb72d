package transfer

import "encoding/json"

type InstagramOptions struct {
	Stories bool `json:"stories"`
}

type AyrsharePostRequest struct {
	Post             string            `json:"post"`
	Platforms        []string          `json:"platforms"`
	MediaURLs        []string          `json:"mediaUrls,omitempty"`
	InstagramOptions *InstagramOptions `json:"instagramOptions,omitempty"`
}

type AyrsharePostResponse struct {
	Status  string           `json:"status"`
	ID      string           `json:"id"`
	PostIDs []AyrsharePostID `json:"postIds"`
	Errors  []AyrshareError  `json:"errors"`
	Message string           `json:"message"`
}

type AyrshareError struct {
	Platform string `json:"platform"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
}

// AyrsharePostID is either a bare id string or an object with platform details.
type AyrsharePostID struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Status   string `json:"status"`
	PostURL  string `json:"postUrl"`
}

func (p *AyrsharePostID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.ID = s
		return nil
	}
	type plain AyrsharePostID
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = AyrsharePostID(v)
	return nil
}
