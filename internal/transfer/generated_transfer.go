package transfer

// GeneratedPost is one item of the model's JSON answer.
type GeneratedPost struct {
	Platform     string `json:"platform"`
	PostType     string `json:"postType"`
	Caption      string `json:"caption"`
	ImageConcept string `json:"imageConcept"`
}

type GeneratedPosts struct {
	Posts []GeneratedPost `json:"posts"`
}
