package entity

// SubmitIdeaRequest is the payload for POST /ideas. Owner comes from the
// session, never from the body.
type SubmitIdeaRequest struct {
	Name      string   `json:"name"`
	Tagline   string   `json:"tagline"`
	Industry  string   `json:"industry"`
	Brief     string   `json:"brief"`
	Tags      []string `json:"tags"`
	MediaURLs []string `json:"media_urls"`
}

// IdeaListResponse wraps an ordered idea listing.
type IdeaListResponse struct {
	Ideas []*Idea `json:"ideas"`
	Count int     `json:"count"`
}

// ErrorResponse is the uniform error body for all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
