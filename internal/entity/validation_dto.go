package entity

// QuestionsResponse is the MCQ set a validator answers. Reused is true when
// the set came from an earlier validation rather than a fresh generation.
type QuestionsResponse struct {
	MCQs   []MCQ `json:"mcqs"`
	Reused bool  `json:"reused"`
}

// SubmitValidationRequest is the payload for POST /ideas/{id}/validations.
// Validator identity comes from the session.
type SubmitValidationRequest struct {
	MCQs        []MCQ  `json:"mcqs"`
	MCQAnswers  []int  `json:"mcq_answers"`
	Vote        Vote   `json:"vote"`
	OpinionText string `json:"opinion_text"`
}

// ValidationStatsDTO carries counts plus the display strings the analytics
// view renders. Percent fields read "<n>% of total", or "No validations yet"
// when Total is zero (no division is ever performed in that case).
type ValidationStatsDTO struct {
	Upvotes         int    `json:"upvotes"`
	Downvotes       int    `json:"downvotes"`
	Maybes          int    `json:"maybes"`
	Total           int    `json:"total"`
	UpvotePercent   string `json:"upvote_percent"`
	DownvotePercent string `json:"downvote_percent"`
	MaybePercent    string `json:"maybe_percent"`
}
