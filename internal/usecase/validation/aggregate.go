package validation

import (
	"math"

	"github.com/ideanest/ideanest-backend/internal/entity"
)

// Aggregate tallies votes across validations. Total counts every record,
// while the per-vote buckets only count recognized vote values.
func Aggregate(validations []*entity.Validation) entity.ValidationStats {
	stats := entity.ValidationStats{Total: len(validations)}
	for _, v := range validations {
		switch v.Vote {
		case entity.VoteUpvote:
			stats.Upvotes++
		case entity.VoteDownvote:
			stats.Downvotes++
		case entity.VoteMaybe:
			stats.Maybes++
		}
	}
	return stats
}

// Percentage returns the share of count in total, rounded to the
// nearest whole percent. A zero total yields zero.
func Percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// GroupOpinions splits opinion texts by vote, preserving record order
// within each group. Opinions of unrecognized votes are dropped.
func GroupOpinions(validations []*entity.Validation) entity.GroupedOpinions {
	var grouped entity.GroupedOpinions
	for _, v := range validations {
		switch v.Vote {
		case entity.VoteUpvote:
			grouped.Upvotes = append(grouped.Upvotes, v.OpinionText)
		case entity.VoteDownvote:
			grouped.Downvotes = append(grouped.Downvotes, v.OpinionText)
		case entity.VoteMaybe:
			grouped.Maybes = append(grouped.Maybes, v.OpinionText)
		}
	}
	return grouped
}

// BuildAnswerMatrix pairs the shared question set with every
// validator's answers, each row tagged with that validator's vote.
// All validations of an idea carry the same question set, so the
// matrix takes its questions from the first record.
func BuildAnswerMatrix(validations []*entity.Validation) entity.AnswerMatrix {
	var matrix entity.AnswerMatrix
	if len(validations) == 0 {
		return matrix
	}
	matrix.MCQs = validations[0].MCQs
	matrix.Rows = make([]entity.AnswerRow, 0, len(validations))
	for _, v := range validations {
		matrix.Rows = append(matrix.Rows, entity.AnswerRow{
			Vote:    v.Vote,
			Answers: v.MCQAnswers,
		})
	}
	return matrix
}
