package validation

import (
	"fmt"

	"github.com/ideanest/ideanest-backend/internal/entity"
	usecase "github.com/ideanest/ideanest-backend/internal/usecase/validation"
)

const noValidationsText = "No validations yet"

// toStatsDTO converts raw counts into the analytics view, rendering
// percent display strings. With zero validations every percent field
// reads "No validations yet" and no division happens.
func toStatsDTO(stats entity.ValidationStats) *entity.ValidationStatsDTO {
	dto := &entity.ValidationStatsDTO{
		Upvotes:   stats.Upvotes,
		Downvotes: stats.Downvotes,
		Maybes:    stats.Maybes,
		Total:     stats.Total,
	}

	if stats.Total == 0 {
		dto.UpvotePercent = noValidationsText
		dto.DownvotePercent = noValidationsText
		dto.MaybePercent = noValidationsText
		return dto
	}

	dto.UpvotePercent = percentText(stats.Upvotes, stats.Total)
	dto.DownvotePercent = percentText(stats.Downvotes, stats.Total)
	dto.MaybePercent = percentText(stats.Maybes, stats.Total)
	return dto
}

func percentText(count, total int) string {
	return fmt.Sprintf("%d%% of total", usecase.Percentage(count, total))
}
