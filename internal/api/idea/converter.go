package idea

import "github.com/ideanest/ideanest-backend/internal/entity"

// toListResponse wraps ideas into the listing DTO
func toListResponse(ideas []*entity.Idea) *entity.IdeaListResponse {
	return &entity.IdeaListResponse{
		Ideas: ideas,
		Count: len(ideas),
	}
}
