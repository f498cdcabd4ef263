package mapper

import (
	"strings"

	"pickup/modules/profile/dto"
	"pickup/modules/profile/entity"
)

func ToProfileEntity(req *dto.ProfileRequest) *entity.Profile {
	activities := req.Activities
	if activities == nil {
		activities = []string{}
	}
	return &entity.Profile{
		Name:       strings.TrimSpace(req.Name),
		Bio:        req.Bio,
		Activities: activities,
	}
}

func ToProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	activities := []string(p.Activities)
	if activities == nil {
		activities = []string{}
	}
	return &dto.ProfileResponse{
		ID:         p.ID.String(),
		User:       p.UserID.String(),
		Name:       p.Name,
		Bio:        p.Bio,
		Activities: activities,
		CreatedAt:  p.CreatedAt,
	}
}

func ToProfileResponses(profiles []entity.Profile) []dto.ProfileResponse {
	out := make([]dto.ProfileResponse, len(profiles))
	for i := range profiles {
		out[i] = *ToProfileResponse(&profiles[i])
	}
	return out
}
