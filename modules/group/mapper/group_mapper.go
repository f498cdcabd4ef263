package mapper

import (
	"strings"

	"pickup/modules/group/dto"
	"pickup/modules/group/entity"
)

func ToGroupEntity(req *dto.GroupRequest) *entity.Group {
	return &entity.Group{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
}

func ToGroupResponse(entity *entity.Group) *dto.GroupResponse {
	members := []string(entity.Members)
	if members == nil {
		members = []string{}
	}
	return &dto.GroupResponse{
		ID:          entity.ID.String(),
		Name:        entity.Name,
		Slug:        entity.Slug,
		Description: entity.Description,
		Members:     members,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func ToGroupResponses(groups []entity.Group) []dto.GroupResponse {
	out := make([]dto.GroupResponse, len(groups))
	for i := range groups {
		out[i] = *ToGroupResponse(&groups[i])
	}
	return out
}
