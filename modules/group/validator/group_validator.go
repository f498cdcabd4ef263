package validator

import (
	"pickup/core/validator"
	"pickup/modules/group/dto"
)

func ValidateGroupRequest(req *dto.GroupRequest) *validator.Result {
	result := validator.New()
	result.Required("name", req.Name)
	result.MaxLength("name", req.Name, 120)
	result.MaxLength("description", req.Description, 2000)
	return result
}
