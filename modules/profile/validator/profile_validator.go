package validator

import (
	"pickup/core/activity"
	"pickup/core/validator"
	"pickup/modules/profile/dto"
)

func ValidateProfileRequest(req *dto.ProfileRequest) *validator.Result {
	result := validator.New()
	result.Required("name", req.Name)
	result.MaxLength("name", req.Name, 120)
	result.MaxLength("bio", req.Bio, 2000)
	for _, a := range req.Activities {
		if !activity.IsValid(a) {
			result.Add("activities", "unknown activity "+a)
		}
	}
	return result
}
