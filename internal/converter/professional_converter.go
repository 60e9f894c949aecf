package converter

import (
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
)

// ProfessionalToResponse flattens the profile with its owner's public fields.
// Rating fields must be applied on the entity beforehand.
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:              professional.ID,
		UserID:          professional.UserID,
		Name:            professional.User.Name,
		Phone:           professional.User.Phone,
		City:            professional.User.City,
		State:           professional.User.State,
		Category:        CategoryToResponse(professional.Category),
		Bio:             professional.Bio,
		ExperienceYears: professional.ExperienceYears,
		StartingPrice:   professional.StartingPrice,
		ProfilePhoto:    professional.ProfilePhoto,
		Verified:        professional.Verified,
		ResponseTime:    professional.ResponseTime,
		AverageRating:   professional.AverageRating,
		ReviewCount:     professional.ReviewCount,
		CreatedAt:       professional.CreatedAt,
	}
}

func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *ProfessionalToResponse(&professionals[i])
	}
	return responses
}
