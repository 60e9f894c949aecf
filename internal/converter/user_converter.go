package converter

import (
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// ProfessionalID is set only when the profile is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		CPF:          user.CPF,
		Phone:        user.Phone,
		Role:         user.Role.String(),
		CEP:          user.CEP,
		Address:      user.Address,
		Neighborhood: user.Neighborhood,
		City:         user.City,
		State:        user.State,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if user.Professional != nil {
		id := user.Professional.ID
		response.ProfessionalID = &id
	}

	return response
}
