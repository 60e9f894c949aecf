package converter

import (
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
)

func CategoryToResponse(category *entity.ServiceCategory) *dto.CategoryResponse {
	if category == nil {
		return nil
	}

	return &dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Icon:        category.Icon,
		Description: category.Description,
	}
}

func CategoriesToResponses(categories []entity.ServiceCategory) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *CategoryToResponse(&categories[i])
	}
	return responses
}
