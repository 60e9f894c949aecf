package converter

import (
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
)

// ServiceRequestToResponse includes party names when Client or Professional.User are loaded.
func ServiceRequestToResponse(request *entity.ServiceRequest) *dto.ServiceRequestResponse {
	if request == nil {
		return nil
	}

	return &dto.ServiceRequestResponse{
		ID:               request.ID,
		ClientID:         request.ClientID,
		ClientName:       request.Client.Name,
		ProfessionalID:   request.ProfessionalID,
		ProfessionalName: request.Professional.User.Name,
		Title:            request.Title,
		Description:      request.Description,
		Budget:           request.Budget,
		PreferredDate:    request.PreferredDate,
		Status:           string(request.Status),
		CreatedAt:        request.CreatedAt,
		UpdatedAt:        request.UpdatedAt,
	}
}

func ServiceRequestsToResponses(requests []entity.ServiceRequest) []dto.ServiceRequestResponse {
	responses := make([]dto.ServiceRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *ServiceRequestToResponse(&requests[i])
	}
	return responses
}
