package converter

import (
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/infrastructure/cep"
)

func AddressToResponse(address *cep.Address) *dto.AddressResponse {
	if address == nil {
		return nil
	}

	return &dto.AddressResponse{
		CEP:          address.CEP,
		Address:      address.Street,
		Neighborhood: address.Neighborhood,
		City:         address.City,
		State:        address.State,
	}
}
