package dto

type AddressResponse struct {
	CEP          string `json:"cep"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}
