package usecase

import (
	"context"
	"errors"

	"github.com/davi814/projeto-pi-definitivo/internal/converter"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/infrastructure/cep"
	"github.com/davi814/projeto-pi-definitivo/pkg/apperror"

	"github.com/sirupsen/logrus"
)

var ErrInvalidCEP = apperror.New(apperror.KindValidation, "CEP inválido")

type AddressUsecase interface {
	LookupCEP(ctx context.Context, rawCEP string) (*dto.AddressResponse, error)
}

type addressUsecase struct {
	log         *logrus.Logger
	cepResolver cep.Resolver
}

func NewAddressUsecase(log *logrus.Logger, cepResolver cep.Resolver) AddressUsecase {
	return &addressUsecase{
		log:         log,
		cepResolver: cepResolver,
	}
}

func (u *addressUsecase) LookupCEP(ctx context.Context, rawCEP string) (*dto.AddressResponse, error) {
	address, err := u.cepResolver.Resolve(ctx, rawCEP)
	if err != nil {
		if !errors.Is(err, cep.ErrNotFound) {
			u.log.Warnf("Failed to resolve CEP: %+v", err)
		}
		return nil, ErrInvalidCEP
	}

	return converter.AddressToResponse(address), nil
}
