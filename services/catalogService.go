package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"orthonova/models"
	"orthonova/repositories"
	"orthonova/utils"
)

// CatalogService manages the service price catalog.
type CatalogService struct {
	repository *repositories.ServiceRepository
}

func NewCatalogService(repository *repositories.ServiceRepository) *CatalogService {
	return &CatalogService{repository: repository}
}

func (s *CatalogService) Add(ctx context.Context, form utils.ServiceForm) (*models.Service, error) {
	if err := utils.ValidateServiceForm(form); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		return nil, utils.ErrInvalidAmount
	}

	service := &models.Service{
		ServiceName: form.ServiceName,
		ServiceType: form.ServiceType,
		Price:       price,
	}
	if err := s.repository.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to add service: %w", err)
	}
	return service, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *CatalogService) GetAll(ctx context.Context) ([]models.Service, error) {
	return s.repository.GetAll(ctx)
}
