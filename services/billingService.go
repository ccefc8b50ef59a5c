package services

import (
	"context"

	"orthonova/models"
	"orthonova/repositories"
	"orthonova/utils"
)

type BillingService struct {
	repository *repositories.BillRepository
}

func NewBillingService(repository *repositories.BillRepository) *BillingService {
	return &BillingService{repository: repository}
}

// Generate validates the bill submission and creates the bill together
// with its line items in one transaction. The total is recomputed
// server-side from catalog prices; any client-claimed amount is ignored.
func (s *BillingService) Generate(ctx context.Context, form utils.BillForm) (*models.Bill, error) {
	if err := utils.ValidateBillForm(form); err != nil {
		return nil, err
	}
	return s.repository.CreateWithItems(ctx, form.PatientID, form.Items)
}

func (s *BillingService) GetByNumber(ctx context.Context, billNumber string) (*models.Bill, error) {
	return s.repository.GetByNumber(ctx, billNumber)
}

func (s *BillingService) GetAll(ctx context.Context) ([]models.Bill, error) {
	return s.repository.GetAll(ctx)
}
