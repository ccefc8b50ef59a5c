package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"orthonova/models"
	"orthonova/repositories"
	"orthonova/utils"
)

type DoctorService struct {
	repository *repositories.DoctorRepository
}

func NewDoctorService(repository *repositories.DoctorRepository) *DoctorService {
	return &DoctorService{repository: repository}
}

// Register validates the submitted form, derives the doctor ID, and
// persists the record.
func (s *DoctorService) Register(ctx context.Context, form utils.DoctorForm) (*models.Doctor, error) {
	if err := utils.ValidateDoctorForm(form); err != nil {
		return nil, err
	}

	// Validation guarantees the fee parses as a positive decimal.
	fee, err := decimal.NewFromString(form.OPDFee)
	if err != nil {
		return nil, utils.ErrInvalidAmount
	}

	doctor := &models.Doctor{
		DoctorID:           utils.GenerateDoctorID(form.Name, form.RegistrationNumber),
		Name:               form.Name,
		ContactNumber:      form.ContactNumber,
		RegistrationNumber: form.RegistrationNumber,
		OPDFee:             fee,
	}
	if err := s.repository.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to register doctor: %w", err)
	}
	return doctor, nil
}

func (s *DoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *DoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.repository.GetAll(ctx)
}
