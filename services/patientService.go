package services

import (
	"context"
	"fmt"

	"orthonova/models"
	"orthonova/repositories"
	"orthonova/utils"
)

type PatientService struct {
	repository *repositories.PatientRepository
}

func NewPatientService(repository *repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

// Register validates the submitted form, derives the patient ID and age,
// and persists the record.
func (s *PatientService) Register(ctx context.Context, form utils.PatientForm) (*models.Patient, error) {
	if err := utils.ValidatePatientForm(form); err != nil {
		return nil, err
	}

	age, err := utils.AgeFromDOB(form.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		PatientID:     utils.GeneratePatientID(form.Name, form.ContactNumber),
		Name:          form.Name,
		DateOfBirth:   form.DateOfBirth,
		Age:           age,
		Gender:        form.Gender,
		ContactNumber: form.ContactNumber,
		Address:       form.Address,
	}
	if err := s.repository.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}
	return patient, nil
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.repository.GetAll(ctx)
}
