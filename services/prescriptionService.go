package services

import (
	"context"
	"fmt"

	"orthonova/models"
	"orthonova/repositories"
	"orthonova/utils"
)

type PrescriptionService struct {
	repository *repositories.PrescriptionRepository
}

func NewPrescriptionService(repository *repositories.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{repository: repository}
}

func (s *PrescriptionService) Create(ctx context.Context, form utils.PrescriptionForm) (*models.Prescription, error) {
	if err := utils.ValidatePrescriptionForm(form); err != nil {
		return nil, err
	}

	prescription := &models.Prescription{
		PatientID:   form.PatientID,
		DoctorID:    form.DoctorID,
		Diagnosis:   form.Diagnosis,
		Medications: form.Medications,
	}
	if err := s.repository.Create(ctx, prescription); err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}
	return prescription, nil
}

func (s *PrescriptionService) GetByID(ctx context.Context, id int64) (*models.Prescription, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PrescriptionService) GetAll(ctx context.Context) ([]models.Prescription, error) {
	return s.repository.GetAll(ctx)
}
