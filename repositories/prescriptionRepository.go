package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"orthonova/cache"
	"orthonova/database"
	"orthonova/models"
)

const (
	PrescriptionCacheExpiry = 24 * time.Hour
)

type PrescriptionRepository struct {
	cache *cache.Cache
}

func NewPrescriptionRepository(cache *cache.Cache) *PrescriptionRepository {
	return &PrescriptionRepository{cache: cache}
}

func (r *PrescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, "patient_id = ?", prescription.PatientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("patient not found")
			}
			return fmt.Errorf("failed to find patient: %w", err)
		}
		var doctor models.Doctor
		if err := tx.First(&doctor, "doctor_id = ?", prescription.DoctorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("doctor not found")
			}
			return fmt.Errorf("failed to find doctor: %w", err)
		}
		return tx.Create(prescription).Error
	})
	if err != nil {
		return err
	}
	return r.cache.DeleteAll(ctx, "prescriptions_cache")
}

func (r *PrescriptionRepository) GetByID(ctx context.Context, id int64) (*models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescription models.Prescription
	err := database.DB.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		First(&prescription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return &prescription, nil
}

func (r *PrescriptionRepository) GetAll(ctx context.Context) ([]models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "prescriptions_cache"
	cachedPrescriptions, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPrescriptions != "" {
		var prescriptions []models.Prescription
		if err := json.Unmarshal([]byte(cachedPrescriptions), &prescriptions); err == nil {
			return prescriptions, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get prescriptions from cache: %v", err)
	}

	var prescriptions []models.Prescription
	err = database.DB.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all prescriptions: %w", err)
	}

	prescriptionsJSON, err := json.Marshal(prescriptions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prescriptions: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, prescriptionsJSON, PrescriptionCacheExpiry); err != nil {
		log.Printf("Failed to set prescriptions in cache: %v", err)
	}

	return prescriptions, nil
}
