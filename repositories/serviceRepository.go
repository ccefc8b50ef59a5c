package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"orthonova/cache"
	"orthonova/database"
	"orthonova/models"
)

const (
	ServiceCacheExpiry = 24 * time.Hour
)

type ServiceRepository struct {
	cache *cache.Cache
}

func NewServiceRepository(cache *cache.Cache) *ServiceRepository {
	return &ServiceRepository{cache: cache}
}

func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if err := database.DB.WithContext(ctx).Create(service).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return r.cache.DeleteAll(ctx, "services_cache")
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	err := database.DB.WithContext(ctx).First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "services_cache"
	cachedServices, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedServices != "" {
		var services []models.Service
		if err := json.Unmarshal([]byte(cachedServices), &services); err == nil {
			return services, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get services from cache: %v", err)
	}

	var services []models.Service
	err = database.DB.WithContext(ctx).Order("service_name ASC").Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all services: %w", err)
	}

	servicesJSON, err := json.Marshal(services)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal services: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, servicesJSON, ServiceCacheExpiry); err != nil {
		log.Printf("Failed to set services in cache: %v", err)
	}

	return services, nil
}

// PriceLookup loads the current catalog prices for a set of service IDs.
// Callers decide what a missing entry means; billing treats it as an error.
func (r *ServiceRepository) PriceLookup(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	var services []models.Service
	if err := database.DB.WithContext(ctx).Where("id IN ?", ids).Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to load service prices: %w", err)
	}
	prices := make(map[int64]decimal.Decimal, len(services))
	for _, s := range services {
		prices[s.ID] = s.Price
	}
	return prices, nil
}
