package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"orthonova/cache"
	"orthonova/database"
	"orthonova/models"
	"orthonova/utils"
)

const (
	BillCacheExpiry = 7 * 24 * time.Hour
)

type BillRepository struct {
	cache *cache.Cache
}

func NewBillRepository(cache *cache.Cache) *BillRepository {
	return &BillRepository{cache: cache}
}

// CreateWithItems persists a bill and its line items in one transaction.
// Either everything is written or nothing is; a bill can never exist
// without its items. Unit prices are snapshotted from the catalog inside
// the transaction so later price changes never alter historical bills.
func (r *BillRepository) CreateWithItems(ctx context.Context, patientID string, lineItems []models.BillLineItem) (*models.Bill, error) {
	lockKey := fmt.Sprintf("bill_lock:%s", patientID)
	lockValue := uuid.New().String()
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return nil, fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	var bill models.Bill
	err = database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, "patient_id = ?", patientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("patient not found")
			}
			return fmt.Errorf("failed to find patient: %w", err)
		}

		ids := make([]int64, 0, len(lineItems))
		for _, item := range lineItems {
			ids = append(ids, item.ServiceID)
		}
		var services []models.Service
		if err := tx.Where("id IN ?", ids).Find(&services).Error; err != nil {
			return fmt.Errorf("failed to load services: %w", err)
		}
		catalog := make(map[int64]models.Service, len(services))
		prices := make(map[int64]decimal.Decimal, len(services))
		for _, s := range services {
			catalog[s.ID] = s
			prices[s.ID] = s.Price
		}

		total, err := utils.CalculateTotal(lineItems, prices)
		if err != nil {
			return err
		}

		bill = models.Bill{
			BillNumber:  utils.GenerateBillNumber(),
			PatientID:   patientID,
			TotalAmount: total,
			PaidAmount:  decimal.Zero,
			Balance:     total,
			Status:      models.BillStatusPending,
		}
		if err := tx.Create(&bill).Error; err != nil {
			return fmt.Errorf("failed to create bill: %w", err)
		}

		items := make([]models.BillItem, 0, len(lineItems))
		for _, item := range lineItems {
			service := catalog[item.ServiceID]
			amount := service.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			items = append(items, models.BillItem{
				BillID:      bill.ID,
				ServiceID:   service.ID,
				ServiceName: service.ServiceName,
				UnitPrice:   service.Price,
				Quantity:    item.Quantity,
				Amount:      amount,
				Discount:    decimal.Zero,
				FinalAmount: amount,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create bill items: %w", err)
		}
		bill.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Invalidate caches touched by the new bill.
	if err := r.cache.DeleteBatch(ctx, r.getBillCacheKey(bill.BillNumber)); err != nil {
		return nil, fmt.Errorf("failed to delete bill cache: %w", err)
	}
	if err := r.cache.DeleteAll(ctx, "bills_cache"); err != nil {
		return nil, fmt.Errorf("failed to delete all bills cache: %w", err)
	}
	return &bill, nil
}

func (r *BillRepository) GetByNumber(ctx context.Context, billNumber string) (*models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getBillCacheKey(billNumber)
	cachedBill, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedBill != "" {
		var bill models.Bill
		if err := json.Unmarshal([]byte(cachedBill), &bill); err == nil {
			return &bill, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get bill from cache: %v", err)
	}

	var bill models.Bill
	err = database.DB.WithContext(ctx).
		Preload("Items").
		First(&bill, "bill_number = ?", billNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	billJSON, err := json.Marshal(bill)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bill: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, billJSON, BillCacheExpiry); err != nil {
		log.Printf("Failed to set bill in cache: %v", err)
	}

	return &bill, nil
}

// GetAll returns the bill history, items included, newest first. Item rows
// carry their own snapshots so no join against live catalog prices happens.
func (r *BillRepository) GetAll(ctx context.Context) ([]models.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "bills_cache"
	cachedBills, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedBills != "" {
		var bills []models.Bill
		if err := json.Unmarshal([]byte(cachedBills), &bills); err == nil {
			return bills, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get bills from cache: %v", err)
	}

	var bills []models.Bill
	err = database.DB.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&bills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all bills: %w", err)
	}

	billsJSON, err := json.Marshal(bills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bills: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, billsJSON, BillCacheExpiry); err != nil {
		log.Printf("Failed to set bills in cache: %v", err)
	}

	return bills, nil
}

func (r *BillRepository) getBillCacheKey(billNumber string) string {
	return fmt.Sprintf("bill_cache:%s", billNumber)
}
