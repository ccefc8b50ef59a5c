package utils

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"orthonova/cache"
)

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// SetResetCode stores the reset code for a user ID in Redis for 15 minutes.
func SetResetCode(ctx context.Context, userID, code string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Set(ctx, "reset_code:"+userID, code, 15*time.Minute)
}

// GetResetCode retrieves the reset code for a user ID from Redis.
func GetResetCode(ctx context.Context, userID string) (*string, error) {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return nil, err
	}
	code, err := cacheInstance.Get(ctx, "reset_code:"+userID)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, nil // no code outstanding
	}
	return &code, nil
}

// DeleteResetCode deletes the reset code for a user ID from Redis.
func DeleteResetCode(ctx context.Context, userID string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Delete(ctx, "reset_code:"+userID)
}
