package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Hàm lấy data từ Redis
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	// Parse JSON thành object
	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// Hàm xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

// SlotLockKey khóa tuần tự hóa theo cặp (phòng, ngày): hai yêu cầu tạo đơn
// trùng khung giờ trên cùng phòng cùng ngày phải đi qua cùng một khóa
func SlotLockKey(facilityID uint, bookingDate string) string {
	return fmt.Sprintf("booking_slot_lock:%d:%s", facilityID, bookingDate)
}

// BookingLockKey khóa tuần tự hóa các transition trên một đơn
func BookingLockKey(bookingID uint) string {
	return fmt.Sprintf("booking_tx_lock:%d", bookingID)
}

// AcquireLock lấy khóa bằng SETNX, thử lại vài lần trước khi bỏ cuộc
func AcquireLock(ctx context.Context, rdb *redis.Client, key string, ttl time.Duration) (bool, error) {
	for attempt := 0; attempt < 5; attempt++ {
		ok, err := rdb.SetNX(ctx, key, 1, ttl).Result()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return false, nil
}

// ReleaseLock nhả khóa
func ReleaseLock(ctx context.Context, rdb *redis.Client, key string) {
	_ = rdb.Del(ctx, key).Err()
}
