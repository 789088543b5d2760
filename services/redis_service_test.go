package services

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLockFirstAttempt(t *testing.T) {
	rdb, mockRedis := redismock.NewClientMock()
	key := SlotLockKey(7, "15/10/2026")
	ttl := 5 * time.Second

	mockRedis.ExpectSetNX(key, 1, ttl).SetVal(true)

	acquired, err := AcquireLock(context.Background(), rdb, key, ttl)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestAcquireLockContested(t *testing.T) {
	rdb, mockRedis := redismock.NewClientMock()
	key := BookingLockKey(42)
	ttl := 5 * time.Second

	// Người khác đang giữ khóa: cả 5 lần thử đều trượt, không ai thắng kép
	for i := 0; i < 5; i++ {
		mockRedis.ExpectSetNX(key, 1, ttl).SetVal(false)
	}

	acquired, err := AcquireLock(context.Background(), rdb, key, ttl)
	require.NoError(t, err)
	assert.False(t, acquired)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestAcquireLockRetriesThenWins(t *testing.T) {
	rdb, mockRedis := redismock.NewClientMock()
	key := BookingLockKey(42)
	ttl := 5 * time.Second

	mockRedis.ExpectSetNX(key, 1, ttl).SetVal(false)
	mockRedis.ExpectSetNX(key, 1, ttl).SetVal(false)
	mockRedis.ExpectSetNX(key, 1, ttl).SetVal(true)

	acquired, err := AcquireLock(context.Background(), rdb, key, ttl)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestReleaseLock(t *testing.T) {
	rdb, mockRedis := redismock.NewClientMock()
	key := BookingLockKey(42)

	mockRedis.ExpectDel(key).SetVal(1)

	ReleaseLock(context.Background(), rdb, key)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
