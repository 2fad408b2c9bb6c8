package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

func slotCacheKey(mentorID uuid.UUID) string {
	return fmt.Sprintf("slots:%s", mentorID.String())
}

// invalidateSlotCache is best effort: a stale entry lives at most one TTL.
func invalidateSlotCache(ctx context.Context, cache *redis.Client, log logrus.FieldLogger, mentorID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, slotCacheKey(mentorID)).Err(); err != nil {
		log.WithError(err).WithField("mentor_id", mentorID).Warn("failed to invalidate slot cache")
	}
}

func readSlotCache(ctx context.Context, cache *redis.Client, mentorID uuid.UUID) ([]domain.Slot, bool, error) {
	if cache == nil {
		return nil, false, nil
	}

	raw, err := cache.Get(ctx, slotCacheKey(mentorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var slots []domain.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false, err
	}
	return slots, true, nil
}

func writeSlotCache(ctx context.Context, cache *redis.Client, mentorID uuid.UUID, slots []domain.Slot, ttl time.Duration) error {
	if cache == nil {
		return nil
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return cache.Set(ctx, slotCacheKey(mentorID), raw, ttl).Err()
}
