package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "doctorportal/database/repository/booking"
	slotRepo "doctorportal/database/repository/slot"
	"doctorportal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityService computes remaining openings per treatment for a date.
type AvailabilityService interface {
	// Resolve merges the slot-template catalog with the date's bookings and
	// returns one entry per template, each with the slots still open. Entries
	// with nothing left are returned with an empty list, not omitted.
	Resolve(ctx context.Context, date string) ([]models.TreatmentAvailability, error)
	// InvalidateDate drops the cached result for a date after a booking lands.
	InvalidateDate(ctx context.Context, date string)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Slots    slotRepo.SlotTemplateRepository
	Bookings bookingRepo.BookingRepository
	Cache    *redis.Client // nil disables caching
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func cacheKey(date string) string {
	return "availability:" + date
}

func (s *DefaultAvailabilityService) Resolve(ctx context.Context, date string) ([]models.TreatmentAvailability, error) {
	if cached, ok := s.fromCache(ctx, date); ok {
		return cached, nil
	}

	templates, err := s.Slots.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load slot templates: %w", err)
	}
	booked, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	result := make([]models.TreatmentAvailability, 0, len(templates))
	for _, template := range templates {
		taken := make(map[string]struct{})
		for _, b := range booked {
			if b.Treatment == template.Name {
				taken[b.Slot] = struct{}{}
			}
		}

		// Stable filter: template order is the response order.
		remaining := make([]string, 0, len(template.Slots))
		for _, slot := range template.Slots {
			if _, ok := taken[slot]; !ok {
				remaining = append(remaining, slot)
			}
		}
		result = append(result, models.TreatmentAvailability{Name: template.Name, Slots: remaining})
	}

	s.toCache(ctx, date, result)
	return result, nil
}

// InvalidateDate drops the cached availability for the given date. Cache
// trouble is logged and swallowed; the store remains the source of truth.
func (s *DefaultAvailabilityService) InvalidateDate(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cacheKey(date)).Err(); err != nil && s.Logger != nil {
		s.Logger.Warn("failed to invalidate availability cache", zap.String("date", date), zap.Error(err))
	}
}

func (s *DefaultAvailabilityService) fromCache(ctx context.Context, date string) ([]models.TreatmentAvailability, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, cacheKey(date)).Result()
	if err != nil {
		if err != redis.Nil && s.Logger != nil {
			s.Logger.Warn("availability cache read failed", zap.String("date", date), zap.Error(err))
		}
		return nil, false
	}
	var result []models.TreatmentAvailability
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return result, true
}

func (s *DefaultAvailabilityService) toCache(ctx context.Context, date string, result []models.TreatmentAvailability) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(date), raw, s.CacheTTL).Err(); err != nil && s.Logger != nil {
		s.Logger.Warn("availability cache write failed", zap.String("date", date), zap.Error(err))
	}
}
