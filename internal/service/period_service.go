package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/academia-console-api/internal/models"
	appErrors "github.com/noah-isme/academia-console-api/pkg/errors"
)

type courseCatalog interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	DateRange(ctx context.Context) (models.DateRange, error)
}

// PeriodService maps period selections to concrete date ranges. The
// discrete periods are the deduplicated start/end pairs observed in the
// course catalog; the sentinel "all" is resolved against the dataset's
// min/max dates.
type PeriodService struct {
	catalog courseCatalog
	cache   *CacheService
	logger  *zap.Logger
	ttl     time.Duration
	now     func() time.Time
}

// NewPeriodService constructs a period service.
func NewPeriodService(catalog courseCatalog, cache *CacheService, ttl time.Duration, logger *zap.Logger) *PeriodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &PeriodService{
		catalog: catalog,
		cache:   cache,
		logger:  logger,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Discover returns the selectable periods, newest first.
func (s *PeriodService) Discover(ctx context.Context) ([]models.Period, error) {
	const cacheKey = "reports:periods"
	var cached []models.Period
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	courses, err := s.catalog.ListCourses(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses for period discovery")
	}

	seen := map[string]struct{}{}
	periods := make([]models.Period, 0, len(courses))
	for _, course := range courses {
		if course.StartsAt == nil || course.EndsAt == nil {
			continue
		}
		period := models.NewPeriod(*course.StartsAt, *course.EndsAt)
		if _, ok := seen[period.Key]; ok {
			continue
		}
		seen[period.Key] = struct{}{}
		periods = append(periods, period)
	}
	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].Start.After(periods[j].Start)
	})

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, periods, s.ttl); err != nil {
			s.logger.Warn("period cache write failed", zap.Error(err))
		}
	}
	return periods, nil
}

// Resolve turns a period key into a concrete date range. The "all"
// sentinel (or an empty key) consults range discovery; when that fails
// or the dataset is empty it falls back to the current calendar year
// rather than blocking report generation.
func (s *PeriodService) Resolve(ctx context.Context, key string) (models.Period, error) {
	if key == "" || key == models.PeriodAll {
		return s.resolveAll(ctx), nil
	}

	periods, err := s.Discover(ctx)
	if err != nil {
		return models.Period{}, err
	}
	for _, period := range periods {
		if period.Key == key {
			return period, nil
		}
	}
	return models.Period{}, appErrors.Clone(appErrors.ErrUnknownPeriod, "unknown report period "+key)
}

func (s *PeriodService) resolveAll(ctx context.Context) models.Period {
	dataRange, err := s.catalog.DateRange(ctx)
	if err != nil || dataRange.Start == nil || dataRange.End == nil {
		if err != nil {
			s.logger.Warn("date range discovery failed, using calendar-year fallback", zap.Error(err))
		}
		return s.fallbackPeriod()
	}
	return models.Period{Key: models.PeriodAll, Start: *dataRange.Start, End: *dataRange.End}
}

func (s *PeriodService) fallbackPeriod() models.Period {
	year := s.now().UTC().Year()
	return models.Period{
		Key:   models.PeriodAll,
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
}
