package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/academia-console-api/internal/dto"
	"github.com/noah-isme/academia-console-api/internal/models"
	appErrors "github.com/noah-isme/academia-console-api/pkg/errors"
)

type recordSource interface {
	StudentRecords(ctx context.Context, filter models.RecordFilter) ([]models.RawRecord, error)
	PaymentRecords(ctx context.Context, filter models.RecordFilter) ([]models.RawRecord, error)
	CourseRecords(ctx context.Context, filter models.RecordFilter) ([]models.RawRecord, error)
}

type periodResolver interface {
	Discover(ctx context.Context) ([]models.Period, error)
	Resolve(ctx context.Context, key string) (models.Period, error)
}

// ReportServiceConfig carries the per-domain page sizes and cache TTL.
type ReportServiceConfig struct {
	StudentsPageSize int
	CoursesPageSize  int
	FinancePageSize  int
	SnapshotTTL      time.Duration
}

// ReportService orchestrates the report pipeline: resolve period, fetch
// records, then recompute the session view. One ReportView is kept per
// authenticated user so search/sort/page changes re-render the already
// fetched snapshot without another round trip.
type ReportService struct {
	records   recordSource
	periods   periodResolver
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
	validator *validator.Validate
	cfg       ReportServiceConfig

	mu    sync.Mutex
	views map[string]*ReportView
}

// NewReportService constructs the report service.
func NewReportService(records recordSource, periods periodResolver, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cfg ReportServiceConfig) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.StudentsPageSize <= 0 {
		cfg.StudentsPageSize = 12
	}
	if cfg.CoursesPageSize <= 0 {
		cfg.CoursesPageSize = 12
	}
	if cfg.FinancePageSize <= 0 {
		cfg.FinancePageSize = 10
	}
	if cfg.SnapshotTTL <= 0 {
		cfg.SnapshotTTL = 5 * time.Minute
	}
	return &ReportService{
		records:   records,
		periods:   periods,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
		validator: validator.New(),
		cfg:       cfg,
		views:     map[string]*ReportView{},
	}
}

// Generate runs one fetch for the user's session and renders the first
// page. A fetch that is superseded before it lands is dropped; the
// render then reflects the newer generation.
func (s *ReportService) Generate(ctx context.Context, userID string, req dto.ReportRequest) (*dto.ReportViewResponse, *models.Pagination, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid report request")
	}
	if !req.Domain.Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unsupported report domain")
	}

	period, err := s.periods.Resolve(ctx, req.Period)
	if err != nil {
		return nil, nil, err
	}

	view := s.viewFor(userID, req.Domain)
	seq := view.BeginFetch(period, req.CourseID)

	filter := models.RecordFilter{
		Start:     period.Start,
		End:       period.End,
		Status:    models.RecordStatus(req.Status),
		CourseID:  view.CourseID(),
		Method:    req.Method,
		Shift:     req.Shift,
		Occupancy: req.Occupancy,
	}
	records, err := s.fetch(ctx, req.Domain, filter)
	if err != nil {
		return nil, nil, err
	}

	if !view.ApplyFetch(seq, records) {
		s.logger.Debug("superseded fetch dropped", zap.String("user_id", userID), zap.String("domain", string(req.Domain)))
	}
	if s.metrics != nil {
		s.metrics.RecordReportGeneration(string(req.Domain))
	}

	return s.render(view)
}

// View re-renders the session's report under updated selections without
// refetching. Only the stages affected by the change recompute, but the
// recomputation is always the full pure pipeline over the stored set.
func (s *ReportService) View(ctx context.Context, userID string, req dto.ViewRequest) (*dto.ReportViewResponse, *models.Pagination, error) {
	view, ok := s.currentView(userID)
	if !ok || !view.Fetched() {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "no generated report for this session")
	}

	view.SetSearch(strings.TrimSpace(req.Search))
	if req.SortBy != "" {
		key := models.SortKey(req.SortBy)
		if !key.ValidFor(view.Domain()) {
			return nil, nil, appErrors.Clone(appErrors.ErrValidation, "sort key not available for this report")
		}
		view.SetSort(key)
	}
	if req.HasPage {
		view.SetPage(req.Page)
	}

	return s.render(view)
}

// Periods exposes period discovery for the selector dropdown.
func (s *ReportService) Periods(ctx context.Context) ([]models.Period, error) {
	return s.periods.Discover(ctx)
}

func (s *ReportService) viewFor(userID string, domain models.ReportDomain) *ReportView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, ok := s.views[userID]
	if !ok || view.Domain() != domain {
		view = NewReportView(domain)
		s.views[userID] = view
	}
	return view
}

func (s *ReportService) currentView(userID string) (*ReportView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, ok := s.views[userID]
	return view, ok
}

func (s *ReportService) render(view *ReportView) (*dto.ReportViewResponse, *models.Pagination, error) {
	result := view.Render(s.pageSize(view.Domain()))
	resp := &dto.ReportViewResponse{
		Domain:       result.Domain,
		Period:       result.Period,
		Datos:        result.Groups.Items,
		Estadisticas: result.Statistics,
		Search:       result.Search,
		SortBy:       result.SortBy,
		Ascending:    result.Ascending,
	}
	pagination := &models.Pagination{
		Page:       result.Groups.Page,
		PageSize:   s.pageSize(result.Domain),
		TotalCount: result.TotalCount,
		TotalPages: result.Groups.TotalPages,
	}
	return resp, pagination, nil
}

func (s *ReportService) pageSize(domain models.ReportDomain) int {
	switch domain {
	case models.DomainFinance:
		return s.cfg.FinancePageSize
	case models.DomainCourses:
		return s.cfg.CoursesPageSize
	default:
		return s.cfg.StudentsPageSize
	}
}

func (s *ReportService) fetch(ctx context.Context, domain models.ReportDomain, filter models.RecordFilter) ([]models.RawRecord, error) {
	cacheKey := snapshotCacheKey(domain, filter)
	var cached []models.RawRecord
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	start := time.Now()
	var records []models.RawRecord
	var err error
	switch domain {
	case models.DomainFinance:
		records, err = s.records.PaymentRecords(ctx, filter)
	case models.DomainCourses:
		records, err = s.records.CourseRecords(ctx, filter)
	default:
		records, err = s.records.StudentRecords(ctx, filter)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch report records")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("report_"+string(domain), time.Since(start))
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, cacheKey, records, s.cfg.SnapshotTTL); cacheErr != nil {
			s.logger.Warn("report snapshot cache write failed", zap.Error(cacheErr))
		}
	}
	return records, nil
}

func snapshotCacheKey(domain models.ReportDomain, filter models.RecordFilter) string {
	var builder strings.Builder
	builder.WriteString("reports:")
	builder.WriteString(string(domain))
	for _, part := range []string{
		filter.Start.UTC().Format("2006-01-02"),
		filter.End.UTC().Format("2006-01-02"),
		string(filter.Status),
		filter.CourseID,
		filter.Method,
		filter.Shift,
		filter.Occupancy,
	} {
		builder.WriteByte(':')
		builder.WriteString(strings.ReplaceAll(part, ":", "|"))
	}
	return builder.String()
}
