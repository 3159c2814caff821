package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/academia-console-api/internal/models"
	"github.com/noah-isme/academia-console-api/pkg/config"
	appErrors "github.com/noah-isme/academia-console-api/pkg/errors"
	"github.com/noah-isme/academia-console-api/pkg/jobs"
)

type auditStore interface {
	Insert(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]models.AuditLog, error)
	Count(ctx context.Context) (int, error)
}

// AuditService records console actions asynchronously and serves the
// audit history view. Writes go through an in-process queue so a slow
// audit insert never delays a report response.
type AuditService struct {
	repo     auditStore
	queue    *jobs.Queue
	logger   *zap.Logger
	pageSize int
}

// NewAuditService constructs the audit service and its writer queue.
func NewAuditService(repo auditStore, logger *zap.Logger, cfg config.AuditConfig) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 5
	}
	s := &AuditService{repo: repo, logger: logger, pageSize: cfg.PageSize}
	s.queue = jobs.NewQueue("audit", s.handle, jobs.QueueConfig{
		Workers:    cfg.Workers,
		BufferSize: cfg.BufferSize,
		Logger:     logger,
	})
	return s
}

// Start boots the writer queue.
func (s *AuditService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains and stops the writer queue.
func (s *AuditService) Stop() {
	s.queue.Stop()
}

// Record enqueues an audit entry. Best effort: a full queue is logged
// and the entry dropped rather than blocking the request path.
func (s *AuditService) Record(entry models.AuditLog) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if err := s.queue.Enqueue(jobs.Job{ID: entry.ID, Type: entry.Action, Payload: entry}); err != nil {
		s.logger.Warn("audit enqueue failed", zap.String("action", entry.Action), zap.Error(err))
	}
}

// History lists audit entries, newest first, in fixed pages of the
// configured size (5 for the console history panel).
func (s *AuditService) History(ctx context.Context, page int) ([]models.AuditLog, *models.Pagination, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count audit entries")
	}

	totalPages := (total + s.pageSize - 1) / s.pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	entries, err := s.repo.List(ctx, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list audit entries")
	}

	return entries, &models.Pagination{
		Page:       page,
		PageSize:   s.pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

func (s *AuditService) handle(ctx context.Context, job jobs.Job) error {
	entry, ok := job.Payload.(models.AuditLog)
	if !ok {
		s.logger.Warn("audit job with unexpected payload", zap.String("job_id", job.ID))
		return nil
	}
	return s.repo.Insert(ctx, &entry)
}
