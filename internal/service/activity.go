package service

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"hr_console/internal/util"
	"hr_console/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

// NoticeStore keeps notices until their expiry.
type NoticeStore interface {
	Add(ctx context.Context, operatorID uint, n model.Notice, ttl time.Duration) error
	List(ctx context.Context, operatorID uint, now time.Time) ([]model.Notice, error)
}

// AuditStore persists the audit trail.
type AuditStore interface {
	Create(entry *model.AuditEntry) error
	List(operatorID uint, page, limit int) ([]model.AuditEntry, int64, error)
}

type NoticeService struct {
	Store NoticeStore

	mu  sync.RWMutex
	ttl time.Duration
}

func NewNoticeService(store NoticeStore, ttl time.Duration) *NoticeService {
	return &NoticeService{Store: store, ttl: ttl}
}

func (s *NoticeService) SetTTL(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	s.ttl = ttl
	s.mu.Unlock()
}

func (s *NoticeService) TTL() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ttl
}

// Push shows a banner to the operator until the notice TTL runs out.
func (s *NoticeService) Push(ctx context.Context, operatorID uint, kind model.NoticeKind, message string) error {
	now := time.Now()
	ttl := s.TTL()
	n := model.Notice{
		ID:        model.NewID(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	return s.Store.Add(ctx, operatorID, n, ttl)
}

func (s *NoticeService) List(ctx context.Context, operatorID uint) ([]model.Notice, error) {
	return s.Store.List(ctx, operatorID, time.Now())
}

type AuditService struct {
	Repo AuditStore
}

func NewAuditService(repo AuditStore) *AuditService {
	return &AuditService{Repo: repo}
}

func (s *AuditService) Record(operatorID uint, action, target string, outcome model.AuditOutcome, detail string) error {
	return s.Repo.Create(&model.AuditEntry{
		OperatorID: operatorID,
		Action:     action,
		Target:     target,
		Outcome:    outcome,
		Detail:     detail,
	})
}

func (s *AuditService) List(operatorID uint, page, limit int) ([]model.AuditEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.Repo.List(operatorID, page, limit)
}

// Activity reports the outcome of a console mutation: a notice for the
// operator and an audit row. Either part may be nil.
type Activity struct {
	Notices *NoticeService
	Audit   *AuditService
}

func NewActivity(notices *NoticeService, audit *AuditService) *Activity {
	return &Activity{Notices: notices, Audit: audit}
}

// Done reports err when set, or success with message.
func (a *Activity) Done(ctx context.Context, action, target string, err error, message string) {
	if err != nil {
		a.report(ctx, action, target, model.OutcomeFailure, model.NoticeError, err.Error())
		return
	}
	a.report(ctx, action, target, model.OutcomeSuccess, model.NoticeSuccess, message)
}

// Warn reports an action that completed with a problem the operator must see.
func (a *Activity) Warn(ctx context.Context, action, target, message string) {
	a.report(ctx, action, target, model.OutcomeWarning, model.NoticeWarning, message)
}

func (a *Activity) report(ctx context.Context, action, target string, outcome model.AuditOutcome, kind model.NoticeKind, message string) {
	if a == nil {
		return
	}
	operatorID := util.OperatorIDFromContext(ctx)

	if a.Notices != nil && message != "" {
		if err := a.Notices.Push(ctx, operatorID, kind, message); err != nil {
			logger.Log.Warn("push notice failed", zap.String("action", action), zap.Error(err))
		}
	}
	if a.Audit != nil {
		detail := ""
		if outcome != model.OutcomeSuccess {
			detail = message
		}
		if err := a.Audit.Record(operatorID, action, target, outcome, detail); err != nil {
			logger.Log.Error("write audit entry failed", zap.String("action", action), zap.Error(err))
		}
	}
}

func businessTarget(businessID uint) string {
	return fmt.Sprintf("business:%d", businessID)
}
