package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

var _ auditService = &auditServiceMock{}

type auditServiceMock struct {
	HistoryFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.AuditRecord, error)

	calls struct {
		History []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
		}
	}
	lockHistory sync.RWMutex
}

func (mock *auditServiceMock) History(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("auditServiceMock.HistoryFunc: method is nil but auditService.History was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
	}{
		Ctx:        ctx,
		EntityType: entityType,
		EntityID:   entityID,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, entityType, entityID)
}

func (mock *auditServiceMock) HistoryCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
