package job

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

var _ businessRepo = &businessRepoMock{}

type businessRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	GetForShareFunc func(ctx context.Context, id uuid.UUID) (*domain.Business, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForShare []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockGetForShare sync.RWMutex
}

func (mock *businessRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	if mock.GetByIDFunc == nil {
		panic("businessRepoMock.GetByIDFunc: method is nil but businessRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *businessRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *businessRepoMock) GetForShare(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	if mock.GetForShareFunc == nil {
		panic("businessRepoMock.GetForShareFunc: method is nil but businessRepo.GetForShare was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetForShare.Lock()
	mock.calls.GetForShare = append(mock.calls.GetForShare, callInfo)
	mock.lockGetForShare.Unlock()
	return mock.GetForShareFunc(ctx, id)
}

func (mock *businessRepoMock) GetForShareCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForShare.RLock()
	calls := mock.calls.GetForShare
	mock.lockGetForShare.RUnlock()
	return calls
}
