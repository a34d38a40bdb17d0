package application

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

var _ jobRepo = &jobRepoMock{}

type jobRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	GetForShareFunc func(ctx context.Context, id uuid.UUID) (*domain.Job, error)

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

func (mock *jobRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	if mock.GetByIDFunc == nil {
		panic("jobRepoMock.GetByIDFunc: method is nil but jobRepo.GetByID was just called")
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

func (mock *jobRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *jobRepoMock) GetForShare(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	if mock.GetForShareFunc == nil {
		panic("jobRepoMock.GetForShareFunc: method is nil but jobRepo.GetForShare was just called")
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

func (mock *jobRepoMock) GetForShareCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForShare.RLock()
	calls := mock.calls.GetForShare
	mock.lockGetForShare.RUnlock()
	return calls
}
