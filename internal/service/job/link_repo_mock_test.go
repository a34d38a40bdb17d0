package job

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

var _ linkRepo = &linkRepoMock{}

type linkRepoMock struct {
	GetApprovedForShareFunc func(ctx context.Context, recruiterID uuid.UUID, businessID uuid.UUID) (*domain.RecruiterLink, error)

	calls struct {
		GetApprovedForShare []struct {
			Ctx         context.Context
			RecruiterID uuid.UUID
			BusinessID  uuid.UUID
		}
	}
	lockGetApprovedForShare sync.RWMutex
}

func (mock *linkRepoMock) GetApprovedForShare(ctx context.Context, recruiterID uuid.UUID, businessID uuid.UUID) (*domain.RecruiterLink, error) {
	if mock.GetApprovedForShareFunc == nil {
		panic("linkRepoMock.GetApprovedForShareFunc: method is nil but linkRepo.GetApprovedForShare was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecruiterID uuid.UUID
		BusinessID  uuid.UUID
	}{
		Ctx:         ctx,
		RecruiterID: recruiterID,
		BusinessID:  businessID,
	}
	mock.lockGetApprovedForShare.Lock()
	mock.calls.GetApprovedForShare = append(mock.calls.GetApprovedForShare, callInfo)
	mock.lockGetApprovedForShare.Unlock()
	return mock.GetApprovedForShareFunc(ctx, recruiterID, businessID)
}

func (mock *linkRepoMock) GetApprovedForShareCalls() []struct {
	Ctx         context.Context
	RecruiterID uuid.UUID
	BusinessID  uuid.UUID
} {
	mock.lockGetApprovedForShare.RLock()
	calls := mock.calls.GetApprovedForShare
	mock.lockGetApprovedForShare.RUnlock()
	return calls
}
