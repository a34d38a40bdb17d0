package recruiterlink

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

var _ linkRepo = &linkRepoMock{}

type linkRepoMock struct {
	CreateFunc               func(ctx context.Context, l *domain.RecruiterLink) (*domain.RecruiterLink, error)
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error)
	GetForUpdateFunc         func(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error)
	GetActiveByRecruiterFunc func(ctx context.Context, recruiterID uuid.UUID) (*domain.RecruiterLink, error)
	ListByBusinessFunc       func(ctx context.Context, businessID uuid.UUID, status domain.LinkStatus) ([]domain.RecruiterLink, error)
	UpdateStatusFunc         func(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.LinkStatus, reason *string) (*domain.RecruiterLink, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.RecruiterLink
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetActiveByRecruiter []struct {
			Ctx         context.Context
			RecruiterID uuid.UUID
		}
		ListByBusiness []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Status     domain.LinkStatus
		}
		UpdateStatus []struct {
			Ctx             context.Context
			ID              uuid.UUID
			ExpectedVersion int
			Status          domain.LinkStatus
			Reason          *string
		}
	}
	lockCreate               sync.RWMutex
	lockGetByID              sync.RWMutex
	lockGetForUpdate         sync.RWMutex
	lockGetActiveByRecruiter sync.RWMutex
	lockListByBusiness       sync.RWMutex
	lockUpdateStatus         sync.RWMutex
}

func (mock *linkRepoMock) Create(ctx context.Context, l *domain.RecruiterLink) (*domain.RecruiterLink, error) {
	if mock.CreateFunc == nil {
		panic("linkRepoMock.CreateFunc: method is nil but linkRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.RecruiterLink
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *linkRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.RecruiterLink
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *linkRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error) {
	if mock.GetByIDFunc == nil {
		panic("linkRepoMock.GetByIDFunc: method is nil but linkRepo.GetByID was just called")
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

func (mock *linkRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *linkRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error) {
	if mock.GetForUpdateFunc == nil {
		panic("linkRepoMock.GetForUpdateFunc: method is nil but linkRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *linkRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *linkRepoMock) GetActiveByRecruiter(ctx context.Context, recruiterID uuid.UUID) (*domain.RecruiterLink, error) {
	if mock.GetActiveByRecruiterFunc == nil {
		panic("linkRepoMock.GetActiveByRecruiterFunc: method is nil but linkRepo.GetActiveByRecruiter was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecruiterID uuid.UUID
	}{
		Ctx:         ctx,
		RecruiterID: recruiterID,
	}
	mock.lockGetActiveByRecruiter.Lock()
	mock.calls.GetActiveByRecruiter = append(mock.calls.GetActiveByRecruiter, callInfo)
	mock.lockGetActiveByRecruiter.Unlock()
	return mock.GetActiveByRecruiterFunc(ctx, recruiterID)
}

func (mock *linkRepoMock) GetActiveByRecruiterCalls() []struct {
	Ctx         context.Context
	RecruiterID uuid.UUID
} {
	mock.lockGetActiveByRecruiter.RLock()
	calls := mock.calls.GetActiveByRecruiter
	mock.lockGetActiveByRecruiter.RUnlock()
	return calls
}

func (mock *linkRepoMock) ListByBusiness(ctx context.Context, businessID uuid.UUID, status domain.LinkStatus) ([]domain.RecruiterLink, error) {
	if mock.ListByBusinessFunc == nil {
		panic("linkRepoMock.ListByBusinessFunc: method is nil but linkRepo.ListByBusiness was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		BusinessID uuid.UUID
		Status     domain.LinkStatus
	}{
		Ctx:        ctx,
		BusinessID: businessID,
		Status:     status,
	}
	mock.lockListByBusiness.Lock()
	mock.calls.ListByBusiness = append(mock.calls.ListByBusiness, callInfo)
	mock.lockListByBusiness.Unlock()
	return mock.ListByBusinessFunc(ctx, businessID, status)
}

func (mock *linkRepoMock) ListByBusinessCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Status     domain.LinkStatus
} {
	mock.lockListByBusiness.RLock()
	calls := mock.calls.ListByBusiness
	mock.lockListByBusiness.RUnlock()
	return calls
}

func (mock *linkRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.LinkStatus, reason *string) (*domain.RecruiterLink, error) {
	if mock.UpdateStatusFunc == nil {
		panic("linkRepoMock.UpdateStatusFunc: method is nil but linkRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              uuid.UUID
		ExpectedVersion int
		Status          domain.LinkStatus
		Reason          *string
	}{
		Ctx:             ctx,
		ID:              id,
		ExpectedVersion: expectedVersion,
		Status:          status,
		Reason:          reason,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, expectedVersion, status, reason)
}

func (mock *linkRepoMock) UpdateStatusCalls() []struct {
	Ctx             context.Context
	ID              uuid.UUID
	ExpectedVersion int
	Status          domain.LinkStatus
	Reason          *string
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
