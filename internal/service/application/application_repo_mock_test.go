package application

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	CreateFunc            func(ctx context.Context, a *domain.Application) (*domain.Application, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	GetForUpdateFunc      func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	UpdateStateFunc       func(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.ApplicationStatus, currentRound int, reason *string) (*domain.Application, error)
	AppendRoundUpdateFunc func(ctx context.Context, u *domain.RoundUpdate) (*domain.RoundUpdate, error)
	ListRoundUpdatesFunc  func(ctx context.Context, applicationID uuid.UUID) ([]domain.RoundUpdate, error)
	ListByJobFunc         func(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error)
	ListByJobseekerFunc   func(ctx context.Context, jobseekerID uuid.UUID) ([]domain.Application, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Application
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateState []struct {
			Ctx             context.Context
			ID              uuid.UUID
			ExpectedVersion int
			Status          domain.ApplicationStatus
			CurrentRound    int
			Reason          *string
		}
		AppendRoundUpdate []struct {
			Ctx context.Context
			U   *domain.RoundUpdate
		}
		ListRoundUpdates []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
		}
		ListByJob []struct {
			Ctx   context.Context
			JobID uuid.UUID
		}
		ListByJobseeker []struct {
			Ctx         context.Context
			JobseekerID uuid.UUID
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockGetForUpdate      sync.RWMutex
	lockUpdateState       sync.RWMutex
	lockAppendRoundUpdate sync.RWMutex
	lockListRoundUpdates  sync.RWMutex
	lockListByJob         sync.RWMutex
	lockListByJobseeker   sync.RWMutex
}

func (mock *applicationRepoMock) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	if mock.CreateFunc == nil {
		panic("applicationRepoMock.CreateFunc: method is nil but applicationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Application
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *applicationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Application
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if mock.GetByIDFunc == nil {
		panic("applicationRepoMock.GetByIDFunc: method is nil but applicationRepo.GetByID was just called")
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

func (mock *applicationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if mock.GetForUpdateFunc == nil {
		panic("applicationRepoMock.GetForUpdateFunc: method is nil but applicationRepo.GetForUpdate was just called")
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

func (mock *applicationRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) UpdateState(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.ApplicationStatus, currentRound int, reason *string) (*domain.Application, error) {
	if mock.UpdateStateFunc == nil {
		panic("applicationRepoMock.UpdateStateFunc: method is nil but applicationRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              uuid.UUID
		ExpectedVersion int
		Status          domain.ApplicationStatus
		CurrentRound    int
		Reason          *string
	}{
		Ctx:             ctx,
		ID:              id,
		ExpectedVersion: expectedVersion,
		Status:          status,
		CurrentRound:    currentRound,
		Reason:          reason,
	}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, id, expectedVersion, status, currentRound, reason)
}

func (mock *applicationRepoMock) UpdateStateCalls() []struct {
	Ctx             context.Context
	ID              uuid.UUID
	ExpectedVersion int
	Status          domain.ApplicationStatus
	CurrentRound    int
	Reason          *string
} {
	mock.lockUpdateState.RLock()
	calls := mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}

func (mock *applicationRepoMock) AppendRoundUpdate(ctx context.Context, u *domain.RoundUpdate) (*domain.RoundUpdate, error) {
	if mock.AppendRoundUpdateFunc == nil {
		panic("applicationRepoMock.AppendRoundUpdateFunc: method is nil but applicationRepo.AppendRoundUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.RoundUpdate
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockAppendRoundUpdate.Lock()
	mock.calls.AppendRoundUpdate = append(mock.calls.AppendRoundUpdate, callInfo)
	mock.lockAppendRoundUpdate.Unlock()
	return mock.AppendRoundUpdateFunc(ctx, u)
}

func (mock *applicationRepoMock) AppendRoundUpdateCalls() []struct {
	Ctx context.Context
	U   *domain.RoundUpdate
} {
	mock.lockAppendRoundUpdate.RLock()
	calls := mock.calls.AppendRoundUpdate
	mock.lockAppendRoundUpdate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) ListRoundUpdates(ctx context.Context, applicationID uuid.UUID) ([]domain.RoundUpdate, error) {
	if mock.ListRoundUpdatesFunc == nil {
		panic("applicationRepoMock.ListRoundUpdatesFunc: method is nil but applicationRepo.ListRoundUpdates was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
	}{
		Ctx:           ctx,
		ApplicationID: applicationID,
	}
	mock.lockListRoundUpdates.Lock()
	mock.calls.ListRoundUpdates = append(mock.calls.ListRoundUpdates, callInfo)
	mock.lockListRoundUpdates.Unlock()
	return mock.ListRoundUpdatesFunc(ctx, applicationID)
}

func (mock *applicationRepoMock) ListRoundUpdatesCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
} {
	mock.lockListRoundUpdates.RLock()
	calls := mock.calls.ListRoundUpdates
	mock.lockListRoundUpdates.RUnlock()
	return calls
}

func (mock *applicationRepoMock) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	if mock.ListByJobFunc == nil {
		panic("applicationRepoMock.ListByJobFunc: method is nil but applicationRepo.ListByJob was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		JobID uuid.UUID
	}{
		Ctx:   ctx,
		JobID: jobID,
	}
	mock.lockListByJob.Lock()
	mock.calls.ListByJob = append(mock.calls.ListByJob, callInfo)
	mock.lockListByJob.Unlock()
	return mock.ListByJobFunc(ctx, jobID)
}

func (mock *applicationRepoMock) ListByJobCalls() []struct {
	Ctx   context.Context
	JobID uuid.UUID
} {
	mock.lockListByJob.RLock()
	calls := mock.calls.ListByJob
	mock.lockListByJob.RUnlock()
	return calls
}

func (mock *applicationRepoMock) ListByJobseeker(ctx context.Context, jobseekerID uuid.UUID) ([]domain.Application, error) {
	if mock.ListByJobseekerFunc == nil {
		panic("applicationRepoMock.ListByJobseekerFunc: method is nil but applicationRepo.ListByJobseeker was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		JobseekerID uuid.UUID
	}{
		Ctx:         ctx,
		JobseekerID: jobseekerID,
	}
	mock.lockListByJobseeker.Lock()
	mock.calls.ListByJobseeker = append(mock.calls.ListByJobseeker, callInfo)
	mock.lockListByJobseeker.Unlock()
	return mock.ListByJobseekerFunc(ctx, jobseekerID)
}

func (mock *applicationRepoMock) ListByJobseekerCalls() []struct {
	Ctx         context.Context
	JobseekerID uuid.UUID
} {
	mock.lockListByJobseeker.RLock()
	calls := mock.calls.ListByJobseeker
	mock.lockListByJobseeker.RUnlock()
	return calls
}
