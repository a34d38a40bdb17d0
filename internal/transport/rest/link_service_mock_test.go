package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/recruiterlink"
)

var _ linkService = &linkServiceMock{}

type linkServiceMock struct {
	RequestFunc        func(ctx context.Context, input recruiterlink.RequestInput) (recruiterlink.RequestResult, error)
	ApproveFunc        func(ctx context.Context, input recruiterlink.DecisionInput) (*domain.RecruiterLink, error)
	RejectFunc         func(ctx context.Context, input recruiterlink.DecisionInput) (*domain.RecruiterLink, error)
	UnlinkFunc         func(ctx context.Context, input recruiterlink.DecisionInput) (*domain.RecruiterLink, error)
	GetFunc            func(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error)
	MineFunc           func(ctx context.Context) (*domain.RecruiterLink, error)
	ListByBusinessFunc func(ctx context.Context, businessID uuid.UUID, status domain.LinkStatus) ([]domain.RecruiterLink, error)

	calls struct {
		Request []struct {
			Ctx   context.Context
			Input recruiterlink.RequestInput
		}
		Approve []struct {
			Ctx   context.Context
			Input recruiterlink.DecisionInput
		}
		Reject []struct {
			Ctx   context.Context
			Input recruiterlink.DecisionInput
		}
		Unlink []struct {
			Ctx   context.Context
			Input recruiterlink.DecisionInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Mine []struct {
			Ctx context.Context
		}
		ListByBusiness []struct {
			Ctx        context.Context
			BusinessID uuid.UUID
			Status     domain.LinkStatus
		}
	}
	lockRequest        sync.RWMutex
	lockApprove        sync.RWMutex
	lockReject         sync.RWMutex
	lockUnlink         sync.RWMutex
	lockGet            sync.RWMutex
	lockMine           sync.RWMutex
	lockListByBusiness sync.RWMutex
}

func (mock *linkServiceMock) Request(ctx context.Context, input recruiterlink.RequestInput) (recruiterlink.RequestResult, error) {
	if mock.RequestFunc == nil {
		panic("linkServiceMock.RequestFunc: method is nil but linkService.Request was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recruiterlink.RequestInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRequest.Lock()
	mock.calls.Request = append(mock.calls.Request, callInfo)
	mock.lockRequest.Unlock()
	return mock.RequestFunc(ctx, input)
}

func (mock *linkServiceMock) RequestCalls() []struct {
	Ctx   context.Context
	Input recruiterlink.RequestInput
} {
	mock.lockRequest.RLock()
	calls := mock.calls.Request
	mock.lockRequest.RUnlock()
	return calls
}

func (mock *linkServiceMock) Approve(ctx context.Context, input recruiterlink.DecisionInput) (*domain.RecruiterLink, error) {
	if mock.ApproveFunc == nil {
		panic("linkServiceMock.ApproveFunc: method is nil but linkService.Approve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recruiterlink.DecisionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, input)
}

func (mock *linkServiceMock) ApproveCalls() []struct {
	Ctx   context.Context
	Input recruiterlink.DecisionInput
} {
	mock.lockApprove.RLock()
	calls := mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *linkServiceMock) Reject(ctx context.Context, input recruiterlink.DecisionInput) (*domain.RecruiterLink, error) {
	if mock.RejectFunc == nil {
		panic("linkServiceMock.RejectFunc: method is nil but linkService.Reject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recruiterlink.DecisionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReject.Lock()
	mock.calls.Reject = append(mock.calls.Reject, callInfo)
	mock.lockReject.Unlock()
	return mock.RejectFunc(ctx, input)
}

func (mock *linkServiceMock) RejectCalls() []struct {
	Ctx   context.Context
	Input recruiterlink.DecisionInput
} {
	mock.lockReject.RLock()
	calls := mock.calls.Reject
	mock.lockReject.RUnlock()
	return calls
}

func (mock *linkServiceMock) Unlink(ctx context.Context, input recruiterlink.DecisionInput) (*domain.RecruiterLink, error) {
	if mock.UnlinkFunc == nil {
		panic("linkServiceMock.UnlinkFunc: method is nil but linkService.Unlink was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recruiterlink.DecisionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUnlink.Lock()
	mock.calls.Unlink = append(mock.calls.Unlink, callInfo)
	mock.lockUnlink.Unlock()
	return mock.UnlinkFunc(ctx, input)
}

func (mock *linkServiceMock) UnlinkCalls() []struct {
	Ctx   context.Context
	Input recruiterlink.DecisionInput
} {
	mock.lockUnlink.RLock()
	calls := mock.calls.Unlink
	mock.lockUnlink.RUnlock()
	return calls
}

func (mock *linkServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.RecruiterLink, error) {
	if mock.GetFunc == nil {
		panic("linkServiceMock.GetFunc: method is nil but linkService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *linkServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *linkServiceMock) Mine(ctx context.Context) (*domain.RecruiterLink, error) {
	if mock.MineFunc == nil {
		panic("linkServiceMock.MineFunc: method is nil but linkService.Mine was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMine.Lock()
	mock.calls.Mine = append(mock.calls.Mine, callInfo)
	mock.lockMine.Unlock()
	return mock.MineFunc(ctx)
}

func (mock *linkServiceMock) MineCalls() []struct {
	Ctx context.Context
} {
	mock.lockMine.RLock()
	calls := mock.calls.Mine
	mock.lockMine.RUnlock()
	return calls
}

func (mock *linkServiceMock) ListByBusiness(ctx context.Context, businessID uuid.UUID, status domain.LinkStatus) ([]domain.RecruiterLink, error) {
	if mock.ListByBusinessFunc == nil {
		panic("linkServiceMock.ListByBusinessFunc: method is nil but linkService.ListByBusiness was just called")
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

func (mock *linkServiceMock) ListByBusinessCalls() []struct {
	Ctx        context.Context
	BusinessID uuid.UUID
	Status     domain.LinkStatus
} {
	mock.lockListByBusiness.RLock()
	calls := mock.calls.ListByBusiness
	mock.lockListByBusiness.RUnlock()
	return calls
}
