package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hireflow-backend/internal/domain"
	"github.com/heartmarshall/hireflow-backend/internal/service/application"
)

var _ applicationService = &applicationServiceMock{}

type applicationServiceMock struct {
	ApplyFunc       func(ctx context.Context, input application.ApplyInput) (*domain.Application, error)
	ReviewFunc      func(ctx context.Context, input application.DecisionInput) (*domain.Application, error)
	ShortlistFunc   func(ctx context.Context, input application.DecisionInput) (*domain.Application, error)
	RejectFunc      func(ctx context.Context, input application.DecisionInput) (*domain.Application, error)
	WithdrawFunc    func(ctx context.Context, input application.DecisionInput) (*domain.Application, error)
	UpdateRoundFunc func(ctx context.Context, input application.RoundResultInput) (*domain.Application, error)
	GetFunc         func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListByJobFunc   func(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error)
	ListMineFunc    func(ctx context.Context) ([]domain.Application, error)

	calls struct {
		Apply []struct {
			Ctx   context.Context
			Input application.ApplyInput
		}
		Review []struct {
			Ctx   context.Context
			Input application.DecisionInput
		}
		Shortlist []struct {
			Ctx   context.Context
			Input application.DecisionInput
		}
		Reject []struct {
			Ctx   context.Context
			Input application.DecisionInput
		}
		Withdraw []struct {
			Ctx   context.Context
			Input application.DecisionInput
		}
		UpdateRound []struct {
			Ctx   context.Context
			Input application.RoundResultInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByJob []struct {
			Ctx   context.Context
			JobID uuid.UUID
		}
		ListMine []struct {
			Ctx context.Context
		}
	}
	lockApply       sync.RWMutex
	lockReview      sync.RWMutex
	lockShortlist   sync.RWMutex
	lockReject      sync.RWMutex
	lockWithdraw    sync.RWMutex
	lockUpdateRound sync.RWMutex
	lockGet         sync.RWMutex
	lockListByJob   sync.RWMutex
	lockListMine    sync.RWMutex
}

func (mock *applicationServiceMock) Apply(ctx context.Context, input application.ApplyInput) (*domain.Application, error) {
	if mock.ApplyFunc == nil {
		panic("applicationServiceMock.ApplyFunc: method is nil but applicationService.Apply was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.ApplyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, callInfo)
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, input)
}

func (mock *applicationServiceMock) ApplyCalls() []struct {
	Ctx   context.Context
	Input application.ApplyInput
} {
	mock.lockApply.RLock()
	calls := mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Review(ctx context.Context, input application.DecisionInput) (*domain.Application, error) {
	if mock.ReviewFunc == nil {
		panic("applicationServiceMock.ReviewFunc: method is nil but applicationService.Review was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.DecisionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReview.Lock()
	mock.calls.Review = append(mock.calls.Review, callInfo)
	mock.lockReview.Unlock()
	return mock.ReviewFunc(ctx, input)
}

func (mock *applicationServiceMock) ReviewCalls() []struct {
	Ctx   context.Context
	Input application.DecisionInput
} {
	mock.lockReview.RLock()
	calls := mock.calls.Review
	mock.lockReview.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Shortlist(ctx context.Context, input application.DecisionInput) (*domain.Application, error) {
	if mock.ShortlistFunc == nil {
		panic("applicationServiceMock.ShortlistFunc: method is nil but applicationService.Shortlist was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.DecisionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockShortlist.Lock()
	mock.calls.Shortlist = append(mock.calls.Shortlist, callInfo)
	mock.lockShortlist.Unlock()
	return mock.ShortlistFunc(ctx, input)
}

func (mock *applicationServiceMock) ShortlistCalls() []struct {
	Ctx   context.Context
	Input application.DecisionInput
} {
	mock.lockShortlist.RLock()
	calls := mock.calls.Shortlist
	mock.lockShortlist.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Reject(ctx context.Context, input application.DecisionInput) (*domain.Application, error) {
	if mock.RejectFunc == nil {
		panic("applicationServiceMock.RejectFunc: method is nil but applicationService.Reject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.DecisionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReject.Lock()
	mock.calls.Reject = append(mock.calls.Reject, callInfo)
	mock.lockReject.Unlock()
	return mock.RejectFunc(ctx, input)
}

func (mock *applicationServiceMock) RejectCalls() []struct {
	Ctx   context.Context
	Input application.DecisionInput
} {
	mock.lockReject.RLock()
	calls := mock.calls.Reject
	mock.lockReject.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Withdraw(ctx context.Context, input application.DecisionInput) (*domain.Application, error) {
	if mock.WithdrawFunc == nil {
		panic("applicationServiceMock.WithdrawFunc: method is nil but applicationService.Withdraw was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.DecisionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockWithdraw.Lock()
	mock.calls.Withdraw = append(mock.calls.Withdraw, callInfo)
	mock.lockWithdraw.Unlock()
	return mock.WithdrawFunc(ctx, input)
}

func (mock *applicationServiceMock) WithdrawCalls() []struct {
	Ctx   context.Context
	Input application.DecisionInput
} {
	mock.lockWithdraw.RLock()
	calls := mock.calls.Withdraw
	mock.lockWithdraw.RUnlock()
	return calls
}

func (mock *applicationServiceMock) UpdateRound(ctx context.Context, input application.RoundResultInput) (*domain.Application, error) {
	if mock.UpdateRoundFunc == nil {
		panic("applicationServiceMock.UpdateRoundFunc: method is nil but applicationService.UpdateRound was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input application.RoundResultInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateRound.Lock()
	mock.calls.UpdateRound = append(mock.calls.UpdateRound, callInfo)
	mock.lockUpdateRound.Unlock()
	return mock.UpdateRoundFunc(ctx, input)
}

func (mock *applicationServiceMock) UpdateRoundCalls() []struct {
	Ctx   context.Context
	Input application.RoundResultInput
} {
	mock.lockUpdateRound.RLock()
	calls := mock.calls.UpdateRound
	mock.lockUpdateRound.RUnlock()
	return calls
}

func (mock *applicationServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if mock.GetFunc == nil {
		panic("applicationServiceMock.GetFunc: method is nil but applicationService.Get was just called")
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

func (mock *applicationServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *applicationServiceMock) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	if mock.ListByJobFunc == nil {
		panic("applicationServiceMock.ListByJobFunc: method is nil but applicationService.ListByJob was just called")
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

func (mock *applicationServiceMock) ListByJobCalls() []struct {
	Ctx   context.Context
	JobID uuid.UUID
} {
	mock.lockListByJob.RLock()
	calls := mock.calls.ListByJob
	mock.lockListByJob.RUnlock()
	return calls
}

func (mock *applicationServiceMock) ListMine(ctx context.Context) ([]domain.Application, error) {
	if mock.ListMineFunc == nil {
		panic("applicationServiceMock.ListMineFunc: method is nil but applicationService.ListMine was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx)
}

func (mock *applicationServiceMock) ListMineCalls() []struct {
	Ctx context.Context
} {
	mock.lockListMine.RLock()
	calls := mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}
