package business

import (
	"context"
	"sync"

	"github.com/heartmarshall/hireflow-backend/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, event domain.Event)

	calls struct {
		Notify []struct {
			Ctx   context.Context
			Event domain.Event
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, event domain.Event) {
	if mock.NotifyFunc == nil {
		panic("notifierMock.NotifyFunc: method is nil but notifier.Notify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Event domain.Event
	}{
		Ctx:   ctx,
		Event: event,
	}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	mock.NotifyFunc(ctx, event)
}

func (mock *notifierMock) NotifyCalls() []struct {
	Ctx   context.Context
	Event domain.Event
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
