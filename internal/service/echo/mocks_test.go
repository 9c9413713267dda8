package echo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/probelab/gqlprobe/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	InsertFunc    func(ctx context.Context, rec domain.EchoRecord) error
	ListFunc      func(ctx context.Context, limit, offset int) ([]domain.EchoRecord, int, error)
	DeleteAllFunc func(ctx context.Context) (int, error)

	calls struct {
		Insert []struct {
			Rec domain.EchoRecord
		}
		List []struct {
			Limit  int
			Offset int
		}
		DeleteAll []struct{}
	}
	lockInsert    sync.RWMutex
	lockList      sync.RWMutex
	lockDeleteAll sync.RWMutex
}

func (mock *recordRepoMock) Insert(ctx context.Context, rec domain.EchoRecord) error {
	if mock.InsertFunc == nil {
		panic("recordRepoMock.InsertFunc: method is nil but recordRepo.Insert was just called")
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		Rec domain.EchoRecord
	}{Rec: rec})
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, rec)
}

func (mock *recordRepoMock) InsertCalls() []struct {
	Rec domain.EchoRecord
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *recordRepoMock) List(ctx context.Context, limit, offset int) ([]domain.EchoRecord, int, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Limit  int
		Offset int
	}{Limit: limit, Offset: offset})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *recordRepoMock) ListCalls() []struct {
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recordRepoMock) DeleteAll(ctx context.Context) (int, error) {
	if mock.DeleteAllFunc == nil {
		panic("recordRepoMock.DeleteAllFunc: method is nil but recordRepo.DeleteAll was just called")
	}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, struct{}{})
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *recordRepoMock) DeleteAllCalls() []struct{} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	TouchFunc      func(ctx context.Context, id uuid.UUID, seenAt time.Time) error
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.Session, error)
	DeleteAllFunc  func(ctx context.Context) error

	calls struct {
		Touch []struct {
			ID     uuid.UUID
			SeenAt time.Time
		}
		ListRecent []struct {
			Limit int
		}
		DeleteAll []struct{}
	}
	lockTouch      sync.RWMutex
	lockListRecent sync.RWMutex
	lockDeleteAll  sync.RWMutex
}

func (mock *sessionRepoMock) Touch(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	if mock.TouchFunc == nil {
		panic("sessionRepoMock.TouchFunc: method is nil but sessionRepo.Touch was just called")
	}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, struct {
		ID     uuid.UUID
		SeenAt time.Time
	}{ID: id, SeenAt: seenAt})
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, id, seenAt)
}

func (mock *sessionRepoMock) TouchCalls() []struct {
	ID     uuid.UUID
	SeenAt time.Time
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.Session, error) {
	if mock.ListRecentFunc == nil {
		panic("sessionRepoMock.ListRecentFunc: method is nil but sessionRepo.ListRecent was just called")
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, struct {
		Limit int
	}{Limit: limit})
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *sessionRepoMock) ListRecentCalls() []struct {
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteAll(ctx context.Context) error {
	if mock.DeleteAllFunc == nil {
		panic("sessionRepoMock.DeleteAllFunc: method is nil but sessionRepo.DeleteAll was just called")
	}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, struct{}{})
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *sessionRepoMock) DeleteAllCalls() []struct{} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
