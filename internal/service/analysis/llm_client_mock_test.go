package analysis

import (
	"context"
	"sync"
)

var _ llmClient = &llmClientMock{}

type llmClientMock struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)
	ModelFunc    func() string

	calls struct {
		Complete []struct {
			Ctx    context.Context
			Prompt string
		}
		Model []struct{}
	}
	lockComplete sync.RWMutex
	lockModel    sync.RWMutex
}

func (mock *llmClientMock) Complete(ctx context.Context, prompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("llmClientMock.CompleteFunc: method is nil but llmClient.Complete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, prompt)
}

func (mock *llmClientMock) CompleteCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *llmClientMock) Model() string {
	if mock.ModelFunc == nil {
		panic("llmClientMock.ModelFunc: method is nil but llmClient.Model was just called")
	}
	mock.lockModel.Lock()
	mock.calls.Model = append(mock.calls.Model, struct{}{})
	mock.lockModel.Unlock()
	return mock.ModelFunc()
}

func (mock *llmClientMock) ModelCalls() []struct{} {
	mock.lockModel.RLock()
	calls := mock.calls.Model
	mock.lockModel.RUnlock()
	return calls
}
