package importer

import (
	"sync"

	"github.com/heartmarshall/cerego-backend/internal/worker"
)

var _ jobPool = &jobPoolMock{}

type jobPoolMock struct {
	SubmitFunc func(job worker.Job)

	calls struct {
		Submit []struct {
			Job worker.Job
		}
	}
	lockSubmit sync.RWMutex
}

func (mock *jobPoolMock) Submit(job worker.Job) {
	if mock.SubmitFunc == nil {
		panic("jobPoolMock.SubmitFunc: method is nil but jobPool.Submit was just called")
	}
	callInfo := struct {
		Job worker.Job
	}{Job: job}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	mock.SubmitFunc(job)
}

func (mock *jobPoolMock) SubmitCalls() []struct {
	Job worker.Job
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
