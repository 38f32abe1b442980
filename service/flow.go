package service

import (
	"sync"

	"github.com/google/uuid"
)

// flowSession is the transient state held for the duration of one flow
// invocation. Its single-fire completion slot guarantees the terminal result
// is delivered at most once, even when a network failure, a session error
// and a user cancellation race.
type flowSession struct {
	id   string
	once sync.Once
}

func newFlowSession() *flowSession {
	return &flowSession{id: uuid.NewString()}
}

// deliver runs terminal iff no terminal has been delivered yet. The first of
// the racing signals wins; late signals are ignored.
func (f *flowSession) deliver(terminal func()) bool {
	fired := false
	f.once.Do(func() {
		fired = true
		terminal()
	})
	return fired
}
