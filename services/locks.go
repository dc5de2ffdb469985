package services

import "sync"

// assignmentLocks serializes submit, complete, materialize and delete per
// assignment id. Locks are per assignment only; nothing cross-assignment is
// ever held while documents are opened or archives built.
type assignmentLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newAssignmentLocks() *assignmentLocks {
	return &assignmentLocks{locks: make(map[uint]*sync.Mutex)}
}

func (l *assignmentLocks) Get(id uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}
