package usecase

import (
	"errors"
	"sync"
)

var ErrListBusy = errors.New("shopping list is busy with another action")

// ListGuard makes optimize, delete and substitution review mutually exclusive
// per list.
type ListGuard struct {
	mu   sync.Mutex
	busy map[int64]string
}

func NewListGuard() *ListGuard {
	return &ListGuard{busy: make(map[int64]string)}
}

// TryAcquire marks listID as busy with action. It fails with ErrListBusy when
// another action holds the list.
func (g *ListGuard) TryAcquire(listID int64, action string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if holder, ok := g.busy[listID]; ok {
		return &listBusyError{holder: holder}
	}
	g.busy[listID] = action
	return nil
}

func (g *ListGuard) Release(listID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, listID)
}

// Holder returns the action holding listID, if any.
func (g *ListGuard) Holder(listID int64) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	h, ok := g.busy[listID]
	return h, ok
}

type listBusyError struct {
	holder string
}

func (e *listBusyError) Error() string {
	return ErrListBusy.Error() + " (" + e.holder + " in progress)"
}

func (e *listBusyError) Unwrap() error {
	return ErrListBusy
}
