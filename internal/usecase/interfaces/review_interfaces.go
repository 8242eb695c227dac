package interfaces

import (
	"context"
	"liquiverde_bff/internal/domain/entities"
)

// IConfirmer asks the user whether a substitution should be applied.
//
// Confirm blocks until the user answers or ctx is done. There is no default
// answer: an error means "no decision" and the candidate is skipped.
type IConfirmer interface {
	Confirm(ctx context.Context, prompt entities.ReviewPrompt) (bool, error)
}

// IReviewObserver is notified of every review state transition and of each
// candidate's final result. Implementations must not block.
type IReviewObserver interface {
	OnTransition(state entities.ReviewState, index int)
	OnResult(result entities.CandidateResult)
}

// IReviewSessionRepository persists review sessions for audit and for reads
// after the in-memory session is gone.
type IReviewSessionRepository interface {
	Save(ctx context.Context, s entities.ReviewSession) error
	GetByID(ctx context.Context, id string) (entities.ReviewSession, error)
	ListByListID(ctx context.Context, listID int64) ([]entities.ReviewSession, error)
}

// IListNotifier pushes list events to connected browsers.
type IListNotifier interface {
	NotifyList(listID int64, eventType string, payload any)
}
