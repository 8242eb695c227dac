package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"liquiverde_bff/internal/domain/entities"
	"liquiverde_bff/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReviewSessionNotFound = errors.New("review session not found")
	ErrInvalidReviewSession  = errors.New("invalid review session id")
	ErrNoPendingDecision     = errors.New("review session is not waiting for a decision")
	ErrDecisionTimeout       = errors.New("decision timed out")
)

const (
	defaultDecisionTimeout = 15 * time.Minute
	defaultSessionTTL      = 30 * 24 * time.Hour
	persistTimeout         = 5 * time.Second

	ReviewEventUpdated = "review.updated"
	ReviewEventResult  = "review.result"
	ReviewEventDone    = "review.done"
)

// IReviewSessionUseCase runs substitution reviews over HTTP, where a human
// answers each prompt in a separate request.
//
// Lifecycle:
//   - Start takes the list busy guard and launches the engine in background.
//   - Decide answers the pending prompt. A prompt left unanswered past the
//     decision timeout is skipped (counted with the rejected ones).
//   - The guard is released when the engine returns.
//   - Finished sessions that could not be stored stay in memory for SessionTTL.

type IReviewSessionUseCase interface {
	Start(ctx context.Context, listID int64, aggressive bool) (entities.ReviewSession, error)
	Get(ctx context.Context, sessionID string) (entities.ReviewSession, error)
	Decide(ctx context.Context, sessionID string, accept bool) (entities.ReviewSession, error)
	ListByListID(ctx context.Context, listID int64) ([]entities.ReviewSession, error)
}

type ReviewSessionConfig struct {
	DecisionTimeout time.Duration
	// SessionTTL bounds how long a finished session is kept in memory when it
	// was not persisted.
	SessionTTL time.Duration
}

type ReviewSessionUseCase struct {
	lists    IShoppingListUseCase
	engine   ISubstitutionReviewEngine
	repo     interfaces.IReviewSessionRepository
	notifier interfaces.IListNotifier
	guard    *ListGuard
	cfg      ReviewSessionConfig

	mu   sync.Mutex
	runs map[string]*reviewRun
	wg   sync.WaitGroup
	now  func() time.Time
}

var _ IReviewSessionUseCase = (*ReviewSessionUseCase)(nil)

// NewReviewSessionUseCase wires review sessions. repo and notifier may be nil.
// guard must be the same guard the list usecase uses.
func NewReviewSessionUseCase(lists IShoppingListUseCase, engine ISubstitutionReviewEngine, repo interfaces.IReviewSessionRepository, notifier interfaces.IListNotifier, guard *ListGuard, cfg ReviewSessionConfig) *ReviewSessionUseCase {
	if guard == nil {
		guard = NewListGuard()
	}
	if cfg.DecisionTimeout <= 0 {
		cfg.DecisionTimeout = defaultDecisionTimeout
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	return &ReviewSessionUseCase{
		lists:    lists,
		engine:   engine,
		repo:     repo,
		notifier: notifier,
		guard:    guard,
		cfg:      cfg,
		runs:     make(map[string]*reviewRun),
		now:      time.Now,
	}
}

func (u *ReviewSessionUseCase) Start(ctx context.Context, listID int64, aggressive bool) (entities.ReviewSession, error) {
	if listID <= 0 {
		return entities.ReviewSession{}, ErrInvalidListID
	}
	if u.lists == nil || u.engine == nil {
		return entities.ReviewSession{}, errors.New("review session usecase not configured")
	}
	if err := u.guard.TryAcquire(listID, "substitution review"); err != nil {
		log.Printf("[review][usecase] start rejected list_id=%d err=%v", listID, err)
		return entities.ReviewSession{}, err
	}
	launched := false
	defer func() {
		if !launched {
			u.guard.Release(listID)
		}
	}()

	state, err := u.lists.Refresh(ctx, listID)
	if err != nil {
		return entities.ReviewSession{}, err
	}
	candidates, err := u.lists.RequestSubstitutions(ctx, listID, aggressive)
	if err != nil {
		return entities.ReviewSession{}, err
	}

	now := u.now().UTC()
	session := entities.ReviewSession{
		ID:         uuid.NewString(),
		ListID:     listID,
		State:      entities.ReviewStateIdle,
		Candidates: candidates,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if len(candidates) == 0 {
		session.State = entities.ReviewStateDone
		session.Outcome = &entities.Outcome{NoCandidates: true}
		log.Printf("[review][usecase] no candidates list_id=%d session_id=%s", listID, session.ID)
		if !u.persist(session) {
			u.keepFinished(newReviewRun(session, u))
		}
		u.notify(listID, ReviewEventDone, session)
		return session, nil
	}

	run := newReviewRun(session, u)
	u.mu.Lock()
	u.evictLocked()
	u.runs[session.ID] = run
	u.mu.Unlock()
	u.persist(session)
	u.notify(listID, ReviewEventUpdated, session)

	launched = true
	u.wg.Add(1)
	go u.execute(run, state.List)

	log.Printf("[review][usecase] started list_id=%d session_id=%s candidates=%d", listID, session.ID, len(candidates))
	return session, nil
}

func (u *ReviewSessionUseCase) Get(ctx context.Context, sessionID string) (entities.ReviewSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.ReviewSession{}, ErrInvalidReviewSession
	}
	if run, ok := u.lookup(sessionID); ok {
		return run.snapshot(), nil
	}
	if u.repo == nil {
		return entities.ReviewSession{}, ErrReviewSessionNotFound
	}
	s, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		return entities.ReviewSession{}, err
	}
	if s.ID == "" {
		return entities.ReviewSession{}, ErrReviewSessionNotFound
	}
	return s, nil
}

// Decide answers the prompt currently shown for sessionID. The returned
// snapshot is taken right after the answer is handed to the engine; the
// following transition arrives through Get or the list websocket.
func (u *ReviewSessionUseCase) Decide(ctx context.Context, sessionID string, accept bool) (entities.ReviewSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.ReviewSession{}, ErrInvalidReviewSession
	}
	run, ok := u.lookup(sessionID)
	if !ok {
		if _, err := u.Get(ctx, sessionID); err != nil {
			return entities.ReviewSession{}, err
		}
		return entities.ReviewSession{}, ErrNoPendingDecision
	}
	if err := run.decide(accept); err != nil {
		return entities.ReviewSession{}, err
	}
	log.Printf("[review][usecase] decision session_id=%s accept=%v", sessionID, accept)
	return run.snapshot(), nil
}

func (u *ReviewSessionUseCase) ListByListID(ctx context.Context, listID int64) ([]entities.ReviewSession, error) {
	if listID <= 0 {
		return nil, ErrInvalidListID
	}

	seen := make(map[string]bool)
	var out []entities.ReviewSession
	u.mu.Lock()
	u.evictLocked()
	for id, run := range u.runs {
		s := run.snapshot()
		if s.ListID != listID {
			continue
		}
		seen[id] = true
		out = append(out, s)
	}
	u.mu.Unlock()

	if u.repo != nil {
		stored, err := u.repo.ListByListID(ctx, listID)
		if err != nil {
			return nil, err
		}
		for _, s := range stored {
			if !seen[s.ID] {
				out = append(out, s)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Wait blocks until every running review has finished. Used on shutdown.
func (u *ReviewSessionUseCase) Wait() {
	u.wg.Wait()
}

func (u *ReviewSessionUseCase) execute(run *reviewRun, list entities.ShoppingList) {
	defer u.wg.Done()
	listID := run.listID
	defer u.guard.Release(listID)

	outcome, err := u.engine.ReviewAndApply(context.Background(), listID, list, run.candidates(), run, run)

	final := run.finish(outcome, err)
	if err != nil {
		log.Printf("[review][usecase] finished with error session_id=%s list_id=%d err=%v", final.ID, listID, err)
	} else {
		log.Printf("[review][usecase] finished session_id=%s list_id=%d accepted=%d failed=%d orphaned=%d", final.ID, listID, outcome.AcceptedCount, outcome.FailedCount, len(outcome.Orphaned))
	}

	persisted := u.persist(final)
	u.notify(listID, ReviewEventDone, final)
	if outcome.List != nil {
		u.notify(listID, ListEventUpdated, entities.NewListState(*outcome.List, time.Now().UTC()))
	}

	// Finished sessions are served from the repository once stored.
	u.mu.Lock()
	if persisted {
		delete(u.runs, final.ID)
	} else {
		run.finishedAt = u.now()
	}
	u.mu.Unlock()
}

// keepFinished registers a session that is already done and was not stored.
func (u *ReviewSessionUseCase) keepFinished(run *reviewRun) {
	u.mu.Lock()
	defer u.mu.Unlock()
	run.finishedAt = u.now()
	u.runs[run.session.ID] = run
}

// evictLocked drops finished in-memory sessions older than SessionTTL.
// u.mu must be held.
func (u *ReviewSessionUseCase) evictLocked() {
	now := u.now()
	for id, run := range u.runs {
		if !run.finishedAt.IsZero() && now.Sub(run.finishedAt) >= u.cfg.SessionTTL {
			delete(u.runs, id)
		}
	}
}

func (u *ReviewSessionUseCase) lookup(sessionID string) (*reviewRun, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.evictLocked()
	run, ok := u.runs[sessionID]
	return run, ok
}

func (u *ReviewSessionUseCase) persist(s entities.ReviewSession) bool {
	if u.repo == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := u.repo.Save(ctx, s); err != nil {
		log.Printf("[review][usecase] persist failed session_id=%s state=%s err=%v", s.ID, s.State, err)
		return false
	}
	return true
}

func (u *ReviewSessionUseCase) notify(listID int64, eventType string, payload any) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyList(listID, eventType, payload)
}

// reviewRun is the live state of one session. It is both the engine's
// confirmer and its observer.
type reviewRun struct {
	owner  *ReviewSessionUseCase
	listID int64

	mu        sync.Mutex
	session   entities.ReviewSession
	answered  bool
	decisions chan bool

	// guarded by owner.mu; zero while the engine runs
	finishedAt time.Time
}

var (
	_ interfaces.IConfirmer      = (*reviewRun)(nil)
	_ interfaces.IReviewObserver = (*reviewRun)(nil)
)

func newReviewRun(s entities.ReviewSession, owner *ReviewSessionUseCase) *reviewRun {
	return &reviewRun{
		owner:     owner,
		listID:    s.ListID,
		session:   s,
		answered:  true,
		decisions: make(chan bool, 1),
	}
}

func (r *reviewRun) snapshot() entities.ReviewSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copySession(r.session)
}

func (r *reviewRun) candidates() []entities.SubstitutionCandidate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.SubstitutionCandidate(nil), r.session.Candidates...)
}

func (r *reviewRun) decide(accept bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session.State != entities.ReviewStatePresenting || r.answered {
		return ErrNoPendingDecision
	}
	r.answered = true
	r.decisions <- accept
	return nil
}

// Confirm waits for Decide, the decision timeout or ctx, whichever comes first.
func (r *reviewRun) Confirm(ctx context.Context, prompt entities.ReviewPrompt) (bool, error) {
	timer := time.NewTimer(r.owner.cfg.DecisionTimeout)
	defer timer.Stop()

	select {
	case accept := <-r.decisions:
		return accept, nil
	case <-timer.C:
		return r.closePrompt(prompt, ErrDecisionTimeout)
	case <-ctx.Done():
		return r.closePrompt(prompt, ctx.Err())
	}
}

// closePrompt stops accepting answers for the current prompt. An answer that
// raced in before the lock still wins.
func (r *reviewRun) closePrompt(prompt entities.ReviewPrompt, cause error) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	select {
	case accept := <-r.decisions:
		return accept, nil
	default:
	}
	r.answered = true
	log.Printf("[review][usecase] prompt closed session_id=%s index=%d err=%v", r.session.ID, prompt.Index, cause)
	return false, cause
}

func (r *reviewRun) OnTransition(state entities.ReviewState, index int) {
	r.mu.Lock()
	// done is published by finish, together with the outcome.
	if state == entities.ReviewStateDone {
		r.mu.Unlock()
		return
	}
	r.session.State = state
	r.session.Index = index
	r.session.UpdatedAt = time.Now().UTC()
	if state == entities.ReviewStatePresenting {
		r.answered = false
	}
	s := copySession(r.session)
	r.mu.Unlock()

	r.owner.persist(s)
	r.owner.notify(r.listID, ReviewEventUpdated, s)
}

func (r *reviewRun) OnResult(result entities.CandidateResult) {
	r.mu.Lock()
	if r.session.Outcome == nil {
		r.session.Outcome = &entities.Outcome{}
	}
	r.session.Outcome.Record(result)
	if result.Reason == entities.FailureOrphaned {
		r.session.Outcome.Orphaned = append(r.session.Outcome.Orphaned, entities.OrphanedItem{
			ProductID:   result.Candidate.Original.ID,
			ProductName: result.Candidate.Original.Name,
			Quantity:    result.Quantity,
			Detail:      result.Detail,
		})
	}
	r.mu.Unlock()

	r.owner.notify(r.listID, ReviewEventResult, result)
}

func (r *reviewRun) finish(outcome entities.Outcome, err error) entities.ReviewSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session.State = entities.ReviewStateDone
	r.session.Index = len(r.session.Candidates)
	r.session.Outcome = &outcome
	r.session.UpdatedAt = time.Now().UTC()
	r.answered = true
	if err != nil {
		r.session.Error = err.Error()
	}
	return copySession(r.session)
}

func copySession(s entities.ReviewSession) entities.ReviewSession {
	s.Candidates = append([]entities.SubstitutionCandidate(nil), s.Candidates...)
	if s.Outcome != nil {
		o := *s.Outcome
		o.Results = append([]entities.CandidateResult(nil), o.Results...)
		o.Orphaned = append([]entities.OrphanedItem(nil), o.Orphaned...)
		s.Outcome = &o
	}
	return s
}
