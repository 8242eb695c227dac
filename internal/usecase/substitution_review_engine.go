package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"liquiverde_bff/internal/domain/entities"
	"liquiverde_bff/internal/usecase/interfaces"
)

const (
	defaultRefreshTimeout = 10 * time.Second
	defaultAddRetries     = 1
)

var ErrDecisionUnavailable = errors.New("no decision received")

// ReviewEngineConfig tunes the compensation and refresh behavior.
type ReviewEngineConfig struct {
	// AddRetries is how many extra times the substitute add is attempted after
	// the original item was removed. Rejections by the service are not retried.
	AddRetries     int
	RetryBackoff   time.Duration
	RefreshTimeout time.Duration
}

// ISubstitutionReviewEngine applies substitution candidates one at a time with
// user consent.
//
// Sequencing:
//   - Candidate i+1 is never presented before candidate i's decision and, when
//     accepted, its remove+add have resolved.
//   - Per-candidate failures are recorded and the loop moves on.
//   - Exactly one list refresh happens after the loop; none for an empty batch.

type ISubstitutionReviewEngine interface {
	ReviewAndApply(ctx context.Context, listID int64, list entities.ShoppingList, candidates []entities.SubstitutionCandidate, confirmer interfaces.IConfirmer, observer interfaces.IReviewObserver) (entities.Outcome, error)
}

type SubstitutionReviewEngine struct {
	gateway interfaces.IShoppingGateway
	cfg     ReviewEngineConfig
}

var _ ISubstitutionReviewEngine = (*SubstitutionReviewEngine)(nil)

func NewSubstitutionReviewEngine(gateway interfaces.IShoppingGateway, cfg ReviewEngineConfig) *SubstitutionReviewEngine {
	if cfg.AddRetries < 0 {
		cfg.AddRetries = defaultAddRetries
	}
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = defaultRefreshTimeout
	}
	return &SubstitutionReviewEngine{gateway: gateway, cfg: cfg}
}

// ReviewAndApply walks candidates in the given order. list is the snapshot the
// originals are matched against; observer may be nil.
//
// The returned error is only set when the final refresh fails; the outcome is
// still complete in that case, only Outcome.List is nil.
func (e *SubstitutionReviewEngine) ReviewAndApply(ctx context.Context, listID int64, list entities.ShoppingList, candidates []entities.SubstitutionCandidate, confirmer interfaces.IConfirmer, observer interfaces.IReviewObserver) (entities.Outcome, error) {
	if len(candidates) == 0 {
		log.Printf("[review][engine] no candidates list_id=%d", listID)
		transition(observer, entities.ReviewStateDone, 0)
		return entities.Outcome{NoCandidates: true}, nil
	}
	if e.gateway == nil {
		return entities.Outcome{}, ErrGatewayMisconfigured
	}
	if confirmer == nil {
		return entities.Outcome{}, errors.New("confirmer not configured")
	}

	log.Printf("[review][engine] start list_id=%d candidates=%d", listID, len(candidates))
	var outcome entities.Outcome
	state := newApplyState(list)

	for i, c := range candidates {
		transition(observer, entities.ReviewStatePresenting, i)
		prompt := entities.ReviewPrompt{Index: i, Total: len(candidates), Candidate: c}

		accept, err := confirmer.Confirm(ctx, prompt)
		if err != nil {
			log.Printf("[review][engine] no decision list_id=%d index=%d err=%v", listID, i, err)
			e.record(&outcome, observer, entities.CandidateResult{
				Index:     i,
				Candidate: c,
				Kind:      entities.CandidateSkipped,
				Detail:    fmt.Sprintf("%v: %v", ErrDecisionUnavailable, err),
			})
			continue
		}
		if !accept {
			log.Printf("[review][engine] rejected list_id=%d index=%d original=%d", listID, i, c.Original.ID)
			e.record(&outcome, observer, entities.CandidateResult{Index: i, Candidate: c, Kind: entities.CandidateSkipped})
			continue
		}

		transition(observer, entities.ReviewStateApplying, i)
		res, orphan := e.apply(ctx, listID, state, i, c)
		if orphan != nil {
			outcome.Orphaned = append(outcome.Orphaned, *orphan)
		}
		e.record(&outcome, observer, res)
	}

	transition(observer, entities.ReviewStateDone, len(candidates))
	log.Printf("[review][engine] loop done list_id=%d accepted=%d rejected=%d failed=%d savings=%.2f score=%.1f",
		listID, outcome.AcceptedCount, outcome.RejectedCount, outcome.FailedCount, outcome.TotalSavings, outcome.TotalScoreImprovement)

	// The refresh must happen even when the caller has gone away.
	refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.cfg.RefreshTimeout)
	defer cancel()
	refreshed, err := e.gateway.GetShoppingList(refreshCtx, listID)
	if err != nil {
		log.Printf("[review][engine] refresh failed list_id=%d err=%v", listID, err)
		return outcome, mapGatewayError("refresh shopping list", err, ErrListNotFound)
	}
	outcome.List = &refreshed
	return outcome, nil
}

// applyState tracks what the run changed on the list, so the quantity the
// service should hold for a product can be derived from the initial snapshot.
type applyState struct {
	list     entities.ShoppingList
	consumed map[int64]bool
	added    map[int64]int
}

func newApplyState(list entities.ShoppingList) *applyState {
	return &applyState{list: list, consumed: make(map[int64]bool), added: make(map[int64]int)}
}

// quantityOf is the quantity of productID the list holds right now as far as
// this run knows: snapshot lines not removed plus what the run added.
func (s *applyState) quantityOf(productID int64) int {
	n := s.added[productID]
	for _, it := range s.list.Items {
		if it.Product.ID == productID && !s.consumed[it.ID] {
			n += it.Quantity
		}
	}
	return n
}

// apply runs remove then add for one accepted candidate. It never returns an
// error: every failure is folded into the result.
func (e *SubstitutionReviewEngine) apply(ctx context.Context, listID int64, state *applyState, index int, c entities.SubstitutionCandidate) (entities.CandidateResult, *entities.OrphanedItem) {
	res := entities.CandidateResult{Index: index, Candidate: c, Kind: entities.CandidateFailed}

	item, ok := state.list.FindItemByProduct(c.Original.ID, state.consumed)
	if !ok {
		log.Printf("[review][engine] original not in list list_id=%d index=%d product_id=%d", listID, index, c.Original.ID)
		res.Reason = entities.FailureItemNotFound
		res.Detail = fmt.Sprintf("product %d is not in the list", c.Original.ID)
		return res, nil
	}
	res.ItemID = item.ID
	res.Quantity = item.Quantity

	if err := e.gateway.RemoveItem(ctx, listID, item.ID); err != nil {
		err = mapGatewayError("remove item", err, ErrItemNotFound)
		log.Printf("[review][engine] remove failed list_id=%d item_id=%d err=%v", listID, item.ID, err)
		res.Reason = entities.FailureRemoveFailed
		res.Detail = describeError(err)
		return res, nil
	}
	state.consumed[item.ID] = true

	want := state.quantityOf(c.Substitute.ID) + item.Quantity
	added, addErr := e.addWithRetry(ctx, "add item", listID, c.Substitute.ID, item.Quantity, want, e.cfg.AddRetries)
	if addErr == nil {
		state.added[c.Substitute.ID] += item.Quantity
		log.Printf("[review][engine] applied list_id=%d index=%d original=%d substitute=%d qty=%d", listID, index, c.Original.ID, c.Substitute.ID, item.Quantity)
		res.Kind = entities.CandidateApplied
		res.ItemID = added.ID
		return res, nil
	}

	log.Printf("[review][engine] add failed, restoring original list_id=%d product_id=%d qty=%d err=%v", listID, item.Product.ID, item.Quantity, addErr)
	want = state.quantityOf(item.Product.ID) + item.Quantity
	if _, restoreErr := e.addWithRetry(ctx, "restore item", listID, item.Product.ID, item.Quantity, want, 0); restoreErr != nil {
		log.Printf("[review][engine] restore failed, item orphaned list_id=%d product_id=%d qty=%d err=%v", listID, item.Product.ID, item.Quantity, restoreErr)
		res.Reason = entities.FailureOrphaned
		res.Detail = describeError(addErr) + "; restore: " + describeError(restoreErr)
		return res, &entities.OrphanedItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Detail:      res.Detail,
		}
	}
	state.added[item.Product.ID] += item.Quantity

	res.Reason = entities.FailureAddFailed
	res.Detail = describeError(addErr)
	return res, nil
}

// addWithRetry posts productID and retries while the service is unavailable.
// An unavailable error can hide a POST the service already committed (the
// response timed out), and the service merges quantities, so before posting
// again the list is read back: when it already holds want units of productID
// the add is taken as done.
func (e *SubstitutionReviewEngine) addWithRetry(ctx context.Context, action string, listID, productID int64, quantity, want, retries int) (entities.ListItem, error) {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, e.cfg.RetryBackoff); err != nil {
				return entities.ListItem{}, lastErr
			}
			log.Printf("[review][engine] retrying %s list_id=%d product_id=%d attempt=%d", action, listID, productID, attempt+1)
		}
		item, err := e.gateway.AddItem(ctx, listID, productID, quantity)
		if err == nil {
			return item, nil
		}
		lastErr = mapGatewayError(action, err, ErrListNotFound)
		if !errors.Is(lastErr, ErrGatewayUnavailable) {
			break
		}
		if line, ok := e.committed(ctx, listID, productID, want); ok {
			log.Printf("[review][engine] %s committed despite error list_id=%d product_id=%d qty=%d", action, listID, productID, line.Quantity)
			return line, nil
		}
	}
	return entities.ListItem{}, lastErr
}

// committed reports whether the list holds at least want units of productID.
// A failed read counts as not committed.
func (e *SubstitutionReviewEngine) committed(ctx context.Context, listID, productID int64, want int) (entities.ListItem, bool) {
	current, err := e.gateway.GetShoppingList(ctx, listID)
	if err != nil {
		log.Printf("[review][engine] read back failed list_id=%d product_id=%d err=%v", listID, productID, err)
		return entities.ListItem{}, false
	}
	var (
		line  entities.ListItem
		total int
	)
	for _, it := range current.Items {
		if it.Product.ID == productID {
			total += it.Quantity
			line = it
		}
	}
	if line.ID == 0 || total < want {
		return entities.ListItem{}, false
	}
	return line, true
}

func (e *SubstitutionReviewEngine) record(outcome *entities.Outcome, observer interfaces.IReviewObserver, r entities.CandidateResult) {
	outcome.Record(r)
	if observer != nil {
		observer.OnResult(r)
	}
}

func transition(observer interfaces.IReviewObserver, state entities.ReviewState, index int) {
	if observer != nil {
		observer.OnTransition(state, index)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
