package rate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"stay-command-core/internal/pkg/clock"
)

type Resolver struct {
	catalog Catalog
	clock   clock.Clock
}

func NewResolver(catalog Catalog, clk clock.Clock) *Resolver {
	return &Resolver{catalog: catalog, clock: clk}
}

// Resolve picks the code to price the stay with. It reports a fallback but never
// decides whether one is acceptable.
func (r *Resolver) Resolve(ctx context.Context, q Query) (Decision, error) {
	plans, err := r.catalog.PlansFor(ctx, q.TenantID, q.PropertyID, q.RoomTypeID)
	if err != nil {
		return Decision{}, fmt.Errorf("load rate plans: %w", err)
	}
	return Decide(plans, q, r.clock.Now()), nil
}

// Decide is the pure part of Resolve. An empty AppliedCode means nothing is sellable.
func Decide(plans []Plan, q Query, now time.Time) Decision {
	requested := strings.TrimSpace(q.RequestedCode)
	decision := Decision{RequestedCode: requested, DecidedAt: now}

	if requested != "" {
		reason := ReasonCodeNotFound
		for _, p := range plans {
			if !strings.EqualFold(p.Code, requested) {
				continue
			}
			reason = p.unavailableReason(q.StayStart, q.StayEnd)
			if reason == "" {
				decision.AppliedCode = p.Code
				decision.Amount = p.Amount
				decision.Reason = ReasonRequestedApplied
				return decision
			}
			break
		}
		decision.Reason = reason
	} else {
		decision.Reason = ReasonDefaultSelected
	}

	best, ok := bestAvailable(plans, q.StayStart, q.StayEnd)
	if !ok {
		return decision
	}
	decision.AppliedCode = best.Code
	decision.Amount = best.Amount
	decision.FallbackApplied = requested != ""
	return decision
}

func (p Plan) unavailableReason(start, end time.Time) string {
	if !p.Active {
		return ReasonCodeInactive
	}
	lastNight := clock.Date(end).AddDate(0, 0, -1)
	if p.ValidFrom != nil && clock.Date(start).Before(clock.Date(*p.ValidFrom)) {
		return ReasonCodeNotValidForDates
	}
	if p.ValidTo != nil && lastNight.After(clock.Date(*p.ValidTo)) {
		return ReasonCodeNotValidForDates
	}
	nights := int(clock.Date(end).Sub(clock.Date(start)).Hours() / 24)
	if p.MinStay > 0 && nights < p.MinStay {
		return ReasonMinStayNotMet
	}
	if p.MaxStay > 0 && nights > p.MaxStay {
		return ReasonMaxStayExceeded
	}
	return ""
}

func bestAvailable(plans []Plan, start, end time.Time) (Plan, bool) {
	candidates := make([]Plan, 0, len(plans))
	for _, p := range plans {
		if p.unavailableReason(start, end) == "" {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return Plan{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rank != candidates[j].Rank {
			return candidates[i].Rank < candidates[j].Rank
		}
		return candidates[i].Code < candidates[j].Code
	})
	return candidates[0], true
}
