package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shipconvenient/internal/core/domain/model/courier"
	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/core/domain/model/route"
	"shipconvenient/internal/core/domain/services"
	"shipconvenient/internal/core/ports"
	"shipconvenient/internal/pkg/errs"
)

var (
	ErrCourierNotFound   = errors.New("courier not found")
	ErrProfileIsMissing  = errors.New("courier profile is not created")
	ErrCapacityExceeded  = errors.New("courier already has too many parcels in flight")
	ErrCommittedNotFound = errors.New("committed parcel not found")
)

// maxLegacyInFlight is the in-flight count above which the legacy dispatch refuses to suggest.
const maxLegacyInFlight = 1

// SuggestParcelsHandlerConfig tunes the engine. Zero values take the defaults.
type SuggestParcelsHandlerConfig struct {
	Tolerances        services.SuggestionTolerances
	OracleConcurrency int
	OracleTimeout     time.Duration
}

// SuggestParcelsQueryHandler matches approved parcels to a courier's active route.
//
// The pipeline for one request:
//
//	courier + profile -> active route, spacing tolerance, direction mode -> route points
//	-> approved candidates -> proximity pre-filter -> oracle distance + budget
//	-> balance filter -> cap at the max suggest count
//
// All reads happen in one snapshot which is closed before the first oracle call. Without an
// active route the geometry and oracle stages are skipped. Results keep candidate discovery
// order.
//
// Example:
//
//	handler := NewSuggestParcelsQueryHandler(snapshots, oracle, SuggestParcelsHandlerConfig{}, logger)
//	query, _ := NewSuggestParcelsQuery(courierID)
//
//	suggestions, err := handler.Handle(ctx, query)
//	switch {
//	case errors.Is(err, ErrCourierNotFound):
//	    // 404
//	case errors.Is(err, ErrCapacityExceeded):
//	    // 409
//	}
type SuggestParcelsQueryHandler struct {
	snapshots  ports.SnapshotFactory
	evaluator  DistanceExtensionEvaluator
	tolerances services.SuggestionTolerances
	proximity  services.RouteProximityChecker
	balance    services.BalanceFilter
	logger     *slog.Logger
}

func NewSuggestParcelsQueryHandler(
	snapshots ports.SnapshotFactory,
	oracle ports.RoutingOracle,
	cfg SuggestParcelsHandlerConfig,
	logger *slog.Logger,
) SuggestParcelsQueryHandler {
	return SuggestParcelsQueryHandler{
		snapshots:  snapshots,
		evaluator:  NewDistanceExtensionEvaluator(oracle, cfg.OracleConcurrency, cfg.OracleTimeout, logger),
		tolerances: cfg.Tolerances,
		proximity:  services.NewRouteProximityChecker(),
		balance:    services.NewBalanceFilter(),
		logger:     logger.With("component", "suggest_parcels_query_handler"),
	}
}

// plan is what a suggestion path commits to before candidates are evaluated.
type plan struct {
	committed []*parcel.Parcel
	// declaredOnly restricts proximity to non-virtual route points.
	declaredOnly bool
}

// planner chooses the plan once the courier is known, inside the snapshot.
type planner func(ctx context.Context, snap ports.Snapshot, c *courier.Courier) (plan, error)

// Handle is the legacy dispatch: no in-flight parcel takes the first path, one takes the
// second path and more fail with ErrCapacityExceeded before any candidate is looked at.
func (h SuggestParcelsQueryHandler) Handle(ctx context.Context, query SuggestParcelsQuery) ([]SuggestedParcel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.suggest(ctx, query.CourierID(), func(ctx context.Context, snap ports.Snapshot, c *courier.Courier) (plan, error) {
		inFlight, err := snap.ParcelRepository().GetInFlight(ctx, c.ID())
		if err != nil {
			return plan{}, err
		}

		switch {
		case len(inFlight) == 0:
			return firstPlan(), nil
		case len(inFlight) <= maxLegacyInFlight:
			return secondPlan(inFlight[0]), nil
		}
		return plan{}, fmt.Errorf("%w: %d in flight", ErrCapacityExceeded, len(inFlight))
	})
}

// HandleV2 is the general path over an arbitrary committed set.
func (h SuggestParcelsQueryHandler) HandleV2(ctx context.Context, query SuggestParcelsV2Query) ([]SuggestedParcel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.suggest(ctx, query.CourierID(), func(ctx context.Context, snap ports.Snapshot, c *courier.Courier) (plan, error) {
		ids, explicit := query.Committed()
		if !explicit {
			inFlight, err := snap.ParcelRepository().GetInFlight(ctx, c.ID())
			if err != nil {
				return plan{}, err
			}
			return plan{committed: inFlight, declaredOnly: true}, nil
		}

		if len(ids) == 0 {
			return plan{declaredOnly: true}, nil
		}
		committed, err := snap.ParcelRepository().GetByIDs(ctx, ids)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return plan{}, errors.Join(ErrCommittedNotFound, err)
		}
		if err != nil {
			return plan{}, err
		}
		return plan{committed: committed, declaredOnly: true}, nil
	})
}

// SuggestFirst treats the courier as starting a fresh trip.
func (h SuggestParcelsQueryHandler) SuggestFirst(ctx context.Context, courierID kernel.UUID) ([]SuggestedParcel, error) {
	return h.suggest(ctx, courierID, func(context.Context, ports.Snapshot, *courier.Courier) (plan, error) {
		return firstPlan(), nil
	})
}

// SuggestSecond builds trips around one parcel the courier already carries or is about to
// collect.
func (h SuggestParcelsQueryHandler) SuggestSecond(
	ctx context.Context,
	courierID kernel.UUID,
	committed *parcel.Parcel,
) ([]SuggestedParcel, error) {
	if err := committed.Validate(); err != nil {
		return nil, err
	}
	return h.suggest(ctx, courierID, func(context.Context, ports.Snapshot, *courier.Courier) (plan, error) {
		return secondPlan(committed), nil
	})
}

func firstPlan() plan {
	return plan{}
}

func secondPlan(committed *parcel.Parcel) plan {
	return plan{committed: []*parcel.Parcel{committed}, declaredOnly: true}
}

// request is everything one suggestion needs, read from a single snapshot.
type request struct {
	courier         *courier.Courier
	plan            plan
	route           *route.Route
	allPoints       route.Points
	proximityPoints route.Points
	mode            route.DirectionMode
	spacing         float64
	candidates      []*parcel.Parcel
	balance         int64
	maxCount        int
}

func (h SuggestParcelsQueryHandler) suggest(
	ctx context.Context,
	courierID kernel.UUID,
	choose planner,
) ([]SuggestedParcel, error) {
	req, err := h.load(ctx, courierID, choose)
	if err != nil {
		return nil, err
	}

	survivors, err := h.evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	affordable := h.balance.Filter(req.balance, survivors)

	limit := min(max(req.maxCount, 0), len(affordable))
	out := make([]SuggestedParcel, 0, limit)
	for _, c := range affordable[:limit] {
		out = append(out, SuggestedParcel{Parcel: c.Parcel, DistanceExtend: c.DistanceExtend})
	}

	h.logger.DebugContext(ctx, "Suggestions computed",
		"courier_id", courierID.String(),
		"candidates", len(req.candidates),
		"survivors", len(survivors),
		"affordable", len(affordable),
		"returned", len(out))
	return out, nil
}

// load reads the request inside one snapshot and closes it before returning.
func (h SuggestParcelsQueryHandler) load(ctx context.Context, courierID kernel.UUID, choose planner) (*request, error) {
	snap := h.snapshots.Create()
	if err := snap.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err := snap.Close(ctx); err != nil {
			h.logger.WarnContext(ctx, "Failed to close snapshot", "error", err)
		}
	}()

	c, err := snap.CourierRepository().GetWithProfile(ctx, courierID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrCourierNotFound
	}
	if err != nil {
		return nil, err
	}
	profile, ok := c.Profile()
	if !ok {
		return nil, ErrProfileIsMissing
	}

	req := &request{courier: c}
	if req.plan, err = choose(ctx, snap, c); err != nil {
		return nil, err
	}

	if err = h.loadRoute(ctx, snap, profile.ID(), req); err != nil {
		return nil, err
	}

	candidates, err := snap.ParcelRepository().GetApproved(ctx, c.ID())
	if err != nil {
		return nil, err
	}
	req.candidates = excludeCommitted(candidates, req.plan.committed)

	if req.balance, err = snap.BalanceRepository().GetAvailableBalance(ctx, c.ID()); err != nil {
		return nil, err
	}
	if req.maxCount, err = snap.SettingsRepository().GetMaxSuggestCount(ctx); err != nil {
		return nil, err
	}

	return req, nil
}

func (h SuggestParcelsQueryHandler) loadRoute(
	ctx context.Context,
	snap ports.Snapshot,
	profileID kernel.UUID,
	req *request,
) error {
	settings := snap.SettingsRepository()

	var err error
	if req.spacing, err = settings.GetSpacingTolerance(ctx, profileID); err != nil {
		return err
	}
	if req.mode, err = settings.GetDirectionMode(ctx, profileID); err != nil {
		return err
	}

	req.route, err = snap.RouteRepository().GetActive(ctx, profileID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		req.route = nil
		return nil
	}
	if err != nil {
		return err
	}

	routes := snap.RouteRepository()
	if req.allPoints, err = routes.GetPoints(ctx, req.route.ID(), ports.PointFilter{}); err != nil {
		return err
	}

	req.proximityPoints = req.allPoints
	if req.plan.declaredOnly {
		declared := false
		if req.proximityPoints, err = routes.GetPoints(ctx, req.route.ID(), ports.PointFilter{Virtual: &declared}); err != nil {
			return err
		}
	}
	req.proximityPoints = req.proximityPoints.Filter(nil, req.mode)

	return nil
}

// evaluate runs the geometry and oracle stages, or passes every candidate through when
// there is no active route.
func (h SuggestParcelsQueryHandler) evaluate(ctx context.Context, req *request) ([]services.Candidate, error) {
	if req.route == nil {
		out := make([]services.Candidate, 0, len(req.candidates))
		for _, p := range req.candidates {
			out = append(out, services.Candidate{Parcel: p})
		}
		return out, nil
	}

	tolerance := h.tolerances.Proximity(req.spacing)
	eligible := make([]*parcel.Parcel, 0, len(req.candidates))
	for _, p := range req.candidates {
		if h.proximity.IsNearRoute(req.proximityPoints, req.mode, p, tolerance) {
			eligible = append(eligible, p)
		}
	}

	trip := services.Trip{Route: req.route, Points: req.allPoints, Mode: req.mode}
	return h.evaluator.Evaluate(ctx, trip, req.plan.committed, eligible, h.tolerances.Budget(req.spacing))
}

func excludeCommitted(candidates, committed []*parcel.Parcel) []*parcel.Parcel {
	if len(committed) == 0 {
		return candidates
	}
	skip := make(map[kernel.UUID]struct{}, len(committed))
	for _, p := range committed {
		skip[p.ID()] = struct{}{}
	}
	out := make([]*parcel.Parcel, 0, len(candidates))
	for _, p := range candidates {
		if _, ok := skip[p.ID()]; !ok {
			out = append(out, p)
		}
	}
	return out
}
