package queries

import (
	"context"
	"log/slog"
	"time"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/domain/model/parcel"
	"shipconvenient/internal/core/domain/services"
	"shipconvenient/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultOracleConcurrency = 4
	DefaultOracleTimeout     = 5 * time.Second
)

// DistanceExtensionEvaluator asks the routing oracle for the distance of the trip with each
// candidate and keeps the candidates whose primary alternative fits the distance budget.
//
// Oracle errors, timeouts and empty answers drop only the affected candidate. At most
// concurrency oracle calls run at once; each is bounded by timeout.
type DistanceExtensionEvaluator struct {
	oracle      ports.RoutingOracle
	builder     services.WaypointBuilder
	budget      services.DistanceBudget
	concurrency int
	timeout     time.Duration
	logger      *slog.Logger
}

// NewDistanceExtensionEvaluator falls back to DefaultOracleConcurrency and
// DefaultOracleTimeout for non-positive values.
func NewDistanceExtensionEvaluator(
	oracle ports.RoutingOracle,
	concurrency int,
	timeout time.Duration,
	logger *slog.Logger,
) DistanceExtensionEvaluator {
	if concurrency <= 0 {
		concurrency = DefaultOracleConcurrency
	}
	if timeout <= 0 {
		timeout = DefaultOracleTimeout
	}
	return DistanceExtensionEvaluator{
		oracle:      oracle,
		builder:     services.NewWaypointBuilder(),
		budget:      services.NewDistanceBudget(),
		concurrency: concurrency,
		timeout:     timeout,
		logger:      logger.With("component", "distance_extension_evaluator"),
	}
}

// Evaluate returns the surviving candidates in input order. It fails only when ctx itself is
// done.
func (e DistanceExtensionEvaluator) Evaluate(
	ctx context.Context,
	trip services.Trip,
	committed []*parcel.Parcel,
	candidates []*parcel.Parcel,
	tolerance float64,
) ([]services.Candidate, error) {
	results := make([]*services.Candidate, len(candidates))

	var g errgroup.Group
	g.SetLimit(e.concurrency)

	for i, c := range candidates {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			results[i] = e.evaluateOne(ctx, trip, committed, c, tolerance)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]services.Candidate, 0, len(candidates))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (e DistanceExtensionEvaluator) evaluateOne(
	ctx context.Context,
	trip services.Trip,
	committed []*parcel.Parcel,
	candidate *parcel.Parcel,
	tolerance float64,
) *services.Candidate {
	logger := e.logger.With("parcel_id", candidate.ID().String())

	points, err := e.builder.Build(trip, committed, candidate)
	if err != nil {
		logger.WarnContext(ctx, "Cannot build waypoints", "error", err)
		return nil
	}

	alternatives, err := e.distanceAlternatives(ctx, points)
	if err != nil {
		logger.WarnContext(ctx, "Routing oracle failed, candidate dropped", "error", err)
		return nil
	}
	if len(alternatives) == 0 {
		logger.DebugContext(ctx, "Routing oracle found no route, candidate dropped")
		return nil
	}

	extension := 0.0
	if d := alternatives[0].Distance; d != nil {
		extension = *d
	}

	if !e.budget.Allows(trip.Route, trip.Mode, tolerance, extension) {
		logger.DebugContext(ctx, "Candidate over distance budget",
			"extension", extension,
			"limit", e.budget.Limit(trip.Route, trip.Mode, tolerance))
		return nil
	}

	return &services.Candidate{Parcel: candidate, DistanceExtend: extension}
}

type oracleResult struct {
	alternatives []ports.RouteAlternative
	err          error
}

// distanceAlternatives returns when the oracle answers or the timeout expires, whichever
// comes first, even if the oracle ignores its context.
func (e DistanceExtensionEvaluator) distanceAlternatives(
	ctx context.Context,
	points []kernel.GeoPoint,
) ([]ports.RouteAlternative, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	done := make(chan oracleResult, 1)
	go func() {
		alts, err := e.oracle.GetDistanceAlternatives(callCtx, points)
		done <- oracleResult{alternatives: alts, err: err}
	}()

	select {
	case r := <-done:
		return r.alternatives, r.err
	case <-callCtx.Done():
		return nil, callCtx.Err()
	}
}
