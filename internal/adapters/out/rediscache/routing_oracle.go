package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTTL = 10 * time.Minute
	// DefaultCallTimeout bounds the upstream call shared by coalesced callers.
	DefaultCallTimeout = 15 * time.Second

	keyPrefix = "shipconvenient:directions:v1:"
	// coordinateDecimals rounds keys to roughly one meter.
	coordinateDecimals = 5
)

type cachedAlternative struct {
	Distance *float64 `json:"distance,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
}

// CachedRoutingOracle decorates a RoutingOracle with a Redis read-through cache. Concurrent
// misses for the same waypoints share one upstream call. Redis failures are logged and the
// upstream oracle answers instead. Empty answers and errors are never cached.
//
// The shared upstream call outlives the caller that started it: it keeps that caller's values
// but not its cancellation, and is bounded by DefaultCallTimeout instead.
type CachedRoutingOracle struct {
	next        ports.RoutingOracle
	rdb         redis.Cmdable
	ttl         time.Duration
	callTimeout time.Duration
	group       singleflight.Group
	logger      *slog.Logger
}

var _ ports.RoutingOracle = (*CachedRoutingOracle)(nil)

func NewCachedRoutingOracle(
	next ports.RoutingOracle,
	rdb redis.Cmdable,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedRoutingOracle {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CachedRoutingOracle{
		next:        next,
		rdb:         rdb,
		ttl:         ttl,
		callTimeout: DefaultCallTimeout,
		logger:      logger.With("component", "routing_oracle_cache"),
	}
}

func (o *CachedRoutingOracle) GetDistanceAlternatives(
	ctx context.Context,
	points []kernel.GeoPoint,
) ([]ports.RouteAlternative, error) {
	key := Key(points)

	if alts, ok := o.lookup(ctx, key); ok {
		return alts, nil
	}

	ch := o.group.DoChan(key, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.callTimeout)
		defer cancel()

		alts, err := o.next.GetDistanceAlternatives(callCtx, points)
		if err != nil {
			return nil, err
		}
		o.store(callCtx, key, alts)
		return alts, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]ports.RouteAlternative), nil
	}
}

// Key is the cache key for an ordered waypoint list.
func Key(points []kernel.GeoPoint) string {
	var b strings.Builder
	b.WriteString(keyPrefix)
	for i, p := range points {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(round(p.Lat()))
		b.WriteByte(',')
		b.WriteString(round(p.Lon()))
	}
	return b.String()
}

func (o *CachedRoutingOracle) lookup(ctx context.Context, key string) ([]ports.RouteAlternative, bool) {
	raw, err := o.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			o.logger.WarnContext(ctx, "cache read failed", "error", err)
		}
		return nil, false
	}

	var cached []cachedAlternative
	if err := json.Unmarshal(raw, &cached); err != nil {
		o.logger.WarnContext(ctx, "cache entry is malformed", "key", key, "error", err)
		return nil, false
	}

	alts := make([]ports.RouteAlternative, 0, len(cached))
	for _, c := range cached {
		alts = append(alts, ports.RouteAlternative{Distance: c.Distance, Duration: c.Duration})
	}
	return alts, true
}

func (o *CachedRoutingOracle) store(ctx context.Context, key string, alts []ports.RouteAlternative) {
	if len(alts) == 0 {
		return
	}

	cached := make([]cachedAlternative, 0, len(alts))
	for _, a := range alts {
		cached = append(cached, cachedAlternative{Distance: a.Distance, Duration: a.Duration})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		o.logger.WarnContext(ctx, "cache encode failed", "error", err)
		return
	}

	if err := o.rdb.Set(ctx, key, raw, o.ttl).Err(); err != nil {
		o.logger.WarnContext(ctx, "cache write failed", "error", err)
	}
}

func round(v float64) string {
	scale := math.Pow10(coordinateDecimals)
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', coordinateDecimals, 64)
}
