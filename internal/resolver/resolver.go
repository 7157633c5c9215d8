// Package resolver implements the content resolution pipeline: cache check,
// remote fetch, validation, transformation, and static fallback. Every
// resolution produces a result tagged with its source and one analytics
// sample; the only failure a caller ever sees is a not-found on a
// single-entry lookup.
package resolver

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/content-resolver/internal/analytics"
	"github.com/jonesrussell/content-resolver/internal/cache"
	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/logger"
	"github.com/jonesrussell/content-resolver/internal/static"
	"github.com/jonesrussell/content-resolver/internal/validation"
)

const tracerName = "content-resolver"

// RemoteSource fetches raw entries from the headless CMS.
type RemoteSource interface {
	Configured() bool
	Entries(ctx context.Context, contentType domain.ContentType, query domain.QuerySpec) ([]domain.RawEntry, int, error)
}

// ListResult is a resolved collection with its source tag. Total counts
// matches before pagination.
type ListResult[T any] struct {
	Items  []T           `json:"items"`
	Total  int           `json:"total"`
	Source domain.Source `json:"source"`
}

// ItemResult is a resolved single document with its source tag.
type ItemResult[T any] struct {
	Item   T             `json:"item"`
	Source domain.Source `json:"source"`
}

// Params carries the resolver dependencies.
type Params struct {
	Remote    RemoteSource
	Cache     cache.Cache
	Static    *static.Provider
	Validator *validation.Validator
	Collector *analytics.Collector
	Logger    logger.Logger
	TTL       time.Duration
}

// Resolver coordinates the resolution pipeline.
type Resolver struct {
	remote    RemoteSource
	cache     cache.Cache
	static    *static.Provider
	validator *validation.Validator
	collector *analytics.Collector
	logger    logger.Logger
	tracer    trace.Tracer
	ttl       time.Duration
}

// New creates a resolver. Static provider and validator default when nil;
// remote, cache, and logger are required.
func New(p Params) *Resolver {
	if p.Static == nil {
		p.Static = static.NewProvider()
	}
	if p.Validator == nil {
		p.Validator = validation.New(p.Logger)
	}
	if p.TTL <= 0 {
		p.TTL = cache.DefaultTTL
	}

	return &Resolver{
		remote:    p.Remote,
		cache:     p.Cache,
		static:    p.Static,
		validator: p.Validator,
		collector: p.Collector,
		logger:    p.Logger,
		tracer:    otel.Tracer(tracerName),
		ttl:       p.TTL,
	}
}

// InvalidateContentType drops every cached result for one content type.
// Called when a publish webhook signals that entries of that type changed.
func (r *Resolver) InvalidateContentType(ctx context.Context, contentType domain.ContentType) (int, error) {
	removed, err := r.cache.Invalidate(ctx, "content:"+string(contentType)+"|")
	if err != nil {
		return removed, err
	}
	if r.collector != nil {
		r.collector.CacheInvalidated()
	}
	r.logger.Info("invalidated cached results",
		logger.String("content_type", string(contentType)),
		logger.Int("removed", removed),
	)
	return removed, nil
}

// InvalidateAll drops the entire response cache.
func (r *Resolver) InvalidateAll(ctx context.Context) error {
	if err := r.cache.Reset(ctx); err != nil {
		return err
	}
	if r.collector != nil {
		r.collector.CacheInvalidated()
	}
	r.logger.Info("invalidated all cached results")
	return nil
}

type cachedList[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type cachedItem[T any] struct {
	Item T `json:"item"`
}

// resolveCollection runs the pipeline for a list content type. It never
// fails: any cache, remote, or validation problem falls back to the static
// dataset, and static results are never written to the cache.
func resolveCollection[T any](
	ctx context.Context,
	r *Resolver,
	contentType domain.ContentType,
	query domain.QuerySpec,
	build func(entryID string, sanitized map[string]any) T,
	fallback func(domain.QuerySpec) ([]T, int),
) ListResult[T] {
	ctx, span := r.tracer.Start(ctx, "resolve "+string(contentType))
	defer span.End()
	span.SetAttributes(attribute.String("content.type", string(contentType)))

	start := time.Now()
	key := query.CacheKey(contentType)

	if payload, found := r.cacheGet(ctx, key); found {
		var cached cachedList[T]
		if err := json.Unmarshal(payload, &cached); err == nil {
			r.finish(span, contentType, domain.SourceCache, true, "", start)
			return ListResult[T]{Items: cached.Items, Total: cached.Total, Source: domain.SourceCache}
		}
		r.logger.Warn("discarding undecodable cache payload", logger.String("cache_key", key))
	}

	raw, total, err := r.remote.Entries(ctx, contentType, query)
	if err != nil {
		reason := string(domain.RemoteCauseOf(err))
		r.logger.Warn("remote fetch failed, serving static fallback",
			logger.String("content_type", string(contentType)),
			logger.String("cause", reason),
			logger.Error(err),
		)
		items, staticTotal := fallback(query)
		r.finish(span, contentType, domain.SourceStatic, false, reason, start)
		return ListResult[T]{Items: items, Total: staticTotal, Source: domain.SourceStatic}
	}

	items, dropped := buildEntries(r, contentType, raw, build)
	if total >= dropped {
		total -= dropped
	}

	r.cacheSet(ctx, key, cachedList[T]{Items: items, Total: total})
	r.finish(span, contentType, domain.SourceRemote, true, "", start)
	return ListResult[T]{Items: items, Total: total, Source: domain.SourceRemote}
}

// resolveDocument runs the pipeline for a singleton content type.
func resolveDocument[T any](
	ctx context.Context,
	r *Resolver,
	contentType domain.ContentType,
	build func(entryID string, sanitized map[string]any) T,
	fallback func() T,
) ItemResult[T] {
	ctx, span := r.tracer.Start(ctx, "resolve "+string(contentType))
	defer span.End()
	span.SetAttributes(attribute.String("content.type", string(contentType)))

	start := time.Now()
	query := domain.QuerySpec{Limit: 1}
	key := query.CacheKey(contentType)

	if payload, found := r.cacheGet(ctx, key); found {
		var cached cachedItem[T]
		if err := json.Unmarshal(payload, &cached); err == nil {
			r.finish(span, contentType, domain.SourceCache, true, "", start)
			return ItemResult[T]{Item: cached.Item, Source: domain.SourceCache}
		}
		r.logger.Warn("discarding undecodable cache payload", logger.String("cache_key", key))
	}

	raw, _, err := r.remote.Entries(ctx, contentType, query)
	if err != nil {
		reason := string(domain.RemoteCauseOf(err))
		r.logger.Warn("remote fetch failed, serving static fallback",
			logger.String("content_type", string(contentType)),
			logger.String("cause", reason),
			logger.Error(err),
		)
		r.finish(span, contentType, domain.SourceStatic, false, reason, start)
		return ItemResult[T]{Item: fallback(), Source: domain.SourceStatic}
	}

	items, _ := buildEntries(r, contentType, raw, build)
	if len(items) == 0 {
		reason := "empty"
		if len(raw) > 0 {
			reason = "validation"
		}
		r.logger.Warn("remote returned no usable document, serving static fallback",
			logger.String("content_type", string(contentType)),
			logger.String("reason", reason),
		)
		r.finish(span, contentType, domain.SourceStatic, false, reason, start)
		return ItemResult[T]{Item: fallback(), Source: domain.SourceStatic}
	}

	r.cacheSet(ctx, key, cachedItem[T]{Item: items[0]})
	r.finish(span, contentType, domain.SourceRemote, true, "", start)
	return ItemResult[T]{Item: items[0], Source: domain.SourceRemote}
}

// buildEntries validates and transforms a batch, dropping invalid entries.
func buildEntries[T any](r *Resolver, contentType domain.ContentType, raw []domain.RawEntry, build func(string, map[string]any) T) ([]T, int) {
	items := make([]T, 0, len(raw))
	dropped := 0
	for i := range raw {
		res, _ := r.validator.Validate(contentType, &raw[i], validation.Options{})
		if !res.Valid {
			dropped++
			r.logger.Warn("dropping invalid entry",
				logger.String("content_type", string(contentType)),
				logger.String("entry_id", raw[i].Sys.ID),
				logger.Strings("errors", res.Errors),
			)
			continue
		}
		if len(res.Warnings) > 0 {
			r.logger.Debug("entry passed with warnings",
				logger.String("entry_id", raw[i].Sys.ID),
				logger.Int("warnings", len(res.Warnings)),
			)
		}
		items = append(items, build(raw[i].Sys.ID, res.Sanitized))
	}
	return items, dropped
}

func (r *Resolver) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	payload, found, err := r.cache.Get(ctx, key)
	if err != nil {
		// Cache trouble is never a resolution failure
		r.logger.Warn("cache read failed", logger.String("cache_key", key), logger.Error(err))
		return nil, false
	}
	return payload, found
}

func (r *Resolver) cacheSet(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("cache encode failed", logger.String("cache_key", key), logger.Error(err))
		return
	}
	if err := r.cache.Set(ctx, key, payload, r.ttl); err != nil {
		r.logger.Warn("cache write failed", logger.String("cache_key", key), logger.Error(err))
	}
}

func (r *Resolver) finish(span trace.Span, contentType domain.ContentType, source domain.Source, success bool, reason string, start time.Time) {
	span.SetAttributes(
		attribute.String("content.source", string(source)),
		attribute.Bool("content.success", success),
	)
	if r.collector != nil {
		r.collector.Record(analytics.Sample{
			ContentType: string(contentType),
			Source:      source,
			Success:     success,
			ErrorReason: reason,
			Latency:     time.Since(start),
			At:          time.Now(),
		})
	}
}
