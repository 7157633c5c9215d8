package resolver

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/logger"
)

// Subscription delivers resolved collections to a handler on demand. Each
// Refresh is stamped with a sequence number; a refresh that finishes after a
// newer one started is stale and its result is dropped, so the handler only
// ever moves forward.
type Subscription[T any] struct {
	id      string
	seq     atomic.Uint64
	mu      sync.Mutex
	closed  bool
	handler func(ListResult[T])
	resolve func(context.Context, domain.QuerySpec) ListResult[T]
	logger  logger.Logger
}

func newSubscription[T any](
	log logger.Logger,
	resolve func(context.Context, domain.QuerySpec) ListResult[T],
	handler func(ListResult[T]),
) *Subscription[T] {
	return &Subscription[T]{
		id:      uuid.NewString(),
		handler: handler,
		resolve: resolve,
		logger:  log,
	}
}

// ID returns the subscription identifier, for log correlation.
func (s *Subscription[T]) ID() string {
	return s.id
}

// Refresh resolves the query and delivers the result to the handler, unless
// a newer Refresh started in the meantime or the subscription is closed.
// Safe for concurrent use.
func (s *Subscription[T]) Refresh(ctx context.Context, query domain.QuerySpec) {
	seq := s.seq.Add(1)

	result := s.resolve(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if seq != s.seq.Load() {
		s.logger.Debug("dropping stale subscription result",
			logger.String("subscription_id", s.id),
		)
		return
	}
	s.handler(result)
}

// Close stops delivery. In-flight refreshes are dropped on completion.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// SubscribePortfolio creates a subscription over the portfolio collection.
func (r *Resolver) SubscribePortfolio(handler func(ListResult[domain.PortfolioEntry])) *Subscription[domain.PortfolioEntry] {
	return newSubscription(r.logger, r.PortfolioEntries, handler)
}

// SubscribeBlog creates a subscription over the blog collection.
func (r *Resolver) SubscribeBlog(handler func(ListResult[domain.BlogPost])) *Subscription[domain.BlogPost] {
	return newSubscription(r.logger, r.BlogPosts, handler)
}
