package resolver

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/logger"
)

func TestSubscriptionDelivers(t *testing.T) {
	remote := &fakeRemote{
		entries: []domain.RawEntry{rawPortfolio("p1", "Neon Dreams", "Festival Makeup")},
		total:   1,
	}
	r, _ := newTestResolver(t, remote)

	var mu sync.Mutex
	var delivered []ListResult[domain.PortfolioEntry]

	sub := r.SubscribePortfolio(func(result ListResult[domain.PortfolioEntry]) {
		mu.Lock()
		delivered = append(delivered, result)
		mu.Unlock()
	})
	defer sub.Close()

	assert.NotEmpty(t, sub.ID())

	sub.Refresh(context.Background(), domain.QuerySpec{})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, delivered, 1)
	assert.Equal(t, domain.SourceRemote, delivered[0].Source)
	require.Len(t, delivered[0].Items, 1)
}

func TestSubscriptionDropsStaleResult(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	var mu sync.Mutex
	var delivered []ListResult[domain.PortfolioEntry]

	sub := newSubscription(logger.NewNopLogger(),
		func(_ context.Context, query domain.QuerySpec) ListResult[domain.PortfolioEntry] {
			if query.Category == "slow" {
				close(started)
				<-release
				return ListResult[domain.PortfolioEntry]{Source: domain.SourceStatic}
			}
			return ListResult[domain.PortfolioEntry]{Source: domain.SourceRemote}
		},
		func(result ListResult[domain.PortfolioEntry]) {
			mu.Lock()
			delivered = append(delivered, result)
			mu.Unlock()
		},
	)

	done := make(chan struct{})
	go func() {
		sub.Refresh(context.Background(), domain.QuerySpec{Category: "slow"})
		close(done)
	}()

	<-started
	sub.Refresh(context.Background(), domain.QuerySpec{Category: "fast"})
	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, delivered, 1, "the superseded refresh must be dropped")
	assert.Equal(t, domain.SourceRemote, delivered[0].Source)
}

func TestSubscriptionClosedDeliversNothing(t *testing.T) {
	delivered := 0
	sub := newSubscription(logger.NewNopLogger(),
		func(_ context.Context, _ domain.QuerySpec) ListResult[domain.BlogPost] {
			return ListResult[domain.BlogPost]{Source: domain.SourceRemote}
		},
		func(ListResult[domain.BlogPost]) { delivered++ },
	)

	sub.Close()
	sub.Refresh(context.Background(), domain.QuerySpec{})

	assert.Zero(t, delivered)
}
