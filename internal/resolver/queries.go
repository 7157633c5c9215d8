package resolver

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/logger"
	"github.com/jonesrussell/content-resolver/internal/transform"
)

// PortfolioEntries resolves the portfolio collection for a query. It never
// fails; a remote or validation problem yields the static dataset instead.
func (r *Resolver) PortfolioEntries(ctx context.Context, query domain.QuerySpec) ListResult[domain.PortfolioEntry] {
	return resolveCollection(ctx, r, domain.TypePortfolioEntry, query,
		transform.PortfolioEntry, r.static.PortfolioEntries)
}

// BlogPosts resolves the blog collection for a query.
func (r *Resolver) BlogPosts(ctx context.Context, query domain.QuerySpec) ListResult[domain.BlogPost] {
	return resolveCollection(ctx, r, domain.TypeBlogPost, query,
		transform.BlogPost, r.static.BlogPosts)
}

// Homepage resolves the home page document.
func (r *Resolver) Homepage(ctx context.Context) ItemResult[domain.HomepageContent] {
	return resolveDocument(ctx, r, domain.TypeHomePage,
		transform.Homepage, r.static.Homepage)
}

// AboutPage resolves the about page document.
func (r *Resolver) AboutPage(ctx context.Context) ItemResult[domain.AboutPageContent] {
	return resolveDocument(ctx, r, domain.TypeAboutPage,
		transform.AboutPage, r.static.AboutPage)
}

// BlogPostBySlug resolves one blog post. It returns domain.ErrNotFound when
// neither the remote source nor the static dataset has the slug; that is the
// only error this method returns.
func (r *Resolver) BlogPostBySlug(ctx context.Context, slug string) (ItemResult[domain.BlogPost], error) {
	ctx, span := r.tracer.Start(ctx, "resolve blogPost by slug")
	defer span.End()
	span.SetAttributes(attribute.String("content.slug", slug))

	start := time.Now()
	query := domain.QuerySpec{Slug: slug, Limit: 1}
	key := query.CacheKey(domain.TypeBlogPost)

	if payload, found := r.cacheGet(ctx, key); found {
		var cached cachedItem[domain.BlogPost]
		if err := json.Unmarshal(payload, &cached); err == nil {
			r.finish(span, domain.TypeBlogPost, domain.SourceCache, true, "", start)
			return ItemResult[domain.BlogPost]{Item: cached.Item, Source: domain.SourceCache}, nil
		}
		r.logger.Warn("discarding undecodable cache payload", logger.String("cache_key", key))
	}

	raw, _, err := r.remote.Entries(ctx, domain.TypeBlogPost, query)
	if err != nil {
		reason := string(domain.RemoteCauseOf(err))
		r.logger.Warn("remote fetch failed, trying static fallback",
			logger.String("slug", slug),
			logger.String("cause", reason),
			logger.Error(err),
		)
		return r.staticBlogPost(span, slug, reason, start)
	}

	items, _ := buildEntries(r, domain.TypeBlogPost, raw, transform.BlogPost)
	if len(items) == 0 {
		reason := "empty"
		if len(raw) > 0 {
			reason = "validation"
		}
		return r.staticBlogPost(span, slug, reason, start)
	}

	r.cacheSet(ctx, key, cachedItem[domain.BlogPost]{Item: items[0]})
	r.finish(span, domain.TypeBlogPost, domain.SourceRemote, true, "", start)
	return ItemResult[domain.BlogPost]{Item: items[0], Source: domain.SourceRemote}, nil
}

func (r *Resolver) staticBlogPost(span trace.Span, slug, reason string, start time.Time) (ItemResult[domain.BlogPost], error) {
	post, found := r.static.BlogPostBySlug(slug)
	if !found {
		r.finish(span, domain.TypeBlogPost, domain.SourceStatic, false, "not_found", start)
		return ItemResult[domain.BlogPost]{}, domain.ErrNotFound
	}
	r.finish(span, domain.TypeBlogPost, domain.SourceStatic, false, reason, start)
	return ItemResult[domain.BlogPost]{Item: post, Source: domain.SourceStatic}, nil
}

// Warm primes the cache by resolving every content type once with default
// queries. Failures are absorbed by the fallback path as usual.
func (r *Resolver) Warm(ctx context.Context) {
	r.PortfolioEntries(ctx, domain.QuerySpec{})
	r.BlogPosts(ctx, domain.QuerySpec{})
	r.Homepage(ctx)
	r.AboutPage(ctx)
	r.logger.Info("cache warm-up complete")
}
