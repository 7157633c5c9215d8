package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/logger"
	"github.com/jonesrussell/content-resolver/internal/resolver"
)

// bindQuery reads the collection query parameters. Bad values report a 400
// instead of silently resolving the wrong thing.
func bindQuery(c *gin.Context) (domain.QuerySpec, bool) {
	var query domain.QuerySpec
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return domain.QuerySpec{}, false
	}
	return query, true
}

// contentResolver picks the resolver for a request. preview=true routes to
// the draft-content resolver when one is configured; without a preview token
// the flag is silently ignored rather than erroring.
func (r *Router) contentResolver(c *gin.Context) *resolver.Resolver {
	if r.preview != nil && c.Query("preview") == "true" {
		return r.preview
	}
	return r.resolver
}

func (r *Router) getPortfolio(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, r.contentResolver(c).PortfolioEntries(c.Request.Context(), query))
}

func (r *Router) getBlogPosts(c *gin.Context) {
	query, ok := bindQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, r.contentResolver(c).BlogPosts(c.Request.Context(), query))
}

func (r *Router) getBlogPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	result, err := r.contentResolver(c).BlogPostBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
			return
		}
		r.logger.Error("blog post resolution failed",
			logger.String("slug", slug),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve blog post"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (r *Router) getHomepage(c *gin.Context) {
	c.JSON(http.StatusOK, r.contentResolver(c).Homepage(c.Request.Context()))
}

func (r *Router) getAboutPage(c *gin.Context) {
	c.JSON(http.StatusOK, r.contentResolver(c).AboutPage(c.Request.Context()))
}

func (r *Router) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, r.collector.Dashboard())
}
