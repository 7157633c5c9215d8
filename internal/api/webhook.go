package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/content-resolver/internal/domain"
	"github.com/jonesrussell/content-resolver/internal/logger"
)

// Headers sent by Contentful webhook calls.
const (
	headerWebhookTopic  = "X-Contentful-Topic"
	headerWebhookSecret = "X-Webhook-Secret"
)

// webhookPayload is the slice of the webhook body the resolver cares about:
// which content type the changed entry belongs to.
type webhookPayload struct {
	Sys struct {
		ID          string `json:"id"`
		Type        string `json:"type"`
		ContentType struct {
			Sys struct {
				ID string `json:"id"`
			} `json:"sys"`
		} `json:"contentType"`
	} `json:"sys"`
}

// handleWebhook invalidates cached results when Contentful signals a content
// change. Entry events scope the invalidation to one content type; asset
// events drop the whole cache because assets can be referenced anywhere.
func (r *Router) handleWebhook(c *gin.Context) {
	if secret := r.cfg.Contentful.WebhookSecret; secret != "" {
		provided := c.GetHeader(headerWebhookSecret)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
			return
		}
	}

	topic := c.GetHeader(headerWebhookTopic)
	if !relevantTopic(topic) {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "topic": topic})
		return
	}

	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
		return
	}

	ctx := c.Request.Context()

	if strings.Contains(topic, ".Asset.") {
		if err := r.resolver.InvalidateAll(ctx); err != nil {
			r.logger.Error("webhook invalidation failed", logger.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalidation failed"})
			return
		}
		if r.preview != nil {
			if err := r.preview.InvalidateAll(ctx); err != nil {
				r.logger.Error("preview webhook invalidation failed", logger.Error(err))
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "invalidated", "scope": "all"})
		return
	}

	contentType := domain.ContentType(payload.Sys.ContentType.Sys.ID)
	if !contentType.Valid() {
		// A type the resolver does not serve cannot be in the cache
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "content_type": string(contentType)})
		return
	}

	removed, err := r.resolver.InvalidateContentType(ctx, contentType)
	if err != nil {
		r.logger.Error("webhook invalidation failed",
			logger.String("content_type", string(contentType)),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalidation failed"})
		return
	}
	if r.preview != nil {
		if _, err := r.preview.InvalidateContentType(ctx, contentType); err != nil {
			r.logger.Error("preview webhook invalidation failed",
				logger.String("content_type", string(contentType)),
				logger.Error(err),
			)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "invalidated",
		"content_type": string(contentType),
		"removed":      removed,
	})
}

// relevantTopic reports whether a webhook topic affects cached content.
// Publish, unpublish, and delete events do; save and autosave of drafts
// do not.
func relevantTopic(topic string) bool {
	for _, suffix := range []string{".publish", ".unpublish", ".delete"} {
		if strings.HasSuffix(topic, suffix) {
			return true
		}
	}
	return false
}
