package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/auntiehomie/castkeepr/internal/neynar"
	"github.com/auntiehomie/castkeepr/internal/services"

	"github.com/gin-gonic/gin"
)

// WebhookHandler is the ingestion entry point for Neynar events.
type WebhookHandler struct {
	ingest *services.IngestService
}

func NewWebhookHandler(ingest *services.IngestService) *WebhookHandler {
	return &WebhookHandler{ingest: ingest}
}

// Handle processes one webhook delivery. Recognized-but-inapplicable events
// answer 200 so the event source does not treat "ignored" as a delivery
// failure; only genuine processing failures answer 500.
func (h *WebhookHandler) Handle(c *gin.Context) {
	var event neynar.WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		// Unparseable payloads are not save requests.
		c.String(http.StatusOK, "Ignored")
		return
	}

	result, err := h.ingest.ProcessEvent(c.Request.Context(), &event)
	if err != nil {
		log.Printf("webhook error: %v", err)
		switch {
		case errors.Is(err, services.ErrParentLookup):
			c.String(http.StatusInternalServerError, "Parent cast fetch failed.")
		case errors.Is(err, services.ErrStorage):
			c.String(http.StatusInternalServerError, "Insert failed")
		default:
			c.String(http.StatusInternalServerError, "Webhook error")
		}
		return
	}

	switch result {
	case services.IngestNoParent:
		c.String(http.StatusOK, "No parent to save.")
	case services.IngestSaved:
		c.String(http.StatusOK, "ok")
	default:
		c.String(http.StatusOK, "Ignored")
	}
}
