package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"compass-backend/internal/domains/webhook"
	"compass-backend/internal/shared/response"
)

// WebhookNameHeader carries the shared-secret webhook identifier. This is
// a best-effort authenticity check, not cryptographic signing.
const WebhookNameHeader = "x-contentful-webhook-name"

type WebhookHandler struct {
	service     webhook.Service
	webhookName string
}

func NewWebhookHandler(svc webhook.Service, webhookName string) *WebhookHandler {
	return &WebhookHandler{
		service:     svc,
		webhookName: webhookName,
	}
}

// Handle runs the received → validated → resolved → purged pipeline.
// Every validation failure exits early with a 400 and never reaches the
// purge path.
func (h *WebhookHandler) Handle(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		response.BadRequest(c, "Invalid method")
		return
	}

	if c.GetHeader(WebhookNameHeader) != h.webhookName {
		response.BadRequest(c, "Invalid webhook name")
		return
	}

	var event webhook.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if err := event.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Process(c.Request.Context(), event); err != nil {
		response.ErrorResponse(c, webhook.GetHTTPStatusCode(err), "WEBHOOK_FAILED", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
