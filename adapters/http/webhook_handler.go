package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	webhookUC "github.com/khanhduong/smartresume/internal/application/usecase/webhook"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

type WebhookHandler struct {
	useCase *webhookUC.IngestUseCase
	secret  string
}

func NewWebhookHandler(uc *webhookUC.IngestUseCase, secret string) *WebhookHandler {
	return &WebhookHandler{useCase: uc, secret: secret}
}

// requiredKeys must all be present at the envelope's top level.
var requiredKeys = []string{"source", "external_id", "type", "data", "target_resume_id"}

func (h *WebhookHandler) Ingest(c *gin.Context) {
	// Some partners send the header fully upper-cased. Both spellings
	// normalize to the same canonical key, but check both to be explicit.
	provided := c.GetHeader("X-Webhook-Secret")
	if provided == "" {
		provided = c.GetHeader("X-WEBHOOK-SECRET")
	}
	if h.secret == "" || provided != h.secret {
		c.Error(apperror.NewPermissionDenied("invalid webhook secret"))
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	for _, key := range requiredKeys {
		if _, ok := payload[key]; !ok {
			c.Error(apperror.NewInvalidInput("missing field: "+key, nil))
			return
		}
	}

	rawTarget, _ := payload["target_resume_id"].(string)
	targetID, err := uuid.Parse(rawTarget)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid target_resume_id", err))
		return
	}

	data, ok := payload["data"].(map[string]any)
	if !ok {
		c.Error(apperror.NewInvalidInput("data must be an object", nil))
		return
	}

	source, _ := payload["source"].(string)
	externalID, _ := payload["external_id"].(string)
	eventType, _ := payload["type"].(string)

	result, err := h.useCase.Execute(c.Request.Context(), webhookUC.IngestInput{
		Source:         source,
		ExternalID:     externalID,
		Type:           eventType,
		Data:           data,
		TargetResumeID: targetID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "accepted",
		"created": result.Created,
		"item":    result.Item,
	})
}
