package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
)

// ChatbotHandler wires the HTTP transport to the FAQ matching service.
type ChatbotHandler struct {
	faqSvc faq.Service
	logger *slog.Logger
}

// NewChatbotHandler constructs the root HTTP handler.
func NewChatbotHandler(faqSvc faq.Service, logger *slog.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Ask resolves a free-text question against the FAQ catalog. A well-formed
// request always yields 200; unmatched questions carry the fallback answer.
func (h *ChatbotHandler) Ask(c *gin.Context) {
	var req faq.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.faqSvc.Answer(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "faq_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Trending returns the most common queries seen so far.
func (h *ChatbotHandler) Trending(c *gin.Context) {
	items, err := h.faqSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "faq_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

// Health reports readiness; the model is trained before the server starts,
// so a responding process is a ready process.
func (h *ChatbotHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
