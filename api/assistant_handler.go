package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/venoxy/portfolio-backend/errs"
	"github.com/venoxy/portfolio-backend/models"
	"github.com/venoxy/portfolio-backend/services"
)

type assistantHandler struct {
	responder Responder
	logger    zerolog.Logger
	assistant *services.Assistant
}

func newAssistantHandler(assistant *services.Assistant) assistantHandler {
	logger := log.With().Str("handlerName", "assistantHandler").Logger()

	return assistantHandler{
		responder: NewResponder(logger),
		logger:    logger,
		assistant: assistant,
	}
}

type chatRequest struct {
	Message string              `json:"message"`
	History []services.ChatTurn `json:"history,omitempty"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// chat answers one chat-widget message using the portfolio context.
func (h assistantHandler) chat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.assistant == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "assistant is not configured"))
			return
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("chat", err))
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			h.responder.WriteValidationError(w, "message", "message is required")
			return
		}

		reply, err := h.assistant.Chat(r.Context(), req.Message, req.History)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, chatResponse{Reply: reply})
	}
}

type generateRequest struct {
	Title    string          `json:"title,omitempty"`
	Category models.Category `json:"category,omitempty"`
}

// generateDetails produces a project-detail patch for the CMS edit form
// @Summary Generate project details
// @Description Asks the model for a structured project-detail patch from a working title and category
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body generateRequest true "Working title and category"
// @Success 200 {object} models.ProjectDetails "Candidate project patch"
// @Failure 502 {object} map[string]any "Bad Gateway - Model failure or unparsable output"
// @Router /assistant/generate [post]
func (h assistantHandler) generateDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.assistant == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "assistant is not configured"))
			return
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("generate", err))
			return
		}
		if req.Category != "" && !req.Category.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("category", "unknown category "+string(req.Category)))
			return
		}

		details, err := h.assistant.GenerateProjectDetails(r.Context(), req.Title, req.Category)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, details)
	}
}
