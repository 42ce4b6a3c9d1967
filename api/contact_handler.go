package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/venoxy/portfolio-backend/errs"
	"github.com/venoxy/portfolio-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    *services.Mailer
}

func newContactHandler(mailer *services.Mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h contactHandler) send() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.mailer == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "contact relay is not configured"))
			return
		}

		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		switch {
		case strings.TrimSpace(req.Name) == "":
			h.responder.WriteValidationError(w, "name", "name is required")
			return
		case strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@"):
			h.responder.WriteValidationError(w, "email", "a valid email is required")
			return
		case strings.TrimSpace(req.Message) == "":
			h.responder.WriteValidationError(w, "message", "message is required")
			return
		}

		if err := h.mailer.SendContactMessage(r.Context(), req.Name, req.Email, req.Message); err != nil {
			h.logger.Error().Err(err).Msg("failed to relay contact message")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to send message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
