package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/venoxy/portfolio-backend/errs"
	"github.com/venoxy/portfolio-backend/models"
	"github.com/venoxy/portfolio-backend/portfolio"
)

type portfolioHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *portfolio.Store
}

func newPortfolioHandler(store *portfolio.Store) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// ProjectCollection represents a list of projects
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
}

// getPortfolio returns the merged portfolio dataset
// @Summary Get portfolio
// @Description Returns the full portfolio: static profile sections plus the live project list
// @Tags Portfolio
// @Produce json
// @Success 200 {object} models.PortfolioData "Merged portfolio data"
// @Router /portfolio [get]
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.store.Data())
	}
}

func (h portfolioHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects := h.store.Projects()
		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getAIShowcase returns the projects with a non-empty aiToolsUsed list.
func (h portfolioHandler) getAIShowcase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects := h.store.AIShowcase()
		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// createProject adds a new project
// @Summary Create project
// @Description Persists a new project and returns it under its store-assigned id
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} map[string]any "Bad Request - Invalid project data"
// @Failure 503 {object} map[string]any "Service Unavailable - Remote store unreachable"
// @Router /projects [post]
func (h portfolioHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		// The store expects validated input; form validation happens here at
		// the boundary. A client-side id placeholder satisfies the id
		// invariant and is replaced by the store-assigned identity.
		if project.ID == "" {
			project.ID = "pending"
		}
		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.store.AddProject(r.Context(), project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject replaces an existing project's full field set
// @Summary Update project
// @Description Persists the full field set of an existing project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param project body models.Project true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 404 {object} map[string]any "Not Found - Unknown project id"
// @Router /projects/{projectID} [put]
func (h portfolioHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		// Ensure ID matches the path
		project.ID = projectID

		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.store.UpdateProject(r.Context(), project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

func (h portfolioHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		if err := h.store.DeleteProject(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

// resetPortfolio overwrites the remote store with the bundled seed data.
// Destructive, so the request must carry an explicit confirmation.
func (h portfolioHandler) resetPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetRequest
		// A missing or malformed body simply fails the confirm check below.
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !req.Confirm {
			h.responder.WriteError(w, errs.NewBadRequestError("reset requires explicit confirmation"))
			return
		}

		if err := h.store.Reset(r.Context()); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "portfolio reset to default data",
		})
	}
}
