package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes sets up all routes the SPA consumes. Read endpoints
// and the assistant chat are public; everything that mutates content goes
// through the admin gate.
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers, admin adminMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/portfolio", handlers.portfolioHandler.getPortfolio())
		r.Get("/projects", handlers.portfolioHandler.getAllProjects())
		r.Get("/projects/ai", handlers.portfolioHandler.getAIShowcase())

		r.Post("/assistant/chat", handlers.assistantHandler.chat())
		r.Post("/contact", handlers.contactHandler.send())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(admin.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/projects", handlers.portfolioHandler.createProject())
		r.Put("/projects/{projectID}", handlers.portfolioHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.portfolioHandler.deleteProject())
		r.Post("/portfolio/reset", handlers.portfolioHandler.resetPortfolio())

		r.Post("/assistant/generate", handlers.assistantHandler.generateDetails())
		r.Post("/media/upload", handlers.mediaHandler.uploadImage())
		r.Post("/media/gallery", handlers.mediaHandler.uploadGallery())
	})
}
