package api

import (
	"github.com/venoxy/portfolio-backend/portfolio"
)

type routeHandlers struct {
	portfolioHandler portfolioHandler
	assistantHandler assistantHandler
	mediaHandler     mediaHandler
	contactHandler   contactHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(store *portfolio.Store, collab Collaborators) *routeHandlers {
	return &routeHandlers{
		portfolioHandler: newPortfolioHandler(store),
		assistantHandler: newAssistantHandler(collab.Assistant),
		mediaHandler:     newMediaHandler(collab.Uploader),
		contactHandler:   newContactHandler(collab.Mailer),
	}
}
