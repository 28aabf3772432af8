package http

import (
	"github.com/gin-gonic/gin"

	"digaxy-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.Step)
		chat.DELETE("/:session_id", mw.RateLimit(), h.Reset)
	}
}
