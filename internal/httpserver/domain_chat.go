package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "digaxy-assistant/internal/chat/delivery/http"
)

// setupChatDomain initializes the chat domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)

	// Registers /api/v1/chat
	chatHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
