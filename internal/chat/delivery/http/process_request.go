package http

import (
	"github.com/gin-gonic/gin"
)

// processStepReq binds and validates the chat step request body.
func (h *handler) processStepReq(c *gin.Context) (stepReq, error) {
	var req stepReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
