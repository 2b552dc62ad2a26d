// Package controller provides the HTTP handlers of the fzscripts JSON API:
// authentication, script publishing/listing and user profile endpoints.
package controller

import (
	"net/http"

	"github.com/fzscripts/fzscripts/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers, including
// the authentication gate.
type BaseController struct{}

// checkLogin is a middleware that rejects requests without a valid session.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.Next()
}
