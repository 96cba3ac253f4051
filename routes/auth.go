package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cravespot/cravespot-api/auth"
)

// SetupAuthRoutes registers the token issuance endpoint. Public by
// contract: the payload is trusted because the client has already passed
// an external identity step before calling it.
func SetupAuthRoutes(r *gin.Engine) {
	r.POST("/jwt", auth.IssueToken())
}
