package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/cravespot/cravespot-api/controllers/user"
	"github.com/cravespot/cravespot-api/middleware"
	"github.com/cravespot/cravespot-api/store"
)

// SetupUserRoutes registers user management. The upsert is public (every
// login calls it); listing, deletion and promotion are admin-gated; the
// admin check is self-scoped behind the token guard.
func SetupUserRoutes(r *gin.Engine, s *store.Stores) {
	r.POST("/user", userControllers.UpsertUser(s.Users))

	r.GET("/user", middleware.VerifyToken(), middleware.VerifyAdmin(s.Users), userControllers.GetAllUsers(s.Users))
	r.DELETE("/user/:id", middleware.VerifyToken(), middleware.VerifyAdmin(s.Users), userControllers.DeleteUser(s.Users))
	r.PATCH("/user/admin/:id", middleware.VerifyToken(), middleware.VerifyAdmin(s.Users), userControllers.MakeAdmin(s.Users))

	r.GET("/users/admin/:email", middleware.VerifyToken(), userControllers.CheckAdmin(s.Users))
}
