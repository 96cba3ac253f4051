package routes

import (
	"github.com/gin-gonic/gin"

	menuControllers "github.com/cravespot/cravespot-api/controllers/menu"
	"github.com/cravespot/cravespot-api/middleware"
	"github.com/cravespot/cravespot-api/store"
)

// SetupMenuRoutes registers the catalog endpoints. Reads are public;
// writes and the export go through the token + admin guard chain.
// "/menu/export" is a static segment, so gin resolves it ahead of the
// ":id" wildcard at the same depth.
func SetupMenuRoutes(r *gin.Engine, s *store.Stores) {
	r.GET("/menu", menuControllers.GetMenu(s.Menus))
	r.GET("/menu/export", middleware.VerifyToken(), middleware.VerifyAdmin(s.Users), menuControllers.ExportMenuToExcel(s.Menus))
	r.GET("/menu/:id", menuControllers.GetMenuItem(s.Menus))
	r.GET("/menuCount", menuControllers.CountMenu(s.Menus))

	r.POST("/menu", middleware.VerifyToken(), middleware.VerifyAdmin(s.Users), menuControllers.CreateMenuItem(s.Menus))
	r.PATCH("/menu/:id", middleware.VerifyToken(), middleware.VerifyAdmin(s.Users), menuControllers.UpdateMenuItem(s.Menus))
	r.DELETE("/menu/:id", middleware.VerifyToken(), middleware.VerifyAdmin(s.Users), menuControllers.DeleteMenuItem(s.Menus))
}
