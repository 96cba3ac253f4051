package menuControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/cravespot/cravespot-api/store"
)

// ExportMenuToExcel streams the full menu as an xlsx download. Admin only.
func ExportMenuToExcel(menus store.MenuStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := menus.Find(c.Request.Context(), "", 0, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Menu")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{"ID", "Name", "Recipe", "Category", "Price", "Image"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, item := range items {
			row := sheet.AddRow()
			row.AddCell().SetValue(item.ID.Hex())
			row.AddCell().SetValue(item.Name)
			row.AddCell().SetValue(item.Recipe)
			row.AddCell().SetValue(item.Category)
			row.AddCell().SetValue(item.Price)
			row.AddCell().SetValue(item.Image)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=menu.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
